package git

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/gorewood/authorloc/internal/output"
)

// ErrInvalidUTF8 is the cause of errors returned when git produces output
// that is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("output is not valid UTF-8")

var pkgLogger *slog.Logger

func logger() *slog.Logger {
	if pkgLogger == nil {
		pkgLogger = slog.Default().With("package", "git")
	}

	return pkgLogger
}

// RunContext executes git with the given arguments, using dir as the working
// directory. An empty dir means the current directory.
// It returns stdout as raw bytes.
// Returns an *output.ExitError on failure with appropriate exit code.
func RunContext(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger().Debug("running subprocess", "cmd", cmd.String(), "dir", dir)

	err := cmd.Run()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return nil, output.NewSystemErrorWithCause("could not run git: ensure git is installed and in PATH", err)
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, output.NewInterruptedError("running git "+subcommand(args), ctxErr)
		}

		// Git command failed - include stderr in message
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return nil, output.NewSystemErrorWithCause("error running git "+subcommand(args)+": "+errMsg, err)
	}

	logger().Debug("subprocess exited", "code", cmd.ProcessState.ExitCode(), "bytes", stdout.Len())
	return stdout.Bytes(), nil
}

// RunText is RunContext for commands whose output must be text.
// Output that is not valid UTF-8 is reported as a system error wrapping
// ErrInvalidUTF8.
func RunText(ctx context.Context, dir string, args ...string) (string, error) {
	out, err := RunContext(ctx, dir, args...)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(out) {
		return "", output.NewSystemErrorWithCause("undecodable output from git "+subcommand(args), ErrInvalidUTF8)
	}
	return string(out), nil
}

// subcommand returns the git subcommand name for error messages.
func subcommand(args []string) string {
	if len(args) == 0 {
		return "command"
	}
	return args[0]
}
