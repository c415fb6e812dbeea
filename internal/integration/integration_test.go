//go:build integration

// Package integration provides end-to-end tests for the authorloc CLI.
// These tests build the binary, create real git repositories and check the
// process output and exit codes.
//
// Run with: go test -tags=integration ./internal/integration/...
package integration

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// testRepo is a helper for creating and managing test git repositories.
type testRepo struct {
	t      *testing.T
	dir    string
	binary string
}

// newTestRepo creates a new git repository in a temp directory.
// It builds the authorloc binary and initializes a git repo.
func newTestRepo(t *testing.T) *testRepo {
	t.Helper()

	dir := t.TempDir()
	binDir := t.TempDir()

	binary := filepath.Join(binDir, "authorloc")
	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/authorloc")
	buildCmd.Dir = findProjectRoot(t)
	buildCmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build authorloc: %v\n%s", err, output)
	}

	repo := &testRepo{t: t, dir: dir, binary: binary}
	repo.git("init", "--initial-branch=main")
	repo.git("config", "commit.gpgsign", "false")

	return repo
}

// findProjectRoot locates the project root by finding go.mod.
func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// git runs a git command in the test repo.
func (r *testRepo) git(args ...string) string {
	r.t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = r.dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		r.t.Fatalf("git %v failed: %v\n%s", args, err, output)
	}
	return strings.TrimSpace(string(output))
}

// createFile creates a file with the given content.
func (r *testRepo) createFile(name, content string) {
	r.t.Helper()

	path := filepath.Join(r.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		r.t.Fatalf("failed to write file %s: %v", name, err)
	}
}

// commitAs stages everything and commits it under the given author name.
func (r *testRepo) commitAs(author, msg string) {
	r.t.Helper()

	r.git("add", "-A")
	r.git("-c", "user.name="+author, "-c", "user.email=dev@example.com", "commit", "-m", msg)
}

// authorloc runs the binary with the given args and the environment cleared
// of AUTHORLOC_* settings. Returns stdout, stderr, and the exit code.
func (r *testRepo) authorloc(env []string, args ...string) (string, string, int) {
	r.t.Helper()

	cmd := exec.Command(r.binary, args...)
	cmd.Dir = r.dir
	cmd.Env = append(cleanEnv(), "AUTHORLOC_CONFIG_HOME="+r.t.TempDir())
	cmd.Env = append(cmd.Env, env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	} else if err != nil {
		r.t.Fatalf("running authorloc: %v", err)
	}
	return stdout.String(), stderr.String(), code
}

// authorlocOK runs authorloc and expects success.
func (r *testRepo) authorlocOK(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.authorloc(nil, args...)
	if code != 0 {
		r.t.Fatalf("authorloc %v exited %d\nstdout: %s\nstderr: %s", args, code, stdout, stderr)
	}
	return stdout
}

// cleanEnv returns the process environment without AUTHORLOC_ variables.
func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "AUTHORLOC_") {
			env = append(env, kv)
		}
	}
	return env
}

type report struct {
	Total   int `json:"total"`
	Authors []struct {
		Author  string  `json:"author"`
		Lines   int     `json:"lines"`
		Percent float64 `json:"percent"`
	} `json:"authors"`
}

func parseReport(t *testing.T, out string) report {
	t.Helper()
	var r report
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("failed to parse report JSON: %v\n%s", err, out)
	}
	return r
}

// TestOwnershipFollowsLatestChange checks that rewriting a line moves it to
// the new author.
func TestOwnershipFollowsLatestChange(t *testing.T) {
	repo := newTestRepo(t)

	repo.createFile("main.go", "package main\n\nfunc main() {\n}\n")
	repo.commitAs("Alice", "Add main")

	repo.createFile("main.go", "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n")
	repo.commitAs("Bob", "Say hi")

	r := parseReport(t, repo.authorlocOK("--json", "-p", ".", "-e", "go"))
	if r.Total != 5 {
		t.Fatalf("total = %d, want 5", r.Total)
	}
	if r.Authors[0].Author != "Alice" || r.Authors[0].Lines != 4 {
		t.Errorf("first author = %+v, want Alice with 4 lines", r.Authors[0])
	}
	if r.Authors[1].Author != "Bob" || r.Authors[1].Lines != 1 {
		t.Errorf("second author = %+v, want Bob with 1 line", r.Authors[1])
	}
}

// TestTextReportAndProgress checks the plain report on stdout and progress on stderr.
func TestTextReportAndProgress(t *testing.T) {
	repo := newTestRepo(t)

	repo.createFile("a.rs", "fn a() {}\nfn b() {}\nfn c() {}\n")
	repo.commitAs("Alice", "a")
	repo.createFile("b.rs", "fn d() {}\n")
	repo.commitAs("Bob", "b")

	stdout, stderr, code := repo.authorloc(nil, "--path", repo.dir, "--extensions", "rs")
	if code != 0 {
		t.Fatalf("exit code = %d\nstderr: %s", code, stderr)
	}

	want := "Total Lines of Code: 4\n\nLines of code per author:\nAlice: 3, 75.0%\nBob: 1, 25.0%\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if !strings.Contains(stderr, "Processing a.rs...") || !strings.Contains(stderr, "Processing b.rs...") {
		t.Errorf("stderr missing progress:\n%s", stderr)
	}
}

// TestUnusualNames covers paths with spaces and non-ASCII author names.
func TestUnusualNames(t *testing.T) {
	repo := newTestRepo(t)

	repo.createFile("dir with space/file name.py", "x = 1\ny = 2\n")
	repo.commitAs("Zoë Ångström", "py")

	r := parseReport(t, repo.authorlocOK("--json", "-p", ".", "-e", "PY"))
	if r.Total != 2 || len(r.Authors) != 1 || r.Authors[0].Author != "Zoë Ångström" {
		t.Errorf("report = %+v", r)
	}
}

// TestExitCodes checks the process exit codes for each error class.
func TestExitCodes(t *testing.T) {
	repo := newTestRepo(t)
	repo.createFile("a.go", "package a\n")
	repo.commitAs("Alice", "a")

	notRepo := t.TempDir()

	tests := []struct {
		name string
		env  []string
		args []string
		want int
	}{
		{"success", nil, []string{"-p", ".", "-e", "go"}, 0},
		{"no matching files", nil, []string{"-p", ".", "-e", "zig"}, 0},
		{"missing extensions", nil, []string{"-p", "."}, 1},
		{"unknown flag", nil, []string{"--nope"}, 1},
		{"bad format", nil, []string{"-p", ".", "-e", "go", "--format", "xml"}, 1},
		{"bad color from environment", []string{"AUTHORLOC_COLOR=bogus"}, []string{"-p", ".", "-e", "go"}, 1},
		{"not a repository", []string{"GIT_CEILING_DIRECTORIES=" + filepath.Dir(notRepo)}, []string{"-p", notRepo, "-e", "go"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := repo.authorloc(tt.env, tt.args...)
			if code != tt.want {
				t.Errorf("exit code = %d, want %d\nstderr: %s", code, tt.want, stderr)
			}
		})
	}
}

// TestEnvFileDefaults checks that .env in the working directory supplies flags.
func TestEnvFileDefaults(t *testing.T) {
	repo := newTestRepo(t)
	repo.createFile("a.go", "package a\n")
	repo.createFile(".env", "AUTHORLOC_PATH=.\nAUTHORLOC_EXTENSIONS=go\n")
	repo.commitAs("Alice", "a")

	r := parseReport(t, repo.authorlocOK("--json"))
	if r.Total != 1 {
		t.Errorf("total = %d, want 1", r.Total)
	}
}

// TestBrokenEnvFile checks that an unparsable .env is skipped, not fatal.
func TestBrokenEnvFile(t *testing.T) {
	repo := newTestRepo(t)
	repo.createFile("a.go", "package a\n")
	repo.commitAs("Alice", "a")
	repo.createFile(".env", "GREETING=\"hello\n")

	for _, args := range [][]string{{"-p", ".", "-e", "go"}, {"files", "-p", ".", "-e", "go"}} {
		stdout, stderr, code := repo.authorloc(nil, args...)
		if code != 0 {
			t.Errorf("%v: exit code = %d, want 0\nstderr: %s", args, code, stderr)
		}
		if stdout == "" {
			t.Errorf("%v: no output", args)
		}
		if !strings.Contains(stderr, "ignoring env file") {
			t.Errorf("%v: stderr missing warning:\n%s", args, stderr)
		}
	}
}

// TestJSONErrorOnlyOnStdout checks that a JSON-mode failure is reported once.
func TestJSONErrorOnlyOnStdout(t *testing.T) {
	repo := newTestRepo(t)
	notRepo := t.TempDir()

	stdout, stderr, code := repo.authorloc(
		[]string{"GIT_CEILING_DIRECTORIES=" + filepath.Dir(notRepo)},
		"--json", "-p", notRepo, "-e", "go")
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(stdout, `"code":2`) {
		t.Errorf("stdout = %q, want JSON error", stdout)
	}
	if strings.TrimSpace(stderr) != "" {
		t.Errorf("stderr = %q, want empty in JSON mode", stderr)
	}
}

// TestFilesCommand checks the dry-run listing.
func TestFilesCommand(t *testing.T) {
	repo := newTestRepo(t)
	repo.createFile("b.go", "package b\n")
	repo.createFile("a.go", "package a\n")
	repo.createFile("notes.txt", "n\n")
	repo.commitAs("Alice", "files")

	out := repo.authorlocOK("files", "-p", ".", "-e", "go")
	if out != "a.go\nb.go\n" {
		t.Errorf("files output = %q", out)
	}
}
