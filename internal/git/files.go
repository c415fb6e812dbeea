package git

import (
	"bytes"
	"context"
	"unicode/utf8"

	"github.com/gorewood/authorloc/internal/output"
)

// ListTrackedFiles returns the paths of all files tracked in the repository
// at repoPath, relative to that directory, in the order git lists them.
// No filtering is applied.
//
// Paths are read NUL-delimited (git ls-files -z) so names containing
// newlines or other quoted characters come through unmodified.
func ListTrackedFiles(ctx context.Context, repoPath string) ([]string, error) {
	out, err := RunContext(ctx, repoPath, "ls-files", "-z")
	if err != nil {
		return nil, err
	}

	paths, err := splitNUL(out)
	if err != nil {
		return nil, err
	}

	logger().Debug("listed tracked files", "count", len(paths))
	return paths, nil
}

// splitNUL splits NUL-terminated records, dropping empty ones.
func splitNUL(out []byte) ([]string, error) {
	var paths []string
	for record := range bytes.SplitSeq(out, []byte{0}) {
		if len(record) == 0 {
			continue
		}
		if !utf8.Valid(record) {
			return nil, output.NewSystemErrorWithCause(
				"undecodable path from git ls-files: "+string(bytes.ToValidUTF8(record, []byte("?"))),
				ErrInvalidUTF8,
			)
		}
		paths = append(paths, string(record))
	}
	return paths, nil
}
