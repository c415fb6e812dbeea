package git

import "context"

// BlameLinePorcelain runs git blame --line-porcelain for a single tracked
// file and returns the raw output. Every source line gets a full header
// block, including its "author <name>" line.
func BlameLinePorcelain(ctx context.Context, repoPath, file string) (string, error) {
	return RunText(ctx, repoPath, "blame", "--line-porcelain", "--", file)
}
