// Package git runs the git executable on behalf of authorloc.
//
// Every operation shells out to git with the target repository as the
// working directory, captures stdout and stderr, and converts failures into
// *output.ExitError values with ExitSystemError.
//
//	paths, err := git.ListTrackedFiles(ctx, "/path/to/repo")
//	text, err := git.BlameLinePorcelain(ctx, "/path/to/repo", "src/main.rs")
//
// Output that must be text is checked for valid UTF-8; undecodable output is
// reported with ErrInvalidUTF8 as the cause:
//
//	if errors.Is(err, git.ErrInvalidUTF8) { ... }
//
// Subprocesses are bound to the caller's context. Cancelling it kills git.
package git
