// Package blame extracts author attributions from git blame porcelain output.
package blame

import (
	"iter"
	"strings"
)

// authorPrefix marks the header that names who last touched a line.
// "author-mail", "author-time" and friends do not match because the token
// must be followed by a single space.
const authorPrefix = "author "

// Authors returns an iterator over the author name of every "author <name>"
// line in text produced by git blame --line-porcelain. The name is everything
// after the single space, verbatim, and may be empty.
//
// Each matching line yields once. With --line-porcelain git emits exactly one
// such header per source line, so the number of names equals the number of
// attributed lines.
func Authors(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(text) {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")

			name, ok := strings.CutPrefix(line, authorPrefix)
			if !ok {
				continue
			}
			if !yield(name) {
				return
			}
		}
	}
}
