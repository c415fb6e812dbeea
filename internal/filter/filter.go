// Package filter decides which tracked files take part in attribution.
package filter

import (
	"path"
	"slices"
	"strings"
)

// Extensions is a case-insensitive allow-list of file extensions.
// The zero value allows nothing.
type Extensions struct {
	allowed map[string]struct{}
}

// NewExtensions builds an allow-list from raw extension strings.
// Entries are trimmed, lower-cased and stripped of one leading ".";
// entries that end up empty are dropped, so a file can never match on an
// empty extension.
func NewExtensions(exts []string) Extensions {
	allowed := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		ext = strings.TrimPrefix(ext, ".")
		if ext == "" {
			continue
		}
		allowed[ext] = struct{}{}
	}
	return Extensions{allowed: allowed}
}

// ParseExtensions builds an allow-list from a comma-separated string such as
// "rs,go,PY".
func ParseExtensions(list string) Extensions {
	return NewExtensions(strings.Split(list, ","))
}

// Empty reports whether the allow-list has no usable entries.
func (e Extensions) Empty() bool {
	return len(e.allowed) == 0
}

// List returns the normalized extensions in sorted order.
func (e Extensions) List() []string {
	list := make([]string, 0, len(e.allowed))
	for ext := range e.allowed {
		list = append(list, ext)
	}
	slices.Sort(list)
	return list
}

// Match reports whether the file at p has an allowed extension.
func (e Extensions) Match(p string) bool {
	ext, ok := Extension(p)
	if !ok {
		return false
	}
	_, allowed := e.allowed[strings.ToLower(ext)]
	return allowed
}

// Filter returns the paths that match, in their original order, plus the
// number of paths skipped.
func (e Extensions) Filter(paths []string) (kept []string, skipped int) {
	for _, p := range paths {
		if e.Match(p) {
			kept = append(kept, p)
		} else {
			skipped++
		}
	}
	return kept, skipped
}

// Extension returns the text after the last "." in the base name of the
// slash-separated path p. It returns false when the name has no ".", when
// the only "." is the leading one of a dotfile such as ".gitignore", and
// when the name ends in ".".
func Extension(p string) (string, bool) {
	base := path.Base(p)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 || i == len(base)-1 {
		return "", false
	}
	return base[i+1:], true
}
