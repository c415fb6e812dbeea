// Package tally accumulates blame attributions by author and derives the
// percentage report.
package tally

import (
	"iter"
	"maps"
)

// Tally maps author names to attributed line counts.
// The zero value is ready to use. Not safe for concurrent use.
type Tally struct {
	counts map[string]int
}

// New returns an empty tally.
func New() *Tally {
	return &Tally{counts: map[string]int{}}
}

// Add attributes one line to author.
func (t *Tally) Add(author string) {
	t.AddN(author, 1)
}

// AddN attributes n lines to author. Non-positive n is ignored.
func (t *Tally) AddN(author string, n int) {
	if n <= 0 {
		return
	}
	if t.counts == nil {
		t.counts = map[string]int{}
	}
	t.counts[author] += n
}

// AddAll attributes one line to each name yielded by authors and returns how
// many lines were added.
func (t *Tally) AddAll(authors iter.Seq[string]) int {
	added := 0
	for name := range authors {
		t.Add(name)
		added++
	}
	return added
}

// Merge adds every count from other into t.
func (t *Tally) Merge(other *Tally) {
	if other == nil {
		return
	}
	for author, n := range other.counts {
		t.AddN(author, n)
	}
}

// Count returns the number of lines attributed to author.
func (t *Tally) Count(author string) int {
	return t.counts[author]
}

// Len returns the number of distinct authors.
func (t *Tally) Len() int {
	return len(t.counts)
}

// Total returns the sum of all counts.
func (t *Tally) Total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Counts returns a copy of the author to count mapping.
func (t *Tally) Counts() map[string]int {
	if t.counts == nil {
		return map[string]int{}
	}
	return maps.Clone(t.counts)
}
