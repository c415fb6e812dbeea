package tally

import (
	"cmp"
	"fmt"
	"slices"
)

// SortMode selects how report entries are ordered.
type SortMode int

const (
	// SortExact orders by exact percentage, descending. Ties are broken by
	// line count, then by author name, so output is reproducible.
	SortExact SortMode = iota

	// SortTruncated orders by percentage truncated to a whole number,
	// descending. Authors in the same whole percentage point keep
	// alphabetical order among themselves rather than their exact ranking.
	SortTruncated
)

// String returns the flag spelling of the mode.
func (m SortMode) String() string {
	switch m {
	case SortExact:
		return "exact"
	case SortTruncated:
		return "truncated"
	default:
		return fmt.Sprintf("SortMode(%d)", int(m))
	}
}

// ParseSortMode parses "exact" or "truncated". An empty string means exact.
func ParseSortMode(s string) (SortMode, error) {
	switch s {
	case "", "exact":
		return SortExact, nil
	case "truncated":
		return SortTruncated, nil
	default:
		return SortExact, fmt.Errorf("unknown sort mode %q (want exact or truncated)", s)
	}
}

// Entry is one author's share of the attributed lines.
type Entry struct {
	Author  string
	Lines   int
	Percent float64
}

// Report is the derived, read-only view of a tally.
// The sum of Entries[i].Lines always equals Total.
type Report struct {
	Total   int
	Entries []Entry
	Sort    SortMode
}

// Empty reports whether no lines were attributed.
func (r Report) Empty() bool {
	return r.Total == 0
}

// Percent returns count as a percentage of total.
// A zero total yields 0 rather than NaN.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// BuildReport computes percentages for every author in t and orders the
// entries according to mode. An empty or nil tally gives a report with a
// zero total and no entries.
func BuildReport(t *Tally, mode SortMode) Report {
	report := Report{Sort: mode}
	if t == nil {
		return report
	}

	report.Total = t.Total()
	report.Entries = make([]Entry, 0, t.Len())
	for author, n := range t.counts {
		report.Entries = append(report.Entries, Entry{
			Author:  author,
			Lines:   n,
			Percent: Percent(n, report.Total),
		})
	}

	SortEntries(report.Entries, mode)
	return report
}

// SortEntries orders entries in place according to mode.
func SortEntries(entries []Entry, mode SortMode) {
	switch mode {
	case SortTruncated:
		slices.SortFunc(entries, func(a, b Entry) int {
			return cmp.Compare(a.Author, b.Author)
		})
		slices.SortStableFunc(entries, func(a, b Entry) int {
			return cmp.Compare(int(b.Percent), int(a.Percent))
		})
	default:
		slices.SortFunc(entries, func(a, b Entry) int {
			return cmp.Or(
				cmp.Compare(b.Percent, a.Percent),
				cmp.Compare(b.Lines, a.Lines),
				cmp.Compare(a.Author, b.Author),
			)
		})
	}
}
