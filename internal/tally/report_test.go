package tally

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tallyOf(counts map[string]int) *Tally {
	tl := New()
	for author, n := range counts {
		tl.AddN(author, n)
	}
	return tl
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name         string
		count, total int
		want         float64
	}{
		{"three quarters", 3, 4, 75},
		{"all", 5, 5, 100},
		{"none", 0, 5, 0},
		{"zero total", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.count, tt.total); got != tt.want {
				t.Errorf("Percent(%d, %d) = %v, want %v", tt.count, tt.total, got, tt.want)
			}
		})
	}
}

func TestBuildReport(t *testing.T) {
	report := BuildReport(tallyOf(map[string]int{"Alice": 3, "Bob": 1}), SortExact)

	want := Report{
		Total: 4,
		Entries: []Entry{
			{Author: "Alice", Lines: 3, Percent: 75},
			{Author: "Bob", Lines: 1, Percent: 25},
		},
		Sort: SortExact,
	}
	if diff := cmp.Diff(want, report); diff != "" {
		t.Errorf("BuildReport() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildReportLinesSumToTotal(t *testing.T) {
	report := BuildReport(tallyOf(map[string]int{
		"Alice": 7, "Bob": 13, "Carol": 1, "": 2, "Dave": 13,
	}), SortExact)

	sum := 0
	var pct float64
	for _, e := range report.Entries {
		sum += e.Lines
		pct += e.Percent
	}
	if sum != report.Total {
		t.Errorf("sum of lines = %d, want %d", sum, report.Total)
	}
	if pct < 99.999 || pct > 100.001 {
		t.Errorf("sum of percents = %v, want 100", pct)
	}
}

func TestBuildReportEmpty(t *testing.T) {
	for _, tl := range []*Tally{nil, New()} {
		report := BuildReport(tl, SortExact)
		if !report.Empty() {
			t.Errorf("Empty() = false, want true")
		}
		if len(report.Entries) != 0 {
			t.Errorf("Entries = %v, want none", report.Entries)
		}
	}
}

func TestBuildReportEmptyAuthorName(t *testing.T) {
	report := BuildReport(tallyOf(map[string]int{"": 1, "Alice": 1}), SortExact)

	want := []Entry{
		{Author: "", Lines: 1, Percent: 50},
		{Author: "Alice", Lines: 1, Percent: 50},
	}
	if diff := cmp.Diff(want, report.Entries); diff != "" {
		t.Errorf("Entries mismatch (-want +got):\n%s", diff)
	}
}

func TestSortEntries(t *testing.T) {
	// 3 of 7 is 42.86%, 2 of 7 is 28.57% each.
	counts := map[string]int{"Zed": 2, "Amy": 2, "Kim": 3}

	tests := []struct {
		name string
		mode SortMode
		want []string
	}{
		{"exact breaks ties by name", SortExact, []string{"Kim", "Amy", "Zed"}},
		{"truncated keeps name order within a point", SortTruncated, []string{"Kim", "Amy", "Zed"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := BuildReport(tallyOf(counts), tt.mode)
			var got []string
			for _, e := range report.Entries {
				got = append(got, e.Author)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortTruncatedIgnoresFraction(t *testing.T) {
	// 10.9% and 10.1% share the truncated key 10, so name order wins.
	entries := []Entry{
		{Author: "Bob", Lines: 109, Percent: 10.9},
		{Author: "Alice", Lines: 101, Percent: 10.1},
		{Author: "Carol", Lines: 200, Percent: 20.0},
	}

	SortEntries(entries, SortTruncated)

	want := []string{"Carol", "Alice", "Bob"}
	var got []string
	for _, e := range entries {
		got = append(got, e.Author)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	SortEntries(entries, SortExact)
	if entries[1].Author != "Bob" {
		t.Errorf("exact order second = %q, want Bob", entries[1].Author)
	}
}

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		in      string
		want    SortMode
		wantErr bool
	}{
		{"", SortExact, false},
		{"exact", SortExact, false},
		{"truncated", SortTruncated, false},
		{"random", SortExact, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSortMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSortMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if !tt.wantErr && tt.in != "" && got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}
