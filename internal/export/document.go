package export

import (
	"fmt"

	"github.com/gorewood/authorloc/internal/attribution"
	"github.com/gorewood/authorloc/internal/output"
)

// Schema identifies the layout of Document.
const Schema = "authorloc.report/v1"

// Format selects how a report is rendered.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a --format value. An empty string means text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML, FormatMarkdown:
		return Format(s), nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", output.NewUserError(fmt.Sprintf("unknown format %q (want text, json, yaml or markdown)", s))
	}
}

// Document is the serializable form of an attribution result.
type Document struct {
	Schema     string         `json:"schema" yaml:"schema"`
	Repository string         `json:"repository" yaml:"repository"`
	Extensions []string       `json:"extensions" yaml:"extensions"`
	Sort       string         `json:"sort" yaml:"sort"`
	Total      int            `json:"total" yaml:"total"`
	Files      FileCounts     `json:"files" yaml:"files"`
	Failed     []FailedFile   `json:"failed,omitempty" yaml:"failed,omitempty"`
	Authors    []AuthorRecord `json:"authors" yaml:"authors"`
}

// FileCounts summarizes which tracked files took part.
type FileCounts struct {
	Tracked   int `json:"tracked" yaml:"tracked"`
	Processed int `json:"processed" yaml:"processed"`
	Skipped   int `json:"skipped" yaml:"skipped"`
	Failed    int `json:"failed" yaml:"failed"`
}

// FailedFile is a file whose blame failed in a keep-going run.
type FailedFile struct {
	Path  string `json:"path" yaml:"path"`
	Error string `json:"error" yaml:"error"`
}

// AuthorRecord is one author's share of the total.
type AuthorRecord struct {
	Author  string  `json:"author" yaml:"author"`
	Lines   int     `json:"lines" yaml:"lines"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// NewDocument converts an attribution result into a Document.
// Authors keep the report's order. Authors is never nil so that an empty
// report encodes as [] rather than null.
func NewDocument(result *attribution.Result) *Document {
	doc := &Document{
		Schema:     Schema,
		Repository: result.Repository,
		Extensions: result.Extensions,
		Sort:       result.Report.Sort.String(),
		Total:      result.Report.Total,
		Files: FileCounts{
			Tracked:   result.Tracked,
			Processed: result.Processed,
			Skipped:   result.Skipped,
			Failed:    len(result.Failed),
		},
		Authors: make([]AuthorRecord, 0, len(result.Report.Entries)),
	}
	if doc.Extensions == nil {
		doc.Extensions = []string{}
	}

	for _, f := range result.Failed {
		doc.Failed = append(doc.Failed, FailedFile{Path: f.Path, Error: f.Err.Error()})
	}
	for _, e := range result.Report.Entries {
		doc.Authors = append(doc.Authors, AuthorRecord{
			Author:  e.Author,
			Lines:   e.Lines,
			Percent: e.Percent,
		})
	}
	return doc
}
