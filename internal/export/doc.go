// Package export renders attribution results for people and tools.
//
// # Supported Formats
//
//   - text: the plain report, styled with lipgloss on a terminal
//   - json: the [Document] as indented JSON
//   - yaml: the [Document] as YAML
//   - markdown: YAML frontmatter followed by an author table
//
// Every format is built from the same [Document], so totals and ordering
// agree across formats.
//
// Example text output:
//
//	Total Lines of Code: 1,204
//
//	Lines of code per author:
//	Alice: 903, 75.0%
//	Bob: 301, 25.0%
//
// Example markdown output:
//
//	---
//	schema: authorloc.report/v1
//	repository: /src/project
//	extensions: [go, rs]
//	sort: exact
//	total: 1204
//	---
//
//	# Lines of code per author
//
//	| Author | Lines | Share |
//	|--------|------:|------:|
//	| Alice | 903 | 75.0% |
//	| Bob | 301 | 25.0% |
package export
