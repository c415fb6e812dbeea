package export

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/authorloc/internal/output"
)

// frontmatter is the header block of a markdown report.
type frontmatter struct {
	Schema     string   `yaml:"schema"`
	Repository string   `yaml:"repository"`
	Extensions []string `yaml:"extensions,flow"`
	Sort       string   `yaml:"sort"`
	Total      int      `yaml:"total"`
}

// Markdown formats the document as a markdown page.
func Markdown(doc *Document) (string, error) {
	var builder strings.Builder

	if err := writeFrontmatter(&builder, doc); err != nil {
		return "", err
	}
	writeAuthorTable(&builder, doc)
	writeFailures(&builder, doc)

	return builder.String(), nil
}

// writeFrontmatter writes the YAML frontmatter section. Values are encoded
// by yaml.v3 so paths and extensions are quoted when they need to be.
func writeFrontmatter(builder *strings.Builder, doc *Document) error {
	data, err := yaml.Marshal(frontmatter{
		Schema:     doc.Schema,
		Repository: doc.Repository,
		Extensions: doc.Extensions,
		Sort:       doc.Sort,
		Total:      doc.Total,
	})
	if err != nil {
		return output.NewSystemErrorWithCause("failed to write markdown frontmatter", err)
	}

	builder.WriteString("---\n")
	builder.Write(data)
	builder.WriteString("---\n\n")
	return nil
}

// writeAuthorTable writes the title and one table row per author.
func writeAuthorTable(builder *strings.Builder, doc *Document) {
	builder.WriteString("# Lines of code per author\n\n")

	if len(doc.Authors) == 0 {
		builder.WriteString("No lines attributed.\n")
		return
	}

	builder.WriteString("| Author | Lines | Share |\n")
	builder.WriteString("|--------|------:|------:|\n")
	for _, a := range doc.Authors {
		fmt.Fprintf(builder, "| %s | %d | %s |\n", escapeCell(a.Author), a.Lines, output.Percent(a.Percent))
	}
}

// writeFailures lists files skipped after a blame failure.
func writeFailures(builder *strings.Builder, doc *Document) {
	if len(doc.Failed) == 0 {
		return
	}

	builder.WriteString("\n## Failed files\n\n")
	for _, f := range doc.Failed {
		fmt.Fprintf(builder, "- `%s`: %s\n", f.Path, f.Error)
	}
}

// escapeCell keeps author names from breaking the table layout.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(s)
}
