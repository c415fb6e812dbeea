package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/authorloc/internal/output"
)

// WriteYAML writes the document as YAML to w.
func WriteYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return output.NewSystemErrorWithCause("failed to write YAML report", err)
	}
	if err := enc.Close(); err != nil {
		return output.NewSystemErrorWithCause("failed to write YAML report", err)
	}
	return nil
}
