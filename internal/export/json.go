package export

import "github.com/gorewood/authorloc/internal/output"

// WriteJSON writes the document as indented JSON to the printer.
func WriteJSON(printer *output.Printer, doc *Document) error {
	if err := printer.WriteJSON(doc); err != nil {
		return output.NewSystemErrorWithCause("failed to write JSON report", err)
	}
	return nil
}
