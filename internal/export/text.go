package export

import (
	"github.com/gorewood/authorloc/internal/output"
)

// barWidth is the width of the share bar drawn after each author on a terminal.
const barWidth = 20

// WriteText writes the human-readable report.
//
// The plain layout is fixed: the total with digit grouping, a blank line,
// the header, then "author: lines, P.P%" per author. On a terminal the same
// lines are styled and followed by a share bar.
func WriteText(printer *output.Printer, numbers *output.NumberFormatter, doc *Document) {
	styles := printer.Styles()

	printer.Print("%s %s\n\n",
		styles.Title.Render("Total Lines of Code:"),
		styles.Number.Render(numbers.Int(doc.Total)))
	printer.Println(styles.Title.Render("Lines of code per author:"))

	if len(doc.Authors) == 0 {
		printer.Println(styles.Dim.Render("No lines attributed."))
		return
	}

	for _, a := range doc.Authors {
		line := styles.Author.Render(a.Author) + ": " +
			styles.Number.Render(numbers.Int(a.Lines)) + ", " +
			output.Percent(a.Percent)
		if bar := printer.Bar(a.Percent, barWidth); bar != "" {
			line += "  " + bar
		}
		printer.Println(line)
	}
}
