package output

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NumberFormatter renders counts for display using a locale's digit grouping.
type NumberFormatter struct {
	printer *message.Printer
	tag     language.Tag
}

// NewNumberFormatter returns a formatter for the given BCP 47 locale.
// An empty locale means English.
func NewNumberFormatter(locale string) (*NumberFormatter, error) {
	tag := language.English
	if locale != "" {
		parsed, err := language.Parse(locale)
		if err != nil {
			return nil, NewUserError("invalid locale " + strconv.Quote(locale) + ": " + err.Error())
		}
		tag = parsed
	}
	return &NumberFormatter{printer: message.NewPrinter(tag), tag: tag}, nil
}

// Locale returns the locale tag the formatter uses.
func (f *NumberFormatter) Locale() string {
	return f.tag.String()
}

// Int formats n with thousands separators, e.g. 1234567 -> "1,234,567".
func (f *NumberFormatter) Int(n int) string {
	return f.printer.Sprintf("%d", n)
}

// Percent formats p with one decimal place and a trailing percent sign.
// The decimal point is always '.', matching the report's plain-text layout.
func Percent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}
