package report

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// flowPrinter renders integers with en-style thousands separators.
var flowPrinter = message.NewPrinter(language.English)

// FormatFlow formats a raw discharge value for display. Existing thousands
// separators are stripped, the value is parsed as an integer and re-rendered
// with separators plus the " cusecs" unit. A value that does not parse as an
// integer is passed through unchanged with the unit appended.
func FormatFlow(raw string) string {
	clean := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	n, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return raw + " cusecs"
	}
	return flowPrinter.Sprintf("%d cusecs", n)
}
