package layout

import (
	"fmt"

	"github.com/usmankhanpk/riverboard/pkg/report"
)

// inkColor is the default text color of the status line.
const inkColor = "#111111"

// Run is one styled span of the status line.
type Run struct {
	Text  string
	Font  Font
	Color string
}

// StatusSentence composes the plain status sentence used for the wrap
// measurement: the full line is measured in the regular body font even
// though several runs render bold.
func StatusSentence(r report.Reading) string {
	return fmt.Sprintf("Status – %s Flood (%s) and %s Trend", r.Severity.Label(), r.Flow, r.Trend)
}

// StatusRuns returns the seven styled runs of the single-line status form:
// label, colored severity phrase, punctuation, bold flow, connective,
// colored trend, suffix.
func StatusRuns(r report.Reading) []Run {
	return []Run{
		{Text: "Status – ", Font: FontBodyBold, Color: inkColor},
		{Text: fmt.Sprintf("%s Flood", r.Severity.Label()), Font: FontBodyBold, Color: r.Severity.Color()},
		{Text: " (", Font: FontBody, Color: inkColor},
		{Text: r.Flow, Font: FontBodyBold, Color: inkColor},
		{Text: ") and ", Font: FontBody, Color: inkColor},
		{Text: r.Trend, Font: FontBodyBold, Color: report.TrendColor(r.Trend)},
		{Text: " Trend", Font: FontBody, Color: inkColor},
	}
}

// StatusLines splits the status into its rendered lines. One line when the
// sentence fits; otherwise the split is always after the closing parenthesis
// of the flow value. Line one is never re-measured or re-balanced.
func StatusLines(r report.Reading, wrapped bool) [][]Run {
	runs := StatusRuns(r)
	if !wrapped {
		return [][]Run{runs}
	}
	line1 := append([]Run{}, runs[:4]...)
	line1 = append(line1, Run{Text: ")", Font: FontBody, Color: inkColor})
	line2 := []Run{
		{Text: "and ", Font: FontBody, Color: inkColor},
		runs[5],
		{Text: " Trend", Font: FontBody, Color: inkColor},
	}
	return [][]Run{line1, line2}
}
