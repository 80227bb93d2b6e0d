// Package report holds the domain model for the rivers situation report:
// flood severity levels, discharge trends, the declarative station table,
// and the per-run readings resolved from the upstream feed.
package report

import "strings"

// Severity is a discrete flood-risk level attached to a station reading.
type Severity int

// Severity levels, ordered from calm to exceptional.
const (
	Normal Severity = iota
	Low
	Medium
	High
	VeryHigh
	ExHigh
)

// severityAliases maps the historical upstream spellings onto canonical
// levels. The feed has emitted underscore and space separated variants as
// well as the short "V_HIGH" form; all of them collapse here.
var severityAliases = map[string]Severity{
	"NORMAL":             Normal,
	"LOW":                Low,
	"MEDIUM":             Medium,
	"HIGH":               High,
	"VERY_HIGH":          VeryHigh,
	"V_HIGH":             VeryHigh,
	"EX_HIGH":            ExHigh,
	"EXCEPTIONALLY_HIGH": ExHigh,
}

// ParseSeverity canonicalizes an upstream status code into a Severity.
// Matching is case-insensitive and treats spaces as underscores, so
// "very high", "VERY_HIGH" and "V_HIGH" all resolve to VeryHigh.
// Unknown codes resolve to Normal.
func ParseSeverity(code string) Severity {
	key := strings.ToUpper(strings.TrimSpace(code))
	key = strings.ReplaceAll(key, " ", "_")
	if s, ok := severityAliases[key]; ok {
		return s
	}
	return Normal
}

// Label returns the display label used in the rendered status line.
func (s Severity) Label() string {
	switch s {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	case VeryHigh:
		return "V High"
	case ExHigh:
		return "Ex High"
	default:
		return "Normal"
	}
}

// Color returns the hex color used for the severity phrase and the
// station's indicator dot.
func (s Severity) Color() string {
	switch s {
	case Low:
		return "#00B5E2"
	case Medium:
		return "#F2B233"
	case High:
		return "#C95E0C"
	case VeryHigh:
		return "#FF2222"
	case ExHigh:
		return "#5A0A0A"
	default:
		return "#0F8A26"
	}
}

// String implements fmt.Stringer using the display label.
func (s Severity) String() string { return s.Label() }
