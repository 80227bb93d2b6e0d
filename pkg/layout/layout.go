// Package layout computes the geometry of a report sheet: canvas height,
// per-row vertical offsets, the wrap decision for the composed status line,
// and the anchor points for indicator dots and connector segments.
//
// The engine is pure. Text widths come in through the Measurer interface so
// that geometry can be tested with a fixed-advance fake, while production
// uses real font metrics.
package layout

import (
	"github.com/usmankhanpk/riverboard/pkg/report"
)

// Font identifies one of the sheet's text styles for measurement and
// rendering. Vertical math uses the nominal pixel sizes in Metrics; only
// horizontal extents depend on the actual face.
type Font int

// The sheet's text styles.
const (
	FontTitle Font = iota // header title lines
	FontDate              // header date/time line
	FontH1                // row headings
	FontBody              // status line, regular
	FontBodyBold          // status line, bold runs
	FontRight             // short labels beside the dots
)

// Measurer reports the rendered width of a string in a given style.
type Measurer interface {
	Width(s string, f Font) float64
}

// Metrics holds the fixed typographic constants of the sheet. All values
// are pixels on the 1080-wide canvas.
type Metrics struct {
	Width     int
	MarginL   int
	TextW     int // max width of the status line column
	TitleGap  int // gap between a row's title and its status block
	RowGap    int // gap between consecutive rows
	GroupGap  int // extra gap after the last row of a river group
	HeaderH   int
	SepH      int
	TopMargin int // gap between separator and first row
	DotX      int // center x of the indicator dots
	DotR      int
	LineW     int // connector stroke width
	LabelPadX int // gap between dot center and short label
	FooterH   int
	SafetyPad int
	MinHeight int

	TitleSize int
	DateSize  int
	H1Size    int
	BodySize  int
	RightSize int
}

// DefaultMetrics returns the sheet constants of the published report.
func DefaultMetrics() Metrics {
	const width = 1080
	return Metrics{
		Width:     width,
		MarginL:   48,
		TextW:     690,
		TitleGap:  12,
		RowGap:    24,
		GroupGap:  28,
		HeaderH:   250,
		SepH:      13,
		TopMargin: 26,
		DotX:      width - 230,
		DotR:      24,
		LineW:     6,
		LabelPadX: 44,
		FooterH:   32,
		SafetyPad: 24,
		MinHeight: 1920,
		TitleSize: 62,
		DateSize:  38,
		H1Size:    48,
		BodySize:  34,
		RightSize: 28,
	}
}

// BodyLineH is the line advance of the body font (1.35 leading, truncated).
func (m Metrics) BodyLineH() int {
	return m.BodySize * 135 / 100
}

// rowH is the worst-case height of one row: heading, gap, and a status
// block budgeted at two wrapped lines.
func (m Metrics) rowH() int {
	return m.H1Size + m.TitleGap + 2*m.BodyLineH() + m.RowGap
}

// Row is the computed vertical placement of one station row.
type Row struct {
	TitleY       int  // top of the row heading
	StatusTop    int  // top of the status block
	StatusBottom int  // bottom edge of the status block
	DotY         int  // indicator dot center; midpoint of the status block
	Wrapped      bool // whether the status line split onto two lines
}

// Plan is the full geometry of one sheet.
type Plan struct {
	Metrics Metrics
	Height  int
	Rows    []Row
}

// Build stacks the readings top to bottom in order and decides the wrap for
// each status line. The canvas height follows the actual stacking, floored
// at the minimum sheet height, so the classic nine-row sheet keeps its
// published dimensions while longer tables grow the canvas.
func Build(readings []report.Reading, groups [][]int, m Metrics, meas Measurer) Plan {
	gapAfter := groupBoundaries(groups, len(readings))

	rows := make([]Row, 0, len(readings))
	y := m.HeaderH + m.SepH + m.TopMargin
	bottom := y
	for i, r := range readings {
		titleY := y
		statusTop := titleY + m.H1Size + m.TitleGap

		lines := 1
		wrapped := meas.Width(StatusSentence(r), FontBody) > float64(m.TextW)
		if wrapped {
			lines = 2
		}
		statusBottom := statusTop + lines*m.BodyLineH()

		rows = append(rows, Row{
			TitleY:       titleY,
			StatusTop:    statusTop,
			StatusBottom: statusBottom,
			DotY:         (statusTop + statusBottom) / 2,
			Wrapped:      wrapped,
		})

		bottom = statusBottom
		y = statusBottom + m.RowGap
		if gapAfter[i] {
			y += m.GroupGap
		}
	}

	height := max(bottom+m.FooterH+m.SafetyPad, m.MinHeight)
	return Plan{Metrics: m, Height: height, Rows: rows}
}

// CanvasHeight is the worst-case sheet height for n rows: header, separator,
// top margin, two status lines per row, group boundary gaps, footer and
// safety padding, floored at the minimum sheet height. Build's actual height
// never exceeds it.
func CanvasHeight(n int, groups [][]int, m Metrics) int {
	h := m.HeaderH + m.SepH + m.TopMargin
	h += n * m.rowH()
	for i, gap := range groupBoundaries(groups, n) {
		if gap && i < n {
			h += m.GroupGap
		}
	}
	h += m.FooterH + m.SafetyPad
	return max(h, m.MinHeight)
}

// groupBoundaries marks the row indices after which the extra group gap is
// inserted: the last index of each group, unless it is the sheet's final
// row. Keys beyond n-1 are ignored by callers.
func groupBoundaries(groups [][]int, n int) map[int]bool {
	after := make(map[int]bool, len(groups))
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		last := g[len(g)-1]
		if last >= 0 && last < n-1 {
			after[last] = true
		}
	}
	return after
}

// Segment is one vertical connector between two dots of the same group,
// spanning from the bottom edge of the upper dot to the top edge of the
// lower dot so it never overlaps the circles.
type Segment struct {
	X, Y1, Y2 int
}

// Segments returns the connector segments for each consecutive pair of row
// indices within a group. Rows outside every group get no segment.
func (p Plan) Segments(groups [][]int) []Segment {
	var segs []Segment
	for _, g := range groups {
		for i := 0; i+1 < len(g); i++ {
			a, b := g[i], g[i+1]
			if a < 0 || b < 0 || a >= len(p.Rows) || b >= len(p.Rows) {
				continue
			}
			segs = append(segs, Segment{
				X:  p.Metrics.DotX,
				Y1: p.Rows[a].DotY + p.Metrics.DotR,
				Y2: p.Rows[b].DotY - p.Metrics.DotR,
			})
		}
	}
	return segs
}
