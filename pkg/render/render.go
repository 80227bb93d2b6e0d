// Package render paints a computed report plan onto a raster canvas and
// serializes it as PNG. All positions come from the layout engine; this
// package only draws.
package render

import (
	"bytes"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/usmankhanpk/riverboard/pkg/fonts"
	"github.com/usmankhanpk/riverboard/pkg/layout"
	"github.com/usmankhanpk/riverboard/pkg/report"
)

// Sheet colors.
const (
	colorBackground = "#FFF9F0"
	colorBand       = "#0A6B46" // header and footer bands
	colorSeparator  = "#FFFFFF"
	colorInk        = "#111111"
	colorLabel      = "#1a1a1a"
	colorConnector  = "#222222"
)

// Header band text.
const (
	titleLine1 = "NEOC Daily Rivers"
	titleLine2 = "Situation Update"
)

// Header geometry.
const (
	logoSize       = 170
	logoGap        = 30
	leadAfterLine1 = 10
	leadAfterLine2 = 20
	dateTimeGap    = 60
)

// DefaultLogoPath is the logo asset read from the working directory.
const DefaultLogoPath = "ndma_logo.png"

// Header is the date/time block of the sheet's header band.
type Header struct {
	DateText string
	TimeText string
}

// Artifact is a finished render. LogoMissing reports the degraded mode in
// which the logo asset could not be read and the header text took the full
// band width.
type Artifact struct {
	PNG         []byte
	LogoMissing bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogo overrides the logo asset path.
func WithLogo(path string) Option {
	return func(r *Renderer) { r.logoPath = path }
}

// Renderer paints report sheets with a fixed face set.
type Renderer struct {
	faces    *fonts.Set
	logoPath string
}

// New creates a renderer using the given faces.
func New(faces *fonts.Set, opts ...Option) *Renderer {
	r := &Renderer{faces: faces, logoPath: DefaultLogoPath}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render paints the sheet and returns it PNG-encoded. The only degraded
// outcome is a missing logo; everything else either succeeds or errors.
func (r *Renderer) Render(plan layout.Plan, readings []report.Reading, groups [][]int, hdr Header) (*Artifact, error) {
	m := plan.Metrics
	dc := gg.NewContext(m.Width, plan.Height)

	dc.SetHexColor(colorBackground)
	dc.Clear()

	logoMissing := r.paintHeader(dc, m, hdr)
	r.paintRows(dc, m, plan, readings)
	r.paintRail(dc, m, plan, readings, groups)

	dc.SetHexColor(colorBand)
	dc.DrawRectangle(0, float64(plan.Height-m.FooterH), float64(m.Width), float64(m.FooterH))
	dc.Fill()

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, err
	}
	return &Artifact{PNG: buf.Bytes(), LogoMissing: logoMissing}, nil
}

// paintHeader draws the band, the logo when available, and the three-line
// text block centered as a unit in the space left over. Returns true when
// the logo asset was unavailable.
func (r *Renderer) paintHeader(dc *gg.Context, m layout.Metrics, hdr Header) bool {
	dc.SetHexColor(colorBand)
	dc.DrawRectangle(0, 0, float64(m.Width), float64(m.HeaderH))
	dc.Fill()

	textStartX := m.MarginL
	availableW := m.Width - 2*m.MarginL
	logoMissing := true
	if logo, err := imaging.Open(r.logoPath); err == nil {
		logoMissing = false
		logo := imaging.Resize(logo, logoSize, logoSize, imaging.Lanczos)
		logoY := (m.HeaderH - logoSize) / 2
		dc.DrawImage(logo, m.MarginL, logoY)
		textStartX = m.MarginL + logoSize + logoGap
		availableW = m.Width - textStartX - m.MarginL
	}

	line1W := r.faces.Width(titleLine1, layout.FontTitle)
	line2W := r.faces.Width(titleLine2, layout.FontTitle)
	dateW := r.faces.Width(hdr.DateText, layout.FontDate)
	timeW := r.faces.Width(hdr.TimeText, layout.FontDate)
	dateTimeW := dateW + dateTimeGap + timeW
	blockW := max(line1W, line2W, dateTimeW)

	blockX := float64(textStartX) + (float64(availableW)-blockW)/2
	blockH := m.TitleSize + leadAfterLine1 + m.TitleSize + leadAfterLine2 + m.DateSize
	y := float64((m.HeaderH - blockH) / 2)

	dc.SetHexColor(colorSeparator)
	r.drawText(dc, layout.FontTitle, titleLine1, blockX+(blockW-line1W)/2, y)
	y += float64(m.TitleSize + leadAfterLine1)
	r.drawText(dc, layout.FontTitle, titleLine2, blockX+(blockW-line2W)/2, y)
	y += float64(m.TitleSize + leadAfterLine2)
	dateX := blockX + (blockW-dateTimeW)/2
	r.drawText(dc, layout.FontDate, hdr.DateText, dateX, y)
	r.drawText(dc, layout.FontDate, hdr.TimeText, dateX+dateW+dateTimeGap, y)

	dc.SetHexColor(colorSeparator)
	dc.DrawRectangle(0, float64(m.HeaderH), float64(m.Width), float64(m.SepH))
	dc.Fill()

	return logoMissing
}

// paintRows draws each row's heading and styled status line(s) at the
// positions the plan computed.
func (r *Renderer) paintRows(dc *gg.Context, m layout.Metrics, plan layout.Plan, readings []report.Reading) {
	for i, reading := range readings {
		row := plan.Rows[i]

		dc.SetHexColor(colorInk)
		r.drawText(dc, layout.FontH1, reading.Title+":", float64(m.MarginL), float64(row.TitleY))

		lines := layout.StatusLines(reading, row.Wrapped)
		y := float64(row.StatusTop)
		for _, line := range lines {
			x := float64(m.MarginL)
			for _, run := range line {
				dc.SetHexColor(run.Color)
				r.drawText(dc, run.Font, run.Text, x, y)
				x += r.faces.Width(run.Text, run.Font)
			}
			y += float64(m.BodyLineH())
		}
	}
}

// paintRail draws the right-hand rail: severity dots, short labels, and the
// connector segments joining stations of the same river.
func (r *Renderer) paintRail(dc *gg.Context, m layout.Metrics, plan layout.Plan, readings []report.Reading, groups [][]int) {
	for i, reading := range readings {
		row := plan.Rows[i]
		dc.SetHexColor(reading.Severity.Color())
		dc.DrawCircle(float64(m.DotX), float64(row.DotY), float64(m.DotR))
		dc.Fill()

		dc.SetHexColor(colorLabel)
		r.drawText(dc, layout.FontRight, reading.ShortName,
			float64(m.DotX+m.LabelPadX), float64(row.DotY-m.RightSize/2))
	}

	dc.SetHexColor(colorConnector)
	dc.SetLineWidth(float64(m.LineW))
	for _, s := range plan.Segments(groups) {
		dc.DrawLine(float64(s.X), float64(s.Y1), float64(s.X), float64(s.Y2))
		dc.Stroke()
	}
}

// drawText draws s with its top edge at y (plans are top-anchored; gg
// anchors at the baseline).
func (r *Renderer) drawText(dc *gg.Context, f layout.Font, s string, x, y float64) {
	dc.SetFontFace(r.faces.Face(f))
	dc.DrawString(s, x, y+r.faces.Ascent(f))
}
