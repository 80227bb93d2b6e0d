// Package fonts loads the typefaces used by the report renderer.
//
// System fonts are discovered with go-findfont (DejaVu on Linux, Segoe UI on
// Windows). When no system font can be found the embedded Go fonts from
// golang.org/x/image are used, so rendering never fails for lack of a font
// file.
package fonts

import (
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/usmankhanpk/riverboard/pkg/layout"
)

// Candidate system faces, tried in order.
var (
	regularCandidates = []string{"segoeui.ttf", "DejaVuSans.ttf"}
	boldCandidates    = []string{"segoeuib.ttf", "DejaVuSans-Bold.ttf"}
)

// Set holds one face per text style of the sheet.
type Set struct {
	faces map[layout.Font]font.Face
}

// Load builds the face set for the given sheet metrics.
func Load(m layout.Metrics) (*Set, error) {
	regular, err := loadFont(regularCandidates, goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := loadFont(boldCandidates, gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}

	face := func(f *truetype.Font, size int) font.Face {
		return truetype.NewFace(f, &truetype.Options{Size: float64(size), DPI: 72})
	}
	return &Set{faces: map[layout.Font]font.Face{
		layout.FontTitle:    face(bold, m.TitleSize),
		layout.FontDate:     face(bold, m.DateSize),
		layout.FontH1:       face(bold, m.H1Size),
		layout.FontBody:     face(regular, m.BodySize),
		layout.FontBodyBold: face(bold, m.BodySize),
		layout.FontRight:    face(bold, m.RightSize),
	}}, nil
}

// loadFont returns the first candidate the system provides, or the embedded
// fallback.
func loadFont(candidates []string, fallback []byte) (*truetype.Font, error) {
	for _, name := range candidates {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if f, err := truetype.Parse(data); err == nil {
			return f, nil
		}
	}
	return truetype.Parse(fallback)
}

// Face returns the face for a text style.
func (s *Set) Face(f layout.Font) font.Face {
	return s.faces[f]
}

// Width implements layout.Measurer.
func (s *Set) Width(text string, f layout.Font) float64 {
	return float64(font.MeasureString(s.faces[f], text)) / 64
}

// Ascent returns the ascent of a style's face in pixels, used to convert
// top-anchored layout coordinates to text baselines.
func (s *Set) Ascent(f layout.Font) float64 {
	return float64(s.faces[f].Metrics().Ascent) / 64
}

var _ layout.Measurer = (*Set)(nil)
