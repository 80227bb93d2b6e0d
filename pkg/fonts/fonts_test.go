package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/usmankhanpk/riverboard/pkg/layout"
)

func TestLoad(t *testing.T) {
	set, err := Load(layout.DefaultMetrics())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	styles := []layout.Font{
		layout.FontTitle,
		layout.FontDate,
		layout.FontH1,
		layout.FontBody,
		layout.FontBodyBold,
		layout.FontRight,
	}
	for _, f := range styles {
		if set.Face(f) == nil {
			t.Errorf("Face(%d) = nil", f)
		}
		if a := set.Ascent(f); a <= 0 {
			t.Errorf("Ascent(%d) = %v, want > 0", f, a)
		}
	}
}

func TestLoadFontEmbeddedFallback(t *testing.T) {
	// No system provides this candidate, so loading must land on the
	// embedded face.
	f, err := loadFont([]string{"definitely-not-a-real-font.ttf"}, goregular.TTF)
	if err != nil {
		t.Fatalf("loadFont with embedded fallback: %v", err)
	}
	if f == nil {
		t.Fatal("loadFont returned nil font")
	}
}

func TestLoadFontBadFallback(t *testing.T) {
	if _, err := loadFont([]string{"definitely-not-a-real-font.ttf"}, []byte("not a font")); err == nil {
		t.Error("expected parse error when the fallback data is not a font")
	}
}

func TestWidth(t *testing.T) {
	set, err := Load(layout.DefaultMetrics())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if w := set.Width("", layout.FontBody); w != 0 {
		t.Errorf("Width(empty) = %v, want 0", w)
	}

	short := set.Width("cusecs", layout.FontBody)
	long := set.Width("1,234,567 cusecs", layout.FontBody)
	if short <= 0 {
		t.Errorf("Width(short) = %v, want > 0", short)
	}
	if long <= short {
		t.Errorf("Width(long) = %v, want > Width(short) = %v", long, short)
	}

	// Title face is larger than the body face, so the same string is wider.
	if set.Width("Update", layout.FontTitle) <= set.Width("Update", layout.FontBody) {
		t.Error("title face should render wider than body face at the same string")
	}
}
