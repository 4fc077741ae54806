package asciiart

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

// failLoader rejects every name, forcing the builtin fallback.
type failLoader struct{}

func (failLoader) Load(string, float64) (font.Face, error) {
	return nil, errors.New("unavailable")
}

// scriptedLoader records the names it was asked for and succeeds on one.
type scriptedLoader struct {
	calls     []string
	succeedOn string
}

func (l *scriptedLoader) Load(name string, _ float64) (font.Face, error) {
	l.calls = append(l.calls, name)
	if name == l.succeedOn {
		return inconsolata.Regular8x16, nil
	}
	return nil, errors.New("unavailable")
}

func TestResolveFaceWalksPreferenceOrder(t *testing.T) {
	loader := &scriptedLoader{succeedOn: "second"}
	prefs := []string{"first", "second", "third"}

	_, name := resolveFace(loader, prefs, ModeASCII)

	if name != "second" {
		t.Errorf("resolved %q, want %q", name, "second")
	}
	// earlier failures are skipped, later names never tried
	want := []string{"first", "second"}
	if !reflect.DeepEqual(loader.calls, want) {
		t.Errorf("loader calls = %v, want %v", loader.calls, want)
	}
}

func TestResolveFaceExhaustionFallsBackToBuiltin(t *testing.T) {
	face, name := resolveFace(failLoader{}, []string{"a", "b"}, ModeASCII)

	if name != builtinFaceName {
		t.Errorf("resolved %q, want %q", name, builtinFaceName)
	}
	if face != inconsolata.Regular8x16 {
		t.Error("fallback face is not the builtin bitmap face")
	}
}

func TestMeasureGlyphPositive(t *testing.T) {
	m := measureGlyph(inconsolata.Regular8x16, ModeASCII)
	if m.Width <= 0 || m.Height <= 0 {
		t.Fatalf("metrics = %+v, want strictly positive", m)
	}
}

// zeroInkFace reports no glyphs at all, so every measurement comes out zero.
type zeroInkFace struct{}

func (zeroInkFace) Close() error { return nil }
func (zeroInkFace) Glyph(fixed.Point26_6, rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	return image.Rectangle{}, nil, image.Point{}, 0, false
}
func (zeroInkFace) GlyphBounds(rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	return fixed.Rectangle26_6{}, 0, false
}
func (zeroInkFace) GlyphAdvance(rune) (fixed.Int26_6, bool) { return 0, false }
func (zeroInkFace) Kern(rune, rune) fixed.Int26_6           { return 0 }
func (zeroInkFace) Metrics() font.Metrics                   { return font.Metrics{} }

func TestMeasureGlyphZeroInkSubstitutesPointSize(t *testing.T) {
	// Zero-area metrics would make a zero-area canvas; the mode's point
	// size stands in instead.
	m := measureGlyph(zeroInkFace{}, ModeWideGlyph)
	want := GlyphMetrics{Width: 12, Height: 12}
	if m != want {
		t.Errorf("wide-glyph metrics = %+v, want %+v", m, want)
	}

	m = measureGlyph(zeroInkFace{}, ModeASCII)
	want = GlyphMetrics{Width: 10, Height: 10}
	if m != want {
		t.Errorf("ascii metrics = %+v, want %+v", m, want)
	}
}

func TestModePoints(t *testing.T) {
	if got := ModeASCII.points(); got != 10 {
		t.Errorf("ascii points = %g, want 10", got)
	}
	if got := ModeWideGlyph.points(); got != 12 {
		t.Errorf("wide-glyph points = %g, want 12", got)
	}
}

func TestCandidateFileNames(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"simsun.ttc", []string{"simsun.ttc"}},
		{"consola.ttf", []string{"consola.ttf"}},
		{"SimHei", []string{"SimHei.ttf", "SimHei.ttc", "SimHei.otf"}},
		{"Microsoft YaHei", []string{"Microsoft YaHei.ttf", "Microsoft YaHei.ttc", "Microsoft YaHei.otf"}},
	}
	for _, tt := range tests {
		if got := candidateFileNames(tt.name); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("candidateFileNames(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDirLoaderMissingFont(t *testing.T) {
	loader := DirLoader{Dirs: []string{t.TempDir()}}
	if _, err := loader.Load("NoSuchFont", 10); err == nil {
		t.Fatal("expected error for missing font")
	}
}

func TestDirLoaderSkipsUnparseableFile(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "truetype")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	// Present but not a font; the loader must report failure, not panic.
	if err := os.WriteFile(filepath.Join(sub, "Fake.ttf"), []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := DirLoader{Dirs: []string{dir}}
	if _, err := loader.Load("fake", 10); err == nil {
		t.Fatal("expected error for unparseable font file")
	}
}

func TestFindFontFileCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(nested, "DejaVuSansMono.ttf")
	if err := os.WriteFile(path, []byte{0}, 0o644); err != nil {
		t.Fatal(err)
	}

	if got := findFontFile(dir, "dejavusansmono.ttf"); got != path {
		t.Errorf("findFontFile = %q, want %q", got, path)
	}
	if got := findFontFile(dir, "missing.ttf"); got != "" {
		t.Errorf("findFontFile = %q, want empty", got)
	}
}
