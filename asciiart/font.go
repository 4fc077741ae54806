package asciiart

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/font/opentype"
)

// GlyphMetrics is the ink bounding box of one representative glyph rendered
// in the resolved face, in pixels. Both fields are strictly positive.
type GlyphMetrics struct {
	Width  int
	Height int
}

/*
FaceLoader resolves a font name to a face at a point size. An error means
"this name is unavailable here" and makes the resolver move on to the next
preference; it is never surfaced to conversion callers.
*/
type FaceLoader interface {
	Load(name string, points float64) (font.Face, error)
}

/*
DirLoader loads fonts from font directories on disk. A name may be a bare
family name ("SimHei"), a file name ("simsun.ttc") or a path; bare names are
probed with the common OpenType extensions. Directories are searched
recursively with case-insensitive file-name matching, since platforms
disagree on font file casing.

An empty Dirs slice means the platform default directories.
*/
type DirLoader struct {
	Dirs []string
}

func (l DirLoader) Load(name string, points float64) (font.Face, error) {
	// Explicit paths skip the directory search.
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, os.PathSeparator) || filepath.IsAbs(name) {
		return loadFaceFile(name, points)
	}

	for _, candidate := range candidateFileNames(name) {
		for _, dir := range l.dirs() {
			path := findFontFile(dir, candidate)
			if path == "" {
				continue
			}
			face, err := loadFaceFile(path, points)
			if err != nil {
				continue
			}
			return face, nil
		}
	}

	return nil, fmt.Errorf("asciiart: font %q not found", name)
}

func (l DirLoader) dirs() []string {
	if len(l.Dirs) > 0 {
		return l.Dirs
	}
	return defaultFontDirs()
}

// candidateFileNames expands a font name into the file names to probe for.
func candidateFileNames(name string) []string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".ttc", ".otf":
		return []string{name}
	}
	return []string{name + ".ttf", name + ".ttc", name + ".otf"}
}

// findFontFile walks dir looking for a file whose base name matches target
// case-insensitively. Returns "" when nothing matches.
func findFontFile(dir, target string) string {
	var found string

	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(d.Name(), target) {
			found = path
			return fs.SkipAll
		}
		return nil
	})

	return found
}

// loadFaceFile parses a font file and builds a face at the given point size.
// TrueType collections (.ttc) contribute their first font.
func loadFaceFile(path string, points float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sfntFont *opentype.Font
	if strings.EqualFold(filepath.Ext(path), ".ttc") {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		sfntFont, err = coll.Font(0)
		if err != nil {
			return nil, err
		}
	} else {
		sfntFont, err = opentype.Parse(data)
		if err != nil {
			return nil, err
		}
	}

	return opentype.NewFace(sfntFont, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func defaultFontDirs() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{`C:\Windows\Fonts`}
	case "darwin":
		return []string{"/System/Library/Fonts", "/Library/Fonts"}
	default:
		dirs := []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, filepath.Join(home, ".fonts"))
		}
		return dirs
	}
}

// builtinFaceName identifies the baked-in fallback face in RenderInfo.
const builtinFaceName = "builtin"

// points is the fixed font size per mode.
func (m Mode) points() float64 {
	if m == ModeWideGlyph {
		return 12
	}
	return 10
}

// sampleGlyph is the representative character whose ink box stands in for
// every cell of the grid.
func (m Mode) sampleGlyph() string {
	if m == ModeWideGlyph {
		return "中"
	}
	return "A"
}

func defaultFontList(m Mode) []string {
	if m == ModeWideGlyph {
		return []string{
			"simhei.ttf", "simsun.ttc", "msyh.ttc", "arialuni.ttf",
			"SimHei", "SimSun", "Microsoft YaHei", "Arial Unicode MS",
		}
	}
	return []string{
		"consola.ttf", "cour.ttf", "DejaVuSansMono.ttf", "Arial.ttf",
	}
}

/*
resolveFace walks the preference list in order and returns the first face
that loads, along with the name that won. Load failures are expected on most
machines — this is a degraded-quality fallback chain, not an error path — so
they are skipped silently. Exhausting the list falls back to the baked-in
bitmap face, which always succeeds.
*/
func resolveFace(loader FaceLoader, prefs []string, mode Mode) (font.Face, string) {
	points := mode.points()

	for _, name := range prefs {
		face, err := loader.Load(name, points)
		if err != nil {
			continue
		}
		return face, name
	}

	logger().Warn("no preferred font available, using builtin face",
		"mode", mode.String())
	return inconsolata.Regular8x16, builtinFaceName
}

/*
measureGlyph measures the ink bounding box of the mode's representative glyph
in the given face. A face that renders the probe with zero ink (the builtin
Latin face has no CJK glyphs, for instance) would produce a degenerate
zero-area canvas, so zero measurements substitute the mode's point size.
*/
func measureGlyph(face font.Face, mode Mode) GlyphMetrics {
	bounds, _ := font.BoundString(face, mode.sampleGlyph())

	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w <= 0 {
		w = int(mode.points())
	}
	if h <= 0 {
		h = int(mode.points())
	}

	return GlyphMetrics{Width: w, Height: h}
}
