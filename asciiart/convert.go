package asciiart

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/google/uuid"

	// extra source formats beyond the stdlib set
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

/*
Mode selects the character family the converter renders with. It drives the
base grid-width heuristic, the font preference list, the font point size and
the glyph the resolver measures.
*/
type Mode int

const (
	// ModeASCII renders with single-width Western glyphs.
	ModeASCII Mode = iota
	// ModeWideGlyph renders with wide (CJK) glyphs on a narrower grid.
	ModeWideGlyph
)

func (m Mode) String() string {
	switch m {
	case ModeASCII:
		return "ascii"
	case ModeWideGlyph:
		return "wide-glyph"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

const (
	// AbsoluteMaxDimension is the hard ceiling, in pixels, for either output
	// canvas dimension. A caller-configured ceiling can lower the effective
	// limit but never raise it above this value.
	AbsoluteMaxDimension = 6000

	// DefaultOutputPrefix is the filename prefix of written artifacts. The
	// cleanup collaborator scans for this prefix when evicting old files.
	DefaultOutputPrefix = "ascii_result"

	// DefaultCharset is the luminance ramp used in ModeASCII, darkest first.
	DefaultCharset = "@#S%?*+;:,."

	// DefaultWideGlyphCharset is the luminance ramp used in ModeWideGlyph
	// when the caller does not supply one.
	DefaultWideGlyphCharset = "爱你喜欢我他她它好美帅酷炫酷帅呆了棒赞优强牛厉害威武霸气萌萌哒赞赞赞顶顶顶神神神"
)

/*
Converter turns a bitmap image into a rasterized ASCII-art picture: the source
is resampled to a character grid, each cell's luminance picks one rune from
Charset, and the resulting rows are drawn back onto a fresh white canvas with
a resolved monospace font.

A Converter is a plain value holding configuration; it keeps no per-call
state, so one instance may serve concurrent conversions. Every conversion is a
blocking, CPU-bound call with no cancellation of its own — callers that need
timeouts must enforce them around the call.
*/
type Converter struct {
	// Scale multiplies the mode's base grid width. It must already be
	// clamped to whatever bounds the caller enforces; the converter trusts
	// it as-is.
	Scale float64

	// Charset is the luminance ramp, ordered darkest to lightest by
	// convention (index 0 maps to luminance bucket 0). It must contain at
	// least one rune. A single-rune charset degenerates every cell to that
	// rune, which is valid.
	Charset string

	// Mode selects the glyph family. See Mode.
	Mode Mode

	// MaxDimension is the caller's ceiling for either output dimension in
	// pixels. The effective ceiling is the smaller of this value and
	// AbsoluteMaxDimension.
	MaxDimension int

	// OutputDir is where Convert* writes artifacts. The converter does not
	// own the directory lifecycle.
	OutputDir string

	// OutputPrefix names written artifacts; see DefaultOutputPrefix.
	OutputPrefix string

	// Loader resolves font names to faces. Nil means the platform directory
	// loader with default font directories.
	Loader FaceLoader

	// ASCIIFonts and WideGlyphFonts are the ordered font preference lists
	// per mode. Empty slices fall back to the built-in lists.
	ASCIIFonts     []string
	WideGlyphFonts []string
}

// Option mutates a Converter during construction.
type Option func(*Converter)

/*
NewDefault initializes a Converter with default parameters:

  - Scale: 1.0
  - Charset: DefaultCharset
  - Mode: ModeASCII
  - MaxDimension: AbsoluteMaxDimension
  - OutputDir: the system temp directory
  - OutputPrefix: DefaultOutputPrefix
  - Loader: platform directory loader
  - font preference lists: built-in per-mode lists
*/
func NewDefault() *Converter {
	return &Converter{
		Scale:        1.0,
		Charset:      DefaultCharset,
		Mode:         ModeASCII,
		MaxDimension: AbsoluteMaxDimension,
		OutputDir:    os.TempDir(),
		OutputPrefix: DefaultOutputPrefix,
	}
}

// New initializes a Converter with default parameters, then applies options.
func New(opts ...Option) *Converter {
	c := NewDefault()

	for _, o := range opts {
		o(c)
	}

	return c
}

/*
RenderInfo reports the derived geometry of one conversion: the character grid
resolution, the measured glyph cell, and the font that won the preference
list (or "builtin" for the baked-in fallback face).
*/
type RenderInfo struct {
	GridWidth  int
	GridHeight int
	Glyph      GlyphMetrics
	FontName   string
}

/*
ConvertReader decodes an image from r, converts it and writes the resulting
PNG artifact under OutputDir. It returns the absolute path of the artifact.

Formats supported are those registered with image.Decode; this package
registers gif, jpeg, png, bmp, tiff and webp. Decode failures are returned as
*DecodeError and are not retried — the caller owns re-fetching input bytes.
*/
func (c *Converter) ConvertReader(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", &DecodeError{Err: err}
	}

	return c.convert(img)
}

// ConvertBytes converts an encoded image held in memory. See ConvertReader.
func (c *Converter) ConvertBytes(b []byte) (string, error) {
	return c.ConvertReader(bytes.NewReader(b))
}

// ConvertFile converts the image file at path. See ConvertReader.
func (c *Converter) ConvertFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return c.ConvertReader(f)
}

/*
Render runs the pipeline on an already-decoded image and returns the drawn
canvas without persisting anything. Callers that own their storage can encode
the canvas themselves; Convert* wraps Render with PNG encoding and a
uniquely-named write.

Render rejects with *SizeExceededError before the canvas is allocated if
either final dimension would exceed the effective ceiling.
*/
func (c *Converter) Render(src image.Image) (*image.RGBA, RenderInfo, error) {
	ramp := []rune(c.Charset)
	if len(ramp) == 0 {
		return nil, RenderInfo{}, errors.New("asciiart: charset must contain at least one character")
	}

	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return nil, RenderInfo{}, errors.New("asciiart: source image is empty")
	}

	gw := gridWidth(srcW, c.Mode, c.Scale)

	face, fontName := resolveFace(c.faceLoader(), c.fontPrefs(), c.Mode)
	glyph := measureGlyph(face, c.Mode)

	gh := gridHeight(gw, srcW, srcH, glyph)

	// The guard must run before any canvas allocation; it bounds worst-case
	// memory from adversarial scale values.
	finalW, finalH := gw*glyph.Width, gh*glyph.Height
	if limit := c.effectiveMaxDimension(); finalW > limit || finalH > limit {
		return nil, RenderInfo{}, &SizeExceededError{
			Width:  finalW,
			Height: finalH,
			Limit:  limit,
			Scale:  c.Scale,
		}
	}

	canvas := rasterize(src, gw, gh, ramp, face, glyph)

	info := RenderInfo{
		GridWidth:  gw,
		GridHeight: gh,
		Glyph:      glyph,
		FontName:   fontName,
	}
	return canvas, info, nil
}

// effectiveMaxDimension is the smaller of the caller ceiling and the hard
// ceiling. A non-positive caller value means "no caller ceiling".
func (c *Converter) effectiveMaxDimension() int {
	if c.MaxDimension > 0 && c.MaxDimension < AbsoluteMaxDimension {
		return c.MaxDimension
	}
	return AbsoluteMaxDimension
}

func (c *Converter) faceLoader() FaceLoader {
	if c.Loader != nil {
		return c.Loader
	}
	return DirLoader{}
}

func (c *Converter) fontPrefs() []string {
	switch c.Mode {
	case ModeWideGlyph:
		if len(c.WideGlyphFonts) > 0 {
			return c.WideGlyphFonts
		}
	default:
		if len(c.ASCIIFonts) > 0 {
			return c.ASCIIFonts
		}
	}
	return defaultFontList(c.Mode)
}

func (c *Converter) convert(img image.Image) (string, error) {
	canvas, info, err := c.Render(img)
	if err != nil {
		return "", err
	}

	path, err := writeArtifact(canvas, c.outputDir(), c.outputPrefix())
	if err != nil {
		return "", err
	}

	logger().Debug("artifact written",
		"path", path,
		"grid_width", info.GridWidth,
		"grid_height", info.GridHeight,
		"font", info.FontName)

	return path, nil
}

func (c *Converter) outputDir() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return os.TempDir()
}

func (c *Converter) outputPrefix() string {
	if c.OutputPrefix != "" {
		return c.OutputPrefix
	}
	return DefaultOutputPrefix
}

// artifactName builds a unique output filename: prefix, wall-clock timestamp
// and a random suffix. Uniqueness under concurrent conversions comes from the
// random suffix, not the timestamp.
func artifactName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.png",
		prefix, now.Format("20060102_150405"), uuid.NewString()[:8])
}

func writeArtifact(canvas *image.RGBA, dir, prefix string) (string, error) {
	path := filepath.Join(dir, artifactName(prefix, time.Now()))

	if err := encodePNG(canvas, path); err != nil {
		return "", err
	}

	return filepath.Abs(path)
}
