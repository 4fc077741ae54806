package asciiart

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"github.com/disintegration/gift"
	"github.com/nfnt/resize"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

/*
rasterize runs the pixel stages of the pipeline: resample the source to the
character grid, quantize each cell's luminance to a ramp rune, then draw the
resulting rows onto a fresh white canvas with the resolved face.

The caller has already vetted the final canvas dimensions; rasterize is the
first place an output-sized buffer is allocated.
*/
func rasterize(src image.Image, gridW, gridH int, ramp []rune, face font.Face, glyph GlyphMetrics) *image.RGBA {
	// Lanczos keeps aliasing down; every output pixel stands for one whole
	// character cell, so cheap nearest-neighbor sampling shows badly here.
	resampled := resize.Resize(uint(gridW), uint(gridH), src, resize.Lanczos3)
	gray := grayscale(resampled)

	rows := quantize(gray, ramp)

	canvas := image.NewRGBA(image.Rect(0, 0, gridW*glyph.Width, gridH*glyph.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	drawRows(canvas, rows, face, glyph)

	return canvas
}

func grayscale(img image.Image) *image.Gray {
	g := gift.New(gift.Grayscale())
	dst := image.NewGray(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

/*
quantize maps every pixel of the grid-sized grayscale image to a ramp rune
and assembles one string per row.

The bucket width is 256 / len(ramp) by integer division, so when the ramp
length does not divide 256 the last bucket is wider than the others. That
skew is inherited behavior and is kept as-is rather than rounded away. Ramps
longer than 256 entries floor the step at 1, which leaves the mapping
monotonic with the tail of the ramp unused.
*/
func quantize(gray *image.Gray, ramp []rune) []string {
	step := 256 / len(ramp)
	if step < 1 {
		step = 1
	}

	bounds := gray.Bounds()
	rows := make([]string, 0, bounds.Dy())

	var sb strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		sb.Reset()
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			idx := int(gray.GrayAt(x, y).Y) / step
			if idx > len(ramp)-1 {
				idx = len(ramp) - 1
			}
			sb.WriteRune(ramp[idx])
		}
		rows = append(rows, sb.String())
	}

	return rows
}

/*
drawRows draws each row string in black, left-to-right, top-to-bottom. Row i
occupies the horizontal band starting at y = i*glyph.Height; the drawer dot
sits one ascent below the band top so the ink lands inside the band.

Characters advance at the face's natural metrics. No kerning correction is
applied, so alignment quality is bounded by how close the face is to true
fixed-width.
*/
func drawRows(canvas *image.RGBA, rows []string, face font.Face, glyph GlyphMetrics) {
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	ascent := face.Metrics().Ascent

	for i, row := range rows {
		d.Dot = fixed.Point26_6{
			X: 0,
			Y: fixed.I(i*glyph.Height) + ascent,
		}
		d.DrawString(row)
	}
}

// encodePNG writes the canvas to path. Either a complete valid artifact
// exists afterwards or the file is removed and an error returned.
func encodePNG(canvas *image.RGBA, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, canvas); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
