package asciiart

import "math"

// Base-width heuristic per mode: wide glyphs carry more visual information
// per cell, so they get a narrower grid than single-width glyphs.
const (
	asciiBaseDivisor = 6
	asciiBaseMin     = 80
	asciiBaseMax     = 500

	wideBaseDivisor = 10
	wideBaseMin     = 50
	wideBaseMax     = 120
)

// baseGridWidth derives the unscaled character-grid width from the source
// pixel width and the mode's clamp window.
func baseGridWidth(srcWidth int, mode Mode) int {
	switch mode {
	case ModeWideGlyph:
		return clampInt(srcWidth/wideBaseDivisor, wideBaseMin, wideBaseMax)
	default:
		return clampInt(srcWidth/asciiBaseDivisor, asciiBaseMin, asciiBaseMax)
	}
}

// gridWidth applies the caller's scale to the base width. Scale is trusted to
// be pre-validated; no further clamping happens here.
func gridWidth(srcWidth int, mode Mode, scale float64) int {
	w := int(math.Round(float64(baseGridWidth(srcWidth, mode)) * scale))
	if w < 1 {
		w = 1
	}
	return w
}

/*
gridHeight derives the grid row count from the grid width, preserving the
source aspect ratio corrected by the glyph cell aspect. Character cells are
not square, so without the glyphW/glyphH term the rendered output would look
stretched relative to the source.
*/
func gridHeight(gridW, srcW, srcH int, glyph GlyphMetrics) int {
	aspect := float64(srcH) / float64(srcW)
	correction := float64(glyph.Width) / float64(glyph.Height)

	h := int(math.Round(float64(gridW) * aspect * correction))
	if h < 1 {
		h = 1
	}
	return h
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
