package asciiart

/*
WithScale sets the grid scale factor. The converter trusts the value as-is;
clamping into caller-policy bounds (and telling the user about it) happens
upstream.
*/
func WithScale(scale float64) Option {
	return func(c *Converter) {
		c.Scale = scale
	}
}

/*
WithCharset sets the luminance ramp. Order is darkest to lightest by
convention: the first rune maps to luminance bucket 0. The ramp must contain
at least one rune; a single-rune ramp turns every cell into that rune, which
is valid.
*/
func WithCharset(charset string) Option {
	return func(c *Converter) {
		c.Charset = charset
	}
}

// WithMode selects the glyph family (ModeASCII or ModeWideGlyph).
func WithMode(mode Mode) Option {
	return func(c *Converter) {
		c.Mode = mode
	}
}

/*
WithMaxDimension sets the caller's ceiling for either output dimension in
pixels. The effective ceiling is the smaller of this value and
AbsoluteMaxDimension; the hard ceiling cannot be raised.
*/
func WithMaxDimension(px int) Option {
	return func(c *Converter) {
		c.MaxDimension = px
	}
}

// WithOutputDir sets the directory Convert* writes artifacts into. The
// directory's lifecycle (creation, cleanup) belongs to the caller.
func WithOutputDir(dir string) Option {
	return func(c *Converter) {
		c.OutputDir = dir
	}
}

// WithOutputPrefix sets the artifact filename prefix. Cleanup collaborators
// match on this prefix, so it should stay stable across a deployment.
func WithOutputPrefix(prefix string) Option {
	return func(c *Converter) {
		c.OutputPrefix = prefix
	}
}

/*
WithFaceLoader replaces the font loader. Tests use this to pin the converter
to the baked-in face for deterministic output; hosts can use it to load fonts
from bundled assets instead of system directories.
*/
func WithFaceLoader(loader FaceLoader) Option {
	return func(c *Converter) {
		c.Loader = loader
	}
}

// WithFontDirs keeps the default directory loader but points it at specific
// font directories.
func WithFontDirs(dirs ...string) Option {
	return func(c *Converter) {
		c.Loader = DirLoader{Dirs: dirs}
	}
}

// WithASCIIFonts replaces the ordered font preference list for ModeASCII.
func WithASCIIFonts(names ...string) Option {
	return func(c *Converter) {
		c.ASCIIFonts = names
	}
}

// WithWideGlyphFonts replaces the ordered font preference list for
// ModeWideGlyph.
func WithWideGlyphFonts(names ...string) Option {
	return func(c *Converter) {
		c.WideGlyphFonts = names
	}
}
