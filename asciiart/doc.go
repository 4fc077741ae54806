/*
Package asciiart converts bitmap images into rasterized ASCII-art pictures.

A conversion runs five stages in order: decode the source and establish its
dimensions, derive a character-grid size from the source width, the mode and
a scale factor, resolve a monospace font and measure one glyph's ink box,
verify the final canvas dimensions against a safety ceiling, and finally
resample, quantize each cell's luminance to a ramp character and draw the
rows onto a white canvas.

The pipeline is synchronous and CPU-bound. Hosts with event loops should run
conversions on their own worker; a Converter itself holds no per-call state
and may be shared across concurrent calls.
*/
package asciiart
