// Package botcmd turns free-form chat command text into a typed conversion
// request. Tokenization rule: a recognized value flag consumes the following
// token as its value (and that token is never rescanned as a flag); the
// wide-glyph flag is a boolean and consumes nothing; unrecognized tokens are
// ignored.
package botcmd

import (
	"strconv"
	"strings"

	"github.com/Mlies-mik/astrbot-ASCII-se/asciiart"
)

// Request is the parsed, typed form of one chat command.
type Request struct {
	Scale   float64
	Charset string
	Mode    asciiart.Mode
	// CharsetSet records whether the user supplied a charset explicitly;
	// wide-glyph mode only swaps in its default ramp when they did not.
	CharsetSet bool
}

/*
Parser holds the flag token names and the defaults applied when a flag is
absent. Token names come from deployment configuration so hosts can rename
flags without code changes.
*/
type Parser struct {
	ScaleToken     string
	CharsetToken   string
	WideGlyphToken string

	DefaultScale            float64
	DefaultCharset          string
	DefaultWideGlyphCharset string
}

/*
Parse scans the command text and builds a Request. Malformed or out-of-place
values never fail the parse: a scale value that does not parse as a positive
number is ignored (the flag and its value are still consumed), and a value
flag at the end of the input with nothing after it is treated as an
unrecognized token.
*/
func (p Parser) Parse(text string) Request {
	req := Request{
		Scale:   p.DefaultScale,
		Charset: p.DefaultCharset,
		Mode:    asciiart.ModeASCII,
	}

	tokens := strings.Fields(text)
	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		if tok == p.ScaleToken && i+1 < len(tokens) {
			if v, err := strconv.ParseFloat(tokens[i+1], 64); err == nil && v > 0 {
				req.Scale = v
			}
			i += 2
			continue
		}

		if tok == p.CharsetToken && i+1 < len(tokens) {
			req.Charset = tokens[i+1]
			req.CharsetSet = true
			i += 2
			continue
		}

		if tok == p.WideGlyphToken {
			req.Mode = asciiart.ModeWideGlyph
			i++
			continue
		}

		i++
	}

	if req.Mode == asciiart.ModeWideGlyph && !req.CharsetSet {
		req.Charset = p.DefaultWideGlyphCharset
	}

	return req
}

/*
Clamp pins scale into [lo, hi] and reports whether it had to move the value,
so the shell can tell the user their request was adjusted. The conversion
core trusts its scale input; this is the upstream enforcement point.
*/
func Clamp(scale, lo, hi float64) (float64, bool) {
	if scale < lo {
		return lo, true
	}
	if scale > hi {
		return hi, true
	}
	return scale, false
}
