package botcmd

import (
	"testing"

	"github.com/Mlies-mik/astrbot-ASCII-se/asciiart"
)

func testParser() Parser {
	return Parser{
		ScaleToken:              "--scale",
		CharsetToken:            "--charset",
		WideGlyphToken:          "--chinese",
		DefaultScale:            1.0,
		DefaultCharset:          "@#S%?*+;:,.",
		DefaultWideGlyphCharset: "爱你喜欢",
	}
}

func TestParse(t *testing.T) {
	p := testParser()

	tests := []struct {
		name string
		text string
		want Request
	}{
		{
			name: "empty input keeps defaults",
			text: "",
			want: Request{Scale: 1.0, Charset: "@#S%?*+;:,.", Mode: asciiart.ModeASCII},
		},
		{
			name: "scale flag",
			text: "--scale 1.5",
			want: Request{Scale: 1.5, Charset: "@#S%?*+;:,.", Mode: asciiart.ModeASCII},
		},
		{
			name: "charset flag",
			text: "--charset @#$",
			want: Request{Scale: 1.0, Charset: "@#$", Mode: asciiart.ModeASCII, CharsetSet: true},
		},
		{
			name: "wide glyph flag swaps default charset",
			text: "--chinese",
			want: Request{Scale: 1.0, Charset: "爱你喜欢", Mode: asciiart.ModeWideGlyph},
		},
		{
			name: "explicit charset survives wide glyph mode",
			text: "--chinese --charset ab",
			want: Request{Scale: 1.0, Charset: "ab", Mode: asciiart.ModeWideGlyph, CharsetSet: true},
		},
		{
			name: "all flags combined",
			text: "--scale 2 --chinese --charset xyz",
			want: Request{Scale: 2.0, Charset: "xyz", Mode: asciiart.ModeWideGlyph, CharsetSet: true},
		},
		{
			name: "unrecognized tokens are ignored",
			text: "please convert this --scale 2 thanks",
			want: Request{Scale: 2.0, Charset: "@#S%?*+;:,.", Mode: asciiart.ModeASCII},
		},
		{
			name: "consumed value is never rescanned as a flag",
			text: "--charset --scale",
			want: Request{Scale: 1.0, Charset: "--scale", Mode: asciiart.ModeASCII, CharsetSet: true},
		},
		{
			name: "malformed scale value is ignored but consumed",
			text: "--scale abc --chinese",
			want: Request{Scale: 1.0, Charset: "爱你喜欢", Mode: asciiart.ModeWideGlyph},
		},
		{
			name: "non-positive scale is ignored",
			text: "--scale -3",
			want: Request{Scale: 1.0, Charset: "@#S%?*+;:,.", Mode: asciiart.ModeASCII},
		},
		{
			name: "value flag at end of input is inert",
			text: "--scale",
			want: Request{Scale: 1.0, Charset: "@#S%?*+;:,.", Mode: asciiart.ModeASCII},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Parse(tt.text); got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		scale    float64
		want     float64
		adjusted bool
	}{
		{1.0, 1.0, false},
		{0.2, 0.2, false},
		{3.0, 3.0, false},
		{0.1, 0.2, true},
		{8.0, 3.0, true},
	}

	for _, tt := range tests {
		got, adjusted := Clamp(tt.scale, 0.2, 3.0)
		if got != tt.want || adjusted != tt.adjusted {
			t.Errorf("Clamp(%g) = (%g, %v), want (%g, %v)",
				tt.scale, got, adjusted, tt.want, tt.adjusted)
		}
	}
}
