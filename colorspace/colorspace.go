// Package colorspace converts between HSL, RGB and hex colour notations and
// computes WCAG relative luminance.
package colorspace

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
)

// HSL is a colour in hue/saturation/lightness form. H is in degrees
// [0,360); S and L are percentages [0,100].
type HSL struct {
	H int `json:"h" yaml:"h" toml:"h"`
	S int `json:"s" yaml:"s" toml:"s"`
	L int `json:"l" yaml:"l" toml:"l"`
}

// Hex returns the canonical hex notation of c.
func (c HSL) Hex() string {
	return HSLToHex(c.H, c.S, c.L)
}

// String implements fmt.Stringer.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// RGB is an 8-bit sRGB colour.
type RGB struct {
	R, G, B uint8
}

// Hex returns the lowercase #rrggbb notation of c.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HSL converts c to HSL.
func (c RGB) HSL() HSL {
	return RGBToHSL(c.R, c.G, c.B)
}

// RGBA returns c as an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// FromColor converts any color.Color to RGB, dropping alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// NormalizeHue wraps h into [0,360).
func NormalizeHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}

// HSLToHex converts an HSL triple to lowercase #rrggbb.
//
// h must be in [0,360). A hue outside that range matches no sector, so
// every channel collapses to the lightness offset.
func HSLToHex(h, s, l int) string {
	hf := float64(h)
	sf := float64(s) / 100
	lf := float64(l) / 100

	c := (1 - math.Abs(2*lf-1)) * sf
	x := c * (1 - math.Abs(math.Mod(hf/60, 2)-1))
	m := lf - c/2

	var r, g, b float64
	switch {
	case 0 <= hf && hf < 60:
		r, g, b = c, x, 0
	case 60 <= hf && hf < 120:
		r, g, b = x, c, 0
	case 120 <= hf && hf < 180:
		r, g, b = 0, c, x
	case 180 <= hf && hf < 240:
		r, g, b = 0, x, c
	case 240 <= hf && hf < 300:
		r, g, b = x, 0, c
	case 300 <= hf && hf < 360:
		r, g, b = c, 0, x
	}

	return RGB{
		R: channel(r + m),
		G: channel(g + m),
		B: channel(b + m),
	}.Hex()
}

// channel scales a [0,1] component to a rounded 8-bit value.
func channel(v float64) uint8 {
	v = math.Round(v * 255)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// HexToRGB parses #rrggbb or rrggbb, in either case. Any other shape,
// including 3-digit shorthand and 8-digit colours with alpha, is rejected.
func HexToRGB(hex string) (RGB, bool) {
	if len(hex) == 7 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return RGB{}, false
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return RGB{}, false
		}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// IsHex reports whether s is a valid 6-digit hex colour.
func IsHex(s string) bool {
	_, ok := HexToRGB(s)
	return ok
}

// Canonical returns hex in lowercase #rrggbb form.
func Canonical(hex string) (string, bool) {
	c, ok := HexToRGB(hex)
	if !ok {
		return "", false
	}
	return c.Hex(), true
}

// RGBToHSL converts 8-bit channels to HSL, rounding each component to the
// nearest integer. Achromatic colours have zero hue and saturation.
func RGBToHSL(r, g, b uint8) HSL {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	hi := max(rf, gf, bf)
	lo := min(rf, gf, bf)
	l := (hi + lo) / 2

	var h, s float64
	if hi != lo {
		d := hi - lo
		if l > 0.5 {
			s = d / (2 - hi - lo)
		} else {
			s = d / (hi + lo)
		}

		switch hi {
		case rf:
			h = (gf - bf) / d
			if gf < bf {
				h += 6
			}
		case gf:
			h = (bf-rf)/d + 2
		default:
			h = (rf-gf)/d + 4
		}
		h /= 6
	}

	return HSL{
		H: NormalizeHue(int(math.Round(h * 360))),
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HexToHSL parses hex and converts it to HSL.
func HexToHSL(hex string) (HSL, bool) {
	c, ok := HexToRGB(hex)
	if !ok {
		return HSL{}, false
	}
	return c.HSL(), true
}

// RelativeLuminance returns the WCAG relative luminance of hex in [0,1].
// An unparsable hex yields 0; use [Luminance] to tell the two apart.
func RelativeLuminance(hex string) float64 {
	y, _ := Luminance(hex)
	return y
}

// Luminance is like [RelativeLuminance] but reports whether hex parsed.
func Luminance(hex string) (float64, bool) {
	c, ok := HexToRGB(hex)
	if !ok {
		return 0, false
	}
	return c.Luminance(), true
}

// Luminance returns the WCAG relative luminance of c.
func (c RGB) Luminance() float64 {
	r := linearize(float64(c.R) / 255)
	g := linearize(float64(c.G) / 255)
	b := linearize(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearize removes the sRGB transfer curve from a [0,1] component.
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
