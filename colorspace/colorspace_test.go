package colorspace

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHSLToHex(t *testing.T) {
	tests := []struct {
		h, s, l int
		want    string
	}{
		{0, 100, 50, "#ff0000"},
		{120, 100, 50, "#00ff00"},
		{240, 100, 50, "#0000ff"},
		{180, 100, 50, "#00ffff"},
		{300, 100, 50, "#ff00ff"},
		{220, 60, 50, "#3366cc"},
		{0, 0, 0, "#000000"},
		{0, 0, 100, "#ffffff"},
		{0, 0, 50, "#808080"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_%d_%d", tt.h, tt.s, tt.l), func(t *testing.T) {
			assert.Equal(t, tt.want, HSLToHex(tt.h, tt.s, tt.l))
		})
	}
}

func TestHSLToHexOutOfRangeHue(t *testing.T) {
	// no sector matches, leaving only the lightness offset
	assert.Equal(t, "#000000", HSLToHex(360, 100, 50))
	assert.Equal(t, "#000000", HSLToHex(-10, 100, 50))
	assert.Equal(t, "#808080", HSLToHex(400, 0, 50))
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
		ok    bool
	}{
		{"with hash", "#112233", RGB{0x11, 0x22, 0x33}, true},
		{"without hash", "112233", RGB{0x11, 0x22, 0x33}, true},
		{"uppercase", "#AABBCC", RGB{0xaa, 0xbb, 0xcc}, true},
		{"mixed case", "#aAbBcC", RGB{0xaa, 0xbb, 0xcc}, true},
		{"shorthand", "#abc", RGB{}, false},
		{"shorthand without hash", "abc", RGB{}, false},
		{"alpha", "#11223344", RGB{}, false},
		{"non hex", "#gg0000", RGB{}, false},
		{"empty", "", RGB{}, false},
		{"hash only", "#", RGB{}, false},
		{"double hash", "##112233", RGB{}, false},
		{"spaces", " #112233", RGB{}, false},
		{"sign", "+11223", RGB{}, false},
		{"seven digits", "1122334", RGB{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HexToRGB(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexToRGBAgreesWithColorful(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#3366cc", "#0a0b0c", "#fedcba", "#7f7f7f"} {
		got, ok := HexToRGB(hex)
		require.True(t, ok, hex)

		want, err := colorful.Hex(hex)
		require.NoError(t, err, hex)
		r, g, b := want.RGB255()
		assert.Equal(t, RGB{r, g, b}, got, hex)
		assert.Equal(t, want.Hex(), got.Hex(), hex)
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		hex  string
		want HSL
	}{
		{"#ff0000", HSL{0, 100, 50}},
		{"#3366cc", HSL{220, 60, 50}},
		{"#112233", HSL{210, 50, 13}},
		{"#808080", HSL{0, 0, 50}},
		{"#ffffff", HSL{0, 0, 100}},
		{"#000000", HSL{0, 0, 0}},
		{"#ff00ff", HSL{300, 100, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, ok := HexToHSL(tt.hex)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRGBToHSLHueStaysInRange(t *testing.T) {
	// red dominant with blue just above green sits right below 360
	got := RGBToHSL(255, 0, 1)
	assert.GreaterOrEqual(t, got.H, 0)
	assert.Less(t, got.H, 360)
}

func TestHexToHSLInvalid(t *testing.T) {
	_, ok := HexToHSL("#12345")
	assert.False(t, ok)
}

func TestRoundTripGreys(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := uint8(v)
		hsl := RGBToHSL(c, c, c)
		got, ok := HexToRGB(HSLToHex(hsl.H, hsl.S, hsl.L))
		require.True(t, ok)
		for _, ch := range []uint8{got.R, got.G, got.B} {
			assert.InDelta(t, v, int(ch), 1, "grey %d", v)
		}
	}
}

// Integer HSL loses up to 5 channel units for saturated colours; greys
// stay within one.
func TestRoundTripDense(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 5 {
				hsl := RGBToHSL(uint8(r), uint8(g), uint8(b))
				got, ok := HexToRGB(hsl.Hex())
				require.True(t, ok)
				if !withinDelta(got, r, g, b, 5) {
					t.Fatalf("rgb(%d,%d,%d) -> %v -> %v", r, g, b, hsl, got)
				}
			}
		}
	}
}

func withinDelta(c RGB, r, g, b, d int) bool {
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	return abs(int(c.R)-r) <= d && abs(int(c.G)-g) <= d && abs(int(c.B)-b) <= d
}

func TestRelativeLuminance(t *testing.T) {
	assert.InDelta(t, 1.0, RelativeLuminance("#ffffff"), 1e-9)
	assert.InDelta(t, 0.0, RelativeLuminance("#000000"), 1e-9)
	assert.InDelta(t, 0.2126, RelativeLuminance("#ff0000"), 1e-9)
	assert.InDelta(t, 0.7152, RelativeLuminance("#00ff00"), 1e-9)
	assert.InDelta(t, 0.0722, RelativeLuminance("#0000ff"), 1e-9)
	assert.Equal(t, 0.0, RelativeLuminance("nope"))
}

func TestLuminance(t *testing.T) {
	y, ok := Luminance("#000000")
	assert.True(t, ok)
	assert.Equal(t, 0.0, y)

	y, ok = Luminance("#zzzzzz")
	assert.False(t, ok)
	assert.Equal(t, 0.0, y)
}

func TestLuminanceMonotonicOnGreys(t *testing.T) {
	prev := -1.0
	for v := 0; v < 256; v++ {
		y := RGB{uint8(v), uint8(v), uint8(v)}.Luminance()
		assert.Greater(t, y, prev)
		prev = y
	}
}

func TestCanonical(t *testing.T) {
	got, ok := Canonical("AbCdEf")
	assert.True(t, ok)
	assert.Equal(t, "#abcdef", got)

	_, ok = Canonical("#abc")
	assert.False(t, ok)
	assert.True(t, IsHex("#ABCDEF"))
	assert.False(t, IsHex("#ABCDE"))
}

func TestNormalizeHue(t *testing.T) {
	assert.Equal(t, 0, NormalizeHue(360))
	assert.Equal(t, 330, NormalizeHue(-30))
	assert.Equal(t, 30, NormalizeHue(750))
	assert.Equal(t, 359, NormalizeHue(359))
}

func TestColorInterop(t *testing.T) {
	c := RGB{0x33, 0x66, 0xcc}
	assert.Equal(t, color.RGBA{0x33, 0x66, 0xcc, 0xff}, c.RGBA())
	assert.Equal(t, c, FromColor(c.RGBA()))
	assert.Equal(t, "hsl(220, 60%, 50%)", c.HSL().String())
}

func BenchmarkHSLToHex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = HSLToHex(i%360, 60, 50)
	}
}
