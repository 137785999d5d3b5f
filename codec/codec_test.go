package codec

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/sdahlbac/palettegen/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec() (*Codec, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(slog.New(slog.NewTextHandler(&buf, nil))), &buf
}

func TestRoundTrip(t *testing.T) {
	c, _ := newTestCodec()
	code := c.Encode(palette.Palette{{Hex: "#112233"}, {Hex: "#445566"}})
	assert.Equal(t, "WyIjMTEyMjMzIiwiIzQ0NTU2NiJd", code)

	got, ok := c.Decode(code)
	require.True(t, ok)
	assert.Equal(t, []string{"#112233", "#445566"}, got)
}

func TestRoundTripGenerated(t *testing.T) {
	c, _ := newTestCodec()
	g := palette.New(palette.WithRand(palette.Seeded(9)))
	for _, p := range []palette.Palette{
		g.Random(5),
		g.Analogous("#3366cc", 7),
		g.Complementary("ABCDEF"),
		g.Mood(palette.Professional, 12),
	} {
		got, ok := c.Decode(c.Encode(p))
		require.True(t, ok)
		assert.Equal(t, p.Hexes(), got)
	}
}

func TestRoundTripDropsEmpty(t *testing.T) {
	c, _ := newTestCodec()
	got, ok := c.Decode(c.Encode(palette.Palette{{Hex: "#112233"}, {Hex: ""}, {Hex: "#445566"}}))
	require.True(t, ok)
	assert.Equal(t, []string{"#112233", "#445566"}, got)
}

func TestEncodeIsURLSafe(t *testing.T) {
	c, _ := newTestCodec()
	g := palette.New(palette.WithRand(palette.Seeded(1)))
	for range 50 {
		code := c.Encode(g.Random(8))
		assert.NotContains(t, code, "+")
		assert.NotContains(t, code, "/")
		assert.NotContains(t, code, "=")
	}
}

func TestEmptyPalette(t *testing.T) {
	c, _ := newTestCodec()
	code := c.Encode(nil)
	assert.NotEmpty(t, code)

	got, ok := c.Decode(code)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"not base64", "not-valid-base64!!"},
		{"not json", "bm90IGpzb24="},
		{"object", "eyJhIjoxfQ=="},
		{"null", "bnVsbA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCodec()
			got, ok := c.Decode(tt.input)
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}

func TestDecodeLogsFailures(t *testing.T) {
	c, buf := newTestCodec()
	_, ok := c.Decode("not-valid-base64!!")
	require.False(t, ok)
	assert.Contains(t, buf.String(), "failed to decode palette")
	assert.Contains(t, buf.String(), "stage=base64")

	buf.Reset()
	_, ok = c.Decode("eyJhIjoxfQ")
	require.False(t, ok)
	assert.Contains(t, buf.String(), "stage=json")
}

func TestDecodeAcceptsBrowserCodes(t *testing.T) {
	c, _ := newTestCodec()

	// padded standard base64, as produced by btoa
	got, ok := c.Decode("WyIjYWFiYmNjIl0=")
	require.True(t, ok)
	assert.Equal(t, []string{"#aabbcc"}, got)

	got, ok = c.Decode("  WyIjYWFiYmNjIl0\n")
	require.True(t, ok)
	assert.Equal(t, []string{"#aabbcc"}, got)
}

func TestDecodeFiltersFalsyEntries(t *testing.T) {
	c, _ := newTestCodec()
	got, ok := c.Decode("WyIjMTEyMjMzIiwiIixudWxsLDUsIiM0NDU1NjYiXQ==")
	require.True(t, ok)
	assert.Equal(t, []string{"#112233", "#445566"}, got)
}

func TestPackageLevelHelpers(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	got, ok := Decode(Encode(palette.Palette{{Hex: "#010203"}}))
	require.True(t, ok)
	assert.Equal(t, []string{"#010203"}, got)

	_, ok = Decode("%%%")
	assert.False(t, ok)
	assert.True(t, strings.Contains(buf.String(), "failed to decode palette"))
}

func TestNilCodecUsesDefaultLogger(t *testing.T) {
	var c *Codec
	_, ok := c.Decode("@@")
	assert.False(t, ok)
}
