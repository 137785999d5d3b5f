package palette

import (
	"math"

	"github.com/sdahlbac/palettegen/colorspace"
)

const (
	analogousStep     = 30
	monochromaticStep = 12
	minLightness      = 20
	maxLightness      = 90
	jitterAttempts    = 5
)

// Generator produces palettes. The zero value is not usable; call [New].
type Generator struct {
	rand RandomSource
	ids  IDSource
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source. A Generator using a source that is not
// safe for concurrent use must not be shared between goroutines.
func WithRand(r RandomSource) Option {
	return func(g *Generator) { g.rand = r }
}

// WithIDs sets the ID source.
func WithIDs(ids IDSource) Option {
	return func(g *Generator) { g.ids = ids }
}

// New returns a Generator. By default it draws from the process-wide
// random generator and a process-wide ID counter.
func New(opts ...Option) *Generator {
	g := &Generator{rand: globalRand{}, ids: processIDs{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// between draws an integer uniformly from [lo,hi).
func (g *Generator) between(lo, hi int) int {
	v := lo + int(math.Floor(g.rand.Float64()*float64(hi-lo)))
	return min(v, hi-1)
}

func (g *Generator) entry(c colorspace.HSL) Entry {
	return Entry{ID: g.ids.NextID(), Hex: c.Hex(), HSL: c}
}

// Random returns count colours with random hue, saturation in [60,100) and
// lightness in [50,80).
func (g *Generator) Random(count int) Palette {
	p := make(Palette, 0, max(count, 0))
	for range count {
		p = append(p, g.entry(colorspace.HSL{
			H: g.between(0, 360),
			S: g.between(60, 100),
			L: g.between(50, 80),
		}))
	}
	return p
}

// Analogous returns count colours spaced 30° apart and centred on base.
// An unparsable base yields a random palette.
func (g *Generator) Analogous(base string, count int) Palette {
	b, ok := colorspace.HexToHSL(base)
	if !ok {
		return g.Random(count)
	}

	p := make(Palette, 0, max(count, 0))
	for i := range count {
		offset := (i - count/2) * analogousStep
		p = append(p, g.entry(colorspace.HSL{
			H: colorspace.NormalizeHue(b.H + offset),
			S: b.S,
			L: b.L,
		}))
	}
	return p
}

// Monochromatic returns count shades of base, stepping lightness by 12
// around it within [20,90]. When a shade repeats an earlier hex it is
// nudged by a small jitter; after five misses the repeat is kept. An
// unparsable base yields a random palette.
func (g *Generator) Monochromatic(base string, count int) Palette {
	b, ok := colorspace.HexToHSL(base)
	if !ok {
		return g.Random(count)
	}

	p := make(Palette, 0, max(count, 0))
	seen := make(map[string]bool, max(count, 0))
	for i := range count {
		target := b.L + (i-count/2)*monochromaticStep

		var c colorspace.HSL
		var hex string
		for attempt := range jitterAttempts {
			c = colorspace.HSL{H: b.H, S: b.S, L: clampLightness(target + jitter(attempt))}
			hex = c.Hex()
			if !seen[hex] {
				break
			}
		}
		seen[hex] = true
		p = append(p, Entry{ID: g.ids.NextID(), Hex: hex, HSL: c})
	}
	return p
}

// jitter yields 0, -1, +2, -3, +4 for successive attempts.
func jitter(attempt int) int {
	if attempt%2 == 1 {
		return -attempt
	}
	return attempt
}

func clampLightness(l int) int {
	return max(minLightness, min(maxLightness, l))
}

// Triadic returns base and the two hues 120° and 240° from it.
// An unparsable base yields three random colours.
func (g *Generator) Triadic(base string) Palette {
	b, ok := colorspace.HexToHSL(base)
	if !ok {
		return g.Random(3)
	}

	p := make(Palette, 0, 3)
	for i := range 3 {
		p = append(p, g.entry(colorspace.HSL{
			H: (b.H + i*120) % 360,
			S: b.S,
			L: b.L,
		}))
	}
	return p
}

// Complementary returns base, exactly as given, followed by the hue opposite
// it. An unparsable base yields two random colours.
func (g *Generator) Complementary(base string) Palette {
	b, ok := colorspace.HexToHSL(base)
	if !ok {
		return g.Random(2)
	}

	return Palette{
		{ID: g.ids.NextID(), Hex: base, HSL: b},
		g.entry(colorspace.HSL{H: (b.H + 180) % 360, S: b.S, L: b.L}),
	}
}

// Accent is a contrasting colour suggested for a base colour.
type Accent struct {
	Hex   string `json:"hex" yaml:"hex" toml:"hex"`
	Label string `json:"label" yaml:"label" toml:"label"`
}

// Accents suggests the complement and both triadic partners of base,
// dropping any that share a hex with an earlier one. Achromatic bases
// collapse to a single accent. An unparsable base yields none.
func (g *Generator) Accents(base string) []Accent {
	b, ok := colorspace.HexToHSL(base)
	if !ok {
		return nil
	}

	variants := []struct {
		offset int
		label  string
	}{
		{180, "complementary"},
		{120, "triadic"},
		{240, "triadic"},
	}
	seen := make(map[string]bool, len(variants))
	var out []Accent
	for _, v := range variants {
		hex := colorspace.HSLToHex((b.H+v.offset)%360, b.S, b.L)
		if seen[hex] {
			continue
		}
		seen[hex] = true
		out = append(out, Accent{Hex: hex, Label: v.label})
	}
	return out
}
