// Package palette generates colour palettes from classic colour-wheel
// harmonies, from moods, or at random.
//
// Every generator returns fresh, unlocked entries. The Locked flag belongs
// to the caller; generators never read it, and only [Merge] honours it.
package palette

import (
	"github.com/sdahlbac/palettegen/colorspace"
)

// DefaultCount is the palette size used when none is configured.
const DefaultCount = 5

// Entry is one colour of a palette.
type Entry struct {
	ID     int64          `json:"id" yaml:"id" toml:"id"`
	Hex    string         `json:"hex" yaml:"hex" toml:"hex"`
	HSL    colorspace.HSL `json:"hsl" yaml:"hsl" toml:"hsl"`
	Locked bool           `json:"locked" yaml:"locked" toml:"locked"`
}

// Palette is an ordered list of entries. Position carries meaning: the
// first entry of a complementary palette is its base colour, for example.
type Palette []Entry

// Hexes returns the hex value of every entry, in order.
func (p Palette) Hexes() []string {
	out := make([]string, len(p))
	for i, e := range p {
		out[i] = e.Hex
	}
	return out
}

// Locked returns the number of locked entries.
func (p Palette) Locked() int {
	n := 0
	for _, e := range p {
		if e.Locked {
			n++
		}
	}
	return n
}

// Merge replaces every unlocked position of current with the next entry of
// fresh, keeping locked entries where they are. Positions left over once
// fresh runs out are dropped. With nothing locked, fresh is returned as is.
func Merge(current, fresh Palette) Palette {
	if current.Locked() == 0 {
		return fresh
	}

	out := make(Palette, 0, len(current))
	j := 0
	for _, e := range current {
		switch {
		case e.Locked:
			out = append(out, e)
		case j < len(fresh):
			out = append(out, fresh[j])
			j++
		}
	}
	return out
}

// FromHexes builds an unlocked palette from hex strings, such as the
// output of a decoded share code. Invalid values are skipped and returned
// separately.
func (g *Generator) FromHexes(hexes []string) (Palette, []string) {
	var (
		p       Palette
		invalid []string
	)
	for _, h := range hexes {
		c, ok := colorspace.HexToRGB(h)
		if !ok {
			invalid = append(invalid, h)
			continue
		}
		p = append(p, Entry{ID: g.ids.NextID(), Hex: c.Hex(), HSL: c.HSL()})
	}
	return p, invalid
}
