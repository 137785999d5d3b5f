package palette

import (
	"strings"

	"github.com/sdahlbac/palettegen/colorspace"
)

// Mood names a preset family of hue, saturation and lightness ranges.
type Mood string

const (
	Calm         Mood = "calm"
	Energetic    Mood = "energetic"
	Professional Mood = "professional"
)

// Moods lists the known moods in display order.
var Moods = []Mood{Calm, Energetic, Professional}

// span is a half-open integer range [lo,hi).
type span struct{ lo, hi int }

type moodRanges struct{ h, s, l span }

var moods = map[Mood]moodRanges{
	Calm:         {h: span{180, 240}, s: span{30, 60}, l: span{60, 80}},
	Energetic:    {h: span{0, 60}, s: span{70, 100}, l: span{50, 70}},
	Professional: {h: span{200, 240}, s: span{40, 70}, l: span{40, 60}},
}

// ParseMood looks up a mood by name, ignoring case and surrounding space.
func ParseMood(s string) (Mood, bool) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	_, ok := moods[m]
	return m, ok
}

// Mood returns count colours drawn independently from the ranges of mood.
// An unknown mood yields a random palette.
func (g *Generator) Mood(mood Mood, count int) Palette {
	r, ok := moods[mood]
	if !ok {
		return g.Random(count)
	}

	p := make(Palette, 0, max(count, 0))
	for range count {
		p = append(p, g.entry(colorspace.HSL{
			H: g.between(r.h.lo, r.h.hi),
			S: g.between(r.s.lo, r.s.hi),
			L: g.between(r.l.lo, r.l.hi),
		}))
	}
	return p
}
