package palette

import "strings"

// Strategy selects a generator.
type Strategy string

const (
	StrategyRandom        Strategy = "random"
	StrategyAnalogous     Strategy = "analogous"
	StrategyMonochromatic Strategy = "monochromatic"
	StrategyTriadic       Strategy = "triadic"
	StrategyComplementary Strategy = "complementary"
	StrategyMood          Strategy = "mood"
)

// Strategies lists every strategy in display order.
var Strategies = []Strategy{
	StrategyRandom,
	StrategyAnalogous,
	StrategyMonochromatic,
	StrategyTriadic,
	StrategyComplementary,
	StrategyMood,
}

// ParseStrategy looks up a strategy by name, ignoring case and surrounding
// space.
func ParseStrategy(s string) (Strategy, bool) {
	st := Strategy(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Strategies {
		if st == known {
			return st, true
		}
	}
	return "", false
}

// NeedsBase reports whether the strategy derives from a base colour.
func (s Strategy) NeedsBase() bool {
	switch s {
	case StrategyAnalogous, StrategyMonochromatic, StrategyTriadic, StrategyComplementary:
		return true
	}
	return false
}

// Request describes one generation call. Base is used by the harmony
// strategies, Mood by StrategyMood, and Count by every strategy except
// triadic and complementary.
type Request struct {
	Strategy Strategy
	Base     string
	Mood     Mood
	Count    int
}

// Generate dispatches r to the matching generator. An unknown strategy
// generates a random palette.
func (g *Generator) Generate(r Request) Palette {
	switch r.Strategy {
	case StrategyAnalogous:
		return g.Analogous(r.Base, r.Count)
	case StrategyMonochromatic:
		return g.Monochromatic(r.Base, r.Count)
	case StrategyTriadic:
		return g.Triadic(r.Base)
	case StrategyComplementary:
		return g.Complementary(r.Base)
	case StrategyMood:
		return g.Mood(r.Mood, r.Count)
	}
	return g.Random(r.Count)
}

// Regenerate generates a fresh palette for r and merges it into current,
// keeping locked entries in place.
func (g *Generator) Regenerate(current Palette, r Request) Palette {
	return Merge(current, g.Generate(r))
}
