// Package contrast scores colour pairs against the WCAG contrast
// requirements for text.
package contrast

import (
	"github.com/sdahlbac/palettegen/colorspace"
)

// Level is a WCAG conformance level for a contrast ratio.
type Level int

const (
	Fail Level = iota
	AA
	AAA
)

func (l Level) String() string {
	switch l {
	case AAA:
		return "AAA"
	case AA:
		return "AA"
	default:
		return "Fail"
	}
}

// Minimum ratios for each level. Large text is 18pt, or 14pt bold.
const (
	NormalAAA = 7.0
	NormalAA  = 4.5
	LargeAAA  = 4.5
	LargeAA   = 3.0
)

// Ratio returns the WCAG contrast ratio between two hex colours, in [1,21].
// It is symmetric in its arguments. Unparsable colours count as black.
func Ratio(a, b string) float64 {
	return ratioOf(colorspace.RelativeLuminance(a), colorspace.RelativeLuminance(b))
}

func ratioOf(la, lb float64) float64 {
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// LevelFor classifies ratio. Thresholds are inclusive lower bounds.
func LevelFor(ratio float64, largeText bool) Level {
	aaa, aa := NormalAAA, NormalAA
	if largeText {
		aaa, aa = LargeAAA, LargeAA
	}
	switch {
	case ratio >= aaa:
		return AAA
	case ratio >= aa:
		return AA
	}
	return Fail
}

// Report is the outcome of checking a foreground against a background.
type Report struct {
	Ratio  float64
	Normal Level
	Large  Level
}

// Check scores fg against bg for both text sizes. It reports false if either
// colour does not parse, rather than treating it as black.
func Check(fg, bg string) (Report, bool) {
	lf, ok := colorspace.Luminance(fg)
	if !ok {
		return Report{}, false
	}
	lb, ok := colorspace.Luminance(bg)
	if !ok {
		return Report{}, false
	}
	r := ratioOf(lf, lb)
	return Report{
		Ratio:  r,
		Normal: LevelFor(r, false),
		Large:  LevelFor(r, true),
	}, true
}

// Black and white text colours used by [ReadableOn].
const (
	Black = "#000000"
	White = "#ffffff"
)

// ReadableOn returns black or white, whichever contrasts more with bg.
// Black wins ties and is also returned when bg does not parse.
func ReadableOn(bg string) string {
	y, ok := colorspace.Luminance(bg)
	if !ok {
		return Black
	}
	if ratioOf(1, y) > ratioOf(0, y) {
		return White
	}
	return Black
}
