package colour

import "math"

// WCAG 2.x thresholds.
const (
	RatioAANormal   = 4.5
	RatioAAANormal  = 7.0
	RatioAALarge    = 3.0
	RatioAAALarge   = 4.5
	RatioAAGraphics = 3.0

	minRatio = 1.0
	maxRatio = 21.0
)

// Large text cut-offs in CSS pixels: 18pt and 14pt bold at 96dpi
// (1pt = 4/3px), fixed rather than derived from the display.
const (
	LargeTextPx     = 24.0
	LargeBoldTextPx = 18.66
)

// Level is a WCAG conformance level.
type Level string

const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// Compliance holds pass/fail for each WCAG contrast criterion.
type Compliance struct {
	NormalAA   bool `json:"normalAA"`
	NormalAAA  bool `json:"normalAAA"`
	LargeAA    bool `json:"largeAA"`
	LargeAAA   bool `json:"largeAAA"`
	GraphicsAA bool `json:"graphicsAA"`
}

// Passes reports whether the level is met for the given text size.
func (c Compliance) Passes(level Level, large bool) bool {
	switch {
	case level == LevelAA && large:
		return c.LargeAA
	case level == LevelAA:
		return c.NormalAA
	case level == LevelAAA && large:
		return c.LargeAAA
	default:
		return c.NormalAAA
	}
}

// ContrastResult is a contrast ratio and its WCAG evaluation.
type ContrastResult struct {
	Ratio float64    `json:"ratio"`
	WCAG  Compliance `json:"wcag"`
}

// Luminance calculates the relative luminance of an opaque colour according
// to WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c RGB) float64 {
	r := linearise(float64(c.R) / 255)
	g := linearise(float64(c.G) / 255)
	b := linearise(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearise applies the sRGB transfer function inverse to one channel.
func linearise(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the WCAG contrast ratio between two opaque
// colours. The result is symmetric and lies in [1, 21].
func ContrastRatio(a, b RGB) float64 {
	return ContrastRatioFromLuminance(Luminance(a), Luminance(b))
}

// ContrastRatioFromLuminance orders two luminances and returns
// (lighter+0.05)/(darker+0.05) clamped to [1, 21].
func ContrastRatioFromLuminance(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return clamp((l1+0.05)/(l2+0.05), minRatio, maxRatio)
}

// Evaluate determines WCAG compliance for a ratio.
func Evaluate(ratio float64) ContrastResult {
	return ContrastResult{
		Ratio: ratio,
		WCAG: Compliance{
			NormalAA:   ratio >= RatioAANormal,
			NormalAAA:  ratio >= RatioAAANormal,
			LargeAA:    ratio >= RatioAALarge,
			LargeAAA:   ratio >= RatioAAALarge,
			GraphicsAA: ratio >= RatioAAGraphics,
		},
	}
}

// Check composites both colours onto the backdrop and evaluates the
// contrast between the effective opaque results.
func Check(fg, bg RGBA, backdrop RGB) ContrastResult {
	return Evaluate(ContrastRatio(Composite(fg, backdrop), Composite(bg, backdrop)))
}

// Threshold returns the minimum ratio required for a level.
func Threshold(level Level, large bool) float64 {
	switch {
	case level == LevelAA && large:
		return RatioAALarge
	case level == LevelAA:
		return RatioAANormal
	case level == LevelAAA && large:
		return RatioAAALarge
	default:
		return RatioAAANormal
	}
}

// IsLargeText reports whether text of the given pixel size and weight counts
// as large text under WCAG.
func IsLargeText(px float64, bold bool) bool {
	if bold {
		return px >= LargeBoldTextPx
	}
	return px >= LargeTextPx
}

// Rating is a coarse human label for a contrast ratio.
type Rating string

const (
	RatingExcellent Rating = "Excellent"
	RatingGood      Rating = "Good"
	RatingFair      Rating = "Fair"
	RatingPoor      Rating = "Poor"
)

// Rate buckets a ratio: >=7 excellent, >=4.5 good, >=3 fair, else poor.
func Rate(ratio float64) Rating {
	switch {
	case ratio >= RatioAAANormal:
		return RatingExcellent
	case ratio >= RatioAANormal:
		return RatingGood
	case ratio >= RatioAALarge:
		return RatingFair
	default:
		return RatingPoor
	}
}

// ReadableText returns black or white, whichever contrasts more with bg.
func ReadableText(bg RGB) RGB {
	if ContrastRatio(Black, bg) >= ContrastRatio(White, bg) {
		return Black
	}
	return White
}
