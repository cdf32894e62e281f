package colour

import (
	"cmp"
	"math"
	"slices"
)

// Target names the side of a colour pair a suggestion replaces.
type Target string

const (
	TargetForeground Target = "foreground"
	TargetBackground Target = "background"
)

// Search bounds. A request's step is clamped to [minStep, maxStep] so the
// scan never exceeds 100/minStep evaluations per direction.
const (
	DefaultStep       = 1.0
	DefaultIterations = 24

	minStep       = 0.05
	maxStep       = 25.0
	maxIterations = 48
)

// SuggestRequest describes a colour pair to repair.
type SuggestRequest struct {
	Foreground RGBA
	Background RGBA
	LargeText  bool

	// Backdrop is the opaque surface both colours are composited onto.
	// Nil selects White.
	Backdrop *RGB

	// Step is the lightness increment of the coarse scan (0 selects DefaultStep).
	Step float64

	// Iterations bounds the bisection refinement (0 selects DefaultIterations).
	Iterations int
}

// NewSuggestRequest returns a request with a white backdrop and default
// search parameters.
func NewSuggestRequest(fg, bg RGBA, largeText bool) SuggestRequest {
	return SuggestRequest{
		Foreground: fg,
		Background: bg,
		LargeText:  largeText,
		Step:       DefaultStep,
		Iterations: DefaultIterations,
	}
}

// Suggestion is a replacement colour for one side of the pair.
type Suggestion struct {
	Hex    string `json:"hex"`
	Colour RGBA   `json:"colour"`
	Level  Level  `json:"level"`
	Target Target `json:"target"`

	// Ratio is measured between the composited suggestion and the composited anchor.
	Ratio float64 `json:"ratio"`

	// LightnessDelta is the absolute HSL lightness change from the original.
	LightnessDelta float64 `json:"lightnessDelta"`

	// Distance is the RGB Euclidean distance between the composited original
	// and the composited suggestion.
	Distance float64 `json:"distance"`
}

// Label returns "Good" for AA suggestions and "Excellent" for AAA.
func (s Suggestion) Label() Rating {
	if s.Level == LevelAAA {
		return RatingExcellent
	}
	return RatingGood
}

// SuggestionReport is the outcome of a suggestion search.
type SuggestionReport struct {
	// Ratio is the contrast of the pair as given.
	Ratio float64 `json:"ratio"`

	// AAPassed is set when AA is already met and only AAA suggestions follow.
	AAPassed bool `json:"aaPassed"`

	Suggestions []Suggestion `json:"suggestions"`
}

// Suggest searches, for each side of the pair and each unmet level, for the
// colour closest in lightness to the original that meets the level against
// the other side. Combinations with no compliant colour in the lightness
// range are omitted. Results are deduplicated by hex and sorted by
// ascending lightness change.
func Suggest(req SuggestRequest) SuggestionReport {
	req = req.normalised()
	backdrop := *req.Backdrop

	fg := Composite(req.Foreground, backdrop)
	bg := Composite(req.Background, backdrop)
	report := SuggestionReport{Ratio: ContrastRatio(fg, bg)}

	var unmet []Level
	for _, level := range []Level{LevelAA, LevelAAA} {
		if report.Ratio < Threshold(level, req.LargeText) {
			unmet = append(unmet, level)
		}
	}
	if len(unmet) == 0 {
		return report
	}
	report.AAPassed = unmet[0] == LevelAAA

	sides := []struct {
		target     Target
		adjustable RGBA
		anchor     RGB
	}{
		{TargetForeground, req.Foreground, bg},
		{TargetBackground, req.Background, fg},
	}

	var found []Suggestion
	for _, side := range sides {
		for _, level := range unmet {
			s, ok := searchLightness(side.adjustable, side.anchor, req, Threshold(level, req.LargeText))
			if !ok {
				continue
			}
			s.Level = level
			s.Target = side.target
			found = append(found, s)
		}
	}

	report.Suggestions = rank(found)
	return report
}

func (req SuggestRequest) normalised() SuggestRequest {
	backdrop := BackdropOrWhite(req.Backdrop)
	req.Backdrop = &backdrop
	if req.Step <= 0 || math.IsNaN(req.Step) {
		req.Step = DefaultStep
	}
	req.Step = clamp(req.Step, minStep, maxStep)
	if req.Iterations <= 0 {
		req.Iterations = DefaultIterations
	}
	req.Iterations = min(req.Iterations, maxIterations)
	return req
}

// trial is one evaluated lightness value.
type trial struct {
	lightness float64
	colour    RGBA
	ratio     float64
}

// searchLightness walks the HSL lightness of c away from its original value
// in both directions. The first step that reaches threshold is refined by
// bisection against the last failing step; the closer of the two directions
// wins.
func searchLightness(c RGBA, anchor RGB, req SuggestRequest, threshold float64) (Suggestion, bool) {
	origin := RGBToHSL(c.Opaque())
	evaluate := func(l float64) trial {
		hsl := origin
		hsl.L = l
		cand := HSLToRGB(hsl).WithAlpha(c.A)
		return trial{
			lightness: l,
			colour:    cand,
			ratio:     ContrastRatio(Composite(cand, *req.Backdrop), anchor),
		}
	}

	var best *trial
	for _, dir := range []float64{1, -1} {
		failing := origin.L
		for k := 1; ; k++ {
			l := clamp(origin.L+dir*req.Step*float64(k), 0, 100)
			p := evaluate(l)
			if p.ratio >= threshold {
				p = bisect(evaluate, failing, p, threshold, req.Iterations)
				if best == nil || math.Abs(p.lightness-origin.L) < math.Abs(best.lightness-origin.L) {
					best = &p
				}
				break
			}
			if l == 0 || l == 100 {
				break
			}
			failing = l
		}
	}
	if best == nil {
		return Suggestion{}, false
	}

	return Suggestion{
		Hex:            best.colour.Hex(),
		Colour:         best.colour,
		Ratio:          best.ratio,
		LightnessDelta: math.Abs(best.lightness - origin.L),
		Distance:       channelDistance(Composite(c, *req.Backdrop), Composite(best.colour, *req.Backdrop)),
	}, true
}

// bisect narrows the boundary between a failing lightness and a passing
// trial, always keeping a passing trial.
func bisect(evaluate func(float64) trial, failing float64, passing trial, threshold float64, iterations int) trial {
	for range iterations {
		mid := evaluate((failing + passing.lightness) / 2)
		if mid.ratio >= threshold {
			passing = mid
		} else {
			failing = mid.lightness
		}
	}
	return passing
}

// rank drops duplicate hex values, preferring the higher level, and sorts by
// lightness change, then level, then target.
func rank(found []Suggestion) []Suggestion {
	byHex := make(map[string]int, len(found))
	out := make([]Suggestion, 0, len(found))
	for _, s := range found {
		if i, ok := byHex[s.Hex]; ok {
			if s.Level == LevelAAA && out[i].Level != LevelAAA {
				out[i] = s
			}
			continue
		}
		byHex[s.Hex] = len(out)
		out = append(out, s)
	}

	slices.SortStableFunc(out, func(a, b Suggestion) int {
		return cmp.Or(
			cmp.Compare(a.LightnessDelta, b.LightnessDelta),
			cmp.Compare(a.Level, b.Level),
			cmp.Compare(a.Target, b.Target),
		)
	})
	return out
}
