package session

import "github.com/jmylchreest/huecheck/internal/colour"

// Report is a full evaluation of the session's current pair.
type Report struct {
	Foreground          colour.RGBA             `json:"foreground"`
	Background          colour.RGBA             `json:"background"`
	EffectiveForeground colour.RGB              `json:"effectiveForeground"`
	EffectiveBackground colour.RGB              `json:"effectiveBackground"`
	Translucent         bool                    `json:"translucent"`
	FontSizePx          float64                 `json:"fontSizePx"`
	Bold                bool                    `json:"bold"`
	LargeText           bool                    `json:"largeText"`
	Contrast            colour.ContrastResult   `json:"contrast"`
	Rating              colour.Rating           `json:"rating"`
	ForegroundLabel     colour.RGB              `json:"foregroundLabel"`
	BackgroundLabel     colour.RGB              `json:"backgroundLabel"`
	Suggestions         colour.SuggestionReport `json:"suggestions"`
}

// Passes reports whether the pair meets level for the session's text size.
func (r Report) Passes(level colour.Level) bool {
	return r.Contrast.WCAG.Passes(level, r.LargeText)
}

// Report recomputes the evaluation from the current state.
func (s *Session) Report() Report {
	fg := s.Colour(colour.TargetForeground)
	bg := s.Colour(colour.TargetBackground)
	return Evaluate(fg, bg, s.backdrop, s.fontPx, s.bold, s.step)
}

// Evaluate runs the pipeline for a single pair without a session.
func Evaluate(fg, bg colour.RGBA, backdrop colour.RGB, fontPx float64, bold bool, step float64) Report {
	effFg := colour.Composite(fg, backdrop)
	effBg := colour.Composite(bg, backdrop)
	large := colour.IsLargeText(fontPx, bold)
	result := colour.Evaluate(colour.ContrastRatio(effFg, effBg))

	req := colour.NewSuggestRequest(fg, bg, large)
	req.Backdrop = &backdrop
	if step > 0 {
		req.Step = step
	}

	return Report{
		Foreground:          fg,
		Background:          bg,
		EffectiveForeground: effFg,
		EffectiveBackground: effBg,
		Translucent:         !fg.IsOpaque() || !bg.IsOpaque(),
		FontSizePx:          fontPx,
		Bold:                bold,
		LargeText:           large,
		Contrast:            result,
		Rating:              colour.Rate(result.Ratio),
		ForegroundLabel:     colour.ReadableText(effFg),
		BackgroundLabel:     colour.ReadableText(effBg),
		Suggestions:         colour.Suggest(req),
	}
}
