package colour

import (
	"math"
	"testing"
)

func TestSuggestFindsNearestAA(t *testing.T) {
	anchor := MustParse("#777777")
	start := MustParse("#808080")

	report := Suggest(NewSuggestRequest(start, anchor, false))
	if report.Ratio >= RatioAANormal {
		t.Fatalf("baseline ratio %v unexpectedly passes AA", report.Ratio)
	}
	if report.AAPassed {
		t.Errorf("AAPassed = true with AA unmet")
	}

	var fg *Suggestion
	for i, s := range report.Suggestions {
		if s.Ratio < Threshold(s.Level, false) {
			t.Errorf("suggestion %s ratio %.3f below %s threshold", s.Hex, s.Ratio, s.Level)
		}
		if s.Level == LevelAAA {
			t.Errorf("AAA is unreachable against #777777, got %+v", s)
		}
		if s.Target == TargetForeground && s.Level == LevelAA {
			fg = &report.Suggestions[i]
		}
	}
	if fg == nil {
		t.Fatalf("no AA foreground suggestion in %+v", report.Suggestions)
	}

	// A finer exhaustive scan must not find a passing lightness closer to
	// the original than the engine did.
	origin := RGBToHSL(start.Opaque())
	closest := math.Inf(1)
	for l := 0.0; l <= 100; l += 0.01 {
		hsl := origin
		hsl.L = l
		if ContrastRatio(HSLToRGB(hsl), anchor.Opaque()) >= RatioAANormal {
			closest = math.Min(closest, math.Abs(l-origin.L))
		}
	}
	if fg.LightnessDelta > closest+1e-6 {
		t.Errorf("LightnessDelta = %v, exhaustive scan found %v", fg.LightnessDelta, closest)
	}
}

func TestSuggestAlreadyCompliant(t *testing.T) {
	report := Suggest(NewSuggestRequest(MustParse("#000"), MustParse("#fff"), false))
	if len(report.Suggestions) != 0 {
		t.Errorf("compliant pair got suggestions %+v", report.Suggestions)
	}
	if report.AAPassed {
		t.Errorf("AAPassed should only be set when AAA suggestions follow")
	}
}

func TestSuggestOnlyAAAUnmet(t *testing.T) {
	report := Suggest(NewSuggestRequest(MustParse("#767676"), MustParse("#ffffff"), false))
	if !report.AAPassed {
		t.Fatalf("AAPassed = false for ratio %.2f", report.Ratio)
	}
	if len(report.Suggestions) == 0 {
		t.Fatal("expected AAA suggestions")
	}
	for _, s := range report.Suggestions {
		if s.Level != LevelAAA {
			t.Errorf("got %s suggestion %s, want AAA only", s.Level, s.Hex)
		}
		if s.Ratio < RatioAAANormal {
			t.Errorf("suggestion %s ratio %.3f below 7", s.Hex, s.Ratio)
		}
		if s.Label() != RatingExcellent {
			t.Errorf("Label() = %s, want Excellent", s.Label())
		}
	}
}

func TestSuggestKeepsAlphaOfAdjustableColour(t *testing.T) {
	req := NewSuggestRequest(MustParse("rgba(128,128,128,0.5)"), MustParse("#fff"), true)
	report := Suggest(req)

	var found bool
	for _, s := range report.Suggestions {
		if s.Target != TargetForeground {
			continue
		}
		found = true
		if s.Colour.A != 0.5 {
			t.Errorf("suggestion alpha = %v, want 0.5", s.Colour.A)
		}
		if len(s.Hex) != 9 {
			t.Errorf("translucent suggestion hex %q, want #rrggbbaa", s.Hex)
		}
		got := ContrastRatio(Composite(s.Colour, White), White)
		if got < Threshold(s.Level, true) {
			t.Errorf("composited ratio %.3f below threshold", got)
		}
	}
	if !found {
		t.Fatalf("no foreground suggestion in %+v", report.Suggestions)
	}
}

func TestSuggestOrderingAndDedup(t *testing.T) {
	report := Suggest(NewSuggestRequest(MustParse("#3366cc"), MustParse("#224488"), false))
	seen := map[string]bool{}
	for i, s := range report.Suggestions {
		if seen[s.Hex] {
			t.Errorf("duplicate hex %s", s.Hex)
		}
		seen[s.Hex] = true
		if i > 0 && report.Suggestions[i-1].LightnessDelta > s.LightnessDelta {
			t.Errorf("suggestions not sorted by lightness change at %d", i)
		}
	}
	if len(report.Suggestions) > 4 {
		t.Errorf("got %d suggestions, want at most one per level and target", len(report.Suggestions))
	}
}

func TestSuggestDegenerateOmitted(t *testing.T) {
	// Fully transparent colours composite to the backdrop whatever their
	// lightness, so the foreground side can never change.
	req := NewSuggestRequest(RGBA{R: 10, G: 10, B: 10, A: 0}, MustParse("#ffffff"), false)
	for _, s := range Suggest(req).Suggestions {
		if s.Target == TargetForeground {
			t.Errorf("unexpected foreground suggestion %+v", s)
		}
	}
}

func TestSuggestNormalisesSearchBounds(t *testing.T) {
	req := SuggestRequest{
		Foreground: MustParse("#808080"),
		Background: MustParse("#777777"),
		Step:       -3,
		Iterations: 10_000,
	}
	n := req.normalised()
	if n.Step != DefaultStep || n.Iterations != maxIterations {
		t.Errorf("normalised() = step %v iterations %d", n.Step, n.Iterations)
	}
	if len(Suggest(req).Suggestions) == 0 {
		t.Error("expected suggestions with normalised bounds")
	}
}

func TestSuggestBackdropDefaultsToWhite(t *testing.T) {
	fg := MustParse("rgba(0,0,0,0.5)")
	bg := MustParse("#ffffff")

	got := Suggest(SuggestRequest{Foreground: fg, Background: bg}).Ratio
	want := ContrastRatio(RGB{128, 128, 128}, White)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("nil backdrop ratio = %.3f, want %.3f (white)", got, want)
	}

	black := Black
	got = Suggest(SuggestRequest{Foreground: fg, Background: bg, Backdrop: &black}).Ratio
	if math.Abs(got-21) > 1e-9 {
		t.Errorf("black backdrop ratio = %.3f, want 21", got)
	}
}
