package session

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/huecheck/internal/colour"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	opts := DefaultOptions()
	opts.Now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	s, err := New(opts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s
}

func TestNewRejectsInvalidInitialColour(t *testing.T) {
	opts := DefaultOptions()
	opts.Background = "rgb(300,0,0)"
	if _, err := New(opts); !errors.Is(err, colour.ErrOutOfRange) {
		t.Fatalf("New() error = %v, want ErrOutOfRange", err)
	}
}

func TestNewDefaultsBackdropToWhite(t *testing.T) {
	s, err := New(Options{Foreground: "rgba(0,0,0,0.5)", Background: "#fff"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	r := s.Report()
	if got := r.EffectiveForeground.Hex(); got != "#808080" {
		t.Errorf("EffectiveForeground = %s, want #808080", got)
	}
	if want := colour.ContrastRatio(colour.RGB{R: 128, G: 128, B: 128}, colour.White); r.Suggestions.Ratio != want {
		t.Errorf("suggestion baseline ratio = %v, want %v", r.Suggestions.Ratio, want)
	}

	black := colour.Black
	s, err = New(Options{Foreground: "rgba(0,0,0,0.5)", Background: "#fff", Backdrop: &black})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if got := s.Report().EffectiveForeground.Hex(); got != "#000000" {
		t.Errorf("EffectiveForeground on black = %s, want #000000", got)
	}
}

func TestSetPartialKeepsLastColour(t *testing.T) {
	s := newTestSession(t)
	before := s.Colour(colour.TargetForeground)

	in, err := s.SetForeground("1a")
	if err != nil {
		t.Fatalf("SetForeground error: %v", err)
	}
	if in.Kind != colour.InputPartial {
		t.Errorf("Kind = %v, want partial", in.Kind)
	}
	if got := s.Text(colour.TargetForeground); got != "#1a" {
		t.Errorf("Text = %q, want auto-prefixed #1a", got)
	}
	if got := s.Colour(colour.TargetForeground); got != before {
		t.Errorf("partial input changed colour to %+v", got)
	}

	if _, err := s.SetForeground("1a2b3c"); err != nil {
		t.Fatalf("SetForeground error: %v", err)
	}
	if got := s.Colour(colour.TargetForeground).Hex(); got != "#1a2b3c" {
		t.Errorf("colour = %s, want #1a2b3c", got)
	}
}

func TestSetInvalidChangesNothing(t *testing.T) {
	s := newTestSession(t)
	before := s.Text(colour.TargetBackground)

	if _, err := s.SetBackground("rgb(300,0,0)"); !errors.Is(err, colour.ErrOutOfRange) {
		t.Fatalf("error = %v, want ErrOutOfRange", err)
	}
	if got := s.Text(colour.TargetBackground); got != before {
		t.Errorf("text changed to %q", got)
	}
}

func TestSetEmptyBecomesHash(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.SetBackground(""); err != nil {
		t.Fatalf("error: %v", err)
	}
	if got := s.Text(colour.TargetBackground); got != "#" {
		t.Errorf("Text = %q, want #", got)
	}
}

func TestTranslucentInputEchoesTypedText(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.SetForeground(" rgba(0, 0, 0, 0.5) "); err != nil {
		t.Fatalf("error: %v", err)
	}
	if got := s.Text(colour.TargetForeground); got != "rgba(0, 0, 0, 0.5)" {
		t.Errorf("Text = %q", got)
	}

	r := s.Report()
	if !r.Translucent {
		t.Error("Translucent = false")
	}
	if r.EffectiveForeground != (colour.RGB{R: 128, G: 128, B: 128}) {
		t.Errorf("EffectiveForeground = %v", r.EffectiveForeground)
	}
}

func TestSwap(t *testing.T) {
	s := newTestSession(t)
	s.Swap()
	if got := s.Text(colour.TargetForeground); got != DefaultBackground {
		t.Errorf("foreground after swap = %q", got)
	}
	if got := s.Text(colour.TargetBackground); got != DefaultForeground {
		t.Errorf("background after swap = %q", got)
	}
}

func TestReportLargeText(t *testing.T) {
	s := newTestSession(t)
	if s.Report().LargeText {
		t.Error("16px regular reported as large text")
	}
	s.SetBold(true)
	if err := s.SetFontSize(19); err != nil {
		t.Fatal(err)
	}
	if !s.Report().LargeText {
		t.Error("19px bold not reported as large text")
	}
	if err := s.SetFontSize(0); err == nil {
		t.Error("SetFontSize(0) accepted")
	}
}

func TestApplySuggestion(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.SetForeground("#777777"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SetBackground("#808080"); err != nil {
		t.Fatal(err)
	}

	r := s.Report()
	if r.Passes(colour.LevelAA) {
		t.Fatalf("pair unexpectedly passes AA at %.2f", r.Contrast.Ratio)
	}
	if len(r.Suggestions.Suggestions) == 0 {
		t.Fatal("no suggestions")
	}

	sug := r.Suggestions.Suggestions[0]
	if err := s.Apply(sug); err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	after := s.Report()
	if after.Contrast.Ratio < colour.Threshold(sug.Level, false) {
		t.Errorf("ratio after apply = %.3f", after.Contrast.Ratio)
	}
}

func TestCommitHistory(t *testing.T) {
	s := newTestSession(t)
	e, err := s.Commit(colour.TargetForeground)
	if err != nil {
		t.Fatal(err)
	}
	want := colour.Entry{
		ID:        e.ID,
		Hex:       "#1e293b",
		RGB:       "rgb(30, 41, 59)",
		HSL:       "hsl(217, 33%, 17%)",
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if diff := cmp.Diff(want, e); diff != "" {
		t.Errorf("Commit() mismatch (-want +got):\n%s", diff)
	}
	if _, err := s.Commit(colour.TargetForeground); err != nil {
		t.Fatal(err)
	}
	if got := s.History().Len(); got != 1 {
		t.Errorf("history length = %d, want 1 after committing the same colour twice", got)
	}
	if _, err := s.Commit("sideways"); err == nil {
		t.Error("Commit accepted unknown target")
	}
}
