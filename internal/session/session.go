// Package session holds the mutable state of an interactive contrast check:
// what the user has typed for each side, the last valid colour for each side,
// typography settings and the commit history. Every change is pushed through
// the pure colour pipeline afresh by Report.
package session

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/huecheck/internal/colour"
)

// Checker defaults.
const (
	DefaultForeground = "#1e293b"
	DefaultBackground = "#ffffff"
	DefaultFontSizePx = 16.0

	maxFontSizePx = 512.0
)

// Options configures a new Session.
type Options struct {
	Foreground string
	Background string
	FontSizePx float64
	Bold       bool
	Step       float64
	Logger     hclog.Logger

	// Backdrop is the opaque surface translucent colours are composited
	// onto. Nil selects white.
	Backdrop *colour.RGB

	// Now stamps history entries; defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns the checker defaults on a white backdrop.
func DefaultOptions() Options {
	return Options{
		Foreground: DefaultForeground,
		Background: DefaultBackground,
		FontSizePx: DefaultFontSizePx,
		Step:       colour.DefaultStep,
	}
}

// side is one half of the colour pair.
type side struct {
	text   string
	colour colour.RGBA
}

// Session is a stateful caller of the colour pipeline. It is not safe for
// concurrent use.
type Session struct {
	sides    map[colour.Target]*side
	fontPx   float64
	bold     bool
	backdrop colour.RGB
	step     float64
	history  colour.History
	pairs    []Pair
	logger   hclog.Logger
	now      func() time.Time
}

// New creates a session. The initial colours must parse completely.
func New(opts Options) (*Session, error) {
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.FontSizePx == 0 {
		opts.FontSizePx = DefaultFontSizePx
	}

	s := &Session{
		sides:    make(map[colour.Target]*side, 2),
		bold:     opts.Bold,
		backdrop: colour.BackdropOrWhite(opts.Backdrop),
		step:     opts.Step,
		logger:   opts.Logger.Named("session"),
		now:      opts.Now,
	}
	if err := s.SetFontSize(opts.FontSizePx); err != nil {
		return nil, err
	}

	initial := []struct {
		target colour.Target
		text   string
	}{
		{colour.TargetForeground, opts.Foreground},
		{colour.TargetBackground, opts.Background},
	}
	for _, in := range initial {
		text := colour.NormaliseInput(in.text)
		c, err := colour.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("initial %s: %w", in.target, err)
		}
		s.sides[in.target] = &side{text: displayText(text, c), colour: c}
	}
	return s, nil
}

// Set feeds typed text for one side. A complete colour replaces the side's
// colour; partial input only updates the echoed text; invalid input changes
// nothing and returns the parse error.
func (s *Session) Set(target colour.Target, text string) (colour.Input, error) {
	sd, ok := s.sides[target]
	if !ok {
		return colour.Input{}, fmt.Errorf("unknown target %q", target)
	}

	normalised := colour.NormaliseInput(text)
	if normalised == "" {
		normalised = "#"
	}

	in, err := colour.ParseInput(normalised)
	if err != nil {
		s.logger.Debug("rejected input", "target", target, "text", text, "error", err)
		return in, err
	}

	switch in.Kind {
	case colour.InputPartial:
		sd.text = in.Text
	case colour.InputColour:
		sd.text = displayText(in.Text, in.Colour)
		sd.colour = in.Colour
		s.logger.Debug("colour updated", "target", target, "colour", in.Colour.Hex())
	}
	return in, nil
}

// SetForeground is Set for the foreground.
func (s *Session) SetForeground(text string) (colour.Input, error) {
	return s.Set(colour.TargetForeground, text)
}

// SetBackground is Set for the background.
func (s *Session) SetBackground(text string) (colour.Input, error) {
	return s.Set(colour.TargetBackground, text)
}

// Text returns the echoed input for a side.
func (s *Session) Text(target colour.Target) string {
	if sd, ok := s.sides[target]; ok {
		return sd.text
	}
	return ""
}

// Colour returns the last valid colour for a side.
func (s *Session) Colour(target colour.Target) colour.RGBA {
	if sd, ok := s.sides[target]; ok {
		return sd.colour
	}
	return colour.RGBA{}
}

// Swap exchanges foreground and background.
func (s *Session) Swap() {
	fg, bg := s.sides[colour.TargetForeground], s.sides[colour.TargetBackground]
	s.sides[colour.TargetForeground], s.sides[colour.TargetBackground] = bg, fg
}

// SetFontSize sets the font size in CSS pixels.
func (s *Session) SetFontSize(px float64) error {
	if px <= 0 || px > maxFontSizePx {
		return fmt.Errorf("font size %vpx not in (0, %v]", px, maxFontSizePx)
	}
	s.fontPx = px
	return nil
}

// FontSize returns the font size in CSS pixels.
func (s *Session) FontSize() float64 {
	return s.fontPx
}

// SetBold sets the font weight.
func (s *Session) SetBold(bold bool) {
	s.bold = bold
}

// Bold reports whether bold text is assumed.
func (s *Session) Bold() bool {
	return s.bold
}

// Apply replaces the suggestion's target side with the suggested colour.
func (s *Session) Apply(sug colour.Suggestion) error {
	_, err := s.Set(sug.Target, sug.Hex)
	return err
}

// Commit records the effective colour of a side in the history and returns
// the new entry.
func (s *Session) Commit(target colour.Target) (colour.Entry, error) {
	sd, ok := s.sides[target]
	if !ok {
		return colour.Entry{}, fmt.Errorf("unknown target %q", target)
	}
	e := colour.NewEntry(colour.Composite(sd.colour, s.backdrop), s.now())
	s.history = s.history.Commit(e)
	s.logger.Debug("committed colour", "target", target, "hex", e.Hex, "history", s.history.Len())
	return e, nil
}

// History returns the committed entries.
func (s *Session) History() colour.History {
	return s.history
}

// displayText echoes opaque colours as canonical hex and keeps the typed
// text for translucent ones.
func displayText(typed string, c colour.RGBA) string {
	if c.IsOpaque() {
		return c.Hex()
	}
	return typed
}
