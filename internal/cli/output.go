package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/jmylchreest/huecheck/internal/colour"
)

const swatchWidth = 8

// styler decorates text output. Colour and swatches are only emitted when
// the destination is a terminal and colour has not been disabled.
type styler struct {
	enabled bool
	pass    *color.Color
	fail    *color.Color
	heading *color.Color
	muted   *color.Color
}

func (a *app) styler(w io.Writer) styler {
	enabled := !a.settings.NoColour && isTerminal(w)
	s := styler{
		enabled: enabled,
		pass:    color.New(color.FgGreen, color.Bold),
		fail:    color.New(color.FgRed, color.Bold),
		heading: color.New(color.Bold),
		muted:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{s.pass, s.fail, s.heading, s.muted} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (s styler) verdict(ok bool) string {
	if ok {
		return s.pass.Sprint("PASS")
	}
	return s.fail.Sprint("FAIL")
}

// swatch returns a coloured block, or an empty string when disabled.
func (s styler) swatch(c colour.RGB) string {
	if !s.enabled {
		return ""
	}
	return colour.Swatch(c, swatchWidth)
}

func (s styler) sample(fg, bg colour.RGB, text string) string {
	if !s.enabled {
		return ""
	}
	return colour.SwatchPair(fg, bg, text, len(text)+4)
}

func formatRatio(r float64) string {
	return fmt.Sprintf("%.2f:1", r)
}

func describeSize(px float64, bold, large bool) string {
	weight := "regular"
	if bold {
		weight = "bold"
	}
	kind := "normal text"
	if large {
		kind = "large text"
	}
	return fmt.Sprintf("%gpx %s (%s)", px, weight, kind)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
