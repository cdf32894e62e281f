package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huecheck/internal/colour"
	"github.com/jmylchreest/huecheck/internal/config"
	"github.com/jmylchreest/huecheck/internal/session"
)

type checkOptions struct {
	suggest   bool
	failUnder string
}

func newCheckCmd(a *app) *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check <foreground> <background>",
		Short: "Check the contrast of a text and background colour pair",
		Long: `Check the contrast ratio between a foreground (text) colour and a
background colour and report WCAG AA and AAA compliance for normal text,
large text and graphical objects.

Text is large when it is at least 24px, or at least 18.66px and bold.

Examples:
  # Check slate text on white
  huecheck check '#1e293b' '#fff'

  # Translucent text composited onto a dark backdrop
  huecheck check 'rgba(255, 255, 255, 0.6)' '#111' --backdrop '#111'

  # Include the nearest compliant alternatives
  huecheck check '#777' '#fff' --suggest

  # Fail a CI job when AA is not met
  huecheck check '#999' '#fff' --fail-under AA`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, a, opts, args)
		},
	}
	addPairFlags(cmd)
	addFormatFlag(cmd)
	cmd.Flags().BoolVar(&opts.suggest, "suggest", false, "list the nearest compliant colours")
	cmd.Flags().StringVar(&opts.failUnder, "fail-under", "", "exit with status 2 unless this level is met (AA, AAA)")
	return cmd
}

// evaluatePair parses both arguments and evaluates them with the resolved
// settings.
func (a *app) evaluatePair(fgArg, bgArg string) (session.Report, error) {
	fg, err := parseArg("foreground", fgArg)
	if err != nil {
		return session.Report{}, err
	}
	bg, err := parseArg("background", bgArg)
	if err != nil {
		return session.Report{}, err
	}
	s := a.settings
	report := session.Evaluate(fg, bg, a.backdrop, s.FontSize, s.Bold, s.Step)
	a.logger.Debug("evaluated pair", "foreground", fg.Hex(), "background", bg.Hex(),
		"ratio", report.Contrast.Ratio, "large", report.LargeText, "suggestions", len(report.Suggestions.Suggestions))
	return report, nil
}

func runCheck(cmd *cobra.Command, a *app, opts *checkOptions, args []string) error {
	var level colour.Level
	if opts.failUnder != "" {
		var err error
		if level, err = parseLevel(opts.failUnder); err != nil {
			return err
		}
	}

	report, err := a.evaluatePair(args[0], args[1])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if a.settings.Format == config.FormatJSON {
		if !opts.suggest {
			report.Suggestions.Suggestions = nil
		}
		if err := writeJSON(out, report); err != nil {
			return err
		}
	} else {
		st := a.styler(out)
		printReport(out, st, report)
		if opts.suggest {
			fmt.Fprintln(out)
			printSuggestions(out, st, report, a.backdrop)
		}
	}

	if level != "" && !report.Passes(level) {
		return fmt.Errorf("%w: %s is below %s for %s",
			ErrBelowLevel, formatRatio(report.Contrast.Ratio), level, kindOf(report.LargeText))
	}
	return nil
}

func parseLevel(s string) (colour.Level, error) {
	switch level := colour.Level(strings.ToUpper(strings.TrimSpace(s))); level {
	case colour.LevelAA, colour.LevelAAA:
		return level, nil
	default:
		return "", fmt.Errorf("invalid level %q (want AA or AAA)", s)
	}
}

func kindOf(large bool) string {
	if large {
		return "large text"
	}
	return "normal text"
}

func printReport(w io.Writer, st styler, r session.Report) {
	fmt.Fprintf(w, "%s  %s  %s\n", st.heading.Sprint("Foreground"), r.Foreground.Hex(), r.Foreground)
	fmt.Fprintf(w, "%s  %s  %s\n", st.heading.Sprint("Background"), r.Background.Hex(), r.Background)
	if r.Translucent {
		fmt.Fprintf(w, "%s   %s on %s\n", st.heading.Sprint("Effective"),
			r.EffectiveForeground.Hex(), r.EffectiveBackground.Hex())
	}
	if sample := st.sample(r.EffectiveForeground, r.EffectiveBackground, "The quick brown fox"); sample != "" {
		fmt.Fprintf(w, "%s\n", sample)
	}
	fmt.Fprintf(w, "%s    %s  %s\n", st.heading.Sprint("Contrast"), formatRatio(r.Contrast.Ratio), r.Rating)
	fmt.Fprintf(w, "%s   %s\n\n", st.heading.Sprint("Text size"), describeSize(r.FontSizePx, r.Bold, r.LargeText))

	wcag := r.Contrast.WCAG
	table := NewTable("Criterion", "Required", "Result")
	table.AlignRight(1)
	rows := []struct {
		name string
		need float64
		ok   bool
	}{
		{"Normal text AA", colour.RatioAANormal, wcag.NormalAA},
		{"Normal text AAA", colour.RatioAAANormal, wcag.NormalAAA},
		{"Large text AA", colour.RatioAALarge, wcag.LargeAA},
		{"Large text AAA", colour.RatioAAALarge, wcag.LargeAAA},
		{"Graphics AA", colour.RatioAAGraphics, wcag.GraphicsAA},
	}
	for _, row := range rows {
		table.AddRow(row.name, fmt.Sprintf("%g:1", row.need), st.verdict(row.ok))
	}
	fmt.Fprint(w, table.Render())
}

func printSuggestions(w io.Writer, st styler, r session.Report, backdrop colour.RGB) {
	sr := r.Suggestions
	switch {
	case len(sr.Suggestions) == 0 && r.Passes(colour.LevelAAA):
		fmt.Fprintf(w, "Meets AAA for %s; no suggestions needed.\n", kindOf(r.LargeText))
		return
	case len(sr.Suggestions) == 0:
		fmt.Fprintln(w, "No compliant colour found by adjusting lightness.")
		return
	case sr.AAPassed:
		fmt.Fprintf(w, "Meets AA for %s. Closest colours reaching AAA:\n", kindOf(r.LargeText))
	default:
		fmt.Fprintln(w, "Closest compliant colours:")
	}

	table := NewTable("#", "Change", "Colour", "", "Ratio", "Level", "ΔL")
	table.AlignRight(0)
	table.AlignRight(4)
	table.AlignRight(6)
	for i, s := range sr.Suggestions {
		table.AddRow(
			fmt.Sprint(i+1),
			string(s.Target),
			s.Hex,
			st.swatch(colour.Composite(s.Colour, backdrop)),
			formatRatio(s.Ratio),
			fmt.Sprintf("%s (%s)", s.Level, s.Label()),
			fmt.Sprintf("%.1f", s.LightnessDelta),
		)
	}
	fmt.Fprint(w, table.Render())
}

func newSuggestCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <foreground> <background>",
		Short: "Suggest the nearest compliant colours for a pair",
		Long: `Search for the colours closest in lightness to each side of the pair
that reach WCAG AA and AAA. Hue and saturation are kept; translucent
colours keep their alpha.

Examples:
  huecheck suggest '#777' '#fff'
  huecheck suggest '#777' '#fff' --bold --font-size 19 --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.evaluatePair(args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.settings.Format == config.FormatJSON {
				return writeJSON(out, report.Suggestions)
			}
			fmt.Fprintf(out, "Contrast %s (%s)\n", formatRatio(report.Contrast.Ratio), report.Rating)
			printSuggestions(out, a.styler(out), report, a.backdrop)
			return nil
		},
	}
	addPairFlags(cmd)
	addFormatFlag(cmd)
	return cmd
}
