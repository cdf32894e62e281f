package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huecheck/internal/colour"
	"github.com/jmylchreest/huecheck/internal/session"
)

const interactiveHelp = `Commands:
  fg <colour>        set the text colour (partial input is kept until complete)
  bg <colour>        set the background colour
  swap               exchange text and background
  size <px>          set the font size in CSS pixels
  bold on|off        set the font weight
  suggest            list the nearest compliant colours
  apply <n>          use suggestion n from the last list
  save fg|bg         add the effective colour to the history
  history            list saved colours, newest first
  pair save          remember the current text/background pair
  pair list          list saved pairs with their contrast, newest first
  pair use <n>       load saved pair n
  pair rm <n>        forget saved pair n
  show               print the full report
  help               show this help
  quit               leave`

var errQuit = errors.New("quit")

// repl drives a session from line-oriented input.
type repl struct {
	app         *app
	session     *session.Session
	out         io.Writer
	st          styler
	suggestions []colour.Suggestion
}

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"repl"},
		Short:   "Adjust a colour pair interactively",
		Long: `Start a line-oriented session that keeps a foreground and background
colour, re-evaluates contrast after every change and remembers saved
colours.

` + interactiveHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, a)
		},
	}
}

func runInteractive(cmd *cobra.Command, a *app) error {
	backdrop := a.backdrop
	s, err := session.New(session.Options{
		Foreground: a.settings.Foreground,
		Background: a.settings.Background,
		FontSizePx: a.settings.FontSize,
		Bold:       a.settings.Bold,
		Backdrop:   &backdrop,
		Step:       a.settings.Step,
		Logger:     a.logger,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r := &repl{app: a, session: s, out: out, st: a.styler(out)}
	in := cmd.InOrStdin()
	prompt := ""
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		prompt = "> "
		fmt.Fprintln(out, `Type "help" for commands.`)
	}

	r.status()
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := r.exec(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func (r *repl) exec(line string) error {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "fg", "foreground":
		return r.set(colour.TargetForeground, arg)
	case "bg", "background":
		return r.set(colour.TargetBackground, arg)
	case "swap":
		r.session.Swap()
		r.status()
	case "size":
		px, err := strconv.ParseFloat(strings.TrimSuffix(arg, "px"), 64)
		if err != nil {
			return fmt.Errorf("invalid size %q", arg)
		}
		if err := r.session.SetFontSize(px); err != nil {
			return err
		}
		r.status()
	case "bold":
		switch strings.ToLower(arg) {
		case "on", "true", "yes", "":
			r.session.SetBold(true)
		case "off", "false", "no":
			r.session.SetBold(false)
		default:
			return fmt.Errorf("bold takes on or off, got %q", arg)
		}
		r.status()
	case "suggest":
		report := r.session.Report()
		r.suggestions = report.Suggestions.Suggestions
		printSuggestions(r.out, r.st, report, r.app.backdrop)
	case "apply":
		return r.apply(arg)
	case "save":
		return r.save(arg)
	case "history":
		r.history()
	case "pair", "pairs":
		return r.pair(arg)
	case "show":
		printReport(r.out, r.st, r.session.Report())
	case "help", "?":
		fmt.Fprintln(r.out, interactiveHelp)
	case "quit", "exit", "q":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try help)", name)
	}
	return nil
}

func (r *repl) set(target colour.Target, text string) error {
	in, err := r.session.Set(target, text)
	if err != nil {
		return err
	}
	if in.Kind == colour.InputPartial {
		fmt.Fprintf(r.out, "%s: %s is incomplete, keeping %s\n",
			target, in.Text, r.session.Colour(target).Hex())
		return nil
	}
	r.suggestions = nil
	r.status()
	return nil
}

func (r *repl) apply(arg string) error {
	if len(r.suggestions) == 0 {
		return errors.New("no suggestions listed; run suggest first")
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(r.suggestions) {
		return fmt.Errorf("choose a suggestion between 1 and %d", len(r.suggestions))
	}
	if err := r.session.Apply(r.suggestions[n-1]); err != nil {
		return err
	}
	r.suggestions = nil
	r.status()
	return nil
}

func (r *repl) save(arg string) error {
	var target colour.Target
	switch strings.ToLower(arg) {
	case "fg", "foreground":
		target = colour.TargetForeground
	case "bg", "background":
		target = colour.TargetBackground
	default:
		return fmt.Errorf("save takes fg or bg, got %q", arg)
	}
	e, err := r.session.Commit(target)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "saved %s  %s  %s\n", e.Hex, e.RGB, e.HSL)
	return nil
}

func (r *repl) history() {
	entries := r.session.History().Entries()
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "history is empty")
		return
	}
	table := NewTable("", "Hex", "RGB", "HSL", "Saved")
	for _, e := range entries {
		c, err := colour.Parse(e.Hex)
		swatch := ""
		if err == nil {
			swatch = r.st.swatch(c.Opaque())
		}
		table.AddRow(swatch, e.Hex, e.RGB, e.HSL, e.CreatedAt.Format("15:04:05"))
	}
	fmt.Fprint(r.out, table.Render())
}

func (r *repl) pair(arg string) error {
	sub, rest, _ := strings.Cut(arg, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(sub) {
	case "save":
		p, err := r.session.SavePair()
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "saved pair %s on %s\n", p.Foreground.Hex(), p.Background.Hex())
	case "list", "ls", "":
		r.pairs()
	case "use", "rm", "remove":
		pairs := r.session.Pairs()
		if len(pairs) == 0 {
			return errors.New("no saved pairs; run pair save first")
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 || n > len(pairs) {
			return fmt.Errorf("choose a pair between 1 and %d", len(pairs))
		}
		p := pairs[n-1]
		if strings.ToLower(sub) == "use" {
			if err := r.session.SelectPair(p.ID); err != nil {
				return err
			}
			r.suggestions = nil
			r.status()
			return nil
		}
		if err := r.session.RemovePair(p.ID); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "removed pair %s on %s\n", p.Foreground.Hex(), p.Background.Hex())
	default:
		return fmt.Errorf("pair takes save, list, use <n> or rm <n>, got %q", sub)
	}
	return nil
}

func (r *repl) pairs() {
	pairs := r.session.Pairs()
	if len(pairs) == 0 {
		fmt.Fprintln(r.out, "no saved pairs")
		return
	}
	table := NewTable("#", "Foreground", "Background", "", "Ratio", "Rating")
	for i, p := range pairs {
		sample := r.st.sample(colour.Composite(p.Foreground, r.app.backdrop), colour.Composite(p.Background, r.app.backdrop), "Aa")
		table.AddRow(strconv.Itoa(i+1), p.Foreground.Hex(), p.Background.Hex(), sample, formatRatio(p.Ratio), string(p.Rating))
	}
	fmt.Fprint(r.out, table.Render())
}

// status prints a one-line summary of the current pair.
func (r *repl) status() {
	rep := r.session.Report()
	fgText := r.session.Text(colour.TargetForeground)
	bgText := r.session.Text(colour.TargetBackground)
	line := fmt.Sprintf("fg %s  bg %s  %s %s  AA %s  AAA %s  [%s]",
		fgText, bgText, formatRatio(rep.Contrast.Ratio), rep.Rating,
		r.st.verdict(rep.Passes(colour.LevelAA)), r.st.verdict(rep.Passes(colour.LevelAAA)),
		describeSize(rep.FontSizePx, rep.Bold, rep.LargeText))
	fmt.Fprintln(r.out, line)
	if sample := r.st.sample(rep.EffectiveForeground, rep.EffectiveBackground, "Sample text"); sample != "" {
		fmt.Fprintln(r.out, sample)
	}
}
