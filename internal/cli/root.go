// Package cli provides the command-line interface for huecheck.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/huecheck/internal/colour"
	"github.com/jmylchreest/huecheck/internal/config"
	"github.com/jmylchreest/huecheck/internal/logging"
	"github.com/jmylchreest/huecheck/internal/version"
)

// ErrBelowLevel is returned by check --fail-under when the pair does not
// meet the requested level.
var ErrBelowLevel = errors.New("contrast below required level")

// ExitCode maps an error returned by the root command to a process exit
// status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrBelowLevel):
		return 2
	default:
		return 1
	}
}

// app is the state shared by every command once flags and config are
// resolved.
type app struct {
	configPath string
	verbose    bool
	quiet      bool
	noColour   bool

	settings   config.Settings
	backdrop   colour.RGB
	loadedFrom string
	logger     hclog.Logger
	getenv     func(string) string
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		settings: config.Defaults(),
		backdrop: colour.White,
		logger:   hclog.NewNullLogger(),
		getenv:   os.Getenv,
	}

	rootCmd := &cobra.Command{
		Use:   "huecheck",
		Short: "A WCAG colour contrast checker",
		Long: `huecheck measures the contrast between a text colour and a background
colour, reports WCAG 2 compliance and suggests the nearest compliant
colours when a pair falls short.

Colours may be written as hex (#rgb, #rgba, #rrggbb, #rrggbbaa) or as
rgb(), rgba(), hsl() and hsla() functions. Translucent colours are
composited onto an opaque backdrop (white by default) before measuring.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress log and status messages; reports are still printed")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: .huecheck.{toml,yaml,json} or $XDG_CONFIG_HOME/huecheck/config.*)")
	rootCmd.PersistentFlags().BoolVar(&a.noColour, "no-colour", false, "disable coloured output and swatches")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newCheckCmd(a),
		newSuggestCmd(a),
		newConvertCmd(a),
		newAnalyzeCmd(a),
		newPreviewCmd(a),
		newInteractiveCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits with the mapped status.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(ExitCode(err))
	}
}

// setup resolves configuration layers and builds the logger before any
// subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = logging.New(cmd.ErrOrStderr(), a.verbose, a.quiet)

	flags, err := flagLayer(cmd.Flags())
	if err != nil {
		return err
	}
	if a.noColour {
		noColour := true
		flags.NoColour = &noColour
	}

	explicit := a.configPath
	if explicit == "" {
		explicit = a.getenv("HUECHECK_CONFIG")
	}
	home, _ := os.UserHomeDir()
	settings, path, err := config.Resolve(config.Sources{
		ExplicitPath: explicit,
		StartDir:     ".",
		XDGHome:      a.getenv("XDG_CONFIG_HOME"),
		Home:         home,
		DotEnvPath:   ".env",
		Getenv:       a.getenv,
		Flags:        flags,
	})
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	backdrop, err := config.Backdrop(settings)
	if err != nil {
		return err
	}

	a.settings = settings
	a.backdrop = backdrop
	a.loadedFrom = path
	if path != "" {
		a.logger.Debug("loaded config", "path", path)
	}
	a.logger.Debug("resolved settings", "backdrop", backdrop.Hex(), "font_size", settings.FontSize,
		"bold", settings.Bold, "format", settings.Format, "step", settings.Step)
	return nil
}

// flagLayer turns the shared flags the user set explicitly into a config
// layer. Flags a command does not define are ignored.
func flagLayer(fs *pflag.FlagSet) (config.Config, error) {
	var cfg config.Config
	changed := func(name string) bool {
		f := fs.Lookup(name)
		return f != nil && f.Changed
	}

	if changed("backdrop") {
		v, err := fs.GetString("backdrop")
		if err != nil {
			return cfg, err
		}
		cfg.Backdrop = &v
	}
	if changed("font-size") {
		v, err := fs.GetFloat64("font-size")
		if err != nil {
			return cfg, err
		}
		cfg.FontSize = &v
	}
	if changed("bold") {
		v, err := fs.GetBool("bold")
		if err != nil {
			return cfg, err
		}
		cfg.Bold = &v
	}
	if changed("format") {
		v, err := fs.GetString("format")
		if err != nil {
			return cfg, err
		}
		cfg.Format = &v
	}
	if changed("step") {
		v, err := fs.GetFloat64("step")
		if err != nil {
			return cfg, err
		}
		cfg.Step = &v
	}
	return cfg, nil
}

// addPairFlags registers the flags shared by commands that evaluate a
// colour pair. Defaults shown are the built-in ones; config and env may
// change them.
func addPairFlags(cmd *cobra.Command) {
	defaults := config.Defaults()
	cmd.Flags().Float64("font-size", defaults.FontSize, "text size in CSS pixels")
	cmd.Flags().Bool("bold", false, "text is bold")
	cmd.Flags().String("backdrop", defaults.Backdrop, "opaque colour translucent inputs are composited onto")
	cmd.Flags().Float64("step", defaults.Step, "lightness step for the suggestion search")
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", config.FormatText, "output format (text, json)")
}

// parseArg parses a colour argument, adding a leading # to bare hex.
func parseArg(name, text string) (colour.RGBA, error) {
	c, err := colour.Parse(colour.NormaliseInput(text))
	if err != nil {
		return colour.RGBA{}, fmt.Errorf("%s %q: %w", name, text, err)
	}
	return c, nil
}
