package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huecheck/internal/preview"
)

type previewOptions struct {
	output string
	scale  int
	text   []string
}

func newPreviewCmd(a *app) *cobra.Command {
	opts := &previewOptions{}
	cmd := &cobra.Command{
		Use:   "preview <foreground> <background>",
		Short: "Render a PNG sample of text in a colour pair",
		Long: `Render sample text in the foreground colour on the background colour at
the configured font size and write it as a PNG image. Translucent colours
are composited onto the backdrop first.

Examples:
  huecheck preview '#1e293b' '#fff' -o sample.png
  huecheck preview '#777' '#fff' --font-size 24 --bold --scale 2 -o large.png
  huecheck preview '#fff' '#0f172a' --text 'Buy now' -o - > button.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, a, opts, args)
		},
	}
	addPairFlags(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or - for stdout")
	cmd.Flags().IntVar(&opts.scale, "scale", 1, "integer upscaling factor (1-8)")
	cmd.Flags().StringArrayVar(&opts.text, "text", nil, "sample line to draw (repeatable)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runPreview(cmd *cobra.Command, a *app, opts *previewOptions, args []string) error {
	report, err := a.evaluatePair(args[0], args[1])
	if err != nil {
		return err
	}

	lines := opts.text
	if len(lines) == 0 {
		lines = []string{
			"Aa The quick brown fox jumps over the lazy dog",
			fmt.Sprintf("%s on %s", report.EffectiveForeground.Hex(), report.EffectiveBackground.Hex()),
			fmt.Sprintf("Contrast %s (%s)", formatRatio(report.Contrast.Ratio), report.Rating),
		}
	}

	img, err := preview.Render(report.EffectiveForeground, report.EffectiveBackground, preview.Options{
		FontSizePx: a.settings.FontSize,
		Bold:       a.settings.Bold,
		Lines:      lines,
		Padding:    preview.DefaultPadding,
		Scale:      opts.scale,
	})
	if err != nil {
		return err
	}

	if opts.output == "-" {
		return preview.WritePNG(cmd.OutOrStdout(), img)
	}
	f, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeAndClose(f, func(w io.Writer) error { return preview.WritePNG(w, img) }); err != nil {
		return err
	}

	a.logger.Debug("wrote preview", "path", opts.output, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	if !a.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%dx%d)\n", opts.output, img.Bounds().Dx(), img.Bounds().Dy())
	}
	return nil
}

func writeAndClose(f *os.File, write func(io.Writer) error) error {
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", f.Name(), err)
	}
	return nil
}
