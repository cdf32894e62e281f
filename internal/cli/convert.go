package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huecheck/internal/colour"
	"github.com/jmylchreest/huecheck/internal/config"
)

// conversion is one colour in every supported notation.
type conversion struct {
	Input     string     `json:"input"`
	Hex       string     `json:"hex"`
	RGB       string     `json:"rgb"`
	HSL       string     `json:"hsl"`
	HSV       string     `json:"hsv"`
	Alpha     float64    `json:"alpha"`
	Effective colour.RGB `json:"effective"`
	Luminance float64    `json:"luminance"`
}

func convert(input string, c colour.RGBA, backdrop colour.RGB) conversion {
	effective := colour.Composite(c, backdrop)
	opaque := c.Opaque()
	return conversion{
		Input:     input,
		Hex:       c.Hex(),
		RGB:       c.String(),
		HSL:       colour.RGBToHSL(opaque).String(),
		HSV:       colour.RGBToHSV(opaque).String(),
		Alpha:     c.A,
		Effective: effective,
		Luminance: colour.Luminance(effective),
	}
}

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <colour>...",
		Short: "Show colours in hex, rgb, hsl and hsv notation",
		Long: `Convert one or more colours between notations and print their relative
luminance. Translucent colours are composited onto the backdrop for the
luminance and effective colour.

Examples:
  huecheck convert '#36c' 'hsl(210, 50%, 40%)'
  huecheck convert 'rgba(0, 0, 0, 0.5)' --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]conversion, 0, len(args))
			for i, arg := range args {
				c, err := parseArg(fmt.Sprintf("colour %d", i+1), arg)
				if err != nil {
					return err
				}
				results = append(results, convert(arg, c, a.backdrop))
			}

			out := cmd.OutOrStdout()
			if a.settings.Format == config.FormatJSON {
				return writeJSON(out, results)
			}

			st := a.styler(out)
			table := NewTable("", "Hex", "RGB", "HSL", "HSV", "Luminance")
			table.AlignRight(5)
			for _, r := range results {
				table.AddRow(st.swatch(r.Effective), r.Hex, r.RGB, r.HSL, r.HSV, fmt.Sprintf("%.4f", r.Luminance))
			}
			fmt.Fprint(out, table.Render())
			return nil
		},
	}
	cmd.Flags().String("backdrop", config.Defaults().Backdrop, "opaque colour translucent inputs are composited onto")
	addFormatFlag(cmd)
	return cmd
}
