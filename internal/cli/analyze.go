package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huecheck/internal/analyze"
	"github.com/jmylchreest/huecheck/internal/colour"
	"github.com/jmylchreest/huecheck/internal/config"
	imageio "github.com/jmylchreest/huecheck/internal/image"
	httputil "github.com/jmylchreest/huecheck/internal/util/http"
)

type analyzeOptions struct {
	against string
	limit   int
	colours int
	timeout time.Duration
}

// analyzeOutput is the JSON shape of the analyze command.
type analyzeOutput struct {
	Source   string            `json:"source"`
	Kind     string            `json:"kind"`
	Against  string            `json:"against"`
	Tokens   int               `json:"tokens,omitempty"`
	Samples  int               `json:"samples,omitempty"`
	Rejected []string          `json:"rejected,omitempty"`
	Colours  int               `json:"colours"`
	Findings []analyze.Finding `json:"findings"`
}

func newAnalyzeCmd(a *app) *cobra.Command {
	opts := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze <file|url|->",
		Short: "List the colours used in a stylesheet or screenshot",
		Long: `Scan a CSS file, URL or stdin for colour literals, count how often each
effective colour is used and rate its contrast against a background.

Images (PNG, JPEG, GIF, WebP) are sampled instead: their dominant colours
are found with k-means clustering and rated the same way.

Examples:
  # Colours in a local stylesheet, rated against white
  huecheck analyze theme.css

  # A remote stylesheet rated against a dark page background
  huecheck analyze https://example.com/site.css --against '#0f172a'

  # Top five colours from stdin as JSON
  cat app.css | huecheck analyze - --limit 5 --format json

  # Six dominant colours of a screenshot
  huecheck analyze screenshot.png --colours 6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, a, opts, args[0])
		},
	}
	cmd.Flags().StringVar(&opts.against, "against", "", "background to rate each colour against (default: configured background)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 20, "show at most this many colours (0 for all)")
	cmd.Flags().IntVarP(&opts.colours, "colours", "c", 8, "number of dominant colours to find in images")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", httputil.DefaultTimeout, "timeout for fetching URLs")
	cmd.Flags().String("backdrop", config.Defaults().Backdrop, "opaque colour translucent literals are composited onto")
	addFormatFlag(cmd)
	return cmd
}

func runAnalyze(cmd *cobra.Command, a *app, opts *analyzeOptions, source string) error {
	againstText := opts.against
	if againstText == "" {
		againstText = a.settings.Background
	}
	against, err := parseArg("against", againstText)
	if err != nil {
		return err
	}
	bg := colour.Composite(against, a.backdrop)

	data, err := analyze.Load(cmd.Context(), source, analyze.SourceOptions{
		Stdin:   cmd.InOrStdin(),
		Timeout: opts.timeout,
	})
	if err != nil {
		return err
	}

	backdrop := a.backdrop
	scanOpts := analyze.Options{Backdrop: &backdrop, Logger: a.logger.Named("analyze")}
	kind := "stylesheet"
	var res analyze.Result
	if imageio.IsImage(data) {
		img, format, err := imageio.Decode(data)
		if err != nil {
			return err
		}
		kind = "image"
		a.logger.Debug("loaded image", "source", source, "format", format, "bounds", img.Bounds().String())
		if res, err = analyze.ScanImage(img, opts.colours, scanOpts); err != nil {
			return err
		}
	} else {
		if imageio.IsImageFile(source) {
			a.logger.Warn("file has an image extension but is not a supported image; scanning as CSS", "source", source)
		}
		a.logger.Debug("loaded stylesheet", "source", source, "bytes", len(data))
		res = analyze.Scan(string(data), scanOpts)
		if len(res.Rejected) > 0 {
			a.logger.Warn("ignored unparseable colour literals", "count", len(res.Rejected))
		}
	}
	findings := analyze.Limit(analyze.ScoreAgainst(res.Findings, bg), opts.limit)

	out := cmd.OutOrStdout()
	if a.settings.Format == config.FormatJSON {
		return writeJSON(out, analyzeOutput{
			Source:   source,
			Kind:     kind,
			Against:  bg.Hex(),
			Tokens:   res.Tokens,
			Samples:  res.Samples,
			Rejected: res.Rejected,
			Colours:  len(res.Findings),
			Findings: findings,
		})
	}

	if kind == "image" {
		fmt.Fprintf(out, "%d dominant colours from %d sampled pixels, rated against %s\n\n",
			len(res.Findings), res.Samples, bg.Hex())
	} else {
		fmt.Fprintf(out, "%d colours in %d literals (%d rejected), rated against %s\n\n",
			len(res.Findings), res.Tokens, len(res.Rejected), bg.Hex())
	}
	if len(findings) == 0 {
		return nil
	}

	st := a.styler(out)
	table := NewTable("", "Colour", "Uses", "Share", "Ratio", "Rating", "Properties")
	table.AlignRight(2)
	table.AlignRight(3)
	table.AlignRight(4)
	table.SetColumnMaxWidth(6, 48)
	for _, f := range findings {
		share := ""
		if f.Share > 0 {
			share = fmt.Sprintf("%.1f%%", f.Share*100)
		}
		table.AddRow(
			st.swatch(f.Colour),
			f.Hex,
			fmt.Sprint(f.Count),
			share,
			formatRatio(f.Ratio),
			string(f.Rating),
			strings.Join(f.Properties, ", "),
		)
	}
	fmt.Fprint(out, table.Render())
	if len(findings) < len(res.Findings) {
		fmt.Fprintf(out, "%s\n", st.muted.Sprintf("... %d more (use --limit 0 to show all)", len(res.Findings)-len(findings)))
	}
	return nil
}
