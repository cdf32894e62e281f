package analyze

import (
	"fmt"
	"image"

	"github.com/jmylchreest/huecheck/internal/colour"
)

// ScanImage finds the k dominant colours of img. Each cluster becomes a
// finding whose Count is the number of sampled pixels it covers.
func ScanImage(img image.Image, k int, opts Options) (Result, error) {
	clusterOpts := colour.DefaultClusterOptions()
	clusterOpts.Backdrop = opts.Backdrop
	clusters, err := colour.DominantColours(img, k, clusterOpts)
	if err != nil {
		return Result{}, fmt.Errorf("failed to sample image: %w", err)
	}

	res := Result{Findings: make([]Finding, 0, len(clusters))}
	for _, c := range clusters {
		res.Samples += c.Pixels
		res.Findings = append(res.Findings, Finding{
			Hex:    c.Colour.Hex(),
			Colour: c.Colour,
			Count:  c.Pixels,
			Share:  c.Weight,
		})
	}
	if opts.Logger != nil {
		opts.Logger.Debug("image sampled", "samples", res.Samples, "colours", len(res.Findings))
	}
	return res, nil
}
