package analyze

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/huecheck/internal/colour"
)

func TestScanImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	img.SetNRGBA(0, 0, color.NRGBA{A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{A: 255})
	img.SetNRGBA(2, 0, color.NRGBA{A: 255})
	img.SetNRGBA(3, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	res, err := ScanImage(img, 4, DefaultOptions())
	if err != nil {
		t.Fatalf("ScanImage() error: %v", err)
	}
	want := Result{
		Findings: []Finding{
			{Hex: "#000000", Colour: colour.Black, Count: 3, Share: 0.75},
			{Hex: "#ffffff", Colour: colour.White, Count: 1, Share: 0.25},
		},
		Samples: 4,
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("ScanImage() mismatch (-want +got):\n%s", diff)
	}

	scored := ScoreAgainst(res.Findings, colour.White)
	if scored[0].Rating != colour.RatingExcellent || scored[1].Rating != colour.RatingPoor {
		t.Errorf("ratings = %s, %s", scored[0].Rating, scored[1].Rating)
	}
}

func TestScanImageInvalidCount(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	if _, err := ScanImage(img, 0, DefaultOptions()); err == nil {
		t.Error("ScanImage() with k=0 succeeded")
	}
}
