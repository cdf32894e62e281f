package colour

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fill(img *image.NRGBA, c color.NRGBA, from, to int) {
	w := img.Bounds().Dx()
	for i := from; i < to; i++ {
		img.SetNRGBA(i%w, i/w, c)
	}
}

func TestDominantColoursClusters(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	fill(img, color.NRGBA{R: 255, A: 255}, 0, 8)
	fill(img, color.NRGBA{R: 245, A: 255}, 8, 12)
	fill(img, color.NRGBA{B: 255, A: 255}, 12, 16)

	got, err := DominantColours(img, 2, DefaultClusterOptions())
	if err != nil {
		t.Fatalf("DominantColours() error: %v", err)
	}
	want := []Cluster{
		{Colour: RGB{R: 252}, Pixels: 12, Weight: 0.75},
		{Colour: RGB{B: 255}, Pixels: 4, Weight: 0.25},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DominantColours() mismatch (-want +got):\n%s", diff)
	}
}

func TestDominantColoursExactAndTranslucent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{A: 128})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	got, err := DominantColours(img, 4, DefaultClusterOptions())
	if err != nil {
		t.Fatalf("DominantColours() error: %v", err)
	}
	want := []Cluster{
		{Colour: RGB{R: 127, G: 127, B: 127}, Pixels: 1, Weight: 0.5},
		{Colour: White, Pixels: 1, Weight: 0.5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DominantColours() mismatch (-want +got):\n%s", diff)
	}
}

func TestDominantColoursSampling(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	fill(img, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, 0, 100*100)

	got, err := DominantColours(img, 3, DefaultClusterOptions())
	if err != nil {
		t.Fatalf("DominantColours() error: %v", err)
	}
	if len(got) != 1 || got[0].Pixels != DefaultClusterOptions().MaxSamples || got[0].Weight != 1 {
		t.Errorf("DominantColours() = %+v, want one cluster of %d samples", got, DefaultClusterOptions().MaxSamples)
	}
}

func TestDominantColoursWeightsSumToOne(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 8), G: uint8(y * 8), B: 128, A: 255})
		}
	}

	got, err := DominantColours(img, 5, DefaultClusterOptions())
	if err != nil {
		t.Fatalf("DominantColours() error: %v", err)
	}
	if len(got) == 0 || len(got) > 5 {
		t.Fatalf("got %d clusters, want 1..5", len(got))
	}
	sum := 0.0
	for i, c := range got {
		sum += c.Weight
		if i > 0 && c.Pixels > got[i-1].Pixels {
			t.Errorf("clusters not ordered by size: %+v", got)
		}
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("weights sum to %v, want 1", sum)
	}

	again, _ := DominantColours(img, 5, DefaultClusterOptions())
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("same seed gave different clusters:\n%s", diff)
	}
}

func TestDominantColoursErrors(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		k    int
	}{
		{name: "nil image", img: nil, k: 2},
		{name: "zero k", img: image.NewNRGBA(image.Rect(0, 0, 1, 1)), k: 0},
		{name: "too many", img: image.NewNRGBA(image.Rect(0, 0, 1, 1)), k: MaxClusters + 1},
		{name: "empty image", img: image.NewNRGBA(image.Rect(0, 0, 0, 0)), k: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DominantColours(tt.img, tt.k, DefaultClusterOptions()); err == nil {
				t.Error("DominantColours() succeeded, want error")
			}
		})
	}

	_, err := DominantColours(image.NewNRGBA(image.Rect(0, 0, 0, 0)), 2, DefaultClusterOptions())
	if !errors.Is(err, ErrNoPixels) {
		t.Errorf("empty image error = %v, want ErrNoPixels", err)
	}
}
