package preview

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"

	"github.com/jmylchreest/huecheck/internal/colour"
)

var (
	fg = colour.RGB{R: 0x1e, G: 0x29, B: 0x3b}
	bg = colour.White
)

func rgbAt(t *testing.T, c color.Color) colour.RGB {
	t.Helper()
	r, g, b, _ := c.RGBA()
	return colour.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

func TestRender(t *testing.T) {
	opts := DefaultOptions()
	opts.FontSizePx = 32
	img, err := Render(fg, bg, opts)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	b := img.Bounds()
	if b.Dx() <= 2*opts.Padding || b.Dy() <= 2*opts.Padding {
		t.Fatalf("Render() bounds = %v, too small", b)
	}
	if got := rgbAt(t, img.At(0, 0)); got != bg {
		t.Errorf("corner pixel = %s, want %s", got.Hex(), bg.Hex())
	}

	foundFg := false
	for y := b.Min.Y; y < b.Max.Y && !foundFg; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if rgbAt(t, img.At(x, y)) == fg {
				foundFg = true
				break
			}
		}
	}
	if !foundFg {
		t.Error("no pixel drawn in the foreground colour")
	}
}

func TestRenderScaleAndBold(t *testing.T) {
	base, err := Render(fg, bg, DefaultOptions())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	opts := DefaultOptions()
	opts.Scale = 3
	scaled, err := Render(fg, bg, opts)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if scaled.Bounds().Dx() != 3*base.Bounds().Dx() || scaled.Bounds().Dy() != 3*base.Bounds().Dy() {
		t.Errorf("scaled bounds = %v, want 3x %v", scaled.Bounds(), base.Bounds())
	}

	opts = DefaultOptions()
	opts.Bold = true
	bold, err := Render(fg, bg, opts)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if bold.Bounds().Dx() < base.Bounds().Dx() {
		t.Errorf("bold width %d narrower than regular %d", bold.Bounds().Dx(), base.Bounds().Dx())
	}
}

func TestRenderInvalid(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "zero font", opts: Options{FontSizePx: 0}},
		{name: "huge font", opts: Options{FontSizePx: 1000}},
		{name: "negative scale", opts: Options{FontSizePx: 16, Scale: -1}},
		{name: "huge scale", opts: Options{FontSizePx: 16, Scale: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Render(fg, bg, tt.opts); !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("Render() error = %v, want ErrInvalidOptions", err)
			}
		})
	}
}

func TestWritePNG(t *testing.T) {
	img, err := Render(fg, bg, DefaultOptions())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG() error: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}
