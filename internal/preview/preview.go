// Package preview renders sample text in a colour pair to a PNG image.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/huecheck/internal/colour"
)

const (
	DefaultFontSizePx = 16
	DefaultPadding    = 24
	maxScale          = 8
)

// DefaultLines is the sample text used when Options.Lines is empty.
var DefaultLines = []string{
	"The quick brown fox jumps over the lazy dog.",
	"0123456789 !?&@ ABCDEFGHIJKLM nopqrstuvwxyz",
}

// ErrInvalidOptions is returned for out-of-range sizes.
var ErrInvalidOptions = errors.New("invalid preview options")

// Options configures Render.
type Options struct {
	FontSizePx float64
	Bold       bool
	Lines      []string
	Padding    int

	// Scale enlarges the finished image with nearest-neighbour sampling.
	Scale int
}

// DefaultOptions returns 16px regular text with the default sample lines.
func DefaultOptions() Options {
	return Options{
		FontSizePx: DefaultFontSizePx,
		Lines:      DefaultLines,
		Padding:    DefaultPadding,
		Scale:      1,
	}
}

// Render draws opts.Lines in fg on a bg canvas sized to fit the text.
func Render(fg, bg colour.RGB, opts Options) (*image.RGBA, error) {
	if opts.FontSizePx <= 0 || opts.FontSizePx > 512 {
		return nil, fmt.Errorf("%w: font size %gpx", ErrInvalidOptions, opts.FontSizePx)
	}
	if opts.Scale == 0 {
		opts.Scale = 1
	}
	if opts.Scale < 1 || opts.Scale > maxScale {
		return nil, fmt.Errorf("%w: scale %d not in 1..%d", ErrInvalidOptions, opts.Scale, maxScale)
	}
	if opts.Padding < 0 {
		opts.Padding = 0
	}
	lines := opts.Lines
	if len(lines) == 0 {
		lines = DefaultLines
	}

	face, err := newFace(opts.FontSizePx, opts.Bold)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = face.Close()
	}()

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	textWidth := 0
	for _, line := range lines {
		textWidth = max(textWidth, font.MeasureString(face, line).Ceil())
	}

	width := textWidth + 2*opts.Padding
	height := lineHeight*len(lines) + 2*opts.Padding
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(fg),
		Face: face,
	}
	for i, line := range lines {
		baseline := opts.Padding + i*lineHeight + metrics.Ascent.Ceil()
		drawer.Dot = fixed.P(opts.Padding, baseline)
		drawer.DrawString(line)
	}

	if opts.Scale == 1 {
		return canvas, nil
	}
	scaled := image.NewRGBA(image.Rect(0, 0, width*opts.Scale, height*opts.Scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	return scaled, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func newFace(sizePx float64, bold bool) (font.Face, error) {
	ttf := goregular.TTF
	if bold {
		ttf = gobold.TTF
	}
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    math.Round(sizePx*100) / 100,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}
