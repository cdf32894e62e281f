// Package colour implements the colour model and WCAG compliance engine:
// parsing colour literals, converting between RGB, HSV and HSL, compositing
// translucent colours onto an opaque backdrop, measuring contrast and
// searching for compliant colour variants.
//
// Every function in this package is pure and safe for concurrent use.
package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is an opaque colour with 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBA is a colour with 8-bit channels and a straight (non-premultiplied)
// alpha in the range [0, 1].
type RGBA struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

// HSV is hue in [0, 360), saturation and value in [0, 100].
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// HSL is hue in [0, 360), saturation and lightness in [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

var (
	// White is the default compositing backdrop.
	White = RGB{R: 255, G: 255, B: 255}
	// Black is pure black.
	Black = RGB{}
)

// String returns the colour in the format "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the colour as a lowercase hex string (e.g. "#1a2b3c").
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexUpper returns the colour as an uppercase hex string (e.g. "#1A2B3C").
func (c RGB) HexUpper() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HSLString returns the colour as "hsl(h, s%, l%)" with integer components.
func (c RGB) HSLString() string {
	return RGBToHSL(c).String()
}

// WithAlpha returns the colour with the given alpha attached.
func (c RGB) WithAlpha(a float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: clamp(a, 0, 1)}
}

// RGBA implements image/color.Color so an RGB can be drawn directly.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Opaque drops the alpha channel.
func (c RGBA) Opaque() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// IsOpaque reports whether the colour has full alpha.
func (c RGBA) IsOpaque() bool {
	return c.A >= 1
}

// AlphaByte returns alpha scaled to 0-255.
func (c RGBA) AlphaByte() uint8 {
	return roundChannel(clamp(c.A, 0, 1) * 255)
}

// Hex returns "#rrggbb" for opaque colours and "#rrggbbaa" otherwise.
func (c RGBA) Hex() string {
	if c.IsOpaque() {
		return c.Opaque().Hex()
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.AlphaByte())
}

// String returns "rgb(r, g, b)" for opaque colours and "rgba(r, g, b, a)" otherwise.
func (c RGBA) String() string {
	if c.IsOpaque() {
		return c.Opaque().String()
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatAlpha(c.A))
}

// String returns the colour as "hsl(h, s%, l%)" with integer components.
func (h HSL) String() string {
	hue := math.Round(h.H)
	if hue >= 360 {
		hue -= 360
	}
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", int(hue), int(math.Round(h.S)), int(math.Round(h.L)))
}

// String returns the colour as "hsv(h, s%, v%)" with one decimal of precision.
func (h HSV) String() string {
	return fmt.Sprintf("hsv(%s, %s%%, %s%%)", formatDecimal(h.H), formatDecimal(h.S), formatDecimal(h.V))
}

// formatAlpha renders alpha with at most three decimals and no trailing zeros.
func formatAlpha(a float64) string {
	return strconv.FormatFloat(math.Round(a*1000)/1000, 'f', -1, 64)
}

func formatDecimal(v float64) string {
	s := strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
