package colour

import (
	"math"
	"testing"
)

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSV
	}{
		{name: "black", rgb: RGB{0, 0, 0}, want: HSV{0, 0, 0}},
		{name: "white", rgb: RGB{255, 255, 255}, want: HSV{0, 0, 100}},
		{name: "red", rgb: RGB{255, 0, 0}, want: HSV{0, 100, 100}},
		{name: "green", rgb: RGB{0, 255, 0}, want: HSV{120, 100, 100}},
		{name: "blue", rgb: RGB{0, 0, 255}, want: HSV{240, 100, 100}},
		{name: "magenta", rgb: RGB{255, 0, 255}, want: HSV{300, 100, 100}},
		{name: "grey", rgb: RGB{128, 128, 128}, want: HSV{0, 0, 128.0 / 255 * 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSV(tt.rgb)
			if !closeTo(got.H, tt.want.H) || !closeTo(got.S, tt.want.S) || !closeTo(got.V, tt.want.V) {
				t.Errorf("RGBToHSV(%v) = %+v, want %+v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSL
	}{
		{name: "black", rgb: RGB{0, 0, 0}, want: HSL{0, 0, 0}},
		{name: "white", rgb: RGB{255, 255, 255}, want: HSL{0, 0, 100}},
		{name: "red", rgb: RGB{255, 0, 0}, want: HSL{0, 100, 50}},
		{name: "cyan", rgb: RGB{0, 255, 255}, want: HSL{180, 100, 50}},
		{name: "navy", rgb: RGB{0, 0, 128}, want: HSL{240, 100, 128.0 / 255 * 50}},
		{name: "near red wraps hue", rgb: RGB{255, 0, 1}, want: HSL{360 - 60.0/255, 100, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSL(tt.rgb)
			if !closeTo(got.H, tt.want.H) || !closeTo(got.S, tt.want.S) || !closeTo(got.L, tt.want.L) {
				t.Errorf("RGBToHSL(%v) = %+v, want %+v", tt.rgb, got, tt.want)
			}
			if got.H < 0 || got.H >= 360 {
				t.Errorf("hue %v outside [0, 360)", got.H)
			}
		})
	}
}

func TestHSVToRGBHueWraps(t *testing.T) {
	tests := []struct {
		hsv  HSV
		want RGB
	}{
		{HSV{360, 100, 100}, RGB{255, 0, 0}},
		{HSV{-120, 100, 100}, RGB{0, 0, 255}},
		{HSV{480, 100, 100}, RGB{0, 255, 0}},
		{HSV{60, 150, -5}, RGB{0, 0, 0}},
	}
	for _, tt := range tests {
		if got := HSVToRGB(tt.hsv); got != tt.want {
			t.Errorf("HSVToRGB(%+v) = %v, want %v", tt.hsv, got, tt.want)
		}
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		hsl  HSL
		want RGB
	}{
		{HSL{0, 0, 50}, RGB{128, 128, 128}},
		{HSL{0, 100, 50}, RGB{255, 0, 0}},
		{HSL{210, 50, 40}, RGB{51, 102, 153}},
		{HSL{720, 100, 50}, RGB{255, 0, 0}},
		{HSL{0, 0, 100}, RGB{255, 255, 255}},
	}
	for _, tt := range tests {
		if got := HSLToRGB(tt.hsl); got != tt.want {
			t.Errorf("HSLToRGB(%+v) = %v, want %v", tt.hsl, got, tt.want)
		}
	}
}

// TestRoundTripAllColours checks every 24-bit colour survives RGB->HSV->RGB
// and RGB->HSL->RGB unchanged. -short samples every 7th value per channel.
func TestRoundTripAllColours(t *testing.T) {
	stride := 1
	if testing.Short() {
		stride = 7
	}

	for r := 0; r < 256; r += stride {
		for g := 0; g < 256; g += stride {
			for b := 0; b < 256; b += stride {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				if got := HSVToRGB(RGBToHSV(c)); got != c {
					t.Fatalf("HSV round trip of %v = %v", c, got)
				}
				if got := HSLToRGB(RGBToHSL(c)); got != c {
					t.Fatalf("HSL round trip of %v = %v", c, got)
				}
			}
		}
	}
}

func TestAchromaticHueIsZero(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := RGB{uint8(v), uint8(v), uint8(v)}
		if h := RGBToHSV(c).H; h != 0 {
			t.Fatalf("RGBToHSV(%v).H = %v, want 0", c, h)
		}
		if hsl := RGBToHSL(c); hsl.H != 0 || hsl.S != 0 {
			t.Fatalf("RGBToHSL(%v) = %+v, want hue and saturation 0", c, hsl)
		}
	}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
