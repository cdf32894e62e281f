package colour

import "math"

// RGBToHSV converts an opaque colour to HSV.
// Achromatic colours report a hue of 0.
func RGBToHSV(c RGB) HSV {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	hsv := HSV{V: maxVal * 100}
	if maxVal > 0 {
		hsv.S = delta / maxVal * 100
	}
	hsv.H = hueFromChannels(r, g, b, maxVal, delta)
	return hsv
}

// HSVToRGB converts HSV to an opaque colour. Hue wraps modulo 360;
// saturation and value are clamped to [0, 100].
func HSVToRGB(hsv HSV) RGB {
	h := normaliseHue(hsv.H) / 60
	s := clamp(hsv.S, 0, 100) / 100
	v := clamp(hsv.V, 0, 100) / 100

	sector := math.Floor(h)
	f := h - sector
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(sector) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return RGB{R: roundChannel(r * 255), G: roundChannel(g * 255), B: roundChannel(b * 255)}
}

// RGBToHSL converts an opaque colour to HSL.
// Achromatic colours report hue and saturation of 0.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2
	hsl := HSL{L: l * 100}
	if delta == 0 {
		return hsl
	}

	if l < 0.5 {
		hsl.S = delta / (maxVal + minVal) * 100
	} else {
		hsl.S = delta / (2 - maxVal - minVal) * 100
	}
	hsl.H = hueFromChannels(r, g, b, maxVal, delta)
	return hsl
}

// HSLToRGB converts HSL to an opaque colour. Hue wraps modulo 360;
// saturation and lightness are clamped to [0, 100].
func HSLToRGB(hsl HSL) RGB {
	h := normaliseHue(hsl.H)
	s := clamp(hsl.S, 0, 100) / 100
	l := clamp(hsl.L, 0, 100) / 100

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{
		R: roundChannel((r + m) * 255),
		G: roundChannel((g + m) * 255),
		B: roundChannel((b + m) * 255),
	}
}

// hueFromChannels derives the hue in degrees from normalised channels using
// the 60 degree sector formula.
func hueFromChannels(r, g, b, maxVal, delta float64) float64 {
	if delta == 0 {
		return 0
	}

	var h float64
	switch maxVal {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	return normaliseHue(h * 60)
}
