package colour

// Composite flattens c onto an opaque backdrop using straight alpha
// interpolation per channel. Opaque colours pass through unchanged.
func Composite(c RGBA, backdrop RGB) RGB {
	if c.IsOpaque() {
		return c.Opaque()
	}

	a := clamp(c.A, 0, 1)
	blend := func(fg, bg uint8) uint8 {
		return roundChannel(a*float64(fg) + (1-a)*float64(bg))
	}
	return RGB{
		R: blend(c.R, backdrop.R),
		G: blend(c.G, backdrop.G),
		B: blend(c.B, backdrop.B),
	}
}

// BackdropOrWhite returns *b, or White when no backdrop is given.
func BackdropOrWhite(b *RGB) RGB {
	if b == nil {
		return White
	}
	return *b
}

// CompositeOnWhite flattens c onto the default white backdrop.
func CompositeOnWhite(c RGBA) RGB {
	return Composite(c, White)
}
