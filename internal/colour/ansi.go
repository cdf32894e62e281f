package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for 24-bit terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Swatch returns a solid block of the given width painted in c.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return ansiBackground(c) + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithText paints text centred on c. The text colour is whichever of
// black or white reads better; text longer than width is truncated.
func SwatchWithText(c RGB, text string, width int) string {
	return SwatchPair(ReadableText(c), c, text, width)
}

// SwatchPair paints text in fg on bg, centred in a block of the given width.
func SwatchPair(fg, bg RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	display := text
	if len(display) > width {
		display = display[:width]
	} else if len(display) < width {
		padding := (width - len(display)) / 2
		display = strings.Repeat(" ", padding) + display + strings.Repeat(" ", width-len(display)-padding)
	}

	return ansiBackground(bg) + ansiForeground(fg) + display + ansiReset
}

func ansiBackground(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func ansiForeground(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}
