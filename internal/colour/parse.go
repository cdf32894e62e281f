package colour

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrInvalidFormat reports text that matches no recognised colour grammar.
	ErrInvalidFormat = errors.New("invalid colour format")

	// ErrOutOfRange reports a well-formed component outside its valid domain.
	ErrOutOfRange = errors.New("colour component out of range")

	// ErrIncomplete reports a valid prefix of a colour literal where a complete
	// colour was required. It wraps ErrInvalidFormat.
	ErrIncomplete = fmt.Errorf("%w: incomplete input", ErrInvalidFormat)
)

// InputKind distinguishes a fully parsed colour from a partially typed one.
type InputKind int

const (
	// InputColour is a complete, parsed colour.
	InputColour InputKind = iota
	// InputPartial is a valid prefix of a colour literal (e.g. "#1a") that
	// must not be converted.
	InputPartial
)

// String returns the kind name.
func (k InputKind) String() string {
	switch k {
	case InputColour:
		return "colour"
	case InputPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// Input is the result of parsing interactive text.
type Input struct {
	Kind InputKind

	// Text is the trimmed input.
	Text string

	// Colour is only meaningful when Kind is InputColour.
	Colour RGBA
}

var (
	numberPattern       = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)$`)
	integerPattern      = regexp.MustCompile(`^[+-]?\d+$`)
	partialFuncPattern  = regexp.MustCompile(`^(?:rgba?|hsla?)\s*\([0-9.,%+\-\sdeg]*$`)
	functionNamePattern = regexp.MustCompile(`^(rgba?|hsla?)\s*\(`)
)

// Parse parses a complete colour literal. Partial input is rejected with
// ErrIncomplete.
func Parse(text string) (RGBA, error) {
	in, err := ParseInput(text)
	if err != nil {
		return RGBA{}, err
	}
	if in.Kind == InputPartial {
		return RGBA{}, fmt.Errorf("%q: %w", in.Text, ErrIncomplete)
	}
	return in.Colour, nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(text string) RGBA {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseInput parses hex (#RGB, #RGBA, #RRGGBB, #RRGGBBAA), rgb()/rgba() and
// hsl()/hsla() literals. A valid prefix of a hex or functional literal is
// reported as InputPartial rather than an error. Errors wrap ErrInvalidFormat
// or ErrOutOfRange and never carry a partial result.
func ParseInput(text string) (Input, error) {
	s := strings.TrimSpace(text)
	in := Input{Text: s}
	if s == "" {
		return in, fmt.Errorf("empty input: %w", ErrInvalidFormat)
	}

	if s[0] == '#' {
		return parseHexInput(in)
	}

	lower := strings.ToLower(s)
	if !strings.HasSuffix(lower, ")") {
		if partialFuncPattern.MatchString(lower) {
			in.Kind = InputPartial
			return in, nil
		}
		return in, fmt.Errorf("%q: %w", s, ErrInvalidFormat)
	}

	c, err := parseFunction(lower)
	if err != nil {
		return in, fmt.Errorf("%q: %w", s, err)
	}
	in.Kind = InputColour
	in.Colour = c
	return in, nil
}

// NormaliseInput applies the interactive auto-prefix: bare hex digits gain a
// leading '#'. Other text is returned trimmed and unchanged.
func NormaliseInput(text string) string {
	s := strings.TrimSpace(text)
	if s == "" || s[0] == '#' {
		return s
	}
	if len(s) <= 8 && isHex(s) {
		return "#" + strings.ToLower(s)
	}
	return s
}

func parseHexInput(in Input) (Input, error) {
	digits := in.Text[1:]
	if !isHex(digits) {
		return in, fmt.Errorf("%q: %w", in.Text, ErrInvalidFormat)
	}

	switch len(digits) {
	case 3, 4, 6, 8:
		in.Kind = InputColour
		in.Colour = decodeHex(strings.ToLower(digits))
		return in, nil
	case 0, 1, 2, 5, 7:
		in.Kind = InputPartial
		return in, nil
	default:
		return in, fmt.Errorf("%q: too many hex digits: %w", in.Text, ErrInvalidFormat)
	}
}

// decodeHex expects 3, 4, 6 or 8 validated lowercase hex digits.
func decodeHex(digits string) RGBA {
	if len(digits) <= 4 {
		var b strings.Builder
		for i := 0; i < len(digits); i++ {
			b.WriteByte(digits[i])
			b.WriteByte(digits[i])
		}
		digits = b.String()
	}

	c := RGBA{
		R: hexByte(digits[0:2]),
		G: hexByte(digits[2:4]),
		B: hexByte(digits[4:6]),
		A: 1,
	}
	if len(digits) == 8 {
		c.A = float64(hexByte(digits[6:8])) / 255
	}
	return c
}

// hexByte converts a two-character hex string to a byte.
func hexByte(s string) uint8 {
	v, _ := strconv.ParseUint(s, 16, 8) //nolint:errcheck // validated by isHex
	return uint8(v)
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

// parseFunction handles lowercase rgb(), rgba(), hsl() and hsla() literals.
func parseFunction(s string) (RGBA, error) {
	m := functionNamePattern.FindStringSubmatch(s)
	if m == nil {
		return RGBA{}, ErrInvalidFormat
	}
	name := m[1]
	body := s[len(m[0]) : len(s)-1]
	args := strings.Split(body, ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
		if args[i] == "" {
			return RGBA{}, fmt.Errorf("empty argument %d: %w", i+1, ErrInvalidFormat)
		}
	}

	want := 3
	if strings.HasSuffix(name, "a") {
		want = 4
	}
	if len(args) != want {
		return RGBA{}, fmt.Errorf("%s() takes %d arguments, got %d: %w", name, want, len(args), ErrInvalidFormat)
	}

	alpha := 1.0
	if want == 4 {
		a, err := parseAlpha(args[3])
		if err != nil {
			return RGBA{}, err
		}
		alpha = a
	}

	if strings.HasPrefix(name, "rgb") {
		var ch [3]uint8
		for i := range ch {
			v, err := parseChannel(args[i])
			if err != nil {
				return RGBA{}, err
			}
			ch[i] = v
		}
		return RGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
	}

	h, err := parseHue(args[0])
	if err != nil {
		return RGBA{}, err
	}
	sat, err := parsePercent(args[1])
	if err != nil {
		return RGBA{}, err
	}
	light, err := parsePercent(args[2])
	if err != nil {
		return RGBA{}, err
	}
	return HSLToRGB(HSL{H: h, S: sat, L: light}).WithAlpha(alpha), nil
}

// parseChannel accepts an integer 0-255 or a percentage 0%-100%.
func parseChannel(arg string) (uint8, error) {
	if strings.HasSuffix(arg, "%") {
		p, err := parsePercent(arg)
		if err != nil {
			return 0, err
		}
		return roundChannel(p * 255 / 100), nil
	}
	if !integerPattern.MatchString(arg) {
		return 0, fmt.Errorf("channel %q: %w", arg, ErrInvalidFormat)
	}
	v, err := strconv.Atoi(arg)
	if err != nil || v < 0 || v > 255 {
		return 0, fmt.Errorf("channel %q not in 0-255: %w", arg, ErrOutOfRange)
	}
	return uint8(v), nil
}

// parseAlpha accepts a number 0-1 or a percentage 0%-100%.
func parseAlpha(arg string) (float64, error) {
	if strings.HasSuffix(arg, "%") {
		p, err := parsePercent(arg)
		if err != nil {
			return 0, err
		}
		return p / 100, nil
	}
	v, err := parseNumber(arg)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("alpha %q not in 0-1: %w", arg, ErrOutOfRange)
	}
	return v, nil
}

// parseHue accepts degrees with an optional "deg" suffix, wrapped modulo 360.
func parseHue(arg string) (float64, error) {
	v, err := parseNumber(strings.TrimSuffix(arg, "deg"))
	if err != nil {
		return 0, err
	}
	return normaliseHue(v), nil
}

// parsePercent parses "p%" into p, which must lie in [0, 100].
func parsePercent(arg string) (float64, error) {
	num, ok := strings.CutSuffix(arg, "%")
	if !ok {
		return 0, fmt.Errorf("%q is not a percentage: %w", arg, ErrInvalidFormat)
	}
	v, err := parseNumber(strings.TrimSpace(num))
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("percentage %q not in 0-100: %w", arg, ErrOutOfRange)
	}
	return v, nil
}

// parseNumber accepts plain decimal notation only (no exponents, hex floats,
// infinities or NaN).
func parseNumber(arg string) (float64, error) {
	if !numberPattern.MatchString(arg) {
		return 0, fmt.Errorf("%q is not a number: %w", arg, ErrInvalidFormat)
	}
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", arg, ErrInvalidFormat)
	}
	return v, nil
}
