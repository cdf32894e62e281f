package config

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/huecheck/internal/colour"
)

const (
	maxFontSize = 512
	maxStep     = 25
)

// Validate checks that every resolved value is usable.
func Validate(s Settings) error {
	var errs []error
	for _, field := range []struct {
		name  string
		value string
	}{
		{"foreground", s.Foreground},
		{"background", s.Background},
	} {
		if _, err := colour.Parse(field.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field.name, err))
		}
	}
	if _, err := Backdrop(s); err != nil {
		errs = append(errs, err)
	}
	if s.FontSize <= 0 || s.FontSize > maxFontSize {
		errs = append(errs, fmt.Errorf("font_size must be in (0, %d], got %g", maxFontSize, s.FontSize))
	}
	if s.Step <= 0 || s.Step > maxStep {
		errs = append(errs, fmt.Errorf("step must be in (0, %d], got %g", maxStep, s.Step))
	}
	switch s.Format {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("invalid format: %s", s.Format))
	}
	return errors.Join(errs...)
}

// Backdrop parses the backdrop colour, which must be opaque.
func Backdrop(s Settings) (colour.RGB, error) {
	c, err := colour.Parse(s.Backdrop)
	if err != nil {
		return colour.RGB{}, fmt.Errorf("backdrop: %w", err)
	}
	if !c.IsOpaque() {
		return colour.RGB{}, fmt.Errorf("backdrop must be opaque, got %s", s.Backdrop)
	}
	return c.Opaque(), nil
}
