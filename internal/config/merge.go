package config

import "strings"

// Merge applies layers over base in order; later layers win.
func Merge(base Settings, layers ...Config) Settings {
	out := base
	for _, layer := range layers {
		out.Foreground = ResolveString(out.Foreground, layer.Foreground)
		out.Background = ResolveString(out.Background, layer.Background)
		out.Backdrop = ResolveString(out.Backdrop, layer.Backdrop)
		out.FontSize = ResolveFloat(out.FontSize, layer.FontSize)
		out.Bold = ResolveBool(out.Bold, layer.Bold)
		out.Format = ResolveString(out.Format, layer.Format)
		out.Step = ResolveFloat(out.Step, layer.Step)
		out.NoColour = ResolveBool(out.NoColour, layer.NoColour)
	}
	out.Format = strings.ToLower(strings.TrimSpace(out.Format))
	if out.Format == "" {
		out.Format = FormatText
	}
	return out
}

func ResolveString(def string, values ...*string) string {
	result := def
	for _, v := range values {
		if v != nil {
			result = strings.TrimSpace(*v)
		}
	}
	return result
}

func ResolveFloat(def float64, values ...*float64) float64 {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func ResolveBool(def bool, values ...*bool) bool {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}
