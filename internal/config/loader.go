package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var keyMap = map[string]string{
	"foreground":   "foreground",
	"fg":           "foreground",
	"background":   "background",
	"bg":           "background",
	"backdrop":     "backdrop",
	"font_size":    "font_size",
	"font_size_px": "font_size",
	"bold":         "bold",
	"format":       "format",
	"output":       "format",
	"step":         "step",
	"no_colour":    "no_colour",
	"no_color":     "no_colour",
}

// Load reads a config layer from a YAML, TOML or JSON file chosen by
// extension. An empty path yields an empty layer.
func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	for key, value := range raw {
		canonical, ok := keyMap[normalizeKey(key)]
		if !ok {
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
		switch canonical {
		case "foreground", "background", "backdrop", "format":
			str, err := expectString(value, canonical)
			if err != nil {
				return cfg, err
			}
			switch canonical {
			case "foreground":
				cfg.Foreground = &str
			case "background":
				cfg.Background = &str
			case "backdrop":
				cfg.Backdrop = &str
			default:
				cfg.Format = &str
			}
		case "font_size", "step":
			f, err := expectFloat(value, canonical)
			if err != nil {
				return cfg, err
			}
			if canonical == "font_size" {
				cfg.FontSize = &f
			} else {
				cfg.Step = &f
			}
		case "bold", "no_colour":
			b, err := expectBool(value, canonical)
			if err != nil {
				return cfg, err
			}
			if canonical == "bold" {
				cfg.Bold = &b
			} else {
				cfg.NoColour = &b
			}
		}
	}
	return cfg, nil
}

func expectString(value any, field string) (string, error) {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v), nil
	default:
		return "", fmt.Errorf("expected string for %s, got %T", field, value)
	}
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return parseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectFloat(value any, field string) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		return parseFloat(v, field)
	default:
		return 0, fmt.Errorf("expected number for %s, got %T", field, value)
	}
}

func parseBool(raw, field string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value for %s: %q", field, raw)
	}
}

func parseFloat(raw, field string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number for %s: %q", field, raw)
	}
	return f, nil
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
