package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// FromEnv builds a layer from HUECHECK_* variables. NO_COLOR is honoured
// as an alias for HUECHECK_NO_COLOUR.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := parseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}
	setFloat := func(target **float64, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := parseFloat(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}

	setString(&cfg.Foreground, "HUECHECK_FOREGROUND")
	setString(&cfg.Background, "HUECHECK_BACKGROUND")
	setString(&cfg.Backdrop, "HUECHECK_BACKDROP")
	setFloat(&cfg.FontSize, "HUECHECK_FONT_SIZE")
	setBool(&cfg.Bold, "HUECHECK_BOLD")
	setString(&cfg.Format, "HUECHECK_FORMAT")
	setFloat(&cfg.Step, "HUECHECK_STEP")
	if strings.TrimSpace(getenv("NO_COLOR")) != "" {
		noColour := true
		cfg.NoColour = &noColour
	}
	setBool(&cfg.NoColour, "HUECHECK_NO_COLOUR")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}

// ReadDotEnv reads KEY=VALUE pairs from path. A missing file is not an
// error.
func ReadDotEnv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return values, nil
}

// Overlay returns a getenv that prefers the process environment and falls
// back to dotenv values.
func Overlay(dotenv map[string]string, getenv func(string) string) func(string) string {
	return func(key string) string {
		if getenv != nil {
			if v := getenv(key); v != "" {
				return v
			}
		}
		return dotenv[key]
	}
}
