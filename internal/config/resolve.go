package config

import "fmt"

// Sources names the inputs Resolve layers together.
type Sources struct {
	ExplicitPath string
	StartDir     string
	XDGHome      string
	Home         string
	DotEnvPath   string
	Getenv       func(string) string

	// Flags holds values set explicitly on the command line.
	Flags Config
}

// Resolve layers defaults, the config file, .env, the environment and flags
// and validates the result. It also returns the config file used, if any.
func Resolve(src Sources) (Settings, string, error) {
	path, _, err := Find(src.StartDir, src.ExplicitPath, src.XDGHome, src.Home)
	if err != nil {
		return Settings{}, "", fmt.Errorf("locate config: %w", err)
	}
	fileCfg, err := Load(path)
	if err != nil {
		return Settings{}, path, err
	}

	getenv := src.Getenv
	if src.DotEnvPath != "" {
		dotenv, err := ReadDotEnv(src.DotEnvPath)
		if err != nil {
			return Settings{}, path, err
		}
		getenv = Overlay(dotenv, getenv)
	}
	envCfg, err := FromEnv(getenv)
	if err != nil {
		return Settings{}, path, fmt.Errorf("environment: %w", err)
	}

	settings := Merge(Defaults(), fileCfg, envCfg, src.Flags)
	if err := Validate(settings); err != nil {
		return settings, path, err
	}
	return settings, path, nil
}
