// Package config resolves huecheck settings from defaults, a config file,
// a .env file, the environment and command-line flags, in that order.
package config

// Config is one settings layer. Nil fields leave the value from earlier
// layers untouched.
type Config struct {
	Foreground *string  `yaml:"foreground" toml:"foreground" json:"foreground"`
	Background *string  `yaml:"background" toml:"background" json:"background"`
	Backdrop   *string  `yaml:"backdrop" toml:"backdrop" json:"backdrop"`
	FontSize   *float64 `yaml:"font_size" toml:"font_size" json:"font_size"`
	Bold       *bool    `yaml:"bold" toml:"bold" json:"bold"`
	Format     *string  `yaml:"format" toml:"format" json:"format"`
	Step       *float64 `yaml:"step" toml:"step" json:"step"`
	NoColour   *bool    `yaml:"no_colour" toml:"no_colour" json:"no_colour"`
}

// Settings is the fully resolved configuration.
type Settings struct {
	Foreground string
	Background string
	Backdrop   string
	FontSize   float64
	Bold       bool
	Format     string
	Step       float64
	NoColour   bool
}

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Foreground: "#1e293b",
		Background: "#ffffff",
		Backdrop:   "#ffffff",
		FontSize:   16,
		Format:     FormatText,
		Step:       1,
	}
}
