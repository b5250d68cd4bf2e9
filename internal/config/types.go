// Package config loads the lodestone configuration from defaults, an optional
// .env file, LODESTONE_ environment variables, an optional YAML file and
// command line flags, in increasing order of precedence.
package config

import (
	"time"

	"github.com/lodestone-studio/lodestone/internal/api"
	"github.com/lodestone-studio/lodestone/internal/routes"
	"github.com/lodestone-studio/lodestone/internal/tokens"
)

// Config is the complete runtime configuration.
type Config struct {
	API       API    `mapstructure:"api"`
	Theme     Theme  `mapstructure:"theme"`
	Log       Log    `mapstructure:"log"`
	StartPath string `mapstructure:"start_path" validate:"required,route"`
}

// API configures the back-end the home page is fetched from.
type API struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url,http_url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// Theme selects the token set and palette mode.
type Theme struct {
	TokenSet string `mapstructure:"token_set" validate:"required,oneof=default utility"`
	// TokenFile is an optional YAML file overlaid on the token set.
	TokenFile string `mapstructure:"token_file" validate:"omitempty,file"`
	Mode      string `mapstructure:"mode" validate:"required,oneof=auto light dark"`
}

// Log configures the zerolog output.
type Log struct {
	Level         string `mapstructure:"level" validate:"required,oneof=trace debug info warn error"`
	File          string `mapstructure:"file"`
	HumanReadable bool   `mapstructure:"human_readable"`
}

// Keys of the settings, as used with viper and in YAML files.
const (
	KeyConfigFile       = "config_file"
	KeyEnvFile          = "env_file"
	KeyAPIBaseURL       = "api.base_url"
	KeyAPITimeout       = "api.timeout"
	KeyThemeTokenSet    = "theme.token_set"
	KeyThemeTokenFile   = "theme.token_file"
	KeyThemeMode        = "theme.mode"
	KeyLogLevel         = "log.level"
	KeyLogFile          = "log.file"
	KeyLogHumanReadable = "log.human_readable"
	KeyStartPath        = "start_path"
)

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		API: API{
			BaseURL: api.DefaultBaseURL,
			Timeout: api.DefaultTimeout,
		},
		Theme: Theme{
			TokenSet: tokens.SetDefault,
			Mode:     ModeAuto,
		},
		Log: Log{
			Level: "info",
		},
		StartPath: routes.Home,
	}
}

// Palette modes accepted by Theme.Mode.
const (
	ModeAuto  = "auto"
	ModeLight = "light"
	ModeDark  = "dark"
)
