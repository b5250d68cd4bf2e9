package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/lodestone-studio/lodestone/internal/routes"
	lodestoneerrors "github.com/lodestone-studio/lodestone/pkg/errors"
)

// EnvPrefix prefixes every environment variable, e.g. LODESTONE_API_BASE_URL.
const EnvPrefix = "LODESTONE"

// DefaultEnvFile is read when present.
const DefaultEnvFile = ".env"

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(KeyEnvFile, DefaultEnvFile)
	v.SetDefault(KeyAPIBaseURL, d.API.BaseURL)
	v.SetDefault(KeyAPITimeout, d.API.Timeout)
	v.SetDefault(KeyThemeTokenSet, d.Theme.TokenSet)
	v.SetDefault(KeyThemeTokenFile, d.Theme.TokenFile)
	v.SetDefault(KeyThemeMode, d.Theme.Mode)
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogFile, d.Log.File)
	v.SetDefault(KeyLogHumanReadable, d.Log.HumanReadable)
	v.SetDefault(KeyStartPath, d.StartPath)
}

// Load reads the configuration through v. Flags should already be bound to
// v; a nil v uses a fresh instance.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := loadEnvFile(v.GetString(KeyEnvFile)); err != nil {
		return nil, err
	}

	if path := strings.TrimSpace(v.GetString(KeyConfigFile)); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, lodestoneerrors.NewParseError(path, 0, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, lodestoneerrors.NewParseError(v.ConfigFileUsed(), 0, fmt.Errorf("decode configuration: %w", err))
	}

	cfg.StartPath = routes.Normalize(cfg.StartPath)
	cfg.Theme.TokenSet = strings.ToLower(strings.TrimSpace(cfg.Theme.TokenSet))
	cfg.Theme.Mode = strings.ToLower(strings.TrimSpace(cfg.Theme.Mode))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadEnvFile exports the variables of path that are not already set. A
// missing file is not an error.
func loadEnvFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return lodestoneerrors.NewParseError(path, 0, err)
	}
	return nil
}
