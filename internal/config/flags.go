package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps the persistent flag names to configuration keys.
var flagKeys = map[string]string{
	"config":     KeyConfigFile,
	"env-file":   KeyEnvFile,
	"base-url":   KeyAPIBaseURL,
	"timeout":    KeyAPITimeout,
	"token-set":  KeyThemeTokenSet,
	"token-file": KeyThemeTokenFile,
	"mode":       KeyThemeMode,
	"log-level":  KeyLogLevel,
	"log-file":   KeyLogFile,
	"log-human":  KeyLogHumanReadable,
	"start":      KeyStartPath,
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.String("config", "", "YAML configuration file")
	fs.String("env-file", DefaultEnvFile, "dotenv file read when present")
	fs.String("base-url", d.API.BaseURL, "back-end URL the home page is fetched from")
	fs.Duration("timeout", d.API.Timeout, "HTTP timeout for the home fetch")
	fs.String("token-set", d.Theme.TokenSet, "design token set (default or utility)")
	fs.String("token-file", "", "YAML file overlaid on the token set")
	fs.String("mode", d.Theme.Mode, "palette mode (auto, light or dark)")
	fs.String("log-level", d.Log.Level, "log level (trace, debug, info, warn, error)")
	fs.String("log-file", "", "write logs to this file")
	fs.Bool("log-human", d.Log.HumanReadable, "human readable log output")
	fs.String("start", d.StartPath, "route the browser opens first")
}

// BindFlags binds every registered flag present in fs to its key on v.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}
