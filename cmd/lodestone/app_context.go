package main

import (
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/lodestone-studio/lodestone/internal/api"
	"github.com/lodestone-studio/lodestone/internal/config"
	"github.com/lodestone-studio/lodestone/internal/logger"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

// AppContext bundles what commands build from the configuration.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger
	Theme  components.Theme

	logFile io.Closer
}

// newAppContext loads the configuration bound to v. Logs go to the
// configured file; without one, interactive commands discard them and the
// others write to stderr.
func newAppContext(v *viper.Viper, interactive bool, stderr io.Writer) (*AppContext, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	theme, err := cfg.Theme.Build()
	if err != nil {
		return nil, fmt.Errorf("build theme: %w", err)
	}

	app := &AppContext{Config: cfg, Theme: theme}

	writer := stderr
	if cfg.Log.File != "" || interactive {
		file, err := logger.OpenFile(cfg.Log.File)
		if err != nil {
			return nil, err
		}
		app.logFile = file
		writer = file
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        writer,
	})
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Logger = log
	return app, nil
}

// Client creates the back-end client from the API settings.
func (a *AppContext) Client() (*api.Client, error) {
	return api.New(api.Options{
		BaseURL: a.Config.API.BaseURL,
		Timeout: a.Config.API.Timeout,
		Logger:  a.Logger,
	})
}

// Close releases the log file.
func (a *AppContext) Close() {
	if a == nil || a.logFile == nil {
		return
	}
	_ = a.logFile.Close()
	a.logFile = nil
}
