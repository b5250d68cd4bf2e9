package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lodestone-studio/lodestone/internal/logger"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

// DefaultReloadDelay is how long the watcher waits for a burst of writes to
// settle before rebuilding the theme.
const DefaultReloadDelay = 150 * time.Millisecond

// ErrNoTokenFile is returned when watching a theme without a token file.
var ErrNoTokenFile = errors.New("theme has no token file to watch")

// ThemeWatcher rebuilds a theme whenever its token file changes on disk.
type ThemeWatcher struct {
	theme  Theme
	target string
	delay  time.Duration
	log    *logger.Logger
	fs     *fsnotify.Watcher
}

// NewThemeWatcher watches the directory of theme.TokenFile. Editors often
// replace files by rename, so the directory is watched rather than the file.
func NewThemeWatcher(theme Theme, log *logger.Logger) (*ThemeWatcher, error) {
	if theme.TokenFile == "" {
		return nil, ErrNoTokenFile
	}
	target, err := filepath.Abs(theme.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("resolve token file: %w", err)
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(target)); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ThemeWatcher{
		theme:  theme,
		target: target,
		delay:  DefaultReloadDelay,
		log:    log.With("component", "theme-watcher"),
		fs:     fs,
	}, nil
}

// WithDelay changes the settle delay.
func (w *ThemeWatcher) WithDelay(d time.Duration) *ThemeWatcher {
	w.delay = d
	return w
}

// Run blocks until ctx is done, calling onReload with every theme rebuilt
// after a change. A file that no longer parses is logged and skipped; the
// caller keeps its current theme. Run closes the watcher before returning.
func (w *ThemeWatcher) Run(ctx context.Context, onReload func(components.Theme)) error {
	defer w.fs.Close()

	timer := time.NewTimer(w.delay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.With("op", event.Op.String()).Debug("token file changed")
			timer.Reset(w.delay)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.Error(err, "watch token file")

		case <-timer.C:
			theme, err := w.theme.Build()
			if err != nil {
				w.log.Error(err, "token file rejected")
				continue
			}
			w.log.Info("theme reloaded")
			onReload(theme)
		}
	}
}

func (w *ThemeWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
