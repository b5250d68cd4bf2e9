package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

func TestThemeWatcherRequiresTokenFile(t *testing.T) {
	_, err := NewThemeWatcher(Theme{TokenSet: "default"}, nil)
	require.ErrorIs(t, err, ErrNoTokenFile)
}

func TestThemeWatcherReloadsOnWrite(t *testing.T) {
	path := writeFile(t, "tokens.yaml", "animations:\n  durations:\n    fast: 150ms\n")

	w, err := NewThemeWatcher(Theme{TokenSet: "default", TokenFile: path, Mode: ModeAuto}, nil)
	require.NoError(t, err)
	w.WithDelay(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	reloaded := make(chan components.Theme, 4)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(theme components.Theme) { reloaded <- theme })
	}()

	// a broken file is skipped without stopping the watcher
	require.NoError(t, os.WriteFile(path, []byte("animations: [\n"), 0o600))
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("animations:\n  durations:\n    fast: 90ms\n"), 0o600))

	select {
	case theme := <-reloaded:
		assert.Equal(t, 90*time.Millisecond, theme.Motion.Fast)
	case <-time.After(5 * time.Second):
		t.Fatal("theme was not reloaded")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
