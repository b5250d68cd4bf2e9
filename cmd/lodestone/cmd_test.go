package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodestone-studio/lodestone/internal/api"
	"github.com/lodestone-studio/lodestone/internal/config"
	"github.com/lodestone-studio/lodestone/internal/logger"
	"github.com/lodestone-studio/lodestone/internal/pages"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

// execute runs the CLI with args and an empty env file.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append(args, "--env-file", ""))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-03"

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Lodestone 1.2.3")
	assert.Contains(t, out, "abcdef1")
	assert.Contains(t, out, "2026-10-03")
}

func TestTokensResolvesKeysPerSet(t *testing.T) {
	out, _, err := execute(t, "tokens", "spacing.md")
	require.NoError(t, err)
	assert.Equal(t, "spacing.md=1rem\n", out)

	out, _, err = execute(t, "tokens", "--token-set", "utility", "spacing.md")
	require.NoError(t, err)
	assert.Equal(t, "spacing.md=16px\n", out)
}

func TestTokensMissingKeyFails(t *testing.T) {
	out, _, err := execute(t, "tokens", "spacing.md", "spacing.huge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spacing.huge")
	assert.Contains(t, out, "spacing.md=1rem")
}

func TestTokensPrintsAllTables(t *testing.T) {
	out, _, err := execute(t, "tokens")
	require.NoError(t, err)
	assert.Contains(t, out, "[spacing]")
	assert.Contains(t, out, "spacing.md = 1rem")

	out, _, err = execute(t, "tokens", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "spacing:")
	assert.Contains(t, out, "md: 1rem")

	_, _, err = execute(t, "tokens", "-o", "xml")
	require.Error(t, err)
}

func TestTokensDiff(t *testing.T) {
	out, _, err := execute(t, "tokens", "--token-set", "utility", "--diff", "default")
	require.NoError(t, err)
	assert.Contains(t, out, "--- default\n+++ utility\n")
	assert.Contains(t, out, "-spacing.md = 1rem\n")
	assert.Contains(t, out, "+spacing.md = 16px\n")

	out, _, err = execute(t, "tokens", "--diff", "default")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, _, err = execute(t, "tokens", "--diff", "neon")
	require.Error(t, err)
}

func TestRenderHomeFetchesOnce(t *testing.T) {
	calls := make(chan struct{}, 4)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls <- struct{}{}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Home","introText":"Welcome","projects":[{"id":1,"title":"A","description":"d"}]}`))
	}))
	t.Cleanup(server.Close)

	out, _, err := execute(t, "render", "/", "--width", "100", "--base-url", server.URL)
	require.NoError(t, err)
	assert.Len(t, calls, 1)
	assert.Contains(t, out, "Welcome")
	assert.Contains(t, out, "Explore Projects")
	assert.Contains(t, out, "LODESTONE")
}

func TestRenderFetchFailureLogsOneError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	out, logs, err := execute(t, "render", "--width", "100", "--base-url", server.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Explore Projects")
	assert.Contains(t, logs, "error fetching home data")
}

func TestRenderStaticPage(t *testing.T) {
	out, _, err := execute(t, "render", "/about", "--width", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "About")
	assert.Contains(t, out, "Home / About")
}

func TestRenderUnknownRoute(t *testing.T) {
	_, _, err := execute(t, "render", "/shop")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown route")
}

func TestInvalidConfigurationFails(t *testing.T) {
	_, _, err := execute(t, "render", "/about", "--mode", "sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme.mode")
}

func TestGalleryRendersEverySection(t *testing.T) {
	out, _, err := execute(t, "gallery", "--width", "100")
	require.NoError(t, err)
	for _, want := range []string{"Atoms", "Molecules", "Organisms", "Checkbox", "[x] Send me news", "DropdownMenu (open)", "Wayfinding", "LODESTONE"} {
		assert.Contains(t, out, want)
	}
}

func TestGallerySingleSection(t *testing.T) {
	out, _, err := execute(t, "gallery", "molecules", "--width", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "ShopCTAButton")
	assert.NotContains(t, out, "HomeHero")

	_, _, err = execute(t, "gallery", "pages")
	require.Error(t, err)
}

func TestWatchNeedsTokenFile(t *testing.T) {
	_, _, err := execute(t, "--watch")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNoTokenFile)
}

// waitingFetcher blocks until its context ends.
type waitingFetcher struct{}

func (waitingFetcher) FetchHome(ctx context.Context) (api.HomeData, error) {
	<-ctx.Done()
	return api.HomeData{}, ctx.Err()
}

func TestBrowseCancelAbandonsFetch(t *testing.T) {
	var logs bytes.Buffer
	log, err := logger.New(logger.Options{Writer: &logs})
	require.NoError(t, err)
	app := &AppContext{
		Config: &config.Config{StartPath: "/"},
		Logger: log,
		Theme:  components.DefaultTheme(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	model := browseModel(ctx, app, waitingFetcher{})
	fetch := model.Init()
	cancel()

	var cancelled bool
	for _, msg := range runCmd(fetch) {
		if _, ok := msg.(pages.HomeCancelledMsg); ok {
			cancelled = true
		}
	}
	assert.True(t, cancelled)
	assert.Zero(t, strings.Count(logs.String(), "\"level\":\"error\""))
}

// runCmd executes cmd and any batched commands, returning their messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
