package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodestone-studio/lodestone/internal/api"
	"github.com/lodestone-studio/lodestone/internal/logger"
	"github.com/lodestone-studio/lodestone/internal/pages"
)

type stubFetcher struct {
	data api.HomeData
	err  error
}

func (s stubFetcher) FetchHome(context.Context) (api.HomeData, error) {
	return s.data, s.err
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

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func sized(t *testing.T, m Model, width, height int) Model {
	t.Helper()
	m, _ = send(t, m, tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

func TestNewModelStartsOnNormalisedRoute(t *testing.T) {
	t.Parallel()

	m := NewModel("/art/", pages.Options{})
	assert.Equal(t, "/art", m.Path())
	assert.Empty(t, m.History())
	assert.Nil(t, m.Focused())
	assert.Nil(t, m.Init())
}

func TestInitLoadsHomeThroughPage(t *testing.T) {
	t.Parallel()

	fetcher := stubFetcher{data: api.HomeData{
		Title:     "Home",
		IntroText: "Welcome",
		Projects:  []api.Project{{ID: 1, Title: "A", Description: "d"}},
	}}
	m := sized(t, NewModel("/", pages.Options{Fetcher: fetcher}), 100, 40)

	for _, msg := range runCmd(m.Init()) {
		m, _ = send(t, m, msg)
	}

	home, ok := m.Page().(*pages.HomePage)
	require.True(t, ok)
	assert.False(t, home.Loading())
	require.Len(t, home.Showcases(), 1)
	assert.Equal(t, "A", home.Showcases()[0].Title())
	assert.Contains(t, m.View(), "Welcome")
}

func TestFetchFailureIsLoggedAfterLeavingHome(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Writer: &buf})
	require.NoError(t, err)

	m := sized(t, NewModel("/", pages.Options{
		Fetcher: stubFetcher{err: errors.New("connection refused")},
		Logger:  log,
	}), 100, 40)
	fetch := m.Init()

	m, _ = send(t, m, pages.NavigateMsg{Path: "/about"})
	require.Equal(t, "/about", m.Path())

	for _, msg := range runCmd(fetch) {
		m, _ = send(t, m, msg)
	}

	assert.Equal(t, "/about", m.Path())
	assert.Equal(t, 1, strings.Count(buf.String(), `"level":"error"`))
	assert.Contains(t, buf.String(), "error fetching home data")
}
