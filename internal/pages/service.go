package pages

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lodestone-studio/lodestone/internal/api"
	"github.com/lodestone-studio/lodestone/internal/logger"
)

// HomeFetcher loads the home document. *api.Client implements it.
type HomeFetcher interface {
	FetchHome(ctx context.Context) (api.HomeData, error)
}

// fetchHomeCmd runs one fetch and reports the outcome as a message. A
// failure is logged here, so it is recorded once even when the page that
// started the fetch is no longer on screen when the result arrives.
func fetchHomeCmd(ctx context.Context, fetcher HomeFetcher, log *logger.Logger) tea.Cmd {
	return func() tea.Msg {
		data, err := fetcher.FetchHome(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return HomeCancelledMsg{}
			}
			log.Error(err, "error fetching home data")
			return HomeFailedMsg{Err: err}
		}
		return HomeLoadedMsg{Data: data}
	}
}

// NavigateCmd emits a NavigateMsg for path.
func NavigateCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}
