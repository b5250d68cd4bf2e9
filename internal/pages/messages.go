package pages

import "github.com/lodestone-studio/lodestone/internal/api"

// HomeLoadedMsg carries the home document after a successful fetch.
type HomeLoadedMsg struct {
	Data api.HomeData
}

// HomeFailedMsg reports a failed home fetch.
type HomeFailedMsg struct {
	Err error
}

// HomeCancelledMsg reports a fetch abandoned because its context ended.
type HomeCancelledMsg struct{}

// NavigateMsg asks the app to show the page at Path.
type NavigateMsg struct {
	Path string
}
