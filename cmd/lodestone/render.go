package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/lodestone-studio/lodestone/internal/pages"
	"github.com/lodestone-studio/lodestone/internal/routes"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

const defaultRenderWidth = 80

func newRenderCmd(v *viper.Viper) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "render [path]",
		Short: "Render one page to stdout",
		Long: `Render the page at path once and print it. The home page fetches its
content from the configured back-end first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(v, false, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			path := app.Config.StartPath
			if len(args) == 1 {
				path = args[0]
			}
			if !routes.Known(path) {
				return fmt.Errorf("unknown route %q (known: %s)", path, strings.Join(pages.Paths(), ", "))
			}

			client, err := app.Client()
			if err != nil {
				return err
			}
			defer client.Close()

			out := renderPage(path, resolveWidth(width, cmd.OutOrStdout()), pages.Options{
				Context: cmd.Context(),
				Fetcher: client,
				Logger:  app.Logger,
				Theme:   app.Theme,
			})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "render width in cells (default: terminal width, or 80)")
	return cmd
}

// renderPage builds the page, runs its start-up commands to completion and
// renders the result.
func renderPage(path string, width int, opts pages.Options) string {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	page := pages.New(path, opts)
	page.Resize(opts.Theme, width)
	for _, msg := range runCommands(page.Init()) {
		page.Update(msg)
	}
	return page.ViewWithContext(components.NewContext(opts.Theme, width))
}

// runCommands executes cmd and any commands it batches, returning their
// messages. Commands returned by Update are not followed, so timers such as
// the spinner stop after one frame.
func runCommands(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, runCommands(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

// resolveWidth prefers the flag, then the terminal width of out.
func resolveWidth(flag int, out io.Writer) int {
	if flag > 0 {
		return flag
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return defaultRenderWidth
}
