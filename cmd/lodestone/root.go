package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lodestone-studio/lodestone/internal/config"
	"github.com/lodestone-studio/lodestone/internal/pages"
	"github.com/lodestone-studio/lodestone/internal/tui"
	"github.com/lodestone-studio/lodestone/internal/ui/components"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "lodestone",
		Short:         "Browse the Lodestone studio site in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.BindFlags(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, v)
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())
	cmd.Flags().Bool("watch", false, "reload the theme when the --token-file changes")

	cmd.AddCommand(newRenderCmd(v))
	cmd.AddCommand(newTokensCmd(v))
	cmd.AddCommand(newGalleryCmd(v))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runBrowse(cmd *cobra.Command, v *viper.Viper) error {
	app, err := newAppContext(v, true, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer app.Close()

	client, err := app.Client()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	model := browseModel(ctx, app, client)

	app.Logger.With("start", app.Config.StartPath).Info("browser started")
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		stop, err := watchTheme(ctx, app, p)
		if err != nil {
			return err
		}
		defer stop()
	}
	_, err = p.Run()
	cancel()
	if err != nil && cmd.Context().Err() == nil {
		app.Logger.Error(err, "browser failed")
		return fmt.Errorf("run browser: %w", err)
	}
	app.Logger.Info("browser closed")
	return nil
}

// browseModel builds the interactive model. Cancelling ctx abandons any
// home fetch still in flight.
func browseModel(ctx context.Context, app *AppContext, fetcher pages.HomeFetcher) tui.Model {
	return tui.NewModel(app.Config.StartPath, pages.Options{
		Context: ctx,
		Fetcher: fetcher,
		Logger:  app.Logger,
		Theme:   app.Theme,
	})
}

// watchTheme feeds themes rebuilt from the token file into p until the
// returned stop function is called.
func watchTheme(ctx context.Context, app *AppContext, p *tea.Program) (stop func(), err error) {
	w, err := config.NewThemeWatcher(app.Config.Theme, app.Logger)
	if err != nil {
		return nil, fmt.Errorf("watch theme: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx, func(theme components.Theme) {
			p.Send(tui.ThemeMsg{Theme: theme})
		})
	}()
	return func() {
		cancel()
		<-done
	}, nil
}
