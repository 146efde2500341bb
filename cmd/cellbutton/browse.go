package main

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cellbutton/internal/catalog"
	"github.com/alexisbeaulieu97/cellbutton/internal/logger"
	"github.com/alexisbeaulieu97/cellbutton/internal/tui"
	"github.com/alexisbeaulieu97/cellbutton/internal/watch"
)

type browseOptions struct {
	catalogPath string
	matrix      bool
	dark        bool
	watch       bool
}

func newBrowseCmd(app *AppContext) *cobra.Command {
	opts := &browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse catalog buttons interactively",
		Long:  `Launch the interactive browser. Move with the arrow keys, press enter to click, d to toggle dark mode and q to quit.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log := app.CommandContext(cmd, "browse")
			err := runBrowse(ctx, log, app, opts)
			if err != nil {
				log.Error(err, "browse command failed")
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.catalogPath, "catalog", "c", "", "Catalog file (defaults to the configured catalog)")
	cmd.Flags().BoolVar(&opts.matrix, "matrix", false, "Browse every kind and theme instead of a catalog")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "Start in dark mode")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Reload the catalog when the file changes")

	return cmd
}

func runBrowse(ctx context.Context, log *logger.Logger, app *AppContext, opts *browseOptions) error {
	path := app.catalogPath(opts.catalogPath)
	cat, err := app.loadCatalog("browse", path, opts.matrix)
	if err != nil {
		return err
	}

	model := tui.NewModel(cat, tui.Options{Dark: opts.dark || app.Settings.Dark})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.watch && !opts.matrix {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		w := watch.New(path, app.Settings.WatchDebounce, log)
		go func() {
			_ = w.Run(watchCtx, func(context.Context) error {
				reloaded, err := catalog.Load(path)
				if err != nil {
					program.Send(tui.CatalogErrorMsg{Err: err})
					return err
				}
				program.Send(tui.CatalogReloadedMsg{Catalog: reloaded})
				return nil
			})
		}()
	}

	log.WithFields(map[string]any{"entries": len(cat.Buttons)}).Info("browser started")
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return newCommandError("browse", "running the browser", err, "Make sure the command runs in an interactive terminal.")
	}
	log.Info("browser closed")
	return nil
}
