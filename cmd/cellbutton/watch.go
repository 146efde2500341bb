package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cellbutton/internal/watch"
)

func newWatchCmd(app *AppContext) *cobra.Command {
	opts := &galleryOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the gallery whenever the catalog changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log := app.CommandContext(cmd, "watch")
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			path := app.catalogPath(opts.catalogPath)
			out := opts.outputPath(app)

			rebuild := func(context.Context) error {
				cat, err := app.loadCatalog("build gallery", path, false)
				if err != nil {
					return err
				}
				return writeGallery(cmd, out, cat, opts.pageOptions(app))
			}

			if err := rebuild(ctx); err != nil {
				log.Error(err, "initial gallery build failed")
			}

			log.WithFields(map[string]any{"catalog": path, "output": out}).Info("watching catalog")
			w := watch.New(path, app.Settings.WatchDebounce, log)
			if err := w.Run(ctx, rebuild); err != nil {
				return newCommandError("watch", "watching "+path, err, "Check that the catalog's directory exists and is readable.")
			}
			log.Info("watch stopped")
			return nil
		},
	}

	opts.register(cmd)

	return cmd
}
