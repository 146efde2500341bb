package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "cellbutton",
		Short:         "cellbutton renders themed buttons as HTML, galleries and terminal previews",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Settings file (defaults to ./cellbutton.yaml when present)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	cmd.AddCommand(newRenderCmd(app))
	cmd.AddCommand(newGalleryCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newBrowseCmd(app))
	cmd.AddCommand(newSnapshotCmd(app))
	cmd.AddCommand(newWatchCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
