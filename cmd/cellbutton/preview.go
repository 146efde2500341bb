package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/cellbutton/internal/button"
	"github.com/alexisbeaulieu97/cellbutton/internal/ui/preview"
)

type previewOptions struct {
	catalogPath string
	hover       bool
	dark        bool
	width       int
	entry       entryFlags
}

func newPreviewCmd(app *AppContext) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview [entry-id]",
		Short: "Draw one button in the terminal",
		Long: `Draw one button in the terminal using the brand palette. With an entry id
the button is taken from the catalog; otherwise it is described by flags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log := app.CommandContext(cmd, "preview")
			entry, err := resolveEntry(app, "preview", args, opts.catalogPath, &opts.entry)
			if err != nil {
				log.Error(err, "preview command failed")
				return err
			}

			ctx := preview.DefaultContext()
			ctx.Hover = opts.hover
			ctx.Dark = opts.dark || (app.Settings != nil && app.Settings.Dark)
			ctx.Width = previewWidth(app, opts.width)

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), preview.Render(button.Render(entry.Props()), ctx))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.catalogPath, "catalog", "c", "", "Catalog file (defaults to the configured catalog)")
	cmd.Flags().BoolVar(&opts.hover, "hover", false, "Draw the hovered state")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "Use dark mode colors")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Width in cells (defaults to the terminal width)")
	opts.entry.register(cmd)

	return cmd
}

// previewWidth prefers an explicit width, then the terminal's, then the
// configured preview_width.
func previewWidth(app *AppContext, flag int) int {
	if flag > 0 {
		return flag
	}
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if app.Settings != nil {
		return app.Settings.PreviewWidth
	}
	return preview.DefaultContext().Width
}
