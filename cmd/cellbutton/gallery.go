package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cellbutton/internal/catalog"
	"github.com/alexisbeaulieu97/cellbutton/internal/page"
)

type galleryOptions struct {
	catalogPath string
	output      string
	matrix      bool
	dark        bool
	title       string
	stylesheet  string
}

func (o *galleryOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.catalogPath, "catalog", "c", "", "Catalog file (defaults to the configured catalog)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Output file, or - for stdout (defaults to the configured gallery_out)")
	cmd.Flags().BoolVar(&o.dark, "dark", false, "Render the page in dark mode")
	cmd.Flags().StringVar(&o.title, "title", "", "Page title (defaults to the catalog name)")
	cmd.Flags().StringVar(&o.stylesheet, "stylesheet", "", "Stylesheet URL linked from the page head")
}

func (o *galleryOptions) pageOptions(app *AppContext) page.Options {
	return page.Options{
		Title:      o.title,
		Dark:       o.dark || (app.Settings != nil && app.Settings.Dark),
		Stylesheet: o.stylesheet,
	}
}

func (o *galleryOptions) outputPath(app *AppContext) string {
	if o.output != "" {
		return o.output
	}
	if app.Settings != nil {
		return app.Settings.GalleryOut
	}
	return "gallery.html"
}

func newGalleryCmd(app *AppContext) *cobra.Command {
	opts := &galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Write an HTML page showing every catalog button",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log := app.CommandContext(cmd, "gallery")
			path := app.catalogPath(opts.catalogPath)
			cat, err := app.loadCatalog("build gallery", path, opts.matrix)
			if err != nil {
				log.Error(err, "gallery command failed")
				return err
			}

			out := opts.outputPath(app)
			if err := writeGallery(cmd, out, cat, opts.pageOptions(app)); err != nil {
				log.Error(err, "gallery command failed")
				return err
			}
			log.WithFields(map[string]any{"entries": len(cat.Buttons), "output": out}).Info("gallery written")
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.matrix, "matrix", false, "Show every kind and theme instead of a catalog")

	return cmd
}

// writeGallery renders the page into memory first so a failed render never
// truncates an existing file.
func writeGallery(cmd *cobra.Command, out string, cat *catalog.Catalog, opts page.Options) error {
	var buf bytes.Buffer
	if err := page.Write(&buf, cat, opts); err != nil {
		return newCommandError("build gallery", "rendering "+cat.Name, err, "Check the catalog entries for unsupported values.")
	}

	if out == "-" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return newCommandError("build gallery", "creating "+dir, err, "Check that you have write access to the output directory.")
		}
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return newCommandError("build gallery", "writing "+out, err, "Check disk space and file permissions, then retry.")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %d buttons to %s\n", len(cat.Buttons), out)
	return nil
}
