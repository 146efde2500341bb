package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cellbutton/internal/button"
	"github.com/alexisbeaulieu97/cellbutton/internal/catalog"
	"github.com/alexisbeaulieu97/cellbutton/internal/logger"
	"github.com/alexisbeaulieu97/cellbutton/internal/markup"
)

const adHocEntryID = "button"

// entryFlags describes one button on the command line.
type entryFlags struct {
	id           string
	kind         string
	theme        string
	label        string
	icon         string
	iconPosition string
	iconClass    string
	iconKind     string
	disabled     bool
	loading      bool
	noAnimate    bool
	stretch      bool
	className    string
	buttonType   string
	href         string
	rel          string
	target       string
}

func (f *entryFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.id, "id", "", "Element id")
	fs.StringVarP(&f.kind, "kind", "k", "", "Button kind (cell, primary, outline, secondary)")
	fs.StringVarP(&f.theme, "theme", "t", "", "Theme (blue, coral, quartz, mushroom, danger, green, evolved-*)")
	fs.StringVarP(&f.label, "label", "l", "", "Label text")
	fs.StringVar(&f.icon, "icon", "", "Named icon")
	fs.StringVar(&f.iconPosition, "icon-position", "", "Icon side (start, end)")
	fs.StringVar(&f.iconClass, "icon-class", "", "Extra classes for the icon")
	fs.StringVar(&f.iconKind, "icon-kind", "", "Icon variant (default, outline)")
	fs.BoolVar(&f.disabled, "disabled", false, "Render disabled")
	fs.BoolVar(&f.loading, "loading", false, "Show the loading spinner")
	fs.BoolVar(&f.noAnimate, "no-animate", false, "Disable hover animation")
	fs.BoolVar(&f.stretch, "stretch", false, "Stretch to the container width")
	fs.StringVar(&f.className, "class", "", "Extra root classes")
	fs.StringVar(&f.buttonType, "type", "", "Button type attribute (button, submit, reset)")
	fs.StringVar(&f.href, "href", "", "Render as a link to href")
	fs.StringVar(&f.rel, "rel", "", "Link rel attribute")
	fs.StringVar(&f.target, "target", "", "Link target (_self, _blank, _parent, _top)")
}

func (f *entryFlags) entry() catalog.Entry {
	e := catalog.Entry{
		ID:           f.id,
		Kind:         f.kind,
		Theme:        f.theme,
		Label:        f.label,
		Icon:         f.icon,
		IconPosition: f.iconPosition,
		IconOptions:  catalog.IconOptions{ClassName: f.iconClass, Kind: f.iconKind},
		Disabled:     f.disabled,
		Loading:      f.loading,
		Stretch:      f.stretch,
		ClassName:    f.className,
		ButtonType:   f.buttonType,
		Href:         f.href,
		Rel:          f.rel,
		Target:       f.target,
	}
	if f.noAnimate {
		e.Animate = button.Bool(false)
	}
	return e
}

// resolveEntry returns the catalog entry named by args, or the entry built
// from flags when no id is given.
func resolveEntry(app *AppContext, operation string, args []string, catalogFlag string, flags *entryFlags) (catalog.Entry, error) {
	if len(args) == 1 {
		path := app.catalogPath(catalogFlag)
		cat, err := app.loadCatalog(operation, path, false)
		if err != nil {
			return catalog.Entry{}, err
		}
		entry, ok := cat.Find(args[0])
		if !ok {
			return catalog.Entry{}, newCommandError(operation, fmt.Sprintf("looking up %q in %s", args[0], path), fmt.Errorf("no such entry"), "Run 'cellbutton gallery' or check the ids in the catalog.")
		}
		return entry, nil
	}

	entry := flags.entry()
	check := entry
	if check.ID == "" {
		check.ID = adHocEntryID
	}
	doc := &catalog.Catalog{Version: catalog.CurrentVersion, Name: "command line", Buttons: []catalog.Entry{check}}
	if err := catalog.Validate(doc); err != nil {
		return catalog.Entry{}, newCommandError(operation, "validating flags", err, "Run with --help to see accepted values.")
	}
	return entry, nil
}

type renderOptions struct {
	catalogPath string
	indent      bool
	entry       entryFlags
}

func newRenderCmd(app *AppContext) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [entry-id]",
		Short: "Render one button as HTML",
		Long: `Render one button as HTML on stdout. With an entry id the button is taken
from the catalog; otherwise it is described by flags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, log := app.CommandContext(cmd, "render")
			err := runRender(ctx, log, cmd, app, args, opts)
			if err != nil {
				log.Error(err, "render command failed")
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.catalogPath, "catalog", "c", "", "Catalog file (defaults to the configured catalog)")
	cmd.Flags().BoolVar(&opts.indent, "indent", false, "Put each tag on its own line")
	opts.entry.register(cmd)

	return cmd
}

func runRender(_ context.Context, log *logger.Logger, cmd *cobra.Command, app *AppContext, args []string, opts *renderOptions) error {
	entry, err := resolveEntry(app, "render", args, opts.catalogPath, &opts.entry)
	if err != nil {
		return err
	}

	root := button.Render(entry.Props())

	var out string
	if opts.indent {
		out, err = markup.IndentString(root)
	} else {
		out, err = markup.RenderString(root)
	}
	if err != nil {
		return newCommandError("render", "serializing button", err, "Report this as a bug with the flags you used.")
	}

	log.Debug("rendered " + string(entry.Props().WithDefaults().Kind) + " button")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
	return nil
}
