// Package page renders a catalog as a standalone HTML gallery document.
package page

import (
	"io"
	"strings"

	"github.com/alexisbeaulieu97/cellbutton/internal/button"
	"github.com/alexisbeaulieu97/cellbutton/internal/catalog"
	cn "github.com/alexisbeaulieu97/cellbutton/internal/classnames"
	"github.com/alexisbeaulieu97/cellbutton/internal/markup"
	cberrors "github.com/alexisbeaulieu97/cellbutton/pkg/errors"
)

// Options controls the surrounding document.
type Options struct {
	// Title overrides the catalog name in <title> and the heading.
	Title string
	// Dark adds the dark class to <html> so dark: variants apply.
	Dark bool
	// Stylesheet is linked from <head> when set.
	Stylesheet string
}

const (
	bodyClass    cn.Fragment = "min-h-screen bg-marble-1000 p-8 dark:bg-volcanic-100"
	sectionClass cn.Fragment = "flex items-center gap-6 border-b border-marble-800 py-4"
)

// Build returns the gallery document tree.
func Build(cat *catalog.Catalog, opts Options) *markup.Node {
	title := opts.Title
	if title == "" {
		title = cat.Name
	}

	head := markup.El("head",
		markup.El("meta").SetAttr("charset", "utf-8"),
		markup.El("title", markup.Text(title)),
	)
	if opts.Stylesheet != "" {
		head.Children = append(head.Children,
			markup.El("link").SetAttr("rel", "stylesheet").SetAttr("href", opts.Stylesheet))
	}

	main := markup.El("main", markup.El("h1", markup.Text(title)))
	if cat.Description != "" {
		main.Children = append(main.Children, markup.El("p", markup.Text(cat.Description)))
	}
	for _, entry := range cat.Buttons {
		main.Children = append(main.Children, Section(entry))
	}

	root := markup.El("html", head, markup.El("body", main).SetClass(bodyClass)).
		SetAttr("lang", "en").
		SetClass(cn.If(opts.Dark, "dark"))
	return root
}

// Section renders one catalog entry with its heading and a short summary of
// the resolved props.
func Section(entry catalog.Entry) *markup.Node {
	return markup.El("section",
		markup.El("h2", markup.Text(entry.Title())),
		markup.El("code", markup.Text(entry.ID)),
		markup.El("p", markup.Text(Summary(entry.Props()))).SetClass("text-sm"),
		markup.El("div", button.Render(entry.Props())).SetClass("preview"),
	).
		SetAttr("id", "entry-"+entry.ID).
		SetAttr("data-entry", entry.ID).
		SetClass(sectionClass)
}

// Summary describes the resolved kind, theme and notable flags of props.
func Summary(props button.Props) string {
	p := props.WithDefaults()
	parts := []string{string(p.Kind), string(p.Theme), "icon " + string(p.IconPosition)}
	if p.Disabled {
		parts = append(parts, "disabled")
	}
	if p.IsLoading {
		parts = append(parts, "loading")
	}
	if !p.Animated() {
		parts = append(parts, "static")
	}
	if p.Stretch {
		parts = append(parts, "stretch")
	}
	if p.IsLink() {
		parts = append(parts, "link "+p.Href)
	}
	return strings.Join(parts, " · ")
}

// Write renders the gallery document to w.
func Write(w io.Writer, cat *catalog.Catalog, opts Options) error {
	if err := markup.Document(w, Build(cat, opts)); err != nil {
		return cberrors.NewRenderError("", err)
	}
	return nil
}
