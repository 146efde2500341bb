// Package primitives holds the small building blocks components are composed
// from: named icons, the loading spinner, text runs and navigable links.
package primitives

import (
	"slices"

	"github.com/alexisbeaulieu97/cellbutton/internal/classnames"
	"github.com/alexisbeaulieu97/cellbutton/internal/markup"
)

// IconName identifies an icon in the registry.
type IconName string

const (
	IconArrowRight   IconName = "arrow-right"
	IconArrowLeft    IconName = "arrow-left"
	IconArrowUpRight IconName = "arrow-up-right"
	IconAdd          IconName = "add"
	IconClose        IconName = "close"
	IconCheck        IconName = "check"
	IconDownload     IconName = "download"
	IconUpload       IconName = "upload"
	IconChevronDown  IconName = "chevron-down"
	IconSettings     IconName = "settings"
)

// IconKind selects the drawing style of an icon.
type IconKind string

const (
	IconKindDefault IconKind = "default"
	IconKindOutline IconKind = "outline"
)

// Valid reports whether k is a known icon kind.
func (k IconKind) Valid() bool {
	return k == IconKindDefault || k == IconKindOutline
}

type iconDef struct {
	solid   string
	outline string
	glyph   string
}

var iconRegistry = map[IconName]iconDef{
	IconArrowRight: {
		solid:   "M13.3 4.3a1 1 0 0 1 1.4 0l7 7a1 1 0 0 1 0 1.4l-7 7a1 1 0 0 1-1.4-1.4l5.29-5.3H3a1 1 0 1 1 0-2h15.59l-5.3-5.3a1 1 0 0 1 0-1.4Z",
		outline: "M3 12h17m-6-7 7 7-7 7",
		glyph:   "→",
	},
	IconArrowLeft: {
		solid:   "M10.7 4.3a1 1 0 0 1 0 1.4L5.41 11H21a1 1 0 1 1 0 2H5.41l5.3 5.3a1 1 0 0 1-1.42 1.4l-7-7a1 1 0 0 1 0-1.4l7-7a1 1 0 0 1 1.42 0Z",
		outline: "M21 12H4m6-7-7 7 7 7",
		glyph:   "←",
	},
	IconArrowUpRight: {
		solid:   "M7 6a1 1 0 0 1 1-1h10a1 1 0 0 1 1 1v10a1 1 0 1 1-2 0V8.41l-10.3 10.3a1 1 0 0 1-1.4-1.42L15.58 7H8a1 1 0 0 1-1-1Z",
		outline: "M6 18 18 6M8 6h10v10",
		glyph:   "↗",
	},
	IconAdd: {
		solid:   "M12 3a1 1 0 0 1 1 1v7h7a1 1 0 1 1 0 2h-7v7a1 1 0 1 1-2 0v-7H4a1 1 0 1 1 0-2h7V4a1 1 0 0 1 1-1Z",
		outline: "M12 4v16M4 12h16",
		glyph:   "+",
	},
	IconClose: {
		solid:   "M5.3 5.3a1 1 0 0 1 1.4 0L12 10.58l5.3-5.3a1 1 0 1 1 1.4 1.42L13.42 12l5.3 5.3a1 1 0 0 1-1.42 1.4L12 13.42l-5.3 5.3a1 1 0 0 1-1.4-1.42L10.58 12l-5.3-5.3a1 1 0 0 1 0-1.4Z",
		outline: "M6 6l12 12M18 6 6 18",
		glyph:   "×",
	},
	IconCheck: {
		solid:   "M20.7 5.3a1 1 0 0 1 0 1.4l-11 11a1 1 0 0 1-1.4 0l-5-5a1 1 0 1 1 1.4-1.4L9 15.58 19.3 5.3a1 1 0 0 1 1.4 0Z",
		outline: "M4 12.5 9 17.5 20 6.5",
		glyph:   "✓",
	},
	IconDownload: {
		solid:   "M12 3a1 1 0 0 1 1 1v9.59l3.3-3.3a1 1 0 1 1 1.4 1.42l-5 5a1 1 0 0 1-1.4 0l-5-5a1 1 0 1 1 1.4-1.42l3.3 3.3V4a1 1 0 0 1 1-1ZM4 19a1 1 0 0 1 1-1h14a1 1 0 1 1 0 2H5a1 1 0 0 1-1-1Z",
		outline: "M12 4v11m-5-5 5 5 5-5M5 19h14",
		glyph:   "↓",
	},
	IconUpload: {
		solid:   "M11.3 3.3a1 1 0 0 1 1.4 0l5 5a1 1 0 0 1-1.4 1.42L13 6.41V16a1 1 0 1 1-2 0V6.41l-3.3 3.3a1 1 0 0 1-1.4-1.42l5-5ZM4 19a1 1 0 0 1 1-1h14a1 1 0 1 1 0 2H5a1 1 0 0 1-1-1Z",
		outline: "M12 16V5m-5 5 5-5 5 5M5 19h14",
		glyph:   "↑",
	},
	IconChevronDown: {
		solid:   "M5.3 8.3a1 1 0 0 1 1.4 0L12 13.58l5.3-5.3a1 1 0 1 1 1.4 1.42l-6 6a1 1 0 0 1-1.4 0l-6-6a1 1 0 0 1 0-1.4Z",
		outline: "m6 9 6 6 6-6",
		glyph:   "⌄",
	},
	IconSettings: {
		solid:   "M12 8a4 4 0 1 0 0 8 4 4 0 0 0 0-8Zm-8.5 3h2.1a6.5 6.5 0 0 1 1.3-3.1L5.4 6.4l1-1 1.5 1.5A6.5 6.5 0 0 1 11 5.6V3.5h2v2.1a6.5 6.5 0 0 1 3.1 1.3l1.5-1.5 1 1-1.5 1.5a6.5 6.5 0 0 1 1.3 3.1h2.1v2h-2.1a6.5 6.5 0 0 1-1.3 3.1l1.5 1.5-1 1-1.5-1.5a6.5 6.5 0 0 1-3.1 1.3v2.1h-2v-2.1a6.5 6.5 0 0 1-3.1-1.3l-1.5 1.5-1-1 1.5-1.5A6.5 6.5 0 0 1 5.6 13H3.5v-2Z",
		outline: "M12 9a3 3 0 1 0 0 6 3 3 0 0 0 0-6ZM4 12h2m12 0h2M12 4v2m0 12v2M6.3 6.3l1.4 1.4m8.6 8.6 1.4 1.4m0-11.4-1.4 1.4m-8.6 8.6-1.4 1.4",
		glyph:   "⚙",
	},
}

// KnownIcon reports whether name is registered.
func KnownIcon(name IconName) bool {
	_, ok := iconRegistry[name]
	return ok
}

// IconNames lists the registered icons in sorted order.
func IconNames() []IconName {
	names := make([]IconName, 0, len(iconRegistry))
	for name := range iconRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Glyph returns a single-cell terminal stand-in for the icon.
func Glyph(name IconName) string {
	if def, ok := iconRegistry[name]; ok {
		return def.glyph
	}
	return "•"
}

// IconSet renders registry icons as inline SVG.
type IconSet struct{}

// Icon renders the named icon. Unknown names render an empty glyph frame so
// layout is unaffected.
func (IconSet) Icon(name IconName, kind IconKind, class classnames.Fragment) *markup.Node {
	if !kind.Valid() {
		kind = IconKindDefault
	}

	svg := markup.El("svg").
		SetAttr("viewBox", "0 0 24 24").
		SetAttr("xmlns", "http://www.w3.org/2000/svg").
		SetAttr("aria-hidden", "true").
		SetAttr("data-icon", string(name)).
		SetAttr("data-icon-kind", string(kind)).
		SetClass(class)

	def, ok := iconRegistry[name]
	if !ok {
		return svg
	}

	path := markup.El("path")
	if kind == IconKindOutline {
		path.SetAttr("d", def.outline).
			SetAttr("fill", "none").
			SetAttr("stroke", "currentColor").
			SetAttr("stroke-width", "2").
			SetAttr("stroke-linecap", "round").
			SetAttr("stroke-linejoin", "round")
	} else {
		path.SetAttr("d", def.solid)
	}
	svg.Children = append(svg.Children, path)
	return svg
}
