package primitives

import (
	"github.com/alexisbeaulieu97/cellbutton/internal/classnames"
	"github.com/alexisbeaulieu97/cellbutton/internal/markup"
)

// Spinner renders the animated loading indicator.
type Spinner struct{}

// Spinner returns a fresh spinner node.
func (Spinner) Spinner() *markup.Node {
	return markup.El("svg",
		markup.El("circle").
			SetClass("opacity-25").
			SetAttr("cx", "12").
			SetAttr("cy", "12").
			SetAttr("r", "10").
			SetAttr("stroke", "currentColor").
			SetAttr("stroke-width", "4"),
		markup.El("path").
			SetClass("opacity-75").
			SetAttr("fill", "currentColor").
			SetAttr("d", "M4 12a8 8 0 018-8V0C5.373 0 0 5.373 0 12h4zm2 5.291A7.962 7.962 0 014 12H0c0 3.042 1.135 5.824 3 7.938l3-2.647z"),
	).
		SetClass("h-4 w-4 animate-spin").
		SetAttr("xmlns", "http://www.w3.org/2000/svg").
		SetAttr("fill", "none").
		SetAttr("viewBox", "0 0 24 24").
		SetAttr("role", "status").
		SetAttr("data-spinner", "true")
}

// TextSet renders plain text runs.
type TextSet struct{}

// Text wraps content in a styled text element.
func (TextSet) Text(content string, class classnames.Fragment) *markup.Node {
	return markup.El("span", markup.Text(content)).SetClass(class)
}

// Navigator performs client-side navigation to href.
type Navigator func(href string)

// LinkAttrs carries the optional attributes of a navigable element.
type LinkAttrs struct {
	ID      string
	Rel     string
	Target  string
	Class   classnames.Fragment
	OnClick markup.ClickHandler
}

// LinkSet renders anchors that run the caller's click handler and then hand
// the target to Navigate.
type LinkSet struct {
	Navigate Navigator
}

// Link renders a navigable element around children.
func (l LinkSet) Link(href string, attrs LinkAttrs, children ...*markup.Node) *markup.Node {
	a := markup.El("a", children...).
		SetAttrIf("id", attrs.ID).
		SetAttr("href", href).
		SetAttrIf("rel", attrs.Rel).
		SetAttrIf("target", attrs.Target).
		SetClass(attrs.Class)

	onClick := attrs.OnClick
	navigate := l.Navigate
	if onClick != nil || navigate != nil {
		a.Handle(func() {
			if onClick != nil {
				onClick()
			}
			if navigate != nil {
				navigate(href)
			}
		})
	}
	return a
}
