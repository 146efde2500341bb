// Package button renders the design-system Button.
//
// A button is described by Props and rendered by Render into a markup tree.
// Rendering is pure: the same Props always produce the same tree, and nothing
// is read from or written to shared state. Styling comes from three lookup
// tables keyed by kind, theme and disabled state (see LabelStyle, ButtonStyle
// and CellAccentStyle); layout is either the standard icon+label row or the
// slanted cell shape.
//
// A non-disabled button with an href renders as a navigable link; everything
// else renders as a plain button element:
//
//	node := button.Render(button.Props{
//		Kind:  button.KindCell,
//		Theme: button.ThemeCoral,
//		Label: "Get started",
//		Href:  "/signup",
//	})
//	html, _ := markup.RenderString(node)
package button

import (
	cn "github.com/alexisbeaulieu97/cellbutton/internal/classnames"
	"github.com/alexisbeaulieu97/cellbutton/internal/markup"
	"github.com/alexisbeaulieu97/cellbutton/internal/primitives"
)

// IconOptions tunes the icon slot.
type IconOptions struct {
	ClassName cn.Fragment
	Kind      primitives.IconKind
	Custom    *markup.Node
}

// Props describes a button. Zero values select the documented defaults.
type Props struct {
	ID           string
	Kind         Kind
	Theme        Theme
	Label        string
	LabelNode    *markup.Node
	Children     []*markup.Node
	Icon         primitives.IconName
	Disabled     bool
	IsLoading    bool
	ClassName    cn.Fragment
	IconPosition IconPosition
	IconOptions  IconOptions
	Type         Type
	OnClick      markup.ClickHandler
	Href         string
	Rel          string
	Target       string
	// Animate defaults to true when nil.
	Animate *bool
	Stretch bool
}

// Bool returns a pointer to v, for Props.Animate.
func Bool(v bool) *bool {
	return &v
}

// Animated reports the effective animate flag before the disabled state is
// considered.
func (p Props) Animated() bool {
	return p.Animate == nil || *p.Animate
}

// WithDefaults returns a copy of p with kind, theme, icon position and animate
// filled in.
func (p Props) WithDefaults() Props {
	if p.Kind == "" {
		p.Kind = KindPrimary
	}
	if p.Theme == "" {
		if p.Kind == KindSecondary {
			p.Theme = ThemeMushroom
		} else {
			p.Theme = ThemeBlue
		}
	}
	if p.IconPosition == "" {
		if p.Kind == KindCell {
			p.IconPosition = IconEnd
		} else {
			p.IconPosition = IconStart
		}
	}
	p.Animate = Bool(p.Animated())
	return p
}

// IsLink reports whether the props render as a navigable link.
func (p Props) IsLink() bool {
	return !p.Disabled && p.Href != ""
}

// Icons renders named icons.
type Icons interface {
	Icon(name primitives.IconName, kind primitives.IconKind, class cn.Fragment) *markup.Node
}

// Spinners renders the loading indicator.
type Spinners interface {
	Spinner() *markup.Node
}

// Texts renders plain text labels.
type Texts interface {
	Text(content string, class cn.Fragment) *markup.Node
}

// Links renders navigable elements.
type Links interface {
	Link(href string, attrs primitives.LinkAttrs, children ...*markup.Node) *markup.Node
}

// Kit bundles the primitives a button is composed from.
type Kit struct {
	Icons    Icons
	Spinners Spinners
	Texts    Texts
	Links    Links
}

// DefaultKit returns the built-in primitives.
func DefaultKit() Kit {
	return Kit{
		Icons:    primitives.IconSet{},
		Spinners: primitives.Spinner{},
		Texts:    primitives.TextSet{},
		Links:    primitives.LinkSet{},
	}
}

// Option customises rendering.
type Option func(*Kit)

// WithKit replaces every primitive at once.
func WithKit(kit Kit) Option {
	return func(k *Kit) { *k = kit }
}

// WithIcons replaces the icon renderer.
func WithIcons(icons Icons) Option {
	return func(k *Kit) { k.Icons = icons }
}

// WithNavigator makes rendered links call navigate when clicked.
func WithNavigator(navigate primitives.Navigator) Option {
	return func(k *Kit) { k.Links = primitives.LinkSet{Navigate: navigate} }
}

// Render builds the button tree.
func Render(props Props, opts ...Option) *markup.Node {
	kit := DefaultKit()
	for _, opt := range opts {
		opt(&kit)
	}

	p := props.WithDefaults()
	animate := p.Animated()

	labelStyle := LabelStyle(p.Kind, p.Theme, p.Disabled)
	icon := iconElement(p, kit, labelStyle)
	label := labelElement(p, kit, labelStyle)

	var inner []*markup.Node
	if p.Kind == KindCell {
		inner = []*markup.Node{CellLayout(p.Theme, icon, label, animate && !p.Disabled, p.IconPosition, p.Disabled)}
	} else {
		inner = StandardLayout(label, icon, p.Disabled, animate, p.IconPosition)
	}

	class := RootClass(p)

	if p.IsLink() {
		return kit.Links.Link(p.Href, primitives.LinkAttrs{
			ID:      p.ID,
			Rel:     p.Rel,
			Target:  p.Target,
			Class:   class,
			OnClick: p.OnClick,
		}, inner...)
	}

	el := markup.El("button", inner...).
		SetAttrIf("id", p.ID).
		SetAttrIf("type", string(p.Type))
	if p.Disabled {
		el.SetAttr("disabled", "")
	}
	return el.SetClass(class).Handle(p.OnClick)
}

// RootClass composes the classes of the outer element. p should already have
// defaults applied.
func RootClass(p Props) cn.Fragment {
	common := cn.Merge("group select-none", cn.If(p.Disabled, "cursor-not-allowed"))

	var simple cn.Fragment
	if p.Kind != KindCell {
		simple = cn.Merge(
			ButtonStyle(p.Kind, p.Theme, p.Disabled),
			cn.If(p.Stretch, "w-full"),
			cn.If(p.Kind != KindSecondary, "px-5"),
		)
	}

	return cn.Merge(common, simple, p.ClassName)
}
