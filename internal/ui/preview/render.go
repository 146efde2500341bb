package preview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/cellbutton/internal/markup"
	"github.com/alexisbeaulieu97/cellbutton/internal/primitives"
)

// RenderContext configures a terminal preview.
type RenderContext struct {
	Hover bool
	Dark  bool
	// Width bounds stretched buttons and long labels. Zero means unbounded.
	Width   int
	Palette Palette
	// SpinnerFrame replaces the loading indicator glyph, for animation.
	SpinnerFrame string
}

// DefaultContext returns a light, unhovered context 80 cells wide.
func DefaultContext() RenderContext {
	return RenderContext{Width: 80, Palette: BrandPalette()}
}

const defaultSpinnerFrame = "⠋"

type bevelKey struct {
	side    string
	flipped bool
}

var bevelGlyphs = map[bevelKey]string{
	{"right", false}: "◤",
	{"right", true}:  "◣",
	{"left", false}:  "◢",
	{"left", true}:   "◥",
}

// Render draws the button tree rooted at root.
func Render(root *markup.Node, ctx RenderContext) string {
	if root == nil {
		return ""
	}
	if ctx.Palette == nil {
		ctx.Palette = BrandPalette()
	}
	r := renderer{
		ctx: ctx,
		state: State{
			Hover:    ctx.Hover,
			Dark:     ctx.Dark,
			Disabled: root.Disabled(),
		},
	}
	return r.node(root, Resolved{}, true)
}

type renderer struct {
	ctx   RenderContext
	state State
}

// node renders n. inherited carries the colours of the nearest ancestors so
// nested runs keep the surrounding background.
func (r renderer) node(n *markup.Node, inherited Resolved, root bool) string {
	switch n.Kind {
	case markup.TextNode:
		return r.text(n.Text, inherited)
	case markup.FragmentNode:
		return r.children(n.Children, inherited)
	}

	res := Resolve(n.Class(), r.state, r.ctx.Palette)
	eff := inherit(res, inherited)

	if n.Tag == "svg" {
		return r.glyph(n, res, eff)
	}

	content := r.children(n.Children, eff)

	style := lipgloss.NewStyle().
		PaddingLeft(res.PadLeft).
		PaddingRight(res.PadRight)
	if eff.Background != "" {
		style = style.Background(eff.Background)
	}
	if res.Border {
		border := eff.BorderColor
		if border == "" {
			border = eff.Foreground
		}
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(border)
	}
	if root && res.FullWidth && r.ctx.Width > 0 {
		width := r.ctx.Width
		if res.Border {
			width -= 2
		}
		style = style.Width(width).Align(lipgloss.Center)
	}
	if root && r.state.Disabled {
		style = style.Faint(true)
	}
	return style.Render(content)
}

func (r renderer) children(nodes []*markup.Node, inherited Resolved) string {
	parts := make([]string, 0, len(nodes))
	for _, child := range nodes {
		if s := r.node(child, inherited, false); s != "" {
			parts = append(parts, s)
		}
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	}
}

func (r renderer) text(s string, eff Resolved) string {
	if r.ctx.Width > 0 {
		limit := max(1, r.ctx.Width-6)
		if runewidth.StringWidth(s) > limit {
			s = runewidth.Truncate(s, limit, "…")
		}
	}
	return colored(eff.Foreground, eff.Background).Render(s)
}

func (r renderer) glyph(n *markup.Node, own, eff Resolved) string {
	var glyph string
	fg := eff.Foreground
	if own.Fill != "" {
		fg = own.Fill
	}
	bg := eff.Background

	switch {
	case n.HasAttr("data-spinner"):
		glyph = r.ctx.SpinnerFrame
		if glyph == "" {
			glyph = defaultSpinnerFrame
		}
	case n.HasAttr("data-bevel"):
		side, _ := n.Attr("data-bevel")
		glyph = bevelGlyphs[bevelKey{side, n.HasClass("-scale-y-100")}]
		// The bevel shape is drawn in its own fill over the block colour.
		bg = ""
	case n.HasAttr("data-icon"):
		name, _ := n.Attr("data-icon")
		glyph = primitives.Glyph(primitives.IconName(name))
	default:
		return ""
	}
	return colored(fg, bg).Render(glyph)
}

func inherit(res, parent Resolved) Resolved {
	if res.Background == "" {
		res.Background = parent.Background
	}
	if res.Foreground == "" {
		res.Foreground = parent.Foreground
	}
	if res.Fill == "" {
		res.Fill = parent.Fill
	}
	if res.BorderColor == "" {
		res.BorderColor = parent.BorderColor
	}
	return res
}

func colored(fg, bg lipgloss.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if fg != "" {
		style = style.Foreground(fg)
	}
	if bg != "" {
		style = style.Background(bg)
	}
	return style
}
