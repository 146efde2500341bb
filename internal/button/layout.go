package button

import (
	cn "github.com/alexisbeaulieu97/cellbutton/internal/classnames"
	"github.com/alexisbeaulieu97/cellbutton/internal/markup"
)

const (
	hoverTransition cn.Fragment = "duration-400 transition-spacing ease-in-out"
	cellBase        cn.Fragment = "flex h-cell-button items-center group"
)

// labelSlide is the padding that shrinks on hover so the label slides toward
// the icon.
var labelSlide = map[IconPosition]cn.Fragment{
	IconStart: "pl-4 group-hover:pl-2 group-hover:pr-2",
	IconEnd:   "pr-4 group-hover:pr-2 group-hover:pl-2",
}

// StandardLayout arranges icon and label for every kind except cell.
func StandardLayout(label, icon *markup.Node, disabled, animate bool, position IconPosition) []*markup.Node {
	var wrapperClass cn.Fragment
	if animate && icon != nil && !disabled {
		wrapperClass = cn.Merge(hoverTransition, labelSlide[position])
	}
	wrapper := markup.El("div", label).SetClass(wrapperClass)

	if position == IconEnd {
		return compact(wrapper, icon)
	}
	return compact(icon, wrapper)
}

// CellLayout builds the slanted cell shape: an icon block and a label block
// joined by a pair of bevel shapes. animate must already account for the
// disabled state.
func CellLayout(theme Theme, icon, label *markup.Node, animate bool, position IconPosition, disabled bool) *markup.Node {
	isEnd := position == IconEnd

	element := cn.Merge(
		cellBase,
		ButtonStyle(KindCell, theme, disabled),
		"-mx-0.5",
		cn.If(animate, hoverTransition),
		cn.If(animate && isEnd, "group-hover:pl-2"),
		cn.If(animate && !isEnd, "group-hover:pr-2"),
	)

	accent := CellAccentStyle(theme, disabled)
	bevels := markup.Fragment(
		Bevel(BevelRight, accent, isEnd),
		Bevel(BevelLeft, accent, isEnd),
	)

	iconBlock := markup.El("div", icon).SetClass(cn.Merge(
		element,
		cn.If(!isEnd, "rounded-l-md pl-2"),
		cn.If(isEnd, "rounded-r-md pr-2"),
	))

	labelBlock := markup.El("div", label).SetClass(cn.Merge(
		element,
		"px-1",
		cn.If(!isEnd, "rounded-r-md pr-4"),
		cn.If(isEnd, "rounded-l-md pl-4"),
	))

	outer := markup.El("div").SetClass(cn.Merge(cellBase, "ml-0.5"))
	if isEnd {
		outer.Children = []*markup.Node{labelBlock, bevels, iconBlock}
	} else {
		outer.Children = []*markup.Node{iconBlock, bevels, labelBlock}
	}
	return outer
}

func compact(nodes ...*markup.Node) []*markup.Node {
	out := make([]*markup.Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
