package button

import (
	cn "github.com/alexisbeaulieu97/cellbutton/internal/classnames"
	"github.com/alexisbeaulieu97/cellbutton/internal/markup"
	"github.com/alexisbeaulieu97/cellbutton/internal/primitives"
)

// IconSlot names what occupies the icon position.
type IconSlot string

const (
	SlotSpinner IconSlot = "spinner"
	SlotNamed   IconSlot = "named"
	SlotCustom  IconSlot = "custom"
	SlotNone    IconSlot = "none"
)

// DefaultIcon is used by cell buttons that do not name an icon.
const DefaultIcon = primitives.IconArrowRight

type slotRule struct {
	slot IconSlot
	when func(Props) bool
}

// Evaluated top to bottom; the first match wins.
var iconSlotRules = []slotRule{
	{SlotSpinner, func(p Props) bool { return p.IsLoading }},
	{SlotNamed, func(p Props) bool { return p.Icon != "" || p.Kind == KindCell }},
	{SlotCustom, func(p Props) bool { return p.IconOptions.Custom != nil }},
}

// ResolveIconSlot decides which icon content a button shows. p should
// already have defaults applied.
func ResolveIconSlot(p Props) IconSlot {
	for _, rule := range iconSlotRules {
		if rule.when(p) {
			return rule.slot
		}
	}
	return SlotNone
}

func iconElement(p Props, kit Kit, label cn.Fragment) *markup.Node {
	switch ResolveIconSlot(p) {
	case SlotSpinner:
		return kit.Spinners.Spinner()
	case SlotNamed:
		name := p.Icon
		if name == "" {
			name = DefaultIcon
		}
		kind := p.IconOptions.Kind
		if kind == "" {
			kind = primitives.IconKindOutline
		}
		return kit.Icons.Icon(name, kind, cn.Merge(label, p.IconOptions.ClassName))
	case SlotCustom:
		return p.IconOptions.Custom
	default:
		return nil
	}
}

func labelElement(p Props, kit Kit, label cn.Fragment) *markup.Node {
	switch {
	case p.Label != "":
		return kit.Texts.Text(p.Label, label)
	case p.LabelNode != nil:
		return p.LabelNode
	case len(p.Children) > 0:
		return markup.Fragment(p.Children...)
	default:
		return nil
	}
}
