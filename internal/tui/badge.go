package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cellbutton/internal/button"
	"github.com/alexisbeaulieu97/cellbutton/internal/catalog"
)

// badgeVariant specifies the visual style of a badge.
type badgeVariant int

const (
	badgeDefault badgeVariant = iota
	badgePrimary
	badgeWarning
	badgeError
	badgeInfo
)

var badgeBase = lipgloss.NewStyle().Padding(0, 1).MarginRight(1)

var badgeVariants = map[badgeVariant]lipgloss.Style{
	badgeDefault: badgeBase.Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")),
	badgePrimary: badgeBase.Foreground(lipgloss.Color("231")).Background(lipgloss.Color("62")),
	badgeWarning: badgeBase.Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214")),
	badgeError:   badgeBase.Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")),
	badgeInfo:    badgeBase.Foreground(lipgloss.Color("16")).Background(lipgloss.Color("45")),
}

// badge is a small status indicator shown next to the selected entry.
type badge struct {
	text    string
	variant badgeVariant
}

func (b badge) View() string {
	style, ok := badgeVariants[b.variant]
	if !ok {
		style = badgeVariants[badgeDefault]
	}
	return style.Render(b.text)
}

// entryBadges describes the entry's effective kind and theme followed by
// any state worth calling out.
func entryBadges(entry catalog.Entry) []badge {
	p := entry.Props().WithDefaults()
	badges := []badge{
		{text: string(p.Kind), variant: badgePrimary},
		{text: string(p.Theme)},
	}
	if p.Disabled {
		badges = append(badges, badge{text: "disabled", variant: badgeError})
	}
	if p.IsLoading {
		badges = append(badges, badge{text: "loading", variant: badgeWarning})
	}
	if p.IsLink() {
		badges = append(badges, badge{text: "→ " + p.Href, variant: badgeInfo})
	}
	if button.ResolveIconSlot(p) == button.SlotNamed {
		badges = append(badges, badge{text: "icon " + string(p.IconPosition)})
	}
	return badges
}

func renderBadges(badges []badge) string {
	views := make([]string, 0, len(badges))
	for _, b := range badges {
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
