package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cellbutton/internal/button"
	"github.com/alexisbeaulieu97/cellbutton/internal/ui/preview"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	sections = append(sections, titleStyle.Render(fmt.Sprintf("cellbutton • %s", m.title())))
	mode := "light"
	if m.dark {
		mode = "dark"
	}
	sections = append(sections, subtitleStyle.Render(fmt.Sprintf("%d buttons · %s mode", len(m.entries()), mode)))

	entries := m.entries()
	end := min(len(entries), m.offset+m.pageSize())
	for i := m.offset; i < end; i++ {
		sections = append(sections, m.renderEntry(i))
	}
	if len(entries) == 0 {
		sections = append(sections, subtitleStyle.Render("catalog is empty"))
	}

	if m.errorMsg != "" {
		sections = append(sections, errorStyle.Render(m.errorMsg))
	} else if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}

	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderEntry(i int) string {
	entry := m.entries()[i]
	selected := i == m.cursor

	ctx := preview.DefaultContext()
	ctx.Hover = selected
	ctx.Dark = m.dark
	ctx.Width = max(20, m.width-6)
	ctx.SpinnerFrame = strings.TrimSpace(m.spinner.View())

	rendered := preview.Render(button.Render(entry.Props()), ctx)
	if m.dark {
		rendered = darkCanvas.Render(rendered)
	}

	label := labelStyle.Render(entry.Title())
	style := entryStyle
	if selected {
		label = lipgloss.JoinHorizontal(lipgloss.Top,
			selectedLabelStyle.Render(entry.Title()), " ", renderBadges(entryBadges(entry)))
		style = selectedStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, label, rendered))
}

func (m Model) title() string {
	if m.cat != nil && strings.TrimSpace(m.cat.Name) != "" {
		return m.cat.Name
	}
	return "Buttons"
}
