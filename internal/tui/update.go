package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clamp()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case CatalogReloadedMsg:
		if msg.Catalog != nil {
			m.cat = msg.Catalog
			m.errorMsg = ""
			m.status = "catalog reloaded"
			m.clamp()
		}
		return m, nil

	case CatalogErrorMsg:
		if msg.Err != nil {
			m.errorMsg = msg.Err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor--
			m.clamp()
		case key.Matches(msg, m.keys.Down):
			m.cursor++
			m.clamp()
		case key.Matches(msg, m.keys.Dark):
			m.dark = !m.dark
		case key.Matches(msg, m.keys.Click):
			m.status = m.click()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil
	}

	return m, nil
}
