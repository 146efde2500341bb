package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	entryStyle    = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("99"))
	labelStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).MarginTop(1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).MarginTop(1)
	helpStyle   = lipgloss.NewStyle().MarginTop(1)

	darkCanvas = lipgloss.NewStyle().Background(lipgloss.Color("#0E0E0E"))
)
