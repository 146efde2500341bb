package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cellbutton/internal/button"
	"github.com/alexisbeaulieu97/cellbutton/internal/catalog"
)

// CatalogReloadedMsg replaces the browsed catalog, typically after the file
// changed on disk.
type CatalogReloadedMsg struct {
	Catalog *catalog.Catalog
}

// CatalogErrorMsg reports a catalog that failed to reload.
type CatalogErrorMsg struct {
	Err error
}

// Options configures the browser.
type Options struct {
	Dark bool
}

// Model is the bubbletea state of the catalog browser.
type Model struct {
	cat    *catalog.Catalog
	cursor int
	offset int
	dark   bool

	status   string
	errorMsg string

	spinner spinner.Model
	keys    keyMap
	help    help.Model

	width  int
	height int
}

// NewModel creates a browser over cat.
func NewModel(cat *catalog.Catalog, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = lipgloss.NewStyle()

	return Model{
		cat:     cat,
		dark:    opts.Dark,
		spinner: s,
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   80,
		height:  24,
	}
}

// Init starts the spinner used by loading buttons.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Cursor returns the index of the highlighted entry.
func (m Model) Cursor() int {
	return m.cursor
}

// Dark reports whether dark mode is on.
func (m Model) Dark() bool {
	return m.dark
}

// Status returns the last action message.
func (m Model) Status() string {
	return m.status
}

func (m Model) entries() []catalog.Entry {
	if m.cat == nil {
		return nil
	}
	return m.cat.Buttons
}

func (m Model) selected() (catalog.Entry, bool) {
	entries := m.entries()
	if m.cursor < 0 || m.cursor >= len(entries) {
		return catalog.Entry{}, false
	}
	return entries[m.cursor], true
}

// pageSize is how many entries fit on screen, assuming the tallest
// (bordered) button.
func (m Model) pageSize() int {
	return max(1, (m.height-6)/5)
}

func (m *Model) clamp() {
	n := len(m.entries())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	page := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
	m.offset = max(0, min(m.offset, max(0, n-page)))
}

// click activates the selected button and describes what happened.
func (m Model) click() string {
	entry, ok := m.selected()
	if !ok {
		return "nothing selected"
	}

	var events []string
	props := entry.Props()
	props.OnClick = func() { events = append(events, "clicked "+entry.ID) }
	node := button.Render(props, button.WithNavigator(func(href string) {
		events = append(events, "navigated to "+href)
	}))

	if !node.Click() {
		return entry.ID + " is disabled"
	}
	return strings.Join(events, ", ")
}
