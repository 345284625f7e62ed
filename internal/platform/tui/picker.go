package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wordsnow/internal/words"
)

// Picker layout constants
const (
	pickerChrome   = 7 // Title, header border, help and margins
	nameColumnMin  = 16
	nameColumnMax  = 32
	countColumnLen = 7
)

// PickerKeyMap defines the key bindings for the category picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PickerModel is the Bubble Tea model for the category picker.
type PickerModel struct {
	catalog  *words.Catalog
	names    []string
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	width    int
	height   int
	quitting bool
	selected *string
}

// NewPickerModel creates a picker over the catalog's categories with the
// cursor on current, if present.
func NewPickerModel(catalog *words.Catalog, width, height int, current string) PickerModel {
	h := help.New()
	h.Width = width

	m := PickerModel{
		catalog: catalog,
		names:   catalog.Categories(),
		keys:    DefaultPickerKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()

	for i, name := range m.names {
		if name == current {
			m.table.SetCursor(i)
			break
		}
	}
	return m
}

// createTable creates a new table sized to the viewport.
func (m *PickerModel) createTable() table.Model {
	nameWidth := m.width - countColumnLen - 8
	nameWidth = max(nameColumnMin, min(nameWidth, nameColumnMax))

	columns := []table.Column{
		{Title: "Category", Width: nameWidth},
		{Title: "Words", Width: countColumnLen},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(1, m.height-pickerChrome)),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("25")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the catalog.
func (m *PickerModel) updateTableRows() {
	rows := make([]table.Row, len(m.names))
	for i, name := range m.names {
		rows[i] = table.Row{name, fmt.Sprintf("%d", len(m.catalog.Words(name)))}
	}
	m.table.SetRows(rows)
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			name := ""
			if i := m.table.Cursor(); i >= 0 && i < len(m.names) {
				name = m.names[i]
			}
			m.selected = &name
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("117")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("W O R D S   S N O W", m.width)))
	b.WriteString("\n")

	if len(m.names) == 0 {
		b.WriteString(centerText("No word categories available", m.width))
		b.WriteString("\n\n")
	} else {
		tableView := m.table.View()
		pad := max(0, (m.width-lipgloss.Width(tableView))/2)
		b.WriteString(lipgloss.NewStyle().MarginLeft(pad).Render(tableView))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

// Selected returns the chosen category, or nil if none was chosen.
// An empty catalog selects the empty name.
func (m PickerModel) Selected() *string {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
