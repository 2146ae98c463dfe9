package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ball-chamber/internal/storage"
)

// maxSlots is how many slots the browser lists.
const maxSlots = 100

// SlotsKeyMap defines the key bindings for the slot browser.
type SlotsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SlotsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SlotsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Delete, k.Back, k.Quit},
	}
}

// DefaultSlotsKeyMap returns default key bindings.
func DefaultSlotsKeyMap() SlotsKeyMap {
	return SlotsKeyMap{
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
			key.WithHelp("enter", "load"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "tab", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SlotsModel lists the save slots and lets the user pick one.
type SlotsModel struct {
	store     *storage.Store
	entries   []storage.SlotEntry
	table     table.Model
	help      help.Model
	keys      SlotsKeyMap
	width     int
	height    int
	chosen    string
	quitting  bool
	goingBack bool
}

// NewSlotsModel creates a slot browser. store may be nil.
func NewSlotsModel(store *storage.Store, width, height int) SlotsModel {
	m := SlotsModel{
		store:  store,
		help:   help.New(),
		keys:   DefaultSlotsKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table sized to the model.
func (m *SlotsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Slot", Width: 16},
		{Title: "Count", Width: 6},
		{Title: "Saved", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-6, 3)), // Leave room for title and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Reload refreshes the slot list from storage.
func (m SlotsModel) Reload() SlotsModel {
	m.entries = nil
	if m.store != nil {
		if entries, err := m.store.ListSlots(maxSlots); err == nil {
			m.entries = entries
		}
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			e.Name,
			fmt.Sprintf("%03d", e.NumBalls),
			e.CreatedAt.Format("Jan 02 15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
	return m
}

// Resize rebuilds the table for a new terminal size.
func (m SlotsModel) Resize(width, height int) SlotsModel {
	m.width = width
	m.height = height
	m.help.Width = width
	m.table = m.createTable()
	return m.Reload()
}

// Reset clears the outcome of the last browse.
func (m SlotsModel) Reset() SlotsModel {
	m.chosen = ""
	m.goingBack = false
	return m
}

// Update handles keys for the browser.
func (m SlotsModel) Update(msg tea.Msg) (SlotsModel, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.entries) {
				m.chosen = m.entries[i].Name
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if i := m.table.Cursor(); m.store != nil && i >= 0 && i < len(m.entries) {
				//nolint:errcheck // Best-effort delete, list is reloaded either way
				m.store.DeleteSlot(m.entries[i].Name)
			}
			return m.Reload(), nil
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Chosen returns the slot picked with enter, if any.
func (m SlotsModel) Chosen() (string, bool) {
	return m.chosen, m.chosen != ""
}

// IsGoingBack returns true if the user left the browser.
func (m SlotsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m SlotsModel) IsQuitting() bool {
	return m.quitting
}

// View renders the browser.
func (m SlotsModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("SAVE SLOTS"))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No saves yet.\nPress s in the chamber to save.")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}
