package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ball-chamber/internal/core"
	"github.com/vovakirdan/ball-chamber/internal/sim"
	"github.com/vovakirdan/ball-chamber/internal/storage"
)

// Viewer layout constants
const (
	defaultWidth  = 60
	defaultHeight = 24
	chromeLines   = 3 // header, status, help
)

// DefaultSlot is the save slot used when none is given.
const DefaultSlot = "quick"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model that drives and previews one chamber.
type Model struct {
	driver     *sim.Driver
	store      *storage.Store
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	slots      SlotsModel
	showSlots  bool
	slot       string
	status     string
	inputFrame core.InputFrame
	width      int
	height     int
	quitting   bool
}

// NewModel creates a viewer for driver. store may be nil, in which case
// saving and loading report an error in the status line.
func NewModel(driver *sim.Driver, store *storage.Store, slot string) Model {
	if slot == "" {
		slot = DefaultSlot
	}
	m := Model{
		driver:     driver,
		store:      store,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		slot:       slot,
		inputFrame: core.NewInputFrame(),
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.screen = core.NewScreen(m.previewSize())
	m.slots = NewSlotsModel(store, m.width, m.height)
	return m
}

// previewSize returns the screen area left for the canvas preview.
func (m Model) previewSize() (int, int) {
	return core.Max(m.width, 1), core.Max(m.height-chromeLines, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.driver.Config().TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showSlots {
			return m.updateSlots(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(m.previewSize())
		m.help.Width = msg.Width
		m.slots = m.slots.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input while the chamber is shown.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Slots):
		m.slots = m.slots.Reload()
		m.showSlots = true
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// updateSlots forwards keys to the slot browser and applies its choice.
func (m Model) updateSlots(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.slots, cmd = m.slots.Update(msg)

	if m.slots.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if name, ok := m.slots.Chosen(); ok {
		m.slot = name
		m.load()
		m.showSlots = false
		m.slots = m.slots.Reset()
	} else if m.slots.IsGoingBack() {
		m.showSlots = false
		m.slots = m.slots.Reset()
	}
	return m, cmd
}

// handleTick applies this frame's input and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionSave) {
		m.save()
	}
	if m.inputFrame.Has(core.ActionLoad) {
		m.load()
	}

	m.driver.Apply(m.inputFrame)
	m.driver.Tick()

	m.inputFrame.Clear()
	return m, tickCmd(m.driver.Config().TickRate)
}

// save stores the current counter in the active slot.
func (m *Model) save() {
	if m.store == nil {
		m.status = "no save database"
		return
	}
	data := m.driver.Snapshot()
	if _, err := m.store.SaveSlot(m.slot, data); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("saved %d to %q", data[0], m.slot)
}

// load restores the counter from the active slot.
func (m *Model) load() {
	if m.store == nil {
		m.status = "no save database"
		return
	}
	e, err := m.store.LatestSlot(m.slot)
	if err != nil {
		m.status = err.Error()
		return
	}
	if e == nil {
		m.status = fmt.Sprintf("slot %q is empty", m.slot)
		return
	}
	if err := m.driver.Restore(e.Data); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("loaded %d from %q", e.NumBalls, m.slot)
}

// Status returns the last status line message.
func (m Model) Status() string {
	return m.status
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showSlots {
		return m.slots.View()
	}

	cfg := m.driver.Config()
	pix := m.driver.Render()
	DrawCanvas(m.screen, pix, cfg.CanvasW, cfg.CanvasH)
	DrawBalls(m.screen, m.driver.Physics().Balls()[:m.driver.Active()], cfg.CanvasW, cfg.CanvasH)

	stats := m.driver.Stats()
	header := fmt.Sprintf("count %03d  balls %d/%d  tick %d  slot %s",
		stats.NumBalls, stats.Active, cfg.MaxBalls, stats.Tick, m.slot)
	if m.driver.Paused() {
		header += "  [paused]"
		DrawPaused(m.screen)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program for driver.
func Run(driver *sim.Driver, store *storage.Store, slot string) error {
	model := NewModel(driver, store, slot)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
