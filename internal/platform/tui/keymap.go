package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ball-chamber/internal/core"
)

// KeyMap defines the key bindings of the chamber viewer.
type KeyMap struct {
	AddBall    key.Binding
	RemoveBall key.Binding
	Save       key.Binding
	Load       key.Binding
	Reset      key.Binding
	Pause      key.Binding
	Slots      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddBall, k.RemoveBall, k.Save, k.Load, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddBall, k.RemoveBall, k.Reset, k.Pause},
		{k.Save, k.Load, k.Slots},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddBall: key.NewBinding(
			key.WithKeys("a", "+", "="),
			key.WithHelp("a/+", "add ball"),
		),
		RemoveBall: key.NewBinding(
			key.WithKeys("x", "-"),
			key.WithHelp("x/-", "remove ball"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Load: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "load"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "respawn"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p/space", "pause"),
		),
		Slots: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "save slots"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a chamber action.
// Keys that only affect the viewer (help, slots) map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.AddBall):
		return core.ActionAddBall
	case key.Matches(msg, k.RemoveBall):
		return core.ActionRemoveBall
	case key.Matches(msg, k.Save):
		return core.ActionSave
	case key.Matches(msg, k.Load):
		return core.ActionLoad
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := k.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return action == core.ActionQuit
}
