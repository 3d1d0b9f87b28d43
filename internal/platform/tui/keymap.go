package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fractals/internal/core"
)

// ViewerKeyMap defines the key bindings of the fractal viewer.
type ViewerKeyMap struct {
	Quit     key.Binding
	Next     key.Binding
	Complete key.Binding
	Reset    key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Snapshot key.Binding
	Help     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ViewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Complete, k.ZoomIn, k.ZoomOut, k.Reset, k.Next, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k ViewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Complete, k.Next, k.Snapshot},
		{k.ZoomIn, k.ZoomOut, k.Reset},
		{k.Left, k.Right, k.Up, k.Down},
		{k.Help, k.Quit},
	}
}

// DefaultViewerKeyMap returns default key bindings.
func DefaultViewerKeyMap() ViewerKeyMap {
	return ViewerKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Next: key.NewBinding(
			key.WithKeys("esc", "n", "enter"),
			key.WithHelp("esc/n", "next level"),
		),
		Complete: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "finish drawing"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset view"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "pan left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "pan right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "pan up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "pan down"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save png"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// Action translates a key message to a viewer action. The help toggle is
// not an action and maps to ActionNone.
func (k ViewerKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Next):
		return core.ActionNextLevel
	case key.Matches(msg, k.Complete):
		return core.ActionComplete
	case key.Matches(msg, k.Reset):
		return core.ActionResetView
	case key.Matches(msg, k.ZoomIn):
		return core.ActionZoomIn
	case key.Matches(msg, k.ZoomOut):
		return core.ActionZoomOut
	case key.Matches(msg, k.Left):
		return core.ActionPanLeft
	case key.Matches(msg, k.Right):
		return core.ActionPanRight
	case key.Matches(msg, k.Up):
		return core.ActionPanUp
	case key.Matches(msg, k.Down):
		return core.ActionPanDown
	case key.Matches(msg, k.Snapshot):
		return core.ActionSnapshot
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLevelDown
	MenuActionLevelUp
	MenuActionSelect
	MenuActionHistory
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h", "-":
		return MenuActionLevelDown
	case "d", "right", "l", "+", "=":
		return MenuActionLevelUp
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionHistory
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
