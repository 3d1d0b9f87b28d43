package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fractals/internal/core"
	"github.com/vovakirdan/fractals/internal/storage"
)

// SessionConfig wires a session to its collaborators.
type SessionConfig struct {
	Store    *storage.Store
	Launcher Launcher
	Items    []MenuItem
	Mode     string
	Renderer *lipgloss.Renderer
	Logger   *log.Logger
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenViewer
	screenHistory
)

// SessionModel manages the full flow: menu -> viewer or history -> menu.
// It is the top-level model for SSH sessions and the local menu command.
type SessionModel struct {
	sc       SessionConfig
	config   core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	viewer   ViewerModel
	history  HistoryModel
	notice   string
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(sc SessionConfig, cfg core.RuntimeConfig) SessionModel {
	if sc.Logger == nil {
		sc.Logger = log.Default()
	}
	return SessionModel{
		sc:     sc,
		config: cfg,
		menu:   NewMenuModel(sc.Items, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenViewer:
		return m.updateViewer(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsHistory():
		m.history = NewHistoryModel(m.sc.Store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenHistory
		return m, m.history.Init()

	case m.menu.Selected() != nil:
		selected := *m.menu.Selected()
		opts, err := m.sc.Launcher(selected.CurveID, selected.Level)
		if err != nil {
			m.sc.Logger.Error("cannot launch viewer", "curve", selected.CurveID, "err", err)
			m.notice = err.Error()
			m.resetMenu()
			return m, nil
		}
		opts.Store = m.sc.Store
		opts.Mode = m.sc.Mode
		opts.Renderer = m.sc.Renderer
		opts.Logger = m.sc.Logger

		m.notice = ""
		m.viewer = NewViewerModel(opts, m.config)
		m.viewer.embedded = true
		m.screen = screenViewer
		return m, m.viewer.Init()
	}

	return m, cmd
}

// resetMenu returns to a fresh menu keeping the picked levels.
func (m *SessionModel) resetMenu() {
	m.menu = NewMenuModel(m.menu.Items(), m.config)
	m.screen = screenMenu
}

// updateViewer handles updates when a curve is shown.
func (m SessionModel) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.viewer.Update(msg)
	if viewer, ok := newModel.(ViewerModel); ok {
		m.viewer = viewer
	}

	if m.viewer.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.viewer.BackToMenu() {
		m.resetMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

// updateHistory handles updates when the history is shown.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if history, ok := newModel.(HistoryModel); ok {
		m.history = history
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.history.IsGoingBack() {
		m.resetMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenViewer:
		return m.viewer.View()
	case screenHistory:
		return m.history.View()
	}
	if m.notice != "" {
		return m.menu.View() + "\n" + errorStyle.Render(m.notice)
	}
	return m.menu.View()
}

// RunSession runs the interactive menu flow in the local terminal.
func RunSession(sc SessionConfig, cfg core.RuntimeConfig) error {
	if sc.Mode == "" {
		sc.Mode = storage.ModeTerminal
	}
	p := tea.NewProgram(
		NewSessionModel(sc, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
