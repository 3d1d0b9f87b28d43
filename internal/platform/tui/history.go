package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fractals/internal/registry"
	"github.com/vovakirdan/fractals/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the curve sidebar
	sidebarWidth       = 24  // Width of the curve sidebar
	maxRecords         = 100 // Max renders to load
)

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextCurve key.Binding
	PrevCurve key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextCurve, k.PrevCurve, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextCurve, k.PrevCurve},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextCurve: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next curve"),
		),
		PrevCurve: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev curve"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// historyTab is one entry of the curve selector. An empty ID means every
// curve.
type historyTab struct {
	ID    string
	Title string
}

// HistoryModel is the Bubble Tea model for the render history screen.
type HistoryModel struct {
	tabs        []historyTab
	tabCursor   int
	store       *storage.Store
	records     []storage.RenderRecord
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	tabs := []historyTab{{Title: "All curves"}}
	for _, c := range registry.List() {
		tabs = append(tabs, historyTab{ID: c.ID, Title: c.Title})
	}

	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		tabs:        tabs,
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.loadRecords()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Curve", Width: 11},
		{Title: "Level", Width: 5},
		{Title: "Mode", Width: 8},
		{Title: "Edges", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

// loadRecords loads the renders of the selected tab.
func (m *HistoryModel) loadRecords() {
	m.records, m.loadErr = nil, nil
	if m.store != nil {
		tab := m.tabs[m.tabCursor]
		if tab.ID == "" {
			m.records, m.loadErr = m.store.RecentRenders(maxRecords)
		} else {
			m.records, m.loadErr = m.store.RendersByCurve(tab.ID, maxRecords)
		}
	}
	m.table.SetRows(HistoryRows(m.records))
	m.table.GotoTop()
}

// HistoryRows formats records as table rows.
func HistoryRows(records []storage.RenderRecord) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			r.CurveID,
			fmt.Sprintf("%d", r.Level),
			r.Mode,
			fmt.Sprintf("%d", r.Edges),
			fmt.Sprintf("%.1fs", r.Elapsed.Seconds()),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextCurve):
			m.tabCursor = (m.tabCursor + 1) % len(m.tabs)
			m.loadRecords()
			return m, nil

		case key.Matches(msg, m.keys.PrevCurve):
			m.tabCursor = (m.tabCursor - 1 + len(m.tabs)) % len(m.tabs)
			m.loadRecords()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(HistoryRows(m.records))
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages (scrolling) to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "RENDER HISTORY - " + m.tabs[m.tabCursor].Title
	b.WriteString(menuTitleStyle.MarginBottom(1).Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if m.showSidebar {
		sidebar := boxStyle.Width(sidebarWidth).Render(m.renderSidebar())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", boxStyle.Render(m.renderTableContent())))
	} else {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.tabs[m.tabCursor].Title), m.width))
		b.WriteString("\n\n")
		b.WriteString(boxStyle.Render(m.renderTableContent()))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderSidebar lists the curve tabs.
func (m HistoryModel) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString("Curves\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	for i, tab := range m.tabs {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.tabCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sb.WriteString(style.Render(cursor + tab.Title))
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("History is unavailable: no database.")
	case m.loadErr != nil:
		return emptyStyle.Render("Cannot load history:\n" + m.loadErr.Error())
	case len(m.records) == 0:
		return emptyStyle.Render("No renders recorded yet.\nShow or export a curve to start the history!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}
