package tui

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fractals/internal/core"
	"github.com/vovakirdan/fractals/internal/playback"
	"github.com/vovakirdan/fractals/internal/raster"
	"github.com/vovakirdan/fractals/internal/scene"
	"github.com/vovakirdan/fractals/internal/storage"
)

// Rows reserved above and below the drawing.
const (
	statusRows = 1
	helpRows   = 1
)

// ViewerOptions describes what a viewer shows and how.
type ViewerOptions struct {
	CurveID   string
	Levels    []int
	Build     scene.Builder
	Pacing    playback.Pacing
	Playback  playback.Options // Width and Height are the window size Padding was set for
	ColorName string
	Store     *storage.Store
	Mode      string // history mode, storage.ModeTerminal by default
	Logger    *log.Logger
	Renderer  *lipgloss.Renderer // nil for the local terminal
}

// ViewerModel is the Bubble Tea model that plays fractal levels in the
// terminal, one after the other.
type ViewerModel struct {
	opts     ViewerOptions
	config   core.RuntimeConfig
	keys     ViewerKeyMap
	help     help.Model
	screen   *core.Screen
	frame    *image.RGBA
	input    core.InputFrame
	tickID   int64
	embedded bool

	levelIdx int
	scene    *scene.Scene
	ctrl     *playback.Controller
	started  time.Time
	saved    bool
	err      error
	notice   string

	dragging   bool
	dragX      int
	dragY      int
	quitting   bool
	backToMenu bool
}

// tickSeq hands out tick chain IDs. SSH sessions create viewers
// concurrently.
var tickSeq atomic.Int64

// NewViewerModel creates a viewer for the configured levels. The first level
// is generated immediately.
func NewViewerModel(opts ViewerOptions, cfg core.RuntimeConfig) ViewerModel {
	if opts.Mode == "" {
		opts.Mode = storage.ModeTerminal
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	h := help.New()
	h.Width = cfg.ScreenW

	m := ViewerModel{
		opts:   opts,
		config: cfg,
		keys:   DefaultViewerKeyMap(),
		help:   h,
		input:  core.NewInputFrame(),
		tickID: tickSeq.Add(1),
	}
	m.loadLevel(0)
	return m
}

// surfaceSize returns the pixel size of the drawing area.
func (m *ViewerModel) surfaceSize() (int, int) {
	w := max(m.config.ScreenW, 1)
	h := max(2*(m.config.ScreenH-statusRows-helpRows), 2)
	return w, h
}

// loadLevel generates level index i and starts its reveal.
func (m *ViewerModel) loadLevel(i int) {
	m.levelIdx = i
	m.scene, m.ctrl, m.err = nil, nil, nil
	if i >= len(m.opts.Levels) {
		return
	}

	sc, err := m.opts.Build(m.opts.Levels[i])
	if err != nil {
		m.err = err
		m.opts.Logger.Error("cannot generate level", "curve", m.opts.CurveID, "level", m.opts.Levels[i], "err", err)
		return
	}
	m.scene = sc
	m.started = time.Now()
	m.saved = false
	m.restart()
}

// restart fits the current scene to the terminal and starts a new reveal.
func (m *ViewerModel) restart() {
	if m.scene == nil {
		return
	}
	w, h := m.surfaceSize()
	po := m.opts.Playback
	po.Width, po.Height = w, h
	po.Padding = terminalPadding(m.opts.Playback, w, h)
	pacing := m.opts.Pacing
	pacing.FPS = m.config.TickRate
	po.EdgesPerFrame = pacing.Interactive(m.scene.N())

	m.ctrl = playback.New(m.scene, po)
	m.frame = image.NewRGBA(image.Rect(0, 0, w, h))
	if m.screen == nil {
		m.screen = core.NewScreen(w, h/2, po.Background)
	} else {
		m.screen.Resize(w, h/2)
	}
}

// terminalPadding scales the padding configured for a window of
// o.Width x o.Height down to a w x h terminal surface, keeping at least half
// of each axis for the curve.
func terminalPadding(o playback.Options, w, h int) float64 {
	p := o.Padding
	if p <= 0 {
		p = 2
	} else if o.Width > 0 && o.Height > 0 {
		p *= math.Min(float64(w)/float64(o.Width), float64(h)/float64(o.Height))
	}
	return core.ClampF(p, 0, float64(min(w, h))/4)
}

// Init starts the tick loop.
func (m ViewerModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		// Resizing restarts the reveal of the current level
		m.restart()
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m ViewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNextLevel:
		return m.nextLevel()
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

// nextLevel closes the current level. After the last one the viewer ends.
func (m ViewerModel) nextLevel() (tea.Model, tea.Cmd) {
	m.record()
	m.loadLevel(m.levelIdx + 1)
	if m.levelIdx < len(m.opts.Levels) {
		return m, nil
	}
	if m.embedded {
		m.backToMenu = true
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

// toPixel converts a terminal cell position to surface pixels.
func toPixel(x, y int) (float64, float64) {
	return float64(x) + 0.5, float64(2*(y-statusRows)) + 1
}

// handleMouse implements drag to pan and wheel to zoom at the cursor.
func (m ViewerModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ctrl == nil {
		return m, nil
	}
	px, py := toPixel(msg.X, msg.Y)

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.ctrl.ZoomAt(m.ctrl.ZoomStep(), px, py)
	case msg.Button == tea.MouseButtonWheelDown:
		m.ctrl.ZoomAt(1/m.ctrl.ZoomStep(), px, py)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dragging, m.dragX, m.dragY = true, msg.X, msg.Y
	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.ctrl.Pan(float64(msg.X-m.dragX), float64(2*(msg.Y-m.dragY)))
		m.dragX, m.dragY = msg.X, msg.Y
	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
	}
	return m, nil
}

// handleTick drains the input of this tick, advances playback and schedules
// the next tick.
func (m ViewerModel) handleTick() (tea.Model, tea.Cmd) {
	if m.ctrl != nil {
		if m.input.Has(core.ActionSnapshot) {
			m.snapshot()
		}
		m.ctrl.Apply(m.input)
		m.ctrl.Tick()
		if m.ctrl.Phase() == playback.PhaseIdle {
			m.record()
		}
	}
	m.input.Clear()
	return m, tickCmd(m.config.TickRate, m.tickID)
}

// record saves the finished level to the history once.
func (m *ViewerModel) record() {
	if m.saved || m.scene == nil || m.ctrl == nil || m.ctrl.Phase() != playback.PhaseIdle {
		return
	}
	m.saved = true
	if m.opts.Store == nil {
		return
	}
	w, h := m.ctrl.Size()
	_, err := m.opts.Store.SaveRender(storage.RenderRecord{
		CurveID: m.opts.CurveID,
		Level:   m.scene.Level,
		Mode:    m.opts.Mode,
		Edges:   m.scene.N(),
		Width:   w,
		Height:  h,
		Colors:  m.opts.ColorName,
		Elapsed: time.Since(m.started),
	})
	if err != nil {
		m.opts.Logger.Warn("could not save render", "err", err)
	}
}

// snapshot saves the current frame to ~/.fractals/snapshots.
func (m *ViewerModel) snapshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.notice = "snapshot failed: no home directory"
		return
	}
	m.ctrl.Compose(m.frame)
	name := fmt.Sprintf("%s_level%d_%s.png", m.opts.CurveID, m.scene.Level, time.Now().Format("20060102_150405"))
	path := filepath.Join(home, ".fractals", "snapshots", name)
	if err := raster.WritePNG(path, m.frame); err != nil {
		m.notice = "snapshot failed"
		m.opts.Logger.Warn("snapshot failed", "err", err)
		return
	}
	m.notice = "saved " + path
}

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1, 2)
)

// statusLine describes the level and playback state.
func (m ViewerModel) statusLine() string {
	if m.ctrl == nil {
		return ""
	}
	parts := []string{
		m.scene.Label(),
		fmt.Sprintf("%d/%d edges", m.ctrl.Drawn(), m.ctrl.Total()),
		m.ctrl.Phase().String(),
	}
	if m.ctrl.Phase() == playback.PhaseIdle {
		parts = append(parts, fmt.Sprintf("zoom %.2fx", m.ctrl.View().Zoom))
	}
	if m.notice != "" {
		parts = append(parts, m.notice)
	}
	if n := len(m.opts.Levels); n > 1 {
		parts = append(parts, fmt.Sprintf("%d of %d", m.levelIdx+1, n))
	}
	return statusStyle.Render(parts[0]) + dimStyle.Render("  "+strings.Join(parts[1:], "  |  "))
}

// View renders the current state to a string for display.
func (m ViewerModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Cannot show level %d: %v", m.opts.Levels[m.levelIdx], m.err)) +
			"\n" + dimStyle.Render(m.help.View(m.keys))
	}
	if m.ctrl == nil {
		return ""
	}

	m.ctrl.Compose(m.frame)
	m.screen.Clear()
	Rasterize(m.frame, m.screen, 0)

	var b strings.Builder
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen, m.opts.Renderer))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsQuitting returns true if the user requested to quit entirely.
func (m ViewerModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true when an embedded viewer has shown every level.
func (m ViewerModel) BackToMenu() bool {
	return m.backToMenu
}

// RunViewer starts a standalone Bubble Tea program showing every level.
func RunViewer(opts ViewerOptions, cfg core.RuntimeConfig) error {
	model := NewViewerModel(opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag to pan, wheel to zoom
	)

	_, err := p.Run()
	return err
}
