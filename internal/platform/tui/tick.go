// Package tui provides the Bubble Tea integration for fractal playback.
// It draws the reveal surface with half-block characters, maps keys and
// mouse events to viewer actions, and serves the same flow over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one playback tick. ID ties the message to the
// viewer that scheduled it, so a stale tick chain from a closed viewer is
// dropped.
type TickMsg struct {
	Time time.Time
	ID   int64
}

// tickCmd returns a Bubble Tea command that sends a tick message at the specified rate.
func tickCmd(tickRate int, id int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
