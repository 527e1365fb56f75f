// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, the fixed-timestep
// simulation clock, and SSH serving via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// renderRate is how many frame messages per second drive the UI loop.
// The simulation itself runs at the configured FPS; the accumulator in
// Model decides how many simulation steps each frame carries.
const renderRate = 60

// FrameMsg is sent to trigger a render frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// render rate.
func frameCmd() tea.Cmd {
	interval := time.Second / time.Duration(renderRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
