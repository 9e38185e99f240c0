// Package tui provides the Bubble Tea integration for the pinball game:
// the terminal UI loop, key mapping, screen rendering, the scoreboard, and
// the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation tick. It carries the wall-clock time so
// the model can measure real elapsed time between frames; the simulation
// normalizes that, not the platform.
type TickMsg time.Time

// tickCmd returns a command that sends tick messages at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
