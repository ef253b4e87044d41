// Package tui runs the arcade in a terminal: the game loop, the menus,
// the scoreboard and the SSH server that serves all of them remotely.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

// TickMsg drives one fixed simulation step.
type TickMsg time.Time

// tickInterval is the wall time of one simulation step.
func tickInterval(cfg core.RuntimeConfig) time.Duration {
	return time.Duration(cfg.TickMillis() * float64(time.Millisecond))
}

// tickCmd schedules the next simulation step.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(tickInterval(cfg), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
