// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// ID names the model whose tick chain produced it.
type TickMsg struct {
	Time time.Time
	ID   int
}

var lastTickID atomic.Int64

// nextTickID returns a tick chain ID unique within the process.
func nextTickID() int {
	return int(lastTickID.Add(1))
}

// tickCmd returns a Bubble Tea command that sends one tick message after the
// given interval. Each handled tick schedules the next one, so frames never
// overlap.
func tickCmd(interval time.Duration, id int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
