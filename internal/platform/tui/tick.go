// Package tui provides the Bubble Tea driver for the platformer.
// It handles the terminal UI loop, input mapping, overlays and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// dismissMsg hides the checkpoint overlay it was scheduled for.
type dismissMsg struct {
	seq int
}

// dismissCmd schedules the dismissal of overlay seq after d.
func dismissCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return dismissMsg{seq: seq}
	})
}
