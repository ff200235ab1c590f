// Package tui provides the Bubble Tea integration for the RPG runtime.
// It handles the terminal UI loop, key-hold tracking, menus and the SSH
// server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDt caps the simulated step after a stall so nothing tunnels
// through walls.
const maxFrameDt = 0.1

// TickMsg is sent to trigger a simulation frame.
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

// frameDt converts the gap between two ticks into seconds, falling back to
// the nominal step for the first frame.
func frameDt(last, now time.Time, nominal float64) float64 {
	if last.IsZero() || !now.After(last) {
		return nominal
	}
	return min(now.Sub(last).Seconds(), maxFrameDt)
}
