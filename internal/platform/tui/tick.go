// Package tui runs the water games in a terminal with Bubble Tea, locally
// or behind an SSH server. It owns timing, input mapping and the
// scoreboard; games only simulate and draw.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances one game by a tick. Each model runs its own chain of
// ticks; a tick from another chain is dropped, so a model left and
// re-entered inside an SSH session never runs two loops.
type TickMsg struct {
	Time  time.Time
	chain int64
}

var lastChain atomic.Int64

func nextChain() int64 {
	return lastChain.Add(1)
}

// tickCmd schedules the next tick of chain at the given rate.
func tickCmd(tickRate int, chain int64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, chain: chain}
	})
}
