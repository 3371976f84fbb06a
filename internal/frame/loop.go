// Package frame schedules the per-frame navigation tick inside a Bubble Tea
// program.
//
// A Loop hands out tea.Cmds that fire one TickMsg after the configured
// interval. Each message carries the generation it was scheduled under;
// Stop bumps the generation, so a tick already in flight when the loop stops
// is dropped on arrival instead of restarting the chain.
package frame

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is one frame at 60Hz.
const DefaultInterval = time.Second / 60

// TickMsg is delivered once per frame while the loop runs.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// Loop is a restartable frame scheduler. It is not safe for concurrent use;
// it lives on the Bubble Tea update goroutine.
type Loop struct {
	interval time.Duration
	gen      uint64
	running  bool
	ticks    uint64
}

// NewLoop returns a stopped loop. A non-positive interval uses
// DefaultInterval.
func NewLoop(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{interval: interval}
}

// Interval returns the frame period.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Running reports whether ticks are being scheduled.
func (l *Loop) Running() bool {
	return l.running
}

// Ticks returns how many ticks were accepted since the loop was created.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Start begins a new generation and returns the command for its first tick.
// Starting a running loop returns nil.
func (l *Loop) Start() tea.Cmd {
	if l.running {
		return nil
	}
	l.running = true
	l.gen++
	return l.schedule()
}

// Stop ends the current generation. Ticks already scheduled are ignored by
// Accept.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.gen++
}

// Accept reports whether msg belongs to the live generation. When it does,
// the returned command schedules the next tick.
func (l *Loop) Accept(msg TickMsg) (tea.Cmd, bool) {
	if !l.running || msg.Gen != l.gen {
		return nil, false
	}
	l.ticks++
	return l.schedule(), true
}

func (l *Loop) schedule() tea.Cmd {
	gen := l.gen
	return tea.Tick(l.interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
