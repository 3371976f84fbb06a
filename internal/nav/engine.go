package nav

import (
	"time"

	"github.com/five82/quartercade/internal/input"
)

// Engine runs one navigation cycle per tick: sample, detect edges, gate
// repeats and feed the controller.
type Engine struct {
	gate    *Gate
	sampler *input.Sampler
	edges   *input.EdgeDetector
	repeat  *input.RepeatGate
	ctrl    *Controller

	last    input.Frame
	hasLast bool
}

// NewEngine assembles an engine. All arguments are required.
func NewEngine(gate *Gate, sampler *input.Sampler, repeat *input.RepeatGate, ctrl *Controller) *Engine {
	return &Engine{
		gate:    gate,
		sampler: sampler,
		edges:   input.NewEdgeDetector(),
		repeat:  repeat,
		ctrl:    ctrl,
	}
}

// Tick processes one frame at now. It reports whether a frame was sampled;
// nothing happens while the gate is closed or no device is connected.
func (e *Engine) Tick(now time.Time) bool {
	if !e.gate.Active() {
		return false
	}
	frame, ok := e.sampler.Sample()
	if !ok {
		e.edges.Absent()
		e.hasLast = false
		return false
	}
	edges := e.edges.Advance(frame)

	var moves input.Directions
	if held := input.DeriveDirections(frame); e.ctrl.Navigable(held) && e.repeat.Allow(now, held.Digital) {
		moves = held
	}
	e.ctrl.Step(moves, edges)

	e.last = frame
	e.hasLast = true
	return true
}

// Reset discards the edge buffer and repeat timestamp. Call it when ticks
// resume after a pause, since the last processed frame no longer precedes
// the next one.
func (e *Engine) Reset() {
	e.edges.Reset()
	e.repeat.Reset()
	e.hasLast = false
}

// LastFrame returns the most recent sampled frame, if the device was present
// on the last tick.
func (e *Engine) LastFrame() (input.Frame, bool) {
	return e.last, e.hasLast
}
