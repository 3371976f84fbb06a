package nav

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/quartercade/internal/catalog"
	"github.com/five82/quartercade/internal/input"
)

// fakePad is a scripted device.
type fakePad struct {
	connected bool
	axes      []float64
	buttons   []bool
	polls     int
}

func newFakePad() *fakePad {
	return &fakePad{connected: true, buttons: make([]bool, input.StandardButtons)}
}

func (p *fakePad) Poll() (input.Raw, bool) {
	p.polls++
	if !p.connected {
		return input.Raw{}, false
	}
	return input.Raw{Axes: p.axes, Buttons: p.buttons}, true
}

func (p *fakePad) set(b input.Button, pressed bool) { p.buttons[b] = pressed }

func newTestEngine(t *testing.T) (*Engine, *Gate, *fakePad, *Controller, *recorder) {
	t.Helper()
	pad := newFakePad()
	gate := &Gate{}
	rec := &recorder{}
	st := NewState()
	ctrl := NewController(&st, catalog.Default(), rec, 3)
	eng := NewEngine(gate, input.NewSampler(pad), input.NewRepeatGate(0, 0), ctrl)
	return eng, gate, pad, ctrl, rec
}

func TestEngineIdleUntilActivated(t *testing.T) {
	eng, gate, pad, ctrl, _ := newTestEngine(t)
	pad.set(input.ButtonNextTab, true)

	assert.False(t, eng.Tick(time.Unix(0, 0)))
	assert.Zero(t, pad.polls, "closed gate must not sample")
	assert.Equal(t, TabHome, ctrl.State().Tab)

	gate.Activate()
	assert.True(t, eng.Tick(time.Unix(1, 0)))
	assert.Equal(t, TabLibrary, ctrl.State().Tab)
}

func TestEngineHeldButtonFiresOnce(t *testing.T) {
	eng, gate, pad, ctrl, _ := newTestEngine(t)
	gate.Activate()
	pad.set(input.ButtonNextTab, true)

	t0 := time.Unix(10, 0)
	for i := 0; i < 5; i++ {
		eng.Tick(t0.Add(time.Duration(i) * 16 * time.Millisecond))
	}
	assert.Equal(t, TabLibrary, ctrl.State().Tab)
}

func TestEngineRepeatGatesHeldDirection(t *testing.T) {
	eng, gate, pad, ctrl, _ := newTestEngine(t)
	gate.Activate()
	pad.set(input.ButtonDPadRight, true)

	t0 := time.Unix(10, 0)
	eng.Tick(t0)
	assert.Equal(t, 1, ctrl.State().ModuleFocus)
	eng.Tick(t0.Add(50 * time.Millisecond))
	assert.Equal(t, 1, ctrl.State().ModuleFocus)
	eng.Tick(t0.Add(150 * time.Millisecond))
	assert.Equal(t, 2, ctrl.State().ModuleFocus)
}

func TestEngineAnalogUsesSlowWindow(t *testing.T) {
	eng, gate, pad, ctrl, _ := newTestEngine(t)
	gate.Activate()
	pad.axes = []float64{0.9, 0}

	t0 := time.Unix(10, 0)
	eng.Tick(t0)
	eng.Tick(t0.Add(150 * time.Millisecond))
	assert.Equal(t, 1, ctrl.State().ModuleFocus)
	eng.Tick(t0.Add(180 * time.Millisecond))
	assert.Equal(t, 2, ctrl.State().ModuleFocus)
}

func TestEngineVerticalOnHomeDoesNotConsumeGate(t *testing.T) {
	eng, gate, pad, ctrl, _ := newTestEngine(t)
	gate.Activate()

	t0 := time.Unix(10, 0)
	pad.set(input.ButtonDPadDown, true)
	eng.Tick(t0)
	pad.set(input.ButtonDPadDown, false)
	pad.set(input.ButtonDPadRight, true)
	eng.Tick(t0.Add(16 * time.Millisecond))
	assert.Equal(t, 1, ctrl.State().ModuleFocus)
}

func TestEngineDisconnectAndReconnect(t *testing.T) {
	eng, gate, pad, ctrl, rec := newTestEngine(t)
	gate.Activate()
	t0 := time.Unix(10, 0)

	eng.Tick(t0)
	pad.connected = false
	assert.False(t, eng.Tick(t0.Add(16*time.Millisecond)))
	_, ok := eng.LastFrame()
	assert.False(t, ok)

	pad.connected = true
	pad.set(input.ButtonConfirm, true)
	require.True(t, eng.Tick(t0.Add(32*time.Millisecond)))
	assert.Empty(t, rec.modules, "held confirm across reconnect is not an edge")

	pad.set(input.ButtonConfirm, false)
	eng.Tick(t0.Add(48 * time.Millisecond))
	pad.set(input.ButtonConfirm, true)
	eng.Tick(t0.Add(64 * time.Millisecond))
	assert.Equal(t, []string{"steam"}, rec.modules)
	assert.Equal(t, TabHome, ctrl.State().Tab)

	frame, ok := eng.LastFrame()
	require.True(t, ok)
	assert.True(t, frame.Pressed(input.ButtonConfirm))
}

func TestEngineSurvivesMalformedDevice(t *testing.T) {
	eng, gate, pad, ctrl, _ := newTestEngine(t)
	gate.Activate()
	pad.buttons = nil
	pad.axes = []float64{math.NaN(), math.Inf(1)}

	assert.True(t, eng.Tick(time.Unix(10, 0)))
	assert.Equal(t, NewState(), ctrl.State())
}

func TestEngineResetAfterPause(t *testing.T) {
	eng, gate, pad, ctrl, rec := newTestEngine(t)
	gate.Activate()
	t0 := time.Unix(10, 0)

	pad.set(input.ButtonConfirm, true)
	eng.Tick(t0)
	assert.Equal(t, []string{"steam"}, rec.modules)

	// Released and pressed again while no ticks ran.
	pad.set(input.ButtonConfirm, false)
	pad.set(input.ButtonConfirm, true)
	eng.Reset()
	_, ok := eng.LastFrame()
	assert.False(t, ok)

	eng.Tick(t0.Add(10 * time.Millisecond))
	assert.Equal(t, []string{"steam", "steam"}, rec.modules)

	pad.set(input.ButtonConfirm, false)
	pad.set(input.ButtonDPadRight, true)
	eng.Tick(t0.Add(20 * time.Millisecond))
	eng.Tick(t0.Add(30 * time.Millisecond))
	assert.Equal(t, 1, ctrl.State().ModuleFocus)

	eng.Reset()
	eng.Tick(t0.Add(40 * time.Millisecond))
	assert.Equal(t, 2, ctrl.State().ModuleFocus, "repeat window restarts with the run")
}
