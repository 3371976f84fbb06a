package input

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSanitizesAxes(t *testing.T) {
	f := Normalize(Raw{Axes: []float64{math.NaN(), math.Inf(1)}})
	x, y := f.Stick()
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
	assert.True(t, math.IsNaN(f.Hat()), "missing hat axis reads as NaN")
}

func TestNormalizeClampsAxes(t *testing.T) {
	f := Normalize(Raw{Axes: []float64{-3, 1.5}})
	x, y := f.Stick()
	assert.Equal(t, -1.0, x)
	assert.Equal(t, 1.0, y)
}

func TestNormalizeReadsHatAxis(t *testing.T) {
	axes := make([]float64, 10)
	axes[AxisHat] = -0.5
	f := Normalize(Raw{Axes: axes})
	assert.Equal(t, -0.5, f.Hat())

	axes[AxisHat] = math.Inf(-1)
	f = Normalize(Raw{Axes: axes})
	assert.True(t, math.IsNaN(f.Hat()))
}

func TestNormalizeNilState(t *testing.T) {
	f := Normalize(Raw{})
	assert.Equal(t, 0, f.ButtonCount())
	assert.False(t, f.Pressed(ButtonConfirm))
	assert.False(t, f.Pressed(Button(-1)))
}

func TestFrameIsImmutable(t *testing.T) {
	buttons := []bool{true, false}
	f := Normalize(Raw{Buttons: buttons})
	buttons[0] = false
	require.True(t, f.Pressed(ButtonConfirm), "frame must not alias the raw slice")

	out := f.Buttons()
	out[0] = false
	assert.True(t, f.Pressed(ButtonConfirm), "Buttons must return a copy")
}

func TestSamplerWithoutDevice(t *testing.T) {
	s := NewSampler(SourceFunc(func() (Raw, bool) { return Raw{}, false }))
	_, ok := s.Sample()
	assert.False(t, ok)

	var nilSampler *Sampler
	_, ok = nilSampler.Sample()
	assert.False(t, ok)

	_, ok = NewSampler(nil).Sample()
	assert.False(t, ok)
}

func TestSamplerAllocatesFreshFrames(t *testing.T) {
	raw := Raw{Axes: []float64{0.2, -0.4}, Buttons: []bool{true}}
	s := NewSampler(SourceFunc(func() (Raw, bool) { return raw, true }))

	first, ok := s.Sample()
	require.True(t, ok)
	raw.Buttons[0] = false
	second, ok := s.Sample()
	require.True(t, ok)

	assert.True(t, first.Pressed(ButtonConfirm))
	assert.False(t, second.Pressed(ButtonConfirm))
	x, y := first.Stick()
	assert.Equal(t, 0.2, x)
	assert.Equal(t, -0.4, y)
}
