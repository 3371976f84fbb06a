package input

import "math"

// Button is a standard-layout button index.
type Button int

const (
	ButtonConfirm   Button = 0
	ButtonCancel    Button = 1
	ButtonPlay      Button = 2
	ButtonToggle    Button = 3
	ButtonPrevTab   Button = 4
	ButtonNextTab   Button = 5
	ButtonLT        Button = 6
	ButtonRT        Button = 7
	ButtonBack      Button = 8
	ButtonMenu      Button = 9
	ButtonLS        Button = 10
	ButtonRS        Button = 11
	ButtonDPadUp    Button = 12
	ButtonDPadDown  Button = 13
	ButtonDPadLeft  Button = 14
	ButtonDPadRight Button = 15
	ButtonGuide     Button = 16

	// StandardButtons is the button count of the standard layout.
	StandardButtons = 17
)

// Axis indices inside Raw.Axes.
const (
	AxisLeftX = 0
	AxisLeftY = 1
	// AxisHat carries a single-axis d-pad reading on devices that report the
	// hat as an angle folded onto [-1, 1].
	AxisHat = 9
)

// Raw is the unprocessed state of one device as reported by a Source. Any
// slice may be nil or shorter than the standard layout.
type Raw struct {
	Axes    []float64
	Buttons []bool
}

// Frame is one sanitized polling cycle. It is immutable: accessors hand out
// values or copies, never the backing slice.
type Frame struct {
	lx, ly  float64
	hat     float64
	buttons []bool
}

// NewFrame builds a Frame from already-normalized values. Non-finite axes
// are replaced by 0 and a non-finite hat by NaN.
func NewFrame(lx, ly, hat float64, buttons []bool) Frame {
	pressed := make([]bool, len(buttons))
	copy(pressed, buttons)
	if !isFinite(hat) {
		hat = math.NaN()
	}
	return Frame{
		lx:      clampAxis(lx),
		ly:      clampAxis(ly),
		hat:     hat,
		buttons: pressed,
	}
}

// Normalize sanitizes raw device state into a Frame.
func Normalize(raw Raw) Frame {
	return NewFrame(
		axisAt(raw.Axes, AxisLeftX),
		axisAt(raw.Axes, AxisLeftY),
		hatAt(raw.Axes, AxisHat),
		raw.Buttons,
	)
}

// Stick returns the left stick deflection.
func (f Frame) Stick() (x, y float64) {
	return f.lx, f.ly
}

// Hat returns the hat axis, NaN when the device has none.
func (f Frame) Hat() float64 {
	return f.hat
}

// Pressed reports whether button b is held. Indices the device does not
// have read as released.
func (f Frame) Pressed(b Button) bool {
	return pressedAt(f.buttons, int(b))
}

// Buttons returns a copy of the pressed flags.
func (f Frame) Buttons() []bool {
	out := make([]bool, len(f.buttons))
	copy(out, f.buttons)
	return out
}

// ButtonCount reports how many buttons the frame carries.
func (f Frame) ButtonCount() int {
	return len(f.buttons)
}

func axisAt(axes []float64, i int) float64 {
	if i < 0 || i >= len(axes) {
		return 0
	}
	return axes[i]
}

func hatAt(axes []float64, i int) float64 {
	if i < 0 || i >= len(axes) {
		return math.NaN()
	}
	return axes[i]
}

func pressedAt(buttons []bool, i int) bool {
	if i < 0 || i >= len(buttons) {
		return false
	}
	return buttons[i]
}

func clampAxis(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
