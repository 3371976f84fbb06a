package joystick

import (
	"math"

	"github.com/five82/quartercade/internal/input"
)

// TriggerThreshold is the normalized deflection at which an analog trigger
// counts as a pressed button. Triggers rest at -1.
const TriggerThreshold = 0.0

// Mapping translates kernel numbering to the standard layout.
type Mapping struct {
	Name string
	// Buttons maps kernel button numbers to standard buttons.
	Buttons map[uint8]input.Button
	// StickX and StickY are the kernel axes of the left stick.
	StickX, StickY int
	// TriggerButtons maps analog trigger axes to standard buttons.
	TriggerButtons map[int]input.Button
	// HatX and HatY are the kernel axes of the d-pad, or -1 when the pad
	// reports the d-pad as buttons.
	HatX, HatY int
}

// XboxMapping is the xpad driver layout, also used by most generic pads.
var XboxMapping = Mapping{
	Name: "xpad",
	Buttons: map[uint8]input.Button{
		0:  input.ButtonConfirm,
		1:  input.ButtonCancel,
		2:  input.ButtonPlay,
		3:  input.ButtonToggle,
		4:  input.ButtonPrevTab,
		5:  input.ButtonNextTab,
		6:  input.ButtonBack,
		7:  input.ButtonMenu,
		8:  input.ButtonGuide,
		9:  input.ButtonLS,
		10: input.ButtonRS,
	},
	StickX: 0,
	StickY: 1,
	TriggerButtons: map[int]input.Button{
		2: input.ButtonLT,
		5: input.ButtonRT,
	},
	HatX: 6,
	HatY: 7,
}

// Apply converts kernel axis and button state into a standard Raw. The hat
// is folded into d-pad buttons, so the hat axis slot is left NaN.
func (m Mapping) Apply(axes map[int]float64, buttons map[uint8]bool) input.Raw {
	raw := input.Raw{
		Axes:    make([]float64, input.AxisHat+1),
		Buttons: make([]bool, input.StandardButtons),
	}
	raw.Axes[input.AxisLeftX] = axes[m.StickX]
	raw.Axes[input.AxisLeftY] = axes[m.StickY]
	raw.Axes[input.AxisHat] = math.NaN()

	for num, pressed := range buttons {
		if b, ok := m.Buttons[num]; ok && pressed {
			raw.Buttons[b] = true
		}
	}
	for axis, b := range m.TriggerButtons {
		if v, ok := axes[axis]; ok && v > TriggerThreshold {
			raw.Buttons[b] = true
		}
	}
	if m.HatX >= 0 {
		x := axes[m.HatX]
		raw.Buttons[input.ButtonDPadLeft] = raw.Buttons[input.ButtonDPadLeft] || x < -0.5
		raw.Buttons[input.ButtonDPadRight] = raw.Buttons[input.ButtonDPadRight] || x > 0.5
	}
	if m.HatY >= 0 {
		y := axes[m.HatY]
		raw.Buttons[input.ButtonDPadUp] = raw.Buttons[input.ButtonDPadUp] || y < -0.5
		raw.Buttons[input.ButtonDPadDown] = raw.Buttons[input.ButtonDPadDown] || y > 0.5
	}
	return raw
}
