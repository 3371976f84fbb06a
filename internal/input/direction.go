package input

import (
	"math"

	"github.com/five82/quartercade/internal/grid"
)

const (
	// StickThreshold is the deflection a stick axis must exceed to count as
	// a direction.
	StickThreshold = 0.5

	hatOuter = 0.75
	hatInner = 0.25
)

// HatDirection folds a single-axis hat reading onto a direction. The axis is
// a circular coordinate laid on [-1, 1]:
//
//	up     v < -0.75 or v >= 0.75
//	right  -0.75 <= v < -0.25
//	down   -0.25 <= v <  0.25
//	left    0.25 <= v <  0.75
//
// Every boundary belongs to the band on its positive side. NaN and values
// outside [-1, 1] are neutral.
func HatDirection(v float64) grid.Direction {
	switch {
	case math.IsNaN(v) || v < -1 || v > 1:
		return grid.None
	case v < -hatOuter || v >= hatOuter:
		return grid.Up
	case v < -hatInner:
		return grid.Right
	case v < hatInner:
		return grid.Down
	default:
		return grid.Left
	}
}

// Directions is the directional intent of one frame.
type Directions struct {
	Up, Down, Left, Right bool
	// Digital is set when a d-pad button is held, selecting the fast repeat
	// window.
	Digital bool
}

// DeriveDirections combines d-pad buttons, stick deflection and the hat axis.
func DeriveDirections(f Frame) Directions {
	lx, ly := f.Stick()
	hat := HatDirection(f.Hat())

	up, down := f.Pressed(ButtonDPadUp), f.Pressed(ButtonDPadDown)
	left, right := f.Pressed(ButtonDPadLeft), f.Pressed(ButtonDPadRight)

	return Directions{
		Up:      up || ly < -StickThreshold || hat == grid.Up,
		Down:    down || ly > StickThreshold || hat == grid.Down,
		Left:    left || lx < -StickThreshold || hat == grid.Left,
		Right:   right || lx > StickThreshold || hat == grid.Right,
		Digital: up || down || left || right,
	}
}

// Any reports whether any direction is held.
func (d Directions) Any() bool {
	return d.Up || d.Down || d.Left || d.Right
}

// Horizontal returns the held horizontal direction, left taking precedence.
func (d Directions) Horizontal() grid.Direction {
	switch {
	case d.Left:
		return grid.Left
	case d.Right:
		return grid.Right
	default:
		return grid.None
	}
}

// Vertical returns the held vertical direction, up taking precedence.
func (d Directions) Vertical() grid.Direction {
	switch {
	case d.Up:
		return grid.Up
	case d.Down:
		return grid.Down
	default:
		return grid.None
	}
}
