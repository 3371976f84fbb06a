package joystick

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EventSize is the size of one js_event record.
const EventSize = 8

// Event types. TypeInit is OR-ed into the synthetic events the kernel emits
// right after open to report the initial state.
const (
	TypeButton uint8 = 0x01
	TypeAxis   uint8 = 0x02
	TypeInit   uint8 = 0x80
)

// Event is one decoded js_event.
type Event struct {
	TimeMs uint32
	Value  int16
	Type   uint8
	Number uint8
}

// DecodeEvent parses a little-endian js_event record.
func DecodeEvent(b []byte) (Event, error) {
	if len(b) < EventSize {
		return Event{}, fmt.Errorf("short js_event: %d bytes", len(b))
	}
	return Event{
		TimeMs: binary.LittleEndian.Uint32(b[0:4]),
		Value:  int16(binary.LittleEndian.Uint16(b[4:6])),
		Type:   b[6],
		Number: b[7],
	}, nil
}

// Encode writes e in the kernel layout.
func (e Event) Encode() []byte {
	b := make([]byte, EventSize)
	binary.LittleEndian.PutUint32(b[0:4], e.TimeMs)
	binary.LittleEndian.PutUint16(b[4:6], uint16(e.Value))
	b[6] = e.Type
	b[7] = e.Number
	return b
}

// IsButton reports a button event, initial or live.
func (e Event) IsButton() bool { return e.Type&^TypeInit == TypeButton }

// IsAxis reports an axis event, initial or live.
func (e Event) IsAxis() bool { return e.Type&^TypeInit == TypeAxis }

// normalizeAxis converts a raw axis value to [-1, 1].
func normalizeAxis(raw int16) float64 {
	v := float64(raw) / math.MaxInt16
	if v < -1 {
		v = -1
	}
	return v
}
