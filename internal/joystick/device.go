package joystick

import (
	"errors"
	"io"
	"sync"

	"github.com/five82/quartercade/internal/input"
)

// Device is one open joystick node. State is updated by a reader goroutine
// and read through Poll.
type Device struct {
	path    string
	rc      io.ReadCloser
	mapping Mapping

	mu      sync.Mutex
	axes    map[int]float64
	buttons map[uint8]bool
	err     error
	done    chan struct{}
}

// NewDevice starts reading events from rc. The device owns rc from now on.
func NewDevice(path string, rc io.ReadCloser, mapping Mapping) *Device {
	d := &Device{
		path:    path,
		rc:      rc,
		mapping: mapping,
		axes:    make(map[int]float64),
		buttons: make(map[uint8]bool),
		done:    make(chan struct{}),
	}
	go d.readLoop()
	return d
}

// Path returns the device node path.
func (d *Device) Path() string {
	return d.path
}

// Poll returns the current mapped state. ok is false once the reader has
// stopped.
func (d *Device) Poll() (input.Raw, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return input.Raw{}, false
	}
	return d.mapping.Apply(d.axes, d.buttons), true
}

// Alive reports whether the reader is still running.
func (d *Device) Alive() bool {
	return d.Err() == nil
}

// Err returns the error that stopped the reader, if any.
func (d *Device) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// Done is closed when the reader stops.
func (d *Device) Done() <-chan struct{} {
	return d.done
}

// Close closes the node and waits for the reader to exit.
func (d *Device) Close() error {
	err := d.rc.Close()
	<-d.done
	return err
}

func (d *Device) readLoop() {
	defer close(d.done)
	buf := make([]byte, EventSize)
	for {
		if _, err := io.ReadFull(d.rc, buf); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				err = io.EOF
			}
			d.fail(err)
			return
		}
		ev, err := DecodeEvent(buf)
		if err != nil {
			d.fail(err)
			return
		}
		d.apply(ev)
	}
}

func (d *Device) apply(ev Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch {
	case ev.IsButton():
		d.buttons[ev.Number] = ev.Value != 0
	case ev.IsAxis():
		d.axes[int(ev.Number)] = normalizeAxis(ev.Value)
	}
}

func (d *Device) fail(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err == nil {
		d.err = err
	}
}
