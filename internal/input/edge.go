package input

// Edge reports whether index rose between prev and cur: pressed now, not
// pressed before. Out-of-range indices report false.
func Edge(prev, cur []bool, index int) bool {
	return pressedAt(cur, index) && !pressedAt(prev, index)
}

// Edges holds the rising edges of one tick.
type Edges struct {
	prev []bool
	cur  []bool
}

// Pressed reports a rising edge on b.
func (e Edges) Pressed(b Button) bool {
	return Edge(e.prev, e.cur, int(b))
}

// Any reports whether any button rose this tick.
func (e Edges) Any() bool {
	for i := range e.cur {
		if Edge(e.prev, e.cur, i) {
			return true
		}
	}
	return false
}

// EdgeDetector tracks the previous processed frame's buttons.
type EdgeDetector struct {
	prev   []bool
	absent bool
}

// NewEdgeDetector returns a detector whose first frame is compared against
// an all-released buffer.
func NewEdgeDetector() *EdgeDetector {
	return &EdgeDetector{}
}

// Advance computes this tick's edges and makes f the previous frame. On the
// first frame after an absent tick the held buttons are latched without
// reporting edges, so a reconnect never fires a spurious press.
func (d *EdgeDetector) Advance(f Frame) Edges {
	cur := f.Buttons()
	if d.absent {
		d.absent = false
		d.prev = cur
		return Edges{prev: cur, cur: cur}
	}
	e := Edges{prev: d.prev, cur: cur}
	d.prev = cur
	return e
}

// Reset forgets the previous frame. The next frame is compared against an
// all-released buffer, as on a fresh detector.
func (d *EdgeDetector) Reset() {
	d.prev = nil
	d.absent = false
}

// Absent records a tick without a device and clears the previous buffer.
func (d *EdgeDetector) Absent() {
	d.prev = nil
	d.absent = true
}
