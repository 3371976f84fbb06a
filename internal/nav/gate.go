package nav

// Gate holds input processing off until the user engages the controller.
// Its only mutation is Activate.
type Gate struct {
	active bool
}

// Activate opens the gate. It reports whether this call changed anything;
// activating an open gate is a no-op.
func (g *Gate) Activate() bool {
	if g.active {
		return false
	}
	g.active = true
	return true
}

// Active reports whether input processing is enabled.
func (g *Gate) Active() bool {
	return g.active
}
