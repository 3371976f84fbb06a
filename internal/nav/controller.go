package nav

import (
	"github.com/five82/quartercade/internal/catalog"
	"github.com/five82/quartercade/internal/grid"
	"github.com/five82/quartercade/internal/input"
)

// DefaultColumns is the library column count in grid view.
const DefaultColumns = 3

// Actions receives the controller's side effects. Calls are fire-and-forget:
// nothing is returned and nothing is retried, so a failing implementation
// cannot corrupt navigation state.
type Actions interface {
	OpenModule(id string)
	OpenItem(id string)
}

// NopActions discards every action.
type NopActions struct{}

func (NopActions) OpenModule(string) {}
func (NopActions) OpenItem(string)   {}

// Controller is the navigation state machine. It is not safe for concurrent
// use.
type Controller struct {
	state   *State
	catalog catalog.Catalog
	actions Actions
	columns int
}

// NewController wires a controller to a session state, the registries and
// the action sink. columns <= 1 falls back to DefaultColumns.
func NewController(state *State, cat catalog.Catalog, actions Actions, columns int) *Controller {
	if state == nil {
		s := NewState()
		state = &s
	}
	if actions == nil {
		actions = NopActions{}
	}
	if columns <= 1 {
		columns = DefaultColumns
	}
	c := &Controller{state: state, catalog: cat.Clone(), actions: actions, columns: columns}
	c.clampFocus()
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return *c.state
}

// Catalog returns the registries the controller navigates.
func (c *Controller) Catalog() catalog.Catalog {
	return c.catalog
}

// SetCatalog swaps the registries and re-clamps focus. A selection that no
// longer exists is dropped.
func (c *Controller) SetCatalog(cat catalog.Catalog) {
	c.catalog = cat.Clone()
	c.clampFocus()
	if _, _, ok := cat.FindItem(c.state.Selected); !ok {
		c.state.Selected = ""
	}
}

// Columns returns the library column count for the current view mode.
func (c *Controller) Columns() int {
	if c.state.View == ViewList {
		return 1
	}
	return c.columns
}

// Step applies one tick of gamepad input in priority order. moves carries
// the directions already approved by the repeat gate; it is zero when the
// gate refused or nothing was held.
func (c *Controller) Step(moves input.Directions, edges input.Edges) {
	if h := moves.Horizontal(); h != grid.None {
		c.Move(h)
	}
	if v := moves.Vertical(); v != grid.None {
		c.Move(v)
	}
	if edges.Pressed(input.ButtonConfirm) {
		c.Confirm()
	}
	if edges.Pressed(input.ButtonPlay) {
		c.Play()
	}
	if edges.Pressed(input.ButtonCancel) {
		c.Cancel()
	}
	if edges.Pressed(input.ButtonPrevTab) {
		c.ShiftTab(-1)
	}
	if edges.Pressed(input.ButtonNextTab) {
		c.ShiftTab(1)
	}
	if edges.Pressed(input.ButtonMenu) {
		c.ToggleMenu()
	}
	if edges.Pressed(input.ButtonToggle) {
		c.ToggleView()
	}
}

// Navigable reports whether a move in dir would be considered on the active
// tab. The home strip is a single row, so only horizontal moves count there.
func (c *Controller) Navigable(d input.Directions) bool {
	switch c.state.Tab {
	case TabHome:
		return d.Horizontal() != grid.None
	case TabLibrary:
		return d.Any()
	default:
		return false
	}
}

// Move shifts focus one step within the active tab's collection, clamping at
// the edges. It reports whether focus changed.
func (c *Controller) Move(dir grid.Direction) bool {
	switch c.state.Tab {
	case TabHome:
		old := c.state.ModuleFocus
		switch dir {
		case grid.Left:
			c.state.ModuleFocus--
		case grid.Right:
			c.state.ModuleFocus++
		}
		c.state.ModuleFocus = grid.Clamp(c.state.ModuleFocus, 0, grid.Last(len(c.catalog.Modules)))
		return old != c.state.ModuleFocus
	case TabLibrary:
		old := c.state.ItemFocus
		g := grid.Geometry{Columns: c.Columns(), Total: len(c.catalog.Library)}
		c.state.ItemFocus = g.Move(old, dir)
		return old != c.state.ItemFocus
	default:
		return false
	}
}

// Confirm opens the focused module on the home tab or selects the focused
// item on the library tab. Empty slots are a no-op.
func (c *Controller) Confirm() {
	switch c.state.Tab {
	case TabHome:
		if m, ok := c.catalog.Module(c.state.ModuleFocus); ok {
			c.actions.OpenModule(m.ID)
		}
	case TabLibrary:
		if item, ok := c.catalog.Item(c.state.ItemFocus); ok {
			c.state.Selected = item.ID
		}
	}
}

// Play opens the selected library item. It does nothing without a selection.
func (c *Controller) Play() {
	if c.state.Tab != TabLibrary || !c.state.HasSelection() {
		return
	}
	c.actions.OpenItem(c.state.Selected)
}

// Cancel undoes the most recent layer: close the menu, else clear the
// selection, else return to the first tab. Only one step fires per call.
func (c *Controller) Cancel() {
	switch {
	case c.state.MenuOpen:
		c.state.MenuOpen = false
	case c.state.HasSelection():
		c.state.Selected = ""
	case c.state.Tab != Tabs[0]:
		c.state.Tab = Tabs[0]
	}
}

// ShiftTab moves delta tabs through the fixed order, clamped at both ends.
func (c *Controller) ShiftTab(delta int) {
	idx := grid.Clamp(tabIndex(c.state.Tab)+delta, 0, len(Tabs)-1)
	c.state.Tab = Tabs[idx]
}

// SetTab jumps straight to tab.
func (c *Controller) SetTab(tab Tab) {
	c.state.Tab = Tabs[tabIndex(tab)]
}

// ToggleMenu flips the quick menu.
func (c *Controller) ToggleMenu() {
	c.state.MenuOpen = !c.state.MenuOpen
}

// ToggleView flips grid and list on the library tab. Focus keeps its linear
// index.
func (c *Controller) ToggleView() {
	if c.state.Tab != TabLibrary {
		return
	}
	if c.state.View == ViewGrid {
		c.state.View = ViewList
	} else {
		c.state.View = ViewGrid
	}
}

// FocusItem moves library focus to index, switching to the library tab.
func (c *Controller) FocusItem(index int) {
	c.state.Tab = TabLibrary
	c.state.ItemFocus = grid.Clamp(index, 0, grid.Last(len(c.catalog.Library)))
}

func (c *Controller) clampFocus() {
	c.state.ModuleFocus = grid.Clamp(c.state.ModuleFocus, 0, grid.Last(len(c.catalog.Modules)))
	c.state.ItemFocus = grid.Clamp(c.state.ItemFocus, 0, grid.Last(len(c.catalog.Library)))
}
