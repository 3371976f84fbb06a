package nav

// Tab is one of the fixed top-level pages.
type Tab int

const (
	TabHome Tab = iota
	TabLibrary
	TabStore
	TabSettings
)

// Tabs is the fixed tab order. The first entry is the initial tab.
var Tabs = []Tab{TabHome, TabLibrary, TabStore, TabSettings}

func (t Tab) String() string {
	switch t {
	case TabHome:
		return "Home"
	case TabLibrary:
		return "Library"
	case TabStore:
		return "Store"
	case TabSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

func tabIndex(t Tab) int {
	for i, tab := range Tabs {
		if tab == t {
			return i
		}
	}
	return 0
}

// ViewMode selects the column preset of the library grid.
type ViewMode int

const (
	ViewGrid ViewMode = iota
	ViewList
)

func (v ViewMode) String() string {
	if v == ViewList {
		return "list"
	}
	return "grid"
}

// State is the navigation state of one UI session. It is owned by a
// Controller and only changes through its transitions.
type State struct {
	Tab         Tab
	View        ViewMode
	ModuleFocus int
	ItemFocus   int
	// Selected is the selected library item id, empty when none.
	Selected string
	MenuOpen bool
}

// NewState returns the initial state: first tab, grid view, focus at 0,
// nothing selected, menu closed.
func NewState() State {
	return State{Tab: Tabs[0], View: ViewGrid}
}

// HasSelection reports whether a library item is selected.
func (s State) HasSelection() bool {
	return s.Selected != ""
}
