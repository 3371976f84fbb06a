package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard fallback. Keys act immediately; the gamepad
// repeat gate does not apply to them.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	CycleTheme  key.Binding
	ToggleDebug key.Binding

	// Navigation
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	PrevTab key.Binding
	NextTab key.Binding

	// Actions
	Menu       key.Binding
	ToggleView key.Binding
	Play       key.Binding

	// Quick menu
	MenuUp     key.Binding
	MenuDown   key.Binding
	MenuSelect key.Binding
	MenuClose  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		ToggleDebug: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Input monitor"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("up", "w", "W"),
			key.WithHelp("↑/w", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "S"),
			key.WithHelp("↓/s", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "A"),
			key.WithHelp("←/a", "Move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "D"),
			key.WithHelp("→/d", "Move right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "Open / select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "Back"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Previous tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Next tab"),
		),

		// Actions
		Menu: key.NewBinding(
			key.WithKeys("m", "M"),
			key.WithHelp("m", "Quick menu"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("v", "V"),
			key.WithHelp("v", "Grid / list"),
		),
		Play: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "Play selected"),
		),

		// Quick menu
		MenuUp: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "Previous match"),
		),
		MenuDown: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "Next match"),
		),
		MenuSelect: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Jump to match"),
		),
		MenuClose: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "Close menu"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Cancel, k.PrevTab, k.NextTab},
		// Actions
		{k.Menu, k.ToggleView, k.Play},
		// General
		{k.CycleTheme, k.ToggleDebug, k.Help, k.Quit},
	}
}

// menuKeyMap exposes the quick menu bindings to bubbles/help.
type menuKeyMap struct{ k keyMap }

func (m menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{m.k.MenuUp, m.k.MenuDown, m.k.MenuSelect, m.k.MenuClose}
}

func (m menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}
