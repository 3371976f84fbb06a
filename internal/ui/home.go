package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHome renders the module strip. Tiles wrap when the terminal is
// too narrow but focus stays linear.
func (m Model) renderHome() string {
	styles := m.theme.Styles()
	cat := m.ctrl.Catalog()
	focus := m.ctrl.State().ModuleFocus

	if len(cat.Modules) == 0 {
		return styles.MutedText.Render("No modules configured")
	}

	tileWidth := TileWidth
	if m.width < LayoutCompactWidth {
		tileWidth = TileWidth - 4
	}
	perRow := maxInt(1, m.width/(tileWidth+1))

	var rows []string
	var row []string
	for i, mod := range cat.Modules {
		style := styles.Tile
		if i == focus {
			style = styles.TileFocus
		}
		tint := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ModuleColor(mod.Icon))).Bold(true)
		body := tint.Render(truncate(mod.Label, tileWidth-4)) + "\n" +
			styles.MutedText.Render(truncate(mod.Caption, tileWidth-4))
		row = append(row, style.Width(tileWidth-2).Render(body))
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	title := styles.AccentText.Bold(true).Render("Modules")
	return title + "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
}
