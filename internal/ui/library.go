package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/quartercade/internal/catalog"
	"github.com/five82/quartercade/internal/grid"
	"github.com/five82/quartercade/internal/nav"
)

// renderLibrary renders the library in the active view mode followed by
// the selected-item panel.
func (m Model) renderLibrary() string {
	styles := m.theme.Styles()
	state := m.ctrl.State()
	cat := m.ctrl.Catalog()

	title := styles.AccentText.Bold(true).Render("Library") +
		styles.FaintText.Render(fmt.Sprintf("  %d titles • %s view", len(cat.Library), state.View))

	if len(cat.Library) == 0 {
		return title + "\n" + styles.MutedText.Render("Library is empty")
	}

	var body string
	if state.View == nav.ViewList {
		body = m.renderLibraryList(cat, state.ItemFocus)
	} else {
		body = m.renderLibraryGrid(cat, state.ItemFocus)
	}

	out := title + "\n" + body
	if panel := m.renderSelectedPanel(); panel != "" {
		out += "\n" + panel
	}
	return out
}

// renderLibraryGrid lays cards out row-major using the controller's column
// count, so what is drawn matches what directional moves address.
func (m Model) renderLibraryGrid(cat catalog.Catalog, focus int) string {
	geo := grid.Geometry{Columns: m.ctrl.Columns(), Total: len(cat.Library)}
	cardWidth := CardWidth
	if m.width > 0 && geo.Columns*cardWidth > m.width {
		cardWidth = maxInt(12, m.width/geo.Columns)
	}

	rows := make([]string, 0, geo.Rows())
	for r := 0; r < geo.Rows(); r++ {
		var cards []string
		for c := 0; c < geo.Columns; c++ {
			i := r*geo.Columns + c
			if i >= geo.Total {
				break
			}
			cards = append(cards, m.renderCard(cat.Library[i], i == focus, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCard(item catalog.Item, focused bool, width int) string {
	styles := m.theme.Styles()
	style := styles.Tile
	if focused {
		style = styles.TileFocus
	}
	inner := width - 4
	name := styles.Text.Bold(true).Render(truncate(item.Name, inner))
	if m.ctrl.State().Selected == item.ID {
		name = styles.Selected.Bold(true).Render(truncate(item.Name, inner))
	}
	meta := styles.MutedText.Render(truncate(formatMeta(item.Platform, item.Hours), inner))
	return style.Width(width - 2).Render(name + "\n" + meta)
}

// renderLibraryList renders one row per title with a focus marker.
func (m Model) renderLibraryList(cat catalog.Catalog, focus int) string {
	styles := m.theme.Styles()
	nameWidth := 32
	if m.width > 0 && m.width < LayoutCompactWidth {
		nameWidth = 20
	}

	var b strings.Builder
	for i, item := range cat.Library {
		marker := "  "
		style := styles.Text
		if i == focus {
			marker = "▶ "
			style = styles.Selected
		}
		line := marker + padRight(truncate(item.Name, nameWidth), nameWidth) + "  " +
			formatMeta(item.Platform, item.Hours)
		b.WriteString(style.Render(line))
		if i < len(cat.Library)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderSelectedPanel shows the selected title with its play hint, or
// nothing when no title is selected.
func (m Model) renderSelectedPanel() string {
	state := m.ctrl.State()
	if !state.HasSelection() {
		return ""
	}
	item, _, ok := m.ctrl.Catalog().FindItem(state.Selected)
	if !ok {
		return ""
	}
	styles := m.theme.Styles()
	lines := []string{
		styles.Text.Bold(true).Render(item.Name),
		styles.MutedText.Render(formatMeta(item.Platform, item.Hours)),
		styles.AccentText.Render("X") + styles.MutedText.Render(" Play   ") +
			styles.AccentText.Render("B") + styles.MutedText.Render(" Back"),
	}
	return styles.Panel.Render(strings.Join(lines, "\n"))
}
