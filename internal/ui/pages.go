package ui

import (
	"strings"
)

// renderStore renders the placeholder store page. It has no navigable
// collection.
func (m Model) renderStore() string {
	styles := m.theme.Styles()
	return styles.AccentText.Bold(true).Render("Store") + "\n" +
		styles.Panel.Render(styles.MutedText.Render("Store front is provided by the installed launchers.\nOpen one from Home."))
}

// renderSettings lists the effective settings read-only.
func (m Model) renderSettings() string {
	styles := m.theme.Styles()

	labelWidth := 0
	for _, row := range m.settings {
		labelWidth = maxInt(labelWidth, len(row.Label))
	}

	var b strings.Builder
	for i, row := range m.settings {
		b.WriteString(styles.MutedText.Render(padRight(row.Label, labelWidth)))
		b.WriteString("  ")
		b.WriteString(styles.Text.Render(truncateMiddle(row.Value, 60)))
		if i < len(m.settings)-1 {
			b.WriteString("\n")
		}
	}
	if len(m.settings) == 0 {
		b.WriteString(styles.MutedText.Render("No settings"))
	}

	return styles.AccentText.Bold(true).Render("Settings") + "\n" + styles.Panel.Render(b.String())
}
