package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderGate renders the activation overlay shown until a controller
// connects or the user clicks.
func (m Model) renderGate() string {
	styles := m.theme.Styles()

	lines := []string{
		styles.Logo.Render(logoText),
		"",
		styles.Text.Bold(true).Render("Connect a controller or press a button"),
		styles.MutedText.Render("Click anywhere or press Enter to use the keyboard"),
	}
	if m.lastDevice != "" {
		lines = append(lines, "", styles.FaintText.Render("last device "+m.lastDevice))
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 3).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))

	return m.place(modal)
}

// renderMenu renders the quick menu modal with its quick-find results.
func (m Model) renderMenu() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Quick Menu"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", MenuWidth-6)))
	b.WriteString("\n\n")
	b.WriteString(m.quickFind.View())
	b.WriteString("\n\n")

	browsing := strings.TrimSpace(m.quickFind.Value()) == ""
	switch {
	case browsing && len(m.matches) == 0:
		b.WriteString(styles.MutedText.Render("Type to search the library"))
	case browsing:
		b.WriteString(styles.FaintText.Render("Recently played"))
		b.WriteString("\n")
	case len(m.matches) == 0:
		b.WriteString(styles.MutedText.Render("No matches"))
	}
	shown := m.matches
	if len(shown) > MenuResults {
		shown = shown[:MenuResults]
	}
	for i, match := range shown {
		line := padRight(truncate(match.Item.Name, MenuWidth-20), MenuWidth-20) + " " +
			match.Item.Platform
		if i == m.menuCursor {
			b.WriteString(styles.Selected.Render("▶ " + line))
		} else {
			b.WriteString(styles.Text.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if extra := len(m.matches) - len(shown); extra > 0 {
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("  +%d more", extra)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(menuKeyMap{k: m.keys}.ShortHelp()))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(MenuWidth).
		Render(b.String())

	return m.place(modal)
}

// place centers content in the window.
func (m Model) place(content string) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
