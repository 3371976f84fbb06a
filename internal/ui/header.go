package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/quartercade/internal/launcher"
	"github.com/five82/quartercade/internal/nav"
)

const logoText = "quartercade"

// renderHeader renders the top bar: logo, tab pills and telemetry.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	left := bg.Render(logoText, styles.Logo) + sep + m.renderTabs(styles, bg)
	right := m.renderTelemetry(styles, bg)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 2 {
		gap = 2
	}
	content := left + bg.Spaces(gap) + right

	return styles.Header.Width(m.width).Render(content)
}

// renderTabs renders one pill per tab, highlighting the active one.
func (m Model) renderTabs(styles Styles, bg BgStyle) string {
	active := m.ctrl.State().Tab
	pills := make([]string, 0, len(nav.Tabs))
	for _, tab := range nav.Tabs {
		style := styles.TabInactive
		if tab == active {
			style = styles.TabActive
		}
		pills = append(pills, style.Render(tab.String()))
	}
	return bg.Join(pills, " ")
}

// renderTelemetry renders the latest monitor sample, or nothing when the
// monitor is not configured.
func (m Model) renderTelemetry(styles Styles, bg BgStyle) string {
	if m.telemetry == nil {
		return ""
	}
	snap := m.snapshot
	if !snap.HasSample || snap.IsOffline() {
		if snap.LastError == nil && !snap.HasSample {
			return bg.Render("stats…", styles.FaintText)
		}
		return bg.Render("stats offline", styles.WarningText)
	}

	sample := snap.Sample
	colon := bg.Sep(" ")
	parts := []string{
		bg.Render("CPU", styles.MutedText) + colon + bg.Render(fmt.Sprintf("%.0f%%", sample.CPU), m.loadStyle(styles, sample.CPU)),
	}
	if sample.HasGPU() {
		gpu := sample.GPUPercent()
		parts = append(parts,
			bg.Render("GPU", styles.MutedText)+colon+bg.Render(fmt.Sprintf("%.0f%%", gpu), m.loadStyle(styles, gpu)))
	}
	parts = append(parts,
		bg.Render("RAM", styles.MutedText)+colon+bg.Render(sample.MemoryLabel(), m.loadStyle(styles, sample.RAM.Percent)))

	return bg.Join(parts, "  ")
}

func (m Model) loadStyle(styles Styles, percent float64) lipgloss.Style {
	switch {
	case percent >= 90:
		return styles.DangerText
	case percent >= 70:
		return styles.WarningText
	default:
		return styles.Text
	}
}

// renderFooter renders the controller hints bar plus status.
func (m Model) renderFooter() string {
	// Footer uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type hint struct{ key, desc string }
	state := m.ctrl.State()
	hints := []hint{{"A", "Select"}, {"B", "Back"}, {"LB/RB", "Tab"}, {"Start", "Menu"}}
	if state.Tab == nav.TabLibrary {
		view := "List"
		if state.View == nav.ViewList {
			view = "Grid"
		}
		hints = append(hints, hint{"Y", view})
		if state.HasSelection() {
			hints = append(hints, hint{"X", "Play"})
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(hints)+3)
	for _, h := range hints {
		segments = append(segments,
			bg.Render(h.key, styles.AccentText)+colon+bg.Render(h.desc, styles.MutedText))
	}

	if status := m.launchStatus(); status != "" {
		segments = append(segments, bg.Render(status, styles.SuccessText))
	}
	if m.lastDevice != "" {
		segments = append(segments, bg.Render("pad "+truncateMiddle(m.lastDevice, 24), styles.FaintText))
	}

	// Add theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	line := bg.Join(segments, "  ")
	keys := m.help.ShortHelpView(m.keys.ShortHelp())
	return styles.Footer.Width(m.width).Render(line + bg.Spaces(2) + keys)
}

// launchStatus describes the most recent open request.
func (m Model) launchStatus() string {
	ev := m.lastLaunch
	if ev.ID == "" {
		return ""
	}
	name := ev.ID
	switch ev.Kind {
	case launcher.KindModule:
		if mod, ok := m.findModule(ev.ID); ok {
			name = mod
		}
	case launcher.KindItem:
		if item, _, ok := m.ctrl.Catalog().FindItem(ev.ID); ok {
			name = item.Name
		}
	}
	status := "Opening " + name
	if age := m.now().Sub(ev.At); !ev.At.IsZero() && age >= time.Second {
		status += " (" + humanizeDuration(age) + " ago)"
	}
	return status
}

func (m Model) findModule(id string) (string, bool) {
	for _, mod := range m.ctrl.Catalog().Modules {
		if strings.EqualFold(mod.ID, id) {
			return mod.Label, true
		}
	}
	return "", false
}
