package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/five82/quartercade/internal/input"
)

var buttonLabels = []struct {
	button input.Button
	label  string
}{
	{input.ButtonConfirm, "A"},
	{input.ButtonCancel, "B"},
	{input.ButtonPlay, "X"},
	{input.ButtonToggle, "Y"},
	{input.ButtonPrevTab, "LB"},
	{input.ButtonNextTab, "RB"},
	{input.ButtonLT, "LT"},
	{input.ButtonRT, "RT"},
	{input.ButtonBack, "Back"},
	{input.ButtonMenu, "Start"},
	{input.ButtonDPadUp, "↑"},
	{input.ButtonDPadDown, "↓"},
	{input.ButtonDPadLeft, "←"},
	{input.ButtonDPadRight, "→"},
	{input.ButtonGuide, "Guide"},
}

// renderInputMonitor shows the last sampled frame and loop state.
func (m Model) renderInputMonitor() string {
	styles := m.theme.Styles()

	frame, ok := m.engine.LastFrame()
	var body string
	if !ok {
		body = styles.MutedText.Render("no device")
	} else {
		x, y := frame.Stick()
		hat := "-"
		if h := frame.Hat(); !math.IsNaN(h) {
			hat = fmt.Sprintf("%+.2f", h)
		}
		var held []string
		for _, b := range buttonLabels {
			if frame.Pressed(b.button) {
				held = append(held, b.label)
			}
		}
		pressed := "none"
		if len(held) > 0 {
			pressed = strings.Join(held, " ")
		}
		dirs := input.DeriveDirections(frame)
		body = fmt.Sprintf("stick %+.2f %+.2f  hat %s  dir %s/%s\nheld  %s",
			x, y, hat, dirs.Horizontal(), dirs.Vertical(), pressed)
		body = styles.Text.Render(body)
	}

	loop := "stopped"
	if m.loop.Running() {
		loop = "running"
	}
	status := styles.FaintText.Render(fmt.Sprintf("loop %s • %d ticks • %s", loop, m.loop.Ticks(), m.loop.Interval()))

	out := styles.AccentText.Render("Input") + "\n" + body + "\n" + status
	if len(m.logEntries) > 0 {
		lines := make([]string, 0, len(m.logEntries))
		for _, e := range m.logEntries {
			lines = append(lines, truncate(e.String(), maxInt(20, m.width-6)))
		}
		out += "\n" + styles.AccentText.Render("Log") + "\n" + styles.MutedText.Render(strings.Join(lines, "\n"))
	}
	return styles.Panel.Render(out)
}
