// Package ui is the Bubble Tea shell around the navigation engine.
//
// The Model owns no navigation logic of its own. Gamepad input arrives as
// frame.TickMsg values from a frame.Loop and is handed to nav.Engine; the
// keyboard fallback calls the same nav.Controller transitions directly,
// without the repeat gate. Rendering reads nav.State after every update:
//
//   - header.go: logo, tab pills, telemetry and the footer hint bar
//   - home.go, library.go, pages.go: one renderer per tab
//   - overlay.go: activation overlay and quick menu modal
//   - debug.go: live input monitor
//
// The frame loop only runs while the activation gate is open and the
// terminal has focus. Controller hot-plug arrives on Options.Devices and
// opens the gate.
package ui
