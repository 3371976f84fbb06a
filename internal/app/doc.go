// Package app is the composition root of QuarterCade.
//
// Run loads config.toml and prefs.toml, builds the zap logger, then wires
// the pieces together:
//
//	joystick.Hub ──> input.Sampler ──┐
//	                                 ├──> nav.Engine ──> nav.Controller ──> launcher.Launcher
//	input.RepeatGate, nav.Gate ──────┘
//
//	telemetry.Client ──> StartPoller() ──> telemetry.Store ──> ui header
//
// The joystick hub rescans for devices in the background and announces new
// ones to the UI, which opens the activation gate. Telemetry is optional:
// with no stats_url configured no poller runs and the header omits it.
//
// Poll failures never stop the shell. They are recorded in the store and
// retried with exponential backoff, capped at 30 seconds. Only a bad
// config file is fatal.
package app
