// Package logging provides structured logging using uber/zap.
//
// The terminal belongs to the UI, so the shell logs to a file by default:
//
//	~/.local/state/quartercade/quartercade.log
//
// Two modes are available:
//   - Production: JSON lines for machine parsing
//   - Development: console encoding, easier to tail by hand
//
// Every logger built by New carries a "session" field with a random id so
// interleaved runs appending to the same file can be told apart.
//
// Example Usage:
//
//	logger, err := logging.New(logging.Config{Level: "debug", OutputPaths: []string{path}})
//	if err != nil {
//		logger = logging.Nop()
//	}
//	logger.Info("joystick connected", zap.String("path", "/dev/input/js0"))
package logging
