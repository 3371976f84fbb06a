// Package joystick reads Linux joystick devices (/dev/input/js*) and
// exposes the first live one as an input.Source.
//
// A Device owns one open device node and a reader goroutine decoding the
// kernel's 8-byte js_event records into axis and button state. The Hub scans
// a glob for new nodes, drops devices whose reader failed, and announces
// each newly opened device on its Connected channel. Raw kernel numbering
// is translated to the standard button layout by a Mapping.
package joystick
