// Package logtail reads the tail of the shell's own log file for the input
// monitor.
//
// Read keeps a ring buffer of maxLines while scanning, so memory stays
// bounded regardless of file size. Parse understands the JSON lines written
// by the production zap encoder and passes anything else through as plain
// text.
package logtail
