package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path. A missing
// file yields no lines and no error.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 || path == "" {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if count < maxLines {
		return ring[:count:count], nil
	}
	lines := make([]string, count)
	for i := range lines {
		lines[i] = ring[(idx+i)%maxLines]
	}
	return lines, nil
}

// Entry is one log line reduced to what the input monitor shows.
type Entry struct {
	Time      time.Time
	Level     string
	Component string
	Message   string
}

// String renders the entry on one line, e.g. "12:04:05 INFO launcher open requested".
func (e Entry) String() string {
	var parts []string
	if !e.Time.IsZero() {
		parts = append(parts, e.Time.Format("15:04:05"))
	}
	if e.Level != "" {
		parts = append(parts, strings.ToUpper(e.Level))
	}
	if e.Component != "" {
		parts = append(parts, e.Component)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, " ")
}

// jsonEntry matches the production zap encoder keys.
type jsonEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Logger    string `json:"logger"`
	Message   string `json:"message"`
}

// Parse reduces a JSON log line to an Entry. Lines that are not JSON, such
// as development console output, are kept whole as the message.
func Parse(line string) Entry {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "{") {
		return Entry{Message: line}
	}
	var raw jsonEntry
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{Message: line}
	}
	entry := Entry{Level: raw.Level, Component: raw.Logger, Message: raw.Message}
	if ts, err := time.Parse("2006-01-02T15:04:05.000Z0700", raw.Timestamp); err == nil {
		entry.Time = ts
	}
	return entry
}

// Tail reads the last maxLines of path and parses each one.
func Tail(path string, maxLines int) ([]Entry, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, Parse(line))
	}
	return entries, nil
}
