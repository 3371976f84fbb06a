// Package prefs persists per-user shell preferences in
// ~/.config/quartercade/prefs.toml. Navigation state is never stored; every
// session starts on the first tab.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// MaxRecent caps the recently played list.
const MaxRecent = 5

const (
	defaultPath  = "~/.config/quartercade/prefs.toml"
	defaultTheme = "Midnight"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme          string `toml:"theme"`
	ShowInputDebug bool   `toml:"show_input_debug"`
	// Recent holds library item ids, most recently played first.
	Recent []string `toml:"recent,omitempty"`
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPath
}

// Defaults returns the preferences used when no file exists.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme}
}

// Played returns a copy of p with id moved to the front of Recent.
func (p Prefs) Played(id string) Prefs {
	id = strings.TrimSpace(id)
	if id == "" {
		return p
	}
	recent := make([]string, 0, MaxRecent)
	recent = append(recent, id)
	for _, r := range p.Recent {
		if r != id && len(recent) < MaxRecent {
			recent = append(recent, r)
		}
	}
	p.Recent = recent
	return p
}

// normalize fills a blank theme and drops blank or repeated recent ids.
func (p Prefs) normalize() Prefs {
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	seen := make(map[string]bool, len(p.Recent))
	recent := p.Recent[:0:0]
	for _, id := range p.Recent {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] || len(recent) == MaxRecent {
			continue
		}
		seen[id] = true
		recent = append(recent, id)
	}
	p.Recent = recent
	return p
}

// Load reads preferences from path ("" means DefaultPath). A missing file
// yields Defaults and no error. An unreadable or invalid file also yields
// Defaults, together with the error so the caller can log it.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return Defaults(), fmt.Errorf("read prefs: %w", err)
	}

	p := Defaults()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Defaults(), fmt.Errorf("parse prefs %s: %w", resolved, err)
	}
	return p.normalize(), nil
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p.normalize())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = defaultPath
	}
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve prefs path: %w", err)
	}
	return abs, nil
}
