// Package catalog holds the module and library registries the shell
// navigates. Both are ordered and read-only once built; focus indices are
// clamped against their lengths.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Module is a launchable tile on the home strip.
type Module struct {
	ID      string `toml:"id"`
	Label   string `toml:"label"`
	Caption string `toml:"caption"`
	Icon    string `toml:"icon"`
}

// Item is a library title.
type Item struct {
	ID       string  `toml:"id"`
	Name     string  `toml:"name"`
	Platform string  `toml:"platform"`
	Hours    float64 `toml:"hours"`
}

// Catalog bundles both registries.
type Catalog struct {
	Modules []Module `toml:"modules"`
	Library []Item   `toml:"library"`
}

// Default returns the built-in registries used when the config supplies none.
func Default() Catalog {
	return Catalog{
		Modules: []Module{
			{ID: "steam", Label: "Steam", Caption: "PC library", Icon: "steam"},
			{ID: "heroic", Label: "Heroic", Caption: "Epic/GOG", Icon: "heroic"},
			{ID: "retro", Label: "Retro", Caption: "Emulation", Icon: "retro"},
			{ID: "apps", Label: "Apps", Caption: "Utilities", Icon: "apps"},
			{ID: "settings", Label: "Settings", Caption: "System settings", Icon: "settings"},
		},
		Library: []Item{
			{ID: "1", Name: "Tales of the Elements", Platform: "Steam", Hours: 12.3},
			{ID: "2", Name: "Astraverse Demo", Platform: "Native", Hours: 2.1},
			{ID: "3", Name: "PSO Blue Burst", Platform: "Lutris", Hours: 54.7},
			{ID: "4", Name: "Celeste", Platform: "Steam", Hours: 6.4},
			{ID: "5", Name: "Hades", Platform: "Steam", Hours: 33.9},
			{ID: "6", Name: "Stardew Valley", Platform: "GOG", Hours: 107.5},
		},
	}
}

// Validate rejects blank or duplicate identifiers.
func (c Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Modules))
	for i, m := range c.Modules {
		id := strings.TrimSpace(m.ID)
		if id == "" {
			return fmt.Errorf("module %d: id is empty", i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("module %d: duplicate id %q", i, id)
		}
		seen[id] = struct{}{}
	}
	seen = make(map[string]struct{}, len(c.Library))
	for i, item := range c.Library {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return fmt.Errorf("library item %d: id is empty", i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("library item %d: duplicate id %q", i, id)
		}
		if item.Hours < 0 {
			return fmt.Errorf("library item %q: hours must be >= 0", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Module returns the module at index i.
func (c Catalog) Module(i int) (Module, bool) {
	if i < 0 || i >= len(c.Modules) {
		return Module{}, false
	}
	return c.Modules[i], true
}

// Item returns the library item at index i.
func (c Catalog) Item(i int) (Item, bool) {
	if i < 0 || i >= len(c.Library) {
		return Item{}, false
	}
	return c.Library[i], true
}

// FindItem looks up a library item by id.
func (c Catalog) FindItem(id string) (Item, int, bool) {
	if id == "" {
		return Item{}, -1, false
	}
	for i, item := range c.Library {
		if item.ID == id {
			return item, i, true
		}
	}
	return Item{}, -1, false
}

// Clone returns a deep copy.
func (c Catalog) Clone() Catalog {
	out := Catalog{}
	if len(c.Modules) > 0 {
		out.Modules = make([]Module, len(c.Modules))
		copy(out.Modules, c.Modules)
	}
	if len(c.Library) > 0 {
		out.Library = make([]Item, len(c.Library))
		copy(out.Library, c.Library)
	}
	return out
}

// Match is a library search hit.
type Match struct {
	Index int
	Item  Item
	Rank  int
}

// Search fuzzy-matches query against library names, best match first. An
// empty query returns nothing.
func (c Catalog) Search(query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" || len(c.Library) == 0 {
		return nil
	}
	names := make([]string, len(c.Library))
	for i, item := range c.Library {
		names[i] = item.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(ranks)

	matches := make([]Match, 0, len(ranks))
	for _, r := range ranks {
		matches = append(matches, Match{Index: r.OriginalIndex, Item: c.Library[r.OriginalIndex], Rank: r.Distance})
	}
	return matches
}
