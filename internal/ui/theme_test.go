package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Midnight" || names[1] != "Dracula" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Midnight Dracula Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Midnight"); got != "Dracula" {
		t.Fatalf("NextTheme(Midnight) = %q, want Dracula", got)
	}
	if got := NextTheme("Slate"); got != "Midnight" {
		t.Fatalf("NextTheme(Slate) = %q, want Midnight", got)
	}
	if got := NextTheme("Unknown"); got != "Midnight" {
		t.Fatalf("NextTheme(Unknown) = %q, want Midnight", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}
	if unknown := GetTheme("Unknown"); unknown.Name != "Midnight" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Midnight (fallback)", unknown.Name)
	}
}

func TestModuleColor(t *testing.T) {
	th := defaultTheme()
	if got := th.ModuleColor("retro"); got != th.ModuleColors["retro"] {
		t.Fatalf("ModuleColor(retro) = %q, want %q", got, th.ModuleColors["retro"])
	}
	if got := th.ModuleColor("unknown"); got != th.Accent {
		t.Fatalf("ModuleColor(unknown) = %q, want accent %q", got, th.Accent)
	}
}

func TestEveryThemeTintsEveryDefaultModule(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, icon := range []string{"steam", "heroic", "retro", "apps", "settings"} {
			if _, ok := th.ModuleColors[icon]; !ok {
				t.Fatalf("theme %s has no color for %s", name, icon)
			}
		}
	}
}
