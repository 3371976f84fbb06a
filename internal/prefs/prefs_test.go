package prefs

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writePrefs(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(p, Defaults()) {
		t.Fatalf("Load = %#v, want defaults", p)
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "quartercade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	body := "theme = \"Slate\"\nshow_input_debug = true\nrecent = [\"6\", \"2\"]\n"
	if err := os.WriteFile(filepath.Join(dir, "prefs.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Prefs{Theme: "Slate", ShowInputDebug: true, Recent: []string{"6", "2"}}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("Load = %#v, want %#v", p, want)
	}
}

func TestLoad_Normalizes(t *testing.T) {
	path := writePrefs(t, "theme = \"  \"\nrecent = [\"1\", \"\", \"1\", \"2\", \"3\", \"4\", \"5\", \"6\"]\n")

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if want := []string{"1", "2", "3", "4", "5"}; !reflect.DeepEqual(p.Recent, want) {
		t.Fatalf("Recent = %v, want %v", p.Recent, want)
	}
}

func TestLoad_InvalidTOMLReportsAndDefaults(t *testing.T) {
	path := writePrefs(t, "not valid toml {{{\n")

	p, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "parse prefs") {
		t.Fatalf("Load error = %v, want parse error", err)
	}
	if !reflect.DeepEqual(p, Defaults()) {
		t.Fatalf("Load = %#v, want defaults", p)
	}
}

func TestSave_RoundTripCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")
	p := Prefs{Theme: "Dracula", ShowInputDebug: true}.Played("3").Played("5")

	if err := Save(path, p); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(loaded, p) {
		t.Fatalf("loaded = %#v, want %#v", loaded, p)
	}
}

func TestPlayed(t *testing.T) {
	tests := []struct {
		name   string
		recent []string
		id     string
		want   []string
	}{
		{name: "first", recent: nil, id: "4", want: []string{"4"}},
		{name: "moves to front", recent: []string{"1", "4", "2"}, id: "4", want: []string{"4", "1", "2"}},
		{name: "caps length", recent: []string{"1", "2", "3", "4", "5"}, id: "6", want: []string{"6", "1", "2", "3", "4"}},
		{name: "blank ignored", recent: []string{"1"}, id: " ", want: []string{"1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := Prefs{Recent: tt.recent}
			got := base.Played(tt.id).Recent
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Played(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
