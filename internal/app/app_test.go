package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/quartercade/internal/config"
)

func TestRunFailsOnBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("stats_url = [unterminated"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	err := Run(context.Background(), Options{ConfigPath: path})
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("Run() error = %v, want load config failure", err)
	}
}

func TestSettingsRows(t *testing.T) {
	cfg := config.Default()
	rows := settingsRows(cfg, "abc")

	got := make(map[string]string, len(rows))
	for _, r := range rows {
		got[r.Label] = r.Value
	}
	if got["Stats"] != "disabled" {
		t.Fatalf("Stats = %q, want disabled", got["Stats"])
	}
	if got["Repeat (d-pad)"] != "140ms" || got["Repeat (stick)"] != "180ms" {
		t.Fatalf("repeat rows = %q / %q", got["Repeat (d-pad)"], got["Repeat (stick)"])
	}
	if got["Grid columns"] != "3" || got["Session"] != "abc" {
		t.Fatalf("rows = %+v", got)
	}

	cfg.StatsURL = "127.0.0.1:7488"
	rows = settingsRows(cfg, "")
	for _, r := range rows {
		if r.Label == "Stats" && r.Value != "127.0.0.1:7488" {
			t.Fatalf("Stats = %q", r.Value)
		}
	}
}
