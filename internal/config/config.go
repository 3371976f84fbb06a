package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/quartercade/internal/catalog"
	"github.com/five82/quartercade/internal/input"
	"github.com/five82/quartercade/internal/joystick"
	"github.com/five82/quartercade/internal/logging"
	"github.com/five82/quartercade/internal/nav"
)

// Config is the resolved shell configuration.
type Config struct {
	StatsURL     string
	StatsPoll    time.Duration
	DeviceGlob   string
	LogLevel     string
	LogDev       bool
	LogFile      string
	FastRepeat   time.Duration
	SlowRepeat   time.Duration
	GridColumns  int
	Catalog      catalog.Catalog
	CatalogSetBy string
}

const (
	defaultConfigPath = "~/.config/quartercade/config.toml"
	defaultStatsPoll  = time.Second
	defaultLogLevel   = "info"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "QUARTERCADE"
)

// fileConfig mirrors config.toml.
type fileConfig struct {
	StatsURL     string           `toml:"stats_url"`
	StatsPollMS  int              `toml:"stats_poll_ms"`
	DeviceGlob   string           `toml:"device_glob"`
	LogLevel     string           `toml:"log_level"`
	LogDev       bool             `toml:"log_dev"`
	LogFile      string           `toml:"log_file"`
	FastRepeatMS int              `toml:"fast_repeat_ms"`
	SlowRepeatMS int              `toml:"slow_repeat_ms"`
	GridColumns  int              `toml:"grid_columns"`
	Modules      []catalog.Module `toml:"modules"`
	Library      []catalog.Item   `toml:"library"`
}

// envConfig holds the QUARTERCADE_* overrides. Unset variables leave the
// prefilled value alone.
type envConfig struct {
	StatsURL   string `envconfig:"STATS_URL"`
	DeviceGlob string `envconfig:"DEVICE_GLOB"`
	LogLevel   string `envconfig:"LOG_LEVEL"`
	LogDev     bool   `envconfig:"LOG_DEV"`
	LogFile    string `envconfig:"LOG_FILE"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		StatsPoll:    defaultStatsPoll,
		DeviceGlob:   joystick.DefaultGlob,
		LogLevel:     defaultLogLevel,
		LogFile:      logging.DefaultPath(),
		FastRepeat:   input.DefaultFastRepeat,
		SlowRepeat:   input.DefaultSlowRepeat,
		GridColumns:  nav.DefaultColumns,
		Catalog:      catalog.Default(),
		CatalogSetBy: "default",
	}
}

// Load reads the config file, falling back to defaults when it is missing,
// then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := loadFile(resolved, &cfg); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := logging.ValidateLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("log_level: %w", err)
	}
	if err := cfg.Catalog.Validate(); err != nil {
		return Config{}, fmt.Errorf("catalog (%s): %w", cfg.CatalogSetBy, err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.StatsURL); v != "" {
		cfg.StatsURL = v
	}
	if raw.StatsPollMS > 0 {
		cfg.StatsPoll = time.Duration(raw.StatsPollMS) * time.Millisecond
	}
	if v := strings.TrimSpace(raw.DeviceGlob); v != "" {
		cfg.DeviceGlob = v
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	cfg.LogDev = raw.LogDev
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if raw.FastRepeatMS > 0 {
		cfg.FastRepeat = time.Duration(raw.FastRepeatMS) * time.Millisecond
	}
	if raw.SlowRepeatMS > 0 {
		cfg.SlowRepeat = time.Duration(raw.SlowRepeatMS) * time.Millisecond
	}
	if raw.GridColumns > 1 {
		cfg.GridColumns = raw.GridColumns
	}
	if len(raw.Modules) > 0 || len(raw.Library) > 0 {
		cfg.Catalog = catalog.Catalog{Modules: raw.Modules, Library: raw.Library}
		cfg.CatalogSetBy = path
	}
	return nil
}

func applyEnv(cfg *Config) error {
	env := envConfig{
		StatsURL:   cfg.StatsURL,
		DeviceGlob: cfg.DeviceGlob,
		LogLevel:   cfg.LogLevel,
		LogDev:     cfg.LogDev,
		LogFile:    cfg.LogFile,
	}
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	cfg.StatsURL = strings.TrimSpace(env.StatsURL)
	if v := strings.TrimSpace(env.DeviceGlob); v != "" {
		cfg.DeviceGlob = v
	}
	if v := strings.TrimSpace(env.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	cfg.LogDev = env.LogDev
	if v := strings.TrimSpace(env.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	return nil
}

// StatsEnabled reports whether a telemetry monitor is configured.
func (c Config) StatsEnabled() bool {
	return strings.TrimSpace(c.StatsURL) != ""
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
