package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/five82/quartercade/internal/config"
	"github.com/five82/quartercade/internal/frame"
	"github.com/five82/quartercade/internal/input"
	"github.com/five82/quartercade/internal/joystick"
	"github.com/five82/quartercade/internal/launcher"
	"github.com/five82/quartercade/internal/logging"
	"github.com/five82/quartercade/internal/nav"
	"github.com/five82/quartercade/internal/prefs"
	"github.com/five82/quartercade/internal/telemetry"
	"github.com/five82/quartercade/internal/ui"
)

// Options configure the QuarterCade shell.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/quartercade/prefs.toml
	PollEvery  int    // telemetry poll in seconds; zero uses the config value
	Debug      bool   // force debug level console logging
}

// Run boots the shell until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logCfg := logging.Config{Level: cfg.LogLevel, Development: cfg.LogDev}
	if cfg.LogFile != "" {
		logCfg.OutputPaths = []string{cfg.LogFile}
	}
	if opts.Debug {
		logCfg.Level = "debug"
		logCfg.Development = true
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quartercade: logging disabled: %v\n", err)
		logger = logging.Nop()
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Component("app")
	log.Info("starting", zap.String("catalog", cfg.CatalogSetBy), zap.Int("modules", len(cfg.Catalog.Modules)), zap.Int("library", len(cfg.Catalog.Library)))

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.Warn("load prefs failed, using defaults", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	hub := joystick.NewHub(joystick.Options{Glob: cfg.DeviceGlob, Logger: logger.Component("joystick")})
	defer hub.Close()
	go hub.Run(ctx, joystick.DefaultScanInterval)

	var store *telemetry.Store
	interval := cfg.StatsPoll
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}
	if cfg.StatsEnabled() {
		client, err := telemetry.NewClient(cfg.StatsURL)
		if err != nil {
			return fmt.Errorf("init stats client: %w", err)
		}
		store = &telemetry.Store{}
		StartPoller(ctx, store, client, interval, logger.Component("telemetry"))
	}

	actions := launcher.New(ctx, logger.Component("launcher"), nil)
	defer actions.Wait()

	state := nav.NewState()
	ctrl := nav.NewController(&state, cfg.Catalog, actions, cfg.GridColumns)
	gate := &nav.Gate{}
	engine := nav.NewEngine(gate, input.NewSampler(hub), input.NewRepeatGate(cfg.FastRepeat, cfg.SlowRepeat), ctrl)

	uiOpts := ui.Options{
		Context:        ctx,
		Engine:         engine,
		Controller:     ctrl,
		Gate:           gate,
		Loop:           frame.NewLoop(frame.DefaultInterval),
		Devices:        hub.Connected(),
		Launches:       actions.Events(),
		Telemetry:      store,
		PollTick:       interval,
		ThemeName:      userPrefs.Theme,
		ShowInputDebug: userPrefs.ShowInputDebug,
		Recent:         userPrefs.Recent,
		PrefsPath:      opts.PrefsPath,
		LogPath:        logPath(logCfg),
		Settings:       settingsRows(cfg, logger.Session()),
		Logger:         logger.Component("ui"),
	}
	err = ui.Run(uiOpts)
	log.Info("stopped", zap.Error(err))
	return err
}

// logPath returns the file the input monitor tails, or "" when logging
// goes to a stream.
func logPath(cfg logging.Config) string {
	if len(cfg.OutputPaths) == 0 {
		return logging.DefaultPath()
	}
	switch out := cfg.OutputPaths[0]; out {
	case "stdout", "stderr":
		return ""
	default:
		return out
	}
}

// settingsRows lists the effective configuration for the Settings tab.
func settingsRows(cfg config.Config, session string) []ui.SettingRow {
	stats := "disabled"
	if cfg.StatsEnabled() {
		stats = cfg.StatsURL
	}
	return []ui.SettingRow{
		{Label: "Devices", Value: cfg.DeviceGlob},
		{Label: "Stats", Value: stats},
		{Label: "Repeat (d-pad)", Value: cfg.FastRepeat.String()},
		{Label: "Repeat (stick)", Value: cfg.SlowRepeat.String()},
		{Label: "Grid columns", Value: strconv.Itoa(cfg.GridColumns)},
		{Label: "Catalog", Value: cfg.CatalogSetBy},
		{Label: "Log file", Value: cfg.LogFile},
		{Label: "Session", Value: session},
	}
}
