package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/quartercade/internal/catalog"
	"github.com/five82/quartercade/internal/frame"
	"github.com/five82/quartercade/internal/grid"
	"github.com/five82/quartercade/internal/launcher"
	"github.com/five82/quartercade/internal/logtail"
	"github.com/five82/quartercade/internal/nav"
	"github.com/five82/quartercade/internal/prefs"
	"github.com/five82/quartercade/internal/telemetry"
)

// SettingRow is one read-only line on the Settings tab.
type SettingRow struct {
	Label string
	Value string
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Engine     *nav.Engine
	Controller *nav.Controller
	Gate       *nav.Gate
	Loop       *frame.Loop
	// Devices announces newly connected controllers.
	Devices <-chan string
	// Launches carries open requests for the status line.
	Launches <-chan launcher.Event
	// Telemetry is nil when no monitor is configured.
	Telemetry      *telemetry.Store
	PollTick       time.Duration
	ThemeName      string
	ShowInputDebug bool
	// Recent lists library item ids, most recently played first.
	Recent    []string
	PrefsPath string
	// LogPath is tailed by the input monitor; empty disables the tail.
	LogPath  string
	Settings []SettingRow
	Logger   *zap.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Collaborators
	engine    *nav.Engine
	ctrl      *nav.Controller
	gate      *nav.Gate
	loop      *frame.Loop
	devices   <-chan string
	launches  <-chan launcher.Event
	telemetry *telemetry.Store
	log       *zap.Logger
	prefsPath string
	logPath   string
	pollTick  time.Duration
	settings  []SettingRow

	// UI state
	theme     Theme
	keys      keyMap
	help      help.Model
	width     int
	height    int
	ready     bool
	focused   bool
	showHelp  bool
	showDebug bool

	// Telemetry state
	snapshot    telemetry.Snapshot
	lastUpdated time.Time

	// Input monitor log tail
	logEntries []logtail.Entry

	// Device and launch status
	lastDevice string
	lastLaunch launcher.Event
	recent     []string
	now        func() time.Time

	// Quick menu
	quickFind  textinput.Model
	matches    []catalog.Match
	menuCursor int
}

// New creates a new Bubble Tea model. Engine, Controller and Gate are
// required.
func New(opts Options) Model {
	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	loop := opts.Loop
	if loop == nil {
		loop = frame.NewLoop(frame.DefaultInterval)
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	finder := textinput.New()
	finder.Placeholder = "Find in library"
	finder.Prompt = "› "
	finder.CharLimit = 64

	keys := DefaultKeyMap()
	return Model{
		engine:    opts.Engine,
		ctrl:      opts.Controller,
		gate:      opts.Gate,
		loop:      loop,
		devices:   opts.Devices,
		launches:  opts.Launches,
		telemetry: opts.Telemetry,
		log:       log,
		prefsPath: prefsPath,
		logPath:   opts.LogPath,
		pollTick:  pollTick,
		settings:  opts.Settings,
		theme:     GetTheme(themeName),
		keys:      keys,
		help:      help.New(),
		focused:   true,
		showDebug: opts.ShowInputDebug,
		recent:    opts.Recent,
		now:       time.Now,
		quickFind: finder,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		waitForDevice(m.devices),
		waitForLaunch(m.launches),
	}
	if m.telemetry != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.telemetry), pollTickCmd(m.pollTick))
	}
	if m.logPath != "" {
		cmds = append(cmds, logTickCmd())
	}
	if m.gate.Active() {
		cmds = append(cmds, m.startLoop())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.FocusMsg:
		m.focused = true
		return m, m.startLoop()

	case tea.BlurMsg:
		m.focused = false
		m.loop.Stop()
		return m, nil

	case frame.TickMsg:
		next, ok := m.loop.Accept(msg)
		if !ok {
			return m, nil
		}
		m.engine.Tick(msg.Time)
		menuCmd := m.syncMenu()
		return m, tea.Batch(next, menuCmd)

	case deviceConnectedMsg:
		m.lastDevice = string(msg)
		if m.gate.Activate() {
			m.log.Info("controller activated", zap.String("path", string(msg)), zap.String("source", "device"))
		}
		return m, tea.Batch(m.startLoop(), waitForDevice(m.devices))

	case launchMsg:
		m.lastLaunch = launcher.Event(msg)
		if msg.Kind == launcher.KindItem {
			m.recent = m.currentPrefs().Played(msg.ID).Recent
			m.savePrefs()
		}
		return m, waitForLaunch(m.launches)

	case pollTickMsg:
		return m, tea.Batch(fetchSnapshotCmd(m.telemetry), pollTickCmd(m.pollTick))

	case snapshotMsg:
		m.snapshot = telemetry.Snapshot(msg)
		m.lastUpdated = m.now()
		return m, nil

	case logTickMsg:
		if !m.showDebug {
			return m, logTickCmd()
		}
		return m, tea.Batch(tailLogCmd(m.logPath), logTickCmd())

	case logTailMsg:
		m.logEntries = msg
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if !m.gate.Active() {
		return m.renderGate()
	}

	if m.ctrl.State().MenuOpen {
		return m.renderMenu()
	}

	return m.renderMain()
}

// handleKey processes the keyboard fallback.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.ctrl.State().MenuOpen {
		return m.handleMenuKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleDebug):
		m.showDebug = !m.showDebug
		m.savePrefs()
		return m, nil

	case !m.gate.Active() && msg.Type == tea.KeyEnter:
		return m.activate("keyboard")
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.ctrl.Move(grid.Up)
	case key.Matches(msg, m.keys.Down):
		m.ctrl.Move(grid.Down)
	case key.Matches(msg, m.keys.Left):
		m.ctrl.Move(grid.Left)
	case key.Matches(msg, m.keys.Right):
		m.ctrl.Move(grid.Right)
	case key.Matches(msg, m.keys.Confirm):
		m.ctrl.Confirm()
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.Cancel()
	case key.Matches(msg, m.keys.PrevTab):
		m.ctrl.ShiftTab(-1)
	case key.Matches(msg, m.keys.NextTab):
		m.ctrl.ShiftTab(1)
	case key.Matches(msg, m.keys.Menu):
		m.ctrl.ToggleMenu()
	case key.Matches(msg, m.keys.ToggleView):
		m.ctrl.ToggleView()
	case key.Matches(msg, m.keys.Play):
		m.ctrl.Play()
	}
	cmd := m.syncMenu()
	return m, cmd
}

// handleMenuKey routes keys to the quick menu's search field.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.MenuClose):
		m.ctrl.Cancel()
		m.syncMenu()
		return m, nil

	case key.Matches(msg, m.keys.MenuUp):
		m.menuCursor = grid.Clamp(m.menuCursor-1, 0, grid.Last(len(m.matches)))
		return m, nil

	case key.Matches(msg, m.keys.MenuDown):
		m.menuCursor = grid.Clamp(m.menuCursor+1, 0, grid.Last(len(m.matches)))
		return m, nil

	case key.Matches(msg, m.keys.MenuSelect):
		if m.menuCursor < len(m.matches) {
			m.ctrl.FocusItem(m.matches[m.menuCursor].Index)
		}
		m.ctrl.ToggleMenu()
		m.syncMenu()
		return m, nil
	}

	var cmd tea.Cmd
	m.quickFind, cmd = m.quickFind.Update(msg)
	m.refreshMatches()
	return m, cmd
}

// handleMouse opens the activation gate on the first click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.gate.Active() {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	return m.activate("pointer")
}

func (m Model) activate(source string) (tea.Model, tea.Cmd) {
	if m.gate.Activate() {
		m.log.Info("controller activated", zap.String("source", source))
	}
	return m, m.startLoop()
}

// startLoop runs the frame loop when the gate is open and the window has
// focus. A new run starts with a fresh engine buffer.
func (m Model) startLoop() tea.Cmd {
	if !m.gate.Active() || !m.focused || m.loop.Running() {
		return nil
	}
	m.engine.Reset()
	return m.loop.Start()
}

// syncMenu keeps the search field in step with the controller's menu flag,
// which the gamepad can flip on any tick.
func (m *Model) syncMenu() tea.Cmd {
	open := m.ctrl.State().MenuOpen
	switch {
	case open && !m.quickFind.Focused():
		m.quickFind.Reset()
		m.menuCursor = 0
		m.refreshMatches()
		return m.quickFind.Focus()
	case !open && m.quickFind.Focused():
		m.quickFind.Blur()
		m.quickFind.Reset()
		m.matches = nil
		m.menuCursor = 0
	}
	return nil
}

// refreshMatches searches the library, or lists recently played items while
// the filter is empty.
func (m *Model) refreshMatches() {
	if strings.TrimSpace(m.quickFind.Value()) == "" {
		m.matches = m.recentMatches()
	} else {
		m.matches = m.ctrl.Catalog().Search(m.quickFind.Value())
	}
	m.menuCursor = grid.Clamp(m.menuCursor, 0, grid.Last(len(m.matches)))
}

// recentMatches skips ids no longer in the library.
func (m Model) recentMatches() []catalog.Match {
	cat := m.ctrl.Catalog()
	var out []catalog.Match
	for _, id := range m.recent {
		if item, i, ok := cat.FindItem(id); ok {
			out = append(out, catalog.Match{Index: i, Item: item})
		}
	}
	return out
}

func (m Model) currentPrefs() prefs.Prefs {
	return prefs.Prefs{Theme: m.theme.Name, ShowInputDebug: m.showDebug, Recent: m.recent}
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.currentPrefs()); err != nil {
		m.log.Warn("save prefs failed", zap.Error(err))
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(m.renderContent())

	if m.showDebug {
		b.WriteString("\n\n")
		b.WriteString(m.renderInputMonitor())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderContent renders the active tab.
func (m Model) renderContent() string {
	switch m.ctrl.State().Tab {
	case nav.TabHome:
		return m.renderHome()
	case nav.TabLibrary:
		return m.renderLibrary()
	case nav.TabStore:
		return m.renderStore()
	case nav.TabSettings:
		return m.renderSettings()
	default:
		return ""
	}
}

// Messages

type deviceConnectedMsg string

type launchMsg launcher.Event

type pollTickMsg time.Time

type snapshotMsg telemetry.Snapshot

type logTickMsg time.Time

type logTailMsg []logtail.Entry

// Commands

func pollTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}

func fetchSnapshotCmd(store *telemetry.Store) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func logTickCmd() tea.Cmd {
	return tea.Tick(LogRefresh, func(t time.Time) tea.Msg {
		return logTickMsg(t)
	})
}

func tailLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		entries, err := logtail.Tail(path, LogTailLines)
		if err != nil {
			return logTailMsg{{Level: "error", Message: err.Error()}}
		}
		return logTailMsg(entries)
	}
}

func waitForDevice(ch <-chan string) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-ch
		if !ok {
			return nil
		}
		return deviceConnectedMsg(path)
	}
}

func waitForLaunch(ch <-chan launcher.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return launchMsg(ev)
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	return err
}
