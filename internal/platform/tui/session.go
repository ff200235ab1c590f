package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/game"
	"github.com/vovakirdan/tui-rpg/internal/registry"
	"github.com/vovakirdan/tui-rpg/internal/storage"
)

// DefaultSlot is the save slot of local sessions.
const DefaultSlot = "default"

// SessionOptions configures one player session.
type SessionOptions struct {
	ID       string // session id; empty generates one
	Notice   string // shown on the menu, e.g. why saving is off
	Slot     string // save slot; empty uses DefaultSlot
	Seed     int64  // 0 seeds every scene from the clock
	Scenario string // start this scenario immediately
	Continue bool   // start immediately from the save in Slot
}

type sessionMode int

const (
	modeMenu sessionMode = iota
	modeGame
	modeRuns
)

// SessionModel manages the full session flow: menu -> game -> menu.
// It is the top-level model of both local and SSH sessions.
type SessionModel struct {
	id       string
	ctx      *game.Context
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	opts     SessionOptions
	mode     sessionMode
	menu     MenuModel
	game     *GameModel
	runs     *RunsModel
	quitting bool
}

// NewSessionModel creates a session. When opts names a scenario or asks to
// continue, the session starts in the game; a failure to build the scene
// falls back to the menu with the error shown.
func NewSessionModel(ctx *game.Context, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, opts SessionOptions) SessionModel {
	if opts.Slot == "" {
		opts.Slot = DefaultSlot
	}
	if logger == nil {
		logger = ctx.Logger
	}
	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}

	m := SessionModel{
		id:     id,
		ctx:    ctx,
		store:  store,
		logger: logger.With("session", shortID(id)),
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(store, opts.Slot, cfg).WithStatus(opts.Notice),
	}

	switch {
	case opts.Continue:
		m = m.start(MenuItem{Choice: ChoiceContinue})
	case opts.Scenario != "":
		m = m.start(MenuItem{Choice: ChoiceNewGame, ScenarioID: opts.Scenario})
	}
	return m
}

// shortID trims a generated id for log lines; short ids are kept whole.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.mode == modeGame {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeRuns:
		return m.updateRuns(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	if selected.Choice == ChoiceRuns {
		runs := NewRunsModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.runs = &runs
		m.mode = modeRuns
		return m, runs.Init()
	}

	m = m.start(*selected)
	if m.mode == modeGame {
		return m, m.game.Init()
	}
	return m, nil
}

// start builds the scene for a menu choice and switches to it.
func (m SessionModel) start(item MenuItem) SessionModel {
	gm, err := m.newGame(item)
	if err != nil {
		m.logger.Error("cannot start game", "error", err)
		m.mode = modeMenu
		m.menu = NewMenuModel(m.store, m.opts.Slot, m.config).WithStatus(err.Error())
		return m
	}
	m.game = &gm
	m.mode = modeGame
	return m
}

func (m SessionModel) newGame(item MenuItem) (GameModel, error) {
	scenario := item.ScenarioID
	var saveData []byte

	if item.Choice == ChoiceContinue {
		if m.store == nil {
			return GameModel{}, errNoScenario
		}
		sv, err := m.store.LoadSlot(m.opts.Slot)
		if err != nil {
			return GameModel{}, fmt.Errorf("%w: %w", errNoScenario, err)
		}
		scenario, saveData = sv.MapID, sv.Data
	}

	mapData, err := registry.Load(scenario)
	if err != nil {
		return GameModel{}, err
	}

	seed := m.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := game.New(m.ctx, mapData, game.Options{Seed: seed, SaveData: saveData})
	if err != nil {
		return GameModel{}, err
	}

	m.logger.Info("game started", "scenario", scenario, "seed", seed, "continue", saveData != nil)
	return NewGameModel(g, scenario, m.opts.Slot, m.store, m.logger, m.config), nil
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.mode = modeMenu
		m.game = nil
		m.menu = NewMenuModel(m.store, m.opts.Slot, m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateRuns handles updates when the hall of runs is open.
func (m SessionModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.runs.Update(msg)
	if runs, ok := newModel.(RunsModel); ok {
		m.runs = &runs
	}

	if m.runs.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.runs.IsGoingBack() {
		m.mode = modeMenu
		m.runs = nil
		m.menu = NewMenuModel(m.store, m.opts.Slot, m.config)
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeGame:
		return m.game.View()
	case modeRuns:
		return m.runs.View()
	default:
		return m.menu.View()
	}
}

// ID returns the session id.
func (m SessionModel) ID() string {
	return m.id
}

// InGame reports whether a scene is running.
func (m SessionModel) InGame() bool {
	return m.mode == modeGame
}

// Run starts a local session in the terminal.
func Run(ctx *game.Context, store *storage.Store, cfg core.RuntimeConfig, opts SessionOptions) error {
	model := NewSessionModel(ctx, store, ctx.Logger, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
