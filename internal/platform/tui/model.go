package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/game"
	"github.com/vovakirdan/tui-rpg/internal/storage"
)

// GameModel is the Bubble Tea model for one running scene. Each tick feeds
// the held input to the scene; the outcome decides what gets persisted.
type GameModel struct {
	game     *game.Game
	scenario string
	slot     string
	store    *storage.Store
	logger   *log.Logger
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	held     *HeldKeys
	help     help.Model
	lastTick time.Time
	now      func() time.Time

	outcome    game.Outcome
	finished   bool // outcome persisted
	quitting   bool
	backToMenu bool
	status     string
}

// NewGameModel wraps a built scene. A nil store disables persistence.
func NewGameModel(g *game.Game, scenario, slot string, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if logger == nil {
		logger = log.Default()
	}
	h := help.New()
	h.Width = cfg.ScreenW
	return GameModel{
		game:     g,
		scenario: scenario,
		slot:     slot,
		store:    store,
		logger:   logger.With("scenario", scenario, "slot", slot),
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:   cfg,
		keys:     DefaultKeyMap(),
		held:     NewHeldKeys(HoldWindow),
		help:     h,
		now:      time.Now,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records key events; the scene reads them on the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.finished {
		// The death screen waits for a key.
		switch MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionSelect, MenuActionBack:
			m.backToMenu = true
		}
		return m, nil
	}

	now := m.now()
	for _, a := range m.keys.Actions(msg) {
		m.held.Press(a, now)
	}
	return m, nil
}

// handleTick advances the scene one frame.
func (m GameModel) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}

	dt := frameDt(m.lastTick, at, m.config.Dt())
	m.lastTick = at

	outcome := m.game.Update(dt, m.held.Frame(m.now()))
	if outcome == game.OutcomeNone {
		return m, tickCmd(m.config.TickRate)
	}

	m.outcome = outcome
	m.finished = true
	m.held.Reset()
	m.persist(outcome)

	switch outcome {
	case game.OutcomeQuit:
		m.quitting = true
		return m, tea.Quit
	case game.OutcomeMenu:
		m.backToMenu = true
	}
	return m, nil
}

// persist saves on menu or quit and records the run on death.
func (m *GameModel) persist(outcome game.Outcome) {
	if m.store == nil {
		return
	}
	p := m.game.Player()

	if outcome == game.OutcomeMenu || outcome == game.OutcomeQuit {
		data, err := m.game.SaveData()
		if err == nil {
			err = m.store.WriteSlot(m.slot, m.scenario, p.Level, data)
		}
		if err != nil {
			m.logger.Error("save failed", "error", err)
			m.status = fmt.Sprintf("Save failed: %v", err)
			return
		}
		m.logger.Info("game saved", "level", p.Level)
		return
	}

	id, err := m.store.RecordRun(storage.RunRecord{
		MapID:      m.scenario,
		PlayerName: p.Name,
		Level:      p.Level,
		Kills:      m.game.Kills(),
		Gold:       p.Gold,
		Duration:   int(m.game.Elapsed()),
		Outcome:    outcome.String(),
	})
	if err != nil {
		m.logger.Error("cannot record run", "error", err)
		return
	}
	m.logger.Info("run recorded", "run", id, "level", p.Level, "kills", m.game.Kills())
}

// View renders the scene and a help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)
	if m.status != "" {
		return view + "\n" + m.status
	}
	if m.game.Outcome() == game.OutcomeDead {
		return view + "\n" + centerText("Enter: back to menu  |  Q: quit", m.config.ScreenW)
	}
	if m.game.InventoryOpen() {
		return view + "\n" + centerText(inventoryHelp, m.config.ScreenW)
	}
	return view + "\n" + m.help.View(m.keys)
}

// Outcome returns how the scene ended, or OutcomeNone while running.
func (m GameModel) Outcome() game.Outcome {
	return m.outcome
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the session should return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Game exposes the running scene.
func (m GameModel) Game() *game.Game {
	return m.game
}

const inventoryHelp = "Up/Down: select  |  E: pick, E again: swap  |  I: close"

// errNoScenario is returned when a continue is requested without a save.
var errNoScenario = errors.New("tui: no saved game to continue")
