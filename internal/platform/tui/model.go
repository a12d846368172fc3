package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/theocoin/coinquest/internal/core"
	"github.com/theocoin/coinquest/internal/registry"
	"github.com/theocoin/coinquest/internal/storage"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game model beyond the runtime config.
type Options struct {
	HoldTicks int         // Ticks a key press stays held; see core.InputLatch
	Logger    *log.Logger // Optional; used for best-effort failures
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	latch     *core.InputLatch
	keys      GameKeyMap
	help      help.Model
	logger    *log.Logger
	gameState core.GameState
	runID     string
	quitting  bool
	runSaved  bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:  store,
		config: cfg,
		latch:  core.NewInputLatch(opts.HoldTicks),
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		logger: opts.Logger,
		runID:  uuid.NewString(),
	}
}

func playfieldHeight(h int) int {
	return max(0, h-helpHeight)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is filled on the first tick (value receiver)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.BlurMsg:
		m.latch.Release()
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionRestart && !m.gameState.GameOver {
		return m, nil
	}
	m.latch.Press(action)
	return m, nil
}

// handleResize follows the terminal size. The world is resolution
// independent, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.latch.Next()

	if in.Has(core.ActionRestart) && m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runID = uuid.NewString()
		m.runSaved = false
		m.latch.Release()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(in)
	m.gameState = result.State

	if m.gameState.Won {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current run once. Runs without a single coin are
// not worth keeping.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil || m.gameState.Score == 0 {
		return
	}
	m.runSaved = true

	_, err := m.store.SaveRun(storage.RunResult{
		RunID:  m.runID,
		GameID: m.game.ID(),
		Player: m.config.Player,
		Coins:  m.gameState.Score,
		Ticks:  m.gameState.Ticks,
		Won:    m.gameState.Won,
	})
	if err != nil && m.logger != nil {
		m.logger.Warn("could not save run", "run", m.runID, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local terminal.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
