package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pinball/internal/core"
	"github.com/vovakirdan/tui-pinball/internal/registry"
	"github.com/vovakirdan/tui-pinball/internal/storage"
)

// Model is the Bubble Tea model driving one game session. It owns the
// input edge/hold bookkeeping and frame timing; the game owns everything
// else.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	keys   *KeyMapper

	input     core.InputState
	leftHold  int // remaining ticks the left flipper counts as held
	rightHold int

	lastTick   time.Time
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // score already persisted for the current game over
}

// NewModel creates a model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
	}
}

// Init initializes the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.seedBestScore()
	return tickCmd(m.config.TickRate)
}

// seedBestScore feeds the persisted high score into the game.
func (m *Model) seedBestScore() {
	if m.store == nil {
		return
	}
	seeder, ok := m.game.(registry.BestScoreSeeder)
	if !ok {
		return
	}
	if best, err := m.store.HighScore(m.game.ID()); err == nil {
		seeder.SetBestScore(best)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input into held flags and edge commands.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Map(msg) {
	case evQuit:
		m.quitting = true
		return m, tea.Quit
	case evLeftFlipper:
		m.leftHold = flipperHoldTicks
	case evRightFlipper:
		m.rightHold = flipperHoldTicks
	case evLaunch:
		m.input.Launch = true
	case evStart:
		m.input.Start = true
	case evRestart:
		if m.gameState.GameOver {
			m.input.Restart = true
		}
	case evPause:
		m.input.Pause = true
	}
	return m, nil
}

// handleResize updates the screen buffer. The simulation runs in table
// coordinates, so a resize only affects rendering.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step with the measured elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := time.Second / time.Duration(core.Max(m.config.TickRate, 1))
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.input.LeftPressed = m.leftHold > 0
	m.input.RightPressed = m.rightHold > 0

	result := m.game.Tick(m.input, elapsed)

	wasOver := m.gameState.GameOver
	m.gameState = result.State
	if m.gameState.GameOver && !wasOver {
		m.saveScore()
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	m.input.ClearEdges()
	if m.leftHold > 0 {
		m.leftHold--
	}
	if m.rightHold > 0 {
		m.rightHold--
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore persists the final score once per game over. Best-effort: a
// missing store never interrupts play.
func (m *Model) saveScore() {
	if m.store == nil || m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.game.ID(), m.gameState.Score)
	m.scoreSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
