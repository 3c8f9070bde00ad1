package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-colorswitch/internal/core"
	"github.com/vovakirdan/tui-colorswitch/internal/paths"
)

// Game is the contract between the tick loop and a playable game.
// Games are deterministic given the same seed and input sequence.
type Game interface {
	// ID returns the unique identifier for this game.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts a new run with the given configuration.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts the play area without ending the run.
	Resize(width, height int)

	// Step advances the game by one tick with the given input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame to the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// recordErrer is implemented by games that persist their runs.
type recordErrer interface {
	RecordErr() error
}

// SoundSink plays sound intents emitted by a game.
type SoundSink interface {
	Play(s core.Sound)
}

// Options are the collaborators of a game session. All fields are optional.
type Options struct {
	Sound  SoundSink
	Logger *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	sound      SoundSink
	logger     *log.Logger
	quitting   bool
	backToMenu bool
	runLogged  bool // Whether the current run's end has been logged
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		sound:      opts.Sound,
		logger:     logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("run started", "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionNone:
	default:
		// Rotations after the run ended are dropped here and by the machine.
		if !m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runLogged = false
		m.inputFrame.Clear()
		m.logger.Debug("run restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.sound != nil {
		for _, s := range result.Sounds {
			m.sound.Play(s)
		}
	}

	if m.gameState.GameOver && !m.runLogged {
		m.logRunEnd()
		m.runLogged = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logRunEnd reports the final score and any persistence failure.
func (m Model) logRunEnd() {
	m.logger.Info("run ended", "score", m.gameState.Score)

	if r, ok := m.game.(recordErrer); ok {
		if err := r.RecordErr(); err != nil {
			m.logger.Error("score not saved", "score", m.gameState.Score, "error", err)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := paths.UserFile("screenshots")
	if err != nil {
		m.logger.Warn("screenshot not saved", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not saved", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// BackToMenu reports whether the player left the game for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a game session and blocks until the player quits or leaves for
// the menu. It returns true in the latter case.
func Run(game Game, cfg core.RuntimeConfig, opts Options) (bool, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
