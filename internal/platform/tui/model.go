package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rex-runner/internal/core"
	"github.com/vovakirdan/rex-runner/internal/games/dino"
	"github.com/vovakirdan/rex-runner/internal/platform"
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       *dino.Game
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	shotDir    string
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *dino.Game, logger *log.Logger) Model {
	cfg := game.Config()
	keys := DefaultKeyMap()
	state := game.State()
	keys.SetGameOver(state.GameOver)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.Screen.Width, cfg.Screen.Height),
		keys:       keys,
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  state,
		shotDir:    platform.DefaultScreenshotDir(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action != core.ActionNone {
		m.logger.Debug("input", "key", msg.String(), "action", action)
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionSnapshot:
		m.saveScreenshot()
	case core.ActionJump, core.ActionRestart:
		// Applied on the next tick
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	platform.LogStep(m.logger, prev, result)

	m.keys.SetGameOver(m.gameState.GameOver)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(result.Interval)
}

// saveScreenshot saves the current frame as plain text. Failures are logged only.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)
	path, err := platform.SaveScreenshot(m.shotDir, m.screen)
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *dino.Game, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
