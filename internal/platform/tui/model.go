package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game is the simulation driven by the model.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputSnapshot) core.StepResult
	Draw() core.DrawList
	State() core.GameState
	// WorldSize returns the extent of the world coordinate space.
	WorldSize() core.Vec
	// ButtonCenter returns the world center of a visible button.
	ButtonCenter(id string) (core.Vec, bool)
}

// Options tunes a Model.
type Options struct {
	// Logger receives simulation events. Nil discards them.
	Logger *log.Logger

	// HoldFrames is the key hold window in ticks (0 = DefaultHoldFrames).
	HoldFrames int
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	input    *InputCollector
	logger   *log.Logger
	state    core.GameState
	quitting bool
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
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  NewInputCollector(opts.HoldFrames),
		logger: logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "score", m.state.Score, "wave", m.state.Wave)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Play):
		m.clickButton("play", "play_again")
	case key.Matches(msg, m.keys.Settings):
		m.clickButton("gear")
	case key.Matches(msg, m.keys.Menu):
		m.clickButton("menu")
	case key.Matches(msg, m.keys.Back):
		m.clickButton("back")

	case key.Matches(msg, m.keys.Up):
		m.input.Press(HeldUp)
	case key.Matches(msg, m.keys.Down):
		m.input.Press(HeldDown)
	case key.Matches(msg, m.keys.Left):
		m.input.Press(HeldLeft)
	case key.Matches(msg, m.keys.Right):
		m.input.Press(HeldRight)
	case key.Matches(msg, m.keys.Fire):
		m.input.Press(HeldFire)
	}

	return m, nil
}

// clickButton synthesizes a click on the first visible button of ids.
func (m Model) clickButton(ids ...string) {
	for _, id := range ids {
		if pos, ok := m.game.ButtonCenter(id); ok {
			m.input.Click(pos)
			return
		}
	}
}

// handleMouse converts a cell-space mouse event to world space.
func (m Model) handleMouse(msg tea.MouseMsg) {
	p := m.viewport().ToWorld(msg.X, msg.Y)
	m.input.Mouse(msg.Action, msg.Button, p)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input.Snapshot(m.config.FrameDT()))
	m.state = result.State

	for _, ev := range result.Events {
		if ev.Kind == core.EventGameOver {
			m.logger.Info("game over", "score", ev.Value, "wave", result.State.Wave)
			continue
		}
		m.logger.Debug(ev.Kind.String(), "detail", ev.Detail, "value", ev.Value, "screen", result.State.Screen)
	}

	return m, tickCmd(m.config.TickRate)
}

// viewport maps the world onto the screen buffer as last sized by View.
func (m Model) viewport() Viewport {
	return Viewport{
		Cols:  m.screen.Width(),
		Rows:  m.screen.Height(),
		World: m.game.WorldSize(),
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	rows := max(1, m.config.ScreenH-lipgloss.Height(footer))
	if m.screen.Width() != m.config.ScreenW || m.screen.Height() != rows {
		m.screen.Resize(m.config.ScreenW, rows)
	}

	Rasterize(m.game.Draw(), m.screen, m.viewport())

	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), footer)
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover feedback needs motion events
	)

	_, err := p.Run()
	return err
}
