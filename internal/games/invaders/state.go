package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// State is the active screen of the game.
type State int

const (
	StateMenu State = iota
	StateSettings
	StatePlaying
	StateGameOver
)

// String returns the screen name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateSettings:
		return "settings"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// ButtonID identifies a clickable overlay widget.
type ButtonID string

const (
	ButtonPlay      ButtonID = "play"
	ButtonGear      ButtonID = "gear"
	ButtonBack      ButtonID = "back"
	ButtonPlayAgain ButtonID = "play_again"
	ButtonMenu      ButtonID = "menu"
)

// Button is a clickable widget of the current screen.
type Button struct {
	ID    ButtonID
	Label string
	Box   core.Box
}

func layoutBox(r config.Rect) core.Box {
	return core.Box{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Buttons returns the widgets visible on screen s.
func Buttons(s State, layout config.LayoutConfig) []Button {
	switch s {
	case StateMenu:
		return []Button{
			{ID: ButtonPlay, Label: "PLAY", Box: layoutBox(layout.Play)},
			{ID: ButtonGear, Label: "≡", Box: layoutBox(layout.Gear)},
		}
	case StateSettings:
		return []Button{
			{ID: ButtonBack, Label: "BACK", Box: layoutBox(layout.Back)},
		}
	case StateGameOver:
		return []Button{
			{ID: ButtonPlayAgain, Label: "PLAY AGAIN", Box: layoutBox(layout.PlayAgain)},
			{ID: ButtonMenu, Label: "MENU", Box: layoutBox(layout.Menu)},
		}
	default:
		return nil
	}
}

// Machine is the top-level screen state machine.
type Machine struct {
	state  State
	layout config.LayoutConfig
}

// NewMachine creates a machine in the Menu state.
func NewMachine(layout config.LayoutConfig) *Machine {
	return &Machine{state: StateMenu, layout: layout}
}

// Current returns the active state.
func (m *Machine) Current() State {
	return m.state
}

// HandleClick dispatches a pointer release at (x, y). It returns the new
// state and whether the caller must reset the run (wave 0, full ammo, ship
// at spawn). Clicks outside any button of the current screen do nothing.
func (m *Machine) HandleClick(x, y float64) (State, bool) {
	p := core.V(x, y)
	var hit ButtonID
	for _, b := range Buttons(m.state, m.layout) {
		if b.Box.Contains(p) {
			hit = b.ID
			break
		}
	}

	reset := false
	switch {
	case m.state == StateMenu && hit == ButtonPlay:
		m.state = StatePlaying
		reset = true
	case m.state == StateMenu && hit == ButtonGear:
		m.state = StateSettings
	case m.state == StateSettings && hit == ButtonBack:
		m.state = StateMenu
	case m.state == StateGameOver && hit == ButtonPlayAgain:
		m.state = StatePlaying
		reset = true
	case m.state == StateGameOver && hit == ButtonMenu:
		m.state = StateMenu
	}
	return m.state, reset
}

// EndRun moves Playing to GameOver. It reports whether a transition happened.
func (m *Machine) EndRun() bool {
	if m.state != StatePlaying {
		return false
	}
	m.state = StateGameOver
	return true
}
