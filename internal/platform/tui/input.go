package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DefaultHoldFrames is how many ticks a key stays held after its last press
// or autorepeat. Terminals do not report key releases.
const DefaultHoldFrames = 12

// DefaultFireHoldFrames caps the fire key's hold window. It is shorter than
// the movement window so two separate taps leave a released frame between
// them, while autorepeat (every 2-3 ticks at 60 fps) still reads as held.
const DefaultFireHoldFrames = 3

// HeldAction is a keyboard control with a held state.
type HeldAction int

const (
	HeldUp HeldAction = iota
	HeldDown
	HeldLeft
	HeldRight
	HeldFire
	heldCount
)

// InputCollector accumulates terminal key and mouse events between ticks
// and turns them into one core.InputSnapshot per frame.
type InputCollector struct {
	holdFrames int
	fireFrames int
	held       [heldCount]int
	leftDown   bool
	leftTapped bool // pressed since the last snapshot
	rightDown  bool
	pointer    core.Vec
	release    *core.PointerRelease
}

// NewInputCollector creates a collector. holdFrames <= 0 uses DefaultHoldFrames.
func NewInputCollector(holdFrames int) *InputCollector {
	if holdFrames <= 0 {
		holdFrames = DefaultHoldFrames
	}
	return &InputCollector{
		holdFrames: holdFrames,
		fireFrames: min(holdFrames, DefaultFireHoldFrames),
	}
}

// Press marks a keyboard control as held for the hold window.
func (c *InputCollector) Press(a HeldAction) {
	if a < 0 || a >= heldCount {
		return
	}
	if a == HeldFire {
		c.held[a] = c.fireFrames
		return
	}
	c.held[a] = c.holdFrames
}

// Held reports whether a keyboard control is currently held.
func (c *InputCollector) Held(a HeldAction) bool {
	if a < 0 || a >= heldCount {
		return false
	}
	return c.held[a] > 0
}

// Pointer updates the pointer position in world coordinates.
func (c *InputCollector) Pointer(p core.Vec) {
	c.pointer = p
}

// Mouse records a mouse event already converted to world coordinates.
// A left release produces the frame's pointer-released event. A left press
// is reported as held in the next snapshot even if its release arrives
// before that snapshot is taken.
func (c *InputCollector) Mouse(action tea.MouseAction, button tea.MouseButton, p core.Vec) {
	c.pointer = p

	switch action {
	case tea.MouseActionPress:
		switch button {
		case tea.MouseButtonLeft:
			c.leftDown = true
			c.leftTapped = true
		case tea.MouseButtonRight:
			c.rightDown = true
		}

	case tea.MouseActionRelease:
		// Some encodings report releases without a button.
		switch {
		case button == tea.MouseButtonLeft, button == tea.MouseButtonNone && c.leftDown:
			c.leftDown = false
			c.Click(p)
		case button == tea.MouseButtonRight, button == tea.MouseButtonNone && c.rightDown:
			c.rightDown = false
		}
	}
}

// Click queues a pointer release at p for the next frame.
func (c *InputCollector) Click(p core.Vec) {
	c.release = &core.PointerRelease{Pos: p}
}

// Snapshot returns the input for the next frame and advances the hold
// windows. The pointer-released event is delivered once.
func (c *InputCollector) Snapshot(dt float64) core.InputSnapshot {
	in := core.InputSnapshot{
		Move: core.Directions{
			Up:    c.held[HeldUp] > 0,
			Down:  c.held[HeldDown] > 0,
			Left:  c.held[HeldLeft] > 0,
			Right: c.held[HeldRight] > 0,
		},
		PrimaryHeld:   c.leftDown || c.leftTapped || c.held[HeldFire] > 0,
		SecondaryHeld: c.rightDown,
		Release:       c.release,
		Pointer:       c.pointer,
		DT:            dt,
	}

	for i := range c.held {
		if c.held[i] > 0 {
			c.held[i]--
		}
	}
	c.release = nil
	c.leftTapped = false
	return in
}
