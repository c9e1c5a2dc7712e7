package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Facing is the visual orientation tag of the ship.
type Facing int

const (
	FacingNeutral Facing = iota
	FacingLeft
	FacingRight
)

// String returns the facing name used as the draw tag.
func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "neutral"
	}
}

// Ship is the player-controlled ship.
type Ship struct {
	Pos    core.Vec
	Facing Facing
}

// Box returns the ship hitbox.
func (s Ship) Box(size core.Vec) core.Box {
	return core.BoxAt(s.Pos, size)
}

// MoveShip applies one frame of movement. Every set flag adds its own
// delta; the sum is clamped to the arena's ship rectangle.
//
//	Right: (+speed, +speed)   Left: (-speed, -speed)
//	Up:    (+speed, -speed)   Down: (-speed, +speed)
func MoveShip(s Ship, dirs core.Directions, speed float64, arena config.ArenaConfig) Ship {
	if !dirs.Any() {
		s.Facing = FacingNeutral
	}

	var dx, dy float64
	if dirs.Right {
		dx += speed
		dy += speed
		s.Facing = FacingRight
	}
	if dirs.Left {
		dx -= speed
		dy -= speed
		s.Facing = FacingLeft
	}
	if dirs.Up {
		dx += speed
		dy -= speed
	}
	if dirs.Down {
		dx -= speed
		dy += speed
	}

	s.Pos.X = core.ClampF(s.Pos.X+dx, arena.Left, arena.Right)
	s.Pos.Y = core.ClampF(s.Pos.Y+dy, arena.Top, arena.Bottom)
	return s
}
