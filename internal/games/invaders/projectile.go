package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// PierceBudget is the number of damage events a projectile may apply
// before it retires.
const PierceBudget = 2

// Projectile is a player shot travelling diagonally toward the enemy field.
type Projectile struct {
	Pos       core.Vec
	Speed     float64
	Direction float64 // Sign applied to the vertical component
	Pierce    int     // Damage events applied so far
}

// SpawnProjectile creates a shot at the ship position plus the configured offset.
func SpawnProjectile(ship Ship, cfg config.ProjectileConfig) Projectile {
	return Projectile{
		Pos:       ship.Pos.Add(core.V(cfg.Offset.X, cfg.Offset.Y)),
		Speed:     cfg.Speed,
		Direction: cfg.Direction,
	}
}

// Box returns the projectile hitbox.
func (p Projectile) Box(size core.Vec) core.Box {
	return core.BoxAt(p.Pos, size)
}

// Spent reports whether the pierce budget is exhausted.
func (p Projectile) Spent() bool {
	return p.Pierce >= PierceBudget
}

// OutOfBounds reports whether x has left [0, width].
func (p Projectile) OutOfBounds(width float64) bool {
	return p.Pos.X < 0 || p.Pos.X > width
}

// AdvanceProjectiles moves every projectile one frame.
func AdvanceProjectiles(ps []Projectile) {
	for i := range ps {
		ps[i].Pos.X += ps[i].Speed
		ps[i].Pos.Y -= ps[i].Speed * ps[i].Direction
	}
}

// RetireProjectiles removes spent and out-of-bounds projectiles in place.
func RetireProjectiles(ps []Projectile, width float64) []Projectile {
	kept := ps[:0]
	for _, p := range ps {
		if p.Spent() || p.OutOfBounds(width) {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
