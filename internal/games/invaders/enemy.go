package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// EnemyType is the enemy variant tag.
type EnemyType int

const (
	EnemyDefault EnemyType = iota
	EnemyArmored
	EnemyFast
)

// String returns the variant name used as the draw tag.
func (t EnemyType) String() string {
	switch t {
	case EnemyDefault:
		return "default"
	case EnemyArmored:
		return "armored"
	case EnemyFast:
		return "fast"
	default:
		return "unknown"
	}
}

// Variant holds the fixed stats of an enemy type.
type Variant struct {
	Speed  float64 // Units per frame on each axis
	Health int
	Points int
}

var variants = [...]Variant{
	EnemyDefault: {Speed: 1.0, Health: 2, Points: 200},
	EnemyArmored: {Speed: 0.5, Health: 4, Points: 400},
	EnemyFast:    {Speed: 2.0, Health: 1, Points: 150},
}

// Stats returns the variant table entry for the type.
// Unknown types get the Default stats.
func (t EnemyType) Stats() Variant {
	if t < 0 || int(t) >= len(variants) {
		return variants[EnemyDefault]
	}
	return variants[t]
}

// Enemy is one member of the active wave.
type Enemy struct {
	Pos    core.Vec
	Type   EnemyType
	Health int
	Alive  bool
}

// NewEnemy creates a live enemy of the given type at full health.
func NewEnemy(t EnemyType, pos core.Vec) Enemy {
	return Enemy{
		Pos:    pos,
		Type:   t,
		Health: t.Stats().Health,
		Alive:  true,
	}
}

// Speed returns the per-frame speed derived from the enemy type.
func (e Enemy) Speed() float64 {
	return e.Type.Stats().Speed
}

// Dead reports whether the enemy has no health left.
func (e Enemy) Dead() bool {
	return e.Health <= 0
}

// Box returns the enemy hitbox.
func (e Enemy) Box(size core.Vec) core.Box {
	return core.BoxAt(e.Pos, size)
}

// AdvanceEnemies moves every enemy one frame along its diagonal descent.
func AdvanceEnemies(enemies []Enemy) {
	for i := range enemies {
		s := enemies[i].Speed()
		enemies[i].Pos.X -= s
		enemies[i].Pos.Y += s
	}
}

// RetireEnemies removes dead and escaped enemies from the slice in place.
// A dead enemy flips its alive flag exactly once and is returned in killed.
// An enemy whose y passes the arena bottom is counted as escaped and earns
// nothing. Death takes precedence when both apply on the same frame.
func RetireEnemies(enemies []Enemy, arenaHeight float64) (kept, killed []Enemy, escaped int) {
	kept = enemies[:0]
	for _, e := range enemies {
		switch {
		case e.Dead():
			if e.Alive {
				e.Alive = false
				killed = append(killed, e)
			}
		case e.Pos.Y > arenaHeight:
			escaped++
		default:
			kept = append(kept, e)
		}
	}
	return kept, killed, escaped
}
