package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Hitboxes holds the entity sizes used for AABB tests.
type Hitboxes struct {
	Ship       core.Vec
	Enemy      core.Vec
	Projectile core.Vec
}

// CollisionResult summarizes one collision pass.
type CollisionResult struct {
	ShipHit bool // Ship overlapped at least one enemy
	Hits    int  // Projectile damage events applied
}

// ResolveCollisions runs the brute-force pairwise AABB pass for one frame.
//
// Every projectile/enemy overlap deals one damage and uses one pierce, on
// every frame the boxes overlap, so a projectile can damage several enemies
// in the same frame and the same enemy across frames. A projectile stops
// dealing damage once its pierce budget is used up, and enemies already at
// zero health are skipped, so neither counter leaves its range.
func ResolveCollisions(ship Ship, enemies []Enemy, projectiles []Projectile, hb Hitboxes) CollisionResult {
	var res CollisionResult

	shipBox := ship.Box(hb.Ship)
	for _, e := range enemies {
		if shipBox.Intersects(e.Box(hb.Enemy)) {
			res.ShipHit = true
			break
		}
	}

	for pi := range projectiles {
		p := &projectiles[pi]
		pbox := p.Box(hb.Projectile)
		for ei := range enemies {
			if p.Spent() {
				break
			}
			e := &enemies[ei]
			if e.Dead() {
				continue
			}
			if pbox.Intersects(e.Box(hb.Enemy)) {
				e.Health--
				p.Pierce++
				res.Hits++
			}
		}
	}

	return res
}
