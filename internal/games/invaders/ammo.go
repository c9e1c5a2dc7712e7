package invaders

// MaxAmmo is the capacity of the ammo pool.
const MaxAmmo = 5

// reloadEpsilon absorbs float drift from summing per-frame deltas, so that
// 60 frames of 1/60 s count as a full second.
const reloadEpsilon = 1e-9

// AmmoPool is the bounded ammo counter plus its refill timer.
type AmmoPool struct {
	Count   int
	Elapsed float64 // Seconds since the last refill
}

// FullAmmo returns a full pool with a fresh timer.
func FullAmmo() AmmoPool {
	return AmmoPool{Count: MaxAmmo}
}

// ClampAmmo restricts n to [0, MaxAmmo].
func ClampAmmo(n int) int {
	return max(0, min(n, MaxAmmo))
}

// Refill advances the timer by dt and adds one round when at least
// interval seconds have passed and the pool is not full. The timer keeps
// running while the pool is full.
func (a AmmoPool) Refill(dt, interval float64) AmmoPool {
	a.Elapsed += dt
	if a.Elapsed+reloadEpsilon >= interval && a.Count < MaxAmmo {
		a.Count++
		a.Elapsed = 0
	}
	a.Count = ClampAmmo(a.Count)
	return a
}

// Consume takes one round. It reports false, leaving the pool unchanged,
// when the pool is empty.
func (a AmmoPool) Consume() (AmmoPool, bool) {
	if a.Count <= 0 {
		return a, false
	}
	a.Count--
	return a, true
}

// Trigger turns a held fire control into press edges.
type Trigger struct {
	Held bool
}

// Update records the current held state and reports whether this frame is a
// press edge (not held last frame, held now).
func (t Trigger) Update(held bool) (Trigger, bool) {
	edge := held && !t.Held
	return Trigger{Held: held}, edge
}
