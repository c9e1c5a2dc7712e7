package invaders

import "math"

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization; positions are stored
// in thousandths of a world unit.
type Snapshot struct {
	Tick        uint64
	State       int
	Score       int
	WaveNumber  int
	Ammo        int
	AmmoElapsed int // Milliseconds
	ShipX       int
	ShipY       int
	Facing      int
	Triggered   bool

	// Each enemy is 5 ints: X, Y, Type, Health, Alive
	EnemyData []int

	// Each projectile is 3 ints: X, Y, Pierce
	ProjectileData []int
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world

	enemyData := make([]int, 0, len(w.Wave.Enemies)*5)
	for _, e := range w.Wave.Enemies {
		alive := 0
		if e.Alive {
			alive = 1
		}
		enemyData = append(enemyData, milli(e.Pos.X), milli(e.Pos.Y), int(e.Type), e.Health, alive)
	}

	projectileData := make([]int, 0, len(w.Projectiles)*3)
	for _, p := range w.Projectiles {
		projectileData = append(projectileData, milli(p.Pos.X), milli(p.Pos.Y), p.Pierce)
	}

	return Snapshot{
		Tick:           g.tick,
		State:          int(g.machine.Current()),
		Score:          int(w.Score),
		WaveNumber:     w.Wave.Number,
		Ammo:           w.Ammo.Count,
		AmmoElapsed:    milli(w.Ammo.Elapsed),
		ShipX:          milli(w.Ship.Pos.X),
		ShipY:          milli(w.Ship.Pos.Y),
		Facing:         int(w.Ship.Facing),
		Triggered:      w.Trigger.Held,
		EnemyData:      enemyData,
		ProjectileData: projectileData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.WaveNumber)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ammo)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AmmoElapsed) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Facing)      //#nosec G115 -- hash computation
	if snap.Triggered {
		h = h*31 + 1
	}

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ProjectileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
