package invaders

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// RandSource is the random draw sequence used for wave composition.
// *rand.Rand satisfies it; tests substitute fixed sequences.
type RandSource interface {
	Float64() float64
}

// NewRand returns a seeded source.
func NewRand(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}

// Wave is the active batch of enemies.
type Wave struct {
	Number  int
	Enemies []Enemy
}

// Empty reports whether every enemy of the wave has been removed.
func (w Wave) Empty() bool {
	return len(w.Enemies) == 0
}

// PickVariant maps one uniform draw to an enemy type for the given wave.
// The checks run in order against the same draw: Fast first, then Armored,
// else Default. The thresholds are deliberately not normalized; with the
// reference scaling the Armored branch is unreachable.
func PickVariant(draw float64, wave int, s config.WaveScaling) EnemyType {
	if draw < s.FastThreshold(wave) {
		return EnemyFast
	}
	if draw < s.ArmoredThreshold(wave) {
		return EnemyArmored
	}
	return EnemyDefault
}

// SpawnWave composes wave number n: min(base+n, max) enemies placed in the
// configured slots in order, one draw per slot.
func SpawnWave(n int, cfg config.WaveConfig, rng RandSource) Wave {
	count := cfg.EnemyCount(n)
	enemies := make([]Enemy, 0, count)
	for i := 0; i < count; i++ {
		slot := cfg.Slots[i]
		t := PickVariant(rng.Float64(), n, cfg.Scaling)
		enemies = append(enemies, NewEnemy(t, core.V(slot.X, slot.Y)))
	}
	return Wave{Number: n, Enemies: enemies}
}
