package invaders

import "github.com/vovakirdan/tui-invaders/internal/config"

// WaveSummary describes the composition of one generated wave.
type WaveSummary struct {
	Number           int
	Enemies          int
	Default          int
	Armored          int
	Fast             int
	FastThreshold    float64
	ArmoredThreshold float64
}

// PreviewWaves generates waves 0..count-1 in order from one seeded source,
// exactly as a run started right after Reset with that seed would.
func PreviewWaves(cfg config.WaveConfig, seed int64, count int) []WaveSummary {
	rng := NewRand(seed)
	out := make([]WaveSummary, 0, max(0, count))
	for n := 0; n < count; n++ {
		w := SpawnWave(n, cfg, rng)
		sum := WaveSummary{
			Number:           n,
			Enemies:          len(w.Enemies),
			FastThreshold:    cfg.Scaling.FastThreshold(n),
			ArmoredThreshold: cfg.Scaling.ArmoredThreshold(n),
		}
		for _, e := range w.Enemies {
			switch e.Type {
			case EnemyArmored:
				sum.Armored++
			case EnemyFast:
				sum.Fast++
			default:
				sum.Default++
			}
		}
		out = append(out, sum)
	}
	return out
}
