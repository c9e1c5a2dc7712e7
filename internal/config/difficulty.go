package config

import "math"

// WaveScaling holds the per-wave thresholds used to pick enemy variants.
// Both thresholds grow linearly with the wave number and are compared, in
// order, against a single uniform draw per slot.
type WaveScaling struct {
	FastBase    float64 `yaml:"fast_base"`
	FastStep    float64 `yaml:"fast_step"`
	ArmoredBase float64 `yaml:"armored_base"`
	ArmoredStep float64 `yaml:"armored_step"`
}

// NormalScaling returns the reference thresholds.
func NormalScaling() WaveScaling {
	return WaveScaling{
		FastBase:    0.2,
		FastStep:    0.1,
		ArmoredBase: 0.1,
		ArmoredStep: 0.05,
	}
}

// FastThreshold returns the Fast-variant threshold for a wave.
func (s WaveScaling) FastThreshold(wave int) float64 {
	return s.FastBase + s.FastStep*float64(wave)
}

// ArmoredThreshold returns the Armored-variant threshold for a wave.
// The value is not normalized against FastThreshold.
func (s WaveScaling) ArmoredThreshold(wave int) float64 {
	return s.ArmoredBase + s.ArmoredStep*float64(wave)
}

// SaturationWave returns the first wave at which every draw in [0,1) selects
// Fast, or -1 if that never happens.
func (s WaveScaling) SaturationWave() int {
	if s.FastBase >= 1 {
		return 0
	}
	if s.FastStep <= 0 {
		return -1
	}
	return int(math.Ceil((1 - s.FastBase) / s.FastStep))
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ScalingForPreset returns the wave scaling of a preset.
func ScalingForPreset(preset DifficultyPreset) WaveScaling {
	s := NormalScaling()
	switch preset {
	case DifficultyEasy:
		s.FastBase, s.FastStep = 0.1, 0.05
		s.ArmoredBase, s.ArmoredStep = 0.05, 0.025
	case DifficultyHard:
		s.FastBase, s.FastStep = 0.3, 0.15
		s.ArmoredBase, s.ArmoredStep = 0.15, 0.075
	case DifficultyFixed:
		// No progression: wave 0 odds forever
		s.FastStep = 0
		s.ArmoredStep = 0
	}
	return s
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Waves.Scaling = ScalingForPreset(preset)
}
