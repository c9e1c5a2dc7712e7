package config

import "testing"

func TestNormalThresholds(t *testing.T) {
	s := NormalScaling()

	tests := []struct {
		wave          int
		fast, armored float64
	}{
		{0, 0.2, 0.1},
		{2, 0.4, 0.2},
		{4, 0.6, 0.3},
	}
	const eps = 1e-9
	for _, tc := range tests {
		if got := s.FastThreshold(tc.wave); got < tc.fast-eps || got > tc.fast+eps {
			t.Errorf("FastThreshold(%d) = %v, expected %v", tc.wave, got, tc.fast)
		}
		if got := s.ArmoredThreshold(tc.wave); got < tc.armored-eps || got > tc.armored+eps {
			t.Errorf("ArmoredThreshold(%d) = %v, expected %v", tc.wave, got, tc.armored)
		}
	}
}

func TestArmoredThresholdNeverExceedsFast(t *testing.T) {
	// With the reference values the armored check can never succeed once the
	// fast check has failed. This documents the behavior; it is not a bug fix.
	s := NormalScaling()
	for wave := 0; wave < 50; wave++ {
		if s.ArmoredThreshold(wave) > s.FastThreshold(wave) {
			t.Fatalf("wave %d: armored threshold %v above fast threshold %v",
				wave, s.ArmoredThreshold(wave), s.FastThreshold(wave))
		}
	}
}

func TestSaturationWave(t *testing.T) {
	if got := NormalScaling().SaturationWave(); got != 8 {
		t.Errorf("normal SaturationWave() = %d, expected 8", got)
	}
	if got := ScalingForPreset(DifficultyFixed).SaturationWave(); got != -1 {
		t.Errorf("fixed SaturationWave() = %d, expected -1", got)
	}
	if got := (WaveScaling{FastBase: 1}).SaturationWave(); got != 0 {
		t.Errorf("saturated base SaturationWave() = %d, expected 0", got)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultInvadersConfig()
	ApplyPreset(&cfg, "")
	if cfg.Waves.Scaling != NormalScaling() {
		t.Error("empty preset should not change scaling")
	}

	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Waves.Scaling.FastBase != 0.3 {
		t.Errorf("hard FastBase = %v, expected 0.3", cfg.Waves.Scaling.FastBase)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Waves.Scaling.FastStep != 0 || cfg.Waves.Scaling.ArmoredStep != 0 {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	tests := map[string]DifficultyPreset{
		"easy":   DifficultyEasy,
		"normal": DifficultyNormal,
		"hard":   DifficultyHard,
		"fixed":  DifficultyFixed,
		"insane": "",
		"":       "",
	}
	for in, want := range tests {
		if got := ParsePreset(in); got != want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", in, got, want)
		}
	}
}
