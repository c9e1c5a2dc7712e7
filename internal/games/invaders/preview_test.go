package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestPreviewMatchesGame(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	const seed = 99

	preview := PreviewWaves(cfg.Waves, seed, 1)

	g := New(cfg)
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: seed})
	startRun(t, g)

	var fast, armored, def int
	for _, e := range g.world.Wave.Enemies {
		switch e.Type {
		case EnemyFast:
			fast++
		case EnemyArmored:
			armored++
		default:
			def++
		}
	}

	got := preview[0]
	if got.Enemies != len(g.world.Wave.Enemies) || got.Fast != fast || got.Armored != armored || got.Default != def {
		t.Errorf("preview %+v does not match wave 0 (fast=%d armored=%d default=%d)", got, fast, armored, def)
	}
}

func TestPreviewCounts(t *testing.T) {
	cfg := config.DefaultInvadersConfig().Waves
	waves := PreviewWaves(cfg, 1, 12)

	if len(waves) != 12 {
		t.Fatalf("got %d waves, want 12", len(waves))
	}
	for _, w := range waves {
		if w.Default+w.Fast+w.Armored != w.Enemies {
			t.Errorf("wave %d: types do not add up: %+v", w.Number, w)
		}
		if w.Armored != 0 {
			t.Errorf("wave %d: armored enemies generated with reference scaling", w.Number)
		}
		if w.Number >= cfg.Scaling.SaturationWave() && w.Fast != w.Enemies {
			t.Errorf("wave %d: expected all Fast after saturation, got %+v", w.Number, w)
		}
	}
	if waves[0].Enemies != 3 || waves[11].Enemies != 10 {
		t.Errorf("enemy counts %d..%d, want 3..10", waves[0].Enemies, waves[11].Enemies)
	}
}
