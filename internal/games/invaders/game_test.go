package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func newTestGame(t *testing.T, cfg config.InvadersConfig) *Game {
	t.Helper()
	g := New(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 800, ScreenH: 600, TickRate: 60, Seed: 42})
	return g
}

// clickButton releases the pointer at the center of a visible button.
func clickButton(t *testing.T, g *Game, id ButtonID) core.StepResult {
	t.Helper()
	pos, ok := g.ButtonCenter(string(id))
	if !ok {
		t.Fatalf("button %q not visible on %v", id, g.Current())
	}
	return g.Step(core.Click(pos.X, pos.Y))
}

func startRun(t *testing.T, g *Game) {
	t.Helper()
	clickButton(t, g, ButtonPlay)
	if g.Current() != StatePlaying {
		t.Fatalf("expected Playing after PLAY, got %v", g.Current())
	}
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestResetStartsAtMenu(t *testing.T) {
	g := newTestGame(t, config.DefaultInvadersConfig())

	st := g.State()
	if st.Screen != "menu" || st.Score != 0 || st.GameOver {
		t.Errorf("unexpected initial state: %+v", st)
	}

	list := g.Draw()
	if list.Count(core.KindShip) != 0 || list.Count(core.KindEnemy) != 0 {
		t.Error("menu should not draw the playfield")
	}
	if _, ok := list.Find(core.KindButton, string(ButtonPlay)); !ok {
		t.Error("menu should draw the PLAY button")
	}
	if title, ok := list.Find(core.KindTitle, "title"); !ok || title.Label != "Space Invaders+!!" {
		t.Errorf("title = %+v", title)
	}
}

func TestMenuNavigation(t *testing.T) {
	g := newTestGame(t, config.DefaultInvadersConfig())

	// A click on empty space does nothing.
	g.Step(core.Click(10, 590))
	if g.Current() != StateMenu {
		t.Fatalf("stray click changed state to %v", g.Current())
	}

	res := clickButton(t, g, ButtonGear)
	if g.Current() != StateSettings || !hasEvent(res.Events, core.EventStateChanged) {
		t.Fatalf("gear should open Settings, got %v", g.Current())
	}
	if _, ok := g.ButtonCenter(string(ButtonPlay)); ok {
		t.Error("PLAY should not be clickable on Settings")
	}

	clickButton(t, g, ButtonBack)
	if g.Current() != StateMenu {
		t.Fatalf("back should return to Menu, got %v", g.Current())
	}
}

func TestPlayEntryResetsRun(t *testing.T) {
	g := newTestGame(t, config.DefaultInvadersConfig())

	// Movement held on the click frame must not move the ship.
	pos, _ := g.ButtonCenter(string(ButtonPlay))
	in := core.Click(pos.X, pos.Y)
	in.Move.Right = true
	res := g.Step(in)

	if g.Current() != StatePlaying {
		t.Fatalf("expected Playing, got %v", g.Current())
	}
	if !hasEvent(res.Events, core.EventWaveSpawned) {
		t.Error("expected a wave spawn event on run start")
	}
	if g.world.Ship.Pos != core.V(100, 450) {
		t.Errorf("ship at %v, want spawn (100,450)", g.world.Ship.Pos)
	}
	if g.world.Ammo.Count != MaxAmmo {
		t.Errorf("ammo = %d, want full", g.world.Ammo.Count)
	}
	if g.world.Wave.Number != 0 || len(g.world.Wave.Enemies) != 3 {
		t.Errorf("wave %d with %d enemies, want wave 0 with 3",
			g.world.Wave.Number, len(g.world.Wave.Enemies))
	}
	if len(g.world.Projectiles) != 0 {
		t.Error("projectiles should be cleared")
	}
}

func TestWaveProgression(t *testing.T) {
	g := newTestGame(t, config.DefaultInvadersConfig())
	g.SetRand(fixedRand(0.99))
	startRun(t, g)

	// One projectile per enemy, close enough to hit on two consecutive frames.
	for _, e := range g.world.Wave.Enemies {
		if e.Type != EnemyDefault {
			t.Fatalf("expected Default enemies, got %v", e.Type)
		}
		g.world.Projectiles = append(g.world.Projectiles, Projectile{
			Pos:       e.Pos.Add(core.V(12, 12)),
			Speed:     8,
			Direction: 1,
		})
	}

	g.Step(core.NewInputSnapshot())
	for _, e := range g.world.Wave.Enemies {
		if e.Health != 1 {
			t.Fatalf("after one frame enemy health = %d, want 1", e.Health)
		}
	}

	res := g.Step(core.NewInputSnapshot())

	if g.world.Wave.Number != 1 {
		t.Fatalf("wave = %d, want 1", g.world.Wave.Number)
	}
	if len(g.world.Wave.Enemies) != 4 {
		t.Fatalf("wave 1 has %d enemies, want 4", len(g.world.Wave.Enemies))
	}
	slots := g.cfg.Waves.Slots
	for i, e := range g.world.Wave.Enemies {
		if e.Pos != core.V(slots[i].X, slots[i].Y) {
			t.Errorf("enemy %d at %v, want slot %v", i, e.Pos, slots[i])
		}
	}
	if g.State().Score != 600 {
		t.Errorf("score = %d, want 600", g.State().Score)
	}
	if len(g.world.Projectiles) != 0 {
		t.Errorf("spent projectiles not retired: %d left", len(g.world.Projectiles))
	}

	kills := 0
	for _, e := range res.Events {
		if e.Kind == core.EventEnemyKilled {
			kills++
		}
	}
	if kills != 3 {
		t.Errorf("kill events = %d, want 3", kills)
	}
}

func TestEscapedWavesAdvanceWithoutScore(t *testing.T) {
	g := newTestGame(t, config.DefaultInvadersConfig())
	g.SetRand(fixedRand(0.99))
	startRun(t, g)

	// Top-left corner, out of every enemy's diagonal path.
	g.world.Ship.Pos = core.V(20, 300)

	escaped := 0
	lastWave := 0
	for frame := 0; frame < 5000 && g.world.Wave.Number < 5; frame++ {
		res := g.Step(core.NewInputSnapshot())
		if g.Current() != StatePlaying {
			t.Fatalf("frame %d: run ended on %v", frame, g.Current())
		}
		for _, e := range res.Events {
			switch e.Kind {
			case core.EventEnemyEscaped:
				escaped += e.Value
			case core.EventEnemyKilled:
				t.Fatalf("frame %d: unexpected kill %+v", frame, e)
			}
		}
		if n := g.world.Wave.Number; n != lastWave {
			if n != lastWave+1 {
				t.Fatalf("wave jumped from %d to %d", lastWave, n)
			}
			lastWave = n
		}
	}

	if g.world.Wave.Number != 5 {
		t.Fatalf("wave = %d, want 5", g.world.Wave.Number)
	}
	// Waves 0..4 hold 3+4+5+6+7 enemies.
	if escaped != 25 {
		t.Errorf("escaped = %d, want 25", escaped)
	}
	if g.State().Score != 0 {
		t.Errorf("score = %d, want 0 for escapes", g.State().Score)
	}
}

func TestFireRequiresPressEdge(t *testing.T) {
	g := newTestGame(t, config.DefaultInvadersConfig())
	startRun(t, g)

	held := core.NewInputSnapshot()
	held.PrimaryHeld = true
	for i := 0; i < 10; i++ {
		g.Step(held)
	}

	if len(g.world.Projectiles) != 1 {
		t.Errorf("holding fire spawned %d projectiles, want 1", len(g.world.Projectiles))
	}
	if g.world.Ammo.Count != MaxAmmo-1 {
		t.Errorf("ammo = %d, want %d", g.world.Ammo.Count, MaxAmmo-1)
	}
}

func TestEmptyAmmoRefillThenFire(t *testing.T) {
	g := newTestGame(t, config.DefaultInvadersConfig())
	startRun(t, g)
	g.world.Ammo = AmmoPool{}

	held := core.NewInputSnapshot()
	held.PrimaryHeld = true
	for i := 0; i < 60; i++ {
		res := g.Step(held)
		if hasEvent(res.Events, core.EventShotFired) {
			t.Fatalf("fired with empty ammo on frame %d", i)
		}
	}
	if g.world.Ammo.Count != 1 {
		t.Fatalf("ammo = %d after one second, want 1", g.world.Ammo.Count)
	}

	g.Step(core.NewInputSnapshot())
	res := g.Step(held)

	if !hasEvent(res.Events, core.EventShotFired) {
		t.Fatal("expected a shot after re-pressing")
	}
	if g.world.Ammo.Count != 0 {
		t.Errorf("ammo = %d, want 0", g.world.Ammo.Count)
	}
	if len(g.world.Projectiles) != 1 {
		t.Errorf("projectiles = %d, want 1", len(g.world.Projectiles))
	}
}

func TestShipCollisionEndsRun(t *testing.T) {
	g := newTestGame(t, config.DefaultInvadersConfig())
	startRun(t, g)

	ship := g.world.Ship.Pos
	g.world.Wave.Enemies = []Enemy{NewEnemy(EnemyDefault, ship.Add(core.V(1, -1)))}

	res := g.Step(core.NewInputSnapshot())

	if g.Current() != StateGameOver {
		t.Fatalf("expected GameOver, got %v", g.Current())
	}
	if !res.State.GameOver || !hasEvent(res.Events, core.EventGameOver) {
		t.Error("expected game over state and event")
	}

	list := g.Draw()
	if _, ok := list.Find(core.KindButton, string(ButtonPlayAgain)); !ok {
		t.Error("game over should show PLAY AGAIN")
	}
	if _, ok := list.Find(core.KindButton, string(ButtonMenu)); !ok {
		t.Error("game over should show MENU")
	}

	// The playfield is frozen.
	before := g.Snapshot()
	g.Step(core.NewInputSnapshot())
	after := g.Snapshot()
	if before.ShipX != after.ShipX || len(before.EnemyData) != len(after.EnemyData) ||
		before.EnemyData[1] != after.EnemyData[1] {
		t.Error("world should not advance on the GameOver screen")
	}
}

func TestScoreAcrossRuns(t *testing.T) {
	tests := []struct {
		name        string
		resetOnPlay bool
		want        int
	}{
		{"carried over", false, 500},
		{"reset on play", true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultInvadersConfig()
			cfg.Scoring.ResetOnPlay = tc.resetOnPlay
			g := newTestGame(t, cfg)
			startRun(t, g)

			g.world.Score = 500
			g.machine.EndRun()

			clickButton(t, g, ButtonPlayAgain)
			if g.Current() != StatePlaying {
				t.Fatalf("expected Playing, got %v", g.Current())
			}
			if g.State().Score != tc.want {
				t.Errorf("score = %d, want %d", g.State().Score, tc.want)
			}
		})
	}
}

func TestGameOverToMenu(t *testing.T) {
	g := newTestGame(t, config.DefaultInvadersConfig())
	startRun(t, g)
	g.machine.EndRun()

	clickButton(t, g, ButtonMenu)
	if g.Current() != StateMenu {
		t.Errorf("expected Menu, got %v", g.Current())
	}
}

func TestOutOfBoundsProjectileNotDrawn(t *testing.T) {
	g := newTestGame(t, config.DefaultInvadersConfig())
	startRun(t, g)

	g.world.Projectiles = append(g.world.Projectiles,
		Projectile{Pos: core.V(795, 300), Speed: 8, Direction: 1},
		Projectile{Pos: core.V(400, 300), Speed: 8, Direction: 1},
		Projectile{Pos: core.V(200, -20), Speed: 8, Direction: 1},
	)
	g.Step(core.NewInputSnapshot())

	if len(g.world.Projectiles) != 2 {
		t.Fatalf("live projectiles = %d, want 2 (above the top edge stays live)", len(g.world.Projectiles))
	}

	list := g.Draw()
	if n := list.Count(core.KindProjectile); n != 1 {
		t.Fatalf("drew %d projectiles, want 1", n)
	}
	for _, r := range list {
		if r.Kind == core.KindProjectile && (r.Pos.X < 0 || r.Pos.X > 800 || r.Pos.Y+8 <= 0) {
			t.Errorf("out-of-bounds projectile drawn at %v", r.Pos)
		}
	}
}

func TestHUDDrawn(t *testing.T) {
	g := newTestGame(t, config.DefaultInvadersConfig())
	startRun(t, g)
	g.world.Ammo.Count = 3

	list := g.Draw()
	ammo, ok := list.Find(core.KindAmmo, "hud")
	if !ok || ammo.Value != 3 {
		t.Errorf("ammo indicator = %+v", ammo)
	}
	if _, ok := list.Find(core.KindScore, "hud"); !ok {
		t.Error("score not drawn")
	}
	if wave, ok := list.Find(core.KindWave, "hud"); !ok || wave.Value != 0 {
		t.Errorf("wave indicator = %+v", wave)
	}
	if list.Count(core.KindShip) != 1 || list.Count(core.KindEnemy) != 3 {
		t.Error("playfield entities missing")
	}
	if list[0].Kind != core.KindBackground {
		t.Error("background must be drawn first")
	}
}

func TestButtonHover(t *testing.T) {
	g := newTestGame(t, config.DefaultInvadersConfig())

	pos, _ := g.ButtonCenter(string(ButtonGear))
	in := core.NewInputSnapshot()
	in.Pointer = pos
	g.Step(in)

	list := g.Draw()
	gear, _ := list.Find(core.KindButton, string(ButtonGear))
	play, _ := list.Find(core.KindButton, string(ButtonPlay))
	if !gear.Hover || play.Hover {
		t.Errorf("hover gear=%v play=%v, want true/false", gear.Hover, play.Hover)
	}
}

func TestShipStaysInArena(t *testing.T) {
	g := newTestGame(t, config.DefaultInvadersConfig())
	startRun(t, g)
	arena := g.cfg.Arena

	moves := []core.Directions{{Left: true}, {Up: true}, {Right: true}, {Down: true}}
	for _, m := range moves {
		in := core.NewInputSnapshot()
		in.Move = m
		for i := 0; i < 200 && g.Current() == StatePlaying; i++ {
			g.Step(in)
			p := g.world.Ship.Pos
			if p.X < arena.Left || p.X > arena.Right || p.Y < arena.Top || p.Y > arena.Bottom {
				t.Fatalf("ship left the arena: %v", p)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 800, ScreenH: 600, TickRate: 60, Seed: 12345}

	g1 := New(config.DefaultInvadersConfig())
	g1.Reset(cfg)
	g2 := New(config.DefaultInvadersConfig())
	g2.Reset(cfg)

	play, _ := g1.ButtonCenter(string(ButtonPlay))

	for i := 0; i < 300; i++ {
		in := core.NewInputSnapshot()
		switch {
		case i == 0:
			in = core.Click(play.X, play.Y)
		case i%7 == 0:
			in.PrimaryHeld = true
		case i%3 == 0:
			in.Move.Up = true
		}
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Errorf("hash mismatch: %d vs %d", s1.Hash(), s2.Hash())
	}
	if s1.Score != s2.Score || s1.WaveNumber != s2.WaveNumber {
		t.Errorf("state mismatch: %+v vs %+v", s1, s2)
	}
}
