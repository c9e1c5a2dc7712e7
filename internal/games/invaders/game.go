// Package invaders implements the Space Invaders+ simulation core.
// The player ship fires diagonal shots into waves of descending enemies.
// The package is pure: it consumes core.InputSnapshot values and produces
// core.DrawList values, and never touches the terminal.
package invaders

import (
	"strconv"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// World is the mutable simulation state of a run. Each subsystem receives
// exclusive access to the parts it updates during its step of the frame.
type World struct {
	Ship        Ship
	Ammo        AmmoPool
	Trigger     Trigger
	Projectiles []Projectile
	Wave        Wave
	Score       Score
}

// Game implements the per-frame loop and the screen state machine.
type Game struct {
	cfg     config.InvadersConfig
	hit     Hitboxes
	runtime core.RuntimeConfig
	rng     RandSource
	machine *Machine
	world   World
	pointer core.Vec
	tick    uint64
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.InvadersConfig) *Game {
	return &Game{
		cfg: cfg,
		hit: Hitboxes{
			Ship:       core.V(cfg.Ship.Width, cfg.Ship.Height),
			Enemy:      core.V(cfg.Enemies.Width, cfg.Enemies.Height),
			Projectile: core.V(cfg.Projectile.Width, cfg.Projectile.Height),
		},
		machine: NewMachine(cfg.Layout),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders+!!"
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}

// WorldSize returns the arena extent in world units.
func (g *Game) WorldSize() core.Vec {
	return core.V(g.cfg.Arena.Width, g.cfg.Arena.Height)
}

// Reset returns the game to its process-start state: the Menu screen, an
// empty world and a zero score. The RNG is reseeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = NewRand(cfg.Seed)
	g.machine = NewMachine(g.cfg.Layout)
	g.world = World{Projectiles: make([]Projectile, 0, 16)}
	g.pointer = core.Vec{}
	g.tick = 0
}

// SetRand replaces the wave RNG. Tests use it to pin wave contents.
func (g *Game) SetRand(r RandSource) {
	g.rng = r
}

// Step advances the simulation by one frame.
//
// Order: state-machine dispatch, then (while Playing) ammo refill, ship
// movement, fire handling, projectile advance, enemy advance, collisions,
// retirement, next wave, score. A click that starts a run only resets the
// world; simulation of the new run begins on the following frame.
func (g *Game) Step(in core.InputSnapshot) core.StepResult {
	g.tick++
	g.pointer = in.Pointer
	var events []core.Event

	if in.Release != nil {
		prev := g.machine.Current()
		next, reset := g.machine.HandleClick(in.Release.Pos.X, in.Release.Pos.Y)
		if next != prev {
			events = append(events, core.Event{Kind: core.EventStateChanged, Detail: prev.String() + "->" + next.String()})
		}
		if reset {
			events = append(events, g.startRun()...)
			return core.StepResult{State: g.State(), Events: events}
		}
	}

	if g.machine.Current() == StatePlaying {
		events = append(events, g.simulate(in)...)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// startRun applies the Playing-entry reset.
func (g *Game) startRun() []core.Event {
	w := &g.world
	w.Ship = Ship{Pos: core.V(g.cfg.Arena.Spawn.X, g.cfg.Arena.Spawn.Y), Facing: FacingNeutral}
	w.Ammo = FullAmmo()
	w.Trigger = Trigger{}
	w.Projectiles = w.Projectiles[:0]
	w.Wave = SpawnWave(0, g.cfg.Waves, g.rng)
	if g.cfg.Scoring.ResetOnPlay {
		w.Score = 0
	}
	return []core.Event{waveEvent(w.Wave)}
}

// simulate runs one Playing frame.
func (g *Game) simulate(in core.InputSnapshot) []core.Event {
	var events []core.Event
	w := &g.world
	cfg := g.cfg

	dt := in.DT
	if dt <= 0 {
		dt = g.runtime.FrameDT()
	}

	w.Ammo = w.Ammo.Refill(dt, cfg.Ammo.ReloadSeconds)
	w.Ship = MoveShip(w.Ship, in.Move, cfg.Ship.Speed, cfg.Arena)

	var pressed bool
	w.Trigger, pressed = w.Trigger.Update(in.PrimaryHeld)
	if pressed {
		if ammo, ok := w.Ammo.Consume(); ok {
			w.Ammo = ammo
			w.Projectiles = append(w.Projectiles, SpawnProjectile(w.Ship, cfg.Projectile))
			events = append(events, core.Event{Kind: core.EventShotFired, Value: w.Ammo.Count})
		}
	}

	AdvanceProjectiles(w.Projectiles)
	AdvanceEnemies(w.Wave.Enemies)

	res := ResolveCollisions(w.Ship, w.Wave.Enemies, w.Projectiles, g.hit)

	w.Projectiles = RetireProjectiles(w.Projectiles, cfg.Arena.Width)
	kept, killed, escaped := RetireEnemies(w.Wave.Enemies, cfg.Arena.Height)
	w.Wave.Enemies = kept
	if escaped > 0 {
		events = append(events, core.Event{Kind: core.EventEnemyEscaped, Value: escaped})
	}

	if w.Wave.Empty() {
		w.Wave = SpawnWave(w.Wave.Number+1, cfg.Waves, g.rng)
		events = append(events, waveEvent(w.Wave))
	}

	for _, e := range killed {
		w.Score = w.Score.OnKill(e)
		events = append(events, core.Event{Kind: core.EventEnemyKilled, Detail: e.Type.String(), Value: PointsGained(e.Type)})
	}

	if res.ShipHit && g.machine.EndRun() {
		events = append(events,
			core.Event{Kind: core.EventGameOver, Value: int(w.Score)},
			core.Event{Kind: core.EventStateChanged, Detail: StatePlaying.String() + "->" + StateGameOver.String()},
		)
	}

	return events
}

func waveEvent(w Wave) core.Event {
	return core.Event{
		Kind:   core.EventWaveSpawned,
		Detail: strconv.Itoa(len(w.Enemies)) + " enemies",
		Value:  w.Number,
	}
}

// Current returns the active screen.
func (g *Game) Current() State {
	return g.machine.Current()
}

// State returns the summary the platform needs.
func (g *Game) State() core.GameState {
	s := g.machine.Current()
	return core.GameState{
		Screen:   s.String(),
		Score:    int(g.world.Score),
		Wave:     g.world.Wave.Number,
		Ammo:     ClampAmmo(g.world.Ammo.Count),
		GameOver: s == StateGameOver,
	}
}

// ButtonCenter returns the center of a button on the current screen, so
// keyboard shortcuts can synthesize clicks. It reports false when the
// button is not visible.
func (g *Game) ButtonCenter(id string) (core.Vec, bool) {
	for _, b := range Buttons(g.machine.Current(), g.cfg.Layout) {
		if string(b.ID) == id {
			return b.Box.Center(), true
		}
	}
	return core.Vec{}, false
}
