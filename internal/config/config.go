// Package config provides YAML-based game configuration loading and
// difficulty presets for the invaders simulation.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// InvadersConfig contains all tunable parameters of the simulation.
// Coordinates are world units; the default world is 800x600 with Y growing down.
type InvadersConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Ship       ShipConfig       `yaml:"ship"`
	Ammo       AmmoConfig       `yaml:"ammo"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Waves      WaveConfig       `yaml:"waves"`
	Layout     LayoutConfig     `yaml:"layout"`
	Scoring    ScoringConfig    `yaml:"scoring"`
}

// Point is a world-space coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Rect is a world-space rectangle (top-left corner + size).
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// ArenaConfig defines the playfield and the ship's allowed rectangle.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Left   float64 `yaml:"left"`   // Ship position clamp, x min
	Right  float64 `yaml:"right"`  // Ship position clamp, x max
	Top    float64 `yaml:"top"`    // Ship position clamp, y min
	Bottom float64 `yaml:"bottom"` // Ship position clamp, y max
	Spawn  Point   `yaml:"spawn"`  // Ship position on every Playing entry
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Speed  float64 `yaml:"speed"` // Units per frame per direction flag
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AmmoConfig defines the refill timer. Capacity is fixed by the game.
type AmmoConfig struct {
	ReloadSeconds float64 `yaml:"reload_seconds"`
}

// ProjectileConfig defines player shots.
type ProjectileConfig struct {
	Speed     float64 `yaml:"speed"`     // Units per frame on each axis
	Direction float64 `yaml:"direction"` // Sign applied to the vertical component
	Offset    Point   `yaml:"offset"`    // Spawn offset from the ship position
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
}

// EnemyConfig defines the enemy hitbox. Per-type stats are fixed by the game.
type EnemyConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// WaveConfig defines wave composition.
type WaveConfig struct {
	BaseCount int         `yaml:"base_count"` // Enemies in wave 0
	MaxCount  int         `yaml:"max_count"`  // Cap on enemies per wave
	Slots     []Point     `yaml:"slots"`      // Spawn positions, filled in order
	Scaling   WaveScaling `yaml:"scaling"`
}

// LayoutConfig places the overlay widgets of each screen.
type LayoutConfig struct {
	Title         Point `yaml:"title"`
	Play          Rect  `yaml:"play"`
	Gear          Rect  `yaml:"gear"`
	SettingsPanel Rect  `yaml:"settings_panel"`
	Back          Rect  `yaml:"back"`
	PlayAgain     Rect  `yaml:"play_again"`
	Menu          Rect  `yaml:"menu"`
}

// ScoringConfig controls score lifetime.
type ScoringConfig struct {
	// ResetOnPlay clears the score on every Playing entry. Off by default:
	// the score accumulates across runs within one process.
	ResetOnPlay bool `yaml:"reset_on_play"`
}

// EnemyCount returns the number of enemies in the given wave:
// min(base_count + wave, max_count), never more than there are slots.
func (w WaveConfig) EnemyCount(wave int) int {
	n := w.BaseCount + wave
	n = min(n, w.MaxCount)
	n = min(n, len(w.Slots))
	return max(n, 0)
}

// Validate checks the config for values the simulation cannot run with.
func (c InvadersConfig) Validate() error {
	a := c.Arena
	switch {
	case a.Width <= 0 || a.Height <= 0:
		return fmt.Errorf("%w: arena size must be positive", ErrInvalidConfig)
	case a.Left > a.Right || a.Top > a.Bottom:
		return fmt.Errorf("%w: arena ship bounds are inverted", ErrInvalidConfig)
	case a.Spawn.X < a.Left || a.Spawn.X > a.Right || a.Spawn.Y < a.Top || a.Spawn.Y > a.Bottom:
		return fmt.Errorf("%w: ship spawn lies outside ship bounds", ErrInvalidConfig)
	}

	if c.Ship.Width <= 0 || c.Ship.Height <= 0 || c.Ship.Speed < 0 {
		return fmt.Errorf("%w: ship size must be positive and speed non-negative", ErrInvalidConfig)
	}
	if c.Ammo.ReloadSeconds <= 0 {
		return fmt.Errorf("%w: ammo reload_seconds must be positive", ErrInvalidConfig)
	}
	if c.Projectile.Speed <= 0 || c.Projectile.Width <= 0 || c.Projectile.Height <= 0 {
		return fmt.Errorf("%w: projectile speed and size must be positive", ErrInvalidConfig)
	}
	if c.Projectile.Direction != 1 && c.Projectile.Direction != -1 {
		return fmt.Errorf("%w: projectile direction must be 1 or -1, got %v", ErrInvalidConfig, c.Projectile.Direction)
	}
	if c.Enemies.Width <= 0 || c.Enemies.Height <= 0 {
		return fmt.Errorf("%w: enemy size must be positive", ErrInvalidConfig)
	}

	w := c.Waves
	if w.BaseCount <= 0 || w.MaxCount < w.BaseCount {
		return fmt.Errorf("%w: waves need 0 < base_count <= max_count", ErrInvalidConfig)
	}
	if len(w.Slots) < w.MaxCount {
		return fmt.Errorf("%w: waves define %d slots but max_count is %d", ErrInvalidConfig, len(w.Slots), w.MaxCount)
	}
	return nil
}
