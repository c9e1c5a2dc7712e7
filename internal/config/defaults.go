package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration.
// It must stay in sync with defaults/invaders.yaml.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
			Left:   20,
			Right:  360,
			Top:    300,
			Bottom: 550,
			Spawn:  Point{X: 100, Y: 450},
		},
		Ship: ShipConfig{
			Speed:  2.5,
			Width:  32,
			Height: 32,
		},
		Ammo: AmmoConfig{
			ReloadSeconds: 1.0,
		},
		Projectile: ProjectileConfig{
			Speed:     8.0,
			Direction: 1,
			Offset:    Point{X: 32, Y: 8},
			Width:     8,
			Height:    8,
		},
		Enemies: EnemyConfig{
			Width:  32,
			Height: 32,
		},
		Waves: WaveConfig{
			BaseCount: 3,
			MaxCount:  10,
			Slots: []Point{
				{X: 560, Y: 40},
				{X: 640, Y: 40},
				{X: 720, Y: 40},
				{X: 600, Y: 100},
				{X: 680, Y: 100},
				{X: 560, Y: 160},
				{X: 640, Y: 160},
				{X: 720, Y: 160},
				{X: 600, Y: 220},
				{X: 680, Y: 220},
			},
			Scaling: NormalScaling(),
		},
		Layout: LayoutConfig{
			Title:         Point{X: 120, Y: 20},
			Play:          Rect{X: 120, Y: 50, W: 340, H: 275},
			Gear:          Rect{X: 740, Y: 20, W: 40, H: 40},
			SettingsPanel: Rect{X: 200, Y: 150, W: 400, H: 300},
			Back:          Rect{X: 340, Y: 380, W: 120, H: 50},
			PlayAgain:     Rect{X: 230, Y: 300, W: 160, H: 60},
			Menu:          Rect{X: 410, Y: 300, W: 160, H: 60},
		},
		Scoring: ScoringConfig{
			ResetOnPlay: false,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
