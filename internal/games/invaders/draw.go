package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Draw returns the draw requests for the current frame, back to front.
func (g *Game) Draw() core.DrawList {
	arena := g.cfg.Arena
	list := core.DrawList{
		{Kind: core.KindBackground, Size: core.V(arena.Width, arena.Height)},
	}

	layout := g.cfg.Layout
	state := g.machine.Current()
	switch state {
	case StateMenu:
		list = append(list, core.DrawRequest{
			Kind:  core.KindTitle,
			Pos:   core.V(layout.Title.X, layout.Title.Y),
			Tag:   "title",
			Label: g.Title(),
		})

	case StateSettings:
		panel := layout.SettingsPanel
		list = append(list,
			core.DrawRequest{
				Kind: core.KindPanel,
				Pos:  core.V(panel.X, panel.Y),
				Size: core.V(panel.W, panel.H),
				Tag:  "settings",
			},
			core.DrawRequest{
				Kind:  core.KindTitle,
				Pos:   core.V(panel.X+16, panel.Y+16),
				Tag:   "settings",
				Label: "SETTINGS",
			},
		)

	case StatePlaying:
		list = g.appendPlayfield(list)

	case StateGameOver:
		list = g.appendPlayfield(list)
		again := layout.PlayAgain
		list = append(list, core.DrawRequest{
			Kind:  core.KindTitle,
			Pos:   core.V(again.X, again.Y-60),
			Tag:   "gameover",
			Label: "GAME OVER",
			Value: int(g.world.Score),
		})
	}

	for _, b := range Buttons(state, layout) {
		list = append(list, core.DrawRequest{
			Kind:  core.KindButton,
			Pos:   core.V(b.Box.X, b.Box.Y),
			Size:  core.V(b.Box.W, b.Box.H),
			Tag:   string(b.ID),
			Label: b.Label,
			Hover: b.Box.Contains(g.pointer),
		})
	}

	return list
}

// appendPlayfield adds the ship, enemies, projectiles and HUD.
func (g *Game) appendPlayfield(list core.DrawList) core.DrawList {
	w := g.world

	list = append(list, core.DrawRequest{
		Kind: core.KindShip,
		Pos:  w.Ship.Pos,
		Size: g.hit.Ship,
		Tag:  w.Ship.Facing.String(),
	})

	for _, e := range w.Wave.Enemies {
		list = append(list, core.DrawRequest{
			Kind:  core.KindEnemy,
			Pos:   e.Pos,
			Size:  g.hit.Enemy,
			Tag:   e.Type.String(),
			Value: e.Health,
		})
	}

	// Projectiles past the top edge stay live until x leaves the arena,
	// but are not drawn.
	arena := core.BoxAt(core.Vec{}, g.WorldSize())
	for _, p := range w.Projectiles {
		if !core.BoxAt(p.Pos, g.hit.Projectile).Intersects(arena) {
			continue
		}
		list = append(list, core.DrawRequest{
			Kind:  core.KindProjectile,
			Pos:   p.Pos,
			Size:  g.hit.Projectile,
			Value: p.Pierce,
		})
	}

	// HUD. The ammo value keys an indicator lookup in the renderer.
	list = append(list,
		core.DrawRequest{Kind: core.KindAmmo, Tag: "hud", Value: ClampAmmo(w.Ammo.Count)},
		core.DrawRequest{Kind: core.KindScore, Tag: "hud", Value: int(w.Score)},
		core.DrawRequest{Kind: core.KindWave, Tag: "hud", Value: w.Wave.Number},
	)
	return list
}
