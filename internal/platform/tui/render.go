package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// enemyColors keys enemy draw tags to colors.
var enemyColors = map[string]core.Color{
	"default": core.ColorRed,
	"armored": core.ColorMagenta,
	"fast":    core.ColorOrange,
}

// shipGlyphs keys ship facing tags to glyphs.
var shipGlyphs = map[string]rune{
	"neutral": '▲',
	"left":    '◀',
	"right":   '▶',
}

// ammoIndicators is indexed by the clamped ammo count.
var ammoIndicators = [...]string{
	"□□□□□",
	"■□□□□",
	"■■□□□",
	"■■■□□",
	"■■■■□",
	"■■■■■",
}

// Viewport maps the world coordinate space onto a grid of terminal cells.
type Viewport struct {
	Cols  int
	Rows  int
	World core.Vec
}

func (v Viewport) scaleX() float64 { return float64(v.Cols) / v.World.X }
func (v Viewport) scaleY() float64 { return float64(v.Rows) / v.World.Y }

// ToCell returns the cell containing world point p.
func (v Viewport) ToCell(p core.Vec) (int, int) {
	return int(math.Floor(p.X * v.scaleX())), int(math.Floor(p.Y * v.scaleY()))
}

// ToWorld returns the world point at the center of cell (x, y).
func (v Viewport) ToWorld(x, y int) core.Vec {
	if v.Cols <= 0 || v.Rows <= 0 {
		return core.Vec{}
	}
	return core.V(
		(float64(x)+0.5)*v.World.X/float64(v.Cols),
		(float64(y)+0.5)*v.World.Y/float64(v.Rows),
	)
}

// CellRect returns the cells covered by a world box. Non-empty boxes cover
// at least one cell.
func (v Viewport) CellRect(pos, size core.Vec) core.Rect {
	x0, y0 := v.ToCell(pos)
	x1 := int(math.Ceil((pos.X + size.X) * v.scaleX()))
	y1 := int(math.Ceil((pos.Y + size.Y) * v.scaleY()))
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Rasterize draws the frame's draw list into the screen buffer.
func Rasterize(list core.DrawList, s *core.Screen, vp Viewport) {
	s.Clear()
	if vp.World.X <= 0 || vp.World.Y <= 0 {
		return
	}

	var hud []core.DrawRequest
	for _, r := range list {
		switch r.Kind {
		case core.KindBackground:
			// Cleared above.

		case core.KindShip:
			glyph, ok := shipGlyphs[r.Tag]
			if !ok {
				glyph = shipGlyphs["neutral"]
			}
			s.DrawRect(vp.CellRect(r.Pos, r.Size), glyph, core.ColorBrightGreen)

		case core.KindEnemy:
			c, ok := enemyColors[r.Tag]
			if !ok {
				c = core.ColorRed
			}
			fill := '█'
			if r.Value <= 1 {
				fill = '▒'
			}
			s.DrawRect(vp.CellRect(r.Pos, r.Size), fill, c)

		case core.KindProjectile:
			x, y := vp.ToCell(r.Pos.Add(core.V(r.Size.X/2, r.Size.Y/2)))
			s.SetColored(x, y, '•', core.ColorBrightYellow)

		case core.KindPanel:
			s.DrawBox(vp.CellRect(r.Pos, r.Size), core.ColorGray)

		case core.KindButton:
			drawButton(s, vp, r)

		case core.KindTitle:
			x, y := vp.ToCell(r.Pos)
			s.DrawText(x, y, r.Label, core.ColorBrightYellow)
			if r.Tag == "gameover" {
				s.DrawText(x, y+1, fmt.Sprintf("SCORE %d", r.Value), core.ColorBrightWhite)
			}

		case core.KindAmmo, core.KindScore, core.KindWave:
			hud = append(hud, r)
		}
	}

	drawHUD(s, hud)
}

func drawButton(s *core.Screen, vp Viewport, r core.DrawRequest) {
	rect := vp.CellRect(r.Pos, r.Size)
	c := core.ColorCyan
	if r.Hover {
		c = core.ColorBrightCyan
	}
	s.DrawBox(rect, c)

	label := []rune(r.Label)
	x := rect.X + (rect.W-len(label))/2
	y := rect.Y + rect.H/2
	if rect.H == 1 {
		y = rect.Y
	}
	s.DrawText(max(rect.X, x), y, r.Label, core.ColorBrightWhite)
}

// drawHUD writes the indicators on the top row.
func drawHUD(s *core.Screen, hud []core.DrawRequest) {
	for _, r := range hud {
		switch r.Kind {
		case core.KindAmmo:
			n := core.Clamp(r.Value, 0, len(ammoIndicators)-1)
			s.DrawText(1, 0, "AMMO "+ammoIndicators[n], core.ColorBrightYellow)
		case core.KindScore:
			text := fmt.Sprintf("SCORE %d", r.Value)
			s.DrawText((s.Width()-len(text))/2, 0, text, core.ColorBrightWhite)
		case core.KindWave:
			text := fmt.Sprintf("WAVE %d", r.Value)
			s.DrawText(s.Width()-len(text)-1, 0, text, core.ColorBrightCyan)
		}
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
