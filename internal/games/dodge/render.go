package dodge

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// Visual elements
const (
	PlayerChar   = '█'
	PlayerFace   = '☻'
	ObstacleChar = '●'
	RareBallChar = '◉'
	BarChar      = '▓'
)

// Render draws the current game state. Order: clear, then the playing field
// (player, obstacles, rare balls, bar), then the HUD, then any banner.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session.Phase == PhasePlaying {
		g.drawPlayer(dst)
		for _, o := range g.session.Obstacles {
			g.drawCircle(dst, o.Circle, ObstacleChar, o.Color)
		}
		for _, b := range g.session.RareBalls {
			g.drawCircle(dst, b.Circle, RareBallChar, RareBallColor)
			if x, y := g.toCell(b.X, b.Y); dst.Bounds().Contains(x, y) {
				dst.SetColored(x, y, b.Emotion.Glyph(), core.ColorBrightWhite)
			}
		}
		if g.variant.RisingBar {
			g.drawBar(dst)
		}
	}

	g.drawHUD(dst)

	switch {
	case g.session.Phase == PhaseIdle:
		g.drawCenteredMessage(dst, g.variant.Title, "Press Enter or Space to start")
	case g.session.Phase == PhaseLost:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score))
	case g.session.Phase == PhaseWon:
		g.drawCenteredMessage(dst, "YOU WIN!", fmt.Sprintf("Score: %d  |  Press R to play again", g.session.Score))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// toCell converts world coordinates to a screen cell.
func (g *Game) toCell(x, y float64) (int, int) {
	return int(math.Floor(x / g.cfg.Field.CellWidth)), int(math.Floor(y / g.cfg.Field.CellHeight))
}

func (g *Game) drawPlayer(dst *core.Screen) {
	p := g.session.Player
	x0, y0 := g.toCell(p.X, p.Y)
	x1, y1 := g.toCell(p.X+p.W, p.Y+p.H)
	body := core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))

	// The player is never clamped and may be entirely off-screen.
	if !body.Intersects(dst.Bounds()) {
		return
	}
	dst.FillRect(body, PlayerChar, core.ColorBrightCyan)
	if cx, cy := g.toCell(p.Center()); dst.Bounds().Contains(cx, cy) {
		dst.SetColored(cx, cy, PlayerFace, core.ColorBrightWhite)
	}
}

// drawCircle rasterizes a world-space circle. Cells are taller than wide,
// so the circle becomes an ellipse in cell units.
func (g *Game) drawCircle(dst *core.Screen, c core.Circle, fill rune, color core.Color) {
	cw, ch := g.cfg.Field.CellWidth, g.cfg.Field.CellHeight
	rx := math.Max(c.R/cw, 0.5)
	ry := math.Max(c.R/ch, 0.5)
	dst.FillEllipse(c.X/cw, c.Y/ch, rx, ry, fill, color)
}

func (g *Game) drawBar(dst *core.Screen) {
	rows := int(math.Ceil(g.session.Bar.Height / g.cfg.Field.CellHeight))
	if rows <= 0 {
		return
	}
	top := dst.Height() - rows
	dst.FillRect(core.NewRect(0, top, dst.Width(), rows), BarChar, core.ColorRed)
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  Lives: %d ", g.session.Score, g.session.Player.Lives)
	dst.DrawText(2, 0, hud)

	right := fmt.Sprintf(" Best: %d ", g.highScore)
	if g.variant.WinNeedsBalls {
		right = fmt.Sprintf(" Balls: %d/%d %s", g.session.Collected, g.rules.WinCount, right)
	}
	dst.DrawText(dst.Width()-len([]rune(right))-2, 0, right)
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))
	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
