package launch

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tile-launcher/internal/core"
	"github.com/vovakirdan/tile-launcher/internal/games/launch/sim"
)

// Glyphs
const (
	BallChar      = '●'
	ParticleChar  = '•'
	FadedChar     = '·'
	ArrowChar     = '·'
	ArrowHeadChar = '+'
)

var textureGlyphs = map[string]rune{
	sim.TextureBrick:          ' ',
	sim.TextureSolidBlock:     '▓',
	sim.TextureSpring:         '≈',
	sim.TextureExplodingBlock: '*',
	sim.TextureRewardBlock:    '$',
	sim.TextureDeathBlock:     'x',
}

const tileTextColor core.Color = "#101010"

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	if g.sim == nil {
		return
	}
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}

	app := g.sim.Appearance()
	if bg := app.Background.Base(); bg != "" {
		dst.SetBackground(core.Color(bg))
		dst.Clear()
	}

	vp := g.viewport()
	g.drawTiles(dst, vp)
	g.drawParticles(dst, vp)
	g.drawAim(dst, vp)
	g.drawBall(dst, vp)
	g.drawHUD(dst, core.Color(app.Foreground.Base()))
	g.drawOverlay(dst)
	if g.configErr != nil {
		dst.DrawTextColor(1, hudRows, "using default config: "+g.configErr.Error(), core.ColorRed)
	}
}

func (g *Game) drawTiles(dst *core.Screen, vp core.Viewport) {
	g.sim.Grid().Each(func(t *sim.Tile) {
		x0, y0 := vp.ToCell(t.Pos.X, t.Pos.Y)
		x1, y1 := vp.ToCell(t.Pos.X+sim.TileSize, t.Pos.Y+sim.TileSize)
		r := core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))

		info := t.Type.Info()
		color := core.Color(t.Color())
		dst.DrawRect(r, core.Cell{Rune: ' ', BG: color})

		cy := r.Y + r.H/2
		if info.ShowsValue {
			label := fmt.Sprint(t.Value)
			dst.DrawTextColor(r.X+(r.W-len(label))/2, cy, label, tileTextColor)
			return
		}
		if glyph, ok := textureGlyphs[info.Texture]; ok && glyph != ' ' {
			dst.SetColor(r.X+r.W/2, cy, glyph, tileTextColor)
		}
	})
}

func (g *Game) drawParticles(dst *core.Screen, vp core.Viewport) {
	for _, p := range g.sim.Particles() {
		x, y := vp.ToCell(p.Pos.X, p.Pos.Y)
		r := ParticleChar
		if p.Fade() < 0.5 {
			r = FadedChar
		}
		dst.SetCell(x, y, core.Cell{Rune: r, FG: core.Color(p.Color)})
	}
}

// drawAim shows the launch direction while the ball waits.
func (g *Game) drawAim(dst *core.Screen, vp core.Viewport) {
	ball := g.sim.Ball()
	if ball == nil || ball.Active || g.sim.Event() != sim.EventNone {
		return
	}

	start := g.sim.StartPoint()
	end := r2.Add(start, r2.Scale(g.cfg.Animation.ArrowLengthScale, g.sim.LaunchVelocity()))

	sx, sy := vp.ToCell(start.X, start.Y)
	ex, ey := vp.ToCell(end.X, end.Y)
	steps := max(abs(ex-sx), abs(ey-sy))
	for i := 1; i < steps; i++ {
		f := float64(i) / float64(steps)
		x := sx + int(math.Round(f*float64(ex-sx)))
		y := sy + int(math.Round(f*float64(ey-sy)))
		if y < hudRows {
			continue
		}
		dst.SetCell(x, y, core.Cell{Rune: ArrowChar, FG: core.ColorYellow})
	}
	if steps > 0 && ey >= hudRows {
		dst.SetCell(ex, ey, core.Cell{Rune: ArrowHeadChar, FG: core.ColorYellow})
	}
}

func (g *Game) drawBall(dst *core.Screen, vp core.Viewport) {
	ball := g.sim.Ball()
	if ball == nil {
		return
	}
	x, y := vp.ToCell(ball.Pos.X, ball.Pos.Y)
	if y < hudRows {
		return
	}
	dst.SetCell(x, y, core.Cell{Rune: BallChar, FG: core.ColorWhite})
}

func (g *Game) drawHUD(dst *core.Screen, fg core.Color) {
	if fg == core.ColorDefault {
		fg = core.ColorWhite
	}
	w := dst.Width()

	title := fmt.Sprintf(" %d/%d %s", g.sim.Level(), g.sim.LevelCount(), g.sim.LevelName())
	lives := "∞"
	if !g.sim.InfiniteLives() {
		lives = fmt.Sprint(g.sim.Lives())
	}
	status := fmt.Sprintf("Try %d  Lives %s  Score %d ", g.sim.Attempts(), lives, g.sim.Score())

	dst.DrawRect(core.NewRect(0, 0, w, 1), core.Cell{Rune: ' ', BG: core.ColorDarkGray})
	dst.DrawTextColor(0, 0, title, fg)
	dst.DrawTextColor(w-len([]rune(status)), 0, status, core.ColorYellow)
	dst.DrawHLine(0, 1, w, '─', core.ColorGray)
}

func (g *Game) drawOverlay(dst *core.Screen) {
	mid := hudRows + (dst.Height()-hudRows)/2

	switch {
	case g.sim.LevelCount() == 0:
		dst.DrawTextCentered(mid, "No levels found", core.ColorRed)
		if g.loadErr != nil {
			dst.DrawTextCentered(mid+1, g.loadErr.Error(), core.ColorGray)
		}
	case g.sim.Finished():
		w := core.Clamp(26, 0, dst.Width())
		dst.DrawBox(core.NewRect((dst.Width()-w)/2, mid-2, w, 5), core.ColorGreen)
		dst.DrawTextCentered(mid-1, "ALL LEVELS CLEARED", core.ColorGreen)
		dst.DrawTextCentered(mid, fmt.Sprintf("Final score: %d", g.sim.Score()), core.ColorWhite)
		dst.DrawTextCentered(mid+1, "R restart  B menu", core.ColorGray)
	case g.paused:
		dst.DrawTextCentered(mid, "PAUSED", core.ColorYellow)
		dst.DrawTextCentered(mid+1, "P resume", core.ColorGray)
	case g.sim.Event() == sim.EventDie:
		dst.DrawTextCentered(mid, "Ball lost", core.ColorRed)
	case g.sim.Event() == sim.EventWin:
		dst.DrawTextCentered(mid, "GOAL!", core.ColorGreen)
	case g.sim.Event() == sim.EventWinTransition:
		dst.DrawTextCentered(mid, "Level clear", core.ColorGreen)
	case g.sim.Attempts() == 1 && !g.sim.Ball().Active:
		dst.DrawTextCentered(dst.Height()-1, "Click or press Space to launch", core.ColorGray)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
