package ascent

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-leap/internal/core"
)

// Visual characters for rendering
const (
	BodyChar     = '@'
	BodyLeanL    = '{'
	BodyLeanR    = '}'
	PlatformChar = '▀'
	BrokenChar   = '.'
	DrifterChar  = '◆'
	CoreChar     = '●'
	HaloChar     = '·'
	StarChar     = '·'
	StarBright   = '✦'
)

// platformColor maps a platform type to its display color.
func platformColor(t PlatformType) core.Color {
	switch t {
	case PlatformStart:
		return core.ColorWhite
	case PlatformBoost:
		return core.ColorBrightYellow
	case PlatformCharger:
		return core.ColorBrightCyan
	case PlatformMoving:
		return core.ColorBrightBlue
	case PlatformBreakable:
		return core.ColorGray
	case PlatformPhantom:
		return core.ColorMagenta
	case PlatformShrinking:
		return core.ColorOrange
	default:
		return core.ColorGreen
	}
}

// Render draws the current game state to the screen. World units are scaled
// to screen cells at the last moment; the simulation never sees cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	sx := float64(dst.Width()) / g.world.W
	sy := float64(dst.Height()) / g.world.H
	cell := func(x, y float64) (int, int) {
		return int(x * sx), int(y * sy)
	}

	// Stars behind everything.
	for _, s := range g.world.Stars {
		x, y := cell(s.X, s.Y)
		if s.Bright {
			dst.SetColored(x, y, StarBright, core.ColorGray)
		} else {
			dst.SetColored(x, y, StarChar, core.ColorGray)
		}
	}

	// Platforms as horizontal bars spanning their radius.
	for _, p := range g.world.Platforms {
		glyph := PlatformChar
		color := platformColor(p.Type)
		if p.Broken {
			glyph = BrokenChar
		}
		if p.Type == PlatformPhantom && p.Opacity < g.cfg.Platforms.SolidityThreshold {
			glyph = HaloChar
		}

		x0, y := cell(p.X-p.Radius, p.Y)
		x1, _ := cell(p.X+p.Radius, p.Y)
		if x1 <= x0 {
			x1 = x0 + 1
		}
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, glyph, color)
		}
	}

	// Hazards.
	for _, h := range g.world.Hazards {
		switch h.Type {
		case HazardDrifter:
			x, y := cell(h.X, h.Y+h.HoverOffset(g.cfg.Hazards))
			dst.SetColored(x, y, DrifterChar, core.ColorBrightRed)
		case HazardSingularity:
			x, y := cell(h.X, h.Y)
			dst.SetColored(x, y, CoreChar, core.ColorBrightMagenta)
			// A faint halo hints at the pull radius.
			rx := int(h.PullRadius * sx * 0.5)
			dst.SetColored(x-rx, y, HaloChar, core.ColorMagenta)
			dst.SetColored(x+rx, y, HaloChar, core.ColorMagenta)
		}
	}

	// Particles fade with life.
	for i := range g.world.Particles {
		p := &g.world.Particles[i]
		x, y := cell(p.X, p.Y)
		glyph := '*'
		if p.Life < 0.4 {
			glyph = '·'
		}
		dst.SetColored(x, y, glyph, p.Color)
	}

	// The body leans with its horizontal velocity.
	bx, by := cell(g.world.Body.X, g.world.Body.Y)
	glyph := BodyChar
	switch {
	case g.world.Body.Tilt < -6:
		glyph = BodyLeanL
	case g.world.Body.Tilt > 6:
		glyph = BodyLeanR
	}
	bodyColor := core.ColorBrightWhite
	if g.world.Body.Charge {
		bodyColor = core.ColorBrightCyan
	}
	dst.SetColored(bx, by, glyph, bodyColor)

	g.renderHUD(dst)

	if g.paused {
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", int(g.world.Score))
		title := "GAME OVER"
		if g.endReason == endReasonDestroyed {
			title = "CONSUMED"
		}
		g.drawCenteredBox(dst, title, subtitle)
	}
}

// renderHUD draws the score line and the double-jump charge indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf(" Score: %d ", int(g.world.Score))
	dst.DrawText(2, 0, scoreText)

	level := g.world.Difficulty(g.difficulty, g.tickCount)
	diffText := fmt.Sprintf(" Depth: %d%% ", int(math.Round(level*100)))
	dst.DrawText(dst.Width()-len(diffText)-2, 0, diffText)

	if g.world.Body.Charge {
		dst.DrawTextColored(2, 1, "[JUMP READY]", core.ColorBrightCyan)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
