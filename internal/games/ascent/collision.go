package ascent

import (
	"math"

	"github.com/vovakirdan/tui-leap/internal/config"
	"github.com/vovakirdan/tui-leap/internal/core"
)

// resolveLandings tests the body against every collidable platform and
// applies at most one landing per tick. Landings only happen while the body
// descends; the vertical test is an approximate swept check using the foot
// position before and after this tick's advance, so a fast fall cannot
// tunnel through a platform and an ascending body never re-triggers one it
// is leaving.
//
// First geometric match wins, in platform list order. Impulses from multiple
// overlapping platforms are never summed.
func (g *Game) resolveLandings() {
	b := &g.world.Body
	if b.VY <= 0 {
		return
	}

	phys := g.cfg.Physics
	pc := g.cfg.Platforms

	footBefore := b.PrevY + b.HalfH
	footAfter := b.Foot()

	for _, p := range g.world.Platforms {
		if !p.Collidable(pc) {
			continue
		}

		reach := p.Radius + b.HalfW + pc.EdgeTolerance
		if math.Abs(b.X-p.X) > reach {
			continue
		}
		if footBefore > p.Y || footAfter < p.Y {
			continue
		}

		g.landOn(p, phys)
		return
	}
}

// landOn applies the landing outcome for a single platform hit.
func (g *Game) landOn(p *Platform, phys config.AscentPhysics) {
	b := &g.world.Body

	// Base outcome first; special types layer on top of it.
	b.VY = phys.JumpImpulse
	event := core.EventLanded
	burstColor := core.ColorGreen

	switch p.Type {
	case PlatformBoost:
		b.VY = phys.BoostImpulse
		event = core.EventBoosted
		burstColor = core.ColorBrightYellow

	case PlatformCharger:
		// One-time use: the charge moves to the body and the platform
		// becomes a plain one. The jump impulse already applied stands.
		b.Charge = true
		p.Type = PlatformNormal
		g.emit(core.EventPoweredUp)
		burstColor = core.ColorBrightCyan

	case PlatformBreakable:
		p.Broken = true
		g.emit(core.EventBroke)
		burstColor = core.ColorGray
	}

	g.emit(event)

	n := 6
	if event == core.EventBoosted {
		n = 14
	}
	g.world.Burst(b.X, b.Foot(), n, 1.5, 1.0, burstColor)
}

// resolveHazards applies drifter contact and singularity attraction.
// A terminal singularity contact flips the game into its destroyed state.
func (g *Game) resolveHazards() {
	b := &g.world.Body
	hc := g.cfg.Hazards

	for _, h := range g.world.Hazards {
		switch h.Type {
		case HazardDrifter:
			dx := b.X - h.X
			dy := b.Y - h.Y
			reach := h.Radius + b.HalfW
			if dx*dx+dy*dy > reach*reach {
				continue
			}
			// Knock the body down and away; contact hurts but does not
			// end the run.
			b.VY = hc.KnockbackDown
			if dx < 0 {
				b.VX = -hc.KnockbackSide
			} else {
				b.VX = hc.KnockbackSide
			}
			g.emit(core.EventKnocked)
			g.world.Burst(b.X, b.Y, 10, 2.0, 0, core.ColorBrightRed)

		case HazardSingularity:
			dx := h.X - b.X
			dy := h.Y - b.Y
			dist := math.Hypot(dx, dy)

			// Sub-epsilon distances would blow up the inverse-square
			// force; the body is inside the core anyway, so end the run
			// instead of dividing by near-zero.
			if dist < hc.CoreEpsilon || dist < h.CoreRadius {
				g.destroy()
				return
			}
			if dist > h.PullRadius {
				continue
			}

			accel := hc.PullStrength / (dist * dist)
			if accel > hc.MaxPull {
				accel = hc.MaxPull
			}
			b.VX += dx / dist * accel
			b.VY += dy / dist * accel

			// The pull visibly wrenches the body for the renderer.
			b.Tilt += math.Sin(float64(g.tickCount)*0.6) * 8
		}
	}
}

// destroy ends the run at a singularity core.
func (g *Game) destroy() {
	g.world.Burst(g.world.Body.X, g.world.Body.Y, 24, 3.0, 0, core.ColorBrightMagenta)
	g.emit(core.EventDestroyed)
	g.endRun(endReasonDestroyed)
}
