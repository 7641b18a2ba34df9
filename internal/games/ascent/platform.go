package ascent

import (
	"math"

	"github.com/vovakirdan/tui-leap/internal/config"
)

// PlatformType tags the per-type behavior of a platform.
type PlatformType int

const (
	PlatformNormal PlatformType = iota
	PlatformStart                // the wide launch pad under the initial body position
	PlatformBoost                // stronger upward impulse on landing
	PlatformCharger              // grants a double-jump charge, converts to Normal on use
	PlatformMoving               // patrols horizontally, reflecting off world bounds
	PlatformBreakable            // one landing, then broken and non-collidable
	PlatformPhantom              // fades in and out; only solid while opaque
	PlatformShrinking            // radius decays to zero over time
)

// String returns a short name for the platform type.
func (t PlatformType) String() string {
	switch t {
	case PlatformStart:
		return "start"
	case PlatformBoost:
		return "boost"
	case PlatformCharger:
		return "charger"
	case PlatformMoving:
		return "moving"
	case PlatformBreakable:
		return "breakable"
	case PlatformPhantom:
		return "phantom"
	case PlatformShrinking:
		return "shrinking"
	default:
		return "normal"
	}
}

// Platform is a landing surface. Radius is the horizontal half-extent; the
// surface line is the platform's Y coordinate.
type Platform struct {
	X, Y   float64
	Radius float64
	Type   PlatformType

	VX         float64 // Moving: horizontal patrol velocity
	Broken     bool    // Breakable: consumed by a landing
	Phase      float64 // Phantom: fade phase; others: idle spin phase
	Opacity    float64 // Phantom: derived from Phase, 1.0 while solid
	ShrinkRate float64 // Shrinking: radius units removed per tick
}

// Update applies the platform's per-type self-update for one tick.
// Called before any collision test.
func (p *Platform) Update(worldW float64, cfg config.AscentPlatforms) {
	switch p.Type {
	case PlatformMoving:
		p.X += p.VX
		if p.X-p.Radius < 0 {
			p.X = p.Radius
			p.VX = -p.VX
		} else if p.X+p.Radius > worldW {
			p.X = worldW - p.Radius
			p.VX = -p.VX
		}

	case PlatformPhantom:
		p.Phase += cfg.PhantomPhaseStep
		if math.Sin(p.Phase) > -0.2 {
			p.Opacity = 1.0
		} else {
			p.Opacity = cfg.PhantomGhostOpacity
		}

	case PlatformShrinking:
		p.Radius -= p.ShrinkRate
		if p.Radius < 0 {
			p.Radius = 0
		}

	default:
		// Visual idle phase only; no positional change.
		p.Phase += 0.02
	}
}

// Collidable reports whether the platform can currently accept a landing.
// Broken platforms, faded phantoms, and over-shrunk platforms are permanently
// or temporarily pass-through. Collision code must consult this before any
// geometric test.
func (p *Platform) Collidable(cfg config.AscentPlatforms) bool {
	if p.Broken {
		return false
	}
	if p.Type == PlatformPhantom && p.Opacity < cfg.SolidityThreshold {
		return false
	}
	if p.Type == PlatformShrinking && p.Radius < cfg.MinSolidRadius {
		return false
	}
	return p.Radius > 0
}

// Expired reports whether the platform is dead weight that cleanup may drop
// even before it scrolls out (fully shrunk or broken).
func (p *Platform) Expired() bool {
	return p.Broken || (p.Type == PlatformShrinking && p.Radius <= 0)
}
