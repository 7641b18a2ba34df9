package ascent

import (
	"math/rand"

	"github.com/vovakirdan/tui-leap/internal/config"
)

// Generator decides when and what to spawn ahead of the body's climb.
// All randomness flows through the injected rng, so tests can drive exact
// outcomes with a fixed seed.
type Generator struct {
	rng        *rand.Rand
	cfg        config.AscentConfig
	difficulty *config.DifficultyManager
}

// NewGenerator creates a generator over the given random source.
func NewGenerator(rng *rand.Rand, cfg config.AscentConfig, diff *config.DifficultyManager) *Generator {
	return &Generator{
		rng:        rng,
		cfg:        cfg,
		difficulty: diff,
	}
}

// rollType draws a platform type from the cumulative-probability buckets.
// Rare types are checked first; bucket order is fixed between draws so ties
// at bucket boundaries always resolve the same way and the intended rarity
// weighting holds.
func (g *Generator) rollType(difficulty float64) PlatformType {
	w := g.cfg.Generation.Weights

	phantom := gatedWeight(w.PhantomBase, w.PhantomSlope, w.PhantomGate, difficulty)
	shrinking := gatedWeight(w.ShrinkingBase, w.ShrinkingSlope, w.ShrinkingGate, difficulty)
	breakable := w.BreakableBase + w.BreakableSlope*difficulty
	moving := w.MovingBase + w.MovingSlope*difficulty

	roll := g.rng.Float64()
	cum := phantom
	if roll < cum {
		return PlatformPhantom
	}
	cum += shrinking
	if roll < cum {
		return PlatformShrinking
	}
	cum += breakable
	if roll < cum {
		return PlatformBreakable
	}
	cum += moving
	if roll < cum {
		return PlatformMoving
	}
	cum += w.BoostBase
	if roll < cum {
		return PlatformBoost
	}
	cum += w.ChargerBase
	if roll < cum {
		return PlatformCharger
	}
	return PlatformNormal
}

// gatedWeight returns base + slope*d, or zero while difficulty is below the gate.
func gatedWeight(base, slope, gate, d float64) float64 {
	if d <= gate {
		return 0
	}
	return base + slope*d
}

// NewPlatformAt builds a platform of a freshly drawn type at height y.
func (g *Generator) NewPlatformAt(y, worldW, difficulty float64) *Platform {
	pc := g.cfg.Platforms
	radius := pc.MinRadius + g.rng.Float64()*(pc.MaxRadius-pc.MinRadius)

	p := &Platform{
		X:      radius + g.rng.Float64()*(worldW-2*radius),
		Y:      y,
		Radius: radius,
		Type:   g.rollType(difficulty),
	}

	switch p.Type {
	case PlatformMoving:
		speed := pc.MovingMinSpeed + g.rng.Float64()*(pc.MovingMaxSpeed-pc.MovingMinSpeed)
		if g.rng.Float64() < 0.5 {
			speed = -speed
		}
		p.VX = speed
	case PlatformPhantom:
		p.Phase = g.rng.Float64() * 6.28
		p.Opacity = 1.0
	case PlatformShrinking:
		p.ShrinkRate = pc.ShrinkMinRate + g.rng.Float64()*(pc.ShrinkMaxRate-pc.ShrinkMinRate)
	}

	return p
}

// spacing draws the vertical gap to the next platform. The upper bound grows
// with difficulty, spreading platforms apart as the run progresses.
func (g *Generator) spacing(score float64, ticks int) float64 {
	gen := g.cfg.Generation
	max := g.difficulty.MaxSpacing(gen.MaxSpacing, int(score), ticks)
	return gen.MinSpacing + g.rng.Float64()*(max-gen.MinSpacing)
}

// rollHazard performs the secondary hazard draw for one generated platform.
// Returns nil when no hazard spawns. The hazard is repositioned horizontally
// when it would sit on top of its sibling platform.
func (g *Generator) rollHazard(sibling *Platform, worldW, score float64, ticks int) *Hazard {
	hc := g.cfg.Hazards
	if score < hc.IntroScore {
		return nil
	}

	chance := g.difficulty.HazardChance(hc.BaseChance, hc.ChanceSlope, hc.MaxChance, int(score), ticks)
	if g.rng.Float64() >= chance {
		return nil
	}

	h := &Hazard{
		X: g.rng.Float64() * worldW,
		Y: sibling.Y - g.cfg.Generation.MinSpacing*0.5,
	}

	if hc.AllowSingularity && g.rng.Float64() < hc.SingularityShare {
		h.Type = HazardSingularity
		h.Radius = hc.SingularityRadius
		h.CoreRadius = hc.SingularityRadius
		h.PullRadius = hc.PullRadius
	} else {
		h.Type = HazardDrifter
		h.Radius = hc.DrifterRadius
		speed := hc.DrifterMinSpeed + g.rng.Float64()*(hc.DrifterMaxSpeed-hc.DrifterMinSpeed)
		if g.rng.Float64() < 0.5 {
			speed = -speed
		}
		h.VX = speed
		h.Phase = g.rng.Float64() * 6.28
	}

	// Keep the hazard clear of the platform it spawned beside.
	if dx := h.X - sibling.X; dx > -hc.MinSeparation && dx < hc.MinSeparation {
		if sibling.X < worldW/2 {
			h.X = sibling.X + hc.MinSeparation
		} else {
			h.X = sibling.X - hc.MinSeparation
		}
	}
	if h.X < h.Radius {
		h.X = h.Radius
	}
	if h.X > worldW-h.Radius {
		h.X = worldW - h.Radius
	}

	return h
}

// TopUp generates platforms (and their hazard side-draws) until the topmost
// platform sits within the top buffer of the generation window.
func (g *Generator) TopUp(w *World, ticks int) {
	difficulty := w.Difficulty(g.difficulty, ticks)
	top := w.TopmostPlatformY()
	for top > g.cfg.Generation.TopBuffer {
		top -= g.spacing(w.Score, ticks)
		p := g.NewPlatformAt(top, w.W, difficulty)
		w.Platforms = append(w.Platforms, p)

		if h := g.rollHazard(p, w.W, w.Score, ticks); h != nil {
			w.Hazards = append(w.Hazards, h)
		}
	}
}

// InitialFill populates a fresh world: the Start platform under the body's
// spawn point, then regular platforms up the full viewport height. No hazards
// spawn during the initial fill (score is still zero).
func (g *Generator) InitialFill(w *World, startX, startY float64) {
	start := &Platform{
		X:      startX,
		Y:      startY,
		Radius: g.cfg.Platforms.StartRadius,
		Type:   PlatformStart,
	}
	w.Platforms = append(w.Platforms, start)
	g.TopUp(w, 0)
}
