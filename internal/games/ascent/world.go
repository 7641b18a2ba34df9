package ascent

import (
	"math/rand"

	"github.com/vovakirdan/tui-leap/internal/config"
	"github.com/vovakirdan/tui-leap/internal/core"
)

// Star is a background dot translated by camera scroll. Visual only.
type Star struct {
	X, Y   float64
	Bright bool
}

// World owns every live entity of a run: the body, platforms, hazards,
// particles, and the score odometer. It has exactly one writer (the game's
// Step); collaborators only ever see read-only snapshots of it.
type World struct {
	W, H float64

	Body      Body
	Platforms []*Platform
	Hazards   []*Hazard
	Particles []Particle
	Stars     []Star

	// Score accumulates scrolled distance, so it is a direct odometer of
	// world units climbed. Monotonically non-decreasing.
	Score float64

	rng *rand.Rand
	cfg config.AscentConfig
}

// NewWorld builds an empty world for the given logical viewport.
func NewWorld(w, h float64, rng *rand.Rand, cfg config.AscentConfig) *World {
	world := &World{
		W:         w,
		H:         h,
		Platforms: make([]*Platform, 0, 32),
		Hazards:   make([]*Hazard, 0, 8),
		Particles: make([]Particle, 0, 128),
		rng:       rng,
		cfg:       cfg,
	}
	world.seedStars()
	return world
}

func (w *World) seedStars() {
	w.Stars = make([]Star, w.cfg.World.StarCount)
	for i := range w.Stars {
		w.Stars[i] = Star{
			X:      w.rng.Float64() * w.W,
			Y:      w.rng.Float64() * w.H,
			Bright: w.rng.Float64() < 0.3,
		}
	}
}

// ScrollLineY returns the y-coordinate of the camera scroll threshold.
func (w *World) ScrollLineY() float64 {
	return w.H * w.cfg.World.ScrollLine
}

// Scroll clamps the body back to the scroll line, translates every other
// entity downward by the overshoot, and adds the overshoot to the score.
// Returns the overshoot (zero when the body is below the line).
func (w *World) Scroll() float64 {
	line := w.ScrollLineY()
	if w.Body.Y >= line {
		return 0
	}

	overshoot := line - w.Body.Y
	w.Body.Y = line
	w.Body.PrevY += overshoot

	for _, p := range w.Platforms {
		p.Y += overshoot
	}
	for _, h := range w.Hazards {
		h.Y += overshoot
	}
	for i := range w.Particles {
		w.Particles[i].Y += overshoot
	}
	for i := range w.Stars {
		w.Stars[i].Y += overshoot
		// Stars recycle to the top rather than despawning.
		if w.Stars[i].Y > w.H {
			w.Stars[i].Y -= w.H
			w.Stars[i].X = w.rng.Float64() * w.W
		}
	}

	w.Score += overshoot
	return overshoot
}

// TopmostPlatformY returns the smallest platform y, or the world height when
// no platforms exist (so generation starts from the bottom).
func (w *World) TopmostPlatformY() float64 {
	top := w.H
	for _, p := range w.Platforms {
		if p.Y < top {
			top = p.Y
		}
	}
	return top
}

// Cleanup drops platforms and hazards that scrolled below the viewport, plus
// platforms that expired in place (broken, fully shrunk).
func (w *World) Cleanup() {
	platforms := w.Platforms[:0]
	for _, p := range w.Platforms {
		if p.Y > w.H || p.Expired() {
			continue
		}
		platforms = append(platforms, p)
	}
	w.Platforms = platforms

	hazards := w.Hazards[:0]
	for _, h := range w.Hazards {
		if h.Y > w.H {
			continue
		}
		hazards = append(hazards, h)
	}
	w.Hazards = hazards
}

// DecayParticles advances particle kinematics and removes expired ones.
func (w *World) DecayParticles() {
	alive := w.Particles[:0]
	for i := range w.Particles {
		if w.Particles[i].Update() {
			alive = append(alive, w.Particles[i])
		}
	}
	w.Particles = alive
}

// Burst spawns a cosmetic particle burst at (x, y).
func (w *World) Burst(x, y float64, n int, speed, up float64, c core.Color) {
	w.Particles = burst(w.Particles, w.rng, x, y, n, speed, up, c)
}

// Difficulty returns the current difficulty scalar given a manager.
func (w *World) Difficulty(diff *config.DifficultyManager, ticks int) float64 {
	return diff.Level(int(w.Score), ticks)
}
