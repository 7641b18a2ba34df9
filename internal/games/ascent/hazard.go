package ascent

import (
	"math"

	"github.com/vovakirdan/tui-leap/internal/config"
)

// HazardType tags the two hazard behaviors.
type HazardType int

const (
	// HazardDrifter patrols horizontally and knocks the body back on contact.
	HazardDrifter HazardType = iota
	// HazardSingularity is stationary, pulls the body in within its pull
	// radius, and is lethal inside its core.
	HazardSingularity
)

// String returns a short name for the hazard type.
func (t HazardType) String() string {
	if t == HazardSingularity {
		return "singularity"
	}
	return "drifter"
}

// Hazard is a non-landable entity that threatens the body.
type Hazard struct {
	X, Y   float64
	Radius float64
	Type   HazardType

	VX    float64 // Drifter: horizontal drift velocity
	Phase float64 // Drifter: hover bob phase (visual only)

	PullRadius float64 // Singularity: attraction range
	CoreRadius float64 // Singularity: lethal range
}

// Update applies the hazard's per-tick self-update.
func (h *Hazard) Update(worldW float64, cfg config.AscentHazards) {
	switch h.Type {
	case HazardDrifter:
		h.X += h.VX
		if h.X-h.Radius < 0 {
			h.X = h.Radius
			h.VX = -h.VX
		} else if h.X+h.Radius > worldW {
			h.X = worldW - h.Radius
			h.VX = -h.VX
		}
		h.Phase += cfg.HoverStep

	case HazardSingularity:
		// Stationary; the pull is applied against the body elsewhere.
	}
}

// HoverOffset returns the drifter's current vertical bob in world units.
// Render-only; the collision position is (X, Y).
func (h *Hazard) HoverOffset(cfg config.AscentHazards) float64 {
	if h.Type != HazardDrifter {
		return 0
	}
	return math.Sin(h.Phase) * cfg.HoverAmplitude
}
