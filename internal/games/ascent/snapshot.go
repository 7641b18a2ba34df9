package ascent

// BodyView is the render-facing projection of the body.
type BodyView struct {
	X, Y   float64
	VX, VY float64
	HalfW  float64
	HalfH  float64
	Charge bool
	Tilt   float64
}

// PlatformView is the render-facing projection of one platform.
type PlatformView struct {
	X, Y    float64
	Radius  float64
	Type    PlatformType
	Broken  bool
	Opacity float64
	Phase   float64
}

// HazardView is the render-facing projection of one hazard.
type HazardView struct {
	X, Y       float64
	Radius     float64
	Type       HazardType
	HoverY     float64 // vertical bob offset, already resolved
	PullRadius float64
}

// ParticleView is the render-facing projection of one particle.
type ParticleView struct {
	X, Y  float64
	Life  float64
	Size  float64
	Color uint8
}

// Snapshot captures the world for rendering and determinism testing.
// Consumers must treat it as immutable; it shares nothing with live state.
type Snapshot struct {
	Tick      uint64
	Score     int
	State     string // "playing", "paused", "fell", "destroyed"
	WorldW    float64
	WorldH    float64
	Body      BodyView
	Platforms []PlatformView
	Hazards   []HazardView
	Particles []ParticleView
}

// Snapshot returns the current read-only world snapshot.
func (g *Game) Snapshot() Snapshot {
	state := "playing"
	switch {
	case g.gameOver:
		state = g.endReason
	case g.paused:
		state = "paused"
	}

	b := g.world.Body
	snap := Snapshot{
		Tick:   uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:  int(g.world.Score),
		State:  state,
		WorldW: g.world.W,
		WorldH: g.world.H,
		Body: BodyView{
			X:      b.X,
			Y:      b.Y,
			VX:     b.VX,
			VY:     b.VY,
			HalfW:  b.HalfW,
			HalfH:  b.HalfH,
			Charge: b.Charge,
			Tilt:   b.Tilt,
		},
		Platforms: make([]PlatformView, 0, len(g.world.Platforms)),
		Hazards:   make([]HazardView, 0, len(g.world.Hazards)),
		Particles: make([]ParticleView, 0, len(g.world.Particles)),
	}

	for _, p := range g.world.Platforms {
		snap.Platforms = append(snap.Platforms, PlatformView{
			X:       p.X,
			Y:       p.Y,
			Radius:  p.Radius,
			Type:    p.Type,
			Broken:  p.Broken,
			Opacity: p.Opacity,
			Phase:   p.Phase,
		})
	}
	for _, h := range g.world.Hazards {
		snap.Hazards = append(snap.Hazards, HazardView{
			X:          h.X,
			Y:          h.Y,
			Radius:     h.Radius,
			Type:       h.Type,
			HoverY:     h.HoverOffset(g.cfg.Hazards),
			PullRadius: h.PullRadius,
		})
	}
	for i := range g.world.Particles {
		p := &g.world.Particles[i]
		snap.Particles = append(snap.Particles, ParticleView{
			X:     p.X,
			Y:     p.Y,
			Life:  p.Life,
			Size:  p.Size,
			Color: uint8(p.Color),
		})
	}

	return snap
}
