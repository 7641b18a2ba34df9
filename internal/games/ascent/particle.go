package ascent

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-leap/internal/core"
)

// Particle is purely cosmetic state: it never feeds back into simulation
// outcomes and can be dropped wholesale without changing a run.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // remaining life in [0, 1]
	Decay  float64 // life removed per tick
	Size   float64
	Color  core.Color
}

// Alive reports whether the particle still has life left.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Update advances the particle one tick. Returns false once expired.
func (p *Particle) Update() bool {
	p.X += p.VX
	p.Y += p.VY
	p.Life -= p.Decay
	return p.Alive()
}

// burst appends n particles scattered radially around (x, y).
// speed scales the scatter velocity; up biases the burst upward.
func burst(dst []Particle, rng *rand.Rand, x, y float64, n int, speed, up float64, c core.Color) []Particle {
	for i := 0; i < n; i++ {
		angle := rng.Float64() * 2 * math.Pi
		v := speed * (0.4 + 0.6*rng.Float64())
		dst = append(dst, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * v,
			VY:    math.Sin(angle)*v - up,
			Life:  1.0,
			Decay: 0.02 + rng.Float64()*0.03,
			Size:  1 + rng.Float64()*2,
			Color: c,
		})
	}
	return dst
}
