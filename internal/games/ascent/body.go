package ascent

import "github.com/vovakirdan/tui-leap/internal/config"

// Body is the single player-controlled entity. Coordinates are logical world
// units with y increasing downward; the renderer maps them to screen cells.
type Body struct {
	X, Y   float64
	VX, VY float64
	PrevY  float64 // Y before this tick's positional advance, for swept landing checks

	HalfW, HalfH float64

	Charge bool    // double-jump charge available
	Tilt   float64 // visual lean derived from VX, no feedback into physics
}

// NewBody creates a body at the given start position.
func NewBody(x, y float64, phys config.AscentPhysics) Body {
	return Body{
		X:     x,
		Y:     y,
		PrevY: y,
		HalfW: phys.BodyHalfW,
		HalfH: phys.BodyHalfH,
	}
}

// Foot returns the y-coordinate of the body's lowest point.
func (b *Body) Foot() float64 {
	return b.Y + b.HalfH
}

// Integrate advances the body by one tick given the steer input.
// Both steer directions held at once cancel to zero acceleration.
func (b *Body) Integrate(steerLeft, steerRight bool, phys config.AscentPhysics) {
	if steerLeft {
		b.VX -= phys.SteerAccel
	}
	if steerRight {
		b.VX += phys.SteerAccel
	}

	// Multiplicative damping; < 1 by configuration (near 1 in the vacuum
	// variant, stronger air friction in classic).
	b.VX *= phys.Friction

	if b.VX > phys.MaxSpeed {
		b.VX = phys.MaxSpeed
	}
	if b.VX < -phys.MaxSpeed {
		b.VX = -phys.MaxSpeed
	}

	b.PrevY = b.Y
	b.X += b.VX
	b.Y += b.VY
	b.VY += phys.Gravity

	b.Tilt = b.VX * phys.TiltPerVX
}

// WrapHorizontal wraps the body around the world's vertical edges, so leaving
// one side re-enters from the other.
func (b *Body) WrapHorizontal(worldW float64) {
	switch {
	case b.X < -b.HalfW:
		b.X = worldW + b.HalfW
	case b.X > worldW+b.HalfW:
		b.X = -b.HalfW
	}
}

// TryDoubleJump consumes the double-jump charge if available. The trigger is
// rejected while the body is already rising faster than a small threshold, so
// a fresh landing impulse cannot be immediately overwritten.
// Returns true when the jump fired.
func (b *Body) TryDoubleJump(phys config.AscentPhysics) bool {
	if !b.Charge {
		return false
	}
	if b.VY < phys.DoubleJumpMinVY {
		return false
	}
	b.VY = phys.DoubleJumpImpulse
	b.Charge = false
	return true
}
