package ascent

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-leap/internal/config"
)

func testPhysics() config.AscentPhysics {
	return config.DefaultAscentConfig().Physics
}

func TestFrictionConvergence(t *testing.T) {
	// With no input and no gravity, horizontal velocity must decay to zero
	// without ever flipping sign.
	phys := testPhysics()
	phys.Gravity = 0

	b := NewBody(200, 400, phys)
	b.VX = 8.0

	prev := b.VX
	for i := 0; i < 2000; i++ {
		b.Integrate(false, false, phys)

		if b.VX < 0 {
			t.Fatalf("velocity flipped sign at tick %d: %f", i, b.VX)
		}
		if b.VX > prev {
			t.Fatalf("velocity grew without input at tick %d: %f -> %f", i, prev, b.VX)
		}
		prev = b.VX
	}

	if b.VX > 1e-6 {
		t.Errorf("velocity did not converge to zero, still %f", b.VX)
	}
}

func TestVelocityClamp(t *testing.T) {
	phys := testPhysics()
	b := NewBody(200, 400, phys)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		left := rng.Float64() < 0.6
		right := rng.Float64() < 0.6
		b.Integrate(left, right, phys)

		if math.Abs(b.VX) > phys.MaxSpeed {
			t.Fatalf("tick %d: |vx| = %f exceeds clamp %f", i, math.Abs(b.VX), phys.MaxSpeed)
		}
	}
}

func TestBothSteerDirectionsCancel(t *testing.T) {
	phys := testPhysics()
	a := NewBody(200, 400, phys)
	b := NewBody(200, 400, phys)

	// Holding both directions must behave exactly like holding neither.
	a.Integrate(true, true, phys)
	b.Integrate(false, false, phys)

	if a.VX != b.VX {
		t.Errorf("contradictory steer input should cancel: got vx=%f, want %f", a.VX, b.VX)
	}
}

func TestGravityAccumulates(t *testing.T) {
	phys := testPhysics()
	b := NewBody(200, 400, phys)

	b.Integrate(false, false, phys)
	if b.VY != phys.Gravity {
		t.Errorf("vy after one tick = %f, expected %f", b.VY, phys.Gravity)
	}

	b.Integrate(false, false, phys)
	if b.VY != 2*phys.Gravity {
		t.Errorf("vy after two ticks = %f, expected %f", b.VY, 2*phys.Gravity)
	}
}

func TestTiltFollowsVelocity(t *testing.T) {
	phys := testPhysics()
	b := NewBody(200, 400, phys)

	for i := 0; i < 5; i++ {
		b.Integrate(false, true, phys)
	}
	if b.Tilt <= 0 {
		t.Errorf("tilt should lean right with positive vx, got %f", b.Tilt)
	}
	if b.Tilt != b.VX*phys.TiltPerVX {
		t.Errorf("tilt = %f, expected linear %f", b.Tilt, b.VX*phys.TiltPerVX)
	}
}

func TestDoubleJump(t *testing.T) {
	phys := testPhysics()

	t.Run("fires with charge while falling", func(t *testing.T) {
		b := NewBody(200, 400, phys)
		b.Charge = true
		b.VY = 5.0

		if !b.TryDoubleJump(phys) {
			t.Fatal("double jump should fire")
		}
		if b.VY != phys.DoubleJumpImpulse {
			t.Errorf("vy = %f, expected impulse %f", b.VY, phys.DoubleJumpImpulse)
		}
		if b.Charge {
			t.Error("charge should be consumed")
		}
	})

	t.Run("rejected without charge", func(t *testing.T) {
		b := NewBody(200, 400, phys)
		b.VY = 5.0
		if b.TryDoubleJump(phys) {
			t.Error("double jump without charge should not fire")
		}
	})

	t.Run("rejected while ascending fast", func(t *testing.T) {
		b := NewBody(200, 400, phys)
		b.Charge = true
		b.VY = phys.JumpImpulse // freshly bounced, rising fast

		if b.TryDoubleJump(phys) {
			t.Error("double jump should be rejected while rising fast")
		}
		if !b.Charge {
			t.Error("rejected trigger must not consume the charge")
		}
	})

	t.Run("consumed charge does not refire", func(t *testing.T) {
		b := NewBody(200, 400, phys)
		b.Charge = true
		b.VY = 5.0
		b.TryDoubleJump(phys)

		b.VY = 5.0
		if b.TryDoubleJump(phys) {
			t.Error("second trigger should fail once charge is spent")
		}
	})
}

func TestWrapHorizontal(t *testing.T) {
	phys := testPhysics()
	b := NewBody(200, 400, phys)

	b.X = -b.HalfW - 1
	b.WrapHorizontal(400)
	if b.X != 400+b.HalfW {
		t.Errorf("left exit should wrap to right edge, got x=%f", b.X)
	}

	b.X = 400 + b.HalfW + 1
	b.WrapHorizontal(400)
	if b.X != -b.HalfW {
		t.Errorf("right exit should wrap to left edge, got x=%f", b.X)
	}
}
