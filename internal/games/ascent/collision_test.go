package ascent

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-leap/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	rt := core.DefaultConfig()
	rt.Seed = seed
	g.Reset(rt)
	return g
}

// setupCollision replaces the generated world contents with an exact layout
// so landing geometry can be asserted tick by tick.
func setupCollision(t *testing.T, platforms []*Platform, hazards []*Hazard) *Game {
	t.Helper()
	g := newTestGame(t, 1)
	g.world.Platforms = platforms
	g.world.Hazards = hazards
	return g
}

func hasEvent(res core.StepResult, e core.Event) bool {
	for _, got := range res.Events {
		if got == e {
			return true
		}
	}
	return false
}

func countEvents(res core.StepResult, events ...core.Event) int {
	n := 0
	for _, got := range res.Events {
		for _, e := range events {
			if got == e {
				n++
			}
		}
	}
	return n
}

func TestLandingNoTunneling(t *testing.T) {
	g := setupCollision(t,
		[]*Platform{{X: 200, Y: 500, Radius: 30, Type: PlatformNormal}},
		nil)

	// One tick moves the foot from 472 to 512, jumping clean over the
	// surface line at 500. The swept check must still register the hit.
	b := &g.world.Body
	b.X, b.Y, b.VY = 200, 460, 40

	res := g.Step(core.NewInputFrame())

	if !hasEvent(res, core.EventLanded) {
		t.Fatal("fast fall tunneled through the platform")
	}
	if b.VY != g.cfg.Physics.JumpImpulse {
		t.Errorf("vy after landing = %f, want jump impulse %f", b.VY, g.cfg.Physics.JumpImpulse)
	}
}

func TestAscendingBodyPassesThrough(t *testing.T) {
	g := setupCollision(t,
		[]*Platform{{X: 200, Y: 500, Radius: 30, Type: PlatformNormal}},
		nil)

	b := &g.world.Body
	b.X, b.Y, b.VY = 200, 540, -10

	res := g.Step(core.NewInputFrame())

	if hasEvent(res, core.EventLanded) {
		t.Fatal("rising body must pass through platforms from below")
	}
}

func TestSideMissNoLanding(t *testing.T) {
	g := setupCollision(t,
		[]*Platform{{X: 60, Y: 500, Radius: 30, Type: PlatformNormal}},
		nil)

	b := &g.world.Body
	b.X, b.Y, b.VY = 200, 460, 40

	if res := g.Step(core.NewInputFrame()); hasEvent(res, core.EventLanded) {
		t.Fatal("body landed on a platform it is not horizontally over")
	}
}

func TestSingleLandingPerTick(t *testing.T) {
	// Two overlapping platforms under the body. Only the first in list order
	// may take the hit; the boost impulse of the second must not apply.
	g := setupCollision(t,
		[]*Platform{
			{X: 200, Y: 500, Radius: 30, Type: PlatformNormal},
			{X: 205, Y: 500, Radius: 30, Type: PlatformBoost},
		},
		nil)

	b := &g.world.Body
	b.X, b.Y, b.VY = 200, 460, 40

	res := g.Step(core.NewInputFrame())

	if n := countEvents(res, core.EventLanded, core.EventBoosted); n != 1 {
		t.Fatalf("got %d landing events in one tick, want exactly 1", n)
	}
	if b.VY != g.cfg.Physics.JumpImpulse {
		t.Errorf("second platform's impulse leaked in: vy = %f", b.VY)
	}
}

func TestBoostPlatform(t *testing.T) {
	g := setupCollision(t,
		[]*Platform{{X: 200, Y: 500, Radius: 30, Type: PlatformBoost}},
		nil)

	b := &g.world.Body
	b.X, b.Y, b.VY = 200, 460, 40

	res := g.Step(core.NewInputFrame())

	if !hasEvent(res, core.EventBoosted) {
		t.Fatal("expected a boost event")
	}
	if b.VY != g.cfg.Physics.BoostImpulse {
		t.Errorf("vy = %f, want boost impulse %f", b.VY, g.cfg.Physics.BoostImpulse)
	}
}

func TestChargerConsumedOnLanding(t *testing.T) {
	p := &Platform{X: 200, Y: 500, Radius: 30, Type: PlatformCharger}
	g := setupCollision(t, []*Platform{p}, nil)

	b := &g.world.Body
	b.X, b.Y, b.VY = 200, 460, 40

	res := g.Step(core.NewInputFrame())

	if !hasEvent(res, core.EventPoweredUp) || !hasEvent(res, core.EventLanded) {
		t.Fatalf("charger landing events = %v", res.Events)
	}
	if !b.Charge {
		t.Error("body should hold the double-jump charge")
	}
	if p.Type != PlatformNormal {
		t.Errorf("charger should convert to normal after use, got %s", p.Type)
	}

	// Landing on the same platform again grants nothing extra.
	b.X, b.Y, b.VY = 200, 460, 40
	res = g.Step(core.NewInputFrame())
	if hasEvent(res, core.EventPoweredUp) {
		t.Error("spent charger granted a second charge")
	}
	if !b.Charge {
		t.Error("held charge must survive ordinary landings")
	}
}

func TestBreakablePlatformRemovedAfterHit(t *testing.T) {
	g := setupCollision(t,
		[]*Platform{{X: 200, Y: 500, Radius: 30, Type: PlatformBreakable}},
		nil)

	b := &g.world.Body
	b.X, b.Y, b.VY = 200, 460, 40

	res := g.Step(core.NewInputFrame())

	if !hasEvent(res, core.EventBroke) || !hasEvent(res, core.EventLanded) {
		t.Fatalf("breakable landing events = %v", res.Events)
	}
	if b.VY != g.cfg.Physics.JumpImpulse {
		t.Errorf("breakable still bounces once: vy = %f", b.VY)
	}
	if len(g.world.Platforms) != 0 {
		t.Error("broken platform should be cleaned up the same tick")
	}
}

func TestGhostedPhantomNotLandable(t *testing.T) {
	// Phase 4.6 keeps sin(phase) far below the visibility cutoff through the
	// tick's self-update, so the platform stays ghosted during collision.
	g := setupCollision(t,
		[]*Platform{{X: 200, Y: 500, Radius: 30, Type: PlatformPhantom, Phase: 4.6, Opacity: 0.15}},
		nil)

	b := &g.world.Body
	b.X, b.Y, b.VY = 200, 460, 40

	if res := g.Step(core.NewInputFrame()); hasEvent(res, core.EventLanded) {
		t.Fatal("body landed on a ghosted phantom")
	}
}

func TestDrifterKnockback(t *testing.T) {
	g := setupCollision(t, nil,
		[]*Hazard{{X: 195, Y: 455, Radius: 14, Type: HazardDrifter}})

	b := &g.world.Body
	b.X, b.Y, b.VY = 200, 455, 0

	res := g.Step(core.NewInputFrame())

	if !hasEvent(res, core.EventKnocked) {
		t.Fatal("expected a knockback event")
	}
	if b.VY != g.cfg.Hazards.KnockbackDown {
		t.Errorf("vy = %f, want knockback %f", b.VY, g.cfg.Hazards.KnockbackDown)
	}
	if b.VX != g.cfg.Hazards.KnockbackSide {
		t.Errorf("vx = %f, body right of drifter should be pushed right", b.VX)
	}
	if g.gameOver {
		t.Error("drifter contact must not end the run")
	}
}

func TestSingularityPull(t *testing.T) {
	g := setupCollision(t, nil,
		[]*Hazard{{X: 300, Y: 500, Radius: 12, Type: HazardSingularity, CoreRadius: 12, PullRadius: 150}})

	b := &g.world.Body
	b.X, b.Y, b.VX, b.VY = 200, 500, 0, 0

	g.Step(core.NewInputFrame())

	// dist 100 gives 2600/100^2 = 0.26, below the cap.
	if math.Abs(b.VX-0.26) > 1e-9 {
		t.Errorf("pull accel = %f, want 0.26 toward the singularity", b.VX)
	}
	if g.gameOver {
		t.Error("body outside the core must survive the pull")
	}
}

func TestSingularityPullCapped(t *testing.T) {
	g := setupCollision(t, nil,
		[]*Hazard{{X: 213, Y: 500, Radius: 12, Type: HazardSingularity, CoreRadius: 12, PullRadius: 150}})

	b := &g.world.Body
	b.X, b.Y, b.VX, b.VY = 200, 500, 0, 0

	g.Step(core.NewInputFrame())

	// dist 13 yields a raw accel near 15.4; it must clamp to MaxPull.
	if math.Abs(b.VX-g.cfg.Hazards.MaxPull) > 1e-9 {
		t.Errorf("pull accel = %f, want cap %f", b.VX, g.cfg.Hazards.MaxPull)
	}
}

func TestSingularityCoreLethal(t *testing.T) {
	g := setupCollision(t, nil,
		[]*Hazard{{X: 200, Y: 505, Radius: 12, Type: HazardSingularity, CoreRadius: 12, PullRadius: 150}})

	b := &g.world.Body
	b.X, b.Y, b.VY = 200, 500, 0

	res := g.Step(core.NewInputFrame())

	if !hasEvent(res, core.EventDestroyed) {
		t.Fatal("body inside the core must be destroyed")
	}
	if !hasEvent(res, core.EventRunOver) {
		t.Fatal("destruction must end the run in the same tick")
	}
	if !res.State.GameOver {
		t.Error("state should report game over")
	}
	if g.EndReason() != endReasonDestroyed {
		t.Errorf("end reason = %q, want %q", g.EndReason(), endReasonDestroyed)
	}
}
