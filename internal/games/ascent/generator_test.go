package ascent

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-leap/internal/config"
)

func testGenerator(seed int64) (*Generator, *World, config.AscentConfig) {
	cfg := config.DefaultAscentConfig()
	rng := rand.New(rand.NewSource(seed))
	w := NewWorld(cfg.World.Width, cfg.World.Height, rng, cfg)
	gen := NewGenerator(rng, cfg, config.NewDifficultyManager(cfg.Difficulty))
	return gen, w, cfg
}

func TestRollTypeGating(t *testing.T) {
	gen, _, _ := testGenerator(1)

	// At difficulty zero the gated types have zero weight and can never roll.
	for i := 0; i < 1000; i++ {
		pt := gen.rollType(0)
		if pt == PlatformPhantom || pt == PlatformShrinking {
			t.Fatalf("draw %d produced gated type %s at difficulty 0", i, pt)
		}
	}
}

func TestRollTypeRareAtMaxDifficulty(t *testing.T) {
	gen, _, _ := testGenerator(2)

	counts := make(map[PlatformType]int)
	for i := 0; i < 5000; i++ {
		counts[gen.rollType(1)]++
	}

	if counts[PlatformPhantom] == 0 || counts[PlatformShrinking] == 0 {
		t.Errorf("gated types should appear at max difficulty: %v", counts)
	}
	if counts[PlatformNormal] == 0 {
		t.Error("normal platforms should still dominate the remainder bucket")
	}
	if counts[PlatformNormal] < counts[PlatformPhantom] {
		t.Errorf("normal (%d) should be more common than phantom (%d)",
			counts[PlatformNormal], counts[PlatformPhantom])
	}
}

func TestNewPlatformAtStaysInBounds(t *testing.T) {
	gen, _, cfg := testGenerator(3)

	for i := 0; i < 500; i++ {
		p := gen.NewPlatformAt(100, cfg.World.Width, 0.5)
		if p.X-p.Radius < 0 || p.X+p.Radius > cfg.World.Width {
			t.Fatalf("platform extends out of bounds: x=%f r=%f", p.X, p.Radius)
		}
		if p.Radius < cfg.Platforms.MinRadius || p.Radius > cfg.Platforms.MaxRadius {
			t.Fatalf("radius %f outside configured range", p.Radius)
		}
	}
}

func TestInitialFill(t *testing.T) {
	gen, w, cfg := testGenerator(4)
	gen.InitialFill(w, 200, 662)

	if len(w.Platforms) == 0 {
		t.Fatal("initial fill produced no platforms")
	}

	start := w.Platforms[0]
	if start.Type != PlatformStart {
		t.Errorf("first platform type = %s, want start", start.Type)
	}
	if start.X != 200 || start.Y != 662 {
		t.Errorf("start platform at (%f, %f), want (200, 662)", start.X, start.Y)
	}
	if start.Radius != cfg.Platforms.StartRadius {
		t.Errorf("start radius = %f, want %f", start.Radius, cfg.Platforms.StartRadius)
	}

	if top := w.TopmostPlatformY(); top > cfg.Generation.TopBuffer {
		t.Errorf("fill stopped short: topmost platform at y=%f, buffer is %f",
			top, cfg.Generation.TopBuffer)
	}

	// Platforms after the start pad are generated top-down with bounded gaps.
	for i := 1; i < len(w.Platforms)-1; i++ {
		gap := w.Platforms[i].Y - w.Platforms[i+1].Y
		if gap < cfg.Generation.MinSpacing-1e-9 || gap > cfg.Generation.MaxSpacing+cfg.Difficulty.Scaling.SpacingStretch+1e-9 {
			t.Errorf("gap %f between platforms %d and %d outside spacing range", gap, i, i+1)
		}
	}

	if len(w.Hazards) != 0 {
		t.Errorf("no hazards should spawn at score zero, got %d", len(w.Hazards))
	}
}

func TestHazardIntroGate(t *testing.T) {
	gen, _, cfg := testGenerator(5)
	sibling := &Platform{X: 200, Y: 100, Radius: 30}

	for i := 0; i < 200; i++ {
		if h := gen.rollHazard(sibling, cfg.World.Width, cfg.Hazards.IntroScore-1, 0); h != nil {
			t.Fatal("hazard spawned below the intro score")
		}
	}
}

func TestHazardSeparation(t *testing.T) {
	cfg := config.DefaultAscentConfig()
	cfg.Hazards.BaseChance = 1.0
	cfg.Hazards.MaxChance = 1.0
	cfg.Hazards.ChanceSlope = 0

	rng := rand.New(rand.NewSource(6))
	gen := NewGenerator(rng, cfg, config.NewDifficultyManager(cfg.Difficulty))
	sibling := &Platform{X: 200, Y: 100, Radius: 30}

	spawned := 0
	for i := 0; i < 200; i++ {
		h := gen.rollHazard(sibling, cfg.World.Width, 2000, 0)
		if h == nil {
			t.Fatal("hazard draw at chance 1.0 returned nil")
		}
		spawned++
		if d := math.Abs(h.X - sibling.X); d < cfg.Hazards.MinSeparation-1e-9 {
			t.Fatalf("hazard at x=%f only %f from its platform, want >= %f",
				h.X, d, cfg.Hazards.MinSeparation)
		}
		if h.X < h.Radius || h.X > cfg.World.Width-h.Radius {
			t.Fatalf("hazard out of bounds: x=%f r=%f", h.X, h.Radius)
		}
	}
	if spawned == 0 {
		t.Fatal("no hazards spawned")
	}
}

func TestClassicDisablesSingularities(t *testing.T) {
	cfg := config.DefaultAscentConfig()
	config.ApplyAscentClassic(&cfg)
	cfg.Hazards.BaseChance = 1.0
	cfg.Hazards.MaxChance = 1.0

	rng := rand.New(rand.NewSource(7))
	gen := NewGenerator(rng, cfg, config.NewDifficultyManager(cfg.Difficulty))
	sibling := &Platform{X: 200, Y: 100, Radius: 30}

	for i := 0; i < 300; i++ {
		h := gen.rollHazard(sibling, cfg.World.Width, 5000, 0)
		if h != nil && h.Type == HazardSingularity {
			t.Fatal("classic variant must not spawn singularities")
		}
	}
}

func TestTopUpAfterScroll(t *testing.T) {
	gen, w, cfg := testGenerator(8)
	gen.InitialFill(w, 200, 662)

	// Simulate heavy scroll: push everything down and drop what left the view.
	for _, p := range w.Platforms {
		p.Y += 300
	}
	w.Cleanup()

	gen.TopUp(w, 600)
	if top := w.TopmostPlatformY(); top > cfg.Generation.TopBuffer {
		t.Errorf("top-up left a gap: topmost platform at y=%f", top)
	}
}
