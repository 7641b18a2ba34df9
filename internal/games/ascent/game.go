// Package ascent implements an endless vertical leap game: the body ascends
// by bouncing off procedurally generated platforms while avoiding drifting
// obstacles and gravitational singularities, with difficulty rising as the
// climb progresses.
package ascent

import (
	"math/rand"

	"github.com/vovakirdan/tui-leap/internal/config"
	"github.com/vovakirdan/tui-leap/internal/core"
	"github.com/vovakirdan/tui-leap/internal/registry"
)

// Variant selects which derivation of the game runs.
type Variant int

const (
	// VariantVacuum is the full game: all platform types, drifters and
	// singularities, near-frictionless steering.
	VariantVacuum Variant = iota
	// VariantClassic is the simpler derivation: normal air friction,
	// reduced platform set, no singularities.
	VariantClassic
)

// Run end reasons, recorded with the final score.
const (
	endReasonFell      = "fell"
	endReasonDestroyed = "destroyed"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the Ascent game logic. All world mutation happens
// synchronously inside Step in a fixed stage order; nothing runs between
// ticks.
type Game struct {
	variant Variant

	world      *World
	gen        *Generator
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	tickCount int
	gameOver  bool
	paused    bool
	endReason string

	events []core.Event // effect events emitted during the current tick

	runtime core.RuntimeConfig
	cfg     config.AscentConfig
}

// New creates the full (vacuum) variant.
func New() *Game {
	return &Game{variant: VariantVacuum}
}

// NewClassic creates the classic variant.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return "ascent_classic"
	}
	return "ascent"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Ascent (Classic)"
	}
	return "Ascent"
}

// EndReason reports how the last run ended ("fell" or "destroyed").
// Empty while a run is still in progress.
func (g *Game) EndReason() string {
	if !g.gameOver {
		return ""
	}
	return g.endReason
}

// Ticks returns the number of simulation ticks in the current run.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Reset initializes or restarts the game: body on the start platform, fresh
// platform fill up the full viewport, score and difficulty back to zero.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadAscent(configPath)
	if err != nil {
		cfg = config.DefaultAscentConfig()
	}
	if g.variant == VariantClassic {
		config.ApplyAscentClassic(&cfg)
	}
	if difficultyPreset != "" {
		config.ApplyAscentPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.world = NewWorld(cfg.World.Width, cfg.World.Height, g.rng, cfg)
	g.gen = NewGenerator(g.rng, cfg, g.difficulty)

	startX := cfg.World.Width / 2
	bodyY := cfg.World.Height - 150
	platformY := bodyY + cfg.Physics.BodyHalfH

	g.world.Body = NewBody(startX, bodyY, cfg.Physics)
	g.gen.InitialFill(g.world, startX, platformY)

	g.tickCount = 0
	g.gameOver = false
	g.paused = false
	g.endReason = ""
	g.events = g.events[:0]
}

// Step advances the game by one tick. The stage order is fixed and
// observable: input, body integration, entity self-update, hazard
// interaction, wrap, camera scroll plus generation, landing resolution,
// cleanup, particle decay, terminal check. Reordering stages changes
// behavior (e.g. landing against pre- vs post-scroll platform positions),
// so it is locked down by tests.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.gameOver {
		// Terminal is one-way: no further world mutation until Reset.
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tickCount++

	// Input and body integration.
	if in.Has(core.ActionJump) && g.world.Body.TryDoubleJump(g.cfg.Physics) {
		g.emit(core.EventDoubleJumped)
		g.world.Burst(g.world.Body.X, g.world.Body.Foot(), 10, 1.8, 1.2, core.ColorBrightBlue)
	}
	g.world.Body.Integrate(in.Has(core.ActionLeft), in.Has(core.ActionRight), g.cfg.Physics)

	// Entity self-updates.
	for _, p := range g.world.Platforms {
		p.Update(g.world.W, g.cfg.Platforms)
	}
	for _, h := range g.world.Hazards {
		h.Update(g.world.W, g.cfg.Hazards)
	}

	// Hazard interaction may end the run outright.
	g.resolveHazards()
	if g.gameOver {
		return g.result()
	}

	g.world.Body.WrapHorizontal(g.world.W)

	// Camera scroll, score, and generation of fresh platforms above.
	if g.world.Scroll() > 0 {
		g.gen.TopUp(g.world, g.tickCount)
	}

	// Landings are resolved against post-scroll positions: body and
	// platforms were translated together, so the relative geometry this
	// tick is consistent.
	g.resolveLandings()

	g.world.Cleanup()
	g.world.DecayParticles()

	// Terminal check: fell past the viewport bottom.
	if g.world.Body.Y-g.world.Body.HalfH > g.world.H {
		g.endRun(endReasonFell)
	}

	return g.result()
}

// emit appends an effect event to this tick's ordered stream.
func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// endRun flips the game into its terminal state exactly once.
func (g *Game) endRun(reason string) {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.endReason = reason
	g.emit(core.EventRunOver)
}

// result packages the current state and this tick's events.
func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append(res.Events, g.events...)
	}
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(g.world.Score),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game variants with the registry
func init() {
	registry.Register("ascent", func() registry.Game {
		return New()
	})
	registry.Register("ascent_classic", func() registry.Game {
		return NewClassic()
	})
}
