// Package config provides YAML-based game configuration loading and
// difficulty management for the leap platform.
package config

// AscentConfig contains all configuration for the Ascent game.
type AscentConfig struct {
	World      AscentWorld      `yaml:"world"`
	Physics    AscentPhysics    `yaml:"physics"`
	Platforms  AscentPlatforms  `yaml:"platforms"`
	Hazards    AscentHazards    `yaml:"hazards"`
	Generation AscentGeneration `yaml:"generation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// AscentWorld defines the logical viewport the simulation runs in.
// The renderer scales these units to whatever screen it has.
type AscentWorld struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	ScrollLine float64 `yaml:"scroll_line"` // viewport fraction from the top that triggers camera scroll
	StarCount  int     `yaml:"star_count"`  // background stars (visual only)
}

// AscentPhysics defines body integration parameters.
type AscentPhysics struct {
	Gravity           float64 `yaml:"gravity"`
	Friction          float64 `yaml:"friction"` // multiplicative per-tick damping, < 1
	SteerAccel        float64 `yaml:"steer_accel"`
	MaxSpeed          float64 `yaml:"max_speed"` // horizontal velocity clamp
	JumpImpulse       float64 `yaml:"jump_impulse"`
	BoostImpulse      float64 `yaml:"boost_impulse"`
	DoubleJumpImpulse float64 `yaml:"double_jump_impulse"`
	DoubleJumpMinVY   float64 `yaml:"double_jump_min_vy"` // trigger rejected while rising faster than this
	TiltPerVX         float64 `yaml:"tilt_per_vx"`
	BodyHalfW         float64 `yaml:"body_half_w"`
	BodyHalfH         float64 `yaml:"body_half_h"`
}

// AscentPlatforms defines per-type platform behavior parameters.
type AscentPlatforms struct {
	MinRadius           float64 `yaml:"min_radius"`
	MaxRadius           float64 `yaml:"max_radius"`
	StartRadius         float64 `yaml:"start_radius"`
	EdgeTolerance       float64 `yaml:"edge_tolerance"` // extra horizontal slack on landing tests
	MovingMinSpeed      float64 `yaml:"moving_min_speed"`
	MovingMaxSpeed      float64 `yaml:"moving_max_speed"`
	PhantomPhaseStep    float64 `yaml:"phantom_phase_step"`
	PhantomGhostOpacity float64 `yaml:"phantom_ghost_opacity"`
	SolidityThreshold   float64 `yaml:"solidity_threshold"` // phantom opacity below this is pass-through
	ShrinkMinRate       float64 `yaml:"shrink_min_rate"`
	ShrinkMaxRate       float64 `yaml:"shrink_max_rate"`
	MinSolidRadius      float64 `yaml:"min_solid_radius"` // shrinking platforms below this are pass-through
}

// AscentHazards defines hazard generation and behavior parameters.
type AscentHazards struct {
	IntroScore        float64 `yaml:"intro_score"`  // no hazards below this score
	BaseChance        float64 `yaml:"base_chance"`  // spawn probability per generated platform
	ChanceSlope       float64 `yaml:"chance_slope"` // added per unit difficulty
	MaxChance         float64 `yaml:"max_chance"`
	SingularityShare  float64 `yaml:"singularity_share"` // fraction of hazard draws that become singularities
	AllowSingularity  bool    `yaml:"allow_singularity"`
	MinSeparation     float64 `yaml:"min_separation"` // minimum horizontal distance from the sibling platform
	DrifterRadius     float64 `yaml:"drifter_radius"`
	DrifterMinSpeed   float64 `yaml:"drifter_min_speed"`
	DrifterMaxSpeed   float64 `yaml:"drifter_max_speed"`
	HoverStep         float64 `yaml:"hover_step"`
	HoverAmplitude    float64 `yaml:"hover_amplitude"`
	KnockbackDown     float64 `yaml:"knockback_down"`
	KnockbackSide     float64 `yaml:"knockback_side"`
	SingularityRadius float64 `yaml:"singularity_radius"` // visual/core radius
	PullRadius        float64 `yaml:"pull_radius"`
	PullStrength      float64 `yaml:"pull_strength"` // inverse-square attraction constant
	MaxPull           float64 `yaml:"max_pull"`      // per-tick acceleration cap
	CoreEpsilon       float64 `yaml:"core_epsilon"`  // distances below this skip the force math and end the run
}

// AscentGeneration defines the procedural platform distribution.
type AscentGeneration struct {
	MinSpacing float64       `yaml:"min_spacing"` // vertical gap between generated platforms
	MaxSpacing float64       `yaml:"max_spacing"`
	TopBuffer  float64       `yaml:"top_buffer"` // keep generating while the topmost platform is below this
	Weights    AscentWeights `yaml:"weights"`
}

// AscentWeights defines the weighted random platform-type draw.
// Each weight is base + slope * difficulty; gated types stay at zero weight
// until difficulty passes their gate. Whatever probability mass is left after
// the special types falls through to Normal.
type AscentWeights struct {
	PhantomBase    float64 `yaml:"phantom_base"`
	PhantomSlope   float64 `yaml:"phantom_slope"`
	PhantomGate    float64 `yaml:"phantom_gate"`
	ShrinkingBase  float64 `yaml:"shrinking_base"`
	ShrinkingSlope float64 `yaml:"shrinking_slope"`
	ShrinkingGate  float64 `yaml:"shrinking_gate"`
	BreakableBase  float64 `yaml:"breakable_base"`
	BreakableSlope float64 `yaml:"breakable_slope"`
	MovingBase     float64 `yaml:"moving_base"`
	MovingSlope    float64 `yaml:"moving_slope"`
	BoostBase      float64 `yaml:"boost_base"`
	ChargerBase    float64 `yaml:"charger_base"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpacingStretch float64 `yaml:"spacing_stretch"` // extra max spacing at max difficulty
	HazardBoost    float64 `yaml:"hazard_boost"`    // extra hazard chance at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
