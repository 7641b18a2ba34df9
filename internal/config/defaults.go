package config

import (
	_ "embed"
)

//go:embed defaults/ascent.yaml
var defaultAscentYAML []byte

// DefaultAscentConfig returns the default Ascent configuration, tuned for
// 60 ticks per second in the 400x800 logical viewport.
func DefaultAscentConfig() AscentConfig {
	return AscentConfig{
		World: AscentWorld{
			Width:      400,
			Height:     800,
			ScrollLine: 0.45,
			StarCount:  28,
		},
		Physics: AscentPhysics{
			Gravity:           0.32,
			Friction:          0.98,
			SteerAccel:        0.5,
			MaxSpeed:          9.0,
			JumpImpulse:       -13.5,
			BoostImpulse:      -21.0,
			DoubleJumpImpulse: -16.0,
			DoubleJumpMinVY:   -2.0,
			TiltPerVX:         2.5,
			BodyHalfW:         12,
			BodyHalfH:         12,
		},
		Platforms: AscentPlatforms{
			MinRadius:           26,
			MaxRadius:           40,
			StartRadius:         60,
			EdgeTolerance:       4,
			MovingMinSpeed:      0.8,
			MovingMaxSpeed:      2.0,
			PhantomPhaseStep:    0.05,
			PhantomGhostOpacity: 0.15,
			SolidityThreshold:   0.5,
			ShrinkMinRate:       0.05,
			ShrinkMaxRate:       0.12,
			MinSolidRadius:      10,
		},
		Hazards: AscentHazards{
			IntroScore:        900,
			BaseChance:        0.05,
			ChanceSlope:       0.12,
			MaxChance:         0.22,
			SingularityShare:  0.35,
			AllowSingularity:  true,
			MinSeparation:     90,
			DrifterRadius:     14,
			DrifterMinSpeed:   0.9,
			DrifterMaxSpeed:   2.2,
			HoverStep:         0.08,
			HoverAmplitude:    6,
			KnockbackDown:     9,
			KnockbackSide:     6,
			SingularityRadius: 12,
			PullRadius:        150,
			PullStrength:      2600,
			MaxPull:           2.5,
			CoreEpsilon:       0.001,
		},
		Generation: AscentGeneration{
			MinSpacing: 55,
			MaxSpacing: 105,
			TopBuffer:  20,
			Weights: AscentWeights{
				PhantomBase:    0.05,
				PhantomSlope:   0.10,
				PhantomGate:    0.35,
				ShrinkingBase:  0.05,
				ShrinkingSlope: 0.10,
				ShrinkingGate:  0.25,
				BreakableBase:  0.06,
				BreakableSlope: 0.12,
				MovingBase:     0.10,
				MovingSlope:    0.15,
				BoostBase:      0.07,
				ChargerBase:    0.05,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2400,
			},
			Scaling: ScalingConfig{
				SpacingStretch: 25,
				HazardBoost:    0.05,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "ascent", "ascent_classic":
		return defaultAscentYAML
	default:
		return nil
	}
}
