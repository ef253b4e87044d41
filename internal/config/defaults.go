package config

import (
	_ "embed"
)

//go:embed defaults/fifteen.yaml
var defaultFifteenYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultFifteenConfig returns the default 15-puzzle configuration.
func DefaultFifteenConfig() FifteenConfig {
	return FifteenConfig{
		Shuffle: FifteenShuffle{
			Mode:  ShuffleWalk,
			Moves: 200,
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Width:  20,
			Height: 20,
		},
		Timing: SnakeTiming{
			IntervalMs:  150,
			DecrementMs: 2,
			FloorMs:     50,
		},
		Gameplay: SnakeGameplay{
			FoodReward: 10,
		},
	}
}

// DefaultPacmanConfig returns the default maze chase configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Actors: PacmanActors{
			PlayerSpeed: 1.0 / 8,
			GhostSpeed:  1.0 / 9,
			TurnChance:  0.05,
		},
		Gameplay: PacmanGameplay{
			Lives:           3,
			FoodPoints:      10,
			PowerPoints:     50,
			GhostCollision:  true,
			CollisionRadius: 0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultArkanoidConfig returns the default brick breaker configuration.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Field: ArkanoidField{
			Width:  800,
			Height: 600,
		},
		Physics: ArkanoidPhysics{
			BallRadius:  8,
			BallSpeedX:  3.182, // 4.5 px/tick total at 45 degrees
			BallSpeedY:  -3.182,
			PaddleSpeed: 7,
			MaxAngle:    60,
		},
		Paddle: ArkanoidPaddle{
			Width:  100,
			Height: 10,
			Y:      570,
		},
		Bricks: ArkanoidBricks{
			Rows:       5,
			Cols:       9,
			Width:      75,
			Height:     20,
			Padding:    10,
			OffsetTop:  60,
			OffsetLeft: 30,
		},
		Gameplay: ArkanoidGameplay{
			Lives:       3,
			BrickPoints: 10,
			LifeBonus:   100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "fifteen":
		return defaultFifteenYAML
	case "snake":
		return defaultSnakeYAML
	case "pacman":
		return defaultPacmanYAML
	case "arkanoid":
		return defaultArkanoidYAML
	default:
		return nil
	}
}
