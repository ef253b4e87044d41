// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// FifteenConfig contains all configuration for the 15-tile puzzle.
type FifteenConfig struct {
	Shuffle FifteenShuffle `yaml:"shuffle"`
}

// FifteenShuffle controls how a new board is generated.
type FifteenShuffle struct {
	Mode  ShuffleMode `yaml:"mode"`  // "walk" or "permutation"
	Moves int         `yaml:"moves"` // Random slides applied in walk mode
}

// ShuffleMode selects the board generation strategy.
type ShuffleMode string

const (
	// ShuffleWalk applies random legal slides to the solved board.
	ShuffleWalk ShuffleMode = "walk"
	// ShufflePermutation is a raw Fisher-Yates shuffle; may be unsolvable.
	ShufflePermutation ShuffleMode = "permutation"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board    SnakeBoard    `yaml:"board"`
	Timing   SnakeTiming   `yaml:"timing"`
	Gameplay SnakeGameplay `yaml:"gameplay"`
}

// SnakeBoard defines the grid size.
type SnakeBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeTiming defines the move interval and how it shrinks.
type SnakeTiming struct {
	IntervalMs  int `yaml:"interval_ms"`
	DecrementMs int `yaml:"decrement_ms"`
	FloorMs     int `yaml:"floor_ms"`
}

// SnakeGameplay defines scoring.
type SnakeGameplay struct {
	FoodReward int `yaml:"food_reward"`
}

// PacmanConfig contains all configuration for the maze chase.
type PacmanConfig struct {
	Actors     PacmanActors     `yaml:"actors"`
	Gameplay   PacmanGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PacmanActors defines actor speeds in cells per tick.
type PacmanActors struct {
	PlayerSpeed float64 `yaml:"player_speed"`
	GhostSpeed  float64 `yaml:"ghost_speed"`
	TurnChance  float64 `yaml:"turn_chance"`
}

// PacmanGameplay defines scoring and the loss rule.
type PacmanGameplay struct {
	Lives           int     `yaml:"lives"`
	FoodPoints      int     `yaml:"food_points"`
	PowerPoints     int     `yaml:"power_points"`
	GhostCollision  bool    `yaml:"ghost_collision"`
	CollisionRadius float64 `yaml:"collision_radius"`
}

// ArkanoidConfig contains all configuration for the brick breaker.
type ArkanoidConfig struct {
	Field    ArkanoidField    `yaml:"field"`
	Physics  ArkanoidPhysics  `yaml:"physics"`
	Paddle   ArkanoidPaddle   `yaml:"paddle"`
	Bricks   ArkanoidBricks   `yaml:"bricks"`
	Gameplay ArkanoidGameplay `yaml:"gameplay"`
}

// ArkanoidField is the playfield size in pixels.
type ArkanoidField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ArkanoidPhysics defines ball and paddle speeds in pixels per tick.
type ArkanoidPhysics struct {
	BallRadius  float64 `yaml:"ball_radius"`
	BallSpeedX  float64 `yaml:"ball_speed_x"`
	BallSpeedY  float64 `yaml:"ball_speed_y"`
	PaddleSpeed float64 `yaml:"paddle_speed"`
	MaxAngle    float64 `yaml:"max_angle"` // Degrees from vertical at the paddle edge
}

// ArkanoidPaddle defines paddle geometry.
type ArkanoidPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"`
}

// ArkanoidBricks defines the brick wall layout.
type ArkanoidBricks struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
}

// ArkanoidGameplay defines lives and scoring.
type ArkanoidGameplay struct {
	Lives       int `yaml:"lives"`
	BrickPoints int `yaml:"brick_points"`
	LifeBonus   int `yaml:"life_bonus"` // Awarded per remaining life on a clear
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a name to a preset. Unknown names return false.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

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

// Presets lists the difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// HasPresets reports whether difficulty presets change the given game.
func HasPresets(gameID string) bool {
	switch gameID {
	case "snake", "pacman", "arkanoid":
		return true
	default:
		return false
	}
}
