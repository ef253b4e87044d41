package config

// DifficultyManager scales base speeds as a round progresses. The level
// starts at InitialLevel and climbs linearly to 1 once the progression
// measure (score or ticks) reaches MaxAt.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager for one round.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clamp01(cfg.InitialLevel)
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled reports whether the level moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty in [InitialLevel, 1].
func (d *DifficultyManager) Level(score, ticks int) float64 {
	base := d.cfg.InitialLevel
	if !d.IsEnabled() {
		return base
	}

	var measure int
	switch d.cfg.Progression.Type {
	case "score":
		measure = score
	case "time":
		measure = ticks
	default:
		return base
	}

	progress := clamp01(float64(measure) / float64(max(d.cfg.Progression.MaxAt, 1)))
	return base + progress*(1-base)
}

// Speed scales base by up to 1+SpeedMultiplier at level 1.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
