package scoring

import (
	"fmt"
	"math"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/question"
)

// Config holds the scoring constants.
type Config struct {
	BaseScore            int
	Multipliers          map[question.Difficulty]float64
	TimeBonusThreshold   float64 // seconds left on the timer required for the bonus
	TimeBonusPoints      int
	StreakBonusThreshold int // consecutive correct answers before this one
	StreakBonusPoints    int
}

// DefaultConfig returns the standard scoring constants.
func DefaultConfig() Config {
	return Config{
		BaseScore: 10,
		Multipliers: map[question.Difficulty]float64{
			question.Easy:   1.0,
			question.Medium: 1.5,
			question.Hard:   2.0,
			question.Expert: 2.5,
		},
		TimeBonusThreshold:   10,
		TimeBonusPoints:      5,
		StreakBonusThreshold: 3,
		StreakBonusPoints:    10,
	}
}

// Validate rejects negative constants.
func (c Config) Validate() error {
	switch {
	case c.BaseScore < 0:
		return fmt.Errorf("base score must not be negative")
	case c.TimeBonusThreshold < 0 || c.TimeBonusPoints < 0:
		return fmt.Errorf("time bonus must not be negative")
	case c.StreakBonusThreshold < 0 || c.StreakBonusPoints < 0:
		return fmt.Errorf("streak bonus must not be negative")
	}
	for d, m := range c.Multipliers {
		if m < 0 {
			return fmt.Errorf("multiplier for %s must not be negative", d)
		}
	}
	return nil
}

// Input is the part of an answer that affects its score.
type Input struct {
	Correct          bool
	Difficulty       question.Difficulty
	ResponseSeconds  float64
	TimeLimitSeconds float64
}

// StreakContext carries the streak as it was before the answer being scored.
type StreakContext struct {
	CurrentStreak int
}

// Engine computes points for answers. The zero value is not usable; use New.
type Engine struct {
	cfg Config
}

// New creates an Engine with the given constants.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the constants the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Multiplier returns the difficulty multiplier, 1.0 for unknown levels.
func (e *Engine) Multiplier(d question.Difficulty) float64 {
	if m, ok := e.cfg.Multipliers[d]; ok {
		return m
	}
	return 1.0
}

// Score returns the points for an answer. Incorrect answers score 0.
//
// The raw value is rounded with math.Round, so halves round away from zero
// (7.5 → 8, 12.5 → 13).
func (e *Engine) Score(in Input, streak StreakContext) int {
	if !in.Correct {
		return 0
	}

	score := float64(e.cfg.BaseScore) * e.Multiplier(in.Difficulty)

	if in.TimeLimitSeconds-in.ResponseSeconds > e.cfg.TimeBonusThreshold {
		score += float64(e.cfg.TimeBonusPoints)
	}
	if streak.CurrentStreak >= e.cfg.StreakBonusThreshold {
		score += float64(e.cfg.StreakBonusPoints)
	}

	return int(math.Round(score))
}
