package scoring

import (
	"testing"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/question"
)

func TestScore(t *testing.T) {
	e := New(DefaultConfig())

	tests := []struct {
		name   string
		in     Input
		streak int
		want   int
	}{
		{"incorrect", Input{Correct: false, Difficulty: question.Expert, ResponseSeconds: 1, TimeLimitSeconds: 30}, 10, 0},
		{"easy slow", Input{Correct: true, Difficulty: question.Easy, ResponseSeconds: 25, TimeLimitSeconds: 30}, 0, 10},
		{"medium slow", Input{Correct: true, Difficulty: question.Medium, ResponseSeconds: 25, TimeLimitSeconds: 30}, 0, 15},
		{"hard slow", Input{Correct: true, Difficulty: question.Hard, ResponseSeconds: 25, TimeLimitSeconds: 30}, 0, 20},
		{"expert slow", Input{Correct: true, Difficulty: question.Expert, ResponseSeconds: 25, TimeLimitSeconds: 30}, 0, 25},
		{"unknown level", Input{Correct: true, Difficulty: "Legendary", ResponseSeconds: 25, TimeLimitSeconds: 30}, 0, 10},
		{"time bonus", Input{Correct: true, Difficulty: question.Easy, ResponseSeconds: 5, TimeLimitSeconds: 30}, 0, 15},
		{"exactly threshold no bonus", Input{Correct: true, Difficulty: question.Easy, ResponseSeconds: 20, TimeLimitSeconds: 30}, 0, 10},
		{"untimed no bonus", Input{Correct: true, Difficulty: question.Easy, ResponseSeconds: 1, TimeLimitSeconds: 0}, 0, 10},
		{"streak below threshold", Input{Correct: true, Difficulty: question.Easy, ResponseSeconds: 25, TimeLimitSeconds: 30}, 2, 10},
		{"streak bonus", Input{Correct: true, Difficulty: question.Easy, ResponseSeconds: 25, TimeLimitSeconds: 30}, 3, 20},
		{"all bonuses", Input{Correct: true, Difficulty: question.Expert, ResponseSeconds: 2, TimeLimitSeconds: 60}, 7, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Score(tt.in, StreakContext{CurrentStreak: tt.streak})
			if got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_Pure(t *testing.T) {
	e := New(DefaultConfig())
	in := Input{Correct: true, Difficulty: question.Hard, ResponseSeconds: 3.5, TimeLimitSeconds: 45}
	first := e.Score(in, StreakContext{CurrentStreak: 4})
	for i := 0; i < 10; i++ {
		if got := e.Score(in, StreakContext{CurrentStreak: 4}); got != first {
			t.Fatalf("Score changed between calls: %d then %d", first, got)
		}
	}
}

func TestScore_RoundsHalfAwayFromZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseScore = 5
	e := New(cfg)

	tests := []struct {
		level question.Difficulty
		want  int
	}{
		{question.Easy, 5},    // 5.0
		{question.Medium, 8},  // 7.5
		{question.Hard, 10},   // 10.0
		{question.Expert, 13}, // 12.5
	}
	for _, tt := range tests {
		got := e.Score(Input{Correct: true, Difficulty: tt.level, ResponseSeconds: 30, TimeLimitSeconds: 30}, StreakContext{})
		if got != tt.want {
			t.Errorf("Score(%s) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	cfg := DefaultConfig()
	cfg.StreakBonusPoints = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative streak bonus")
	}
	cfg = DefaultConfig()
	cfg.Multipliers[question.Hard] = -2
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative multiplier")
	}
}
