package session

import (
	"sort"
	"time"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/question"
)

// Summary holds the data displayed on the results screen.
type Summary struct {
	ID             string
	GameMode       string
	Duration       time.Duration
	Score          int
	BestStreak     int
	TotalQuestions int
	CorrectAnswers int
	Timeouts       int
	Accuracy       float64
	Subjects       []SubjectResult
	Difficulty     []DifficultyCount
}

// SubjectResult is one row of the per-subject breakdown.
type SubjectResult struct {
	Subject  string
	Correct  int
	Total    int
	Accuracy float64
	Points   int
	Topics   []TopicResult
}

// TopicResult is one row of a subject's per-topic breakdown.
type TopicResult struct {
	Topic    string
	Correct  int
	Total    int
	Accuracy float64
}

// DifficultyCount counts the questions shown at one level.
type DifficultyCount struct {
	Level question.Difficulty
	Count int
}

// BuildSummary creates a Summary from a record. Subjects and topics are
// sorted by name; difficulty counts follow the ladder order.
func BuildSummary(rec *Record) *Summary {
	s := &Summary{
		ID:             rec.ID,
		GameMode:       rec.GameMode,
		Duration:       rec.Duration(),
		Score:          rec.Score,
		BestStreak:     rec.BestStreak,
		TotalQuestions: rec.TotalQuestions,
		CorrectAnswers: rec.CorrectAnswers,
		Accuracy:       rec.Accuracy,
	}

	// Records read back mid-session have no totals yet.
	if !rec.Completed() {
		for _, a := range rec.Answers {
			if a.IsCorrect {
				s.CorrectAnswers++
			}
		}
		s.TotalQuestions = len(rec.Answers)
		s.Accuracy = Accuracy(s.CorrectAnswers, s.TotalQuestions)
	}

	for _, a := range rec.Answers {
		if a.IsTimeout {
			s.Timeouts++
		}
	}

	for name, sb := range rec.SubjectBreakdown {
		row := SubjectResult{
			Subject:  name,
			Correct:  sb.Correct,
			Total:    sb.Total,
			Accuracy: sb.Accuracy,
			Points:   sb.Points,
		}
		for topic, ts := range sb.Topics {
			row.Topics = append(row.Topics, TopicResult{
				Topic:    topic,
				Correct:  ts.Correct,
				Total:    ts.Total,
				Accuracy: ts.Accuracy,
			})
		}
		sort.Slice(row.Topics, func(i, j int) bool { return row.Topics[i].Topic < row.Topics[j].Topic })
		s.Subjects = append(s.Subjects, row)
	}
	sort.Slice(s.Subjects, func(i, j int) bool { return s.Subjects[i].Subject < s.Subjects[j].Subject })

	counts := make(map[question.Difficulty]int)
	for _, d := range rec.DifficultyHistory {
		counts[d]++
	}
	for _, level := range question.Levels() {
		if n := counts[level]; n > 0 {
			s.Difficulty = append(s.Difficulty, DifficultyCount{Level: level, Count: n})
		}
	}
	return s
}
