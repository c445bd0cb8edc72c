package session

import (
	"testing"
	"time"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/question"
)

func TestBuildSummary(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := NewRecord("abc", "MARATHON", start)

	answers := []AnswerEvent{
		{Question: question.Question{ID: "1", Subject: "Verbal Ability", Topic: "Synonyms", Difficulty: question.Easy}, IsCorrect: true, PointsEarned: 10},
		{Question: question.Question{ID: "2", Subject: "Mathematics", Topic: "Algebra", Difficulty: question.Hard}, IsCorrect: false},
		{Question: question.Question{ID: "3", Subject: "Mathematics", Topic: "Arithmetic", Difficulty: question.Hard}, IsCorrect: true, PointsEarned: 20},
		{Question: question.Question{ID: "4", Subject: "Mathematics", Topic: "Algebra", Difficulty: question.Easy}, IsTimeout: true, SelectedIndex: -1},
	}
	for _, a := range answers {
		rec.record(a)
		rec.DifficultyHistory = append(rec.DifficultyHistory, a.Question.Difficulty)
	}
	rec.Score = 30
	rec.finalize(start.Add(90 * time.Second))

	s := BuildSummary(rec)

	if s.TotalQuestions != 4 || s.CorrectAnswers != 2 {
		t.Errorf("totals = %d/%d, want 2/4", s.CorrectAnswers, s.TotalQuestions)
	}
	if s.Accuracy != 50 {
		t.Errorf("Accuracy = %v, want 50", s.Accuracy)
	}
	if s.Duration != 90*time.Second {
		t.Errorf("Duration = %v, want 90s", s.Duration)
	}
	if s.Timeouts != 1 {
		t.Errorf("Timeouts = %d, want 1", s.Timeouts)
	}
	if len(s.Subjects) != 2 || s.Subjects[0].Subject != "Mathematics" || s.Subjects[1].Subject != "Verbal Ability" {
		t.Fatalf("Subjects = %+v, want Mathematics then Verbal Ability", s.Subjects)
	}
	math := s.Subjects[0]
	if math.Total != 3 || math.Correct != 1 || math.Points != 20 {
		t.Errorf("Mathematics = %+v", math)
	}
	if len(math.Topics) != 2 || math.Topics[0].Topic != "Algebra" || math.Topics[0].Total != 2 {
		t.Errorf("Mathematics topics = %+v", math.Topics)
	}
	if len(s.Difficulty) != 2 || s.Difficulty[0].Level != question.Easy || s.Difficulty[0].Count != 2 ||
		s.Difficulty[1].Level != question.Hard || s.Difficulty[1].Count != 2 {
		t.Errorf("Difficulty = %+v", s.Difficulty)
	}
}

func TestBuildSummary_Incomplete(t *testing.T) {
	rec := NewRecord("abc", "RAPID_FIRE", time.Now())
	rec.record(AnswerEvent{Question: question.Question{Subject: "Mathematics", Topic: "Algebra"}, IsCorrect: true})

	s := BuildSummary(rec)
	if s.TotalQuestions != 1 || s.CorrectAnswers != 1 || s.Accuracy != 100 {
		t.Errorf("summary = %+v, want 1/1 at 100%%", s)
	}
	if s.Duration != 0 {
		t.Errorf("Duration = %v, want 0 for a running session", s.Duration)
	}
}

func TestRecordClone(t *testing.T) {
	end := time.Date(2026, 3, 1, 10, 5, 0, 0, time.UTC)
	rec := NewRecord("abc", "SURVIVAL", end.Add(-5*time.Minute))
	rec.record(AnswerEvent{Question: question.Question{Subject: "Mathematics", Topic: "Algebra", Options: []string{"1", "2"}}})
	rec.finalize(end)

	c := rec.Clone()
	*c.EndTime = end.Add(time.Hour)
	c.SubjectBreakdown["Mathematics"].Topics["Algebra"].Total = 7
	c.DifficultyHistory = append(c.DifficultyHistory, question.Hard)

	if !rec.EndTime.Equal(end) {
		t.Error("EndTime shared with clone")
	}
	if rec.SubjectBreakdown["Mathematics"].Topics["Algebra"].Total != 1 {
		t.Error("topic stats shared with clone")
	}
	if len(rec.DifficultyHistory) != 0 {
		t.Error("difficulty history shared with clone")
	}
}
