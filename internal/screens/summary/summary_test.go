package summary

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/question"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/router"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		ID:             "s-1",
		GameMode:       "RAPID_FIRE",
		Duration:       4*time.Minute + 5*time.Second,
		Score:          185,
		BestStreak:     6,
		TotalQuestions: 20,
		CorrectAnswers: 14,
		Timeouts:       2,
		Accuracy:       70,
		Subjects: []session.SubjectResult{
			{
				Subject: "Mathematics", Correct: 5, Total: 6, Accuracy: 83.3, Points: 75,
				Topics: []session.TopicResult{{Topic: "Percentages", Correct: 5, Total: 6, Accuracy: 83.3}},
			},
			{Subject: "Verbal Ability", Correct: 9, Total: 14, Accuracy: 64.3, Points: 110},
		},
		Difficulty: []session.DifficultyCount{
			{Level: question.Easy, Count: 8},
			{Level: question.Hard, Count: 12},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), nil)
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), nil)
	view := s.View(100, 30)
	for _, want := range []string{"RAPID_FIRE complete!", "Score 185", "Duration: 4:05", "Percentages", "Verbal Ability", "Timeouts: 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "could not be saved") {
		t.Error("unexpected save warning")
	}
}

func TestSummaryScreen_SaveWarning(t *testing.T) {
	s := New(testSummary(), errors.New("disk full"))
	if !strings.Contains(s.View(100, 30), "could not be saved") {
		t.Error("expected a save warning")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, code := range []rune{tea.KeyEnter, tea.KeyEscape} {
		s := New(testSummary(), nil)
		_, cmd := s.Update(tea.KeyPressMsg{Code: code})
		if cmd == nil {
			t.Fatalf("key %q: expected a command", code)
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("key %q: expected PopScreenMsg", code)
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(), nil)
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
