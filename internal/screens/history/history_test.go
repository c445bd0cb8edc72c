package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/router"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/screens/summary"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
)

type stubReader struct {
	recs []*session.Record
	err  error
}

func (r stubReader) ReadAll(context.Context) ([]*session.Record, error) {
	return r.recs, r.err
}

func record(id string, start time.Time, score int) *session.Record {
	rec := session.NewRecord(id, "RAPID_FIRE", start)
	rec.Score = score
	return rec
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	s.Update(s.Init()())
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(stubReader{})
	load(t, s)
	if !strings.Contains(s.View(100, 30), "No games yet") {
		t.Error("expected empty-state message")
	}
}

func TestHistoryScreen_NewestFirstAndDetails(t *testing.T) {
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	s := New(stubReader{recs: []*session.Record{
		record("old", base, 40),
		record("new", base.Add(time.Hour), 90),
	}})
	load(t, s)

	if s.records[0].ID != "new" {
		t.Errorf("first record = %q, want new", s.records[0].ID)
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "2 games") || !strings.Contains(view, "best score 90") {
		t.Errorf("view missing aggregate stats:\n%s", view)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d after moving past the end, want 1", s.selected)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected results screen, got %T", msg.Screen)
	}
}

func TestHistoryScreen_Error(t *testing.T) {
	s := New(stubReader{err: errors.New("boom")})
	load(t, s)
	if !strings.Contains(s.View(100, 30), "boom") {
		t.Error("expected error in view")
	}
}

func TestHistoryScreen_Esc(t *testing.T) {
	s := New(stubReader{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
