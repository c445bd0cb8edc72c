package console

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/mode"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/question"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
)

type staticSource struct {
	n int
}

func (s staticSource) GetQuestions(ctx context.Context, cfg mode.Config) ([]*question.Question, error) {
	out := make([]*question.Question, s.n)
	for i := range out {
		out[i] = &question.Question{
			ID:            fmt.Sprintf("q%d", i),
			Subject:       "Mathematics",
			Topic:         "Arithmetic",
			Difficulty:    question.Medium,
			Prompt:        fmt.Sprintf("What is %d + 1?", i),
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: "b",
			Explanation:   "It is b.",
		}
	}
	return out, nil
}

func (staticSource) AdaptiveReplacement(batch []*question.Question, index int, rec *session.Record) []*question.Question {
	return batch
}

type memPersister struct {
	mu   sync.Mutex
	recs []*session.Record
}

func (p *memPersister) Append(ctx context.Context, rec *session.Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.recs = append(p.recs, rec)
	return nil
}

func (p *memPersister) saved() []*session.Record {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.recs
}

func testModes() mode.Table {
	t := mode.Table{}
	t.Put(mode.Config{ID: "PRACTICE", Name: "Practice", QuestionsCount: 3, Difficulty: mode.Mixed, Subjects: []string{"Mathematics"}})
	t.Put(mode.Config{ID: "SUDDEN_DEATH", Name: "Sudden Death", QuestionsCount: 3, TimeLimitSeconds: 5,
		Difficulty: mode.Mixed, EndsOnWrongAnswer: true, Subjects: []string{"Mathematics"}})
	return t
}

func play(t *testing.T, in io.Reader, n int, modeID string, after func(time.Duration) <-chan time.Time) (*session.Controller, *memPersister, string) {
	t.Helper()
	var out bytes.Buffer
	surface := New(in, &out)
	if after != nil {
		surface.after = after
	}
	pers := &memPersister{}
	ctrl := session.New(staticSource{n: n}, surface, pers, session.Options{
		Modes: testModes(),
		NewID: func() string { return "console-1" },
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, surface.Run(ctx, ctrl, modeID))
	return ctrl, pers, out.String()
}

func TestRun_PlaysUntimedSession(t *testing.T) {
	ctrl, pers, out := play(t, strings.NewReader("2\n\nb\n\na\n"), 3, "practice", nil)

	assert.Equal(t, session.StateCompleted, ctrl.State())
	require.Len(t, pers.saved(), 1)
	rec := pers.saved()[0]
	assert.Equal(t, 3, rec.TotalQuestions)
	assert.Equal(t, 2, rec.CorrectAnswers)
	assert.Equal(t, 0, rec.Answers[2].SelectedIndex)

	assert.Contains(t, out, "Question 1/3")
	assert.Contains(t, out, "Correct!")
	assert.Contains(t, out, "Incorrect. The answer was: b")
	assert.Contains(t, out, "Explanation: It is b.")
	assert.Contains(t, out, "Session console-1 (PRACTICE)")
	assert.NotContains(t, out, "(5s)", "untimed modes show no countdown")
}

func TestRun_RepromptsInvalidInput(t *testing.T) {
	_, pers, out := play(t, strings.NewReader("9\nx\n2\n"), 1, "practice", nil)

	assert.Equal(t, 2, strings.Count(out, "Enter a number from 1 to 4"))
	require.Len(t, pers.saved(), 1)
	assert.Equal(t, 1, pers.saved()[0].CorrectAnswers)
}

func TestRun_TimeoutEndsSuddenDeath(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { w.Close() })
	expired := func(time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		ch <- time.Time{}
		return ch
	}

	_, pers, out := play(t, r, 3, "sudden death", expired)

	require.Len(t, pers.saved(), 1)
	rec := pers.saved()[0]
	require.Len(t, rec.Answers, 1)
	assert.True(t, rec.Answers[0].IsTimeout)
	assert.Equal(t, -1, rec.Answers[0].SelectedIndex)
	assert.Equal(t, 5.0, rec.Answers[0].ResponseTime)
	assert.Contains(t, out, "Time's up! The answer was: b")
	assert.Contains(t, out, "Game over.")
}

func TestRun_EndOfInputFinishesEarly(t *testing.T) {
	ctrl, pers, out := play(t, strings.NewReader("2\n"), 3, "practice", nil)

	assert.Equal(t, session.StateCompleted, ctrl.State())
	require.Len(t, pers.saved(), 1)
	assert.Len(t, pers.saved()[0].Answers, 1)
	assert.Contains(t, out, "Ending the session early.")
}

func TestRun_QuitCommand(t *testing.T) {
	_, pers, _ := play(t, strings.NewReader("q\n"), 3, "practice", nil)
	require.Len(t, pers.saved(), 1)
	assert.Empty(t, pers.saved()[0].Answers)
}

func TestRun_UnknownMode(t *testing.T) {
	surface := New(strings.NewReader(""), io.Discard)
	pers := &memPersister{}
	ctrl := session.New(staticSource{n: 1}, surface, pers, session.Options{Modes: testModes()})

	err := surface.Run(context.Background(), ctrl, "nope")
	require.ErrorIs(t, err, mode.ErrConfigNotFound)
	assert.Equal(t, session.StateError, ctrl.State())
	assert.Empty(t, pers.saved())
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 0, true},
		{"4", 3, true},
		{"5", 0, false},
		{"0", 0, false},
		{"c", 2, true},
		{"D", 3, true},
		{"e", 0, false},
		{"", 0, false},
		{"ab", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseChoice(tt.in, 4)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseChoice(%q) = %d, %v, want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestWriteStats_Empty(t *testing.T) {
	var buf bytes.Buffer
	WriteStats(&buf, session.Aggregate(nil))
	assert.Equal(t, "No sessions played yet.\n", buf.String())
}
