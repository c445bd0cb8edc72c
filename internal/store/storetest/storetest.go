// Package storetest holds fixtures and contract tests shared by the
// SessionRepo implementations.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/question"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/store"
)

// Record builds a completed record with two answers across two subjects.
func Record(id string, start time.Time) *session.Record {
	rec := session.NewRecord(id, "RAPID_FIRE", start)
	end := start.Add(95 * time.Second)
	rec.EndTime = &end

	rec.Answers = []session.AnswerEvent{
		{
			Question: question.Question{
				ID: "math-003", Subject: "Mathematics", Topic: "Algebra", Difficulty: question.Easy,
				Prompt: "If 3x + 5 = 20, what is x?", Options: []string{"5", "3", "6", "4"},
				CorrectAnswer: "5", Explanation: "3x = 15, so x = 5.",
			},
			SelectedIndex: 0, IsCorrect: true, ResponseTime: 4.25, TimeLimit: 30, PointsEarned: 15,
		},
		{
			Question: question.Question{
				ID: "va-007", Subject: "Verbal Ability", Topic: "Antonyms", Difficulty: question.Hard,
				Prompt: "Choose the antonym of EPHEMERAL.", Options: []string{"Brief", "Fleeting", "Permanent", "Transient"},
				CorrectAnswer: "Permanent",
			},
			SelectedIndex: -1, IsTimeout: true, ResponseTime: 30, TimeLimit: 30,
		},
	}
	rec.Score = 15
	rec.BestStreak = 1
	rec.SubjectBreakdown = map[string]*session.SubjectStats{
		"Mathematics": {Correct: 1, Total: 1, Accuracy: 100, Points: 15, Topics: map[string]*session.TopicStats{
			"Algebra": {Correct: 1, Total: 1, Accuracy: 100},
		}},
		"Verbal Ability": {Correct: 0, Total: 1, Accuracy: 0, Points: 0, Topics: map[string]*session.TopicStats{
			"Antonyms": {Correct: 0, Total: 1, Accuracy: 0},
		}},
	}
	rec.DifficultyHistory = []question.Difficulty{question.Easy, question.Hard}
	rec.TotalQuestions = 2
	rec.CorrectAnswers = 1
	rec.Accuracy = 50
	return rec
}

// Suite describes a SessionRepo implementation under test.
type Suite struct {
	// Open returns an empty repository.
	Open func(t *testing.T) store.SessionRepo

	// Corrupt appends an undecodable entry to the repository returned by
	// the most recent Open. Nil skips the corruption test.
	Corrupt func(t *testing.T)
}

// Run exercises the SessionRepo contract.
func Run(t *testing.T, s Suite) {
	ctx := context.Background()
	start := time.Date(2026, 4, 2, 18, 30, 0, 0, time.UTC)

	t.Run("empty", func(t *testing.T) {
		repo := s.Open(t)
		recs, err := repo.ReadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("round trip", func(t *testing.T) {
		repo := s.Open(t)
		want := Record("0d7c5c1e-5a55-4d59-9b2f-5f0a6f0d8a11", start)
		require.NoError(t, repo.Append(ctx, want))

		recs, err := repo.ReadAll(ctx)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, want, recs[0])

		got, err := repo.Get(ctx, want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("append order", func(t *testing.T) {
		repo := s.Open(t)
		ids := []string{"c", "a", "b"}
		for i, id := range ids {
			require.NoError(t, repo.Append(ctx, Record(id, start.Add(time.Duration(i)*time.Hour))))
		}
		recs, err := repo.ReadAll(ctx)
		require.NoError(t, err)
		var got []string
		for _, r := range recs {
			got = append(got, r.ID)
		}
		assert.Equal(t, ids, got)
	})

	t.Run("get missing", func(t *testing.T) {
		repo := s.Open(t)
		_, err := repo.Get(ctx, "nope")
		assert.True(t, errors.Is(err, store.ErrNotFound), "err = %v", err)
	})

	t.Run("clear", func(t *testing.T) {
		repo := s.Open(t)
		require.NoError(t, repo.Append(ctx, Record("x", start)))
		require.NoError(t, repo.Clear(ctx))
		recs, err := repo.ReadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("append rejects a repeated session id", func(t *testing.T) {
		repo := s.Open(t)
		first := Record("same-id", start)
		require.NoError(t, repo.Append(ctx, first))

		again := Record("same-id", start.Add(time.Hour))
		again.Score = 999
		err := repo.Append(ctx, again)
		assert.True(t, errors.Is(err, store.ErrDuplicate), "err = %v", err)

		recs, err := repo.ReadAll(ctx)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, first, recs[0])

		got, err := repo.Get(ctx, "same-id")
		require.NoError(t, err)
		assert.Equal(t, 15, got.Score)
	})

	t.Run("append rejects record without id", func(t *testing.T) {
		repo := s.Open(t)
		assert.Error(t, repo.Append(ctx, Record("", start)))
	})

	if s.Corrupt != nil {
		t.Run("corrupted entries are skipped", func(t *testing.T) {
			repo := s.Open(t)
			require.NoError(t, repo.Append(ctx, Record("before", start)))
			s.Corrupt(t)
			require.NoError(t, repo.Append(ctx, Record("after", start)))

			recs, err := repo.ReadAll(ctx)
			require.NoError(t, err)
			require.Len(t, recs, 2)
			assert.Equal(t, "before", recs[0].ID)
			assert.Equal(t, "after", recs[1].ID)
		})
	}
}
