package questions

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/mode"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/question"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
)

var _ session.QuestionSource = (*Source)(nil)

// Source loads subjects once, caches them and assembles batches.
// It is safe for concurrent use.
type Source struct {
	loader Loader
	logger *log.Logger
	sf     singleflight.Group

	mu    sync.RWMutex
	cache map[string][]question.Question

	rngMu sync.Mutex
	rng   *rand.Rand
}

// Option configures a Source.
type Option func(*Source)

// WithRand sets the random source used for shuffling and picking.
func WithRand(r *rand.Rand) Option {
	return func(s *Source) { s.rng = r }
}

// WithLogger sets the logger for load events.
func WithLogger(l *log.Logger) Option {
	return func(s *Source) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSource creates a Source reading subjects through loader.
func NewSource(loader Loader, opts ...Option) *Source {
	s := &Source{
		loader: loader,
		logger: log.New(io.Discard, "", 0),
		cache:  make(map[string][]question.Question),
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// subject returns the cached questions of one subject, loading them on
// first use. Concurrent first uses share one load.
func (s *Source) subject(ctx context.Context, name string) ([]question.Question, error) {
	s.mu.RLock()
	qs, ok := s.cache[name]
	s.mu.RUnlock()
	if ok {
		return qs, nil
	}

	v, err, _ := s.sf.Do(name, func() (any, error) {
		s.mu.RLock()
		qs, ok := s.cache[name]
		s.mu.RUnlock()
		if ok {
			return qs, nil
		}

		qs, err := s.loader.Load(ctx, name)
		if err != nil {
			return nil, &LoadError{Subject: name, Err: err}
		}
		s.logger.Printf("loaded %d questions for %s", len(qs), name)

		s.mu.Lock()
		s.cache[name] = qs
		s.mu.Unlock()
		return qs, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]question.Question), nil
}

// pool loads every subject of cfg in parallel and concatenates them in
// config order. Any failure aborts the whole pool.
func (s *Source) pool(ctx context.Context, subjects []string) ([]question.Question, error) {
	subjects = dedupe(subjects)
	parts := make([][]question.Question, len(subjects))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range subjects {
		g.Go(func() error {
			qs, err := s.subject(gctx, name)
			if err != nil {
				return err
			}
			parts[i] = qs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Printf("warning: %v", err)
		return nil, err
	}

	var all []question.Question
	for _, p := range parts {
		all = append(all, p...)
	}
	return all, nil
}

func filter(all []question.Question, policy mode.DifficultyPolicy) []question.Question {
	if policy.Kind != mode.PolicyFixed {
		return all
	}
	var out []question.Question
	for _, q := range all {
		if q.Difficulty == policy.Level {
			out = append(out, q)
		}
	}
	return out
}

// GetQuestions builds the initial batch for a session: the filtered pool,
// shuffled unless the mode is Fixed and Ordered, truncated to the mode's
// question count. Each question is a private copy with shuffled options.
func (s *Source) GetQuestions(ctx context.Context, cfg mode.Config) ([]*question.Question, error) {
	all, err := s.pool(ctx, cfg.Subjects)
	if err != nil {
		return nil, err
	}
	candidates := filter(all, cfg.Difficulty)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("mode %s (%s): %w", cfg.ID, cfg.Difficulty, ErrNoQuestionsAvailable)
	}

	batch := make([]*question.Question, len(candidates))
	for i := range candidates {
		q := candidates[i].Clone()
		batch[i] = &q
	}
	if !(cfg.Difficulty.Kind == mode.PolicyFixed && cfg.Ordered) {
		s.shuffle(len(batch), func(i, j int) { batch[i], batch[j] = batch[j], batch[i] })
	}
	if len(batch) > cfg.QuestionsCount {
		batch = batch[:cfg.QuestionsCount]
	}
	for _, q := range batch {
		s.ShuffleOptions(q)
	}
	return batch, nil
}

// Available returns how many questions a mode could draw from.
func (s *Source) Available(ctx context.Context, cfg mode.Config) (int, error) {
	all, err := s.pool(ctx, cfg.Subjects)
	if err != nil {
		return 0, err
	}
	return len(filter(all, cfg.Difficulty)), nil
}

// AdaptiveReplacement picks the next question for an Auto session from the
// subject of the last answer. The target level is one step up after a
// correct answer and one step down after a wrong one. When no unanswered
// question sits at the target level any unanswered question of the subject
// is used instead.
//
// The returned slice is new: batch[:index] unchanged, then the pick, then
// the rest of batch without the pick and without anything already answered,
// so no question is asked twice. Without candidates only the answered
// entries are dropped. batch itself is never modified.
func (s *Source) AdaptiveReplacement(batch []*question.Question, index int, rec *session.Record) []*question.Question {
	if rec == nil {
		return batch
	}
	last, ok := rec.LastAnswer()
	if !ok {
		return batch
	}
	target := last.Question.Difficulty.Next(last.IsCorrect)

	s.mu.RLock()
	subjectPool := s.cache[last.Question.Subject]
	s.mu.RUnlock()

	answered := rec.AnsweredKeys()
	var atTarget, remaining []question.Question
	for _, q := range subjectPool {
		if answered[q.Key()] {
			continue
		}
		remaining = append(remaining, q)
		if q.Difficulty == target {
			atTarget = append(atTarget, q)
		}
	}

	candidates := atTarget
	if len(candidates) == 0 {
		candidates = remaining
	}

	index = max(0, min(index, len(batch)))
	out := make([]*question.Question, 0, len(batch)+1)
	out = append(out, batch[:index]...)

	skip := answered
	if len(candidates) > 0 {
		pick := candidates[s.intN(len(candidates))].Clone()
		s.ShuffleOptions(&pick)
		out = append(out, &pick)

		skip = make(map[string]bool, len(answered)+1)
		for k := range answered {
			skip[k] = true
		}
		skip[pick.Key()] = true
	}
	for _, q := range batch[index:] {
		if !skip[q.Key()] {
			out = append(out, q)
		}
	}
	return out
}

// ShuffleOptions randomizes the option order of q in place. The correct
// answer is matched by text, so it stays correct.
func (s *Source) ShuffleOptions(q *question.Question) {
	s.shuffle(len(q.Options), func(i, j int) { q.Options[i], q.Options[j] = q.Options[j], q.Options[i] })
}

func (s *Source) shuffle(n int, swap func(i, j int)) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	s.rng.Shuffle(n, swap)
}

func (s *Source) intN(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.IntN(n)
}

func dedupe(subjects []string) []string {
	seen := make(map[string]bool, len(subjects))
	out := make([]string, 0, len(subjects))
	for _, s := range subjects {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
