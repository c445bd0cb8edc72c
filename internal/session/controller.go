package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/mode"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/question"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/scoring"
)

var (
	// ErrPersistenceWrite wraps a failure to append a completed record.
	ErrPersistenceWrite = errors.New("persist session record")

	// ErrAlreadyStarted is returned by Start on a controller that has left Idle.
	ErrAlreadyStarted = errors.New("session already started")

	// ErrNoQuestionsAvailable means there was nothing to ask: the pool was
	// empty after filtering or the source returned an empty batch.
	ErrNoQuestionsAvailable = errors.New("no questions available")
)

// State is the lifecycle state of a session.
type State int

const (
	StateIdle State = iota
	StateLoading
	StatePlaying
	StateCompleted
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StateCompleted:
		return "completed"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateError
}

// Presenter displays one question at a time. After Render the surface must
// deliver exactly one AnswerSubmitted and, once feedback is shown, ReadyForNext.
type Presenter interface {
	Render(q *question.Question, number, total int)
}

// QuestionSource supplies the initial batch and adaptive replacements.
type QuestionSource interface {
	GetQuestions(ctx context.Context, cfg mode.Config) ([]*question.Question, error)
	AdaptiveReplacement(batch []*question.Question, index int, rec *Record) []*question.Question
}

// Persister stores completed records.
type Persister interface {
	Append(ctx context.Context, rec *Record) error
}

// Options configures a Controller. Zero values select the defaults.
type Options struct {
	Modes   mode.Table
	Scoring *scoring.Engine
	Logger  *log.Logger

	// OnComplete receives the session id once the record has been written.
	OnComplete func(id string)

	Now   func() time.Time
	NewID func() string
}

// Controller runs a single game session. A finished controller cannot be
// restarted; each game gets a new one.
type Controller struct {
	source    QuestionSource
	presenter Presenter
	persister Persister

	modes      mode.Table
	engine     *scoring.Engine
	logger     *log.Logger
	onComplete func(id string)
	now        func() time.Time
	newID      func() string

	mu         sync.Mutex
	state      State
	err        error
	persistErr error
	cfg        mode.Config
	batch      []*question.Question
	index      int
	answered   bool
	streak     int
	record     *Record

	done     chan struct{}
	doneOnce sync.Once
}

// New creates an idle controller. persister may be nil, in which case
// completed records are not written anywhere.
func New(source QuestionSource, presenter Presenter, persister Persister, opts Options) *Controller {
	c := &Controller{
		source:     source,
		presenter:  presenter,
		persister:  persister,
		modes:      opts.Modes,
		engine:     opts.Scoring,
		logger:     opts.Logger,
		onComplete: opts.OnComplete,
		now:        opts.Now,
		newID:      opts.NewID,
		done:       make(chan struct{}),
	}
	if c.modes == nil {
		c.modes = mode.Defaults()
	}
	if c.engine == nil {
		c.engine = scoring.New(scoring.DefaultConfig())
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard, "", 0)
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}
	return c
}

// Start resolves the mode, loads the batch and renders the first question.
// Any failure moves the controller to StateError without creating a record.
func (c *Controller) Start(ctx context.Context, modeID string) error {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	cfg, err := c.modes.Lookup(modeID)
	if err != nil {
		c.failLocked(err)
		c.mu.Unlock()
		return err
	}
	c.cfg = cfg
	c.state = StateLoading
	c.mu.Unlock()

	batch, err := c.source.GetQuestions(ctx, cfg)
	if err == nil && len(batch) == 0 {
		err = ErrNoQuestionsAvailable
	}

	c.mu.Lock()
	if err != nil {
		err = fmt.Errorf("load questions for %s: %w", cfg.ID, err)
		c.failLocked(err)
		c.mu.Unlock()
		return err
	}
	c.batch = batch
	c.index = 0
	c.record = NewRecord(c.newID(), cfg.ID, c.now())
	c.state = StatePlaying
	q, number, total := c.currentLocked()
	c.record.DifficultyHistory = append(c.record.DifficultyHistory, q.Difficulty)
	id := c.record.ID
	c.mu.Unlock()

	c.logger.Printf("session %s started: mode=%s questions=%d", id, cfg.ID, total)
	c.presenter.Render(q, number, total)
	return nil
}

// HandleAnswer scores the answer to the current question. It returns false
// when the message is ignored: the session is not playing or the current
// question already has an answer.
func (c *Controller) HandleAnswer(msg AnswerSubmitted) (*AnswerEvent, bool) {
	c.mu.Lock()
	if c.state != StatePlaying || c.answered || c.index >= len(c.batch) {
		c.mu.Unlock()
		return nil, false
	}

	q := c.batch[c.index]
	limit := float64(c.cfg.TimeLimitSeconds)
	ev := AnswerEvent{
		Question:      q.Clone(),
		SelectedIndex: msg.SelectedIndex,
		ResponseTime:  msg.ResponseTime,
		TimeLimit:     limit,
	}
	if msg.TimedOut {
		ev.SelectedIndex = -1
		ev.IsTimeout = true
		ev.ResponseTime = limit
	} else {
		ev.IsCorrect = q.IsCorrect(msg.SelectedIndex)
	}

	ev.PointsEarned = c.engine.Score(scoring.Input{
		Correct:          ev.IsCorrect,
		Difficulty:       q.Difficulty,
		ResponseSeconds:  ev.ResponseTime,
		TimeLimitSeconds: limit,
	}, scoring.StreakContext{CurrentStreak: c.streak})

	if ev.IsCorrect {
		c.streak++
		c.record.Score += ev.PointsEarned
	} else {
		c.streak = 0
	}
	c.record.BestStreak = max(c.record.BestStreak, c.streak)
	c.record.record(ev)
	c.answered = true

	if !ev.IsCorrect && c.cfg.EndsOnWrongAnswer {
		snapshot := c.completeLocked()
		c.mu.Unlock()
		c.finish(snapshot)
		return &ev, true
	}
	c.mu.Unlock()
	return &ev, true
}

// Advance moves past an answered question. With the Auto policy the source
// may splice an adaptive replacement in at the new position first, as long
// as that position is still inside the batch. The session completes once
// the index reaches the end of the batch.
func (c *Controller) Advance() bool {
	c.mu.Lock()
	if c.state != StatePlaying || !c.answered {
		c.mu.Unlock()
		return false
	}
	c.index++
	c.answered = false

	if c.cfg.Difficulty.Kind == mode.PolicyAuto && c.index < len(c.batch) {
		c.batch = c.source.AdaptiveReplacement(c.batch, c.index, c.record)
		c.batch = dropAnswered(c.batch, c.index, c.record.AnsweredKeys())
	}

	if c.index >= len(c.batch) {
		snapshot := c.completeLocked()
		c.mu.Unlock()
		c.finish(snapshot)
		return true
	}

	q, number, total := c.currentLocked()
	c.record.DifficultyHistory = append(c.record.DifficultyHistory, q.Difficulty)
	c.mu.Unlock()

	c.presenter.Render(q, number, total)
	return true
}

// dropAnswered removes questions from batch[index:] that were already
// answered. It returns batch itself when there is nothing to drop.
func dropAnswered(batch []*question.Question, index int, answered map[string]bool) []*question.Question {
	for i := index; i < len(batch); i++ {
		if !answered[batch[i].Key()] {
			continue
		}
		out := append([]*question.Question(nil), batch[:i]...)
		for _, q := range batch[i+1:] {
			if !answered[q.Key()] {
				out = append(out, q)
			}
		}
		return out
	}
	return batch
}

// Finish ends a playing session early with the answers given so far.
func (c *Controller) Finish() bool {
	c.mu.Lock()
	if c.state != StatePlaying {
		c.mu.Unlock()
		return false
	}
	snapshot := c.completeLocked()
	c.mu.Unlock()
	c.finish(snapshot)
	return true
}

// completeLocked finalizes the record and returns the copy to persist.
// c.mu must be held.
func (c *Controller) completeLocked() *Record {
	c.state = StateCompleted
	c.record.finalize(c.now())
	return c.record.Clone()
}

// finish writes the completed record and notifies the completion callback.
// A write failure is retained but does not suppress the notification.
func (c *Controller) finish(rec *Record) {
	if c.persister != nil {
		if err := c.persister.Append(context.Background(), rec); err != nil {
			err = fmt.Errorf("%w %s: %w", ErrPersistenceWrite, rec.ID, err)
			c.logger.Printf("warning: %v", err)
			c.mu.Lock()
			c.persistErr = err
			c.mu.Unlock()
		}
	}
	c.logger.Printf("session %s completed: score=%d correct=%d/%d",
		rec.ID, rec.Score, rec.CorrectAnswers, rec.TotalQuestions)
	c.doneOnce.Do(func() { close(c.done) })
	if c.onComplete != nil {
		c.onComplete(rec.ID)
	}
}

func (c *Controller) failLocked(err error) {
	c.state = StateError
	c.err = err
	c.logger.Printf("session failed: %v", err)
	c.doneOnce.Do(func() { close(c.done) })
}

func (c *Controller) currentLocked() (*question.Question, int, int) {
	if c.index < 0 || c.index >= len(c.batch) {
		return nil, 0, len(c.batch)
	}
	return c.batch[c.index], c.index + 1, len(c.batch)
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the reason the session entered StateError.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// PersistErr returns the completion write failure, if any.
func (c *Controller) PersistErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.persistErr
}

// Record returns a deep copy of the session record, or nil before the batch loads.
func (c *Controller) Record() *Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.record.Clone()
}

// Streak returns the current run of consecutive correct answers.
func (c *Controller) Streak() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.streak
}

// Config returns the resolved mode configuration.
func (c *Controller) Config() mode.Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// Index returns the position of the current question in the batch.
func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Current returns the question on screen with its 1-based number and the
// batch length. q is nil when no question is active.
func (c *Controller) Current() (q *question.Question, number, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StatePlaying {
		return nil, 0, len(c.batch)
	}
	return c.currentLocked()
}

// Answered reports whether the current question already has an answer.
func (c *Controller) Answered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.answered
}

// Done is closed when the session reaches a terminal state.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}
