package session

import (
	"context"
	"strconv"
	"sync"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/mode"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/question"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/router"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/screen"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/screens/summary"
	sess "github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/ui/components"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/ui/layout"
)

// Deps are the collaborators a game needs. Each screen builds its own
// controller from them.
type Deps struct {
	Source  sess.QuestionSource
	Store   sess.Persister
	Options sess.Options
}

type keyMap struct {
	Quit     key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Continue key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Quit")),
	Confirm:  key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("Y", "End game")),
	Cancel:   key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("N", "Keep going")),
	Continue: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Next")),
}

type frame struct {
	q      *question.Question
	number int
	total  int
}

// presenter receives questions from the controller. Start runs inside a
// tea.Cmd, so the latest frame is parked here until Update picks it up.
type presenter struct {
	mu      sync.Mutex
	pending *frame
}

func (p *presenter) Render(q *question.Question, number, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = &frame{q: q, number: number, total: total}
}

func (p *presenter) take() (frame, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending == nil {
		return frame{}, false
	}
	f := *p.pending
	p.pending = nil
	return f, true
}

// SessionScreen implements screen.Screen for a game in progress.
type SessionScreen struct {
	ctrl   *sess.Controller
	modeID string
	frames *presenter
	now    func() time.Time

	cfg     mode.Config
	current frame
	mc      components.MultiChoice

	remaining int // seconds left on a timed question
	token     int
	shownAt   time.Time

	showingFeedback    bool
	showingQuitConfirm bool
	errMsg             string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)
var _ screen.BackHandler = (*SessionScreen)(nil)

// New creates a SessionScreen that plays modeID.
func New(deps Deps, modeID string) *SessionScreen {
	p := &presenter{}
	now := deps.Options.Now
	if now == nil {
		now = time.Now
	}
	return &SessionScreen{
		ctrl:   sess.New(deps.Source, p, deps.Store, deps.Options),
		modeID: modeID,
		frames: p,
		now:    now,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	ctrl, modeID := s.ctrl, s.modeID
	return func() tea.Msg {
		return startedMsg{Err: ctrl.Start(context.Background(), modeID)}
	}
}

func (s *SessionScreen) Title() string {
	if s.cfg.Name != "" {
		return s.cfg.Name
	}
	return "Game"
}

func (s *SessionScreen) HandlesBack() bool { return true }

func (s *SessionScreen) Status() *layout.Status {
	rec := s.ctrl.Record()
	if rec == nil {
		return nil
	}
	return &layout.Status{Score: rec.Score, Streak: s.ctrl.Streak()}
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End game"},
			{Key: "N", Description: "Keep going"},
		}
	case s.showingFeedback:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	case s.current.q == nil:
		return nil
	}
	return []layout.KeyHint{
		{Key: answerKeys(len(s.current.q.Options)), Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Select"},
		{Key: "Esc", Description: "Quit"},
	}
}

// answerKeys labels the number keys that pick an option.
func answerKeys(options int) string {
	if options <= 1 {
		return "1"
	}
	return "1-" + strconv.Itoa(options)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.cfg = s.ctrl.Config()
		return s, s.showNext()

	case timerTickMsg:
		return s, s.handleTick(msg)

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

// showNext displays the frame the controller rendered last and starts
// its countdown.
func (s *SessionScreen) showNext() tea.Cmd {
	f, ok := s.frames.take()
	if !ok {
		return nil
	}
	s.current = f
	s.mc = components.NewMultiChoice(f.q.Prompt, f.q.Options, f.q.CorrectIndex())
	s.token++
	s.shownAt = s.now()
	s.remaining = s.cfg.TimeLimitSeconds
	if !s.cfg.Timed() {
		return nil
	}
	return tickCmd(s.token)
}

func (s *SessionScreen) handleTick(msg timerTickMsg) tea.Cmd {
	if msg.token != s.token || s.mc.Submitted {
		return nil
	}
	s.remaining--
	if s.remaining > 0 {
		return tickCmd(s.token)
	}
	s.showingQuitConfirm = false
	s.mc = s.mc.Expire()
	return s.submit()
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if s.errMsg != "" {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showingQuitConfirm {
		switch {
		case key.Matches(msg, keys.Confirm):
			s.showingQuitConfirm = false
			s.ctrl.Finish()
			return s.finished()
		case key.Matches(msg, keys.Cancel):
			s.showingQuitConfirm = false
		}
		return nil
	}

	if s.showingFeedback {
		if key.Matches(msg, keys.Continue) {
			return s.next()
		}
		return nil
	}

	if key.Matches(msg, keys.Quit) {
		if s.current.q == nil {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.showingQuitConfirm = true
		return nil
	}

	if s.current.q == nil {
		return nil
	}
	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	if s.mc.Submitted {
		return tea.Batch(cmd, s.submit())
	}
	return cmd
}

// submit sends the single answer for the open question.
func (s *SessionScreen) submit() tea.Cmd {
	s.token++ // stop the countdown
	s.ctrl.Dispatch(sess.AnswerSubmitted{
		SelectedIndex: s.mc.ChosenIndex,
		ResponseTime:  s.now().Sub(s.shownAt).Seconds(),
		TimedOut:      s.mc.TimedOut,
	})
	s.showingFeedback = true
	return nil
}

func (s *SessionScreen) next() tea.Cmd {
	s.showingFeedback = false
	if !s.ctrl.State().Terminal() {
		s.ctrl.Dispatch(sess.ReadyForNext{})
	}
	if s.ctrl.State().Terminal() {
		return s.finished()
	}
	return s.showNext()
}

// finished swaps this screen for the results of the completed game.
func (s *SessionScreen) finished() tea.Cmd {
	rec := s.ctrl.Record()
	if rec == nil {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	results := summary.New(sess.BuildSummary(rec), s.ctrl.PersistErr())
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: results} }
}

// tickCmd returns a 1-second tick command.
func tickCmd(token int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{token: token}
	})
}
