// Package console plays a session on a plain line-based terminal.
//
// Each question is printed with numbered options and the player types a
// number (or letter) followed by Enter. Timed modes race the input line
// against the countdown; whichever arrives first is the only answer sent.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/question"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
)

type frame struct {
	q      *question.Question
	number int
	total  int
}

// Surface implements session.Presenter for line-based input and output.
type Surface struct {
	in  io.Reader
	out io.Writer

	// after and now are replaceable for tests.
	after func(time.Duration) <-chan time.Time
	now   func() time.Time

	frames chan frame
}

var _ session.Presenter = (*Surface)(nil)

// New creates a Surface reading answers from in and printing to out.
func New(in io.Reader, out io.Writer) *Surface {
	return &Surface{
		in:     in,
		out:    out,
		after:  time.After,
		now:    time.Now,
		frames: make(chan frame, 1),
	}
}

// Render queues a question for display. It is called by the controller.
func (s *Surface) Render(q *question.Question, number, total int) {
	s.frames <- frame{q: q, number: number, total: total}
}

// Run starts ctrl on modeID and plays until the session ends, the input
// closes or ctx is cancelled. Closing the input or typing "q" finishes the
// session early with the answers given so far.
func (s *Surface) Run(ctx context.Context, ctrl *session.Controller, modeID string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := readLines(s.in)

	msgs := make(chan session.Message)
	served := make(chan error, 1)
	go func() { served <- ctrl.Serve(ctx, msgs) }()

	if err := ctrl.Start(ctx, modeID); err != nil {
		return err
	}
	cfg := ctrl.Config()
	fmt.Fprintf(s.out, "%s: %s\n", cfg.Name, describe(cfg.QuestionsCount, cfg.TimeLimitSeconds, cfg.EndsOnWrongAnswer))

	send := func(m session.Message) bool {
		select {
		case msgs <- m:
			return true
		case <-ctrl.Done():
			return false
		case <-ctx.Done():
			return false
		}
	}

	for {
		var f frame
		select {
		case f = <-s.frames:
		case <-ctrl.Done():
			return s.finished(ctrl, served)
		case <-ctx.Done():
			return ctx.Err()
		}

		s.printQuestion(f, ctrl)

		msg, quit := s.readAnswer(ctx, f.q, cfg.TimeLimitSeconds, lines)
		if quit {
			fmt.Fprintln(s.out, "\nEnding the session early.")
			ctrl.Finish()
			return s.finished(ctrl, served)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !send(msg) {
			continue
		}
		s.printFeedback(f.q, msg)

		correct := !msg.TimedOut && f.q.IsCorrect(msg.SelectedIndex)
		if !correct && cfg.EndsOnWrongAnswer {
			fmt.Fprintln(s.out, "Game over.")
			continue
		}

		if f.number < f.total {
			fmt.Fprint(s.out, "Press Enter for the next question.")
			select {
			case <-lines:
			case <-ctx.Done():
				return ctx.Err()
			}
			fmt.Fprintln(s.out)
		}
		send(session.ReadyForNext{})
	}
}

func (s *Surface) finished(ctrl *session.Controller, served <-chan error) error {
	err := <-served
	if rec := ctrl.Record(); rec != nil {
		fmt.Fprintln(s.out)
		WriteSummary(s.out, session.BuildSummary(rec))
	}
	return err
}

func describe(count, limit int, endsOnWrong bool) string {
	parts := []string{fmt.Sprintf("up to %d questions", count)}
	if limit > 0 {
		parts = append(parts, fmt.Sprintf("%ds per question", limit))
	} else {
		parts = append(parts, "untimed")
	}
	if endsOnWrong {
		parts = append(parts, "one wrong answer ends the game")
	}
	return strings.Join(parts, ", ")
}

func (s *Surface) printQuestion(f frame, ctrl *session.Controller) {
	var score int
	if rec := ctrl.Record(); rec != nil {
		score = rec.Score
	}
	fmt.Fprintf(s.out, "\n── Question %d/%d ── %s · %s · score %d · streak %d\n",
		f.number, f.total, f.q.Subject, f.q.Difficulty, score, ctrl.Streak())
	fmt.Fprintln(s.out, f.q.Prompt)
	for i, o := range f.q.Options {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, o)
	}
}

// readAnswer waits for a valid choice or the countdown. quit is true when
// the player asked to stop or the input closed.
func (s *Surface) readAnswer(ctx context.Context, q *question.Question, limit int, lines <-chan string) (msg session.AnswerSubmitted, quit bool) {
	var timeout <-chan time.Time
	if limit > 0 {
		timeout = s.after(time.Duration(limit) * time.Second)
		fmt.Fprintf(s.out, "\nYour answer (%ds): ", limit)
	} else {
		fmt.Fprint(s.out, "\nYour answer: ")
	}
	start := s.now()

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return msg, true
			}
			line = strings.TrimSpace(line)
			if strings.EqualFold(line, "q") || strings.EqualFold(line, "quit") {
				return msg, true
			}
			idx, ok := parseChoice(line, len(q.Options))
			if !ok {
				fmt.Fprintf(s.out, "Enter a number from 1 to %d (or q to quit): ", len(q.Options))
				continue
			}
			return session.AnswerSubmitted{
				SelectedIndex: idx,
				ResponseTime:  s.now().Sub(start).Seconds(),
			}, false
		case <-timeout:
			fmt.Fprintln(s.out)
			return session.AnswerSubmitted{SelectedIndex: -1, TimedOut: true}, false
		case <-ctx.Done():
			return msg, false
		}
	}
}

func (s *Surface) printFeedback(q *question.Question, msg session.AnswerSubmitted) {
	switch {
	case msg.TimedOut:
		fmt.Fprintf(s.out, "Time's up! The answer was: %s\n", q.CorrectAnswer)
	case q.IsCorrect(msg.SelectedIndex):
		fmt.Fprintln(s.out, "Correct!")
	default:
		fmt.Fprintf(s.out, "Incorrect. The answer was: %s\n", q.CorrectAnswer)
	}
	if q.Explanation != "" {
		fmt.Fprintf(s.out, "Explanation: %s\n", q.Explanation)
	}
}

// parseChoice accepts a 1-based number or a letter (a, b, ...).
func parseChoice(s string, n int) (int, bool) {
	if s == "" {
		return 0, false
	}
	if i, err := strconv.Atoi(s); err == nil {
		if i >= 1 && i <= n {
			return i - 1, true
		}
		return 0, false
	}
	if len(s) == 1 {
		c := strings.ToLower(s)[0]
		if c >= 'a' && int(c-'a') < n {
			return int(c - 'a'), true
		}
	}
	return 0, false
}

// readLines feeds input lines into a channel that is closed at EOF.
func readLines(r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			ch <- scanner.Text()
		}
	}()
	return ch
}
