package session

import "context"

// Message is an event a presentation surface sends to the controller.
type Message interface {
	sessionMessage()
}

// AnswerSubmitted reports the player's choice, or a timeout when TimedOut is set.
// ResponseTime is in seconds.
type AnswerSubmitted struct {
	SelectedIndex int
	ResponseTime  float64
	TimedOut      bool
}

// ReadyForNext reports that feedback for the current answer has been shown.
type ReadyForNext struct{}

func (AnswerSubmitted) sessionMessage() {}
func (ReadyForNext) sessionMessage()    {}

// Dispatch routes a message to HandleAnswer or Advance. It reports whether
// the message changed the session.
func (c *Controller) Dispatch(m Message) bool {
	switch m := m.(type) {
	case AnswerSubmitted:
		_, ok := c.HandleAnswer(m)
		return ok
	case *AnswerSubmitted:
		if m == nil {
			return false
		}
		_, ok := c.HandleAnswer(*m)
		return ok
	case ReadyForNext, *ReadyForNext:
		return c.Advance()
	default:
		return false
	}
}

// Serve dispatches messages from in until the session ends, in is closed,
// or ctx is cancelled. Only cancellation produces an error.
func (c *Controller) Serve(ctx context.Context, in <-chan Message) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.done:
			return nil
		case m, ok := <-in:
			if !ok {
				return nil
			}
			c.Dispatch(m)
		}
	}
}
