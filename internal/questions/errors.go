package questions

import (
	"errors"
	"fmt"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
)

var (
	// ErrQuestionLoad is matched by every subject load failure.
	ErrQuestionLoad = errors.New("question load failed")

	// ErrNoQuestionsAvailable means the pool was empty after filtering. It is
	// the same value the session controller reports for an empty batch.
	ErrNoQuestionsAvailable = session.ErrNoQuestionsAvailable
)

// LoadError reports which subject could not be loaded.
type LoadError struct {
	Subject string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load subject %q: %v", e.Subject, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrQuestionLoad) true for any LoadError.
func (e *LoadError) Is(target error) bool { return target == ErrQuestionLoad }
