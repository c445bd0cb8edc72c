package store

import (
	"context"
	"errors"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
)

// CollectionKey is the fixed key completed sessions are stored under.
const CollectionKey = "aptitude_game_sessions"

var (
	// ErrNotFound is returned by Get for an unknown session id.
	ErrNotFound = errors.New("session not found")

	// ErrDuplicate is returned by Append when the session id is already in
	// the log. The log is left unchanged.
	ErrDuplicate = errors.New("session already saved")
)

// SessionRepo is the append-only log of completed sessions.
//
// A missing store reads as empty. Entries that cannot be decoded are
// skipped and logged, and a store that cannot be read at all reads as
// empty; neither is reported as an error.
type SessionRepo interface {
	// Append adds a completed record to the end of the log. Each session id
	// is stored once; a repeat fails with ErrDuplicate.
	Append(ctx context.Context, rec *session.Record) error

	// ReadAll returns every readable record in append order.
	ReadAll(ctx context.Context) ([]*session.Record, error)

	// Get returns the record with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*session.Record, error)

	// Clear removes every record.
	Clear(ctx context.Context) error
}

var _ session.Persister = SessionRepo(nil)
