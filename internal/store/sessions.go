package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
)

// sqlSessionRepo implements SessionRepo on the session_records table.
type sqlSessionRepo struct {
	db         *sql.DB
	logger     *log.Logger
	collection string
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *sqlSessionRepo) Append(ctx context.Context, rec *session.Record) error {
	payload, err := EncodeRecord(rec)
	if err != nil {
		return err
	}

	var endedAt any
	if rec.EndTime != nil {
		endedAt = *rec.EndTime
	}

	query, args := builder().
		Insert(SessionRecordsTable.Name).
		Columns("collection", "session_id", "game_mode", "started_at", "ended_at", "score", "accuracy", "payload").
		Values(r.collection, rec.ID, rec.GameMode, rec.StartTime, endedAt, rec.Score, rec.Accuracy, string(payload)).
		OnConflict(entsql.ConflictColumns("session_id"), entsql.DoNothing()).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("save session %s: %w", rec.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save session %s: %w", rec.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("save session %s: %w", rec.ID, ErrDuplicate)
	}
	return nil
}

func (r *sqlSessionRepo) ReadAll(ctx context.Context) ([]*session.Record, error) {
	b := builder()
	query, args := b.Select("session_id", "payload").
		From(b.Table(SessionRecordsTable.Name)).
		Where(entsql.EQ("collection", r.collection)).
		OrderBy("id").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.logger.Printf("warning: read session history: %v", err)
		return []*session.Record{}, nil
	}
	defer rows.Close()

	out := []*session.Record{}
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			r.logger.Printf("warning: skip unreadable session row: %v", err)
			continue
		}
		rec, err := DecodeRecord([]byte(payload))
		if err != nil {
			r.logger.Printf("warning: skip corrupted session %s: %v", id, err)
			continue
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("warning: read session history: %v", err)
	}
	return out, nil
}

func (r *sqlSessionRepo) Get(ctx context.Context, id string) (*session.Record, error) {
	b := builder()
	query, args := b.Select("payload").
		From(b.Table(SessionRecordsTable.Name)).
		Where(entsql.And(
			entsql.EQ("collection", r.collection),
			entsql.EQ("session_id", id),
		)).
		Query()

	var payload string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get session %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	rec, err := DecodeRecord([]byte(payload))
	if err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return rec, nil
}

func (r *sqlSessionRepo) Clear(ctx context.Context) error {
	query, args := builder().
		Delete(SessionRecordsTable.Name).
		Where(entsql.EQ("collection", r.collection)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}
	return nil
}

// DecodeRecord parses a stored record and rejects entries without an id.
func DecodeRecord(data []byte) (*session.Record, error) {
	var rec session.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	if rec.ID == "" {
		return nil, errors.New("record has no id")
	}
	return &rec, nil
}

// EncodeRecord serializes a record for storage.
func EncodeRecord(rec *session.Record) ([]byte, error) {
	if rec == nil || rec.ID == "" {
		return nil, errors.New("encode session: record has no id")
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal session %s: %w", rec.ID, err)
	}
	return data, nil
}
