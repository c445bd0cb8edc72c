// Package redisstore keeps the session log in a Redis list.
//
// Records are JSON encoded and pushed onto "<prefix><collection>" in
// completion order. A hash under "<prefix><collection>:index" maps session
// ids to the same payload for lookups and keeps ids unique.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/store"
)

// KeyPrefix namespaces every key this package writes.
const KeyPrefix = "aptitudeGame_"

// Repo implements store.SessionRepo on Redis.
type Repo struct {
	client *redis.Client
	logger *log.Logger
	list   string
	index  string
}

var _ store.SessionRepo = (*Repo)(nil)

// New creates a Repo on client. A nil logger discards warnings.
func New(client *redis.Client, logger *log.Logger) *Repo {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	list := KeyPrefix + store.CollectionKey
	return &Repo{
		client: client,
		logger: logger,
		list:   list,
		index:  list + ":index",
	}
}

// Dial connects to addr and checks the connection with PING.
func Dial(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", addr, err)
	}
	return client, nil
}

// appendScript indexes the payload under the session id and pushes it onto
// the list, or does nothing when the id is already indexed.
var appendScript = redis.NewScript(`
if redis.call("HSETNX", KEYS[2], ARGV[1], ARGV[2]) == 0 then
	return 0
end
redis.call("RPUSH", KEYS[1], ARGV[2])
return 1
`)

func (r *Repo) Append(ctx context.Context, rec *session.Record) error {
	payload, err := store.EncodeRecord(rec)
	if err != nil {
		return err
	}
	added, err := appendScript.Run(ctx, r.client, []string{r.list, r.index}, rec.ID, payload).Int()
	if err != nil {
		return fmt.Errorf("save session %s: %w", rec.ID, err)
	}
	if added == 0 {
		return fmt.Errorf("save session %s: %w", rec.ID, store.ErrDuplicate)
	}
	return nil
}

func (r *Repo) ReadAll(ctx context.Context) ([]*session.Record, error) {
	entries, err := r.client.LRange(ctx, r.list, 0, -1).Result()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.logger.Printf("warning: read session history: %v", err)
		return []*session.Record{}, nil
	}

	out := make([]*session.Record, 0, len(entries))
	for i, entry := range entries {
		rec, err := store.DecodeRecord([]byte(entry))
		if err != nil {
			r.logger.Printf("warning: skip corrupted session at position %d: %v", i, err)
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*session.Record, error) {
	payload, err := r.client.HGet(ctx, r.index, id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("get session %s: %w", id, store.ErrNotFound)
		}
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	rec, err := store.DecodeRecord([]byte(payload))
	if err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return rec, nil
}

func (r *Repo) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.list, r.index).Err(); err != nil {
		return fmt.Errorf("clear sessions: %w", err)
	}
	return nil
}
