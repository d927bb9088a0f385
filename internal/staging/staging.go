// Package staging is the per-browser key-value storage behind the submission
// flow: the in-progress draft between the two stages and the "my listings"
// ownership index. Both are keyed by the anonymous browser session, so the
// data survives navigation but never crosses browsers or devices.
package staging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"recyklat-backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// Store is the minimal key-value contract the flow needs. Injected so tests
// can run it against miniredis or a map.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

const (
	draftPrefix = "draft:"
	ownedPrefix = "owned:"
)

// ErrNoDraft means the parameters stage was entered without a staged draft.
var ErrNoDraft = errors.New("No draft in progress")

// ErrDraftVersion means the staged draft predates the current schema.
var ErrDraftVersion = errors.New("Staged draft is from an older version")

// RedisStore backs Store with Redis. TTL zero keeps keys forever, which
// matches how browser-local storage behaved; a positive TTL lets deployments
// expire abandoned drafts.
type RedisStore struct {
	Rdb *redis.Client
	TTL time.Duration
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.Rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.Rdb.Set(ctx, key, value, s.TTL).Err()
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	return s.Rdb.Del(ctx, key).Err()
}

// NewRedisStore returns a RedisStore that never expires keys.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{Rdb: rdb}
}

// Stash layers the draft and ownership-index operations over a Store.
type Stash struct {
	Store Store
}

// SaveDraft stages the in-progress draft for this browser session, stamping
// the current draft version.
func (s *Stash) SaveDraft(ctx context.Context, sessionID string, d models.Draft) error {
	d.Version = models.DraftVersion
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.Store.Set(ctx, draftPrefix+sessionID, string(b))
}

// LoadDraft returns the staged draft, ErrNoDraft if none exists.
func (s *Stash) LoadDraft(ctx context.Context, sessionID string) (*models.Draft, error) {
	raw, ok, err := s.Store.Get(ctx, draftPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoDraft
	}
	var d models.Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, fmt.Errorf("decode staged draft: %w", err)
	}
	if d.Version != models.DraftVersion {
		return nil, ErrDraftVersion
	}
	return &d, nil
}

// RemoveDraft clears the staged draft. Removing a missing draft is not an error.
func (s *Stash) RemoveDraft(ctx context.Context, sessionID string) error {
	return s.Store.Remove(ctx, draftPrefix+sessionID)
}

// AddOwned appends a listing id to the session's ownership index.
// Duplicates are dropped.
func (s *Stash) AddOwned(ctx context.Context, sessionID string, id uint) error {
	ids, err := s.OwnedIDs(ctx, sessionID)
	if err != nil {
		return err
	}
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	return s.writeOwned(ctx, sessionID, append(ids, id))
}

// OwnedIDs returns every listing id created from this browser session.
func (s *Stash) OwnedIDs(ctx context.Context, sessionID string) ([]uint, error) {
	raw, ok, err := s.Store.Get(ctx, ownedPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var ids []uint
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decode ownership index: %w", err)
	}
	return ids, nil
}

// IsOwned reports whether id is in the session's ownership index. This is a
// convenience gate, not an authorization boundary.
func (s *Stash) IsOwned(ctx context.Context, sessionID string, id uint) (bool, error) {
	ids, err := s.OwnedIDs(ctx, sessionID)
	if err != nil {
		return false, err
	}
	for _, existing := range ids {
		if existing == id {
			return true, nil
		}
	}
	return false, nil
}

// RemoveOwned prunes a deleted listing's id from the index.
func (s *Stash) RemoveOwned(ctx context.Context, sessionID string, id uint) error {
	ids, err := s.OwnedIDs(ctx, sessionID)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return s.writeOwned(ctx, sessionID, kept)
}

func (s *Stash) writeOwned(ctx context.Context, sessionID string, ids []uint) error {
	if ids == nil {
		ids = []uint{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.Store.Set(ctx, ownedPrefix+sessionID, string(b))
}
