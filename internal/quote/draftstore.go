package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	pkgerrors "github.com/sunstateclean/sunstate-backend/pkg/errors"
	"github.com/sunstateclean/sunstate-backend/pkg/redis"
)

// DraftStore persists in-progress drafts across page reloads. Load
// returns (nil, nil) when no draft exists for the id.
type DraftStore interface {
	Load(ctx context.Context, draftID string) (*Draft, error)
	Save(ctx context.Context, draftID string, draft Draft) error
	Delete(ctx context.Context, draftID string) error
}

// RedisDraftStore keeps drafts in Redis with a TTL so abandoned drafts
// expire on their own.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDraftStore wraps the shared redis client as a draft store.
func NewRedisDraftStore(client *redis.Client, ttl time.Duration) (*RedisDraftStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &RedisDraftStore{client: client, ttl: ttl}, nil
}

func (s *RedisDraftStore) Load(ctx context.Context, draftID string) (*Draft, error) {
	raw, err := s.client.Get(ctx, s.client.DraftKey(draftID))
	if err != nil {
		if redis.IsNil(err) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load draft")
	}

	var draft Draft
	// Unknown fields in older saved drafts are ignored; a draft that no
	// longer decodes at all is treated as absent rather than fatal.
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, nil
	}
	return &draft, nil
}

func (s *RedisDraftStore) Save(ctx context.Context, draftID string, draft Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode draft")
	}
	if err := s.client.Set(ctx, s.client.DraftKey(draftID), payload, s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save draft")
	}
	return nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, draftID string) error {
	if err := s.client.Del(ctx, s.client.DraftKey(draftID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete draft")
	}
	return nil
}

// MemoryDraftStore is an in-process store for tests and local dev. It
// round-trips through JSON so it exercises the same tolerance to
// unknown fields as the Redis store.
type MemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string][]byte
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: map[string][]byte{}}
}

func (s *MemoryDraftStore) Load(_ context.Context, draftID string) (*Draft, error) {
	s.mu.RLock()
	raw, ok := s.drafts[draftID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var draft Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, nil
	}
	return &draft, nil
}

func (s *MemoryDraftStore) Save(_ context.Context, draftID string, draft Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode draft")
	}
	s.mu.Lock()
	s.drafts[draftID] = payload
	s.mu.Unlock()
	return nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, draftID string) error {
	s.mu.Lock()
	delete(s.drafts, draftID)
	s.mu.Unlock()
	return nil
}

// SaveRaw stores a pre-encoded payload, letting tests seed legacy
// drafts with fields the current Draft shape does not know about.
func (s *MemoryDraftStore) SaveRaw(draftID string, payload []byte) {
	s.mu.Lock()
	s.drafts[draftID] = payload
	s.mu.Unlock()
}
