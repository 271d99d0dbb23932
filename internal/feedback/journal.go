// Package feedback keeps the off-chain review and buyer journals. Every
// subject owns one newest-first JSON array in the local key/value store.
package feedback

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/metrics"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/store"
)

// Store is the slice of store.Repository a journal needs.
type Store interface {
	GetValue(ctx context.Context, key string) (string, bool, error)
	PutValue(ctx context.Context, key, value string) error
	DeleteValue(ctx context.Context, key string) error
}

type JournalConfig[T any] struct {
	Prefix    string
	Lowercase bool
	// Kind labels log lines and metrics.
	Kind      string
	Normalize func(item T, now time.Time) T
}

type Journal[T any] struct {
	store Store
	cfg   JournalConfig[T]
	now   func() time.Time
	log   *zap.SugaredLogger

	mu sync.Mutex
}

func NewJournal[T any](st Store, cfg JournalConfig[T], log *zap.SugaredLogger) *Journal[T] {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Journal[T]{store: st, cfg: cfg, now: time.Now, log: log}
}

// WithClock overrides the time source used for missing timestamps.
func (j *Journal[T]) WithClock(now func() time.Time) *Journal[T] {
	j.now = now
	return j
}

func (j *Journal[T]) key(subject string) string {
	return store.SubjectKey(j.cfg.Prefix, subject, j.cfg.Lowercase)
}

// List returns the stored entries, newest first. Any failure yields an empty list.
func (j *Journal[T]) List(ctx context.Context, subject string) []T {
	key := j.key(subject)
	if key == "" || j.store == nil {
		return []T{}
	}
	items, _ := j.load(ctx, key)
	return items
}

// load returns the stored list. A non-nil error means the store could not be
// read, so the caller must not overwrite the key. Missing keys and malformed
// values are an empty list.
func (j *Journal[T]) load(ctx context.Context, key string) ([]T, error) {
	raw, ok, err := j.store.GetValue(ctx, key)
	if err != nil {
		metrics.LocalStoreFailures.WithLabelValues("read").Inc()
		j.log.Warnw("read journal failed", "kind", j.cfg.Kind, "key", key, "error", err)
		return []T{}, err
	}
	if !ok || raw == "" {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		metrics.LocalStoreFailures.WithLabelValues("parse").Inc()
		j.log.Warnw("parse journal failed", "kind", j.cfg.Kind, "key", key, "error", err)
		return []T{}, nil
	}
	if items == nil {
		return []T{}, nil
	}
	return items, nil
}

// Add normalizes item, prepends it and persists the list. A failed write is
// logged and the updated list is still returned. When the stored list cannot
// be read, nothing is written and only the new item is returned. Empty
// subjects return nil.
func (j *Journal[T]) Add(ctx context.Context, subject string, item T) []T {
	key := j.key(subject)
	if key == "" || j.store == nil {
		return nil
	}
	if j.cfg.Normalize != nil {
		item = j.cfg.Normalize(item, j.now())
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	existing, err := j.load(ctx, key)
	if err != nil {
		return []T{item}
	}
	items := make([]T, 0, len(existing)+1)
	items = append(items, item)
	items = append(items, existing...)

	payload, err := json.Marshal(items)
	if err != nil {
		metrics.LocalStoreFailures.WithLabelValues("encode").Inc()
		j.log.Warnw("encode journal failed", "kind", j.cfg.Kind, "key", key, "error", err)
		return items
	}
	if err := j.store.PutValue(ctx, key, string(payload)); err != nil {
		metrics.LocalStoreFailures.WithLabelValues("write").Inc()
		j.log.Warnw("persist journal failed", "kind", j.cfg.Kind, "key", key, "error", err)
		return items
	}
	metrics.ReviewsAdded.WithLabelValues(j.cfg.Kind).Inc()
	return items
}

// Clear drops every entry for subject. Missing keys are not an error.
func (j *Journal[T]) Clear(ctx context.Context, subject string) {
	key := j.key(subject)
	if key == "" || j.store == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.store.DeleteValue(ctx, key); err != nil {
		metrics.LocalStoreFailures.WithLabelValues("delete").Inc()
		j.log.Warnw("clear journal failed", "kind", j.cfg.Kind, "key", key, "error", err)
	}
}
