package pipeline

import (
	"context"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/metrics"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/store"
)

type Repo interface {
	GetLogCursor(ctx context.Context, chainID uint64, address string) (*store.LogCursor, error)
	UpsertLogCursor(ctx context.Context, cursor *store.LogCursor) error
	UpsertBatchEvent(ctx context.Context, event *store.BatchEvent) error
}

// EventSink receives every persisted batch event, e.g. the websocket hub.
type EventSink interface {
	PublishBatchEvent(event *store.BatchEvent)
}

type StoreAdapter struct {
	repo *store.Repository
	sink EventSink
}

func NewStoreAdapter(repo *store.Repository, sink EventSink) *StoreAdapter {
	return &StoreAdapter{repo: repo, sink: sink}
}

func (a *StoreAdapter) GetLogCursor(ctx context.Context, chainID uint64, address string) (*store.LogCursor, error) {
	return a.repo.GetLogCursor(ctx, chainID, address)
}

func (a *StoreAdapter) UpsertLogCursor(ctx context.Context, cursor *store.LogCursor) error {
	return a.repo.UpsertLogCursor(ctx, cursor)
}

func (a *StoreAdapter) UpsertBatchEvent(ctx context.Context, event *store.BatchEvent) error {
	if err := a.repo.UpsertBatchEvent(ctx, event); err != nil {
		return err
	}
	metrics.IndexedBatchEvents.Inc()
	if a.sink != nil {
		clone := *event
		a.sink.PublishBatchEvent(&clone)
	}
	return nil
}
