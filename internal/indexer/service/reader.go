package service

import (
	"context"
	"strings"
	"time"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/store"
)

type Reader struct {
	repo *store.Repository
}

func NewReader(repo *store.Repository) *Reader {
	return &Reader{repo: repo}
}

type Status struct {
	ChainID     uint64     `json:"chainId"`
	LastIndexed uint64     `json:"lastIndexed"`
	LatestEvent uint64     `json:"latestEventBlock"`
	IngestLagMs int64      `json:"ingestLagMs"`
	LastEventAt *time.Time `json:"lastEventAt,omitempty"`
}

func (r *Reader) Status(ctx context.Context, chainID uint64) (*Status, error) {
	row, err := r.repo.GetIndexerStatus(ctx, chainID)
	if err != nil {
		return nil, err
	}
	latest, err := r.repo.LatestBatchEvent(ctx, chainID)
	if err != nil {
		return nil, err
	}

	out := &Status{ChainID: chainID, LastIndexed: row.LastIndexed}
	if latest != nil {
		out.LatestEvent = latest.BlockNumber
		if !latest.BlockTime.IsZero() {
			t := latest.BlockTime
			out.LastEventAt = &t
			out.IngestLagMs = time.Since(t).Milliseconds()
		}
	}
	return out, nil
}

type TimelineEvent struct {
	EventType   string    `json:"eventType"`
	Details     string    `json:"details"`
	Temperature int64     `json:"temperature"`
	Timestamp   uint64    `json:"timestamp"`
	Actor       string    `json:"actor"`
	TxHash      string    `json:"txHash"`
	BlockNumber uint64    `json:"blockNumber"`
	LogIndex    uint      `json:"logIndex"`
	BlockTime   time.Time `json:"blockTime"`
}

// BatchTimeline returns the indexed events of one batch, newest first.
func (r *Reader) BatchTimeline(ctx context.Context, chainID uint64, batchID string, limit int) ([]TimelineEvent, error) {
	batchID = strings.TrimSpace(batchID)
	if batchID == "" {
		return []TimelineEvent{}, nil
	}
	rows, err := r.repo.ListBatchEvents(ctx, store.BatchEventParams{
		ChainID:  chainID,
		BatchID:  batchID,
		Limit:    limit,
		SortDesc: true,
	})
	if err != nil {
		return nil, err
	}
	out := make([]TimelineEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTimelineEvent(row))
	}
	return out, nil
}

type BatchOverview struct {
	BatchID     string         `json:"batchId"`
	EventCount  int64          `json:"eventCount"`
	FirstBlock  uint64         `json:"firstBlock"`
	LastBlock   uint64         `json:"lastBlock"`
	LatestEvent *TimelineEvent `json:"latestEvent,omitempty"`
	Flagged     bool           `json:"contaminated"`
}

// ListBatches summarizes every indexed batch, most recently touched first.
func (r *Reader) ListBatches(ctx context.Context, chainID uint64, limit int) ([]BatchOverview, error) {
	summaries, err := r.repo.ListBatchSummaries(ctx, chainID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]BatchOverview, 0, len(summaries))
	for _, s := range summaries {
		item := BatchOverview{
			BatchID:    s.BatchID,
			EventCount: s.EventCount,
			FirstBlock: s.FirstBlock,
			LastBlock:  s.LastBlock,
			Flagged:    s.ContaminatedEvents > 0,
		}
		events, err := r.repo.ListBatchEvents(ctx, store.BatchEventParams{
			ChainID:  chainID,
			BatchID:  s.BatchID,
			Limit:    1,
			SortDesc: true,
		})
		if err != nil {
			return nil, err
		}
		if len(events) > 0 {
			latest := toTimelineEvent(events[0])
			item.LatestEvent = &latest
		}
		out = append(out, item)
	}
	return out, nil
}

// IsContamination reports whether an event type marks the batch as unsafe.
func IsContamination(eventType string) bool {
	t := strings.ToLower(eventType)
	for _, m := range store.ContaminationMarkers {
		if strings.Contains(t, m) {
			return true
		}
	}
	return false
}

func toTimelineEvent(row store.BatchEvent) TimelineEvent {
	return TimelineEvent{
		EventType:   row.EventType,
		Details:     row.Details,
		Temperature: row.Temperature,
		Timestamp:   row.Timestamp,
		Actor:       row.Actor,
		TxHash:      row.TxHash,
		BlockNumber: row.BlockNumber,
		LogIndex:    row.LogIndex,
		BlockTime:   row.BlockTime,
	}
}
