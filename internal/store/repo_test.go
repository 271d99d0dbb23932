package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db := OpenSQLite(":memory:", nil)
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewRepository(db)
}

func TestLocalValues(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	if _, ok, err := repo.GetValue(ctx, "ft_feedback_0xabc"); err != nil || ok {
		t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
	}
	if err := repo.PutValue(ctx, "ft_feedback_0xabc", `[{"a":1}]`); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.PutValue(ctx, "ft_feedback_0xabc", `[{"a":2},{"a":1}]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	val, ok, err := repo.GetValue(ctx, "ft_feedback_0xabc")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if val != `[{"a":2},{"a":1}]` {
		t.Fatalf("unexpected value %s", val)
	}
	if err := repo.DeleteValue(ctx, "ft_feedback_0xabc"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := repo.GetValue(ctx, "ft_feedback_0xabc"); ok {
		t.Fatalf("expected key to be removed")
	}
	if err := repo.DeleteValue(ctx, "ft_feedback_missing"); err != nil {
		t.Fatalf("deleting a missing key should be a no-op: %v", err)
	}
}

func TestPutValueQuota(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t).WithMaxValueBytes(8)

	err := repo.PutValue(ctx, "k", strings.Repeat("x", 9))
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected quota error, got %v", err)
	}
	if _, ok, _ := repo.GetValue(ctx, "k"); ok {
		t.Fatalf("value over quota must not be stored")
	}
	if err := repo.PutValue(ctx, "k", "12345678"); err != nil {
		t.Fatalf("value at quota should fit: %v", err)
	}
}

func TestBatchEventQueries(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	now := time.Unix(1_700_000_000, 0).UTC()

	events := []BatchEvent{
		{ChainID: 31337, BatchID: "1", EventType: "Created", Actor: "0xAAA", TxHash: "0x01", BlockNumber: 10, LogIndex: 0, Timestamp: 100, BlockTime: now},
		{ChainID: 31337, BatchID: "1", EventType: "Processed", Actor: "0xBBB", TxHash: "0x02", BlockNumber: 12, LogIndex: 1, Timestamp: 120, BlockTime: now},
		{ChainID: 31337, BatchID: "2", EventType: "Created", Actor: "0xAAA", TxHash: "0x03", BlockNumber: 15, LogIndex: 0, Timestamp: 150, BlockTime: now},
	}
	for i := range events {
		if err := repo.UpsertBatchEvent(ctx, &events[i]); err != nil {
			t.Fatalf("upsert %d: %v", i, err)
		}
	}
	dup := events[0]
	dup.ID = 0
	dup.Details = "replayed"
	if err := repo.UpsertBatchEvent(ctx, &dup); err != nil {
		t.Fatalf("re-upsert: %v", err)
	}

	timeline, err := repo.ListBatchEvents(ctx, BatchEventParams{ChainID: 31337, BatchID: "1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(timeline) != 2 {
		t.Fatalf("expected 2 events for batch 1, got %d", len(timeline))
	}
	if timeline[0].EventType != "Created" || timeline[0].Details != "replayed" {
		t.Fatalf("unexpected first event %+v", timeline[0])
	}
	if timeline[1].Actor != "0xbbb" {
		t.Fatalf("actor should be lowercased, got %s", timeline[1].Actor)
	}

	byActor, err := repo.ListBatchEvents(ctx, BatchEventParams{ChainID: 31337, Actor: "0xaaa", SortDesc: true})
	if err != nil {
		t.Fatalf("list by actor: %v", err)
	}
	if len(byActor) != 2 || byActor[0].BatchID != "2" {
		t.Fatalf("unexpected actor events %+v", byActor)
	}

	summaries, err := repo.ListBatchSummaries(ctx, 31337, 10)
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 2 || summaries[0].BatchID != "2" {
		t.Fatalf("unexpected summaries %+v", summaries)
	}
	if summaries[1].EventCount != 2 || summaries[1].FirstBlock != 10 || summaries[1].LastBlock != 12 {
		t.Fatalf("unexpected batch 1 summary %+v", summaries[1])
	}

	latest, err := repo.LatestBatchEvent(ctx, 31337)
	if err != nil || latest == nil || latest.TxHash != "0x03" {
		t.Fatalf("unexpected latest %+v err=%v", latest, err)
	}
	none, err := repo.LatestBatchEvent(ctx, 1)
	if err != nil || none != nil {
		t.Fatalf("expected no events on other chain, got %+v err=%v", none, err)
	}
}

func TestLogCursorRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	status, err := repo.GetIndexerStatus(ctx, 31337)
	if err != nil || status.LastIndexed != 0 {
		t.Fatalf("unexpected empty status %+v err=%v", status, err)
	}
	if err := repo.UpsertLogCursor(ctx, &LogCursor{ChainID: 31337, Address: "0xABC", LastBlock: 5}); err != nil {
		t.Fatalf("upsert cursor: %v", err)
	}
	if err := repo.UpsertLogCursor(ctx, &LogCursor{ChainID: 31337, Address: "0xabc", LastBlock: 9, LastTxHash: "0xFF"}); err != nil {
		t.Fatalf("update cursor: %v", err)
	}
	cur, err := repo.GetLogCursor(ctx, 31337, "0xAbc")
	if err != nil || cur == nil {
		t.Fatalf("get cursor: %+v err=%v", cur, err)
	}
	if cur.LastBlock != 9 || cur.LastTxHash != "0xff" {
		t.Fatalf("unexpected cursor %+v", cur)
	}
	status, _ = repo.GetIndexerStatus(ctx, 31337)
	if status.LastIndexed != 9 {
		t.Fatalf("expected status to follow cursor, got %d", status.LastIndexed)
	}
}

func TestBatchQueryLimits(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	for i := 0; i < 520; i++ {
		ev := &BatchEvent{
			ChainID:     1,
			BatchID:     "1",
			EventType:   "Temperature",
			TxHash:      fmt.Sprintf("0xtx%d", i),
			BlockNumber: uint64(i),
		}
		if err := repo.UpsertBatchEvent(ctx, ev); err != nil {
			t.Fatalf("upsert %d: %v", i, err)
		}
	}
	cases := []struct {
		limit int
		want  int
	}{
		{limit: 0, want: 100},
		{limit: 42, want: 42},
		{limit: 500, want: 500},
		{limit: 1000, want: 500},
	}
	for _, tc := range cases {
		rows, err := repo.ListBatchEvents(ctx, BatchEventParams{ChainID: 1, BatchID: "1", Limit: tc.limit})
		if err != nil {
			t.Fatalf("list limit=%d: %v", tc.limit, err)
		}
		if len(rows) != tc.want {
			t.Fatalf("limit=%d returned %d rows, want %d", tc.limit, len(rows), tc.want)
		}
	}
}
