package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/store"
)

func seedReader(t *testing.T) (*Reader, *store.Repository) {
	t.Helper()
	db := store.OpenSQLite(":memory:", nil)
	if err := store.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repo := store.NewRepository(db)
	return NewReader(repo), repo
}

func TestReaderQueries(t *testing.T) {
	ctx := context.Background()
	reader, repo := seedReader(t)

	chainID := uint64(31337)
	now := time.Now().UTC()

	events := []store.BatchEvent{
		{BatchID: "1", EventType: "Created", BlockNumber: 100, LogIndex: 0, Timestamp: 10},
		{BatchID: "1", EventType: "Temperature", Temperature: 4, BlockNumber: 101, LogIndex: 0, Timestamp: 20},
		{BatchID: "2", EventType: "Created", BlockNumber: 102, LogIndex: 0, Timestamp: 30},
		{BatchID: "2", EventType: "Contaminated", Temperature: 19, BlockNumber: 103, LogIndex: 1, Timestamp: 40},
	}
	for i := range events {
		ev := events[i]
		ev.ChainID = chainID
		ev.Contract = "0xE5D918F4777E95F4021ED1EF5CCCBB81EEC8ADC9"
		ev.Actor = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
		ev.TxHash = fmt.Sprintf("0xtx%d", i)
		ev.BlockTime = now.Add(time.Duration(i-4) * time.Minute)
		if err := repo.UpsertBatchEvent(ctx, &ev); err != nil {
			t.Fatalf("upsert event %d: %v", i, err)
		}
	}
	if err := repo.UpsertLogCursor(ctx, &store.LogCursor{ChainID: chainID, Address: "0xe5d9", LastBlock: 110}); err != nil {
		t.Fatalf("upsert cursor: %v", err)
	}

	timeline, err := reader.BatchTimeline(ctx, chainID, "1", 0)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(timeline) != 2 {
		t.Fatalf("timeline length = %d, want 2", len(timeline))
	}
	if timeline[0].EventType != "Temperature" || timeline[1].EventType != "Created" {
		t.Fatalf("timeline not newest first: %+v", timeline)
	}
	if timeline[0].Actor != "0x70997970c51812dc3a010c7d01b50e0d17dc79c8" {
		t.Fatalf("actor not normalized: %s", timeline[0].Actor)
	}

	empty, err := reader.BatchTimeline(ctx, chainID, "  ", 0)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("blank batch id = %v, %v", empty, err)
	}

	batches, err := reader.ListBatches(ctx, chainID, 10)
	if err != nil {
		t.Fatalf("list batches: %v", err)
	}
	if len(batches) != 2 {
		t.Fatalf("batches = %d, want 2", len(batches))
	}
	if batches[0].BatchID != "2" || !batches[0].Flagged {
		t.Fatalf("expected contaminated batch 2 first: %+v", batches[0])
	}
	if batches[0].LatestEvent == nil || batches[0].LatestEvent.EventType != "Contaminated" {
		t.Fatalf("latest event of batch 2: %+v", batches[0].LatestEvent)
	}
	if batches[1].BatchID != "1" || batches[1].Flagged || batches[1].EventCount != 2 {
		t.Fatalf("unexpected batch 1 overview: %+v", batches[1])
	}
	if batches[1].FirstBlock != 100 || batches[1].LastBlock != 101 {
		t.Fatalf("batch 1 block range = %d..%d", batches[1].FirstBlock, batches[1].LastBlock)
	}

	status, err := reader.Status(ctx, chainID)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.LastIndexed != 110 || status.LatestEvent != 103 {
		t.Fatalf("unexpected status: %+v", status)
	}
	if status.LastEventAt == nil || status.IngestLagMs <= 0 {
		t.Fatalf("expected ingest lag, got %+v", status)
	}
}

func TestReaderStatusWithoutData(t *testing.T) {
	reader, _ := seedReader(t)
	status, err := reader.Status(context.Background(), 1)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.LastIndexed != 0 || status.LatestEvent != 0 || status.LastEventAt != nil {
		t.Fatalf("expected zero status, got %+v", status)
	}
}

func TestIsContamination(t *testing.T) {
	cases := map[string]bool{
		"Contaminated":           true,
		"EmergencyContamination": true,
		"compromised":            true,
		"Temperature":            false,
		"":                       false,
	}
	for in, want := range cases {
		if got := IsContamination(in); got != want {
			t.Fatalf("IsContamination(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestListBatchesFlagsOldContamination(t *testing.T) {
	ctx := context.Background()
	reader, repo := seedReader(t)

	insert := func(block uint64, eventType string) {
		t.Helper()
		ev := &store.BatchEvent{
			ChainID:     5,
			BatchID:     "9",
			EventType:   eventType,
			TxHash:      fmt.Sprintf("0xtx%d", block),
			BlockNumber: block,
		}
		if err := repo.UpsertBatchEvent(ctx, ev); err != nil {
			t.Fatalf("upsert block %d: %v", block, err)
		}
	}
	insert(1, "Contaminated")
	for b := uint64(2); b <= 601; b++ {
		insert(b, "Temperature")
	}

	batches, err := reader.ListBatches(ctx, 5, 10)
	if err != nil {
		t.Fatalf("list batches: %v", err)
	}
	if len(batches) != 1 {
		t.Fatalf("batches = %d, want 1", len(batches))
	}
	got := batches[0]
	if got.EventCount != 601 || !got.Flagged {
		t.Fatalf("events=%d contaminated=%v", got.EventCount, got.Flagged)
	}
	if got.LatestEvent == nil || got.LatestEvent.BlockNumber != 601 {
		t.Fatalf("latest event = %+v", got.LatestEvent)
	}
}
