package chain

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

func TestAdapterReadsBatchInfo(t *testing.T) {
	ctx := context.Background()
	b := newStubBackend()
	processor := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	owner := common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	b.setOutput("getBatchInfo", big.NewInt(7), big.NewInt(1_700_000_000), processor, true, uint8(1), owner)

	a := newContractAdapter(common.HexToAddress(testContract), b.abi, b, nil, 0)
	info, err := a.GetBatchInfo(ctx, big.NewInt(7))
	if err != nil {
		t.Fatalf("get batch info: %v", err)
	}
	if info.BatchID.Int64() != 7 || info.CreationTimestamp.Int64() != 1_700_000_000 {
		t.Fatalf("unexpected numeric fields %+v", info)
	}
	if info.Processor == nil || *info.Processor != processor {
		t.Fatalf("unexpected processor %v", info.Processor)
	}
	if info.IsCompromised == nil || !*info.IsCompromised {
		t.Fatalf("expected compromised flag")
	}
	if info.Status == nil || *info.Status != 1 {
		t.Fatalf("unexpected status %v", info.Status)
	}
	if info.CurrentOwner == nil || *info.CurrentOwner != owner {
		t.Fatalf("unexpected owner %v", info.CurrentOwner)
	}
}

func TestAdapterScalarReads(t *testing.T) {
	ctx := context.Background()
	b := newStubBackend()
	b.setOutput("getBatchCount", big.NewInt(3))
	b.setOutput("hasRole", true)
	b.setOutput("getReputation", big.NewInt(-12))

	a := newContractAdapter(common.HexToAddress(testContract), b.abi, b, nil, 0)
	count, err := a.GetBatchCount(ctx)
	if err != nil || count.Int64() != 3 {
		t.Fatalf("count=%v err=%v", count, err)
	}
	has, err := a.HasRole(ctx, common.Hash{}, common.HexToAddress(DefaultDeployer))
	if err != nil || !has {
		t.Fatalf("has=%v err=%v", has, err)
	}
	rep, err := a.GetReputation(ctx, common.HexToAddress(DefaultDeployer))
	if err != nil || rep.Int64() != -12 {
		t.Fatalf("rep=%v err=%v", rep, err)
	}
}

func TestAdapterEmptyResult(t *testing.T) {
	b := newStubBackend()
	a := newContractAdapter(common.HexToAddress(testContract), b.abi, b, nil, 0)
	if _, err := a.GetBatchCount(context.Background()); err == nil {
		t.Fatalf("expected error when no contract code answers")
	}
}

func TestAdapterReadOnlyRejectsWrites(t *testing.T) {
	b := newStubBackend()
	a := newContractAdapter(common.HexToAddress(testContract), b.abi, b, nil, 0)
	if _, ok := a.Signer(); ok {
		t.Fatalf("read-only adapter must not report a signer")
	}
	_, err := a.CreateBatch(context.Background(), "Apples", "Orchard 4")
	if !errors.Is(err, ErrNoSigner) {
		t.Fatalf("expected ErrNoSigner, got %v", err)
	}
}

func TestAdapterBatchEvents(t *testing.T) {
	ctx := context.Background()
	b := newStubBackend()
	actor := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	tx := common.HexToHash("0x01")
	good := batchLog(b.abi, 4, "Created", 100, actor, tx, 12, 3)
	junk := types.Log{Topics: []common.Hash{b.abi.Events[batchEventName].ID}, BlockNumber: 12}
	b.logs = []types.Log{good, junk}

	a := newContractAdapter(common.HexToAddress(testContract), b.abi, b, nil, 0)
	to := uint64(20)
	events, err := a.BatchEvents(ctx, 10, &to)
	if err != nil {
		t.Fatalf("batch events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected malformed log to be skipped, got %d events", len(events))
	}
	ev := events[0]
	if ev.BatchID.Int64() != 4 || ev.EventType != "Created" || ev.Details != "details Created" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if ev.Temperature.Int64() != -4 || ev.Timestamp != 100 || ev.Actor != actor {
		t.Fatalf("unexpected event values %+v", ev)
	}
	if ev.TxHash != tx || ev.BlockNumber != 12 || ev.LogIndex != 3 {
		t.Fatalf("unexpected log position %+v", ev)
	}

	q := b.queries[0]
	if q.FromBlock.Uint64() != 10 || q.ToBlock.Uint64() != 20 {
		t.Fatalf("unexpected range %v-%v", q.FromBlock, q.ToBlock)
	}
	if len(q.Addresses) != 1 || q.Addresses[0] != common.HexToAddress(testContract) {
		t.Fatalf("unexpected addresses %v", q.Addresses)
	}
}

func TestDecodeBatchEventRejectsOtherLogs(t *testing.T) {
	parsed := DefaultABI()
	if _, err := DecodeBatchEvent(parsed, types.Log{}); err == nil {
		t.Fatalf("expected error for log without topics")
	}
	if _, err := DecodeBatchEvent(parsed, types.Log{Topics: []common.Hash{common.HexToHash("0x1234")}}); err == nil {
		t.Fatalf("expected error for foreign topic")
	}
}
