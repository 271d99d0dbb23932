package chain

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/goleak"
)

type stubHeads struct {
	mu    sync.Mutex
	tip   uint64
	fails int
	asked []uint64
}

func (s *stubHeads) setTip(n uint64) {
	s.mu.Lock()
	s.tip = n
	s.mu.Unlock()
}

func (s *stubHeads) HeaderByNumber(_ context.Context, number *big.Int) (*types.Header, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fails > 0 {
		s.fails--
		return nil, errors.New("connection refused")
	}
	n := s.tip
	if number != nil {
		n = number.Uint64()
		s.asked = append(s.asked, n)
	}
	return &types.Header{Number: new(big.Int).SetUint64(n), Time: 1_700_000_000 + n}, nil
}

type recorder struct {
	mu   sync.Mutex
	seen []uint64
}

func (r *recorder) handle(_ context.Context, head *types.Header) error {
	r.mu.Lock()
	r.seen = append(r.seen, head.Number.Uint64())
	r.mu.Unlock()
	return nil
}

func (r *recorder) snapshot() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint64, len(r.seen))
	copy(out, r.seen)
	return out
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %s", timeout)
}

func TestWatchBlocksDeliversEveryHeadInOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	heads := &stubHeads{tip: 5}
	rec := &recorder{}
	sub := WatchBlocks(context.Background(), heads, 10*time.Millisecond, rec.handle, nil)

	waitFor(t, time.Second, func() bool { return len(rec.snapshot()) == 1 })
	heads.setTip(8)
	waitFor(t, time.Second, func() bool { return len(rec.snapshot()) == 4 })

	sub.Cancel()
	got := rec.snapshot()
	want := []uint64{5, 6, 7, 8}
	for i, n := range want {
		if got[i] != n {
			t.Fatalf("unexpected delivery order %v", got)
		}
	}

	heads.setTip(20)
	time.Sleep(40 * time.Millisecond)
	if n := len(rec.snapshot()); n != 4 {
		t.Fatalf("handler ran after Cancel returned: %v", rec.snapshot())
	}
	sub.Cancel()
	if sub.Err() != nil {
		t.Fatalf("unexpected error after cancel: %v", sub.Err())
	}
}

func TestWatchBlocksHandlerCanStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	heads := &stubHeads{tip: 1}
	calls := 0
	sub := WatchBlocks(context.Background(), heads, 5*time.Millisecond, func(context.Context, *types.Header) error {
		calls++
		return ErrStopWatching
	}, nil)

	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
	if calls != 1 || sub.Err() != nil {
		t.Fatalf("calls=%d err=%v", calls, sub.Err())
	}
	sub.Cancel()
}

func TestWatchBlocksRetriesFailedPolls(t *testing.T) {
	defer goleak.VerifyNone(t)

	heads := &stubHeads{tip: 3, fails: 2}
	rec := &recorder{}
	sub := WatchBlocks(context.Background(), heads, 8*time.Millisecond, rec.handle, nil)
	defer sub.Cancel()

	waitFor(t, 2*time.Second, func() bool { return len(rec.snapshot()) == 1 })
	if rec.snapshot()[0] != 3 {
		t.Fatalf("unexpected first head %v", rec.snapshot())
	}
}

func TestWatchBlocksParentContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	sub := WatchBlocks(ctx, &stubHeads{tip: 1}, 5*time.Millisecond, func(context.Context, *types.Header) error { return nil }, nil)
	cancel()
	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("watcher ignored parent cancellation")
	}
}
