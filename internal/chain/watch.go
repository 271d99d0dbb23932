package chain

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// ErrStopWatching may be returned by a BlockHandler to end the subscription.
var ErrStopWatching = errors.New("stop watching")

const maxCatchUp = 128

type HeadReader interface {
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

type BlockHandler func(ctx context.Context, head *types.Header) error

// Subscription is the handle returned by WatchBlocks.
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	mu  sync.Mutex
	err error
}

// Cancel stops the watcher and waits for it to exit. After Cancel returns
// the handler is never invoked again. Calling it from the handler deadlocks;
// return ErrStopWatching instead.
func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
	<-s.done
}

// Done is closed when the watcher goroutine has exited.
func (s *Subscription) Done() <-chan struct{} { return s.done }

// Err is the reason the watcher stopped; nil while running or after Cancel.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// WatchBlocks polls heads every interval and calls handler once per new
// block, in order, from a single goroutine.
func WatchBlocks(ctx context.Context, heads HeadReader, interval time.Duration, handler BlockHandler, log *zap.SugaredLogger) *Subscription {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if interval <= 0 {
		interval = 4 * time.Second
	}
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{cancel: cancel, done: make(chan struct{})}
	w := &watcher{heads: heads, interval: interval, handler: handler, log: log}
	go func() {
		defer close(sub.done)
		err := w.run(ctx)
		if errors.Is(err, ErrStopWatching) || errors.Is(err, context.Canceled) {
			err = nil
		}
		sub.mu.Lock()
		sub.err = err
		sub.mu.Unlock()
	}()
	return sub
}

type watcher struct {
	heads    HeadReader
	interval time.Duration
	handler  BlockHandler
	log      *zap.SugaredLogger
	last     *uint64
}

func (w *watcher) run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		if err := w.poll(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *watcher) header(ctx context.Context, number *big.Int) (*types.Header, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = w.interval / 4
	b.MaxInterval = w.interval * 4
	b.MaxElapsedTime = 0

	var head *types.Header
	op := func() error {
		h, err := w.heads.HeaderByNumber(ctx, number)
		if err != nil {
			return err
		}
		if h == nil || h.Number == nil {
			return errors.New("empty header")
		}
		head = h
		return nil
	}
	notify := func(err error, wait time.Duration) {
		w.log.Warnf("block poll failed, retrying in %s: %v", wait, err)
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify); err != nil {
		return nil, err
	}
	return head, nil
}

func (w *watcher) poll(ctx context.Context) error {
	latest, err := w.header(ctx, nil)
	if err != nil {
		return err
	}
	tip := latest.Number.Uint64()
	if w.last == nil {
		return w.deliver(ctx, latest)
	}
	if tip <= *w.last {
		return nil
	}
	next := *w.last + 1
	if tip-next >= maxCatchUp {
		w.log.Warnf("skipping blocks %d-%d", next, tip-maxCatchUp)
		next = tip - maxCatchUp + 1
	}
	for n := next; n < tip; n++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		h, err := w.header(ctx, new(big.Int).SetUint64(n))
		if err != nil {
			return err
		}
		if err := w.deliver(ctx, h); err != nil {
			return err
		}
	}
	return w.deliver(ctx, latest)
}

func (w *watcher) deliver(ctx context.Context, head *types.Header) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	n := head.Number.Uint64()
	w.last = &n
	if err := w.handler(ctx, head); err != nil {
		if errors.Is(err, ErrStopWatching) {
			return err
		}
		w.log.Warnf("block handler for %d: %v", n, err)
	}
	return nil
}
