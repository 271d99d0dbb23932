package pipeline

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
)

// EthClient is the log and header source; *ethclient.Client satisfies it.
type EthClient interface {
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

// blockTimeCache memoizes header timestamps; several events usually share a block.
type blockTimeCache struct {
	client EthClient
	mu     sync.Mutex
	times  map[uint64]time.Time
}

func newBlockTimeCache(client EthClient) *blockTimeCache {
	return &blockTimeCache{client: client, times: make(map[uint64]time.Time)}
}

func (b *blockTimeCache) Time(ctx context.Context, number uint64) (time.Time, error) {
	b.mu.Lock()
	ts, ok := b.times[number]
	b.mu.Unlock()
	if ok {
		return ts, nil
	}

	header, err := b.client.HeaderByNumber(ctx, new(big.Int).SetUint64(number))
	if err != nil {
		return time.Time{}, err
	}
	ts = time.Unix(int64(header.Time), 0).UTC()

	b.mu.Lock()
	b.times[number] = ts
	b.mu.Unlock()
	return ts, nil
}
