package pipeline

import (
	"sync/atomic"

	"github.com/ethereum/go-ethereum/core/types"
)

// chunkAck counts the writes still outstanding for one FilterLogs chunk. The
// subscriber holds one token until every log is queued, each queued log holds
// one until it is decoded, and each writeRequest holds one until it is
// applied, so done closes exactly once after the last write.
type chunkAck struct {
	pending atomic.Int64
	failed  atomic.Bool
	done    chan struct{}
}

func newChunkAck() *chunkAck {
	a := &chunkAck{done: make(chan struct{})}
	a.pending.Store(1)
	return a
}

func (a *chunkAck) add(n int) {
	if a != nil && n > 0 {
		a.pending.Add(int64(n))
	}
}

func (a *chunkAck) release() {
	if a != nil && a.pending.Add(-1) == 0 {
		close(a.done)
	}
}

func (a *chunkAck) fail() {
	if a != nil {
		a.failed.Store(true)
	}
}

// logJob is a log queued for decoding together with its chunk.
type logJob struct {
	log types.Log
	ack *chunkAck
}
