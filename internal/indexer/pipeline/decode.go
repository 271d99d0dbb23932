package pipeline

import (
	"context"
	"math"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/chain"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/store"
)

type decodeHandler func(ctx context.Context, lg types.Log) ([]writeRequest, error)

type decoder struct {
	cfg      Config
	abi      abi.ABI
	blocks   *blockTimeCache
	log      *zap.SugaredLogger
	handlers map[common.Hash]decodeHandler
	topics   []common.Hash
}

func newDecoder(cfg Config, client EthClient, log *zap.SugaredLogger) *decoder {
	parsed := chain.DefaultABI()
	if cfg.ABI != nil {
		parsed = *cfg.ABI
	}
	d := &decoder{
		cfg:    cfg,
		abi:    parsed,
		blocks: newBlockTimeCache(client),
		log:    log,
	}
	d.handlers = map[common.Hash]decodeHandler{}
	if ev, ok := parsed.Events["BatchEventLog"]; ok {
		d.handlers[ev.ID] = d.decodeBatchEvent
	}
	d.topics = make([]common.Hash, 0, len(d.handlers))
	for topic := range d.handlers {
		d.topics = append(d.topics, topic)
	}
	return d
}

func (d *decoder) topicsList() []common.Hash {
	return d.topics
}

func (d *decoder) decode(ctx context.Context, lg types.Log) ([]writeRequest, error) {
	if len(lg.Topics) == 0 {
		return nil, nil
	}
	handler, ok := d.handlers[lg.Topics[0]]
	if !ok {
		return nil, nil
	}
	return handler(ctx, lg)
}

func (d *decoder) decodeBatchEvent(ctx context.Context, lg types.Log) ([]writeRequest, error) {
	ev, err := chain.DecodeBatchEvent(d.abi, lg)
	if err != nil {
		d.log.Warnf("skipping BatchEventLog at block=%d index=%d: %v", lg.BlockNumber, lg.Index, err)
		return nil, nil
	}

	var blockTime time.Time
	if ts, err := d.blocks.Time(ctx, lg.BlockNumber); err == nil {
		blockTime = ts
	} else {
		d.log.Warnf("failed block time for %d: %v", lg.BlockNumber, err)
	}

	row := &store.BatchEvent{
		ChainID:     d.cfg.ChainID,
		Contract:    lg.Address.Hex(),
		BatchID:     ev.BatchID.String(),
		EventType:   ev.EventType,
		Details:     ev.Details,
		Temperature: clampInt64(ev.Temperature),
		Timestamp:   ev.Timestamp,
		Actor:       ev.Actor.Hex(),
		TxHash:      lg.TxHash.Hex(),
		BlockNumber: lg.BlockNumber,
		LogIndex:    lg.Index,
		BlockTime:   blockTime,
	}
	d.log.Debugf("batch event: batch=%s type=%s tx=%s block=%d", row.BatchID, row.EventType, row.TxHash, row.BlockNumber)

	req := writeRequest{
		name: "batch_event",
		apply: func(ctx context.Context, repo Repo) error {
			return repo.UpsertBatchEvent(ctx, row)
		},
	}
	return []writeRequest{req}, nil
}

func clampInt64(v *big.Int) int64 {
	switch {
	case v == nil:
		return 0
	case v.IsInt64():
		return v.Int64()
	case v.Sign() > 0:
		return math.MaxInt64
	default:
		return math.MinInt64
	}
}
