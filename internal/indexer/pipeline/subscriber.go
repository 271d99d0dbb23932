package pipeline

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/store"
)

// position is the last log handed to the decoders.
type position struct {
	block    uint64
	txHash   string
	logIndex uint
}

type logSubscriber struct {
	cfg    Config
	repo   Repo
	client EthClient
	topics []common.Hash
	log    *zap.SugaredLogger
}

func newLogSubscriber(cfg Config, repo Repo, client EthClient, topics []common.Hash, log *zap.SugaredLogger) *logSubscriber {
	return &logSubscriber{
		cfg:    cfg,
		repo:   repo,
		client: client,
		topics: topics,
		log:    log,
	}
}

func (s *logSubscriber) cursorKey() string {
	return s.cfg.Contract.Hex()
}

func (s *logSubscriber) restore(ctx context.Context) (position, uint64, error) {
	var pos position
	cursor, err := s.repo.GetLogCursor(ctx, s.cfg.ChainID, s.cursorKey())
	if err != nil {
		return pos, 0, err
	}
	start := s.cfg.DeploymentBlock
	if cursor != nil {
		pos = position{block: cursor.LastBlock, txHash: cursor.LastTxHash, logIndex: cursor.LastLogIndex}
		s.log.Infof("cursor restored: lastBlock=%d lastTx=%s lastLogIndex=%d", pos.block, pos.txHash, pos.logIndex)
		if pos.block > 0 && pos.block >= start {
			start = pos.block + 1
		}
	}
	return pos, start, nil
}

func (s *logSubscriber) stream(ctx context.Context, out chan<- logJob) error {
	pos, next, err := s.restore(ctx)
	if err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		safeHead, err := s.safeHead(ctx)
		if err != nil {
			if isCtxErr(err) {
				return err
			}
			s.log.Warnf("failed to fetch head: %v", err)
			if err := sleepCtx(ctx, s.cfg.resubscribeDelay()); err != nil {
				return err
			}
			continue
		}

		if safeHead < next {
			s.log.Debugf("waiting for safe head: next=%d safeHead=%d", next, safeHead)
			if err := sleepCtx(ctx, s.cfg.pollInterval()); err != nil {
				return err
			}
			continue
		}

		for next <= safeHead {
			to := next + s.cfg.chunkSize() - 1
			if to > safeHead {
				to = safeHead
			}
			if err := s.forward(ctx, next, to, &pos, out); err != nil {
				if isCtxErr(err) || errors.Is(err, errCursor) {
					return err
				}
				s.log.Warnf("filter logs %d-%d failed: %v", next, to, err)
				if err := sleepCtx(ctx, s.cfg.resubscribeDelay()); err != nil {
					return err
				}
				break
			}
			next = to + 1
		}

		if err := sleepCtx(ctx, s.cfg.pollInterval()); err != nil {
			return err
		}
	}
}

var errCursor = errors.New("persist log cursor")

// forward ships the matching logs of [from, to], waits until the writers have
// stored all of them, and only then advances the cursor to to.
func (s *logSubscriber) forward(ctx context.Context, from, to uint64, pos *position, out chan<- logJob) error {
	logs, err := s.client.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: []common.Address{s.cfg.Contract},
		Topics:    [][]common.Hash{s.topics},
	})
	if err != nil {
		return err
	}

	ack := newChunkAck()
	next := *pos
	matched := 0
	for _, lg := range logs {
		if lg.Removed || len(lg.Topics) == 0 || !s.handlesTopic(lg.Topics[0]) {
			continue
		}
		ack.add(1)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- logJob{log: lg, ack: ack}:
		}
		matched++
		next = position{block: lg.BlockNumber, txHash: lg.TxHash.Hex(), logIndex: lg.Index}
	}
	if next.block < to {
		next.block = to
	}
	s.log.Debugf("fetched logs: from=%d to=%d total=%d matched=%d", from, to, len(logs), matched)

	ack.release()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-ack.done:
	}
	if ack.failed.Load() {
		// The failing worker's error cancels ctx and is what Run returns.
		<-ctx.Done()
		return ctx.Err()
	}
	*pos = next

	if err := s.repo.UpsertLogCursor(ctx, &store.LogCursor{
		ChainID:      s.cfg.ChainID,
		Address:      s.cursorKey(),
		LastBlock:    pos.block,
		LastTxHash:   pos.txHash,
		LastLogIndex: pos.logIndex,
	}); err != nil {
		return errors.Join(errCursor, err)
	}
	return nil
}

func (s *logSubscriber) safeHead(ctx context.Context) (uint64, error) {
	head, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, err
	}
	if head.Number == nil {
		return 0, nil
	}
	n := head.Number.Uint64()
	if n <= s.cfg.confirmations() {
		return 0, nil
	}
	return n - s.cfg.confirmations(), nil
}

func (s *logSubscriber) handlesTopic(topic common.Hash) bool {
	for _, t := range s.topics {
		if t == topic {
			return true
		}
	}
	return false
}

func isCtxErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
