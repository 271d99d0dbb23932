package pipeline

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Indexer follows BatchEventLog emissions of one contract and persists them
// through Repo. Logs flow subscriber -> decoders -> writers.
type Indexer struct {
	cfg        Config
	repo       Repo
	log        *zap.SugaredLogger
	decoder    *decoder
	subscriber *logSubscriber
}

func New(cfg Config, repo Repo, client EthClient, log *zap.SugaredLogger) *Indexer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	d := newDecoder(cfg, client, log)
	return &Indexer{
		cfg:        cfg,
		repo:       repo,
		log:        log,
		decoder:    d,
		subscriber: newLogSubscriber(cfg, repo, client, d.topicsList(), log),
	}
}

func (i *Indexer) Run(ctx context.Context) error {
	i.log.Infof("indexer starting: chain=%d contract=%s from=%d", i.cfg.ChainID, i.cfg.Contract.Hex(), i.cfg.DeploymentBlock)
	g, ctx := errgroup.WithContext(ctx)

	decodeCh := make(chan logJob, i.cfg.decodeWorkerCount()*32)
	writeCh := make(chan writeRequest, i.cfg.writeWorkerCount()*16)

	g.Go(func() error {
		defer close(decodeCh)
		return i.subscriber.stream(ctx, decodeCh)
	})

	var decodeWG sync.WaitGroup
	for n := 0; n < i.cfg.decodeWorkerCount(); n++ {
		decodeWG.Add(1)
		g.Go(func() error {
			defer decodeWG.Done()
			return i.runDecodeWorker(ctx, decodeCh, writeCh)
		})
	}
	g.Go(func() error {
		decodeWG.Wait()
		close(writeCh)
		return nil
	})

	for n := 0; n < i.cfg.writeWorkerCount(); n++ {
		g.Go(func() error {
			return i.runWriteWorker(ctx, writeCh)
		})
	}

	if err := g.Wait(); err != nil {
		i.log.Infof("indexer stopped: %v", err)
		return err
	}
	i.log.Info("indexer stopped cleanly")
	return nil
}

func (i *Indexer) runDecodeWorker(ctx context.Context, in <-chan logJob, out chan<- writeRequest) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case job, ok := <-in:
			if !ok {
				return nil
			}
			lg := job.log
			reqs, err := i.decoder.decode(ctx, lg)
			if err != nil {
				i.log.Errorf("decode failed: block=%d tx=%s index=%d err=%v", lg.BlockNumber, lg.TxHash.Hex(), lg.Index, err)
				job.ack.fail()
				return err
			}
			job.ack.add(len(reqs))
			job.ack.release()
			for _, req := range reqs {
				req.ack = job.ack
				select {
				case <-ctx.Done():
					return ctx.Err()
				case out <- req:
				}
			}
		}
	}
}

// runWriteWorker drains in even after cancellation so decoded rows are not lost.
func (i *Indexer) runWriteWorker(ctx context.Context, in <-chan writeRequest) error {
	for req := range in {
		if req.apply == nil {
			req.ack.release()
			continue
		}
		callCtx := ctx
		if ctx.Err() != nil {
			callCtx = context.WithoutCancel(ctx)
		}
		if err := req.apply(callCtx, i.repo); err != nil {
			i.log.Errorf("write %s failed: %v", req.name, err)
			req.ack.fail()
			req.ack.release()
			return err
		}
		req.ack.release()
	}
	return ctx.Err()
}

type writeRequest struct {
	name  string
	apply func(context.Context, Repo) error
	// ack is released once apply has run; nil outside the subscriber path.
	ack *chunkAck
}
