package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	docs "github.com/Sauravgopinathek/Food-Supply-Chain/docs"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/auth"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/chain"
	cfgpkg "github.com/Sauravgopinathek/Food-Supply-Chain/internal/config"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/feedback"
	pipeline "github.com/Sauravgopinathek/Food-Supply-Chain/internal/indexer/pipeline"
	indexersvc "github.com/Sauravgopinathek/Food-Supply-Chain/internal/indexer/service"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/logging"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/score"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/server"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/store"
)

// @title FoodTrace Backend API
// @version 1.0
// @description Batch traceability, contract roles and local reputation for the food supply chain.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, cfgErr := cfgpkg.Load()
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Title = "FoodTrace Backend API"
	docs.SwaggerInfo.Description = "Batch traceability, contract roles and local reputation for the food supply chain."
	docs.SwaggerInfo.BasePath = "/"
	root, err := logging.New(cfg.Log)
	if err != nil {
		root = zap.Must(zap.NewProduction())
		root.Fatal("build logger", zap.Error(err))
	}
	defer func() { _ = root.Sync() }()
	logger := root.Sugar()
	if cfgErr != nil {
		logger.Fatalf("config: %v", cfgErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := store.OpenSQLite(cfg.Database.SQLiteDSN, root)
	if err := store.AutoMigrate(db); err != nil {
		logger.Fatalf("migrate: %v", err)
	}
	repo := store.NewRepository(db).WithMaxValueBytes(cfg.Database.MaxValueBytes)

	conn, err := chain.Dial(ctx, chain.Options{
		RPCURL:          cfg.Chain.RPCURL,
		ContractAddress: cfg.Chain.ContractAddress,
		ABIPath:         cfg.Chain.ABIPath,
		ExpectedChainID: cfg.Chain.ChainID,
		TxTimeout:       cfg.Chain.TxTimeout,
	}, logging.Named(root, "chain"))
	if err != nil {
		logger.Fatalf("failed to connect chain rpc: %v", err)
	}
	defer conn.Close()
	if cfg.Chain.SignerKey != "" {
		if _, err := conn.Connect(ctx, cfg.Chain.SignerKey); err != nil {
			logger.Fatalf("signer: %v", err)
		}
	} else {
		logger.Warn("SIGNER_PRIVATE_KEY not set; write endpoints will fail")
	}

	bounds := score.Bounds{Min: cfg.Reputation.Min, Max: cfg.Reputation.Max}
	chainSvc := chain.NewService(conn, bounds, cfg.Chain.DeployBlock, logging.Named(root, "contract"))

	feedbackLog := logging.Named(root, "feedback")
	sellers := feedback.NewSellerFeedback(repo, feedbackLog)
	dealers := feedback.NewDealerReviews(repo, feedbackLog)
	buyers := feedback.NewBuyerHistory(repo, feedbackLog)
	scores := score.NewService(chainSvc, sellers, dealers, bounds)

	hub := server.NewEventHub(logging.Named(root, "events"))
	go hub.Run(ctx)

	deps := server.Deps{
		Config:          cfg,
		ContractAddress: conn.Address().Hex(),
		Auth:            auth.NewService(cfg.Auth),
		Batches:         chainSvc,
		Scores:          scores,
		Heads:           conn.Backend(),
		Sellers:         sellers,
		Dealers:         dealers,
		Buyers:          buyers,
		Hub:             hub,
		Log:             logging.Named(root, "http"),
	}

	if cfg.Indexer.Enabled {
		parsed := conn.ABI()
		idx := pipeline.New(pipeline.Config{
			ChainID:           conn.ChainID().Uint64(),
			Contract:          conn.Address(),
			ABI:               &parsed,
			DeploymentBlock:   cfg.Chain.DeployBlock,
			ChunkSize:         cfg.Indexer.ChunkSize,
			Confirmations:     cfg.Indexer.Confirmations,
			PollInterval:      cfg.Indexer.PollInterval,
			DecodeWorkerCount: cfg.Indexer.DecodeWorkers,
			WriteWorkerCount:  cfg.Indexer.WriteWorkers,
			ResubscribeDelay:  cfg.Indexer.RetryDelay,
		}, pipeline.NewStoreAdapter(repo, hub), conn.Backend(), logging.Named(root, "indexer"))
		deps.Index = indexersvc.NewReader(repo)
		go func() {
			if err := idx.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Errorf("indexer stopped: %v", err)
			}
		}()
	}

	blocks := chain.WatchBlocks(ctx, conn.Backend(), cfg.Watcher.PollInterval, hub.PublishBlock, logging.Named(root, "blocks"))
	defer blocks.Cancel()

	srv := server.NewHTTP(cfg.Server.HTTPAddr, server.NewRouter(deps))
	go func() {
		logger.Infow("http listening", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.Start(); err != nil {
			logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(shutdown)
}
