package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/chain"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/config"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	signerKey  string

	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ftctl",
		Short: "Maintenance tool for the food traceability contract",
		Long: `ftctl inspects and administers the deployed supply-chain contract.

Connection settings come from the same environment (and .env file) as the
server: CHAIN_RPC_URL, CONTRACT_ADDRESS, CONTRACT_ABI_PATH, SIGNER_PRIVATE_KEY.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LogConfig{Level: "warn", Format: "console"}
			if verbose {
				cfg.Level = "debug"
			}
			var err error
			logger, err = logging.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")

	root.AddCommand(
		newCheckSizeCmd(),
		newSyncDeploymentCmd(),
		newCheckContractCmd(),
		newGrantRoleCmd(),
		newRevokeRoleCmd(),
		newCreateBatchCmd(),
		newRolesCmd(),
		newBatchesCmd(),
		newBatchCmd(),
		newScoreCmd(),
		newWatchCmd(),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func sugar(name string) *zap.SugaredLogger {
	return logging.Named(logger, name)
}

// dial opens the contract connection described by the environment and, when
// withSigner is set, installs the signing key.
func dial(ctx context.Context, withSigner bool) (*chain.Conn, config.Config, error) {
	cfg, err := config.LoadCLI()
	if err != nil {
		return nil, cfg, err
	}
	conn, err := chain.Dial(ctx, chain.Options{
		RPCURL:          cfg.Chain.RPCURL,
		ContractAddress: cfg.Chain.ContractAddress,
		ABIPath:         cfg.Chain.ABIPath,
		ExpectedChainID: cfg.Chain.ChainID,
		TxTimeout:       cfg.Chain.TxTimeout,
	}, sugar("chain"))
	if err != nil {
		return nil, cfg, err
	}
	if withSigner {
		key := signerKey
		if key == "" {
			key = cfg.Chain.SignerKey
		}
		if key == "" {
			conn.Close()
			return nil, cfg, fmt.Errorf("%w: set SIGNER_PRIVATE_KEY or --key", chain.ErrNoSigner)
		}
		if _, err := conn.Connect(ctx, key); err != nil {
			conn.Close()
			return nil, cfg, err
		}
	}
	return conn, cfg, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
