package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/chain"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/deploy"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/feedback"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/score"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/store"
)

func newCheckContractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-contract",
		Short: "Verify code is deployed at CONTRACT_ADDRESS and answers getBatchCount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, _, err := dial(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer conn.Close()
			report, err := deploy.CheckContract(cmd.Context(), conn.Backend(), conn.Contract(), conn.Address(), conn.ABI())
			if report != nil {
				out := cmd.OutOrStdout()
				if jsonOutput {
					_ = printJSON(out, report)
				} else {
					fmt.Fprintf(out, "chain id:        %s\n", report.ChainID)
					fmt.Fprintf(out, "contract:        %s\n", report.Address)
					fmt.Fprintf(out, "bytecode length: %s\n", humanize.Bytes(uint64(report.CodeBytes)))
					fmt.Fprintf(out, "abi functions:   %d\n", len(report.Functions))
					if len(report.MissingMethods) > 0 {
						fmt.Fprintf(out, "missing:         %s\n", strings.Join(report.MissingMethods, ", "))
					}
					switch {
					case report.BatchCount != nil:
						fmt.Fprintf(out, "getBatchCount -> %s\n", *report.BatchCount)
					case report.BatchCountErr != "":
						fmt.Fprintf(out, "getBatchCount failed: %s\n", report.BatchCountErr)
					}
				}
			}
			return err
		},
	}
}

func roleCommand(use, short string, apply func(*chain.Service, context.Context, string, string) (*chain.TxReceipt, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <ROLE> <address>",
		Short: short,
		Long:  "Roles: " + strings.Join(chain.RoleKeys(), ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, cfg, err := dial(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer conn.Close()
			svc := chain.NewService(conn, bounds(cfg.Reputation.Min, cfg.Reputation.Max), cfg.Chain.DeployBlock, sugar("contract"))
			receipt, err := apply(svc, cmd.Context(), strings.ToUpper(args[0]), args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(out, receipt)
			}
			fmt.Fprintf(out, "tx %s mined in block %d (gas %s)\n", receipt.TxHash, receipt.BlockNumber, receipt.GasUsed)
			return nil
		},
	}
	cmd.Flags().StringVar(&signerKey, "key", "", "hex private key (defaults to SIGNER_PRIVATE_KEY)")
	return cmd
}

func newGrantRoleCmd() *cobra.Command {
	return roleCommand("grant-role", "Grant a contract role; the signer must hold ADMIN_ROLE", (*chain.Service).GrantRole)
}

func newRevokeRoleCmd() *cobra.Command {
	return roleCommand("revoke-role", "Revoke a contract role", (*chain.Service).RevokeRole)
}

func newCreateBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-batch <name> <details>",
		Short: "Record a new batch; the signer must hold PROCESSOR_ROLE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, details := strings.TrimSpace(args[0]), strings.TrimSpace(args[1])
			if name == "" || details == "" {
				return fmt.Errorf("%w: batch name and details", chain.ErrMissingArgument)
			}
			conn, cfg, err := dial(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer conn.Close()
			svc := chain.NewService(conn, bounds(cfg.Reputation.Min, cfg.Reputation.Max), cfg.Chain.DeployBlock, sugar("contract"))
			res, err := svc.CreateBatch(cmd.Context(), name, details)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(out, res)
			}
			id := "unknown"
			if res.BatchID != nil {
				id = *res.BatchID
			}
			fmt.Fprintf(out, "batch %s created in tx %s (block %d)\n", id, res.TxHash, res.BlockNumber)
			return nil
		},
	}
	cmd.Flags().StringVar(&signerKey, "key", "", "hex private key (defaults to SIGNER_PRIVATE_KEY)")
	return cmd
}

func bounds(lo, hi int64) score.Bounds {
	return score.Bounds{Min: lo, Max: hi}
}

func readService(cmd *cobra.Command) (*chain.Service, func(), error) {
	conn, cfg, err := dial(cmd.Context(), false)
	if err != nil {
		return nil, nil, err
	}
	svc := chain.NewService(conn, bounds(cfg.Reputation.Min, cfg.Reputation.Max), cfg.Chain.DeployBlock, sugar("contract"))
	return svc, conn.Close, nil
}

func newRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles <address>",
		Short: "Show which contract roles an address holds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := readService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()
			roles := svc.UserRoles(cmd.Context(), args[0])
			out := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(out, roles)
			}
			fmt.Fprintf(out, "%s\n", chain.FormatAddress(args[0]))
			fmt.Fprintf(out, "  admin:       %t\n", roles.IsAdmin)
			fmt.Fprintf(out, "  processor:   %t\n", roles.IsProcessor)
			fmt.Fprintf(out, "  distributor: %t\n", roles.IsDistributor)
			fmt.Fprintf(out, "  retailer:    %t\n", roles.IsRetailer)
			fmt.Fprintf(out, "  oracle:      %t\n", roles.IsOracle)
			return nil
		},
	}
}

func newBatchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batches",
		Short: "List every batch known to the contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := readService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()
			records, err := svc.QueryBatches(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(out, records)
			}
			if len(records) == 0 {
				fmt.Fprintln(out, "no batches")
				return nil
			}
			for _, r := range records {
				fmt.Fprintf(out, "#%-6s %-12s %s\n", r.BatchID, r.StatusLabel, created(r))
			}
			return nil
		},
	}
}

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <id>",
		Short: "Show one batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := readService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()
			r, err := svc.GetBatchDetails(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(out, r)
			}
			fmt.Fprintf(out, "batch #%s\n", r.BatchID)
			fmt.Fprintf(out, "  status:    %s\n", r.StatusLabel)
			fmt.Fprintf(out, "  created:   %s\n", created(*r))
			fmt.Fprintf(out, "  processor: %s\n", deref(r.Processor))
			fmt.Fprintf(out, "  owner:     %s\n", deref(r.CurrentOwner))
			if r.IsCompromised != nil && *r.IsCompromised {
				fmt.Fprintln(out, "  COMPROMISED")
			}
			return nil
		},
	}
}

func created(r chain.BatchRecord) string {
	if r.CreationDate == nil {
		return "unknown"
	}
	return fmt.Sprintf("%s (%s)", r.CreationDate.Format(time.RFC3339), humanize.Time(*r.CreationDate))
}

func deref(s *string) string {
	if s == nil {
		return "unknown"
	}
	return *s
}

func newScoreCmd() *cobra.Command {
	var dealer bool
	cmd := &cobra.Command{
		Use:   "score <address>",
		Short: "Composite reputation of a seller (or dealer) from chain and local reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, cfg, err := dial(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer conn.Close()
			b := bounds(cfg.Reputation.Min, cfg.Reputation.Max)
			svc := chain.NewService(conn, b, cfg.Chain.DeployBlock, sugar("contract"))

			db := store.OpenSQLite(cfg.Database.SQLiteDSN, logger)
			if err := store.AutoMigrate(db); err != nil {
				return err
			}
			repo := store.NewRepository(db)
			scores := score.NewService(svc, feedback.NewSellerFeedback(repo, sugar("feedback")), feedback.NewDealerReviews(repo, sugar("feedback")), b)

			summary := summarize(cmd.Context(), scores, args[0], dealer)
			out := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(out, summary)
			}
			fmt.Fprintf(out, "%s\n", chain.FormatAddress(summary.Address))
			fmt.Fprintf(out, "  on-chain reputation: %s\n", orNA(summary.Reputation))
			fmt.Fprintf(out, "  on-chain score:      %s\n", intOrNA(summary.OnchainScore))
			fmt.Fprintf(out, "  local reviews:       %d\n", summary.ReviewCount)
			if summary.LocalAverage != nil {
				fmt.Fprintf(out, "  local average:       %.2f\n", *summary.LocalAverage)
			}
			fmt.Fprintf(out, "  composite:           %s\n", intOrNA(summary.Composite))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dealer, "dealer", false, "use dealer reviews instead of seller feedback")
	return cmd
}

type scorer interface {
	Seller(ctx context.Context, address string) score.Summary
	Dealer(ctx context.Context, address string) score.Summary
}

// summarize runs only the score the caller asked for.
func summarize(ctx context.Context, s scorer, address string, dealer bool) score.Summary {
	if dealer {
		return s.Dealer(ctx, address)
	}
	return s.Seller(ctx, address)
}

func orNA(s *string) string {
	if s == nil {
		return "n/a"
	}
	return *s
}

func intOrNA(v *int) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprint(*v)
}

func newWatchCmd() *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print new blocks until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, cfg, err := dial(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer conn.Close()
			if interval <= 0 {
				interval = cfg.Watcher.PollInterval
			}
			out := cmd.OutOrStdout()
			sub := chain.WatchBlocks(cmd.Context(), conn.Backend(), interval, func(_ context.Context, head *types.Header) error {
				ts := time.Unix(int64(head.Time), 0)
				fmt.Fprintf(out, "block %s  %s  %s\n", humanize.Comma(head.Number.Int64()), head.Hash().Hex(), humanize.Time(ts))
				return nil
			}, sugar("blocks"))
			<-sub.Done()
			sub.Cancel()
			if err := sub.Err(); err != nil && cmd.Context().Err() == nil {
				return err
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "poll interval (defaults to BLOCK_POLL_INTERVAL)")
	return cmd
}
