package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/deploy"
)

func newCheckSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-size <artifact.json>",
		Short: "Report init and runtime bytecode size against EIP-170",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			artifact, err := deploy.ReadArtifact(args[0])
			if err != nil {
				return fmt.Errorf("could not read artifact: %w", err)
			}
			report, err := deploy.CheckSize(artifact)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(out, report)
			}
			name := report.Contract
			if name == "" {
				name = args[0]
			}
			fmt.Fprintf(out, "Contract: %s\n", name)
			fmt.Fprintf(out, "  init code size:    %d bytes\n", report.InitBytes)
			fmt.Fprintf(out, "  runtime code size: %d bytes\n", report.RuntimeBytes)
			if report.ExceedsEIP170 {
				fmt.Fprintf(out, "  WARNING: runtime bytecode exceeds the EIP-170 limit (%d bytes)\n", deploy.EIP170Limit)
			} else {
				fmt.Fprintln(out, "  runtime bytecode is within EIP-170 limits")
			}
			if report.LargeInitCode {
				fmt.Fprintf(out, "  WARNING: init code is larger than %d bytes; gas estimation may fail\n", deploy.InitCodeWarn)
			}
			return nil
		},
	}
}

func newSyncDeploymentCmd() *cobra.Command {
	var envPath string
	cmd := &cobra.Command{
		Use:   "sync-deployment <deployment.json>",
		Short: "Copy the deployed contract address into an env file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := deploy.ReadManifest(args[0])
			if err != nil {
				return err
			}
			addr, err := manifest.ResolvedAddress()
			if err != nil {
				return err
			}
			changed, err := deploy.SyncEnv(envPath, deploy.ContractAddressKey, addr.Hex())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !changed {
				fmt.Fprintf(out, "%s already set to %s in %s\n", deploy.ContractAddressKey, addr.Hex(), envPath)
				return nil
			}
			fmt.Fprintf(out, "Updated %s in %s -> %s\n", deploy.ContractAddressKey, envPath, addr.Hex())
			fmt.Fprintln(out, "Restart the server to pick up the new address.")
			return nil
		},
	}
	cmd.Flags().StringVar(&envPath, "env", ".env", "env file to update")
	return cmd
}
