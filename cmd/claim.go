/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"strings"

	"github.com/fero-tech/claimrunner/common/apperror"
	"github.com/fero-tech/claimrunner/internal/service"
	"github.com/spf13/cobra"
)

var claimCmd = &cobra.Command{
	Use:   "claim",
	Short: "Send the claim transaction and wait for it to be mined",
	RunE:  runClaim,
}

func init() {
	rootCmd.AddCommand(claimCmd)
}

// runClaim never returns an error: failures are logged and the process
// exits normally.
func runClaim(cmd *cobra.Command, args []string) error {
	cfg, ok := configFrom(cmd)
	if !ok {
		return nil
	}
	logger.Info("airdrop claim")
	logger.WithField("contract", cfg.Contract().Hex()).Info("contract address")
	logger.Info(strings.Repeat("=", 50))

	if _, err := service.NewClaimRunner(cfg).Run(cmd.Context()); err != nil {
		apperror.Report(logger, err)
	}
	return nil
}
