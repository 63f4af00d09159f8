/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"os"

	"github.com/fero-tech/claimrunner/common/apperror"
	"github.com/fero-tech/claimrunner/common/constants"
	"github.com/fero-tech/claimrunner/configs"
	"github.com/fero-tech/claimrunner/pkg/log"
	"github.com/spf13/cobra"
)

var logger = &log.Logger

var envFile string

var rootCmd = &cobra.Command{
	Use:   "claimrunner",
	Short: "Claim an airdrop allocation with a merkle proof",
	Long: `claimrunner sends a single claim transaction to the airdrop contract
using the key in PRIVATE_KEY and the proof saved in the claim data file.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runClaim,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")
	configs.RegisterFlags(rootCmd.PersistentFlags())
}

// loadConfig puts the configuration in the command context. A bad
// configuration is reported like any other claim error and ends the run
// without an error exit.
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := configs.Load(envFile, cmd.Flags())
	if err != nil {
		apperror.Report(logger, err)
		cmd.SetContext(context.WithValue(cmd.Context(), constants.ConfigKey, (*configs.ClaimConfiguration)(nil)))
		return nil
	}
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		logger.Warnf("ignoring log level %q: %v", cfg.LogLevel, err)
	}
	cmd.SetContext(context.WithValue(cmd.Context(), constants.ConfigKey, cfg))
	return nil
}

func configFrom(cmd *cobra.Command) (*configs.ClaimConfiguration, bool) {
	cfg, ok := cmd.Context().Value(constants.ConfigKey).(*configs.ClaimConfiguration)
	return cfg, ok && cfg != nil
}
