/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/fero-tech/claimrunner/common/apperror"
	"github.com/fero-tech/claimrunner/internal/chain"
	"github.com/fero-tech/claimrunner/internal/crypto"
	"github.com/fero-tech/claimrunner/pkg/client"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the signer address, network and balance without sending anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok := configFrom(cmd)
		if !ok {
			return nil
		}
		if cfg.PrivateKey == "" {
			apperror.Report(logger, apperror.Configuration("PRIVATE_KEY is not set").
				WithHint("set PRIVATE_KEY in the environment or in a .env file"))
			return nil
		}
		signer, err := crypto.LoadSigner(cfg.PrivateKey)
		if err != nil {
			apperror.Report(logger, apperror.Configuration(err.Error()))
			return nil
		}
		backend, err := chain.Dial(cmd.Context(), cfg.RPCURL)
		if err != nil {
			apperror.Report(logger, apperror.Network("dial "+cfg.RPCURL, err))
			return nil
		}
		defer backend.Close()

		info, err := client.Info(cmd.Context(), backend, signer.Address)
		if err != nil {
			apperror.Report(logger, err)
			return nil
		}
		logger.WithFields(logrus.Fields{
			"address": info.Address.Hex(),
			"chainId": info.ChainId,
			"block":   info.CurrentBlock,
			"balance": info.BalanceEther(),
		}).Info("account")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
