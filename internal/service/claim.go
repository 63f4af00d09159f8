package service

import (
	"context"
	"errors"

	"github.com/fero-tech/claimrunner/common/apperror"
	"github.com/fero-tech/claimrunner/common/utils"
	"github.com/fero-tech/claimrunner/configs"
	"github.com/fero-tech/claimrunner/entities"
	"github.com/fero-tech/claimrunner/internal/chain"
	"github.com/fero-tech/claimrunner/internal/crypto"
	"github.com/fero-tech/claimrunner/pkg/client"
	"github.com/fero-tech/claimrunner/pkg/log"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var logger = &log.Logger

// ErrTransactionFailed is returned when the claim was mined with a failed status.
var ErrTransactionFailed = errors.New("claim transaction failed")

type ClaimRunner struct {
	cfg    *configs.ClaimConfiguration
	claim  *entities.ClaimData
	dial   chain.DialFunc
	logger *logrus.Logger
}

type Option func(*ClaimRunner)

func WithDialer(dial chain.DialFunc) Option {
	return func(r *ClaimRunner) { r.dial = dial }
}

func WithLogger(l *logrus.Logger) Option {
	return func(r *ClaimRunner) { r.logger = l }
}

// WithClaimData skips reading cfg.ClaimDataFile.
func WithClaimData(c *entities.ClaimData) Option {
	return func(r *ClaimRunner) { r.claim = c }
}

func NewClaimRunner(cfg *configs.ClaimConfiguration, opts ...Option) *ClaimRunner {
	r := &ClaimRunner{cfg: cfg, dial: chain.Dial, logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run submits the claim once and waits for it to be mined.
func (r *ClaimRunner) Run(ctx context.Context) (*entities.ClaimReceipt, error) {
	var receipt *entities.ClaimReceipt
	err := utils.RunWithTimeout(ctx, r.cfg.Timeout, func(ctx context.Context) error {
		var err error
		receipt, err = r.run(ctx)
		return err
	})
	return receipt, err
}

func (r *ClaimRunner) run(ctx context.Context) (*entities.ClaimReceipt, error) {
	if r.cfg.PrivateKey == "" {
		return nil, apperror.Configuration("PRIVATE_KEY is not set").
			WithHint("set PRIVATE_KEY in the environment or in a .env file")
	}
	signer, err := crypto.LoadSigner(r.cfg.PrivateKey)
	if err != nil {
		return nil, apperror.Configuration(err.Error())
	}
	claim := r.claim
	if claim == nil {
		if claim, err = entities.LoadClaimData(r.cfg.ClaimDataFile); err != nil {
			return nil, apperror.Configuration(err.Error()).
				WithHint("copy claim.example.json to " + r.cfg.ClaimDataFile + " and fill in your claim data, or point CLAIM_DATA_FILE at it")
		}
	}

	backend, err := r.dial(ctx, r.cfg.RPCURL)
	if err != nil {
		return nil, apperror.Network("dial "+r.cfg.RPCURL, err)
	}
	defer backend.Close()

	r.logger.WithField("address", signer.Address.Hex()).Info("wallet address")

	info, err := client.Info(ctx, backend, signer.Address)
	if err != nil {
		return nil, err
	}
	if expected := r.cfg.ExpectedChainID(); expected != nil && expected.Cmp(info.ChainId) != 0 {
		return nil, apperror.Configuration("endpoint is on chain " + info.ChainId.String() + ", expected " + expected.String()).
			WithHint("check RPC_URL and CLAIM_NETWORK")
	}
	r.logger.WithFields(logrus.Fields{
		"balance": info.BalanceEther(),
		"chainId": info.ChainId,
		"block":   info.CurrentBlock,
	}).Info("ETH balance")

	params, err := claim.Params(signer.Address)
	if err != nil {
		return nil, apperror.Configuration("claim data: " + err.Error())
	}
	if claim.Address != nil && *claim.Address != signer.Address {
		r.logger.WithField("payload", claim.Address.Hex()).Warn("claim data names another address, claiming to the signer")
	}
	r.logger.WithFields(logrus.Fields{
		"to":       params.To.Hex(),
		"amount":   utils.FormatEther(params.Amount),
		"proofs":   len(params.Proof),
		"season":   params.Season,
		"duration": params.Duration,
	}).Info("claim parameters")

	data, err := chain.PackClaim(params)
	if err != nil {
		return nil, apperror.Configuration("encode claim: " + err.Error())
	}
	opts := r.cfg.TxOptions()
	contract := r.cfg.Contract()

	if r.cfg.Estimate {
		gas, err := chain.EstimateClaimGas(ctx, backend, signer.Address, contract, data, opts)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "estimate gas")
		}
		r.logger.WithFields(logrus.Fields{"estimate": gas, "limit": opts.GasLimit}).Info("gas estimate")
		if gas > opts.GasLimit {
			r.logger.Warn("estimate is above the configured gas limit")
		}
	}

	nonce, err := backend.PendingNonceAt(ctx, signer.Address)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "pending nonce")
	}
	tx, err := signer.SignTx(chain.BuildClaimTx(info.ChainId, nonce, contract, data, opts), info.ChainId)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "sign claim")
	}

	r.logger.WithFields(logrus.Fields{
		"gasLimit":    opts.GasLimit,
		"maxFee":      utils.FormatGwei(opts.MaxFeePerGas),
		"priorityFee": utils.FormatGwei(opts.MaxPriorityFeePerGas),
		"value":       utils.FormatEther(opts.Value),
	}).Info("sending claim transaction")
	if err := backend.SendTransaction(ctx, tx); err != nil {
		return nil, pkgerrors.Wrap(err, "send claim")
	}
	r.logger.WithField("hash", tx.Hash().Hex()).Info("transaction sent, waiting for confirmation")

	mined, err := chain.WaitMined(ctx, backend, tx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			r.logger.WithField("hash", tx.Hash().Hex()).Warn("transaction still pending")
		}
		return nil, pkgerrors.Wrapf(err, "wait for receipt of %s", tx.Hash().Hex())
	}
	receipt := entities.NewClaimReceipt(mined)
	if !receipt.Succeeded() {
		r.logger.WithField("hash", tx.Hash().Hex()).Error("transaction failed")
		return receipt, apperror.CallException("transaction execution reverted", ErrTransactionFailed)
	}

	fields := logrus.Fields{
		"block":   receipt.BlockNumber,
		"gasUsed": receipt.GasUsed,
	}
	if fee := receipt.Fee(); fee != nil {
		fields["fee"] = utils.FormatEther(fee)
	}
	r.logger.WithFields(fields).Info("claim confirmed")
	return receipt, nil
}
