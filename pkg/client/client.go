package client

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fero-tech/claimrunner/common/utils"
	"github.com/fero-tech/claimrunner/internal/chain"
	"github.com/pkg/errors"
)

type AccountInfo struct {
	Address      common.Address `json:"address"`
	ChainId      *big.Int       `json:"chain_id"`
	CurrentBlock uint64         `json:"current_block"`
	Balance      *big.Int       `json:"balance"`
}

func (i *AccountInfo) BalanceEther() string {
	return utils.FormatEther(i.Balance)
}

// Info reads the network and balance details of address. It sends nothing.
func Info(ctx context.Context, backend chain.Backend, address common.Address) (*AccountInfo, error) {
	chainId, err := backend.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chain id")
	}
	block, err := backend.BlockNumber(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block number")
	}
	balance, err := backend.BalanceAt(ctx, address, nil)
	if err != nil {
		return nil, errors.Wrap(err, "balance")
	}
	return &AccountInfo{
		Address:      address,
		ChainId:      chainId,
		CurrentBlock: block,
		Balance:      balance,
	}, nil
}
