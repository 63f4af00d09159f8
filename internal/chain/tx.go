package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type TxOptions struct {
	GasLimit             uint64
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	Value                *big.Int
}

// BuildClaimTx returns the unsigned dynamic fee transaction. Gas and fee
// fields are taken from opts as is, no estimation or fee suggestion happens.
func BuildClaimTx(chainID *big.Int, nonce uint64, contract common.Address, data []byte, opts TxOptions) *types.Transaction {
	value := opts.Value
	if value == nil {
		value = new(big.Int)
	}
	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: opts.MaxPriorityFeePerGas,
		GasFeeCap: opts.MaxFeePerGas,
		Gas:       opts.GasLimit,
		To:        &contract,
		Value:     value,
		Data:      data,
	})
}

func EstimateClaimGas(ctx context.Context, b Backend, from, contract common.Address, data []byte, opts TxOptions) (uint64, error) {
	return b.EstimateGas(ctx, ethereum.CallMsg{
		From:      from,
		To:        &contract,
		GasFeeCap: opts.MaxFeePerGas,
		GasTipCap: opts.MaxPriorityFeePerGas,
		Value:     opts.Value,
		Data:      data,
	})
}

// WaitMined blocks until tx is included or ctx is done.
func WaitMined(ctx context.Context, b Backend, tx *types.Transaction) (*types.Receipt, error) {
	return bind.WaitMined(ctx, b, tx)
}
