package entities

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/fero-tech/claimrunner/common/constants"
)

type ClaimReceipt struct {
	TxHash            common.Hash
	Status            uint64
	BlockNumber       *big.Int
	GasUsed           uint64
	EffectiveGasPrice *big.Int
}

func NewClaimReceipt(r *types.Receipt) *ClaimReceipt {
	return &ClaimReceipt{
		TxHash:            r.TxHash,
		Status:            r.Status,
		BlockNumber:       r.BlockNumber,
		GasUsed:           r.GasUsed,
		EffectiveGasPrice: r.EffectiveGasPrice,
	}
}

func (r *ClaimReceipt) Succeeded() bool {
	return r.Status == constants.ReceiptStatusSuccessful
}

// Fee is gasUsed * effectiveGasPrice, nil when the node did not report a price.
func (r *ClaimReceipt) Fee() *big.Int {
	if r.EffectiveGasPrice == nil {
		return nil
	}
	return new(big.Int).Mul(new(big.Int).SetUint64(r.GasUsed), r.EffectiveGasPrice)
}
