// Package chaintest provides an in-memory chain.Backend for tests.
package chaintest

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/fero-tech/claimrunner/internal/chain"
)

type Backend struct {
	mu sync.Mutex

	ChainId     *big.Int
	Block       uint64
	Balance     *big.Int
	Nonce       uint64
	GasEstimate uint64

	// Status applied to the receipt of every sent transaction.
	ReceiptStatus     uint64
	// Pending keeps every sent transaction unmined.
	Pending           bool
	GasUsed           uint64
	EffectiveGasPrice *big.Int

	ChainIDErr  error
	BalanceErr  error
	EstimateErr error
	SendErr     error

	Sent      []*types.Transaction
	Estimates []ethereum.CallMsg
	Calls     []string
	Closed    bool
}

func NewBackend() *Backend {
	return &Backend{
		ChainId:           big.NewInt(8453),
		Block:             1000,
		Balance:           big.NewInt(1_000_000_000_000_000_000),
		GasEstimate:       120000,
		ReceiptStatus:     types.ReceiptStatusSuccessful,
		GasUsed:           95000,
		EffectiveGasPrice: big.NewInt(50_000_000),
	}
}

// Dial returns a chain.DialFunc that hands out b.
func (b *Backend) Dial() chain.DialFunc {
	return func(ctx context.Context, rawurl string) (chain.Backend, error) {
		b.record("dial")
		return b, nil
	}
}

func (b *Backend) record(call string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Calls = append(b.Calls, call)
}

func (b *Backend) ChainID(ctx context.Context) (*big.Int, error) {
	b.record("chainId")
	if b.ChainIDErr != nil {
		return nil, b.ChainIDErr
	}
	return new(big.Int).Set(b.ChainId), nil
}

func (b *Backend) BlockNumber(ctx context.Context) (uint64, error) {
	b.record("blockNumber")
	return b.Block, nil
}

func (b *Backend) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	b.record("balance")
	if b.BalanceErr != nil {
		return nil, b.BalanceErr
	}
	return new(big.Int).Set(b.Balance), nil
}

func (b *Backend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	b.record("nonce")
	return b.Nonce, nil
}

func (b *Backend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	b.record("estimateGas")
	b.mu.Lock()
	b.Estimates = append(b.Estimates, call)
	b.mu.Unlock()
	if b.EstimateErr != nil {
		return 0, b.EstimateErr
	}
	return b.GasEstimate, nil
}

func (b *Backend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	b.record("send")
	if b.SendErr != nil {
		return b.SendErr
	}
	b.mu.Lock()
	b.Sent = append(b.Sent, tx)
	b.mu.Unlock()
	return nil
}

func (b *Backend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	b.record("receipt")
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Pending {
		return nil, ethereum.NotFound
	}
	for _, tx := range b.Sent {
		if tx.Hash() == txHash {
			return &types.Receipt{
				Type:              tx.Type(),
				Status:            b.ReceiptStatus,
				TxHash:            txHash,
				GasUsed:           b.GasUsed,
				EffectiveGasPrice: b.EffectiveGasPrice,
				BlockNumber:       new(big.Int).SetUint64(b.Block + 1),
			}, nil
		}
	}
	return nil, ethereum.NotFound
}

func (b *Backend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	b.record("code")
	return []byte{0x60}, nil
}

func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Closed = true
}

func (b *Backend) Called(call string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range b.Calls {
		if c == call {
			return true
		}
	}
	return false
}

var _ chain.Backend = (*Backend)(nil)
