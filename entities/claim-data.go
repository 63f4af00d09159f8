package entities

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fero-tech/claimrunner/common/utils"
)

// ClaimData is the allocation record published for an address, as saved by
// the operator from the airdrop site.
type ClaimData struct {
	Proof     []common.Hash `json:"proof"`
	Amount    string        `json:"amount"`
	Season    uint8         `json:"season,omitempty"`
	Duration  string        `json:"duration,omitempty"`
	Signature hexutil.Bytes `json:"signature,omitempty"`
	// Address is informational only, claims always go to the signer.
	Address *common.Address `json:"address,omitempty"`
}

// ClaimParams holds the arguments of claim(bytes32[],address,uint256,uint8,uint256,bytes)
// in ABI order.
type ClaimParams struct {
	Proof     [][32]byte
	To        common.Address
	Amount    *big.Int
	Season    uint8
	Duration  *big.Int
	Signature []byte
}

func LoadClaimData(path string) (*ClaimData, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read claim data: %w", err)
	}
	return ClaimDataFromJSON(b)
}

func ClaimDataFromJSON(b []byte) (*ClaimData, error) {
	var data ClaimData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("decode claim data: %w", err)
	}
	if data.Amount == "" {
		return nil, fmt.Errorf("claim data has no amount")
	}
	return &data, nil
}

// Params builds the call arguments with to as the recipient.
func (c *ClaimData) Params(to common.Address) (*ClaimParams, error) {
	amount, err := utils.ParseBigInt(c.Amount)
	if err != nil {
		return nil, fmt.Errorf("amount: %w", err)
	}
	duration, err := utils.ParseBigInt(c.Duration)
	if err != nil {
		return nil, fmt.Errorf("duration: %w", err)
	}
	proof := make([][32]byte, len(c.Proof))
	for i, h := range c.Proof {
		proof[i] = h
	}
	signature := []byte(c.Signature)
	if signature == nil {
		signature = []byte{}
	}
	return &ClaimParams{
		Proof:     proof,
		To:        to,
		Amount:    amount,
		Season:    c.Season,
		Duration:  duration,
		Signature: signature,
	}, nil
}
