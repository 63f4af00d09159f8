package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/fero-tech/claimrunner/entities"
)

const ClaimMethod = "claim"

const ClaimABI = `[{
	"inputs": [
		{"internalType": "bytes32[]", "name": "_proof", "type": "bytes32[]"},
		{"internalType": "address", "name": "_to", "type": "address"},
		{"internalType": "uint256", "name": "_amount", "type": "uint256"},
		{"internalType": "uint8", "name": "_season", "type": "uint8"},
		{"internalType": "uint256", "name": "_duration", "type": "uint256"},
		{"internalType": "bytes", "name": "_signature", "type": "bytes"}
	],
	"name": "claim",
	"outputs": [],
	"stateMutability": "payable",
	"type": "function"
}]`

var claimABI abi.ABI

func init() {
	parsed, err := abi.JSON(strings.NewReader(ClaimABI))
	if err != nil {
		panic(err)
	}
	claimABI = parsed
}

func ParsedClaimABI() abi.ABI {
	return claimABI
}

// PackClaim returns the calldata for a claim call.
func PackClaim(p *entities.ClaimParams) ([]byte, error) {
	return claimABI.Pack(ClaimMethod, p.Proof, p.To, p.Amount, p.Season, p.Duration, p.Signature)
}
