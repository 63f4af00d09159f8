package crypto

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

type Signer struct {
	key     *ecdsa.PrivateKey
	Address common.Address
}

// LoadSigner parses a hex secp256k1 private key, with or without 0x prefix.
func LoadSigner(hexKey string) (*Signer, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	key, err := ethcrypto.HexToECDSA(hexKey)
	if err != nil {
		// the key itself never goes into the error
		return nil, fmt.Errorf("invalid private key")
	}
	return &Signer{key: key, Address: ethcrypto.PubkeyToAddress(key.PublicKey)}, nil
}

func (s *Signer) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
}
