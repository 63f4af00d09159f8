package utils

import (
	"fmt"
	"math/big"

	"github.com/fero-tech/claimrunner/common/constants"
	"github.com/shopspring/decimal"
)

// ParseUnits converts a decimal string such as "0.1" into its integer base
// unit amount, e.g. ParseUnits("0.1", 9) is 100000000 wei.
func ParseUnits(value string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("negative amount %q", value)
	}
	shifted := d.Shift(decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, fmt.Errorf("amount %q has more than %d decimals", value, decimals)
	}
	return shifted.BigInt(), nil
}

func ParseGwei(value string) (*big.Int, error) {
	return ParseUnits(value, constants.GweiDecimals)
}

func FormatUnits(amount *big.Int, decimals int32) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -decimals).String()
}

func FormatEther(wei *big.Int) string {
	return FormatUnits(wei, constants.EtherDecimals)
}

func FormatGwei(wei *big.Int) string {
	return FormatUnits(wei, constants.GweiDecimals)
}

// ParseBigInt reads a base-10 integer, or a 0x-prefixed hex one.
func ParseBigInt(value string) (*big.Int, error) {
	if value == "" {
		return new(big.Int), nil
	}
	n, ok := new(big.Int).SetString(value, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", value)
	}
	return n, nil
}
