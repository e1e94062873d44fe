package price

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// ToDisplay renders a smallest-unit token amount as a whole-token decimal
// string, e.g. 400000000000000000 with 18 decimals becomes "0.4".
func ToDisplay(amount *big.Int, decimals int32) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -decimals).String()
}

// FromDisplay parses a whole-token decimal string into smallest units.
func FromDisplay(display string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(display)
	if err != nil {
		return nil, err
	}
	return d.Shift(decimals).BigInt(), nil
}
