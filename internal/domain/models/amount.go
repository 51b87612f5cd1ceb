package models

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"
)

// TokenDecimals is the fixed-point precision of the $VOICE token.
const TokenDecimals = 18

var oneToken = math.NewIntWithDecimal(1, TokenDecimals)

// ParseAmount parses a human-readable decimal amount and rejects non-positive
// values.
func ParseAmount(s string) (math.LegacyDec, error) {
	dec, err := math.LegacyNewDecFromStr(s)
	if err != nil {
		return math.LegacyDec{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	if !dec.IsPositive() {
		return math.LegacyDec{}, fmt.Errorf("amount %q must be positive", s)
	}
	return dec, nil
}

// ToWei converts a human-unit amount to the token's 18-decimal fixed-point
// integer representation. Precision below 18 decimals is truncated.
func ToWei(amount math.LegacyDec) *big.Int {
	return amount.MulInt(oneToken).TruncateInt().BigInt()
}

// FromWei converts a fixed-point integer balance back to the human unit.
func FromWei(wei *big.Int) math.LegacyDec {
	return math.LegacyNewDecFromIntWithPrec(math.NewIntFromBigInt(wei), TokenDecimals)
}
