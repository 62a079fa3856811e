package ledger

import "math/big"

// Fee caps, expressed as integer fractions so that all fee math stays in the
// token's base-unit representation. Both the platform fee and the maximum
// market fee are fixed at 0.1%.
var (
	platformFeeNumerator  = big.NewInt(1)
	maxMarketFeeNumerator = big.NewInt(1)
	feeDenominator        = big.NewInt(1000)
)

// MaxFeePercentage returns the combined platform and market fee cap (0.002)
// as a rational.
func MaxFeePercentage() *big.Rat {
	combined := new(big.Int).Add(platformFeeNumerator, maxMarketFeeNumerator)
	return new(big.Rat).SetFrac(combined, feeDenominator)
}

// MaxFee returns floor(amount * 0.002) for an amount in base units.
// No floating point crosses this boundary; the truncation matches the
// contract's integer arithmetic.
func MaxFee(amount *big.Int) *big.Int {
	combined := new(big.Int).Add(platformFeeNumerator, maxMarketFeeNumerator)
	fee := new(big.Int).Mul(amount, combined)
	return fee.Quo(fee, feeDenominator)
}
