package usecases

import (
	"github.com/shopspring/decimal"
)

// DefaultPlatformFeeRate is the fee percentage applied when no merchant
// specific rate is configured.
var DefaultPlatformFeeRate = decimal.NewFromFloat(5.0)

// ComputeFee computes the platform fee from a base amount and a rate
// percentage: round(base * rate / 100, 2), half-up. A zero or negative rate
// yields a zero fee. Inputs are assumed non-negative; callers enforce that.
func ComputeFee(baseAmount, ratePercent decimal.Decimal) decimal.Decimal {
	if ratePercent.Sign() <= 0 {
		return decimal.Zero.Round(2)
	}
	return baseAmount.Mul(ratePercent).Div(decimal.NewFromInt(100)).Round(2)
}

// ComputeTotal returns round(base + fee, 2)
func ComputeTotal(baseAmount, feeAmount decimal.Decimal) decimal.Decimal {
	return baseAmount.Add(feeAmount).Round(2)
}
