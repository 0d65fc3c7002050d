package v1

import "github.com/shopspring/decimal"

// MulDiv returns floor(a*b/c) with exact integer semantics. All amounts in
// this codebase are integral base-unit decimals, so the truncated quotient of
// QuoRem equals the floor for the non-negative operands used here.
func MulDiv(a, b, c decimal.Decimal) decimal.Decimal {
	q, _ := a.Mul(b).QuoRem(c, 0)
	return q
}

// Pow10 returns 10^exp as a decimal, used to scale whole tokens to base units.
func Pow10(exp uint8) decimal.Decimal {
	return decimal.New(1, int32(exp))
}
