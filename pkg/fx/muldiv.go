package fx

import (
	"math/big"

	"cosmossdk.io/math"
)

// MulDiv returns floor(a*b/d) computed with a full-precision intermediate
// product (math/big never narrows the multiply, so the "512-bit
// intermediate" requirement of spec §4.1 holds unconditionally here — the
// teacher's mulDivFloor/mulDivCeil do the same multiply-then-divide, just
// against cosmath.Int instead of raw big.Int).
func MulDiv(a, b, d math.Int) (math.Int, error) {
	if d.IsZero() {
		return math.Int{}, ErrDivisionByZero
	}
	prod := new(big.Int).Mul(a.BigInt(), b.BigInt())
	q := new(big.Int).Quo(prod, d.BigInt())
	if q.BitLen() > 256 {
		return math.Int{}, ErrMathOverflow
	}
	return math.NewIntFromBigInt(q), nil
}

// MulDivRoundingUp is MulDiv rounded toward positive infinity: equal to
// MulDiv(a,b,d) + 1 whenever a*b is not an exact multiple of d.
func MulDivRoundingUp(a, b, d math.Int) (math.Int, error) {
	if d.IsZero() {
		return math.Int{}, ErrDivisionByZero
	}
	prod := new(big.Int).Mul(a.BigInt(), b.BigInt())
	q, r := new(big.Int).QuoRem(prod, d.BigInt(), new(big.Int))
	if r.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	if q.BitLen() > 256 {
		return math.Int{}, ErrMathOverflow
	}
	return math.NewIntFromBigInt(q), nil
}
