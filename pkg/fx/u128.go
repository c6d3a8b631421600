package fx

import (
	"cosmossdk.io/math"
	"lukechampine.com/uint128"
)

// U128FromInt converts a validated math.Int into the teacher's Uint128
// representation, which backs every U128 quantity in the pool (liquidity,
// liquidityGross, tokensOwed) the same way it backs CLMMPool.Liquidity and
// TickState.LiquidityGross in the teacher's Raydium decoder.
func U128FromInt(v math.Int) (uint128.Uint128, error) {
	if !FitsU128(v) {
		return uint128.Zero, ErrMathOverflow
	}
	return uint128.FromBig(v.BigInt()), nil
}

// IntFromU128 widens a Uint128 back into math.Int for use in 256-bit
// computations (mulDiv, signed deltas).
func IntFromU128(v uint128.Uint128) math.Int {
	return math.NewIntFromBigInt(v.Big())
}

// AddU128Checked returns a+b, failing MathOverflow if the sum no longer fits
// in 128 bits (liquidityGross must never silently wrap).
func AddU128Checked(a, b uint128.Uint128) (uint128.Uint128, error) {
	sum := IntFromU128(a).Add(IntFromU128(b))
	return U128FromInt(sum)
}

// SubU128Checked returns a-b, failing LiquidityUnderflow (surfaced by the
// caller) if b > a.
func SubU128Checked(a, b uint128.Uint128) (uint128.Uint128, bool) {
	if a.Cmp(b) < 0 {
		return uint128.Zero, false
	}
	return a.Sub(b), true
}

// AddI128ToU128 applies a signed liquidity delta to an unsigned magnitude,
// used for liquidityGross (which only ever grows or shrinks by |delta|) and
// for pool/position liquidity (which moves by the signed delta directly).
func AddI128ToU128(base uint128.Uint128, delta math.Int) (uint128.Uint128, error) {
	result := IntFromU128(base).Add(delta)
	if result.IsNegative() {
		return uint128.Zero, ErrMathOverflow
	}
	return U128FromInt(result)
}
