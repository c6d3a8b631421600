// Package fx implements the fixed-point integer arithmetic the pool engine
// is built on: 256-bit unsigned/signed amounts, wrapping fee-growth
// accumulators and the width-bound checks the wider spec relies on to keep
// every non-wrapping quantity inside its declared bit width.
//
// Values are carried in cosmossdk.io/math.Int, the same signed big-int
// wrapper the teacher corpus uses for every price/amount computation. Int
// itself never narrows or wraps, so the bound checks here are what give the
// engine its U160/U128/I128/U256/I256 semantics.
package fx

import (
	"errors"
	"math/big"

	"cosmossdk.io/math"
)

var (
	// ErrMathOverflow indicates a result does not fit in its declared width.
	ErrMathOverflow = errors.New("fx: math overflow")
	// ErrDivisionByZero indicates a mulDiv denominator of zero.
	ErrDivisionByZero = errors.New("fx: division by zero")
)

var (
	twoPow128 = new(big.Int).Lsh(big.NewInt(1), 128)
	twoPow160 = new(big.Int).Lsh(big.NewInt(1), 160)
	twoPow256 = new(big.Int).Lsh(big.NewInt(1), 256)

	// MaxU128 is 2^128 - 1.
	MaxU128 = math.NewIntFromBigInt(new(big.Int).Sub(twoPow128, big.NewInt(1)))
	// MaxU160 is 2^160 - 1.
	MaxU160 = math.NewIntFromBigInt(new(big.Int).Sub(twoPow160, big.NewInt(1)))
	// MaxU256 is 2^256 - 1.
	MaxU256 = math.NewIntFromBigInt(new(big.Int).Sub(twoPow256, big.NewInt(1)))
)

// FitsU128 reports whether v is representable as an unsigned 128-bit value.
func FitsU128(v math.Int) bool {
	return !v.IsNegative() && v.BigInt().BitLen() <= 128
}

// FitsI128 reports whether v's magnitude fits in 128 bits: it accepts any
// sign with |v| <= MaxU128, a wider range than a two's-complement int128
// (whose magnitude stays below 2^127 on the positive side).
func FitsI128(v math.Int) bool {
	return v.Abs().LTE(MaxU128)
}

// FitsU160 reports whether v is representable as an unsigned 160-bit value.
func FitsU160(v math.Int) bool {
	return !v.IsNegative() && v.LTE(MaxU160)
}

// FitsU256 reports whether v is representable as an unsigned 256-bit value.
func FitsU256(v math.Int) bool {
	return !v.IsNegative() && v.LTE(MaxU256)
}

// FitsI256 reports whether v's magnitude fits in 256 bits.
func FitsI256(v math.Int) bool {
	return v.Abs().LTE(MaxU256)
}

// CheckU256 validates v is a non-negative value under 2^256, the width every
// amount and fee-growth accumulator in the engine is declared at.
func CheckU256(v math.Int) error {
	if !FitsU256(v) {
		return ErrMathOverflow
	}
	return nil
}

// WrapSub256 computes (a - b) mod 2^256, the wrapping subtraction the spec
// requires for feeGrowthGlobal/feeGrowthOutside/feeGrowthInside arithmetic
// (§4.5, §9): differences between two wrapped accumulators are only ever
// compared against each other, so the wraparound is self-cancelling.
func WrapSub256(a, b math.Int) math.Int {
	diff := new(big.Int).Sub(a.BigInt(), b.BigInt())
	diff.Mod(diff, twoPow256) // big.Int.Mod is Euclidean: result is always >= 0
	return math.NewIntFromBigInt(diff)
}

// WrapAdd256 computes (a + b) mod 2^256.
func WrapAdd256(a, b math.Int) math.Int {
	sum := new(big.Int).Add(a.BigInt(), b.BigInt())
	sum.Mod(sum, twoPow256)
	return math.NewIntFromBigInt(sum)
}
