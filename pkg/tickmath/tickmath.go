// Package tickmath implements the bijection between a tick index and a
// Q64.96 square-root price (spec §4.2).
//
// The algorithm is the teacher's own getSqrtPriceX64FromTick /
// getTickFromSqrtPriceX64 (pkg/pool/raydium/clmm_tickerarray.go), generalized
// from Raydium's Q64.64 √price format to the Q64.96 format this engine uses
// and re-keyed to MIN_TICK/MAX_TICK = ∓887272 (the teacher's pool caps ticks
// at ∓443636, one bit narrower, because Raydium never needs a tick magic
// constant past bit 18). The magic-constant ladder and the MSB/log2
// refinement loop are otherwise the same shape: multiply-then-right-shift by
// the fixed-point width, accumulate bits of the integer tick, then invert for
// negative ticks.
package tickmath

import (
	"errors"
	"math/big"

	"cosmossdk.io/math"
)

const (
	// MinTick is the smallest tick index sqrtRatioAtTick accepts.
	MinTick int32 = -887272
	// MaxTick is the largest tick index sqrtRatioAtTick accepts.
	MaxTick int32 = 887272
)

var (
	// ErrTickOutOfRange is returned by SqrtRatioAtTick outside [MinTick, MaxTick].
	ErrTickOutOfRange = errors.New("tickmath: tick out of range")
	// ErrSqrtPriceOutOfRange is returned by TickAtSqrtRatio outside
	// [MinSqrtRatio, MaxSqrtRatio).
	ErrSqrtPriceOutOfRange = errors.New("tickmath: sqrt price out of range")
)

var (
	// MinSqrtRatio is sqrtRatioAtTick(MinTick).
	MinSqrtRatio = math.NewInt(4295128739)
	// MaxSqrtRatio is sqrtRatioAtTick(MaxTick).
	MaxSqrtRatio, _ = math.NewIntFromString("1461446703485210103287273052203988822378723970342")

	two128 = new(big.Int).Lsh(big.NewInt(1), 128)

	// magic[i] is 2^128 / sqrt(1.0001^(2^i)) for i in [0,19], the Q128.128
	// ladder used to build sqrt(1.0001^-|tick|) one bit of |tick| at a time. These are the canonical constants shared by every faithful
	// Uniswap-v3-style TickMath implementation; MAX_TICK=887272 needs all 20
	// (bit 19 = 0x80000 is the top bit set in 887272's binary expansion).
	magic = [20]*big.Int{
		mustHex("fffcb933bd6fad37aa2d162d1a594001"),
		mustHex("fff97272373d413259a46990580e213a"),
		mustHex("fff2e50f5f656932ef12357cf3c7fdcc"),
		mustHex("ffe5caca7e10e4e61c3624eaa0941cd0"),
		mustHex("ffcb9843d60f6159c9db58835c926644"),
		mustHex("ff973b41fa98c081472e6896dfb254c0"),
		mustHex("ff2ea16466c96a3843ec78b326b52861"),
		mustHex("fe5dee046a99a2a811c461f1969c3053"),
		mustHex("fcbe86c7900a88aedcffc83b479aa3a4"),
		mustHex("f987a7253ac413176f2b074cf7815e54"),
		mustHex("f3392b0822b70005940c7a398e4b70f3"),
		mustHex("e7159475a2c29b7443b29c7fa6e889d9"),
		mustHex("d097f3bdfd2022b8845ad8f792aa5825"),
		mustHex("a9f746462d870fdf8a65dc1f90e061e5"),
		mustHex("70d869a156d2a1b890bb3df62baf32f7"),
		mustHex("31be135f97d08fd981231505542fcfa6"),
		mustHex("09aa508b5b7a84e1c677de54f3e99bc9"),
		mustHex("005d6af8dedb81196699c329225ee604"),
		mustHex("0002216e584f5fa1ea926041bedfe98"),
		mustHex("00000048a170391f7dc42444e8fa2"),
	}

	// Error margins bracketing log_1.0001(sqrtPrice^2) to within one tick,
	// the same two-sided bound the teacher's getTickFromSqrtPriceX64 uses
	// (LogBPErrMarginLowerX64 / LogBPErrMarginUpperX64) before the final
	// boundary check in TickAtSqrtRatio settles the exact answer.
	tickLowErrMargin  = bigIntFromDecimal("184467440737095516")
	tickHighErrMargin = bigIntFromDecimal("15793534762490258745")
)

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("tickmath: bad magic constant " + s)
	}
	return n
}

func bigIntFromDecimal(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("tickmath: bad constant " + s)
	}
	return n
}

// SqrtRatioAtTick returns the Q64.96 representation of sqrt(1.0001^tick),
// rounded up so that sqrtRatioAtTick(t) * sqrtRatioAtTick(t) never
// understates the price at t.
func SqrtRatioAtTick(tick int32) (math.Int, error) {
	if tick < MinTick || tick > MaxTick {
		return math.Int{}, ErrTickOutOfRange
	}

	absTick := tick
	if absTick < 0 {
		absTick = -absTick
	}

	ratio := new(big.Int).Set(two128)
	for i := 0; i < len(magic); i++ {
		if absTick&(1<<uint(i)) != 0 {
			ratio.Mul(ratio, magic[i])
			ratio.Rsh(ratio, 128)
		}
	}

	if tick > 0 {
		// ratio is currently sqrt(1.0001^-|tick|) in Q128.128; invert it for
		// positive ticks by dividing the all-ones 256-bit word by it, which
		// is (to within the low bit) 2^256 / ratio.
		maxU256 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
		ratio = new(big.Int).Quo(maxU256, ratio)
	}

	// Narrow Q128.128 -> Q64.96 (shift right by 32) with a round-up bias.
	result := new(big.Int).Rsh(ratio, 32)
	if new(big.Int).And(ratio, big.NewInt(0xFFFFFFFF)).Sign() != 0 {
		result.Add(result, big.NewInt(1))
	}

	return math.NewIntFromBigInt(result), nil
}

// TickAtSqrtRatio returns the unique tick t such that
// sqrtRatioAtTick(t) <= sqrtPriceX96 < sqrtRatioAtTick(t+1).
func TickAtSqrtRatio(sqrtPriceX96 math.Int) (int32, error) {
	if sqrtPriceX96.LT(MinSqrtRatio) || sqrtPriceX96.GTE(MaxSqrtRatio) {
		return 0, ErrSqrtPriceOutOfRange
	}

	// The teacher's own refinement (msb/log2 via repeated squaring,
	// BitPrecision=14 terms) generalizes directly: only the fixed-point
	// offset (96 instead of 64) changes to account for sqrtPriceX96 being
	// Q64.96 rather than Q64.64.
	log2X32 := computeLog2X32(sqrtPriceX96)
	logbpX64 := new(big.Int).Mul(log2X32, big.NewInt(59543866431248))

	tickLow := new(big.Int).Rsh(new(big.Int).Sub(logbpX64, tickLowErrMargin), 64)
	tickHigh := new(big.Int).Rsh(new(big.Int).Add(logbpX64, tickHighErrMargin), 64)

	if tickLow.Cmp(tickHigh) == 0 {
		return int32(tickLow.Int64()), nil
	}

	high := int32(tickHigh.Int64())
	sqrtAtHigh, err := SqrtRatioAtTick(high)
	if err == nil && sqrtAtHigh.LTE(sqrtPriceX96) {
		return high, nil
	}
	return int32(tickLow.Int64()), nil
}

// computeLog2X32 returns floor(log2(sqrtPriceX96/2^96) * 2^32), using the
// teacher's MSB + fixed-iteration-count squaring refinement
// (BitPrecision=14), adapted for the Q64.96 input width (96 instead of 64).
func computeLog2X32(sqrtPriceX96 math.Int) *big.Int {
	const bitPrecision = 14

	v := sqrtPriceX96.BigInt()
	msb := v.BitLen() - 1
	integerX32 := new(big.Int).Lsh(big.NewInt(int64(msb-96)), 32)

	var r *big.Int
	if msb >= 64 {
		r = new(big.Int).Rsh(v, uint(msb-63))
	} else {
		r = new(big.Int).Lsh(v, uint(63-msb))
	}

	bit := new(big.Int).SetInt64(0x8000000000000000)
	fracX64 := new(big.Int)
	zero := big.NewInt(0)
	for i := 0; bit.Cmp(zero) > 0 && i < bitPrecision; i++ {
		r = new(big.Int).Mul(r, r)
		moreThanTwo := new(big.Int).Rsh(r, 127)
		r = new(big.Int).Rsh(r, uint(63+moreThanTwo.Int64()))
		fracX64.Add(fracX64, new(big.Int).Mul(bit, moreThanTwo))
		bit = new(big.Int).Rsh(bit, 1)
	}

	fracX32 := new(big.Int).Rsh(fracX64, 32)
	return new(big.Int).Add(integerX32, fracX32)
}
