// Package swapmath computes a single swap step: how far the price moves
// within one tick range given a remaining amount, and how the fee is
// deducted (spec §4.4).
//
// ComputeSwapStep is the teacher's swapStepCompute
// (pkg/pool/raydium/clmm_tickerarray.go), carried over step for step against
// this engine's sqrtpricemath/fx packages instead of raw big.Int, with the
// fee rate expressed in hundredths of a bip out of 1e6 (the denominator the
// teacher's own FEE_RATE_DENOMINATOR sub-expression was reaching for, though
// the teacher never actually defines that constant anywhere in its source).
package swapmath

import (
	"cosmossdk.io/math"

	"github.com/clmmcore/engine/pkg/fx"
	"github.com/clmmcore/engine/pkg/sqrtpricemath"
)

// FeeRateDenominator is the fixed-point base feePips is expressed against
// (1e6, i.e. a feePips of 3000 is a 0.3% fee).
var FeeRateDenominator = math.NewInt(1_000_000)

// Result is the outcome of advancing one swap step.
type Result struct {
	SqrtPriceNext math.Int
	AmountIn      math.Int
	AmountOut     math.Int
	FeeAmount     math.Int
}

// ComputeSwapStep advances the price from sqrtPriceCurrent towards
// sqrtPriceTarget (bounded by the next initialized tick or the caller's
// limit) by as much of amountRemaining as liquidity allows.
//
// amountRemaining is signed the way the pool's swap loop carries it: positive
// when the caller is specifying an exact input (consumed from it, including
// fee), negative when specifying an exact output (consumed from it,
// excluding fee).
func ComputeSwapStep(sqrtPriceCurrent, sqrtPriceTarget, liquidity, amountRemaining math.Int, feePips uint32) (Result, error) {
	zeroForOne := sqrtPriceCurrent.GTE(sqrtPriceTarget)
	baseInput := amountRemaining.GTE(math.ZeroInt())

	var res Result
	var err error

	if baseInput {
		feeRate := math.NewInt(int64(feePips))
		amountRemainingLessFee, err := fx.MulDiv(amountRemaining, FeeRateDenominator.Sub(feeRate), FeeRateDenominator)
		if err != nil {
			return Result{}, err
		}

		if zeroForOne {
			res.AmountIn, err = sqrtpricemath.GetAmount0Delta(sqrtPriceTarget, sqrtPriceCurrent, liquidity, true)
		} else {
			res.AmountIn, err = sqrtpricemath.GetAmount1Delta(sqrtPriceCurrent, sqrtPriceTarget, liquidity, true)
		}
		if err != nil {
			return Result{}, err
		}

		if amountRemainingLessFee.GTE(res.AmountIn) {
			res.SqrtPriceNext = sqrtPriceTarget
		} else {
			res.SqrtPriceNext, err = sqrtpricemath.GetNextSqrtPriceFromInput(sqrtPriceCurrent, liquidity, amountRemainingLessFee, zeroForOne)
			if err != nil {
				return Result{}, err
			}
		}
	} else {
		if zeroForOne {
			res.AmountOut, err = sqrtpricemath.GetAmount1Delta(sqrtPriceTarget, sqrtPriceCurrent, liquidity, false)
		} else {
			res.AmountOut, err = sqrtpricemath.GetAmount0Delta(sqrtPriceCurrent, sqrtPriceTarget, liquidity, false)
		}
		if err != nil {
			return Result{}, err
		}

		amountRemainingMag := amountRemaining.Neg()
		if amountRemainingMag.GTE(res.AmountOut) {
			res.SqrtPriceNext = sqrtPriceTarget
		} else {
			res.SqrtPriceNext, err = sqrtpricemath.GetNextSqrtPriceFromOutput(sqrtPriceCurrent, liquidity, amountRemainingMag, zeroForOne)
			if err != nil {
				return Result{}, err
			}
		}
	}

	reachedTarget := res.SqrtPriceNext.Equal(sqrtPriceTarget)

	if zeroForOne {
		if !(reachedTarget && baseInput) {
			res.AmountIn, err = sqrtpricemath.GetAmount0Delta(res.SqrtPriceNext, sqrtPriceCurrent, liquidity, true)
			if err != nil {
				return Result{}, err
			}
		}
		if !(reachedTarget && !baseInput) {
			res.AmountOut, err = sqrtpricemath.GetAmount1Delta(res.SqrtPriceNext, sqrtPriceCurrent, liquidity, false)
			if err != nil {
				return Result{}, err
			}
		}
	} else {
		if !(reachedTarget && baseInput) {
			res.AmountIn, err = sqrtpricemath.GetAmount1Delta(sqrtPriceCurrent, res.SqrtPriceNext, liquidity, true)
			if err != nil {
				return Result{}, err
			}
		}
		if !(reachedTarget && !baseInput) {
			res.AmountOut, err = sqrtpricemath.GetAmount0Delta(sqrtPriceCurrent, res.SqrtPriceNext, liquidity, false)
			if err != nil {
				return Result{}, err
			}
		}
	}

	if !baseInput && res.AmountOut.GT(amountRemaining.Neg()) {
		res.AmountOut = amountRemaining.Neg()
	}

	if baseInput && !res.SqrtPriceNext.Equal(sqrtPriceTarget) {
		res.FeeAmount = amountRemaining.Sub(res.AmountIn)
	} else {
		feeRate := math.NewInt(int64(feePips))
		res.FeeAmount, err = fx.MulDivRoundingUp(res.AmountIn, feeRate, FeeRateDenominator.Sub(feeRate))
		if err != nil {
			return Result{}, err
		}
	}

	return res, nil
}
