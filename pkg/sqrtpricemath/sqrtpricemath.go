// Package sqrtpricemath converts between token amounts and Q64.96 square
// root prices (spec §4.3).
//
// Every function here is the teacher's getTokenAmountAFromLiquidity /
// getTokenAmountBFromLiquidity / getNextSqrtPriceX64FromInput /
// getNextSqrtPriceX64FromOutput (pkg/pool/raydium/clmm_tickerarray.go)
// carried over unchanged in shape, with the one fixed-point parameter the
// teacher bakes in as U64Resolution (64) generalized to 96 so it operates on
// this engine's Q64.96 prices instead of Raydium's Q64.64 ones.
package sqrtpricemath

import (
	"errors"

	"cosmossdk.io/math"

	"github.com/clmmcore/engine/pkg/fx"
)

// resolution is the fixed-point width of a sqrt price (Q64.96).
const resolution = 96

var (
	// ErrZeroPrice is returned when a sqrt price input is not strictly positive.
	ErrZeroPrice = errors.New("sqrtpricemath: sqrt price must be positive")
	// ErrZeroLiquidity is returned when liquidity is not strictly positive.
	ErrZeroLiquidity = errors.New("sqrtpricemath: liquidity must be positive")
	// ErrPriceMoved is returned when a next-price computation cannot be
	// satisfied without the price crossing zero or reversing direction.
	ErrPriceMoved = errors.New("sqrtpricemath: amount moves price out of range")
)

var q96 = shiftedOne()

func shiftedOne() math.Int {
	one := math.NewInt(1)
	result := one
	for i := 0; i < resolution; i++ {
		result = result.Add(result)
	}
	return result
}

// GetAmount0Delta returns the amount of token0 required to move the price
// from sqrtRatioA to sqrtRatioB at the given liquidity, rounded up or down.
// Order of the two ratios does not matter.
func GetAmount0Delta(sqrtRatioA, sqrtRatioB, liquidity math.Int, roundUp bool) (math.Int, error) {
	lo, hi := sqrtRatioA, sqrtRatioB
	if lo.GT(hi) {
		lo, hi = hi, lo
	}
	if !lo.GT(math.ZeroInt()) {
		return math.Int{}, ErrZeroPrice
	}

	numerator1 := liquidity.Mul(q96)
	numerator2 := hi.Sub(lo)

	if roundUp {
		temp, err := fx.MulDivRoundingUp(numerator1, numerator2, hi)
		if err != nil {
			return math.Int{}, err
		}
		return fx.MulDivRoundingUp(temp, math.NewInt(1), lo)
	}
	temp, err := fx.MulDiv(numerator1, numerator2, hi)
	if err != nil {
		return math.Int{}, err
	}
	return temp.Quo(lo), nil
}

// GetAmount1Delta returns the amount of token1 required to move the price
// from sqrtRatioA to sqrtRatioB at the given liquidity.
func GetAmount1Delta(sqrtRatioA, sqrtRatioB, liquidity math.Int, roundUp bool) (math.Int, error) {
	lo, hi := sqrtRatioA, sqrtRatioB
	if lo.GT(hi) {
		lo, hi = hi, lo
	}
	if !lo.GT(math.ZeroInt()) {
		return math.Int{}, ErrZeroPrice
	}

	diff := hi.Sub(lo)
	if roundUp {
		return fx.MulDivRoundingUp(liquidity, diff, q96)
	}
	return fx.MulDiv(liquidity, diff, q96)
}

// GetAmount0DeltaSigned applies a signed liquidity delta the way a position
// mint/burn does: magnitude from GetAmount0Delta, rounded up when liquidity
// is being added (the pool must never be under-collateralized) and down when
// liquidity is being removed.
func GetAmount0DeltaSigned(sqrtRatioA, sqrtRatioB, liquidity math.Int) (math.Int, error) {
	if liquidity.IsNegative() {
		amt, err := GetAmount0Delta(sqrtRatioA, sqrtRatioB, liquidity.Neg(), false)
		if err != nil {
			return math.Int{}, err
		}
		return amt.Neg(), nil
	}
	return GetAmount0Delta(sqrtRatioA, sqrtRatioB, liquidity, true)
}

// GetAmount1DeltaSigned is GetAmount0DeltaSigned's token1 counterpart.
func GetAmount1DeltaSigned(sqrtRatioA, sqrtRatioB, liquidity math.Int) (math.Int, error) {
	if liquidity.IsNegative() {
		amt, err := GetAmount1Delta(sqrtRatioA, sqrtRatioB, liquidity.Neg(), false)
		if err != nil {
			return math.Int{}, err
		}
		return amt.Neg(), nil
	}
	return GetAmount1Delta(sqrtRatioA, sqrtRatioB, liquidity, true)
}

// GetNextSqrtPriceFromInput returns the sqrt price after adding amountIn of
// token0 (zeroForOne) or token1 (!zeroForOne) to the pool.
func GetNextSqrtPriceFromInput(sqrtPriceX96, liquidity, amountIn math.Int, zeroForOne bool) (math.Int, error) {
	if !sqrtPriceX96.GT(math.ZeroInt()) {
		return math.Int{}, ErrZeroPrice
	}
	if !liquidity.GT(math.ZeroInt()) {
		return math.Int{}, ErrZeroLiquidity
	}
	if amountIn.IsZero() {
		return sqrtPriceX96, nil
	}

	if zeroForOne {
		return nextSqrtPriceFromAmount0RoundingUp(sqrtPriceX96, liquidity, amountIn, true)
	}
	return nextSqrtPriceFromAmount1RoundingDown(sqrtPriceX96, liquidity, amountIn, true)
}

// GetNextSqrtPriceFromOutput returns the sqrt price after removing amountOut
// of token1 (zeroForOne) or token0 (!zeroForOne) from the pool.
func GetNextSqrtPriceFromOutput(sqrtPriceX96, liquidity, amountOut math.Int, zeroForOne bool) (math.Int, error) {
	if !sqrtPriceX96.GT(math.ZeroInt()) {
		return math.Int{}, ErrZeroPrice
	}
	if !liquidity.GT(math.ZeroInt()) {
		return math.Int{}, ErrZeroLiquidity
	}

	if zeroForOne {
		return nextSqrtPriceFromAmount1RoundingDown(sqrtPriceX96, liquidity, amountOut, false)
	}
	return nextSqrtPriceFromAmount0RoundingUp(sqrtPriceX96, liquidity, amountOut, false)
}

func nextSqrtPriceFromAmount0RoundingUp(sqrtPriceX96, liquidity, amount math.Int, add bool) (math.Int, error) {
	if amount.IsZero() {
		return sqrtPriceX96, nil
	}
	numerator1 := liquidity.Mul(q96)

	if add {
		product := amount.Mul(sqrtPriceX96)
		denominator := numerator1.Add(product)
		if denominator.GTE(numerator1) {
			return fx.MulDivRoundingUp(numerator1, sqrtPriceX96, denominator)
		}
		temp := numerator1.Quo(sqrtPriceX96).Add(amount)
		return fx.MulDivRoundingUp(numerator1, math.NewInt(1), temp)
	}

	product := amount.Mul(sqrtPriceX96)
	if !numerator1.GT(product) {
		return math.Int{}, ErrPriceMoved
	}
	denominator := numerator1.Sub(product)
	return fx.MulDivRoundingUp(numerator1, sqrtPriceX96, denominator)
}

func nextSqrtPriceFromAmount1RoundingDown(sqrtPriceX96, liquidity, amount math.Int, add bool) (math.Int, error) {
	if add {
		quotient, err := fx.MulDiv(amount, q96, liquidity)
		if err != nil {
			return math.Int{}, err
		}
		return sqrtPriceX96.Add(quotient), nil
	}

	quotient, err := fx.MulDivRoundingUp(amount, q96, liquidity)
	if err != nil {
		return math.Int{}, err
	}
	if !sqrtPriceX96.GT(quotient) {
		return math.Int{}, ErrPriceMoved
	}
	return sqrtPriceX96.Sub(quotient), nil
}
