// Package tick holds per-tick liquidity and fee-growth bookkeeping (spec
// §4.5).
//
// Info's field layout mirrors the teacher's on-chain TickState
// (pkg/pool/raydium/clmm_tickerarray.go): LiquidityNet, LiquidityGross and a
// pair of per-token fee-growth-outside accumulators, carried here as
// math.Int/uint128.Uint128 instead of the teacher's raw int64/Uint128 wire
// types. The teacher only ever reads this struct back off an account buffer;
// Update/Cross/GetFeeGrowthInside implement the mutation side a simulating
// engine needs, in the same field shapes.
package tick

import (
	"math/big"

	"cosmossdk.io/math"
	"lukechampine.com/uint128"

	"github.com/clmmcore/engine/pkg/fx"
)

// Info is the mutable state tracked at one initialized tick.
type Info struct {
	LiquidityGross        uint128.Uint128
	LiquidityNet          math.Int
	FeeGrowthOutside0X128 math.Int
	FeeGrowthOutside1X128 math.Int
	Initialized           bool
}

// NewInfo returns a zeroed tick, all fee-growth-outside accumulators at zero.
func NewInfo() Info {
	return Info{
		LiquidityGross:        uint128.Zero,
		LiquidityNet:          math.ZeroInt(),
		FeeGrowthOutside0X128: math.ZeroInt(),
		FeeGrowthOutside1X128: math.ZeroInt(),
	}
}

// MaxLiquidityPerTick derives the per-tick liquidityGross cap from the tick
// spacing, the same way every tick-spacing-parameterized pool caps it: evenly
// dividing the maximum representable liquidity across every tick the spacing
// allows, so that summing every tick's liquidityGross can never overflow
// U128.
func MaxLiquidityPerTick(tickSpacing int32, minTick, maxTick int32) uint128.Uint128 {
	numTicks := maxTick/tickSpacing - minTick/tickSpacing + 1
	perTick := new(big.Int).Quo(fx.MaxU128.BigInt(), big.NewInt(int64(numTicks)))
	return uint128.FromBig(perTick)
}

// Update applies a liquidity delta at this tick, flipping Initialized if the
// tick's gross liquidity transitions to or from zero. upper indicates whether
// this tick is being updated as the upper bound of the position's range, in
// which case the net liquidity delta is applied with the opposite sign.
//
// feeGrowthGlobal0/1 seed the tick's fee-growth-outside accumulators the
// first time it is initialized: per Uniswap's convention, everything below
// the current tick is assumed to have already accrued, which the pool engine
// corrects for automatically once the tick is crossed for the first time.
func (t *Info) Update(liquidityDelta math.Int, upper bool, feeGrowthGlobal0, feeGrowthGlobal1 math.Int, currentTick, thisTick int32) (flipped bool, err error) {
	liquidityGrossBefore := t.LiquidityGross
	liquidityGrossAfter, err := fx.AddI128ToU128(liquidityGrossBefore, liquidityDelta)
	if err != nil {
		return false, err
	}

	flipped = liquidityGrossAfter.IsZero() != liquidityGrossBefore.IsZero()

	if liquidityGrossBefore.IsZero() {
		if thisTick <= currentTick {
			t.FeeGrowthOutside0X128 = feeGrowthGlobal0
			t.FeeGrowthOutside1X128 = feeGrowthGlobal1
		} else {
			t.FeeGrowthOutside0X128 = math.ZeroInt()
			t.FeeGrowthOutside1X128 = math.ZeroInt()
		}
	}

	t.LiquidityGross = liquidityGrossAfter

	netDelta := liquidityDelta
	if upper {
		netDelta = liquidityDelta.Neg()
	}
	t.LiquidityNet = t.LiquidityNet.Add(netDelta)
	t.Initialized = !liquidityGrossAfter.IsZero()

	return flipped, nil
}

// Clear zeroes out a tick once its liquidityGross has dropped to zero and it
// is no longer needed. It does not touch the tick bitmap; the caller flips
// the tick's bit separately.
func (t *Info) Clear() {
	*t = NewInfo()
}

// Cross flips a tick's fee-growth-outside accumulators as the pool's active
// tick moves past it, and returns the signed net liquidity to add to the
// pool's in-range liquidity.
func (t *Info) Cross(feeGrowthGlobal0, feeGrowthGlobal1 math.Int) math.Int {
	t.FeeGrowthOutside0X128 = fx.WrapSub256(feeGrowthGlobal0, t.FeeGrowthOutside0X128)
	t.FeeGrowthOutside1X128 = fx.WrapSub256(feeGrowthGlobal1, t.FeeGrowthOutside1X128)
	return t.LiquidityNet
}

// GetFeeGrowthInside returns the fee growth accrued per unit of liquidity
// inside [lower, upper] as of now, the quantity a position's owed fees are
// computed against (spec §4.5, §4.8).
func GetFeeGrowthInside(lower, upper Info, lowerTick, upperTick, currentTick int32, feeGrowthGlobal0, feeGrowthGlobal1 math.Int) (math.Int, math.Int) {
	var feeGrowthBelow0, feeGrowthBelow1 math.Int
	if currentTick >= lowerTick {
		feeGrowthBelow0, feeGrowthBelow1 = lower.FeeGrowthOutside0X128, lower.FeeGrowthOutside1X128
	} else {
		feeGrowthBelow0 = fx.WrapSub256(feeGrowthGlobal0, lower.FeeGrowthOutside0X128)
		feeGrowthBelow1 = fx.WrapSub256(feeGrowthGlobal1, lower.FeeGrowthOutside1X128)
	}

	var feeGrowthAbove0, feeGrowthAbove1 math.Int
	if currentTick < upperTick {
		feeGrowthAbove0, feeGrowthAbove1 = upper.FeeGrowthOutside0X128, upper.FeeGrowthOutside1X128
	} else {
		feeGrowthAbove0 = fx.WrapSub256(feeGrowthGlobal0, upper.FeeGrowthOutside0X128)
		feeGrowthAbove1 = fx.WrapSub256(feeGrowthGlobal1, upper.FeeGrowthOutside1X128)
	}

	inside0 := fx.WrapSub256(fx.WrapSub256(feeGrowthGlobal0, feeGrowthBelow0), feeGrowthAbove0)
	inside1 := fx.WrapSub256(fx.WrapSub256(feeGrowthGlobal1, feeGrowthBelow1), feeGrowthAbove1)
	return inside0, inside1
}
