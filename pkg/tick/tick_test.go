package tick

import (
	"testing"

	"cosmossdk.io/math"
)

func TestUpdateFlipsOnFirstAndLastLiquidity(t *testing.T) {
	info := NewInfo()

	flipped, err := info.Update(math.NewInt(100), false, math.NewInt(5), math.NewInt(7), 0, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !flipped {
		t.Fatalf("expected flip when liquidityGross goes from zero to nonzero")
	}
	if !info.Initialized {
		t.Fatalf("expected tick to become initialized")
	}

	flipped, err = info.Update(math.NewInt(-100), false, math.NewInt(5), math.NewInt(7), 0, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !flipped {
		t.Fatalf("expected flip when liquidityGross returns to zero")
	}
	if info.Initialized {
		t.Fatalf("expected tick to become uninitialized")
	}
}

func TestUpdateSeedsFeeGrowthOutsideBelowCurrentTick(t *testing.T) {
	info := NewInfo()
	_, err := info.Update(math.NewInt(100), false, math.NewInt(5), math.NewInt(7), 20, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !info.FeeGrowthOutside0X128.Equal(math.NewInt(5)) || !info.FeeGrowthOutside1X128.Equal(math.NewInt(7)) {
		t.Fatalf("tick below current should seed feeGrowthOutside from global: got %s %s", info.FeeGrowthOutside0X128, info.FeeGrowthOutside1X128)
	}
}

func TestUpdateUpperFlipsNetLiquiditySign(t *testing.T) {
	lowerInfo := NewInfo()
	upperInfo := NewInfo()

	if _, err := lowerInfo.Update(math.NewInt(100), false, math.ZeroInt(), math.ZeroInt(), 0, -10); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := upperInfo.Update(math.NewInt(100), true, math.ZeroInt(), math.ZeroInt(), 0, 10); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !lowerInfo.LiquidityNet.Equal(math.NewInt(100)) {
		t.Fatalf("lower tick net liquidity should be +100, got %s", lowerInfo.LiquidityNet)
	}
	if !upperInfo.LiquidityNet.Equal(math.NewInt(-100)) {
		t.Fatalf("upper tick net liquidity should be -100, got %s", upperInfo.LiquidityNet)
	}
}

func TestCrossFlipsFeeGrowthOutside(t *testing.T) {
	info := NewInfo()
	info.FeeGrowthOutside0X128 = math.NewInt(2)
	info.FeeGrowthOutside1X128 = math.NewInt(3)
	info.LiquidityNet = math.NewInt(42)

	net := info.Cross(math.NewInt(10), math.NewInt(10))
	if !net.Equal(math.NewInt(42)) {
		t.Fatalf("Cross should return liquidityNet unchanged, got %s", net)
	}
	if !info.FeeGrowthOutside0X128.Equal(math.NewInt(8)) {
		t.Fatalf("feeGrowthOutside0 should flip to global-outside = 10-2=8, got %s", info.FeeGrowthOutside0X128)
	}
	if !info.FeeGrowthOutside1X128.Equal(math.NewInt(7)) {
		t.Fatalf("feeGrowthOutside1 should flip to global-outside = 10-3=7, got %s", info.FeeGrowthOutside1X128)
	}
}

func TestGetFeeGrowthInsideCurrentTickWithinRange(t *testing.T) {
	lower := NewInfo()
	upper := NewInfo()
	lower.FeeGrowthOutside0X128 = math.NewInt(3)
	upper.FeeGrowthOutside0X128 = math.NewInt(4)

	inside0, _ := GetFeeGrowthInside(lower, upper, -10, 10, 0, math.NewInt(20), math.ZeroInt())
	// below = outside(lower) = 3 (current>=lowerTick)
	// above = outside(upper) = 4 (current<upperTick)
	// inside = global - below - above = 20 - 3 - 4 = 13
	if !inside0.Equal(math.NewInt(13)) {
		t.Fatalf("feeGrowthInside0 = %s, want 13", inside0)
	}
}

func TestMaxLiquidityPerTickDecreasesWithFinerSpacing(t *testing.T) {
	coarse := MaxLiquidityPerTick(200, -887272, 887272)
	fine := MaxLiquidityPerTick(1, -887272, 887272)
	if coarse.Cmp(fine) <= 0 {
		t.Fatalf("coarser tick spacing should allow more liquidity per tick")
	}
}
