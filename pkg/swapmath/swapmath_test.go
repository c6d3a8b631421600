package swapmath

import (
	"testing"

	"cosmossdk.io/math"

	"github.com/clmmcore/engine/pkg/tickmath"
)

func sqrtAt(t *testing.T, tick int32) math.Int {
	t.Helper()
	v, err := tickmath.SqrtRatioAtTick(tick)
	if err != nil {
		t.Fatalf("SqrtRatioAtTick(%d): %v", tick, err)
	}
	return v
}

func TestComputeSwapStepExactInputCapedByLiquidity(t *testing.T) {
	current := sqrtAt(t, 0)
	target := sqrtAt(t, -100)
	liquidity := math.NewInt(2_000_000_000_000)

	res, err := ComputeSwapStep(current, target, liquidity, math.NewInt(1_000), 3000)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.AmountIn.Add(res.FeeAmount).LTE(math.NewInt(1_000)) {
		t.Fatalf("amountIn+fee must not exceed amountRemaining: in=%s fee=%s", res.AmountIn, res.FeeAmount)
	}
	if res.SqrtPriceNext.Equal(target) {
		t.Fatalf("a small remaining amount should not exhaust the whole step to the target price")
	}
	if !res.SqrtPriceNext.LT(current) {
		t.Fatalf("zeroForOne input should move price down: next=%s current=%s", res.SqrtPriceNext, current)
	}
}

func TestComputeSwapStepExactInputReachesTarget(t *testing.T) {
	current := sqrtAt(t, 0)
	target := sqrtAt(t, -100)
	liquidity := math.NewInt(1)

	res, err := ComputeSwapStep(current, target, liquidity, math.NewInt(1_000_000_000), 3000)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.SqrtPriceNext.Equal(target) {
		t.Fatalf("a large remaining amount against tiny liquidity should reach the target price: got %s want %s", res.SqrtPriceNext, target)
	}
}

func TestComputeSwapStepExactOutputNeverExceedsRequested(t *testing.T) {
	current := sqrtAt(t, 0)
	target := sqrtAt(t, 100)
	liquidity := math.NewInt(2_000_000_000_000)

	res, err := ComputeSwapStep(current, target, liquidity, math.NewInt(-500), 3000)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.AmountOut.GT(math.NewInt(500)) {
		t.Fatalf("amountOut must not exceed the requested output: %s", res.AmountOut)
	}
}

func TestComputeSwapStepFeeAmountNonNegative(t *testing.T) {
	current := sqrtAt(t, 0)
	target := sqrtAt(t, -100)
	liquidity := math.NewInt(2_000_000_000_000)

	res, err := ComputeSwapStep(current, target, liquidity, math.NewInt(1_000), 3000)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.FeeAmount.IsNegative() {
		t.Fatalf("fee amount must never be negative: %s", res.FeeAmount)
	}
}
