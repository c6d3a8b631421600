package tickmath

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
)

func TestSqrtRatioAtTickZero(t *testing.T) {
	got, err := SqrtRatioAtTick(0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	q96 := math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 96))
	if !got.Equal(q96) {
		t.Fatalf("sqrtRatioAtTick(0) = %s, want 2^96 (%s)", got, q96)
	}
}

func TestSqrtRatioAtTickBounds(t *testing.T) {
	if _, err := SqrtRatioAtTick(MinTick); err != nil {
		t.Fatalf("MinTick should be valid: %v", err)
	}
	if _, err := SqrtRatioAtTick(MaxTick); err != nil {
		t.Fatalf("MaxTick should be valid: %v", err)
	}
	if _, err := SqrtRatioAtTick(MinTick - 1); err != ErrTickOutOfRange {
		t.Fatalf("expected ErrTickOutOfRange below MinTick, got %v", err)
	}
	if _, err := SqrtRatioAtTick(MaxTick + 1); err != ErrTickOutOfRange {
		t.Fatalf("expected ErrTickOutOfRange above MaxTick, got %v", err)
	}
}

func TestSqrtRatioAtTickMonotone(t *testing.T) {
	samples := []int32{MinTick, -443636, -100000, -1, 0, 1, 100000, 443636, MaxTick}
	var prev math.Int
	for i, tick := range samples {
		got, err := SqrtRatioAtTick(tick)
		if err != nil {
			t.Fatalf("SqrtRatioAtTick(%d): %v", tick, err)
		}
		if i > 0 && !got.GT(prev) {
			t.Fatalf("sqrtRatioAtTick not strictly increasing at tick %d: %s <= %s", tick, got, prev)
		}
		prev = got
	}
}

func TestTickAtSqrtRatioBounds(t *testing.T) {
	belowMin := math.NewIntFromBigInt(new(big.Int).Sub(MinSqrtRatio.BigInt(), big.NewInt(1)))
	if _, err := TickAtSqrtRatio(belowMin); err != ErrSqrtPriceOutOfRange {
		t.Fatalf("expected ErrSqrtPriceOutOfRange below MinSqrtRatio, got %v", err)
	}
	if _, err := TickAtSqrtRatio(MaxSqrtRatio); err != ErrSqrtPriceOutOfRange {
		t.Fatalf("expected ErrSqrtPriceOutOfRange at MaxSqrtRatio (half-open upper bound), got %v", err)
	}
}

func TestTickAtSqrtRatioRoundTripZero(t *testing.T) {
	sqrtAtZero, err := SqrtRatioAtTick(0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	tick, err := TickAtSqrtRatio(sqrtAtZero)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if tick != 0 {
		t.Fatalf("tickAtSqrtRatio(sqrtRatioAtTick(0)) = %d, want 0", tick)
	}
}
