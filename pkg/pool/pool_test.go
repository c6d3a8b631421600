package pool

import (
	"context"
	"testing"

	"cosmossdk.io/math"
	"lukechampine.com/uint128"

	"github.com/clmmcore/engine/pkg/ledger"
	"github.com/clmmcore/engine/pkg/ledger/memoryledger"
	"github.com/clmmcore/engine/pkg/tickmath"
)

const (
	token0 ledger.AssetID = "TOKEN0"
	token1 ledger.AssetID = "TOKEN1"
)

var poolOwner = memoryledger.PoolOwner

func ownerOf(b byte) ledger.Owner {
	var o ledger.Owner
	o[0] = b
	return o
}

func newTestPool(t *testing.T, spacing int32, fee uint32) (*Pool, *memoryledger.Ledger) {
	t.Helper()
	m := memoryledger.New()
	p, err := New(Config{Token0Id: token0, Token1Id: token1, Fee: fee, TickSpacing: spacing}, m, poolOwner)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p, m
}

func sqrtAt(t *testing.T, tick int32) math.Int {
	t.Helper()
	v, err := tickmath.SqrtRatioAtTick(tick)
	if err != nil {
		t.Fatalf("SqrtRatioAtTick(%d): %v", tick, err)
	}
	return v
}

func oneX96(t *testing.T) math.Int {
	t.Helper()
	return sqrtAt(t, 0)
}

func fund(m *memoryledger.Ledger, owner ledger.Owner, amount int64) {
	m.Credit(token0, owner, math.NewInt(amount))
	m.Credit(token1, owner, math.NewInt(amount))
}

func u128(v int64) uint128.Uint128 {
	return uint128.From64(uint64(v))
}

// S1: init + mint + burn round-trip returns exactly what was minted.
func TestScenarioInitMintBurnRoundTrip(t *testing.T) {
	p, m := newTestPool(t, 1, 3000)
	alice := ownerOf(1)
	fund(m, alice, 10_000_000_000)

	if err := p.Initialize(oneX96(t)); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	amount0, amount1, err := p.Mint(context.Background(), alice, -10, 10, u128(1_000_000))
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if !amount0.IsPositive() || !amount1.IsPositive() {
		t.Fatalf("expected both amounts positive for a range straddling the current tick, got %s %s", amount0, amount1)
	}

	burned0, burned1, err := p.Burn(alice, -10, 10, u128(1_000_000))
	if err != nil {
		t.Fatalf("Burn: %v", err)
	}
	if !burned0.Equal(amount0) || !burned1.Equal(amount1) {
		t.Fatalf("burn amounts %s/%s do not match mint amounts %s/%s", burned0, burned1, amount0, amount1)
	}

	huge := u128(1_000_000_000_000)
	collected0, collected1, err := p.Collect(context.Background(), alice, alice, -10, 10, huge, huge)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if collected0.Big().Cmp(amount0.BigInt()) != 0 || collected1.Big().Cmp(amount1.BigInt()) != 0 {
		t.Fatalf("collected %s/%s does not equal minted %s/%s", collected0, collected1, amount0, amount1)
	}

	if !p.Liquidity().IsZero() {
		t.Fatalf("pool liquidity should be zero after full burn, got %s", p.Liquidity())
	}
	if _, ok := p.TickInfo(-10); ok {
		t.Fatalf("lower boundary tick should have been cleared")
	}
	if _, ok := p.TickInfo(10); ok {
		t.Fatalf("upper boundary tick should have been cleared")
	}
	if p.TickBitmapWord(0).Sign() != 0 {
		t.Fatalf("bitmap word 0 should be empty after full burn, got %s", p.TickBitmapWord(0).Text(2))
	}
}

// S2: a swap that never crosses a tick boundary.
func TestScenarioSwapWithinOneTick(t *testing.T) {
	p, m := newTestPool(t, 1, 3000)
	alice, bob := ownerOf(1), ownerOf(2)
	fund(m, alice, 10_000_000_000)
	fund(m, bob, 10_000_000_000)

	if err := p.Initialize(oneX96(t)); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if _, _, err := p.Mint(context.Background(), alice, -10, 10, u128(1_000_000_000)); err != nil {
		t.Fatalf("Mint: %v", err)
	}

	limit := sqrtAt(t, 10)
	amount0, amount1, err := p.Swap(context.Background(), bob, bob, false, math.NewInt(1000), limit)
	if err != nil {
		t.Fatalf("Swap: %v", err)
	}

	if !amount1.Equal(math.NewInt(1000)) {
		t.Fatalf("expected amount1 == +1000 for an exact-input swap, got %s", amount1)
	}
	if !amount0.IsNegative() {
		t.Fatalf("expected amount0 negative (pool pays out token0), got %s", amount0)
	}
	gotTick := p.Slot0().Tick
	if gotTick < 0 || gotTick >= 10 {
		t.Fatalf("expected ending tick in (0, 10) [inclusive of 0], got %d", gotTick)
	}
	fg0, fg1 := p.FeeGrowthGlobal()
	if !fg0.IsZero() {
		t.Fatalf("token0 fee growth should not move on a one-for-zero swap, got %s", fg0)
	}
	if !fg1.IsPositive() {
		t.Fatalf("token1 fee growth should have accrued, got %s", fg1)
	}
}

// S3: a swap large enough to cross two tick boundaries, clearing liquidity
// back to zero.
func TestScenarioSwapCrossesMultipleTicks(t *testing.T) {
	p, m := newTestPool(t, 1, 3000)
	alice, bob := ownerOf(1), ownerOf(2)
	fund(m, alice, 1_000_000_000_000)
	fund(m, bob, 1_000_000_000_000)

	if err := p.Initialize(oneX96(t)); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if _, _, err := p.Mint(context.Background(), alice, -10, 10, u128(1_000_000_000)); err != nil {
		t.Fatalf("Mint inner: %v", err)
	}
	if _, _, err := p.Mint(context.Background(), alice, -30, 30, u128(1_000_000_000)); err != nil {
		t.Fatalf("Mint outer: %v", err)
	}

	limit := tickmath.MaxSqrtRatio.Sub(math.NewInt(1))
	_, _, err := p.Swap(context.Background(), bob, bob, false, math.NewInt(1_000_000_000), limit)
	if err != nil {
		t.Fatalf("Swap: %v", err)
	}

	if !p.Liquidity().IsZero() {
		t.Fatalf("expected liquidity to return to zero once price passes both ranges, got %s", p.Liquidity())
	}
}

// S5: a sampling of the engine's input-validation rejection paths.
func TestScenarioRejectionPaths(t *testing.T) {
	t.Run("initialize zero price", func(t *testing.T) {
		p, _ := newTestPool(t, 1, 3000)
		if err := p.Initialize(math.ZeroInt()); err != ErrSqrtPriceOutOfRange {
			t.Fatalf("got %v, want ErrSqrtPriceOutOfRange", err)
		}
	})

	t.Run("double initialize", func(t *testing.T) {
		p, _ := newTestPool(t, 1, 3000)
		if err := p.Initialize(oneX96(t)); err != nil {
			t.Fatalf("Initialize: %v", err)
		}
		if err := p.Initialize(oneX96(t)); err != ErrAlreadyInitialized {
			t.Fatalf("got %v, want ErrAlreadyInitialized", err)
		}
	})

	t.Run("inverted tick range", func(t *testing.T) {
		p, m := newTestPool(t, 1, 3000)
		alice := ownerOf(1)
		fund(m, alice, 1_000_000)
		if err := p.Initialize(oneX96(t)); err != nil {
			t.Fatalf("Initialize: %v", err)
		}
		_, _, err := p.Mint(context.Background(), alice, 10, 0, u128(1))
		if err != ErrInvalidTickRange {
			t.Fatalf("got %v, want ErrInvalidTickRange", err)
		}
	})

	t.Run("tick out of range", func(t *testing.T) {
		p, m := newTestPool(t, 1, 3000)
		alice := ownerOf(1)
		fund(m, alice, 1_000_000)
		if err := p.Initialize(oneX96(t)); err != nil {
			t.Fatalf("Initialize: %v", err)
		}
		_, _, err := p.Mint(context.Background(), alice, 887273, 887274, u128(1))
		if err != ErrTickOutOfRange {
			t.Fatalf("got %v, want ErrTickOutOfRange", err)
		}
	})

	t.Run("zero amount mint", func(t *testing.T) {
		p, m := newTestPool(t, 1, 3000)
		alice := ownerOf(1)
		fund(m, alice, 1_000_000)
		if err := p.Initialize(oneX96(t)); err != nil {
			t.Fatalf("Initialize: %v", err)
		}
		_, _, err := p.Mint(context.Background(), alice, -10, 10, uint128.Zero)
		if err != ErrZeroAmount {
			t.Fatalf("got %v, want ErrZeroAmount", err)
		}
	})

	t.Run("swap limit on the wrong side of current price", func(t *testing.T) {
		p, m := newTestPool(t, 1, 3000)
		bob := ownerOf(2)
		fund(m, bob, 1_000_000)
		if err := p.Initialize(oneX96(t)); err != nil {
			t.Fatalf("Initialize: %v", err)
		}
		current := p.Slot0().SqrtPriceX96
		_, _, err := p.Swap(context.Background(), bob, bob, true, math.NewInt(100), current.Add(math.NewInt(1)))
		if err != ErrInvalidSqrtPriceLimit {
			t.Fatalf("got %v, want ErrInvalidSqrtPriceLimit", err)
		}
	})
}

// S6: exact-output swap delivers precisely the requested amount of the
// specified token.
func TestScenarioExactOutputSwap(t *testing.T) {
	p, m := newTestPool(t, 1, 3000)
	alice, bob := ownerOf(1), ownerOf(2)
	fund(m, alice, 10_000_000_000)
	fund(m, bob, 10_000_000_000)

	if err := p.Initialize(oneX96(t)); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if _, _, err := p.Mint(context.Background(), alice, -10, 10, u128(1_000_000_000)); err != nil {
		t.Fatalf("Mint: %v", err)
	}

	limit := sqrtAt(t, 10)
	amount0, amount1, err := p.Swap(context.Background(), bob, bob, false, math.NewInt(-500), limit)
	if err != nil {
		t.Fatalf("Swap: %v", err)
	}

	if !amount0.Equal(math.NewInt(-500)) {
		t.Fatalf("expected amount0 == -500 exactly, got %s", amount0)
	}
	if !amount1.IsPositive() {
		t.Fatalf("expected amount1 positive (caller pays token1 in), got %s", amount1)
	}
}

// Reentrancy gate: a failed call must still release the gate for the next
// attempt.
func TestReentrancyGateReleasesOnFailure(t *testing.T) {
	p, _ := newTestPool(t, 1, 3000)
	if err := p.Initialize(math.ZeroInt()); err != ErrSqrtPriceOutOfRange {
		t.Fatalf("got %v, want ErrSqrtPriceOutOfRange", err)
	}
	if !p.Slot0().Unlocked {
		t.Fatalf("gate should be released after a failed call")
	}
	if err := p.Initialize(oneX96(t)); err != nil {
		t.Fatalf("Initialize should succeed after the gate was released: %v", err)
	}
}

// Poking a position with zero liquidity delta before it has ever held
// liquidity must be rejected.
func TestPokeWithoutLiquidityRejected(t *testing.T) {
	p, _ := newTestPool(t, 1, 3000)
	alice := ownerOf(1)
	if err := p.Initialize(oneX96(t)); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	_, _, err := p.Burn(alice, -10, 10, uint128.Zero)
	if err != ErrPokeWithoutLiquidity {
		t.Fatalf("got %v, want ErrPokeWithoutLiquidity", err)
	}
}

// A position entirely above the current tick only ever requires token0, and
// must not perturb pool.liquidity (spec §9's resolution of the open
// question on ranges outside the current price).
func TestMintAboveCurrentPriceDoesNotChangePoolLiquidity(t *testing.T) {
	p, m := newTestPool(t, 1, 3000)
	alice := ownerOf(1)
	fund(m, alice, 10_000_000_000)

	if err := p.Initialize(oneX96(t)); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	amount0, amount1, err := p.Mint(context.Background(), alice, 100, 200, u128(1_000_000))
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if !amount1.IsZero() {
		t.Fatalf("expected amount1 == 0 for a range entirely above the current tick, got %s", amount1)
	}
	if !amount0.IsPositive() {
		t.Fatalf("expected amount0 > 0, got %s", amount0)
	}
	if !p.Liquidity().IsZero() {
		t.Fatalf("pool.liquidity must stay zero when the minted range never contains the current tick, got %s", p.Liquidity())
	}
}
