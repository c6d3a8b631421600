// Package pool implements the CLMM pool engine: price state, tick-indexed
// liquidity, position accounting, and the five public mutating operations
// (initialize, mint, burn, collect, swap) that orchestrate them (spec §4.7,
// §4.8).
//
// The engine is the teacher's CLMMPool.Swap loop (pkg/pool/raydium/clmmPool.go)
// generalized from an on-chain account decoder that only replays a swap's
// arithmetic into a full read-write simulator: it owns the tick/bitmap/
// position mutation the teacher never needed (the teacher only ever reads
// ticks an indexer already decoded), while keeping the same swap-step loop
// shape and the same reliance on cosmossdk.io/math + lukechampine/uint128
// for every number that crosses a package boundary.
package pool

import (
	"context"
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"lukechampine.com/uint128"

	"github.com/clmmcore/engine/pkg/fx"
	"github.com/clmmcore/engine/pkg/ledger"
	"github.com/clmmcore/engine/pkg/position"
	"github.com/clmmcore/engine/pkg/sqrtpricemath"
	"github.com/clmmcore/engine/pkg/swapmath"
	"github.com/clmmcore/engine/pkg/tick"
	"github.com/clmmcore/engine/pkg/tickbitmap"
	"github.com/clmmcore/engine/pkg/tickmath"
)

// Config is a pool's immutable construction-time parameters (spec §3).
type Config struct {
	Token0Id    ledger.AssetID
	Token1Id    ledger.AssetID
	Fee         uint32 // parts per million, [0, 1_000_000)
	TickSpacing int32  // > 0
}

// Validate checks the invariants a Config must satisfy before a pool can be
// constructed from it (token0Id < token1Id, fee in range, positive spacing),
// the same validate-at-construction discipline the teacher applies when it
// decodes a CLMMPool account.
func (c Config) Validate() error {
	if c.Token0Id == "" || c.Token1Id == "" || c.Token0Id >= c.Token1Id {
		return ErrInvalidConfig
	}
	if c.Fee >= 1_000_000 {
		return ErrInvalidConfig
	}
	if c.TickSpacing <= 0 {
		return ErrInvalidConfig
	}
	return nil
}

// Slot0 is the pool's current price/tick and the reentrancy gate.
type Slot0 struct {
	SqrtPriceX96 math.Int
	Tick         int32
	Unlocked     bool
}

// Pool is one concentrated-liquidity market for a pair of assets.
type Pool struct {
	cfg                 Config
	maxLiquidityPerTick uint128.Uint128
	ledger              ledger.AssetLedger
	poolOwner           ledger.Owner

	mu sync.Mutex // serializes Go-level concurrent entry; the gate below is what spec §5 actually specifies

	slot0                Slot0
	feeGrowthGlobal0X128 math.Int
	feeGrowthGlobal1X128 math.Int
	liquidity            uint128.Uint128
	ticks                map[int32]*tick.Info
	bitmap               *tickbitmap.Bitmap
	positions            *position.Store
}

// New constructs an uninitialized pool. poolOwner is the ledger.Owner this
// pool transacts under (the account tokens are pulled into and paid out of).
func New(cfg Config, assetLedger ledger.AssetLedger, poolOwner ledger.Owner) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	maxPerTick := tick.MaxLiquidityPerTick(cfg.TickSpacing, tickmath.MinTick, tickmath.MaxTick)
	return &Pool{
		cfg:                  cfg,
		maxLiquidityPerTick:  maxPerTick,
		ledger:               assetLedger,
		poolOwner:            poolOwner,
		slot0:                Slot0{SqrtPriceX96: math.ZeroInt(), Unlocked: true},
		feeGrowthGlobal0X128: math.ZeroInt(),
		feeGrowthGlobal1X128: math.ZeroInt(),
		liquidity:            uint128.Zero,
		ticks:                make(map[int32]*tick.Info),
		bitmap:               tickbitmap.New(),
		positions:            position.NewStore(),
	}, nil
}

func (p *Pool) lock() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.slot0.Unlocked {
		return ErrReentrancy
	}
	p.slot0.Unlocked = false
	return nil
}

func (p *Pool) unlock() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.slot0.Unlocked = true
}

func (p *Pool) compressed(t int32) int32 {
	c := t / p.cfg.TickSpacing
	if t%p.cfg.TickSpacing != 0 && t < 0 {
		c--
	}
	return c
}

func validateTickRange(tickLower, tickUpper, tickSpacing int32) error {
	if tickLower >= tickUpper {
		return ErrInvalidTickRange
	}
	if tickLower < tickmath.MinTick || tickUpper > tickmath.MaxTick {
		return ErrTickOutOfRange
	}
	if tickLower%tickSpacing != 0 || tickUpper%tickSpacing != 0 {
		return ErrTickNotSpaced
	}
	return nil
}

// Initialize sets the pool's starting price exactly once (spec §4.7).
func (p *Pool) Initialize(sqrtPriceX96 math.Int) error {
	if err := p.lock(); err != nil {
		return err
	}
	defer p.unlock()

	if !p.slot0.SqrtPriceX96.IsZero() {
		return ErrAlreadyInitialized
	}
	if sqrtPriceX96.LT(tickmath.MinSqrtRatio) || sqrtPriceX96.GTE(tickmath.MaxSqrtRatio) {
		return ErrSqrtPriceOutOfRange
	}
	startTick, err := tickmath.TickAtSqrtRatio(sqrtPriceX96)
	if err != nil {
		return err
	}
	p.slot0.SqrtPriceX96 = sqrtPriceX96
	p.slot0.Tick = startTick
	return nil
}

func (p *Pool) requireInitialized() error {
	if p.slot0.SqrtPriceX96.IsZero() {
		return ErrNotInitialized
	}
	return nil
}

// updatePosition implements the position update protocol (spec §4.8) shared
// by Mint and Burn. liquidityDelta is signed (negative for a burn).
func (p *Pool) updatePosition(owner ledger.Owner, tickLower, tickUpper int32, liquidityDelta math.Int) (amount0, amount1 math.Int, err error) {
	key := positionKey(owner, tickLower, tickUpper)
	pos := p.positions.Get(key)

	if liquidityDelta.IsZero() && pos.Liquidity.IsZero() {
		return math.Int{}, math.Int{}, ErrPokeWithoutLiquidity
	}

	// Both ticks are updated on local copies first, so a liquidityGross
	// overflow on either one fails the whole call without having mutated
	// the live tick map.
	var lowerInfo tick.Info
	if existing, ok := p.ticks[tickLower]; ok {
		lowerInfo = *existing
	} else {
		lowerInfo = tick.NewInfo()
	}
	var upperInfo tick.Info
	if existing, ok := p.ticks[tickUpper]; ok {
		upperInfo = *existing
	} else {
		upperInfo = tick.NewInfo()
	}

	flippedLower, err := lowerInfo.Update(liquidityDelta, false, p.feeGrowthGlobal0X128, p.feeGrowthGlobal1X128, p.slot0.Tick, tickLower)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if lowerInfo.LiquidityGross.Cmp(p.maxLiquidityPerTick) > 0 {
		return math.Int{}, math.Int{}, ErrLiquidityOverflow
	}
	flippedUpper, err := upperInfo.Update(liquidityDelta, true, p.feeGrowthGlobal0X128, p.feeGrowthGlobal1X128, p.slot0.Tick, tickUpper)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if upperInfo.LiquidityGross.Cmp(p.maxLiquidityPerTick) > 0 {
		return math.Int{}, math.Int{}, ErrLiquidityOverflow
	}

	p.ticks[tickLower] = &lowerInfo
	p.ticks[tickUpper] = &upperInfo
	if flippedLower {
		p.bitmap.FlipTick(p.compressed(tickLower))
	}
	if flippedUpper {
		p.bitmap.FlipTick(p.compressed(tickUpper))
	}

	feeGrowthInside0, feeGrowthInside1 := tick.GetFeeGrowthInside(lowerInfo, upperInfo, tickLower, tickUpper, p.slot0.Tick, p.feeGrowthGlobal0X128, p.feeGrowthGlobal1X128)
	if err := pos.Update(liquidityDelta, feeGrowthInside0, feeGrowthInside1); err != nil {
		return math.Int{}, math.Int{}, err
	}

	amount0, amount1 = math.ZeroInt(), math.ZeroInt()
	switch {
	case p.slot0.Tick < tickLower:
		sqrtLower, _ := tickmath.SqrtRatioAtTick(tickLower)
		sqrtUpper, _ := tickmath.SqrtRatioAtTick(tickUpper)
		amount0, err = sqrtpricemath.GetAmount0DeltaSigned(sqrtLower, sqrtUpper, liquidityDelta)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
	case p.slot0.Tick < tickUpper:
		sqrtLower, _ := tickmath.SqrtRatioAtTick(tickLower)
		sqrtUpper, _ := tickmath.SqrtRatioAtTick(tickUpper)
		amount0, err = sqrtpricemath.GetAmount0DeltaSigned(p.slot0.SqrtPriceX96, sqrtUpper, liquidityDelta)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
		amount1, err = sqrtpricemath.GetAmount1DeltaSigned(sqrtLower, p.slot0.SqrtPriceX96, liquidityDelta)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
		newLiquidity, err := fx.AddI128ToU128(p.liquidity, liquidityDelta)
		if err != nil {
			return math.Int{}, math.Int{}, ErrLiquidityUnderflow
		}
		p.liquidity = newLiquidity
	default:
		sqrtLower, _ := tickmath.SqrtRatioAtTick(tickLower)
		sqrtUpper, _ := tickmath.SqrtRatioAtTick(tickUpper)
		amount1, err = sqrtpricemath.GetAmount1DeltaSigned(sqrtLower, sqrtUpper, liquidityDelta)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
	}

	if liquidityDelta.IsNegative() {
		if lowerInfo.LiquidityGross.IsZero() {
			delete(p.ticks, tickLower)
		}
		if upperInfo.LiquidityGross.IsZero() {
			delete(p.ticks, tickUpper)
		}
	}

	return amount0, amount1, nil
}

// Mint adds liquidity to recipient's position over [tickLower, tickUpper)
// and pulls the required token amounts from recipient through the ledger
// (spec §4.7).
func (p *Pool) Mint(ctx context.Context, recipient ledger.Owner, tickLower, tickUpper int32, amount uint128.Uint128) (amount0, amount1 math.Int, err error) {
	if err := p.lock(); err != nil {
		return math.Int{}, math.Int{}, err
	}
	defer p.unlock()

	if err := p.requireInitialized(); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if amount.IsZero() {
		return math.Int{}, math.Int{}, ErrZeroAmount
	}
	if err := validateTickRange(tickLower, tickUpper, p.cfg.TickSpacing); err != nil {
		return math.Int{}, math.Int{}, err
	}

	delta := fx.IntFromU128(amount)
	amount0, amount1, err = p.updatePosition(recipient, tickLower, tickUpper, delta)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	if amount0.IsPositive() {
		if err := p.ledger.TransferFrom(ctx, p.cfg.Token0Id, recipient, p.poolOwner, amount0); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}
	if amount1.IsPositive() {
		if err := p.ledger.TransferFrom(ctx, p.cfg.Token1Id, recipient, p.poolOwner, amount1); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}

	return amount0, amount1, nil
}

// Burn removes liquidity from the caller's position, crediting the computed
// token amounts to tokensOwed rather than transferring them (spec §4.7).
func (p *Pool) Burn(owner ledger.Owner, tickLower, tickUpper int32, amount uint128.Uint128) (amount0, amount1 math.Int, err error) {
	if err := p.lock(); err != nil {
		return math.Int{}, math.Int{}, err
	}
	defer p.unlock()

	if err := p.requireInitialized(); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := validateTickRange(tickLower, tickUpper, p.cfg.TickSpacing); err != nil {
		return math.Int{}, math.Int{}, err
	}

	delta := fx.IntFromU128(amount).Neg()
	amount0, amount1, err = p.updatePosition(owner, tickLower, tickUpper, delta)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	key := positionKey(owner, tickLower, tickUpper)
	pos := p.positions.Get(key)
	if amount0.IsNegative() {
		owed0, err := fx.U128FromInt(amount0.Neg())
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
		newOwed0, err := fx.AddU128Checked(pos.TokensOwed0, owed0)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
		pos.TokensOwed0 = newOwed0
	}
	if amount1.IsNegative() {
		owed1, err := fx.U128FromInt(amount1.Neg())
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
		newOwed1, err := fx.AddU128Checked(pos.TokensOwed1, owed1)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
		pos.TokensOwed1 = newOwed1
	}

	return amount0.Abs(), amount1.Abs(), nil
}

// Collect pays out up to (req0, req1) of a position's accrued tokensOwed to
// recipient (spec §4.7).
func (p *Pool) Collect(ctx context.Context, owner, recipient ledger.Owner, tickLower, tickUpper int32, req0, req1 uint128.Uint128) (amount0, amount1 uint128.Uint128, err error) {
	if err := p.lock(); err != nil {
		return uint128.Zero, uint128.Zero, err
	}
	defer p.unlock()

	key := positionKey(owner, tickLower, tickUpper)
	pos := p.positions.Get(key)

	amount0 = req0
	if amount0.Cmp(pos.TokensOwed0) > 0 {
		amount0 = pos.TokensOwed0
	}
	amount1 = req1
	if amount1.Cmp(pos.TokensOwed1) > 0 {
		amount1 = pos.TokensOwed1
	}

	pos.TokensOwed0 = pos.TokensOwed0.Sub(amount0)
	pos.TokensOwed1 = pos.TokensOwed1.Sub(amount1)

	if !amount0.IsZero() {
		if err := p.ledger.Transfer(ctx, p.cfg.Token0Id, recipient, fx.IntFromU128(amount0)); err != nil {
			return uint128.Zero, uint128.Zero, err
		}
	}
	if !amount1.IsZero() {
		if err := p.ledger.Transfer(ctx, p.cfg.Token1Id, recipient, fx.IntFromU128(amount1)); err != nil {
			return uint128.Zero, uint128.Zero, err
		}
	}

	return amount0, amount1, nil
}

func positionKey(owner ledger.Owner, tickLower, tickUpper int32) position.Key {
	return position.MakeKey([32]byte(owner), tickLower, tickUpper)
}

// nextInitializedTick scans word by word, the same fallback loop the
// teacher's bitmap search performs across tick-array boundaries, until it
// finds an initialized tick or runs off the representable tick range.
func (p *Pool) nextInitializedTick(compressedTick int32, lte bool) (next int32, initialized bool) {
	minCompressed := tickmath.MinTick / p.cfg.TickSpacing
	maxCompressed := tickmath.MaxTick / p.cfg.TickSpacing

	for {
		next, initialized = p.bitmap.NextInitializedTickWithinOneWord(compressedTick, lte)
		if initialized {
			return next, true
		}
		if lte {
			if next <= minCompressed {
				return minCompressed, false
			}
		} else {
			if next >= maxCompressed {
				return maxCompressed, false
			}
		}
		compressedTick = next
		if lte {
			compressedTick--
		}
	}
}

// swapState is the loop-carried accumulator a swap advances one step at a
// time (spec §4.7).
type swapState struct {
	amountSpecifiedRemaining math.Int
	amountCalculated         math.Int
	sqrtPriceX96             math.Int
	tick                     int32
	feeGrowthGlobalX128      math.Int
	liquidity                uint128.Uint128
}

// Swap exchanges token0 for token1 or vice versa, walking the price across as
// many initialized ticks as amountSpecified (or sqrtPriceLimit) requires
// (spec §4.7).
//
// amountSpecified positive means exact input, negative means exact output.
// zeroForOne selects which token is being given up.
func (p *Pool) Swap(ctx context.Context, recipient ledger.Owner, payer ledger.Owner, zeroForOne bool, amountSpecified math.Int, sqrtPriceLimit math.Int) (amount0, amount1 math.Int, err error) {
	if err := p.lock(); err != nil {
		return math.Int{}, math.Int{}, err
	}
	defer p.unlock()

	if err := p.requireInitialized(); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if amountSpecified.IsZero() {
		return math.Int{}, math.Int{}, ErrZeroAmount
	}

	startPrice := p.slot0.SqrtPriceX96
	if zeroForOne {
		if sqrtPriceLimit.GTE(startPrice) || sqrtPriceLimit.LTE(tickmath.MinSqrtRatio) {
			return math.Int{}, math.Int{}, ErrInvalidSqrtPriceLimit
		}
	} else {
		if sqrtPriceLimit.LTE(startPrice) || sqrtPriceLimit.GTE(tickmath.MaxSqrtRatio) {
			return math.Int{}, math.Int{}, ErrInvalidSqrtPriceLimit
		}
	}

	feeGrowthGlobalX128 := p.feeGrowthGlobal0X128
	if !zeroForOne {
		feeGrowthGlobalX128 = p.feeGrowthGlobal1X128
	}

	state := swapState{
		amountSpecifiedRemaining: amountSpecified,
		amountCalculated:         math.ZeroInt(),
		sqrtPriceX96:             startPrice,
		tick:                     p.slot0.Tick,
		feeGrowthGlobalX128:      feeGrowthGlobalX128,
		liquidity:                p.liquidity,
	}

	exactInput := amountSpecified.IsPositive()

	for !state.amountSpecifiedRemaining.IsZero() && !state.sqrtPriceX96.Equal(sqrtPriceLimit) {
		nextCompressed, initialized := p.nextInitializedTick(p.compressed(state.tick), zeroForOne)
		nextTick := nextCompressed * p.cfg.TickSpacing
		if nextTick < tickmath.MinTick {
			nextTick = tickmath.MinTick
		}
		if nextTick > tickmath.MaxTick {
			nextTick = tickmath.MaxTick
		}

		sqrtPriceNextTick, err := tickmath.SqrtRatioAtTick(nextTick)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}

		target := sqrtPriceNextTick
		if zeroForOne {
			if sqrtPriceNextTick.LT(sqrtPriceLimit) {
				target = sqrtPriceLimit
			}
		} else {
			if sqrtPriceNextTick.GT(sqrtPriceLimit) {
				target = sqrtPriceLimit
			}
		}

		step, err := swapmath.ComputeSwapStep(state.sqrtPriceX96, target, fx.IntFromU128(state.liquidity), state.amountSpecifiedRemaining, p.cfg.Fee)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}

		if exactInput {
			state.amountSpecifiedRemaining = state.amountSpecifiedRemaining.Sub(step.AmountIn.Add(step.FeeAmount))
			state.amountCalculated = state.amountCalculated.Sub(step.AmountOut)
		} else {
			state.amountSpecifiedRemaining = state.amountSpecifiedRemaining.Add(step.AmountOut)
			state.amountCalculated = state.amountCalculated.Add(step.AmountIn.Add(step.FeeAmount))
		}

		if !state.liquidity.IsZero() {
			feeDelta, ferr := fx.MulDiv(step.FeeAmount, q128Swap, fx.IntFromU128(state.liquidity))
			if ferr != nil {
				return math.Int{}, math.Int{}, ferr
			}
			state.feeGrowthGlobalX128 = fx.WrapAdd256(state.feeGrowthGlobalX128, feeDelta)
		}

		if step.SqrtPriceNext.Equal(sqrtPriceNextTick) {
			if initialized {
				tickInfo, ok := p.ticks[nextTick]
				if !ok {
					fresh := tick.NewInfo()
					tickInfo = &fresh
				}
				feeGrowth0, feeGrowth1 := state.feeGrowthGlobalX128, p.otherFeeGrowthSide(zeroForOne)
				if !zeroForOne {
					feeGrowth0, feeGrowth1 = feeGrowth1, state.feeGrowthGlobalX128
				}
				liquidityNet := tickInfo.Cross(feeGrowth0, feeGrowth1)
				p.ticks[nextTick] = tickInfo

				if zeroForOne {
					liquidityNet = liquidityNet.Neg()
				}
				newLiquidity, lerr := fx.AddI128ToU128(state.liquidity, liquidityNet)
				if lerr != nil {
					return math.Int{}, math.Int{}, ErrLiquidityUnderflow
				}
				state.liquidity = newLiquidity
			}

			if zeroForOne {
				state.tick = nextTick - 1
			} else {
				state.tick = nextTick
			}
		} else {
			recomputed, terr := tickmath.TickAtSqrtRatio(step.SqrtPriceNext)
			if terr != nil {
				return math.Int{}, math.Int{}, terr
			}
			state.tick = recomputed
		}
		state.sqrtPriceX96 = step.SqrtPriceNext
	}

	p.slot0.SqrtPriceX96 = state.sqrtPriceX96
	p.slot0.Tick = state.tick
	p.liquidity = state.liquidity
	if zeroForOne {
		p.feeGrowthGlobal0X128 = state.feeGrowthGlobalX128
	} else {
		p.feeGrowthGlobal1X128 = state.feeGrowthGlobalX128
	}

	consumed := amountSpecified.Sub(state.amountSpecifiedRemaining)
	if zeroForOne == exactInput {
		amount0, amount1 = consumed, state.amountCalculated
	} else {
		amount0, amount1 = state.amountCalculated, consumed
	}

	// Settlement direction follows zeroForOne alone: the swap's input leg is
	// always pulled from payer and its output leg always paid to recipient,
	// regardless of either amount's computed sign.
	if zeroForOne {
		if err := p.ledger.TransferFrom(ctx, p.cfg.Token0Id, payer, p.poolOwner, amount0); err != nil {
			return math.Int{}, math.Int{}, err
		}
		if err := p.ledger.Transfer(ctx, p.cfg.Token1Id, recipient, amount1.Neg()); err != nil {
			return math.Int{}, math.Int{}, err
		}
	} else {
		if err := p.ledger.TransferFrom(ctx, p.cfg.Token1Id, payer, p.poolOwner, amount1); err != nil {
			return math.Int{}, math.Int{}, err
		}
		if err := p.ledger.Transfer(ctx, p.cfg.Token0Id, recipient, amount0.Neg()); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}

	return amount0, amount1, nil
}

// otherFeeGrowthSide returns the pool's stored fee-growth accumulator for
// whichever side the in-progress swap is NOT updating live, so Cross sees a
// consistent (feeGrowthGlobal0, feeGrowthGlobal1) pair.
func (p *Pool) otherFeeGrowthSide(zeroForOne bool) math.Int {
	if zeroForOne {
		return p.feeGrowthGlobal1X128
	}
	return p.feeGrowthGlobal0X128
}

var q128Swap = func() math.Int {
	one := math.NewInt(1)
	result := one
	for i := 0; i < 128; i++ {
		result = result.Add(result)
	}
	return result
}()

// Slot0 returns a copy of the pool's current price/tick/lock state.
func (p *Pool) Slot0() Slot0 {
	return p.slot0
}

// Liquidity returns the pool's current in-range liquidity.
func (p *Pool) Liquidity() uint128.Uint128 {
	return p.liquidity
}

// FeeGrowthGlobal returns the pool's lifetime fee-growth accumulators.
func (p *Pool) FeeGrowthGlobal() (feeGrowthGlobal0X128, feeGrowthGlobal1X128 math.Int) {
	return p.feeGrowthGlobal0X128, p.feeGrowthGlobal1X128
}

// TickInfo returns a copy of the state tracked at tick, and whether it is
// currently initialized in this pool's tick map.
func (p *Pool) TickInfo(t int32) (tick.Info, bool) {
	info, ok := p.ticks[t]
	if !ok {
		return tick.Info{}, false
	}
	return *info, true
}

// Position returns a copy of a position's tracked state.
func (p *Pool) Position(owner ledger.Owner, tickLower, tickUpper int32) (position.Info, bool) {
	return p.positions.Peek(positionKey(owner, tickLower, tickUpper))
}

// TickBitmapWord returns the raw bitmap word at wordPos, for read-only
// inspection.
func (p *Pool) TickBitmapWord(wordPos int32) *big.Int {
	return p.bitmap.Word(wordPos)
}
