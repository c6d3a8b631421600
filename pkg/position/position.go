// Package position stores per-owner liquidity positions keyed by
// (owner, tickLower, tickUpper) (spec §3, §4.8).
//
// Key hashing follows the teacher-pack's own storage-key pattern
// (parsdao-pars' ai.makeSpentKey / ComputeWorkId: BLAKE3 over the
// concatenated field bytes, truncated into a fixed-width array) rather than
// the teacher repo's own code, which never needs a collision-resistant
// composite key. github.com/zeebo/blake3 gives a 128-bit-plus collision
// margin at a fraction of sha256's setup cost, and nothing else in the
// teacher/pack corpus already covers key hashing, so it is the dependency
// reused here.
package position

import (
	"encoding/binary"

	"cosmossdk.io/math"
	"github.com/zeebo/blake3"
	"lukechampine.com/uint128"

	"github.com/clmmcore/engine/pkg/fx"
)

// Key uniquely identifies a position.
type Key [32]byte

// MakeKey derives a position's storage key from its owner and tick range,
// the same BLAKE3(prefix || fields) shape the pack's makeSpentKey uses.
func MakeKey(owner [32]byte, tickLower, tickUpper int32) Key {
	h := blake3.New()
	h.Write(owner[:])

	var ticks [8]byte
	binary.BigEndian.PutUint32(ticks[0:4], uint32(tickLower))
	binary.BigEndian.PutUint32(ticks[4:8], uint32(tickUpper))
	h.Write(ticks[:])

	var key Key
	h.Digest().Read(key[:])
	return key
}

// Info is the liquidity and accrued-fee state tracked per position.
type Info struct {
	Liquidity                uint128.Uint128
	FeeGrowthInside0LastX128 math.Int
	FeeGrowthInside1LastX128 math.Int
	TokensOwed0              uint128.Uint128
	TokensOwed1              uint128.Uint128
}

// NewInfo returns a zeroed position.
func NewInfo() Info {
	return Info{
		Liquidity:                uint128.Zero,
		FeeGrowthInside0LastX128: math.ZeroInt(),
		FeeGrowthInside1LastX128: math.ZeroInt(),
		TokensOwed0:              uint128.Zero,
		TokensOwed1:              uint128.Zero,
	}
}

// Update applies a liquidity delta and settles fees owed since the position
// was last touched, given the tick range's current feeGrowthInside
// accumulators. liquidityDelta may be negative (a burn). Tokens owed
// accumulate rather than overwrite, so a collect that happens in the same
// call as a burn still sees the burn's share.
func (p *Info) Update(liquidityDelta math.Int, feeGrowthInside0X128, feeGrowthInside1X128 math.Int) error {
	var newLiquidity uint128.Uint128
	var err error
	if liquidityDelta.IsZero() {
		newLiquidity = p.Liquidity
	} else {
		newLiquidity, err = fx.AddI128ToU128(p.Liquidity, liquidityDelta)
		if err != nil {
			return err
		}
	}

	owed0, err := fx.MulDiv(
		fx.IntFromU128(p.Liquidity),
		fx.WrapSub256(feeGrowthInside0X128, p.FeeGrowthInside0LastX128),
		q128,
	)
	if err != nil {
		return err
	}
	owed1, err := fx.MulDiv(
		fx.IntFromU128(p.Liquidity),
		fx.WrapSub256(feeGrowthInside1X128, p.FeeGrowthInside1LastX128),
		q128,
	)
	if err != nil {
		return err
	}

	owed0U128, err := fx.U128FromInt(owed0)
	if err != nil {
		return err
	}
	owed1U128, err := fx.U128FromInt(owed1)
	if err != nil {
		return err
	}
	tokensOwed0, err := fx.AddU128Checked(p.TokensOwed0, owed0U128)
	if err != nil {
		return err
	}
	tokensOwed1, err := fx.AddU128Checked(p.TokensOwed1, owed1U128)
	if err != nil {
		return err
	}

	p.Liquidity = newLiquidity
	p.FeeGrowthInside0LastX128 = feeGrowthInside0X128
	p.FeeGrowthInside1LastX128 = feeGrowthInside1X128
	p.TokensOwed0 = tokensOwed0
	p.TokensOwed1 = tokensOwed1
	return nil
}

var q128 = func() math.Int {
	one := math.NewInt(1)
	result := one
	for i := 0; i < 128; i++ {
		result = result.Add(result)
	}
	return result
}()

// Store is an in-memory position book, keyed by the composite Key above.
type Store struct {
	byKey map[Key]*Info
}

// NewStore returns an empty position store.
func NewStore() *Store {
	return &Store{byKey: make(map[Key]*Info)}
}

// Get returns the position at key, creating a zeroed one on first access (a
// position implicitly exists the moment its key is first touched, the same
// as Uniswap's positions mapping).
func (s *Store) Get(key Key) *Info {
	info, ok := s.byKey[key]
	if !ok {
		fresh := NewInfo()
		info = &fresh
		s.byKey[key] = info
	}
	return info
}

// Peek returns the position at key without creating it, and whether it
// exists, for read-only observers.
func (s *Store) Peek(key Key) (Info, bool) {
	info, ok := s.byKey[key]
	if !ok {
		return Info{}, false
	}
	return *info, true
}
