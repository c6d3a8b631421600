// Package memoryledger is a test-only in-memory ledger.AssetLedger, standing
// in for a real custody backend in unit and scenario tests (spec §6's
// "mock assets" are explicitly out of the core's scope, but a mock is still
// the right tool to drive the engine's own test suite).
//
// Storage shape is grounded on the teacher pack's own mock state pattern
// (parsdao-pars' MockStateDB: a nested map, lazily allocated per outer key)
// rather than on anything in the teacher itself, which has no concept of an
// in-memory ledger.
package memoryledger

import (
	"context"
	"errors"

	"cosmossdk.io/math"

	"github.com/clmmcore/engine/pkg/ledger"
)

// ErrInsufficientBalance is returned when an owner's tracked balance cannot
// cover a transferFrom.
var ErrInsufficientBalance = errors.New("memoryledger: insufficient balance")

// Ledger is a minimal bookkeeping ledger.AssetLedger backed by in-process
// maps. Safe for sequential use only; the pool engine's own reentrancy gate
// (spec §5) is what would otherwise serialize access.
type Ledger struct {
	balances map[ledger.AssetID]map[ledger.Owner]math.Int
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{balances: make(map[ledger.AssetID]map[ledger.Owner]math.Int)}
}

// Credit seeds an owner's balance of an asset, the test-setup equivalent of
// minting or faucet-funding an account before exercising the pool.
func (l *Ledger) Credit(asset ledger.AssetID, owner ledger.Owner, amount math.Int) {
	l.bucket(asset)[owner] = l.balanceOf(asset, owner).Add(amount)
}

// BalanceOf returns an owner's tracked balance of an asset.
func (l *Ledger) BalanceOf(asset ledger.AssetID, owner ledger.Owner) math.Int {
	return l.balanceOf(asset, owner)
}

func (l *Ledger) balanceOf(asset ledger.AssetID, owner ledger.Owner) math.Int {
	bucket, ok := l.balances[asset]
	if !ok {
		return math.ZeroInt()
	}
	bal, ok := bucket[owner]
	if !ok {
		return math.ZeroInt()
	}
	return bal
}

func (l *Ledger) bucket(asset ledger.AssetID) map[ledger.Owner]math.Int {
	b, ok := l.balances[asset]
	if !ok {
		b = make(map[ledger.Owner]math.Int)
		l.balances[asset] = b
	}
	return b
}

// TransferFrom moves amount of asset from from's tracked balance to to's.
func (l *Ledger) TransferFrom(_ context.Context, asset ledger.AssetID, from, to ledger.Owner, amount math.Int) error {
	if amount.IsZero() {
		return nil
	}
	bal := l.balanceOf(asset, from)
	if bal.LT(amount) {
		return ErrInsufficientBalance
	}
	l.bucket(asset)[from] = bal.Sub(amount)
	l.bucket(asset)[to] = l.balanceOf(asset, to).Add(amount)
	return nil
}

// Transfer pays amount of asset out of the ledger's own pool-held balance to
// to. The pool address itself is tracked like any other owner: a prior
// TransferFrom into the pool's Owner is what funds it.
func (l *Ledger) Transfer(ctx context.Context, asset ledger.AssetID, to ledger.Owner, amount math.Int) error {
	return l.TransferFrom(ctx, asset, PoolOwner, to, amount)
}

// PoolOwner is the fixed ledger.Owner the pool itself transacts as.
var PoolOwner = ledger.Owner{0xC1, 0x1A, 0xA0, 0x01}
