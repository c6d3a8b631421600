// Package ledger defines the asset-custody boundary the pool engine
// transacts across (spec §6): the engine never moves tokens itself, it asks
// an external AssetLedger to.
//
// Modeled as an injected capability (spec §9's "dynamic dispatch" note),
// matching the teacher's own separation between the pure pool/account math
// in pkg/pool/raydium and the chain I/O in pkg/sol: the engine package never
// imports pkg/sol directly, only this interface.
package ledger

import (
	"context"

	"cosmossdk.io/math"
)

// AssetID identifies one of the pool's two tokens. The pool only ever
// compares two AssetIDs for ordering (token0Id < token1Id); it never
// interprets the value itself.
type AssetID string

// Owner identifies an account able to hold and authorize transfers of an
// asset. Kept as a fixed-width byte array so both an on-chain public key and
// an in-memory test identity fit without a conversion layer.
type Owner [32]byte

// AssetLedger is the custody boundary: transferFrom pulls funds into the
// pool (authorized by the caller), transfer pays funds out. Both operations
// are per-asset and may fail for reasons outside the engine's control
// (insufficient balance, missing authorization, network failure); any
// failure aborts the pool operation that requested it (spec §7).
type AssetLedger interface {
	TransferFrom(ctx context.Context, asset AssetID, from, to Owner, amount math.Int) error
	Transfer(ctx context.Context, asset AssetID, to Owner, amount math.Int) error
}
