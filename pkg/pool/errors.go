package pool

import "errors"

// Errors are grouped the way the wider spec bands them (§7): invariant
// errors indicate a bug or impossible state and should never be recovered
// from; input errors are surfaced to the caller with state unchanged;
// external errors (ledger failures) are surfaced verbatim. The teacher's own
// error style is a flat package of sentinel vars wrapped with %w at call
// sites (pkg/pool/raydium/clmmPool.go), which this mirrors.
var (
	// Invariant errors.
	ErrMathOverflow       = errors.New("pool: math overflow")
	ErrDivisionByZero     = errors.New("pool: division by zero")
	ErrLiquidityUnderflow = errors.New("pool: liquidity underflow")
	ErrLiquidityOverflow  = errors.New("pool: liquidity overflow")

	// Input errors.
	ErrReentrancy            = errors.New("pool: reentrant call")
	ErrNotInitialized        = errors.New("pool: not initialized")
	ErrAlreadyInitialized    = errors.New("pool: already initialized")
	ErrInvalidTickRange      = errors.New("pool: invalid tick range")
	ErrTickNotSpaced         = errors.New("pool: tick not a multiple of spacing")
	ErrTickOutOfRange        = errors.New("pool: tick out of range")
	ErrSqrtPriceOutOfRange   = errors.New("pool: sqrt price out of range")
	ErrInvalidSqrtPriceLimit = errors.New("pool: invalid sqrt price limit")
	ErrZeroAmount            = errors.New("pool: zero amount")
	ErrPokeWithoutLiquidity  = errors.New("pool: poke without liquidity")

	// Construction-time errors, not part of the wire taxonomy since a pool's
	// configuration is fixed before any caller can reach it.
	ErrInvalidConfig = errors.New("pool: invalid config")

	// External errors are returned verbatim from the ledger and not wrapped
	// into a sentinel here; callers compare against ledger-specific errors
	// if they need to distinguish them.
)
