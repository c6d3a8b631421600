// Package solanaledger adapts the teacher's pkg/sol RPC/signing client into
// a ledger.AssetLedger, the real (non-test) backend for a pool deployed
// against SPL token mints.
//
// SelectOrCreateSPLTokenAccount / SignTransaction / SendTx are the teacher's
// own (pkg/sol/token_account.go, sign.go, send.go); this package's job is
// only to turn AssetLedger's transferFrom/transfer shape into the SPL
// token-program transfer instruction and push it through that existing
// pipeline, the same two-step "resolve the ATA, then sign-and-send" idiom
// the teacher already uses for SOL wrapping (pkg/sol/wsol_account.go).
package solanaledger

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/clmmcore/engine/pkg/ledger"
	"github.com/clmmcore/engine/pkg/sol"
)

// mintLayout mirrors the SPL token program's Mint account layout closely
// enough to recover decimals; the rest of the struct is padding we never
// read. Same decode-a-fixed-account-layout idiom the teacher uses for its
// Raydium/Meteora account structs.
type mintLayout struct {
	MintAuthorityOption   uint32
	MintAuthority         solana.PublicKey
	Supply                uint64
	Decimals              uint8
	IsInitialized         bool
	FreezeAuthorityOption uint32
	FreezeAuthority       solana.PublicKey
}

// MintDecimals fetches and decodes a mint's on-chain account to recover its
// decimal precision, letting a caller validate an AssetID against the
// cluster before trusting amounts expressed in that asset's smallest unit.
func (l *Ledger) MintDecimals(ctx context.Context, asset ledger.AssetID) (uint8, error) {
	mint, err := mintFromAsset(asset)
	if err != nil {
		return 0, err
	}
	info, err := l.client.GetAccountInfoWithOpts(ctx, mint)
	if err != nil {
		return 0, fmt.Errorf("solanaledger: fetch mint account: %w", err)
	}
	if info == nil || info.Value == nil {
		return 0, fmt.Errorf("solanaledger: mint %q not found", asset)
	}
	var layout mintLayout
	if err := bin.UnmarshalBorsh(&layout, info.Value.Data.GetBinary()); err != nil {
		return 0, fmt.Errorf("solanaledger: decode mint account: %w", err)
	}
	if !layout.IsInitialized {
		return 0, fmt.Errorf("solanaledger: mint %q not initialized", asset)
	}
	return layout.Decimals, nil
}

// Ledger adapts a *sol.Client, plus the pool's own fee-payer/authority
// keypair, into a ledger.AssetLedger. AssetID values are expected to be the
// base58-encoded SPL mint address.
type Ledger struct {
	client    *sol.Client
	authority solana.PrivateKey
}

// New returns a solana-backed ledger that signs and pays for every transfer
// as authority.
func New(client *sol.Client, authority solana.PrivateKey) *Ledger {
	return &Ledger{client: client, authority: authority}
}

func mintFromAsset(asset ledger.AssetID) (solana.PublicKey, error) {
	mint, err := solana.PublicKeyFromBase58(string(asset))
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("solanaledger: invalid mint %q: %w", asset, err)
	}
	return mint, nil
}

func ownerToPublicKey(o ledger.Owner) solana.PublicKey {
	return solana.PublicKeyFromBytes(o[:])
}

// TransferFrom moves amount of asset from from's associated token account to
// to's, authorized and paid for by the ledger's configured authority. The
// pool engine only ever calls this to pull the caller-supplied side of a
// mint/swap after its own state has already been committed (spec §4.7).
func (l *Ledger) TransferFrom(ctx context.Context, asset ledger.AssetID, from, to ledger.Owner, amount math.Int) error {
	if amount.IsZero() {
		return nil
	}
	mint, err := mintFromAsset(asset)
	if err != nil {
		return err
	}

	if !amount.BigInt().IsUint64() {
		return fmt.Errorf("solanaledger: amount %s exceeds a token instruction's u64 range", amount)
	}

	sourceATA, err := l.client.SelectOrCreateSPLTokenAccount(ctx, l.authority, mint)
	if err != nil {
		return fmt.Errorf("solanaledger: resolve source ATA: %w", err)
	}
	_, fromBalance, err := l.client.GetUserTokenBalance(ctx, ownerToPublicKey(from), mint)
	if err != nil {
		return fmt.Errorf("solanaledger: check source balance: %w", err)
	}
	if fromBalance < amount.Uint64() {
		return fmt.Errorf("solanaledger: insufficient balance for %s: have %d, need %s", asset, fromBalance, amount)
	}
	destOwner := ownerToPublicKey(to)
	destATA, _, err := solana.FindAssociatedTokenAddress(destOwner, mint)
	if err != nil {
		return fmt.Errorf("solanaledger: resolve destination ATA: %w", err)
	}

	transferInst, err := token.NewTransferInstruction(
		amount.Uint64(),
		sourceATA,
		destATA,
		ownerToPublicKey(from),
		[]solana.PublicKey{},
	).ValidateAndBuild()
	if err != nil {
		return fmt.Errorf("solanaledger: build transfer instruction: %w", err)
	}

	tx, err := l.client.SignTransaction(ctx, []solana.PrivateKey{l.authority}, transferInst)
	if err != nil {
		return fmt.Errorf("solanaledger: sign transfer: %w", err)
	}
	if _, err := l.client.SendTx(ctx, tx); err != nil {
		return fmt.Errorf("solanaledger: send transfer: %w", err)
	}
	return nil
}

// Transfer pays amount of asset out of the pool's own associated token
// account to recipient, the path swap/collect use to settle whatever the
// pool owes the caller.
func (l *Ledger) Transfer(ctx context.Context, asset ledger.AssetID, to ledger.Owner, amount math.Int) error {
	var authorityOwner ledger.Owner
	copy(authorityOwner[:], l.authority.PublicKey().Bytes())
	return l.TransferFrom(ctx, asset, authorityOwner, to, amount)
}
