package bank

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
)

// Ledger is the in-memory custody substrate. Every account balance the
// settlement core moves lives here, keyed by account address and asset id.
// All mutation goes through the router, which serializes calls, but the
// ledger carries its own lock so reads stay safe from other goroutines.
type Ledger struct {
	mu       sync.RWMutex
	assets   map[string]uint8
	balances map[bankv1.Address]map[string]decimal.Decimal
	nonces   map[string]struct{}
}

// NewLedger creates an empty ledger with no assets registered.
func NewLedger() *Ledger {
	return &Ledger{
		assets:   make(map[string]uint8),
		balances: make(map[bankv1.Address]map[string]decimal.Decimal),
		nonces:   make(map[string]struct{}),
	}
}

// RegisterAsset registers an asset id with its decimal scale. Registering
// the same id twice with the same decimals is a no-op.
func (l *Ledger) RegisterAsset(ctx context.Context, id string, decimals uint8) error {
	if id == "" {
		return errors.NewErrorDetails("asset id cannot be empty", string(errors.ZeroAsset), "id")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if existing, ok := l.assets[id]; ok {
		if existing != decimals {
			return errors.NewErrorDetails(
				fmt.Sprintf("asset %s already registered with %d decimals", id, existing),
				string(errors.InvalidAssetDecimals),
				"decimals",
			)
		}
		return nil
	}

	l.assets[id] = decimals
	return nil
}

// AssetDecimals returns the decimal scale of a registered asset.
func (l *Ledger) AssetDecimals(ctx context.Context, id string) (uint8, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	decimals, ok := l.assets[id]
	if !ok {
		return 0, errors.NewErrorDetails(
			fmt.Sprintf("asset %s is not registered", id),
			string(errors.UnknownAsset),
			"asset",
		)
	}
	return decimals, nil
}

// Deposit mints amount of asset into account. This is the entry point for
// external funds arriving in custody.
func (l *Ledger) Deposit(ctx context.Context, account bankv1.Address, asset string, amount decimal.Decimal) error {
	if account.IsZero() {
		return errors.NewErrorDetails("account cannot be zero", string(errors.InvalidParams), "account")
	}
	if amount.Sign() <= 0 {
		return errors.NewErrorDetails("deposit amount must be positive", string(errors.ZeroAmount), "amount")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.assets[asset]; !ok {
		return errors.NewErrorDetails(
			fmt.Sprintf("asset %s is not registered", asset),
			string(errors.UnknownAsset),
			"asset",
		)
	}

	l.credit(account, asset, amount)
	return nil
}

// Transfer moves amount of asset between two accounts. A zero amount is a
// no-op so callers can route computed sums without special-casing empties.
func (l *Ledger) Transfer(ctx context.Context, from, to bankv1.Address, asset string, amount decimal.Decimal) error {
	if from.IsZero() || to.IsZero() {
		return errors.NewErrorDetails("transfer endpoints cannot be zero", string(errors.InvalidParams), "account")
	}
	if amount.Sign() < 0 {
		return errors.NewErrorDetails("transfer amount cannot be negative", string(errors.InvalidParams), "amount")
	}
	if amount.IsZero() {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.assets[asset]; !ok {
		return errors.NewErrorDetails(
			fmt.Sprintf("asset %s is not registered", asset),
			string(errors.UnknownAsset),
			"asset",
		)
	}

	if err := l.debit(from, asset, amount); err != nil {
		return err
	}
	l.credit(to, asset, amount)
	return nil
}

// PermitTransfer spends a signed transfer authorization: it moves
// permit.Amount of permit.Asset from permit.From to the recipient, enforcing
// the permit deadline and burning the nonce so the permit is single-use.
func (l *Ledger) PermitTransfer(ctx context.Context, permit bankv1.TransferPermit, to bankv1.Address) error {
	if permit.From.IsZero() || to.IsZero() {
		return errors.NewErrorDetails("permit endpoints cannot be zero", string(errors.InvalidPermit), "account")
	}
	if permit.Nonce == "" {
		return errors.NewErrorDetails("permit nonce cannot be empty", string(errors.InvalidPermit), "nonce")
	}
	if permit.Amount.Sign() <= 0 {
		return errors.NewErrorDetails("permit amount must be positive", string(errors.InvalidPermit), "amount")
	}
	if !permit.Deadline.IsZero() && time.Now().After(permit.Deadline) {
		return errors.NewErrorDetails("permit deadline has passed", string(errors.InvalidPermit), "deadline")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.assets[permit.Asset]; !ok {
		return errors.NewErrorDetails(
			fmt.Sprintf("asset %s is not registered", permit.Asset),
			string(errors.UnknownAsset),
			"asset",
		)
	}

	nonceKey := string(permit.From) + ":" + permit.Nonce
	if _, used := l.nonces[nonceKey]; used {
		return errors.NewErrorDetails("permit nonce already spent", string(errors.InvalidPermit), "nonce")
	}

	if err := l.debit(permit.From, permit.Asset, permit.Amount); err != nil {
		return err
	}
	l.credit(to, permit.Asset, permit.Amount)
	l.nonces[nonceKey] = struct{}{}
	return nil
}

// BalanceOf returns the balance of asset held by account. Unknown accounts
// and unheld assets read as zero.
func (l *Ledger) BalanceOf(ctx context.Context, account bankv1.Address, asset string) (decimal.Decimal, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if _, ok := l.assets[asset]; !ok {
		return decimal.Zero, errors.NewErrorDetails(
			fmt.Sprintf("asset %s is not registered", asset),
			string(errors.UnknownAsset),
			"asset",
		)
	}

	held, ok := l.balances[account]
	if !ok {
		return decimal.Zero, nil
	}
	balance, ok := held[asset]
	if !ok {
		return decimal.Zero, nil
	}
	return balance, nil
}

func (l *Ledger) credit(account bankv1.Address, asset string, amount decimal.Decimal) {
	held, ok := l.balances[account]
	if !ok {
		held = make(map[string]decimal.Decimal)
		l.balances[account] = held
	}
	held[asset] = held[asset].Add(amount)
}

func (l *Ledger) debit(account bankv1.Address, asset string, amount decimal.Decimal) error {
	held := l.balances[account]
	balance := held[asset]
	if balance.LessThan(amount) {
		return errors.NewErrorDetailsWithObject(
			fmt.Sprintf("account %s holds %s of %s, need %s", account, balance, asset, amount),
			string(errors.InsufficientBalance),
			"amount",
			account,
		)
	}
	held[asset] = balance.Sub(amount)
	return nil
}

type ledgerState struct {
	Assets   map[string]uint8                             `json:"assets"`
	Balances map[bankv1.Address]map[string]decimal.Decimal `json:"balances"`
	Nonces   []string                                     `json:"nonces"`
}

// Snapshot serializes the full ledger state.
func (l *Ledger) Snapshot() ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	state := ledgerState{
		Assets:   l.assets,
		Balances: l.balances,
		Nonces:   make([]string, 0, len(l.nonces)),
	}
	for nonce := range l.nonces {
		state.Nonces = append(state.Nonces, nonce)
	}
	return json.Marshal(state)
}

// Restore replaces the ledger state with a previously taken snapshot.
func (l *Ledger) Restore(data []byte) error {
	var state ledgerState
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.assets = state.Assets
	if l.assets == nil {
		l.assets = make(map[string]uint8)
	}
	l.balances = state.Balances
	if l.balances == nil {
		l.balances = make(map[bankv1.Address]map[string]decimal.Decimal)
	}
	l.nonces = make(map[string]struct{}, len(state.Nonces))
	for _, nonce := range state.Nonces {
		l.nonces[nonce] = struct{}{}
	}
	return nil
}
