package v1

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Bank is the custody substrate the router settles against. Balances are
// tracked per (account, asset); every movement is an explicit transfer.
type Bank interface {
	// RegisterAsset makes an asset known to the bank with its base-unit scale.
	RegisterAsset(ctx context.Context, id string, decimals uint8) error

	// AssetDecimals returns the registered decimals for an asset.
	AssetDecimals(ctx context.Context, id string) (uint8, error)

	// Deposit credits an account out of thin air. Used for seeding accounts
	// and test fixtures; production inflows arrive through external rails.
	Deposit(ctx context.Context, account Address, asset string, amount decimal.Decimal) error

	// Transfer moves amount of asset between accounts.
	Transfer(ctx context.Context, from, to Address, asset string, amount decimal.Decimal) error

	// PermitTransfer consumes a pre-authorized pull and moves the permitted
	// amount to the recipient. The permit nonce is single-use and the
	// transfer fails after the deadline.
	PermitTransfer(ctx context.Context, permit TransferPermit, to Address) error

	// BalanceOf returns the current balance for (account, asset).
	BalanceOf(ctx context.Context, account Address, asset string) (decimal.Decimal, error)
}
