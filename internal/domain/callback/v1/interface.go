package v1

import (
	"context"

	"github.com/shopspring/decimal"

	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Callback is third-party code hooked into lot lifecycle points. A callback
// transacts from a single bank account; when its permissions include
// SendsBaseAsset it is expected to move funding into the router account
// during OnCreate and OnCurate.
type Callback interface {
	// Account is the bank account the callback transacts from. Refunds and
	// proceeds routed to the callback land here, and balance-delta checks
	// are measured against it.
	Account() bankv1.Address

	// OnCreate runs after a lot is registered. prefunded reports that the
	// router already holds the capacity; when false the callback must
	// transfer exactly capacity of the base asset to the router.
	OnCreate(ctx context.Context, lotID uint64, seller bankv1.Address, baseAsset, quoteAsset string, capacity decimal.Decimal, prefunded bool, callbackData []byte) error

	// OnCancel runs after a lot is cancelled. prefunded reports that the
	// refunded funding was routed to the callback account.
	OnCancel(ctx context.Context, lotID uint64, refund decimal.Decimal, prefunded bool, callbackData []byte) error

	// OnCurate runs after a curator accepts. prefunded reports that the
	// router already holds the maximum curator payout; when false the
	// callback must transfer exactly that amount of base to the router.
	OnCurate(ctx context.Context, lotID uint64, curatorPayout decimal.Decimal, prefunded bool, callbackData []byte) error

	// OnBid runs after a bid is recorded and paid for.
	OnBid(ctx context.Context, lotID, bidID uint64, bidder bankv1.Address, amount decimal.Decimal, callbackData []byte) error

	// OnPurchase runs on atomic purchase flows. Batch auctions never
	// dispatch it.
	OnPurchase(ctx context.Context, lotID uint64, buyer bankv1.Address, amount, payout decimal.Decimal, prefunded bool, callbackData []byte) error

	// OnClaimProceeds runs after the seller proceeds and prefunding refund
	// have been paid out.
	OnClaimProceeds(ctx context.Context, lotID uint64, proceeds, refund decimal.Decimal, callbackData []byte) error
}

// Dispatcher owns callback registrations and guards every dispatch. Only the
// router account may dispatch; permission bits below are read from the
// registration, never from the callback; funded lifecycle points verify the
// router's balance delta.
type Dispatcher interface {
	// Register binds a callback id to an implementation and its declared
	// permissions. SendsBaseAsset requires OnCreate and OnCurate.
	Register(id string, cb Callback, perms Permissions) error

	// IsRegistered reports whether the id is bound.
	IsRegistered(id string) bool

	// Permissions returns the registered permission set. The empty id
	// resolves to the zero permission set.
	Permissions(id string) (Permissions, error)

	// Account returns the registered callback's bank account.
	Account(id string) (bankv1.Address, error)

	OnCreate(ctx context.Context, caller bankv1.Address, id string, lotID uint64, seller bankv1.Address, baseAsset, quoteAsset string, capacity decimal.Decimal, prefunded bool, callbackData []byte) error
	OnCancel(ctx context.Context, caller bankv1.Address, id string, lotID uint64, refund decimal.Decimal, prefunded bool, callbackData []byte) error
	OnCurate(ctx context.Context, caller bankv1.Address, id string, lotID uint64, curatorPayout decimal.Decimal, baseAsset string, prefunded bool, callbackData []byte) error
	OnBid(ctx context.Context, caller bankv1.Address, id string, lotID, bidID uint64, bidder bankv1.Address, amount decimal.Decimal, callbackData []byte) error
	OnPurchase(ctx context.Context, caller bankv1.Address, id string, lotID uint64, buyer bankv1.Address, amount, payout decimal.Decimal, prefunded bool, callbackData []byte) error
	OnClaimProceeds(ctx context.Context, caller bankv1.Address, id string, lotID uint64, proceeds, refund decimal.Decimal, callbackData []byte) error
}
