package v1

import (
	"context"

	"github.com/shopspring/decimal"

	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Module is the identity shared by every installable module.
type Module interface {
	Ref() Ref
	Kind() Kind
}

// AuctionModule owns lot and bid state and decides auction semantics. The
// router treats it as the sole authority on bid acceptance, winner selection
// and settlement math; the router's own job is custody and fees.
type AuctionModule interface {
	Module

	// CreateLot initializes module-side state for a new lot. The router has
	// already validated assets and sourced funding.
	CreateLot(ctx context.Context, lotID uint64, params AuctionParams, quoteDecimals, baseDecimals uint8) error

	// CancelLot marks the lot cancelled if the module still considers it
	// cancellable. Also used by the router to unwind a creation whose
	// funding step failed.
	CancelLot(ctx context.Context, lotID uint64) error

	// RecordBid validates and stores a bid, returning its id. The
	// eligibility proof is forwarded opaquely.
	RecordBid(ctx context.Context, lotID uint64, bidder, referrer bankv1.Address, amount decimal.Decimal, auctionData, proof []byte) (uint64, error)

	// RefundBid authorizes withdrawal of an open bid by its original bidder
	// before conclusion and returns the quote amount to refund.
	RefundBid(ctx context.Context, lotID, bidID uint64, caller bankv1.Address) (decimal.Decimal, error)

	// ClaimBids resolves the outcome of settled or aborted bids. Validation
	// is all-or-nothing across the id list.
	ClaimBids(ctx context.Context, lotID uint64, bidIDs []uint64) ([]BidClaim, error)

	// ReopenBids reverts claim or withdrawal marks whose payout the router
	// could not deliver, restoring the bids to their open state so a later
	// claim can retry.
	ReopenBids(ctx context.Context, lotID uint64, bidIDs []uint64) error

	// Settle runs at most maxBids of settlement work inside the settlement
	// window. maxBids <= 0 means no batch limit.
	Settle(ctx context.Context, lotID uint64, maxBids int) (Settlement, error)

	// Abort voids an expired unsettled lot, making every bid claimable as a
	// refund.
	Abort(ctx context.Context, lotID uint64) error

	// ClaimProceeds reports (purchased, sold, payoutSent) exactly once for a
	// settled lot.
	ClaimProceeds(ctx context.Context, lotID uint64) (purchased, sold, payoutSent decimal.Decimal, err error)

	// IsLive reports whether the lot currently accepts bids.
	IsLive(ctx context.Context, lotID uint64) bool

	// RemainingCapacity returns the lot's current remaining capacity.
	RemainingCapacity(ctx context.Context, lotID uint64) (decimal.Decimal, error)

	// Lot returns a copy of the lot record.
	Lot(ctx context.Context, lotID uint64) (Lot, error)

	// Snapshot and Restore serialize module state for the engine's
	// checkpoint loop.
	Snapshot() ([]byte, error)
	Restore(data []byte) error
}

// DerivativeModule validates payout-wrapping parameters. Wrapping itself is
// out of scope; lots only pin the validated configuration.
type DerivativeModule interface {
	Module

	ValidateParams(ctx context.Context, params []byte) error
}

// Registry resolves installed modules by versioned ref. Sunsetting a ref
// blocks new lots while leaving existing lots serviceable.
type Registry interface {
	Install(module Module) error
	Auction(ref Ref) (AuctionModule, error)
	Derivative(ref Ref) (DerivativeModule, error)
	Sunset(ref Ref) error
	IsSunset(ref Ref) bool
}
