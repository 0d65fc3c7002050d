package v1

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
)

// Kind partitions installable modules by the role they play.
type Kind string

const (
	// KindAuction marks modules that own lot and bid state.
	KindAuction Kind = "auction"
	// KindDerivative marks modules that describe payout wrapping.
	KindDerivative Kind = "derivative"
)

// Ref identifies an installed module by name and version. Versions of the
// same name are distinct modules; lots stay pinned to the exact version they
// were created with.
type Ref struct {
	Name    string
	Version uint8
}

// String renders the ref in the canonical "name.vN" form used in records.
func (r Ref) String() string {
	return fmt.Sprintf("%s.v%d", r.Name, r.Version)
}

// IsZero reports whether the ref is unset.
func (r Ref) IsZero() bool {
	return r.Name == "" && r.Version == 0
}

// LotStatus is the module-owned lifecycle state of a lot.
type LotStatus string

const (
	// LotStatusCreated is the initial state, accepting bids until conclusion.
	LotStatusCreated LotStatus = "created"
	// LotStatusCancelled is reached when the seller cancels before any bids.
	LotStatusCancelled LotStatus = "cancelled"
	// LotStatusSettled is reached when batch settlement finishes.
	LotStatusSettled LotStatus = "settled"
	// LotStatusAborted is reached when the settlement window expires unused.
	LotStatusAborted LotStatus = "aborted"
)

// Lot is the module-owned record of a sale.
type Lot struct {
	ID              uint64
	Start           time.Time
	Conclusion      time.Time
	CapacityInQuote bool
	// Capacity is the remaining capacity, decremented at settlement.
	Capacity  decimal.Decimal
	Sold      decimal.Decimal
	Purchased decimal.Decimal
	// PayoutSent accumulates base paid out at settlement and through bid
	// claims, so the proceeds refund stays order independent.
	PayoutSent      decimal.Decimal
	QuoteDecimals   uint8
	BaseDecimals    uint8
	Status          LotStatus
	ProceedsClaimed bool
}

// AuctionParams carries the creation-time auction configuration. AuctionData
// is the module-specific parameter blob, opaque to the router.
type AuctionParams struct {
	Start           time.Time
	Conclusion      time.Time
	CapacityInQuote bool
	Capacity        decimal.Decimal
	AuctionData     []byte
}

// BidStatus is the lifecycle state of a single bid.
type BidStatus string

const (
	// BidStatusOpen is the initial state.
	BidStatusOpen BidStatus = "open"
	// BidStatusRefunded marks a bid withdrawn before conclusion.
	BidStatusRefunded BidStatus = "refunded"
	// BidStatusClaimed marks a bid whose outcome has been paid out.
	BidStatusClaimed BidStatus = "claimed"
)

// Bid is the module-owned record of a single quote commitment.
type Bid struct {
	ID       uint64
	Bidder   bankv1.Address
	Referrer bankv1.Address
	Amount   decimal.Decimal
	Status   BidStatus
	// Payout and Refund are fixed at settlement.
	Payout decimal.Decimal
	Refund decimal.Decimal
}

// BidClaim is the module's instruction to the router for paying out one
// claimed bid. Paid is the quote the lot retained for the fill, the amount
// fees are charged on.
type BidClaim struct {
	BidID    uint64
	Bidder   bankv1.Address
	Referrer bankv1.Address
	Paid     decimal.Decimal
	Payout   decimal.Decimal
	Refund   decimal.Decimal
}

// PartialFill describes the single crossing bid of a batch settlement. The
// router pays it inline at settlement instead of waiting for a claim.
type PartialFill struct {
	BidID    uint64
	Bidder   bankv1.Address
	Referrer bankv1.Address
	Payout   decimal.Decimal
	Refund   decimal.Decimal
}

// Settlement is the module's report for one settle call. Until Finished is
// true the router moves no assets and freezes no fees.
type Settlement struct {
	TotalIn       decimal.Decimal
	TotalOut      decimal.Decimal
	Finished      bool
	PartialFill   *PartialFill
	AuctionOutput []byte
}
