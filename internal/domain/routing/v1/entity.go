package v1

import (
	"github.com/shopspring/decimal"

	auctionv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/auction/v1"
	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
)

// Routing is the router-owned record of a lot: who sells what against what,
// which module runs the auction, and how much base funding the router holds
// in escrow for it.
type Routing struct {
	Seller     bankv1.Address
	BaseAsset  string
	QuoteAsset string
	AuctionRef auctionv1.Ref
	// Funding is the escrowed base balance attributable to the lot. Every
	// decrement happens before the corresponding outbound transfer.
	Funding          decimal.Decimal
	CallbackID       string
	WrapDerivative   bool
	DerivativeRef    auctionv1.Ref
	DerivativeParams []byte
}

// FeeData is the router-owned fee state of a lot. Protocol and referrer
// percentages are frozen at settlement, the curator fee at curation.
type FeeData struct {
	Curator     bankv1.Address
	Curated     bool
	CuratorFee  uint64
	ProtocolFee uint64
	ReferrerFee uint64
}

// RoutingParams is the creation request for a lot. The seller is the caller
// of CreateLot. CallbackData is forwarded opaquely to the OnCreate hook.
type RoutingParams struct {
	BaseAsset        string
	QuoteAsset       string
	AuctionRef       auctionv1.Ref
	CallbackID       string
	Curator          bankv1.Address
	WrapDerivative   bool
	DerivativeRef    auctionv1.Ref
	DerivativeParams []byte
	CallbackData     []byte
}

// BidParams is the request for placing a bid. A zero Bidder resolves to the
// caller; a named bidder is credited while the caller pays. Permit, when
// set, replaces the direct quote pull.
type BidParams struct {
	LotID        uint64
	Bidder       bankv1.Address
	Referrer     bankv1.Address
	Amount       decimal.Decimal
	AuctionData  []byte
	Proof        []byte
	Permit       *bankv1.TransferPermit
	CallbackData []byte
}
