package v1

import (
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
)

// EventType names a lot lifecycle record.
type EventType string

const (
	// TypeLotCreated is emitted when a lot is registered and funded.
	TypeLotCreated EventType = "lot.created"
	// TypeLotCancelled is emitted when a seller cancels a lot.
	TypeLotCancelled EventType = "lot.cancelled"
	// TypeLotCurated is emitted when a curator accepts a lot.
	TypeLotCurated EventType = "lot.curated"
	// TypeBidPlaced is emitted when a bid is recorded and paid for.
	TypeBidPlaced EventType = "bid.placed"
	// TypeBidRefunded is emitted when an open bid is withdrawn.
	TypeBidRefunded EventType = "bid.refunded"
	// TypeBidsClaimed is emitted when settled or aborted bids are paid out.
	TypeBidsClaimed EventType = "bids.claimed"
	// TypeLotSettled is emitted on every settle call, finished or not.
	TypeLotSettled EventType = "lot.settled"
	// TypeProceedsClaimed is emitted when seller proceeds are paid out.
	TypeProceedsClaimed EventType = "proceeds.claimed"
	// TypeLotAborted is emitted when an expired lot is voided.
	TypeLotAborted EventType = "lot.aborted"
	// TypeRewardsClaimed is emitted when accrued rewards are withdrawn.
	TypeRewardsClaimed EventType = "rewards.claimed"
)

// LotEvent is one lifecycle record. Payload is the JSON encoding of the
// type-specific payload struct.
type LotEvent struct {
	ID         string          `json:"id"`
	LotID      uint64          `json:"lot_id"`
	Type       EventType       `json:"type"`
	ModuleRef  string          `json:"module_ref"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewLotEvent builds a record with a fresh ulid and the payload marshalled.
func NewLotEvent(eventType EventType, lotID uint64, moduleRef string, payload any) (LotEvent, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return LotEvent{}, err
	}

	return LotEvent{
		ID:         ulid.Make().String(),
		LotID:      lotID,
		Type:       eventType,
		ModuleRef:  moduleRef,
		Payload:    raw,
		OccurredAt: time.Now().UTC(),
	}, nil
}

// LotCreatedPayload describes a creation record.
type LotCreatedPayload struct {
	Seller     bankv1.Address  `json:"seller"`
	BaseAsset  string          `json:"base_asset"`
	QuoteAsset string          `json:"quote_asset"`
	Capacity   decimal.Decimal `json:"capacity"`
	Prefunded  bool            `json:"prefunded"`
	InfoRef    string          `json:"info_ref,omitempty"`
}

// LotCancelledPayload describes a cancellation record.
type LotCancelledPayload struct {
	Seller bankv1.Address  `json:"seller"`
	Refund decimal.Decimal `json:"refund"`
}

// LotCuratedPayload describes a curation record.
type LotCuratedPayload struct {
	Curator   bankv1.Address  `json:"curator"`
	Fee       uint64          `json:"fee"`
	MaxPayout decimal.Decimal `json:"max_payout"`
}

// BidPlacedPayload describes a bid record.
type BidPlacedPayload struct {
	BidID    uint64          `json:"bid_id"`
	Bidder   bankv1.Address  `json:"bidder"`
	Referrer bankv1.Address  `json:"referrer,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

// BidRefundedPayload describes a bid withdrawal record.
type BidRefundedPayload struct {
	BidID  uint64          `json:"bid_id"`
	Bidder bankv1.Address  `json:"bidder"`
	Refund decimal.Decimal `json:"refund"`
}

// BidsClaimedPayload describes a claim record for a batch of bids.
type BidsClaimedPayload struct {
	BidIDs []uint64 `json:"bid_ids"`
}

// LotSettledPayload describes one settle call. CallbackData is carried for
// observability; settlement itself dispatches no callback.
type LotSettledPayload struct {
	Finished      bool            `json:"finished"`
	TotalIn       decimal.Decimal `json:"total_in"`
	TotalOut      decimal.Decimal `json:"total_out"`
	CuratorPayout decimal.Decimal `json:"curator_payout"`
	CallbackData  []byte          `json:"callback_data,omitempty"`
}

// ProceedsClaimedPayload describes the seller payout record.
type ProceedsClaimedPayload struct {
	Proceeds decimal.Decimal `json:"proceeds"`
	Refund   decimal.Decimal `json:"refund"`
}

// LotAbortedPayload describes an abort record.
type LotAbortedPayload struct {
	Refund decimal.Decimal `json:"refund"`
}

// RewardsClaimedPayload describes a rewards withdrawal. It is not bound to a
// lot; the record's lot id is zero.
type RewardsClaimedPayload struct {
	Recipient bankv1.Address  `json:"recipient"`
	Asset     string          `json:"asset"`
	Amount    decimal.Decimal `json:"amount"`
}
