package batchauction

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	auctionv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/auction/v1"
	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
)

// ModuleRef identifies this module in the registry and in lifecycle records.
var ModuleRef = auctionv1.Ref{Name: "batch-fixed-price", Version: 1}

type lotState struct {
	Lot             auctionv1.Lot          `json:"lot"`
	Price           decimal.Decimal        `json:"price"`
	MinFillPercent  uint64                 `json:"min_fill_percent"`
	InitialCapacity decimal.Decimal        `json:"initial_capacity"`
	Bids            []*auctionv1.Bid       `json:"bids"`
	NextBidID       uint64                 `json:"next_bid_id"`
	Cursor          int                    `json:"cursor"`
	TotalIn         decimal.Decimal        `json:"total_in"`
	TotalOut        decimal.Decimal        `json:"total_out"`
	PartialFill     *auctionv1.PartialFill `json:"partial_fill,omitempty"`
}

// Module is a fixed-price batch auction: every bid commits quote at one
// price, winners are selected first-come-first-served at settlement, and the
// bid that crosses remaining capacity is filled partially. An optional
// minimum fill voids the whole sale when too little capacity sells.
type Module struct {
	mu           sync.RWMutex
	settlePeriod time.Duration
	lots         map[uint64]*lotState
	now          func() time.Time
}

// Option configures a Module.
type Option func(*Module)

// WithClock overrides the module's time source.
func WithClock(now func() time.Time) Option {
	return func(m *Module) {
		m.now = now
	}
}

// NewModule creates a batch auction module whose lots settle inside the
// given window after conclusion.
func NewModule(settlePeriod time.Duration, opts ...Option) *Module {
	m := &Module{
		settlePeriod: settlePeriod,
		lots:         make(map[uint64]*lotState),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Ref implements auctionv1.Module.
func (m *Module) Ref() auctionv1.Ref {
	return ModuleRef
}

// Kind implements auctionv1.Module.
func (m *Module) Kind() auctionv1.Kind {
	return auctionv1.KindAuction
}

// CreateLot initializes a lot record. Batch lots are always prefunded, so
// capacity must be denominated in the base asset.
func (m *Module) CreateLot(ctx context.Context, lotID uint64, params auctionv1.AuctionParams, quoteDecimals, baseDecimals uint8) error {
	if params.CapacityInQuote {
		return errors.NewErrorDetails(
			"batch lots are prefunded, capacity must be in base asset",
			string(errors.CapacityInQuote),
			"capacity_in_quote",
		)
	}
	if params.Capacity.Sign() <= 0 || !params.Capacity.IsInteger() {
		return errors.NewErrorDetails(
			"capacity must be a positive integer amount of base units",
			string(errors.InvalidParams),
			"capacity",
		)
	}

	now := m.now()
	start := params.Start
	if start.IsZero() {
		start = now
	}
	if !params.Conclusion.After(start) || !params.Conclusion.After(now) {
		return errors.NewErrorDetails(
			"conclusion must be after start and in the future",
			string(errors.InvalidParams),
			"conclusion",
		)
	}

	auctionParams, err := parseParams(params.AuctionData)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.lots[lotID]; exists {
		return errors.NewErrorDetails(
			fmt.Sprintf("lot %d is already initialized", lotID),
			string(errors.InvalidParams),
			"lot_id",
		)
	}

	m.lots[lotID] = &lotState{
		Lot: auctionv1.Lot{
			ID:            lotID,
			Start:         start,
			Conclusion:    params.Conclusion,
			Capacity:      params.Capacity,
			QuoteDecimals: quoteDecimals,
			BaseDecimals:  baseDecimals,
			Status:        auctionv1.LotStatusCreated,
		},
		Price:           auctionParams.Price,
		MinFillPercent:  auctionParams.MinFillPercent,
		InitialCapacity: params.Capacity,
		NextBidID:       1,
	}
	return nil
}

// CancelLot marks a lot cancelled. Only a created lot with no recorded bids
// can be cancelled, and only before its conclusion.
func (m *Module) CancelLot(ctx context.Context, lotID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.lot(lotID)
	if err != nil {
		return err
	}
	if state.Lot.Status != auctionv1.LotStatusCreated || len(state.Bids) > 0 || !m.now().Before(state.Lot.Conclusion) {
		return errors.NewErrorDetails(
			fmt.Sprintf("lot %d is not in a cancellable state", lotID),
			string(errors.LotNotActive),
			"lot_id",
		)
	}

	state.Lot.Status = auctionv1.LotStatusCancelled
	return nil
}

// RecordBid stores a bid against a live lot. The bid's eventual payout at
// the fixed price must round to at least one base unit.
func (m *Module) RecordBid(ctx context.Context, lotID uint64, bidder, referrer bankv1.Address, amount decimal.Decimal, auctionData, proof []byte) (uint64, error) {
	if bidder.IsZero() {
		return 0, errors.NewErrorDetails("bidder cannot be zero", string(errors.InvalidParams), "bidder")
	}
	if amount.Sign() <= 0 || !amount.IsInteger() {
		return 0, errors.NewErrorDetails(
			"bid amount must be a positive integer amount of quote units",
			string(errors.InvalidParams),
			"amount",
		)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.lot(lotID)
	if err != nil {
		return 0, err
	}
	if !m.isLive(state) {
		return 0, errors.NewErrorDetails(
			fmt.Sprintf("lot %d is not accepting bids", lotID),
			string(errors.LotNotLive),
			"lot_id",
		)
	}
	if state.payout(amount).IsZero() {
		return 0, errors.NewErrorDetails(
			"bid amount is below one base unit at the lot price",
			string(errors.InvalidParams),
			"amount",
		)
	}

	bidID := state.NextBidID
	state.NextBidID++
	state.Bids = append(state.Bids, &auctionv1.Bid{
		ID:       bidID,
		Bidder:   bidder,
		Referrer: referrer,
		Amount:   amount,
		Status:   auctionv1.BidStatusOpen,
	})
	return bidID, nil
}

// RefundBid withdraws a still-open bid before the lot concludes and reports
// the quote amount to return.
func (m *Module) RefundBid(ctx context.Context, lotID, bidID uint64, caller bankv1.Address) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.lot(lotID)
	if err != nil {
		return decimal.Zero, err
	}
	if !m.now().Before(state.Lot.Conclusion) {
		return decimal.Zero, errors.NewErrorDetails(
			fmt.Sprintf("lot %d has concluded, refunds closed", lotID),
			string(errors.LotNotLive),
			"lot_id",
		)
	}

	bid := state.bid(bidID)
	if bid == nil {
		return decimal.Zero, bidNotFound(lotID, bidID)
	}
	if bid.Bidder != caller {
		return decimal.Zero, errors.NewErrorDetails(
			"only the original bidder may refund a bid",
			string(errors.NotBidder),
			"caller",
		)
	}
	if bid.Status != auctionv1.BidStatusOpen {
		return decimal.Zero, errors.NewErrorDetails(
			fmt.Sprintf("bid %d is not open", bidID),
			string(errors.BidAlreadyClaimed),
			"bid_id",
		)
	}

	bid.Status = auctionv1.BidStatusRefunded
	bid.Refund = bid.Amount
	return bid.Amount, nil
}

// ClaimBids resolves settled or aborted bids into payout instructions for
// the router. The whole list succeeds or none of it does.
func (m *Module) ClaimBids(ctx context.Context, lotID uint64, bidIDs []uint64) ([]auctionv1.BidClaim, error) {
	if len(bidIDs) == 0 {
		return nil, errors.NewErrorDetails("bid id list cannot be empty", string(errors.InvalidParams), "bid_ids")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.lot(lotID)
	if err != nil {
		return nil, err
	}
	if state.Lot.Status != auctionv1.LotStatusSettled && state.Lot.Status != auctionv1.LotStatusAborted {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("lot %d has no settled outcome to claim", lotID),
			string(errors.LotNotSettled),
			"lot_id",
		)
	}

	// Validate the full list before mutating anything.
	bids := make([]*auctionv1.Bid, 0, len(bidIDs))
	for _, bidID := range bidIDs {
		bid := state.bid(bidID)
		if bid == nil {
			return nil, bidNotFound(lotID, bidID)
		}
		if bid.Status != auctionv1.BidStatusOpen {
			return nil, errors.NewErrorDetails(
				fmt.Sprintf("bid %d is not open", bidID),
				string(errors.BidAlreadyClaimed),
				"bid_id",
			)
		}
		bids = append(bids, bid)
	}

	claims := make([]auctionv1.BidClaim, 0, len(bids))
	for _, bid := range bids {
		payout := bid.Payout
		refund := bid.Refund
		if state.Lot.Status == auctionv1.LotStatusAborted {
			payout = decimal.Zero
			refund = bid.Amount
		}

		bid.Status = auctionv1.BidStatusClaimed
		if payout.Sign() > 0 {
			state.Lot.PayoutSent = state.Lot.PayoutSent.Add(payout)
		}

		claims = append(claims, auctionv1.BidClaim{
			BidID:    bid.ID,
			Bidder:   bid.Bidder,
			Referrer: bid.Referrer,
			Paid:     bid.Amount.Sub(refund),
			Payout:   payout,
			Refund:   refund,
		})
	}
	return claims, nil
}

// ReopenBids reverts claim or withdrawal marks whose payout could not be
// delivered. Claimed bids return to the open state with their payout taken
// back out of the sent total; withdrawn bids drop the refund mark.
func (m *Module) ReopenBids(ctx context.Context, lotID uint64, bidIDs []uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.lot(lotID)
	if err != nil {
		return err
	}

	for _, bidID := range bidIDs {
		bid := state.bid(bidID)
		if bid == nil {
			return bidNotFound(lotID, bidID)
		}

		switch bid.Status {
		case auctionv1.BidStatusClaimed:
			if state.Lot.Status != auctionv1.LotStatusAborted && bid.Payout.Sign() > 0 {
				state.Lot.PayoutSent = state.Lot.PayoutSent.Sub(bid.Payout)
			}
		case auctionv1.BidStatusRefunded:
			bid.Refund = decimal.Zero
		default:
			continue
		}
		bid.Status = auctionv1.BidStatusOpen
	}
	return nil
}

// ClaimProceeds reports the settled lot's totals to the router, write-once.
func (m *Module) ClaimProceeds(ctx context.Context, lotID uint64) (purchased, sold, payoutSent decimal.Decimal, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, lotErr := m.lot(lotID)
	if lotErr != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, lotErr
	}
	if state.Lot.Status != auctionv1.LotStatusSettled {
		return decimal.Zero, decimal.Zero, decimal.Zero, errors.NewErrorDetails(
			fmt.Sprintf("lot %d is not settled", lotID),
			string(errors.LotNotSettled),
			"lot_id",
		)
	}
	if state.Lot.ProceedsClaimed {
		return decimal.Zero, decimal.Zero, decimal.Zero, errors.NewErrorDetails(
			fmt.Sprintf("proceeds of lot %d already claimed", lotID),
			string(errors.ProceedsAlreadyClaimed),
			"lot_id",
		)
	}

	state.Lot.ProceedsClaimed = true
	return state.Lot.Purchased, state.Lot.Sold, state.Lot.PayoutSent, nil
}

// IsLive reports whether a lot accepts bids right now.
func (m *Module) IsLive(ctx context.Context, lotID uint64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, err := m.lot(lotID)
	if err != nil {
		return false
	}
	return m.isLive(state)
}

// RemainingCapacity returns the base capacity not yet allocated to winners.
func (m *Module) RemainingCapacity(ctx context.Context, lotID uint64) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, err := m.lot(lotID)
	if err != nil {
		return decimal.Zero, err
	}
	return state.Lot.Capacity, nil
}

// Lot returns a copy of the lot record.
func (m *Module) Lot(ctx context.Context, lotID uint64) (auctionv1.Lot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, err := m.lot(lotID)
	if err != nil {
		return auctionv1.Lot{}, err
	}
	return state.Lot, nil
}

// Snapshot serializes every lot this module owns.
func (m *Module) Snapshot() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return json.Marshal(m.lots)
}

// Restore replaces the module state with a previously taken snapshot.
func (m *Module) Restore(data []byte) error {
	lots := make(map[uint64]*lotState)
	if err := json.Unmarshal(data, &lots); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.lots = lots
	return nil
}

func (m *Module) lot(lotID uint64) (*lotState, error) {
	state, exists := m.lots[lotID]
	if !exists {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("lot %d does not exist", lotID),
			string(errors.LotNotFound),
			"lot_id",
		)
	}
	return state, nil
}

func (m *Module) isLive(state *lotState) bool {
	now := m.now()
	return state.Lot.Status == auctionv1.LotStatusCreated &&
		!now.Before(state.Lot.Start) &&
		now.Before(state.Lot.Conclusion)
}

// payout converts a quote commitment to base units at the lot price.
func (s *lotState) payout(amount decimal.Decimal) decimal.Decimal {
	return bankv1.MulDiv(amount, bankv1.Pow10(s.Lot.BaseDecimals), s.Price)
}

// paidFor inverts payout, converting base units back to the quote retained.
func (s *lotState) paidFor(payout decimal.Decimal) decimal.Decimal {
	return bankv1.MulDiv(payout, s.Price, bankv1.Pow10(s.Lot.BaseDecimals))
}

func (s *lotState) bid(bidID uint64) *auctionv1.Bid {
	for _, bid := range s.Bids {
		if bid.ID == bidID {
			return bid
		}
	}
	return nil
}

func bidNotFound(lotID, bidID uint64) error {
	return errors.NewErrorDetails(
		fmt.Sprintf("bid %d does not exist on lot %d", bidID, lotID),
		string(errors.BidNotFound),
		"bid_id",
	)
}
