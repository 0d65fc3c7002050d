package batchauction

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	auctionv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/auction/v1"
	feesv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/fees/v1"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
)

// Settle selects winners first-come-first-served at the fixed price,
// processing at most maxBids bids per call (zero or negative means all).
// Until the cursor reaches the last bid the settlement reports
// Finished=false and assigns nothing permanent to the outside world; the
// router moves no assets for unfinished batches.
func (m *Module) Settle(ctx context.Context, lotID uint64, maxBids int) (auctionv1.Settlement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.lot(lotID)
	if err != nil {
		return auctionv1.Settlement{}, err
	}
	if state.Lot.Status == auctionv1.LotStatusSettled {
		return auctionv1.Settlement{}, errors.NewErrorDetails(
			fmt.Sprintf("lot %d is already settled", lotID),
			string(errors.LotAlreadySettled),
			"lot_id",
		)
	}
	if state.Lot.Status != auctionv1.LotStatusCreated {
		return auctionv1.Settlement{}, errors.NewErrorDetails(
			fmt.Sprintf("lot %d is not in a settleable state", lotID),
			string(errors.LotNotActive),
			"lot_id",
		)
	}

	now := m.now()
	if now.Before(state.Lot.Conclusion) {
		return auctionv1.Settlement{}, errors.NewErrorDetails(
			fmt.Sprintf("lot %d has not concluded", lotID),
			string(errors.LotNotConcluded),
			"lot_id",
		)
	}
	if !now.Before(state.Lot.Conclusion.Add(m.settlePeriod)) {
		return auctionv1.Settlement{}, errors.NewErrorDetails(
			fmt.Sprintf("settlement window of lot %d has expired", lotID),
			string(errors.SettlementWindowExpired),
			"lot_id",
		)
	}

	processed := 0
	for state.Cursor < len(state.Bids) && (maxBids <= 0 || processed < maxBids) {
		bid := state.Bids[state.Cursor]
		state.Cursor++
		processed++

		if bid.Status != auctionv1.BidStatusOpen {
			continue
		}

		want := state.payout(bid.Amount)
		switch {
		case want.Sign() > 0 && state.Lot.Capacity.GreaterThanOrEqual(want):
			state.fill(bid, want)
		case state.Lot.Capacity.Sign() > 0 && want.GreaterThan(state.Lot.Capacity):
			state.partialFill(bid)
		default:
			// Lost: capacity exhausted. The full amount comes back at claim.
			bid.Refund = bid.Amount
		}
	}

	if state.Cursor < len(state.Bids) {
		return auctionv1.Settlement{
			TotalIn:  state.TotalIn,
			TotalOut: state.TotalOut,
		}, nil
	}

	if state.MinFillPercent > 0 {
		threshold := feesv1.Portion(state.InitialCapacity, state.MinFillPercent)
		if state.Lot.Sold.LessThan(threshold) {
			state.void()
		}
	}

	state.Lot.Status = auctionv1.LotStatusSettled
	return auctionv1.Settlement{
		TotalIn:     state.TotalIn,
		TotalOut:    state.TotalOut,
		Finished:    true,
		PartialFill: state.PartialFill,
	}, nil
}

// Abort finalizes a lot whose settlement window expired unsettled. Every bid
// becomes claimable as a full refund and any in-progress settlement
// assignment is discarded.
func (m *Module) Abort(ctx context.Context, lotID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.lot(lotID)
	if err != nil {
		return err
	}
	if state.Lot.Status == auctionv1.LotStatusSettled {
		return errors.NewErrorDetails(
			fmt.Sprintf("lot %d is already settled", lotID),
			string(errors.LotAlreadySettled),
			"lot_id",
		)
	}
	if state.Lot.Status != auctionv1.LotStatusCreated {
		return errors.NewErrorDetails(
			fmt.Sprintf("lot %d is not in an abortable state", lotID),
			string(errors.LotNotActive),
			"lot_id",
		)
	}
	if m.now().Before(state.Lot.Conclusion.Add(m.settlePeriod)) {
		return errors.NewErrorDetails(
			fmt.Sprintf("settlement window of lot %d is still open", lotID),
			string(errors.SettlementWindowOpen),
			"lot_id",
		)
	}

	state.void()
	state.Lot.Status = auctionv1.LotStatusAborted
	return nil
}

func (s *lotState) fill(bid *auctionv1.Bid, want decimal.Decimal) {
	bid.Payout = want
	s.Lot.Capacity = s.Lot.Capacity.Sub(want)
	s.Lot.Sold = s.Lot.Sold.Add(want)
	s.Lot.Purchased = s.Lot.Purchased.Add(bid.Amount)
	s.TotalIn = s.TotalIn.Add(bid.Amount)
	s.TotalOut = s.TotalOut.Add(want)
}

// partialFill accepts the crossing bid for the remaining capacity. The bid
// is marked claimed here since the router pays it inline at settlement.
// A fill whose retained quote rounds to zero is demoted to a full refund so
// settlement never reports a paid-for-nothing winner.
func (s *lotState) partialFill(bid *auctionv1.Bid) {
	pfPayout := s.Lot.Capacity
	paid := s.paidFor(pfPayout)
	if paid.IsZero() {
		bid.Refund = bid.Amount
		return
	}

	bid.Payout = pfPayout
	bid.Refund = bid.Amount.Sub(paid)
	bid.Status = auctionv1.BidStatusClaimed

	s.PartialFill = &auctionv1.PartialFill{
		BidID:    bid.ID,
		Bidder:   bid.Bidder,
		Referrer: bid.Referrer,
		Payout:   pfPayout,
		Refund:   bid.Refund,
	}
	s.Lot.Capacity = decimal.Zero
	s.Lot.Sold = s.Lot.Sold.Add(pfPayout)
	s.Lot.Purchased = s.Lot.Purchased.Add(paid)
	s.Lot.PayoutSent = s.Lot.PayoutSent.Add(pfPayout)
	s.TotalIn = s.TotalIn.Add(paid)
	s.TotalOut = s.TotalOut.Add(pfPayout)
}

// void discards every settlement assignment, returning the lot to the state
// where each non-refunded bid claims its full amount back. Nothing has left
// the router for these assignments, so resetting module state is enough.
func (s *lotState) void() {
	for _, bid := range s.Bids {
		if bid.Status == auctionv1.BidStatusRefunded {
			continue
		}
		bid.Status = auctionv1.BidStatusOpen
		bid.Payout = decimal.Zero
		bid.Refund = bid.Amount
	}
	s.PartialFill = nil
	s.TotalIn = decimal.Zero
	s.TotalOut = decimal.Zero
	s.Lot.Capacity = s.InitialCapacity
	s.Lot.Sold = decimal.Zero
	s.Lot.Purchased = decimal.Zero
	s.Lot.PayoutSent = decimal.Zero
}
