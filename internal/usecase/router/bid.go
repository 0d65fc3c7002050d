package router

import (
	"context"

	"github.com/shopspring/decimal"

	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
	eventv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/event/v1"
	routingv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/routing/v1"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
	"github.com/muhammadchandra19/auctionhouse/pkg/logger"
)

// Bid records a bid with the lot's module and pulls the quote amount into
// custody, either directly from the caller or through a pre-authorized
// transfer permit. A zero bidder resolves to the caller; a named bidder is
// credited while the caller pays. A failed pull or hook unwinds the
// module-side bid.
func (r *Router) Bid(ctx context.Context, caller bankv1.Address, params routingv1.BidParams) (uint64, error) {
	gctx, release, err := r.guard.enter(ctx)
	if err != nil {
		return 0, err
	}
	defer release()

	if caller.IsZero() {
		return 0, errors.NewErrorDetails("caller must not be zero", string(errors.InvalidParams), "caller")
	}
	routing, _, err := r.lot(params.LotID)
	if err != nil {
		return 0, err
	}
	module, err := r.module(routing)
	if err != nil {
		return 0, err
	}

	if params.Permit != nil {
		if params.Permit.From != caller {
			return 0, errors.NewErrorDetails("permit must be issued by the caller", string(errors.InvalidPermit), "permit")
		}
		if params.Permit.Asset != routing.QuoteAsset {
			return 0, errors.NewErrorDetails("permit asset does not match the quote asset", string(errors.InvalidPermit), "permit")
		}
		if !params.Permit.Amount.Equal(params.Amount) {
			return 0, errors.NewErrorDetails("permit amount does not match the bid amount", string(errors.InvalidPermit), "permit")
		}
	}

	bidder := params.Bidder
	if bidder.IsZero() {
		bidder = caller
	}

	bidID, err := module.RecordBid(gctx, params.LotID, bidder, params.Referrer, params.Amount, params.AuctionData, params.Proof)
	if err != nil {
		return 0, err
	}

	unwindBid := func() {
		if _, rerr := module.RefundBid(gctx, params.LotID, bidID, bidder); rerr != nil {
			r.logger.ErrorContext(gctx, rerr,
				logger.Field{Key: "lot_id", Value: params.LotID},
				logger.Field{Key: "bid_id", Value: bidID},
			)
		}
	}

	if params.Permit != nil {
		err = r.bank.PermitTransfer(gctx, *params.Permit, r.account)
	} else {
		err = r.bank.Transfer(gctx, caller, r.account, routing.QuoteAsset, params.Amount)
	}
	if err != nil {
		unwindBid()
		return 0, err
	}

	if err := r.dispatcher.OnBid(gctx, r.account, routing.CallbackID, params.LotID, bidID, bidder, params.Amount, params.CallbackData); err != nil {
		unwindBid()
		if rerr := r.bank.Transfer(gctx, r.account, caller, routing.QuoteAsset, params.Amount); rerr != nil {
			r.logger.ErrorContext(gctx, rerr, logger.Field{Key: "lot_id", Value: params.LotID})
		}
		return 0, err
	}

	r.version++
	r.publish(gctx, eventv1.TypeBidPlaced, params.LotID, routing.AuctionRef, eventv1.BidPlacedPayload{
		BidID:    bidID,
		Bidder:   bidder,
		Referrer: params.Referrer,
		Amount:   params.Amount,
	})
	return bidID, nil
}

// RefundBid withdraws an open bid before conclusion and returns its quote.
// The module authorizes the withdrawal for the original bidder.
func (r *Router) RefundBid(ctx context.Context, caller bankv1.Address, lotID, bidID uint64) error {
	gctx, release, err := r.guard.enter(ctx)
	if err != nil {
		return err
	}
	defer release()

	routing, _, err := r.lot(lotID)
	if err != nil {
		return err
	}
	module, err := r.module(routing)
	if err != nil {
		return err
	}

	refund, err := module.RefundBid(gctx, lotID, bidID, caller)
	if err != nil {
		return err
	}
	if err := r.bank.Transfer(gctx, r.account, caller, routing.QuoteAsset, refund); err != nil {
		// Reopen the withdrawal so the bidder is not locked out unpaid.
		if rerr := module.ReopenBids(gctx, lotID, []uint64{bidID}); rerr != nil {
			r.logger.ErrorContext(gctx, rerr,
				logger.Field{Key: "lot_id", Value: lotID},
				logger.Field{Key: "bid_id", Value: bidID},
			)
		}
		return err
	}

	r.version++
	r.publish(gctx, eventv1.TypeBidRefunded, lotID, routing.AuctionRef, eventv1.BidRefundedPayload{
		BidID:  bidID,
		Bidder: caller,
		Refund: refund,
	})
	return nil
}

// ClaimBids pays out the outcome of settled or aborted bids, callable by
// anyone on behalf of the bidders named in the claims. Filled bids pay the
// base payout after quote fees are accrued on the paid amount; unfilled or
// aborted bids get their quote back in full with no fees.
func (r *Router) ClaimBids(ctx context.Context, caller bankv1.Address, lotID uint64, bidIDs []uint64) error {
	gctx, release, err := r.guard.enter(ctx)
	if err != nil {
		return err
	}
	defer release()

	routing, fee, err := r.lot(lotID)
	if err != nil {
		return err
	}
	module, err := r.module(routing)
	if err != nil {
		return err
	}

	claims, err := module.ClaimBids(gctx, lotID, bidIDs)
	if err != nil {
		return err
	}

	// Payouts run against a compensation journal: one failed transfer rolls
	// every payment of the list back, restores the funding debits and reopens
	// the claims so the whole list can retry.
	type payment struct {
		to     bankv1.Address
		asset  string
		amount decimal.Decimal
	}
	var paid []payment
	debited := decimal.Zero

	unwind := func(cause error) error {
		for i := len(paid) - 1; i >= 0; i-- {
			p := paid[i]
			if rerr := r.bank.Transfer(gctx, p.to, r.account, p.asset, p.amount); rerr != nil {
				r.logger.ErrorContext(gctx, rerr, logger.Field{Key: "lot_id", Value: lotID})
			}
		}
		routing.Funding = routing.Funding.Add(debited)
		if rerr := module.ReopenBids(gctx, lotID, bidIDs); rerr != nil {
			r.logger.ErrorContext(gctx, rerr, logger.Field{Key: "lot_id", Value: lotID})
		}
		return cause
	}
	transfer := func(to bankv1.Address, asset string, amount decimal.Decimal) error {
		if err := r.bank.Transfer(gctx, r.account, to, asset, amount); err != nil {
			return err
		}
		paid = append(paid, payment{to: to, asset: asset, amount: amount})
		return nil
	}

	for _, claim := range claims {
		if !claim.Payout.IsPositive() {
			if err := transfer(claim.Bidder, routing.QuoteAsset, claim.Refund); err != nil {
				return unwind(err)
			}
			continue
		}

		if err := debitFunding(routing, claim.Payout); err != nil {
			return unwind(err)
		}
		debited = debited.Add(claim.Payout)
		if err := transfer(claim.Bidder, routing.BaseAsset, claim.Payout); err != nil {
			return unwind(err)
		}
		if claim.Refund.IsPositive() {
			if err := transfer(claim.Bidder, routing.QuoteAsset, claim.Refund); err != nil {
				return unwind(err)
			}
		}
	}

	// Fees accrue only after every payment went through.
	for _, claim := range claims {
		if claim.Payout.IsPositive() {
			r.allocateQuoteFees(gctx, routing, fee, claim.Referrer, claim.Paid)
		}
	}

	r.version++
	r.publish(gctx, eventv1.TypeBidsClaimed, lotID, routing.AuctionRef, eventv1.BidsClaimedPayload{
		BidIDs: bidIDs,
	})
	return nil
}
