package router

import (
	"context"

	"github.com/shopspring/decimal"

	auctionv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/auction/v1"
	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
	eventv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/event/v1"
	feesv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/fees/v1"
	routingv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/routing/v1"
	"github.com/muhammadchandra19/auctionhouse/pkg/logger"
)

// Settle runs one batch of settlement work for a concluded lot. Until the
// module reports the settlement finished, no assets and no fees move and the
// call only advances module state. The finishing call freezes the protocol
// and referrer fees, pays the partial-fill bid inline and pays the curator
// on capacity actually sold. maxBids at or below zero applies the router's
// configured batch bound.
func (r *Router) Settle(ctx context.Context, caller bankv1.Address, lotID uint64, maxBids int, callbackData []byte) (auctionv1.Settlement, error) {
	gctx, release, err := r.guard.enter(ctx)
	if err != nil {
		return auctionv1.Settlement{}, err
	}
	defer release()

	routing, fee, err := r.lot(lotID)
	if err != nil {
		return auctionv1.Settlement{}, err
	}
	module, err := r.module(routing)
	if err != nil {
		return auctionv1.Settlement{}, err
	}

	// The curator math runs on the capacity as it stood before any
	// settlement work, so the reference is pinned at the first batch.
	capRef, tracked := r.capacityRefs[lotID]
	if !tracked {
		capRef, err = module.RemainingCapacity(gctx, lotID)
		if err != nil {
			return auctionv1.Settlement{}, err
		}
	}

	if maxBids <= 0 {
		maxBids = r.maxSettleBatch
	}
	settlement, err := module.Settle(gctx, lotID, maxBids)
	if err != nil {
		return auctionv1.Settlement{}, err
	}
	if !tracked {
		r.capacityRefs[lotID] = capRef
	}

	curatorPayout := decimal.Zero
	if settlement.Finished && settlement.TotalIn.IsPositive() && settlement.TotalOut.IsPositive() {
		// The winners are decided, freeze the fee policy for this lot.
		policy := r.fees.Fees(gctx, routing.AuctionRef)
		fee.ProtocolFee = policy.Protocol
		fee.ReferrerFee = policy.Referrer

		if fee.Curated {
			curatorPayout = feesv1.Portion(capRef, fee.CuratorFee)
		}

		if pf := settlement.PartialFill; pf != nil {
			if err := r.payPartialFill(gctx, routing, fee, pf, settlement); err != nil {
				return auctionv1.Settlement{}, err
			}
		}

		// An undersold lot pays the curator only on capacity actually sold.
		if settlement.TotalOut.LessThan(capRef) && curatorPayout.IsPositive() {
			feeRefund := bankv1.MulDiv(curatorPayout, capRef.Sub(settlement.TotalOut), capRef)
			curatorPayout = curatorPayout.Sub(feeRefund)
		}
		if curatorPayout.IsPositive() {
			if err := debitFunding(routing, curatorPayout); err != nil {
				return auctionv1.Settlement{}, err
			}
			if err := r.bank.Transfer(gctx, r.account, fee.Curator, routing.BaseAsset, curatorPayout); err != nil {
				return auctionv1.Settlement{}, err
			}
		}
	}

	r.version++
	r.publish(gctx, eventv1.TypeLotSettled, lotID, routing.AuctionRef, eventv1.LotSettledPayload{
		Finished:      settlement.Finished,
		TotalIn:       settlement.TotalIn,
		TotalOut:      settlement.TotalOut,
		CuratorPayout: curatorPayout,
		CallbackData:  callbackData,
	})
	return settlement, nil
}

// payPartialFill settles the single crossing bid inline: its paid amount is
// reconstructed by inverting the settlement price, fees are accrued on it,
// and both the quote refund and the base payout go out immediately.
func (r *Router) payPartialFill(ctx context.Context, routing *routingv1.Routing, fee *routingv1.FeeData, pf *auctionv1.PartialFill, settlement auctionv1.Settlement) error {
	paid := bankv1.MulDiv(pf.Payout, settlement.TotalIn, settlement.TotalOut)
	r.allocateQuoteFees(ctx, routing, fee, pf.Referrer, paid)

	if err := debitFunding(routing, pf.Payout); err != nil {
		return err
	}
	if pf.Refund.IsPositive() {
		if err := r.bank.Transfer(ctx, r.account, pf.Bidder, routing.QuoteAsset, pf.Refund); err != nil {
			return err
		}
	}
	return r.bank.Transfer(ctx, r.account, pf.Bidder, routing.BaseAsset, pf.Payout)
}

// ClaimProceeds pays the seller once settlement has finished: the quote
// purchased net of protocol and referrer fees, plus the base prefunding that
// was not sold. Callable by anyone; the module reports the totals exactly
// once. Afterwards the lot's funding holds exactly the base still owed to
// unclaimed bidders.
func (r *Router) ClaimProceeds(ctx context.Context, caller bankv1.Address, lotID uint64, callbackData []byte) error {
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

	perms, err := r.dispatcher.Permissions(routing.CallbackID)
	if err != nil {
		return err
	}
	quoteRecipient := routing.Seller
	baseRecipient := routing.Seller
	if perms.ReceivesQuoteAsset || perms.SendsBaseAsset {
		extension, err := r.dispatcher.Account(routing.CallbackID)
		if err != nil {
			return err
		}
		if perms.ReceivesQuoteAsset {
			quoteRecipient = extension
		}
		if perms.SendsBaseAsset {
			baseRecipient = extension
		}
	}

	purchased, sold, payoutSent, err := module.ClaimProceeds(gctx, lotID)
	if err != nil {
		return err
	}

	proceeds := purchased.Sub(feesv1.Portion(purchased, fee.ProtocolFee+fee.ReferrerFee))
	if proceeds.IsPositive() {
		if err := r.bank.Transfer(gctx, r.account, quoteRecipient, routing.QuoteAsset, proceeds); err != nil {
			return err
		}
	}

	refund := routing.Funding.Add(payoutSent).Sub(sold)
	if err := debitFunding(routing, refund); err != nil {
		return err
	}
	if refund.IsPositive() {
		if err := r.bank.Transfer(gctx, r.account, baseRecipient, routing.BaseAsset, refund); err != nil {
			return err
		}
	}

	// Settlement is over for this lot; the pinned capacity reference would
	// otherwise sit in every future snapshot.
	delete(r.capacityRefs, lotID)

	// The payouts already moved; a failing notification cannot unwind them.
	if err := r.dispatcher.OnClaimProceeds(gctx, r.account, routing.CallbackID, lotID, proceeds, refund, callbackData); err != nil {
		r.logger.WarnContext(gctx, "claim proceeds callback failed",
			logger.Field{Key: "lot_id", Value: lotID},
			logger.Field{Key: "error", Value: err.Error()},
		)
	}

	r.version++
	r.publish(gctx, eventv1.TypeProceedsClaimed, lotID, routing.AuctionRef, eventv1.ProceedsClaimedPayload{
		Proceeds: proceeds,
		Refund:   refund,
	})
	return nil
}

// Abort voids a lot whose settlement window expired unsettled and returns
// the escrowed funding the way a cancellation would. Callable by anyone;
// every bid becomes claimable as a refund. No callback runs on this path.
func (r *Router) Abort(ctx context.Context, caller bankv1.Address, lotID uint64) error {
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
	perms, err := r.dispatcher.Permissions(routing.CallbackID)
	if err != nil {
		return err
	}
	recipient := routing.Seller
	if perms.SendsBaseAsset {
		recipient, err = r.dispatcher.Account(routing.CallbackID)
		if err != nil {
			return err
		}
	}

	if err := module.Abort(gctx, lotID); err != nil {
		return err
	}

	refund := routing.Funding
	routing.Funding = decimal.Zero
	if refund.IsPositive() {
		if err := r.bank.Transfer(gctx, r.account, recipient, routing.BaseAsset, refund); err != nil {
			return err
		}
	}
	delete(r.capacityRefs, lotID)

	r.version++
	r.publish(gctx, eventv1.TypeLotAborted, lotID, routing.AuctionRef, eventv1.LotAbortedPayload{
		Refund: refund,
	})
	return nil
}
