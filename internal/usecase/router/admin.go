package router

import (
	"context"

	"github.com/shopspring/decimal"

	auctionv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/auction/v1"
	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
	eventv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/event/v1"
	feesv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/fees/v1"
)

// SetFee updates one fee policy percentage for an auction type. Admin only.
// Lots that already froze their fees are unaffected.
func (r *Router) SetFee(ctx context.Context, caller bankv1.Address, ref auctionv1.Ref, kind feesv1.FeeKind, bps uint64) error {
	gctx, release, err := r.guard.enter(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := r.fees.SetFee(gctx, caller, ref, kind, bps); err != nil {
		return err
	}
	r.version++
	return nil
}

// SetCuratorFee records the caller's elected curator fee for an auction
// type, applied to lots they curate afterwards.
func (r *Router) SetCuratorFee(ctx context.Context, caller bankv1.Address, ref auctionv1.Ref, bps uint64) error {
	gctx, release, err := r.guard.enter(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := r.fees.SetCuratorFee(gctx, caller, ref, bps); err != nil {
		return err
	}
	r.version++
	return nil
}

// ClaimRewards pays out the caller's accrued rewards for one asset from
// router custody. A failed transfer restores the ledger entry.
func (r *Router) ClaimRewards(ctx context.Context, caller bankv1.Address, asset string) (decimal.Decimal, error) {
	gctx, release, err := r.guard.enter(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer release()

	amount, err := r.fees.ClaimRewards(gctx, caller, asset)
	if err != nil {
		return decimal.Zero, err
	}
	if err := r.bank.Transfer(gctx, r.account, caller, asset, amount); err != nil {
		r.fees.Accrue(gctx, caller, asset, amount)
		return decimal.Zero, err
	}

	r.version++
	r.publish(gctx, eventv1.TypeRewardsClaimed, 0, auctionv1.Ref{}, eventv1.RewardsClaimedPayload{
		Recipient: caller,
		Asset:     asset,
		Amount:    amount,
	})
	return amount, nil
}
