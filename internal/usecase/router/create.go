package router

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	auctionv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/auction/v1"
	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
	eventv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/event/v1"
	feesv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/fees/v1"
	routingv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/routing/v1"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
	"github.com/muhammadchandra19/auctionhouse/pkg/logger"
)

// Asset precision the fee and payout math is validated for.
const (
	minAssetDecimals uint8 = 6
	maxAssetDecimals uint8 = 18
)

// CreateLot registers a new lot with its auction module and takes the full
// capacity into custody, pulled from the seller or supplied by the lot's
// callback when it declared SendsBaseAsset. The caller becomes the seller.
// A failed funding step unwinds the module-side lot.
func (r *Router) CreateLot(ctx context.Context, caller bankv1.Address, params routingv1.RoutingParams, auction auctionv1.AuctionParams, infoRef string) (uint64, error) {
	gctx, release, err := r.guard.enter(ctx)
	if err != nil {
		return 0, err
	}
	defer release()

	if caller.IsZero() {
		return 0, errors.NewErrorDetails("caller must not be zero", string(errors.InvalidParams), "caller")
	}

	module, err := r.registry.Auction(params.AuctionRef)
	if err != nil {
		return 0, err
	}
	if r.registry.IsSunset(params.AuctionRef) {
		return 0, sunsetError(params.AuctionRef)
	}

	if params.WrapDerivative {
		derivative, err := r.registry.Derivative(params.DerivativeRef)
		if err != nil {
			return 0, err
		}
		if r.registry.IsSunset(params.DerivativeRef) {
			return 0, sunsetError(params.DerivativeRef)
		}
		if err := derivative.ValidateParams(gctx, params.DerivativeParams); err != nil {
			return 0, err
		}
	}

	// Resolves the zero id to the zero permission set and rejects unknown
	// ids, which covers the callback registration check.
	perms, err := r.dispatcher.Permissions(params.CallbackID)
	if err != nil {
		return 0, err
	}

	baseDecimals, err := r.validateAsset(gctx, "baseAsset", params.BaseAsset)
	if err != nil {
		return 0, err
	}
	quoteDecimals, err := r.validateAsset(gctx, "quoteAsset", params.QuoteAsset)
	if err != nil {
		return 0, err
	}

	if auction.CapacityInQuote {
		return 0, errors.NewErrorDetails(
			"prefunded lots require capacity in the base asset",
			string(errors.CapacityInQuote),
			"capacityInQuote",
		)
	}
	if !auction.Capacity.IsPositive() {
		return 0, errors.NewErrorDetails("capacity must be positive", string(errors.ZeroAmount), "capacity")
	}

	lotID := r.nextLotID
	if err := module.CreateLot(gctx, lotID, auction, quoteDecimals, baseDecimals); err != nil {
		return 0, err
	}
	// The id is consumed from here on even if funding fails, because the
	// module has seen it and would reject its reuse.
	r.nextLotID++

	prefunded := !perms.SendsBaseAsset
	if err := r.sourceFunding(gctx, caller, params, lotID, auction.Capacity, prefunded); err != nil {
		if cerr := module.CancelLot(gctx, lotID); cerr != nil {
			r.logger.ErrorContext(gctx, cerr, logger.Field{Key: "lot_id", Value: lotID})
		}
		return 0, err
	}

	r.routings[lotID] = &routingv1.Routing{
		Seller:           caller,
		BaseAsset:        params.BaseAsset,
		QuoteAsset:       params.QuoteAsset,
		AuctionRef:       params.AuctionRef,
		Funding:          auction.Capacity,
		CallbackID:       params.CallbackID,
		WrapDerivative:   params.WrapDerivative,
		DerivativeRef:    params.DerivativeRef,
		DerivativeParams: params.DerivativeParams,
	}
	r.feeData[lotID] = &routingv1.FeeData{Curator: params.Curator}
	r.version++

	r.publish(gctx, eventv1.TypeLotCreated, lotID, params.AuctionRef, eventv1.LotCreatedPayload{
		Seller:     caller,
		BaseAsset:  params.BaseAsset,
		QuoteAsset: params.QuoteAsset,
		Capacity:   auction.Capacity,
		Prefunded:  prefunded,
		InfoRef:    infoRef,
	})
	return lotID, nil
}

// sourceFunding moves the lot capacity into custody. Prefunded lots pull it
// from the seller and dispatch OnCreate as a notification; extension-funded
// lots make OnCreate itself deliver the capacity under a balance-delta check.
func (r *Router) sourceFunding(ctx context.Context, seller bankv1.Address, params routingv1.RoutingParams, lotID uint64, capacity decimal.Decimal, prefunded bool) error {
	if !prefunded {
		return r.dispatcher.OnCreate(ctx, r.account, params.CallbackID, lotID, seller, params.BaseAsset, params.QuoteAsset, capacity, false, params.CallbackData)
	}

	if err := r.bank.Transfer(ctx, seller, r.account, params.BaseAsset, capacity); err != nil {
		return err
	}
	if err := r.dispatcher.OnCreate(ctx, r.account, params.CallbackID, lotID, seller, params.BaseAsset, params.QuoteAsset, capacity, true, params.CallbackData); err != nil {
		if rerr := r.bank.Transfer(ctx, r.account, seller, params.BaseAsset, capacity); rerr != nil {
			r.logger.ErrorContext(ctx, rerr, logger.Field{Key: "lot_id", Value: lotID})
		}
		return err
	}
	return nil
}

// CancelLot cancels a lot the module still considers cancellable and
// returns the escrowed funding. Seller only. The refund flows back to
// whoever funded the lot.
func (r *Router) CancelLot(ctx context.Context, caller bankv1.Address, lotID uint64, callbackData []byte) error {
	gctx, release, err := r.guard.enter(ctx)
	if err != nil {
		return err
	}
	defer release()

	routing, _, err := r.lot(lotID)
	if err != nil {
		return err
	}
	if caller != routing.Seller {
		return errors.NewErrorDetails("only the seller can cancel a lot", string(errors.NotSeller), "caller")
	}

	perms, err := r.dispatcher.Permissions(routing.CallbackID)
	if err != nil {
		return err
	}
	module, err := r.module(routing)
	if err != nil {
		return err
	}

	if err := module.CancelLot(gctx, lotID); err != nil {
		return err
	}

	refund := routing.Funding
	routing.Funding = decimal.Zero

	toExtension := perms.SendsBaseAsset
	recipient := routing.Seller
	if toExtension {
		recipient, err = r.dispatcher.Account(routing.CallbackID)
		if err != nil {
			return err
		}
	}
	if refund.IsPositive() {
		if err := r.bank.Transfer(gctx, r.account, recipient, routing.BaseAsset, refund); err != nil {
			return err
		}
	}

	// The refund already moved; a failing notification cannot unwind it.
	if err := r.dispatcher.OnCancel(gctx, r.account, routing.CallbackID, lotID, refund, toExtension, callbackData); err != nil {
		r.logger.WarnContext(gctx, "cancel callback failed",
			logger.Field{Key: "lot_id", Value: lotID},
			logger.Field{Key: "error", Value: err.Error()},
		)
	}

	r.version++
	r.publish(gctx, eventv1.TypeLotCancelled, lotID, routing.AuctionRef, eventv1.LotCancelledPayload{
		Seller: routing.Seller,
		Refund: refund,
	})
	return nil
}

// Curate accepts a lot on behalf of its proposed curator, freezing the
// curator's elected fee and escrowing the maximum payout it can earn. Runs
// once per lot, before conclusion.
func (r *Router) Curate(ctx context.Context, caller bankv1.Address, lotID uint64, callbackData []byte) error {
	gctx, release, err := r.guard.enter(ctx)
	if err != nil {
		return err
	}
	defer release()

	routing, fee, err := r.lot(lotID)
	if err != nil {
		return err
	}
	if fee.Curated {
		return errors.NewErrorDetails("lot is already curated", string(errors.LotAlreadyCurated), "lotID")
	}
	if fee.Curator.IsZero() || caller != fee.Curator {
		return errors.NewErrorDetails("only the proposed curator can curate", string(errors.NotCurator), "caller")
	}

	module, err := r.module(routing)
	if err != nil {
		return err
	}
	lot, err := module.Lot(gctx, lotID)
	if err != nil {
		return err
	}
	if lot.Status != auctionv1.LotStatusCreated || !r.now().Before(lot.Conclusion) {
		return errors.NewErrorDetails("lot is no longer accepting curation", string(errors.LotNotActive), "lotID")
	}

	elected := r.fees.CuratorFee(gctx, routing.AuctionRef, caller)
	if policyMax := r.fees.Fees(gctx, routing.AuctionRef).MaxCurator; elected > policyMax {
		elected = policyMax
	}
	remaining, err := module.RemainingCapacity(gctx, lotID)
	if err != nil {
		return err
	}
	maxPayout := feesv1.Portion(remaining, elected)

	perms, err := r.dispatcher.Permissions(routing.CallbackID)
	if err != nil {
		return err
	}
	// The payout escrow is the seller's expense, pulled like the creation
	// funding was. Whatever settlement does not award the curator flows back
	// to the seller with the proceeds refund.
	if perms.SendsBaseAsset {
		err = r.dispatcher.OnCurate(gctx, r.account, routing.CallbackID, lotID, maxPayout, routing.BaseAsset, false, callbackData)
		if err != nil {
			return err
		}
	} else {
		if maxPayout.IsPositive() {
			if err := r.bank.Transfer(gctx, routing.Seller, r.account, routing.BaseAsset, maxPayout); err != nil {
				return err
			}
		}
		if err := r.dispatcher.OnCurate(gctx, r.account, routing.CallbackID, lotID, maxPayout, routing.BaseAsset, true, callbackData); err != nil {
			if maxPayout.IsPositive() {
				if rerr := r.bank.Transfer(gctx, r.account, routing.Seller, routing.BaseAsset, maxPayout); rerr != nil {
					r.logger.ErrorContext(gctx, rerr, logger.Field{Key: "lot_id", Value: lotID})
				}
			}
			return err
		}
	}

	fee.Curated = true
	fee.CuratorFee = elected
	routing.Funding = routing.Funding.Add(maxPayout)
	r.version++

	r.publish(gctx, eventv1.TypeLotCurated, lotID, routing.AuctionRef, eventv1.LotCuratedPayload{
		Curator:   caller,
		Fee:       elected,
		MaxPayout: maxPayout,
	})
	return nil
}

// validateAsset checks an asset id is registered with supported precision.
func (r *Router) validateAsset(ctx context.Context, field, id string) (uint8, error) {
	if id == "" {
		return 0, errors.NewErrorDetails("asset id must not be empty", string(errors.ZeroAsset), field)
	}
	decimals, err := r.bank.AssetDecimals(ctx, id)
	if err != nil {
		return 0, err
	}
	if decimals < minAssetDecimals || decimals > maxAssetDecimals {
		return 0, errors.NewErrorDetails(
			fmt.Sprintf("asset %s has %d decimals, supported range is %d to %d", id, decimals, minAssetDecimals, maxAssetDecimals),
			string(errors.InvalidAssetDecimals),
			field,
		)
	}
	return decimals, nil
}

func sunsetError(ref auctionv1.Ref) error {
	return errors.NewErrorDetails(
		fmt.Sprintf("module %s is sunset and cannot take new lots", ref),
		string(errors.ModuleSunset),
		"ref",
	)
}
