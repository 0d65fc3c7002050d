package callback

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
	callbackv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/callback/v1"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
)

type registration struct {
	callback callbackv1.Callback
	perms    callbackv1.Permissions
}

// Dispatcher routes lifecycle hooks to registered callback extensions.
// Permissions are read once at registration; hooks whose bit is unset are
// silent no-ops. When an extension declares SendsBaseAsset, the dispatcher
// verifies the router account's base asset balance actually moved by the
// promised amount before trusting the hook succeeded.
type Dispatcher struct {
	mu            sync.RWMutex
	bank          bankv1.Bank
	routerAccount bankv1.Address
	registrations map[string]registration
}

// NewDispatcher creates a dispatcher whose funded-hook verification reads
// balances of routerAccount.
func NewDispatcher(bank bankv1.Bank, routerAccount bankv1.Address) *Dispatcher {
	return &Dispatcher{
		bank:          bank,
		routerAccount: routerAccount,
		registrations: make(map[string]registration),
	}
}

// Register binds a callback id to its implementation and permission set.
// An extension that sends base assets must handle both OnCreate and
// OnCurate, otherwise lots it serves could never be funded.
func (d *Dispatcher) Register(id string, cb callbackv1.Callback, perms callbackv1.Permissions) error {
	if id == "" {
		return errors.NewErrorDetails("callback id cannot be empty", string(errors.InvalidParams), "id")
	}
	if cb == nil {
		return errors.NewErrorDetails("callback cannot be nil", string(errors.InvalidParams), "callback")
	}
	if cb.Account().IsZero() {
		return errors.NewErrorDetails("callback account cannot be zero", string(errors.InvalidParams), "account")
	}
	if perms.SendsBaseAsset && (!perms.OnCreate || !perms.OnCurate) {
		return errors.NewErrorDetails(
			"sends-base-asset callbacks must handle create and curate",
			string(errors.InvalidParams),
			"permissions",
		)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.registrations[id]; exists {
		return errors.NewErrorDetails(
			fmt.Sprintf("callback %s is already registered", id),
			string(errors.InvalidParams),
			"id",
		)
	}

	d.registrations[id] = registration{callback: cb, perms: perms}
	return nil
}

// IsRegistered reports whether a callback id is known.
func (d *Dispatcher) IsRegistered(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, exists := d.registrations[id]
	return exists
}

// Permissions returns the permission set of a callback id. The empty id is
// the no-callback sentinel and reads as all-unset.
func (d *Dispatcher) Permissions(id string) (callbackv1.Permissions, error) {
	if id == "" {
		return callbackv1.Permissions{}, nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	reg, exists := d.registrations[id]
	if !exists {
		return callbackv1.Permissions{}, unknownCallback(id)
	}
	return reg.perms, nil
}

// Account returns the custody account of a callback id.
func (d *Dispatcher) Account(id string) (bankv1.Address, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	reg, exists := d.registrations[id]
	if !exists {
		return bankv1.ZeroAddress, unknownCallback(id)
	}
	return reg.callback.Account(), nil
}

// OnCreate dispatches the lot-creation hook. When the extension sends base
// assets and the lot is not prefunded, the hook must deposit exactly the lot
// capacity into the router account.
func (d *Dispatcher) OnCreate(ctx context.Context, caller bankv1.Address, id string, lotID uint64, seller bankv1.Address, baseAsset, quoteAsset string, capacity decimal.Decimal, prefunded bool, callbackData []byte) error {
	reg, dispatch, err := d.lookup(caller, id)
	if err != nil || !dispatch || !reg.perms.OnCreate {
		return err
	}

	if reg.perms.SendsBaseAsset && !prefunded {
		return d.withFundingCheck(ctx, baseAsset, capacity, func() error {
			return reg.callback.OnCreate(ctx, lotID, seller, baseAsset, quoteAsset, capacity, prefunded, callbackData)
		})
	}
	return reg.callback.OnCreate(ctx, lotID, seller, baseAsset, quoteAsset, capacity, prefunded, callbackData)
}

// OnCancel dispatches the lot-cancellation hook. The refund has already been
// routed before dispatch, so no funding check applies.
func (d *Dispatcher) OnCancel(ctx context.Context, caller bankv1.Address, id string, lotID uint64, refund decimal.Decimal, prefunded bool, callbackData []byte) error {
	reg, dispatch, err := d.lookup(caller, id)
	if err != nil || !dispatch || !reg.perms.OnCancel {
		return err
	}
	return reg.callback.OnCancel(ctx, lotID, refund, prefunded, callbackData)
}

// OnCurate dispatches the curation hook. When the extension sends base
// assets and the payout is not prefunded, the hook must deposit the curator
// payout into the router account.
func (d *Dispatcher) OnCurate(ctx context.Context, caller bankv1.Address, id string, lotID uint64, curatorPayout decimal.Decimal, baseAsset string, prefunded bool, callbackData []byte) error {
	reg, dispatch, err := d.lookup(caller, id)
	if err != nil || !dispatch || !reg.perms.OnCurate {
		return err
	}

	if reg.perms.SendsBaseAsset && !prefunded {
		return d.withFundingCheck(ctx, baseAsset, curatorPayout, func() error {
			return reg.callback.OnCurate(ctx, lotID, curatorPayout, prefunded, callbackData)
		})
	}
	return reg.callback.OnCurate(ctx, lotID, curatorPayout, prefunded, callbackData)
}

// OnBid dispatches the bid hook.
func (d *Dispatcher) OnBid(ctx context.Context, caller bankv1.Address, id string, lotID, bidID uint64, bidder bankv1.Address, amount decimal.Decimal, callbackData []byte) error {
	reg, dispatch, err := d.lookup(caller, id)
	if err != nil || !dispatch || !reg.perms.OnBid {
		return err
	}
	return reg.callback.OnBid(ctx, lotID, bidID, bidder, amount, callbackData)
}

// OnPurchase dispatches the purchase hook.
func (d *Dispatcher) OnPurchase(ctx context.Context, caller bankv1.Address, id string, lotID uint64, buyer bankv1.Address, amount, payout decimal.Decimal, prefunded bool, callbackData []byte) error {
	reg, dispatch, err := d.lookup(caller, id)
	if err != nil || !dispatch || !reg.perms.OnPurchase {
		return err
	}
	return reg.callback.OnPurchase(ctx, lotID, buyer, amount, payout, prefunded, callbackData)
}

// OnClaimProceeds dispatches the proceeds-claim hook.
func (d *Dispatcher) OnClaimProceeds(ctx context.Context, caller bankv1.Address, id string, lotID uint64, proceeds, refund decimal.Decimal, callbackData []byte) error {
	reg, dispatch, err := d.lookup(caller, id)
	if err != nil || !dispatch || !reg.perms.OnClaimProceeds {
		return err
	}
	return reg.callback.OnClaimProceeds(ctx, lotID, proceeds, refund, callbackData)
}

// lookup resolves a dispatch target. The empty id dispatches nothing and
// returns dispatch=false with no error.
func (d *Dispatcher) lookup(caller bankv1.Address, id string) (registration, bool, error) {
	if caller != d.routerAccount {
		return registration{}, false, errors.NewErrorDetails(
			"callbacks dispatch from the router only",
			string(errors.NotRouter),
			"caller",
		)
	}
	if id == "" {
		return registration{}, false, nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	reg, exists := d.registrations[id]
	if !exists {
		return registration{}, false, unknownCallback(id)
	}
	return reg, true, nil
}

// withFundingCheck invokes a funded hook and verifies the router account's
// balance of asset moved by exactly the expected amount.
func (d *Dispatcher) withFundingCheck(ctx context.Context, asset string, expected decimal.Decimal, invoke func() error) error {
	before, err := d.bank.BalanceOf(ctx, d.routerAccount, asset)
	if err != nil {
		return err
	}

	if err := invoke(); err != nil {
		return err
	}

	after, err := d.bank.BalanceOf(ctx, d.routerAccount, asset)
	if err != nil {
		return err
	}

	if !after.Sub(before).Equal(expected) {
		return errors.NewErrorDetails(
			fmt.Sprintf("callback supplied %s of %s, expected %s", after.Sub(before), asset, expected),
			string(errors.CallbackBalanceMismatch),
			"amount",
		)
	}
	return nil
}

func unknownCallback(id string) error {
	return errors.NewErrorDetails(
		fmt.Sprintf("callback %s is not registered", id),
		string(errors.UnknownCallback),
		"id",
	)
}
