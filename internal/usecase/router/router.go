// Package router implements the lot router, the custody and fee core every
// auction flows through. It owns per-lot routing and fee records, escrows
// base funding and quote bids in its bank account, and delegates auction
// semantics to the installed module a lot is pinned to.
package router

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	auctionv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/auction/v1"
	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
	callbackv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/callback/v1"
	eventv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/event/v1"
	feesv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/fees/v1"
	routingv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/routing/v1"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
	"github.com/muhammadchandra19/auctionhouse/pkg/logger"
)

// Router routes every lot operation between the caller, the bank, the
// auction module and the callback dispatcher. All public methods serialize
// on one mutex; see guard.go for the re-entry rules.
type Router struct {
	account    bankv1.Address
	bank       bankv1.Bank
	registry   auctionv1.Registry
	fees       feesv1.Manager
	dispatcher callbackv1.Dispatcher
	publisher  eventv1.Publisher
	logger     logger.Interface

	maxSettleBatch int
	now            func() time.Time

	guard guard

	routings map[uint64]*routingv1.Routing
	feeData  map[uint64]*routingv1.FeeData
	// capacityRefs pins, per lot, the remaining capacity read before the
	// first settle batch. Curator math runs on this reference so it is
	// immune to the capacity mutation settlement performs.
	capacityRefs map[uint64]decimal.Decimal
	nextLotID    uint64
	version      uint64
}

// Option configures a Router.
type Option func(*Router)

// WithClock overrides the time source used for the curation window check.
// Permit deadlines are checked by the ledger against its own clock.
func WithClock(now func() time.Time) Option {
	return func(r *Router) {
		r.now = now
	}
}

// WithMaxSettleBatch bounds the bids processed per settle call when the
// caller passes no limit. Zero keeps settle calls unbounded.
func WithMaxSettleBatch(n int) Option {
	return func(r *Router) {
		r.maxSettleBatch = n
	}
}

// NewRouter creates a router transacting from the given bank account.
func NewRouter(
	account bankv1.Address,
	bank bankv1.Bank,
	registry auctionv1.Registry,
	fees feesv1.Manager,
	dispatcher callbackv1.Dispatcher,
	publisher eventv1.Publisher,
	logger logger.Interface,
	opts ...Option,
) *Router {
	r := &Router{
		account:      account,
		bank:         bank,
		registry:     registry,
		fees:         fees,
		dispatcher:   dispatcher,
		publisher:    publisher,
		logger:       logger,
		now:          time.Now,
		routings:     make(map[uint64]*routingv1.Routing),
		feeData:      make(map[uint64]*routingv1.FeeData),
		capacityRefs: make(map[uint64]decimal.Decimal),
		nextLotID:    1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Account returns the router's custody account.
func (r *Router) Account() bankv1.Address {
	return r.account
}

// Version returns the state version, bumped on every successful mutation.
// The engine's snapshot loop uses it to skip unchanged checkpoints.
func (r *Router) Version() uint64 {
	r.guard.mu.Lock()
	defer r.guard.mu.Unlock()
	return r.version
}

// Routing returns a copy of the routing record for a lot.
func (r *Router) Routing(lotID uint64) (routingv1.Routing, error) {
	r.guard.mu.Lock()
	defer r.guard.mu.Unlock()

	routing, ok := r.routings[lotID]
	if !ok {
		return routingv1.Routing{}, lotNotFound(lotID)
	}
	return *routing, nil
}

// FeeData returns a copy of the fee record for a lot.
func (r *Router) FeeData(lotID uint64) (routingv1.FeeData, error) {
	r.guard.mu.Lock()
	defer r.guard.mu.Unlock()

	fee, ok := r.feeData[lotID]
	if !ok {
		return routingv1.FeeData{}, lotNotFound(lotID)
	}
	return *fee, nil
}

// lot resolves the routing and fee records for a lot id. Callers hold the
// guard.
func (r *Router) lot(lotID uint64) (*routingv1.Routing, *routingv1.FeeData, error) {
	routing, ok := r.routings[lotID]
	if !ok {
		return nil, nil, lotNotFound(lotID)
	}
	return routing, r.feeData[lotID], nil
}

// module resolves the auction module a lot is pinned to. Sunset modules
// still resolve so live lots can finish their lifecycle.
func (r *Router) module(routing *routingv1.Routing) (auctionv1.AuctionModule, error) {
	return r.registry.Auction(routing.AuctionRef)
}

// allocateQuoteFees accrues the protocol and referrer cuts of one paid quote
// amount at the lot's frozen percentages. An absent referrer's share rolls
// into the protocol share, computed jointly so the floor is taken once. The
// accrued quote stays in router custody until the recipient claims it.
func (r *Router) allocateQuoteFees(ctx context.Context, routing *routingv1.Routing, fee *routingv1.FeeData, referrer bankv1.Address, paid decimal.Decimal) {
	toReferrer := decimal.Zero
	if !referrer.IsZero() {
		toReferrer = feesv1.Portion(paid, fee.ReferrerFee)
	}
	toProtocol := feesv1.Portion(paid, fee.ProtocolFee+fee.ReferrerFee).Sub(toReferrer)

	r.fees.Accrue(ctx, referrer, routing.QuoteAsset, toReferrer)
	r.fees.Accrue(ctx, r.fees.ProtocolRecipient(), routing.QuoteAsset, toProtocol)
}

// debitFunding decrements a lot's escrowed funding before the corresponding
// outbound transfer. Going negative means custody accounting broke.
func debitFunding(routing *routingv1.Routing, amount decimal.Decimal) error {
	next := routing.Funding.Sub(amount)
	if next.IsNegative() {
		return errors.NewErrorDetails(
			fmt.Sprintf("funding %s cannot cover %s", routing.Funding, amount),
			string(errors.InsufficientFunding),
			"amount",
		)
	}
	routing.Funding = next
	return nil
}

// publish emits a lifecycle record. Publishing is best effort: a failure is
// logged and never unwinds the already-committed operation.
func (r *Router) publish(ctx context.Context, eventType eventv1.EventType, lotID uint64, ref auctionv1.Ref, payload any) {
	moduleRef := ""
	if !ref.IsZero() {
		moduleRef = ref.String()
	}
	event, err := eventv1.NewLotEvent(eventType, lotID, moduleRef, payload)
	if err != nil {
		r.logger.ErrorContext(ctx, err, logger.Field{Key: "event_type", Value: string(eventType)})
		return
	}

	if err := r.publisher.Publish(ctx, event); err != nil {
		r.logger.ErrorContext(ctx, err,
			logger.Field{Key: "event_type", Value: string(eventType)},
			logger.Field{Key: "lot_id", Value: lotID},
		)
	}
}

func lotNotFound(lotID uint64) error {
	return errors.NewErrorDetails(
		fmt.Sprintf("lot %d not found", lotID),
		string(errors.LotNotFound),
		"lotID",
	)
}

type routerState struct {
	Routings     map[uint64]*routingv1.Routing `json:"routings"`
	FeeData      map[uint64]*routingv1.FeeData `json:"fee_data"`
	CapacityRefs map[uint64]decimal.Decimal    `json:"capacity_refs"`
	NextLotID    uint64                        `json:"next_lot_id"`
	Version      uint64                        `json:"version"`
}

// Snapshot serializes the routing and fee records.
func (r *Router) Snapshot() ([]byte, error) {
	r.guard.mu.Lock()
	defer r.guard.mu.Unlock()

	return json.Marshal(routerState{
		Routings:     r.routings,
		FeeData:      r.feeData,
		CapacityRefs: r.capacityRefs,
		NextLotID:    r.nextLotID,
		Version:      r.version,
	})
}

// Restore replaces the routing and fee records with a snapshot.
func (r *Router) Restore(data []byte) error {
	var state routerState
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}

	r.guard.mu.Lock()
	defer r.guard.mu.Unlock()

	r.routings = state.Routings
	if r.routings == nil {
		r.routings = make(map[uint64]*routingv1.Routing)
	}
	r.feeData = state.FeeData
	if r.feeData == nil {
		r.feeData = make(map[uint64]*routingv1.FeeData)
	}
	r.capacityRefs = state.CapacityRefs
	if r.capacityRefs == nil {
		r.capacityRefs = make(map[uint64]decimal.Decimal)
	}
	r.nextLotID = state.NextLotID
	if r.nextLotID == 0 {
		r.nextLotID = 1
	}
	r.version = state.Version
	return nil
}
