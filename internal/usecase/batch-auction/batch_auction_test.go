package batchauction

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auctionv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/auction/v1"
	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
)

const testSettlePeriod = 6 * time.Hour

type testClock struct {
	current time.Time
}

func (c *testClock) now() time.Time {
	return c.current
}

func (c *testClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestModule(t *testing.T) (*Module, *testClock) {
	t.Helper()
	clock := &testClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return NewModule(testSettlePeriod, WithClock(clock.now)), clock
}

func auctionData(t *testing.T, price decimal.Decimal, minFill uint64) []byte {
	t.Helper()
	data, err := json.Marshal(Params{Price: price, MinFillPercent: minFill})
	require.NoError(t, err)
	return data
}

func createTestLot(t *testing.T, m *Module, clock *testClock, lotID uint64, capacity, price decimal.Decimal, minFill uint64) {
	t.Helper()
	err := m.CreateLot(context.Background(), lotID, auctionv1.AuctionParams{
		Start:       clock.current,
		Conclusion:  clock.current.Add(time.Hour),
		Capacity:    capacity,
		AuctionData: auctionData(t, price, minFill),
	}, 18, 18)
	require.NoError(t, err)
}

func TestModule_Identity(t *testing.T) {
	m, _ := newTestModule(t)
	assert.Equal(t, "batch-fixed-price.v1", m.Ref().String())
	assert.Equal(t, auctionv1.KindAuction, m.Kind())
}

func TestModule_CreateLotValidation(t *testing.T) {
	m, clock := newTestModule(t)
	ctx := context.Background()
	price := decimal.New(1, 18)

	base := auctionv1.AuctionParams{
		Start:       clock.current,
		Conclusion:  clock.current.Add(time.Hour),
		Capacity:    decimal.New(10, 18),
		AuctionData: auctionData(t, price, 0),
	}

	// Capacity in quote is rejected for prefunded batch lots.
	params := base
	params.CapacityInQuote = true
	err := m.CreateLot(ctx, 1, params, 18, 18)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.CapacityInQuote)))

	// Non-positive capacity.
	params = base
	params.Capacity = decimal.Zero
	err = m.CreateLot(ctx, 1, params, 18, 18)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidParams)))

	// Conclusion not after start.
	params = base
	params.Conclusion = params.Start
	err = m.CreateLot(ctx, 1, params, 18, 18)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidParams)))

	// Missing and malformed auction data.
	params = base
	params.AuctionData = nil
	err = m.CreateLot(ctx, 1, params, 18, 18)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidParams)))

	params = base
	params.AuctionData = auctionData(t, decimal.Zero, 0)
	err = m.CreateLot(ctx, 1, params, 18, 18)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidParams)))

	// Valid creation, then duplicate id.
	require.NoError(t, m.CreateLot(ctx, 1, base, 18, 18))
	err = m.CreateLot(ctx, 1, base, 18, 18)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidParams)))

	lot, err := m.Lot(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, auctionv1.LotStatusCreated, lot.Status)
	assert.True(t, lot.Capacity.Equal(decimal.New(10, 18)))
}

func TestModule_Liveness(t *testing.T) {
	m, clock := newTestModule(t)
	ctx := context.Background()

	// Lot starting in 30 minutes.
	err := m.CreateLot(ctx, 1, auctionv1.AuctionParams{
		Start:       clock.current.Add(30 * time.Minute),
		Conclusion:  clock.current.Add(time.Hour),
		Capacity:    decimal.New(10, 18),
		AuctionData: auctionData(t, decimal.New(1, 18), 0),
	}, 18, 18)
	require.NoError(t, err)

	assert.False(t, m.IsLive(ctx, 1))

	clock.advance(30 * time.Minute)
	assert.True(t, m.IsLive(ctx, 1))

	clock.advance(time.Hour)
	assert.False(t, m.IsLive(ctx, 1))

	assert.False(t, m.IsLive(ctx, 404))
}

func TestModule_RecordBid(t *testing.T) {
	m, clock := newTestModule(t)
	ctx := context.Background()
	createTestLot(t, m, clock, 1, decimal.New(10, 18), decimal.New(2, 18), 0)

	bidID, err := m.RecordBid(ctx, 1, "alice", "ref1", decimal.New(4, 18), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), bidID)

	bidID, err = m.RecordBid(ctx, 1, "bob", "", decimal.New(2, 18), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), bidID)

	// Amount too small to buy a single base unit at the price.
	_, err = m.RecordBid(ctx, 1, "carol", "", decimal.NewFromInt(1), nil, nil)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidParams)))

	// Zero bidder is the router's job to resolve, never the module's.
	_, err = m.RecordBid(ctx, 1, "", "", decimal.New(1, 18), nil, nil)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidParams)))

	// Bids close at conclusion.
	clock.advance(2 * time.Hour)
	_, err = m.RecordBid(ctx, 1, "carol", "", decimal.New(1, 18), nil, nil)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.LotNotLive)))
}

func TestModule_RefundBid(t *testing.T) {
	m, clock := newTestModule(t)
	ctx := context.Background()
	createTestLot(t, m, clock, 1, decimal.New(10, 18), decimal.New(1, 18), 0)

	bidID, err := m.RecordBid(ctx, 1, "alice", "", decimal.New(3, 18), nil, nil)
	require.NoError(t, err)

	// Only the original bidder.
	_, err = m.RefundBid(ctx, 1, bidID, "bob")
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.NotBidder)))

	refund, err := m.RefundBid(ctx, 1, bidID, "alice")
	require.NoError(t, err)
	assert.True(t, refund.Equal(decimal.New(3, 18)))

	// A refunded bid cannot refund again.
	_, err = m.RefundBid(ctx, 1, bidID, "alice")
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.BidAlreadyClaimed)))

	_, err = m.RefundBid(ctx, 1, 404, "alice")
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.BidNotFound)))

	// Refunds close at conclusion.
	bidID2, err := m.RecordBid(ctx, 1, "bob", "", decimal.New(1, 18), nil, nil)
	require.NoError(t, err)
	clock.advance(2 * time.Hour)
	_, err = m.RefundBid(ctx, 1, bidID2, "bob")
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.LotNotLive)))
}

func TestModule_CancelLot(t *testing.T) {
	m, clock := newTestModule(t)
	ctx := context.Background()
	createTestLot(t, m, clock, 1, decimal.New(10, 18), decimal.New(1, 18), 0)
	createTestLot(t, m, clock, 2, decimal.New(10, 18), decimal.New(1, 18), 0)

	require.NoError(t, m.CancelLot(ctx, 1))

	lot, err := m.Lot(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, auctionv1.LotStatusCancelled, lot.Status)

	// A cancelled lot rejects bids and a second cancel.
	_, err = m.RecordBid(ctx, 1, "alice", "", decimal.New(1, 18), nil, nil)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.LotNotLive)))
	err = m.CancelLot(ctx, 1)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.LotNotActive)))

	// A lot with a recorded bid cannot cancel.
	_, err = m.RecordBid(ctx, 2, "alice", "", decimal.New(1, 18), nil, nil)
	require.NoError(t, err)
	err = m.CancelLot(ctx, 2)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.LotNotActive)))
}

func TestModule_SettleFullFill(t *testing.T) {
	m, clock := newTestModule(t)
	ctx := context.Background()
	createTestLot(t, m, clock, 1, decimal.New(10, 18), decimal.New(1, 18), 0)

	_, err := m.RecordBid(ctx, 1, "alice", "ref1", decimal.New(1, 18), nil, nil)
	require.NoError(t, err)
	_, err = m.RecordBid(ctx, 1, "bob", "ref1", decimal.New(1, 18), nil, nil)
	require.NoError(t, err)

	// Settling before conclusion fails.
	_, err = m.Settle(ctx, 1, 0)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.LotNotConcluded)))

	clock.advance(2 * time.Hour)
	settlement, err := m.Settle(ctx, 1, 0)
	require.NoError(t, err)
	assert.True(t, settlement.Finished)
	assert.True(t, settlement.TotalIn.Equal(decimal.New(2, 18)))
	assert.True(t, settlement.TotalOut.Equal(decimal.New(2, 18)))
	assert.Nil(t, settlement.PartialFill)

	lot, err := m.Lot(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, auctionv1.LotStatusSettled, lot.Status)
	assert.True(t, lot.Sold.Equal(decimal.New(2, 18)))
	assert.True(t, lot.Purchased.Equal(decimal.New(2, 18)))
	assert.True(t, lot.Capacity.Equal(decimal.New(8, 18)))

	// Settling again is rejected.
	_, err = m.Settle(ctx, 1, 0)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.LotAlreadySettled)))
}

func TestModule_SettlePartialFill(t *testing.T) {
	m, clock := newTestModule(t)
	ctx := context.Background()

	// Price 2e18: one whole base token costs two whole quote tokens.
	createTestLot(t, m, clock, 1, decimal.New(10, 18), decimal.New(2, 18), 0)

	_, err := m.RecordBid(ctx, 1, "alice", "", decimal.New(12, 18), nil, nil)
	require.NoError(t, err)
	crossingID, err := m.RecordBid(ctx, 1, "bob", "ref1", decimal.New(10, 18), nil, nil)
	require.NoError(t, err)
	_, err = m.RecordBid(ctx, 1, "carol", "", decimal.New(2, 18), nil, nil)
	require.NoError(t, err)

	clock.advance(2 * time.Hour)
	settlement, err := m.Settle(ctx, 1, 0)
	require.NoError(t, err)
	require.True(t, settlement.Finished)

	// Alice fills 6e18 base for 12e18 quote, bob crosses: 4e18 base for
	// 8e18 quote with 2e18 refunded, carol loses.
	require.NotNil(t, settlement.PartialFill)
	assert.Equal(t, crossingID, settlement.PartialFill.BidID)
	assert.Equal(t, "bob", string(settlement.PartialFill.Bidder))
	assert.True(t, settlement.PartialFill.Payout.Equal(decimal.New(4, 18)))
	assert.True(t, settlement.PartialFill.Refund.Equal(decimal.New(2, 18)))
	assert.True(t, settlement.TotalIn.Equal(decimal.New(20, 18)))
	assert.True(t, settlement.TotalOut.Equal(decimal.New(10, 18)))

	// Inverted-price identity: pfPaid × totalOut == pfPayout × totalIn.
	pfPaid := decimal.New(10, 18).Sub(settlement.PartialFill.Refund)
	left := pfPaid.Mul(settlement.TotalOut)
	right := settlement.PartialFill.Payout.Mul(settlement.TotalIn)
	assert.True(t, left.Equal(right))

	// The crossing bid is claimed inline, the rest stay claimable.
	_, err = m.ClaimBids(ctx, 1, []uint64{crossingID})
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.BidAlreadyClaimed)))

	claims, err := m.ClaimBids(ctx, 1, []uint64{1, 3})
	require.NoError(t, err)
	require.Len(t, claims, 2)
	assert.True(t, claims[0].Payout.Equal(decimal.New(6, 18)))
	assert.True(t, claims[0].Paid.Equal(decimal.New(12, 18)))
	assert.True(t, claims[0].Refund.IsZero())
	assert.True(t, claims[1].Payout.IsZero())
	assert.True(t, claims[1].Refund.Equal(decimal.New(2, 18)))
	assert.True(t, claims[1].Paid.IsZero())
}

func TestModule_SettleResumable(t *testing.T) {
	m, clock := newTestModule(t)
	ctx := context.Background()
	createTestLot(t, m, clock, 1, decimal.New(10, 18), decimal.New(1, 18), 0)

	for _, bidder := range []string{"alice", "bob", "carol"} {
		_, err := m.RecordBid(ctx, 1, bankv1.Address(bidder), "", decimal.New(1, 18), nil, nil)
		require.NoError(t, err)
	}

	clock.advance(2 * time.Hour)

	settlement, err := m.Settle(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, settlement.Finished)

	// Unfinished settlement leaves the lot unsettled and claims closed.
	lot, err := m.Lot(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, auctionv1.LotStatusCreated, lot.Status)
	_, err = m.ClaimBids(ctx, 1, []uint64{1})
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.LotNotSettled)))

	settlement, err = m.Settle(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, settlement.Finished)
	assert.True(t, settlement.TotalIn.Equal(decimal.New(3, 18)))
	assert.True(t, settlement.TotalOut.Equal(decimal.New(3, 18)))
}

func TestModule_SettleMinFillVoidsSale(t *testing.T) {
	m, clock := newTestModule(t)
	ctx := context.Background()

	// Half the capacity has to sell.
	createTestLot(t, m, clock, 1, decimal.New(10, 18), decimal.New(1, 18), 50_000)

	bidID, err := m.RecordBid(ctx, 1, "alice", "ref1", decimal.New(2, 18), nil, nil)
	require.NoError(t, err)

	clock.advance(2 * time.Hour)
	settlement, err := m.Settle(ctx, 1, 0)
	require.NoError(t, err)
	assert.True(t, settlement.Finished)
	assert.True(t, settlement.TotalIn.IsZero())
	assert.True(t, settlement.TotalOut.IsZero())
	assert.Nil(t, settlement.PartialFill)

	// The sale is void: every bid claims a full refund, nothing sold.
	lot, err := m.Lot(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, auctionv1.LotStatusSettled, lot.Status)
	assert.True(t, lot.Sold.IsZero())
	assert.True(t, lot.Capacity.Equal(decimal.New(10, 18)))

	claims, err := m.ClaimBids(ctx, 1, []uint64{bidID})
	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.True(t, claims[0].Payout.IsZero())
	assert.True(t, claims[0].Refund.Equal(decimal.New(2, 18)))
}

func TestModule_SettleWindowAndAbort(t *testing.T) {
	m, clock := newTestModule(t)
	ctx := context.Background()
	createTestLot(t, m, clock, 1, decimal.New(10, 18), decimal.New(1, 18), 0)

	bidID, err := m.RecordBid(ctx, 1, "alice", "", decimal.New(2, 18), nil, nil)
	require.NoError(t, err)

	clock.advance(2 * time.Hour)

	// The window is open: abort is premature.
	err = m.Abort(ctx, 1)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.SettlementWindowOpen)))

	// Window expires; settle is no longer possible, abort is.
	clock.advance(testSettlePeriod)
	_, err = m.Settle(ctx, 1, 0)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.SettlementWindowExpired)))

	require.NoError(t, m.Abort(ctx, 1))

	lot, err := m.Lot(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, auctionv1.LotStatusAborted, lot.Status)

	// Aborted bids claim full refunds.
	claims, err := m.ClaimBids(ctx, 1, []uint64{bidID})
	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.True(t, claims[0].Payout.IsZero())
	assert.True(t, claims[0].Refund.Equal(decimal.New(2, 18)))

	// A second abort is rejected.
	err = m.Abort(ctx, 1)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.LotNotActive)))
}

func TestModule_AbortDiscardsPartialSettlement(t *testing.T) {
	m, clock := newTestModule(t)
	ctx := context.Background()
	createTestLot(t, m, clock, 1, decimal.New(10, 18), decimal.New(1, 18), 0)

	_, err := m.RecordBid(ctx, 1, "alice", "", decimal.New(1, 18), nil, nil)
	require.NoError(t, err)
	_, err = m.RecordBid(ctx, 1, "bob", "", decimal.New(1, 18), nil, nil)
	require.NoError(t, err)

	clock.advance(2 * time.Hour)

	// First batch assigns alice a payout but does not finish.
	settlement, err := m.Settle(ctx, 1, 1)
	require.NoError(t, err)
	assert.False(t, settlement.Finished)

	clock.advance(testSettlePeriod)
	require.NoError(t, m.Abort(ctx, 1))

	// The in-progress assignment is discarded: alice refunds in full.
	claims, err := m.ClaimBids(ctx, 1, []uint64{1, 2})
	require.NoError(t, err)
	require.Len(t, claims, 2)
	for _, claim := range claims {
		assert.True(t, claim.Payout.IsZero())
		assert.True(t, claim.Refund.Equal(decimal.New(1, 18)))
	}

	lot, err := m.Lot(ctx, 1)
	require.NoError(t, err)
	assert.True(t, lot.PayoutSent.IsZero())
	assert.True(t, lot.Sold.IsZero())
}

func TestModule_ClaimBidsAllOrNothing(t *testing.T) {
	m, clock := newTestModule(t)
	ctx := context.Background()
	createTestLot(t, m, clock, 1, decimal.New(10, 18), decimal.New(1, 18), 0)

	_, err := m.RecordBid(ctx, 1, "alice", "", decimal.New(1, 18), nil, nil)
	require.NoError(t, err)

	clock.advance(2 * time.Hour)
	_, err = m.Settle(ctx, 1, 0)
	require.NoError(t, err)

	// A list naming an unknown bid claims nothing at all.
	_, err = m.ClaimBids(ctx, 1, []uint64{1, 404})
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.BidNotFound)))

	claims, err := m.ClaimBids(ctx, 1, []uint64{1})
	require.NoError(t, err)
	assert.True(t, claims[0].Payout.Equal(decimal.New(1, 18)))

	lot, err := m.Lot(ctx, 1)
	require.NoError(t, err)
	assert.True(t, lot.PayoutSent.Equal(decimal.New(1, 18)))
}

func TestModule_ReopenBids(t *testing.T) {
	m, clock := newTestModule(t)
	ctx := context.Background()
	createTestLot(t, m, clock, 1, decimal.New(10, 18), decimal.New(1, 18), 0)

	_, err := m.RecordBid(ctx, 1, "alice", "", decimal.New(1, 18), nil, nil)
	require.NoError(t, err)
	_, err = m.RecordBid(ctx, 1, "bob", "", decimal.New(1, 18), nil, nil)
	require.NoError(t, err)

	clock.advance(2 * time.Hour)
	_, err = m.Settle(ctx, 1, 0)
	require.NoError(t, err)

	_, err = m.ClaimBids(ctx, 1, []uint64{1, 2})
	require.NoError(t, err)
	lot, err := m.Lot(ctx, 1)
	require.NoError(t, err)
	assert.True(t, lot.PayoutSent.Equal(decimal.New(2, 18)))

	// Reopened claims hand back their payout marks and claim again in full.
	require.NoError(t, m.ReopenBids(ctx, 1, []uint64{1, 2}))
	lot, err = m.Lot(ctx, 1)
	require.NoError(t, err)
	assert.True(t, lot.PayoutSent.IsZero())

	claims, err := m.ClaimBids(ctx, 1, []uint64{1, 2})
	require.NoError(t, err)
	require.Len(t, claims, 2)
	assert.True(t, claims[0].Payout.Equal(decimal.New(1, 18)))
	assert.True(t, claims[1].Payout.Equal(decimal.New(1, 18)))

	// An unknown bid fails the reopen outright.
	err = m.ReopenBids(ctx, 1, []uint64{1, 404})
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.BidNotFound)))
}

func TestModule_ReopenBidsRestoresWithdrawal(t *testing.T) {
	m, clock := newTestModule(t)
	ctx := context.Background()
	createTestLot(t, m, clock, 1, decimal.New(10, 18), decimal.New(1, 18), 0)

	bidID, err := m.RecordBid(ctx, 1, "alice", "", decimal.New(3, 18), nil, nil)
	require.NoError(t, err)
	_, err = m.RefundBid(ctx, 1, bidID, "alice")
	require.NoError(t, err)

	// Reopened, the withdrawal runs again for the full amount.
	require.NoError(t, m.ReopenBids(ctx, 1, []uint64{bidID}))
	refund, err := m.RefundBid(ctx, 1, bidID, "alice")
	require.NoError(t, err)
	assert.True(t, refund.Equal(decimal.New(3, 18)))
}

func TestModule_ClaimProceedsWriteOnce(t *testing.T) {
	m, clock := newTestModule(t)
	ctx := context.Background()
	createTestLot(t, m, clock, 1, decimal.New(10, 18), decimal.New(1, 18), 0)

	_, err := m.RecordBid(ctx, 1, "alice", "", decimal.New(2, 18), nil, nil)
	require.NoError(t, err)

	// Proceeds require settlement first.
	_, _, _, err = m.ClaimProceeds(ctx, 1)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.LotNotSettled)))

	clock.advance(2 * time.Hour)
	_, err = m.Settle(ctx, 1, 0)
	require.NoError(t, err)

	purchased, sold, payoutSent, err := m.ClaimProceeds(ctx, 1)
	require.NoError(t, err)
	assert.True(t, purchased.Equal(decimal.New(2, 18)))
	assert.True(t, sold.Equal(decimal.New(2, 18)))
	assert.True(t, payoutSent.IsZero())

	_, _, _, err = m.ClaimProceeds(ctx, 1)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.ProceedsAlreadyClaimed)))
}

func TestModule_SnapshotRestore(t *testing.T) {
	m, clock := newTestModule(t)
	ctx := context.Background()
	createTestLot(t, m, clock, 1, decimal.New(10, 18), decimal.New(2, 18), 0)

	_, err := m.RecordBid(ctx, 1, "alice", "ref1", decimal.New(4, 18), nil, nil)
	require.NoError(t, err)

	data, err := m.Snapshot()
	require.NoError(t, err)

	restored := NewModule(testSettlePeriod, WithClock(clock.now))
	require.NoError(t, restored.Restore(data))

	// The restored module continues the lifecycle where the snapshot left it.
	clock.advance(2 * time.Hour)
	settlement, err := restored.Settle(ctx, 1, 0)
	require.NoError(t, err)
	assert.True(t, settlement.Finished)
	assert.True(t, settlement.TotalIn.Equal(decimal.New(4, 18)))
	assert.True(t, settlement.TotalOut.Equal(decimal.New(2, 18)))

	claims, err := restored.ClaimBids(ctx, 1, []uint64{1})
	require.NoError(t, err)
	assert.True(t, claims[0].Payout.Equal(decimal.New(2, 18)))
}
