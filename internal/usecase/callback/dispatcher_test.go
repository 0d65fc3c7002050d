package callback

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
	callbackv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/callback/v1"
	callbackmock "github.com/muhammadchandra19/auctionhouse/internal/domain/callback/v1/mock"
	"github.com/muhammadchandra19/auctionhouse/internal/usecase/bank"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
)

const (
	routerAccount   = bankv1.Address("router")
	callbackAccount = bankv1.Address("extension")
)

type testFixture struct {
	ctrl       *gomock.Controller
	ledger     *bank.Ledger
	dispatcher *Dispatcher
	cb         *callbackmock.MockCallback
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ledger := bank.NewLedger()
	ctx := context.Background()
	require.NoError(t, ledger.RegisterAsset(ctx, "TOKEN", 18))
	require.NoError(t, ledger.Deposit(ctx, callbackAccount, "TOKEN", decimal.New(100, 18)))

	cb := callbackmock.NewMockCallback(ctrl)
	cb.EXPECT().Account().Return(callbackAccount).AnyTimes()

	return &testFixture{
		ctrl:       ctrl,
		ledger:     ledger,
		dispatcher: NewDispatcher(ledger, routerAccount),
		cb:         cb,
	}
}

func TestDispatcher_Register(t *testing.T) {
	f := setupTestFixture(t)

	perms := callbackv1.Permissions{OnCreate: true, OnBid: true}
	require.NoError(t, f.dispatcher.Register("ext-1", f.cb, perms))
	assert.True(t, f.dispatcher.IsRegistered("ext-1"))
	assert.False(t, f.dispatcher.IsRegistered("ext-2"))

	got, err := f.dispatcher.Permissions("ext-1")
	require.NoError(t, err)
	assert.Equal(t, perms, got)

	account, err := f.dispatcher.Account("ext-1")
	require.NoError(t, err)
	assert.Equal(t, callbackAccount, account)

	// Duplicate ids are rejected.
	err = f.dispatcher.Register("ext-1", f.cb, perms)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidParams)))

	// Empty id and nil callback are rejected.
	err = f.dispatcher.Register("", f.cb, perms)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidParams)))

	err = f.dispatcher.Register("ext-2", nil, perms)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidParams)))
}

func TestDispatcher_RegisterSendsBaseAssetNeedsFundedHooks(t *testing.T) {
	f := setupTestFixture(t)

	err := f.dispatcher.Register("ext-1", f.cb, callbackv1.Permissions{SendsBaseAsset: true, OnCreate: true})
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidParams)))

	require.NoError(t, f.dispatcher.Register("ext-1", f.cb, callbackv1.Permissions{
		SendsBaseAsset: true,
		OnCreate:       true,
		OnCurate:       true,
	}))
}

func TestDispatcher_EmptyIDResolvesToNoCallback(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()

	perms, err := f.dispatcher.Permissions("")
	require.NoError(t, err)
	assert.Equal(t, callbackv1.Permissions{}, perms)

	// Dispatching to the empty id touches nothing.
	err = f.dispatcher.OnBid(ctx, routerAccount, "", 1, 1, "alice", decimal.New(1, 18), nil)
	require.NoError(t, err)
}

func TestDispatcher_OnlyRouterDispatches(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()

	require.NoError(t, f.dispatcher.Register("ext-1", f.cb, callbackv1.Permissions{OnBid: true}))

	err := f.dispatcher.OnBid(ctx, "mallory", "ext-1", 1, 1, "alice", decimal.New(1, 18), nil)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.NotRouter)))
}

func TestDispatcher_UnsetBitIsSilentNoOp(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()

	require.NoError(t, f.dispatcher.Register("ext-1", f.cb, callbackv1.Permissions{OnCreate: true}))

	// OnBid bit is unset, so the callback is never invoked.
	err := f.dispatcher.OnBid(ctx, routerAccount, "ext-1", 1, 1, "alice", decimal.New(1, 18), nil)
	require.NoError(t, err)
}

func TestDispatcher_UnknownIDFails(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()

	err := f.dispatcher.OnBid(ctx, routerAccount, "ghost", 1, 1, "alice", decimal.New(1, 18), nil)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.UnknownCallback)))

	_, err = f.dispatcher.Permissions("ghost")
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.UnknownCallback)))

	_, err = f.dispatcher.Account("ghost")
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.UnknownCallback)))
}

func TestDispatcher_OnCreateFundingCheck(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	capacity := decimal.New(10, 18)

	require.NoError(t, f.dispatcher.Register("ext-1", f.cb, callbackv1.Permissions{
		SendsBaseAsset: true,
		OnCreate:       true,
		OnCurate:       true,
	}))

	// The callback supplies the capacity, so the check passes.
	f.cb.EXPECT().
		OnCreate(gomock.Any(), uint64(1), bankv1.Address("seller"), "TOKEN", "USDC", capacity, false, gomock.Any()).
		DoAndReturn(func(ctx context.Context, lotID uint64, seller bankv1.Address, baseAsset, quoteAsset string, capacity decimal.Decimal, prefunded bool, data []byte) error {
			return f.ledger.Transfer(ctx, callbackAccount, routerAccount, baseAsset, capacity)
		})

	err := f.dispatcher.OnCreate(ctx, routerAccount, "ext-1", 1, "seller", "TOKEN", "USDC", capacity, false, nil)
	require.NoError(t, err)

	balance, err := f.ledger.BalanceOf(ctx, routerAccount, "TOKEN")
	require.NoError(t, err)
	assert.True(t, balance.Equal(capacity))
}

func TestDispatcher_OnCreateLyingCallback(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	capacity := decimal.New(10, 18)

	require.NoError(t, f.dispatcher.Register("ext-1", f.cb, callbackv1.Permissions{
		SendsBaseAsset: true,
		OnCreate:       true,
		OnCurate:       true,
	}))

	// The callback claims success but moves nothing.
	f.cb.EXPECT().
		OnCreate(gomock.Any(), uint64(1), bankv1.Address("seller"), "TOKEN", "USDC", capacity, false, gomock.Any()).
		Return(nil)

	err := f.dispatcher.OnCreate(ctx, routerAccount, "ext-1", 1, "seller", "TOKEN", "USDC", capacity, false, nil)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.CallbackBalanceMismatch)))
}

func TestDispatcher_OnCuratePull(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	payout := decimal.New(9, 15)

	require.NoError(t, f.dispatcher.Register("ext-1", f.cb, callbackv1.Permissions{
		SendsBaseAsset: true,
		OnCreate:       true,
		OnCurate:       true,
	}))

	f.cb.EXPECT().
		OnCurate(gomock.Any(), uint64(1), payout, false, gomock.Any()).
		DoAndReturn(func(ctx context.Context, lotID uint64, curatorPayout decimal.Decimal, prefunded bool, data []byte) error {
			return f.ledger.Transfer(ctx, callbackAccount, routerAccount, "TOKEN", curatorPayout)
		})

	err := f.dispatcher.OnCurate(ctx, routerAccount, "ext-1", 1, payout, "TOKEN", false, nil)
	require.NoError(t, err)

	// A short payout breaks the delta check.
	f.cb.EXPECT().
		OnCurate(gomock.Any(), uint64(2), payout, false, gomock.Any()).
		DoAndReturn(func(ctx context.Context, lotID uint64, curatorPayout decimal.Decimal, prefunded bool, data []byte) error {
			return f.ledger.Transfer(ctx, callbackAccount, routerAccount, "TOKEN", curatorPayout.Sub(decimal.NewFromInt(1)))
		})

	err = f.dispatcher.OnCurate(ctx, routerAccount, "ext-1", 2, payout, "TOKEN", false, nil)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.CallbackBalanceMismatch)))
}

func TestDispatcher_CallbackErrorsPropagate(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()

	require.NoError(t, f.dispatcher.Register("ext-1", f.cb, callbackv1.Permissions{OnCancel: true}))

	hookErr := errors.NewErrorDetails("extension rejected", string(errors.GeneralInternalServerError), "")
	f.cb.EXPECT().
		OnCancel(gomock.Any(), uint64(7), gomock.Any(), true, gomock.Any()).
		Return(hookErr)

	err := f.dispatcher.OnCancel(ctx, routerAccount, "ext-1", 7, decimal.New(10, 18), true, nil)
	require.Error(t, err)
	assert.Equal(t, hookErr, err)
}
