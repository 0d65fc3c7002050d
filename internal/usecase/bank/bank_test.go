package bank

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bankv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/bank/v1"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
)

func newFundedLedger(t *testing.T) *Ledger {
	t.Helper()
	ctx := context.Background()

	l := NewLedger()
	require.NoError(t, l.RegisterAsset(ctx, "USDC", 6))
	require.NoError(t, l.RegisterAsset(ctx, "TOKEN", 18))
	require.NoError(t, l.Deposit(ctx, "alice", "USDC", decimal.NewFromInt(1_000_000)))
	require.NoError(t, l.Deposit(ctx, "bob", "TOKEN", decimal.New(5, 18)))
	return l
}

func TestLedger_RegisterAsset(t *testing.T) {
	ctx := context.Background()
	l := NewLedger()

	require.NoError(t, l.RegisterAsset(ctx, "USDC", 6))

	// Same id, same decimals is idempotent.
	require.NoError(t, l.RegisterAsset(ctx, "USDC", 6))

	// Same id, different decimals is rejected.
	err := l.RegisterAsset(ctx, "USDC", 18)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidAssetDecimals)))

	// Empty id is rejected.
	err = l.RegisterAsset(ctx, "", 6)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.ZeroAsset)))

	decimals, err := l.AssetDecimals(ctx, "USDC")
	require.NoError(t, err)
	assert.Equal(t, uint8(6), decimals)

	_, err = l.AssetDecimals(ctx, "WETH")
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.UnknownAsset)))
}

func TestLedger_DepositAndBalance(t *testing.T) {
	ctx := context.Background()
	l := newFundedLedger(t)

	balance, err := l.BalanceOf(ctx, "alice", "USDC")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(1_000_000)))

	// Unheld asset reads as zero.
	balance, err = l.BalanceOf(ctx, "alice", "TOKEN")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	// Unknown account reads as zero.
	balance, err = l.BalanceOf(ctx, "nobody", "USDC")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	// Deposit into an unregistered asset fails.
	err = l.Deposit(ctx, "alice", "WETH", decimal.NewFromInt(1))
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.UnknownAsset)))

	// Non-positive deposits fail.
	err = l.Deposit(ctx, "alice", "USDC", decimal.Zero)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.ZeroAmount)))
}

func TestLedger_Transfer(t *testing.T) {
	ctx := context.Background()
	l := newFundedLedger(t)

	require.NoError(t, l.Transfer(ctx, "alice", "bob", "USDC", decimal.NewFromInt(400_000)))

	aliceBalance, err := l.BalanceOf(ctx, "alice", "USDC")
	require.NoError(t, err)
	assert.True(t, aliceBalance.Equal(decimal.NewFromInt(600_000)))

	bobBalance, err := l.BalanceOf(ctx, "bob", "USDC")
	require.NoError(t, err)
	assert.True(t, bobBalance.Equal(decimal.NewFromInt(400_000)))

	// Zero transfers are a no-op.
	require.NoError(t, l.Transfer(ctx, "alice", "bob", "USDC", decimal.Zero))

	// Overdrafts are rejected and leave balances untouched.
	err = l.Transfer(ctx, "alice", "bob", "USDC", decimal.NewFromInt(700_000))
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InsufficientBalance)))

	aliceBalance, err = l.BalanceOf(ctx, "alice", "USDC")
	require.NoError(t, err)
	assert.True(t, aliceBalance.Equal(decimal.NewFromInt(600_000)))

	// Zero endpoints are rejected.
	err = l.Transfer(ctx, bankv1.ZeroAddress, "bob", "USDC", decimal.NewFromInt(1))
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidParams)))
}

func TestLedger_PermitTransfer(t *testing.T) {
	ctx := context.Background()
	l := newFundedLedger(t)

	permit := bankv1.TransferPermit{
		From:     "alice",
		Asset:    "USDC",
		Amount:   decimal.NewFromInt(250_000),
		Deadline: time.Now().Add(time.Hour),
		Nonce:    "nonce-1",
	}

	require.NoError(t, l.PermitTransfer(ctx, permit, "router"))

	routerBalance, err := l.BalanceOf(ctx, "router", "USDC")
	require.NoError(t, err)
	assert.True(t, routerBalance.Equal(decimal.NewFromInt(250_000)))

	// Re-spending the same nonce fails.
	err = l.PermitTransfer(ctx, permit, "router")
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidPermit)))

	// A fresh nonce from the same account works.
	permit.Nonce = "nonce-2"
	require.NoError(t, l.PermitTransfer(ctx, permit, "router"))

	// Expired deadline fails before any balance moves.
	expired := bankv1.TransferPermit{
		From:     "alice",
		Asset:    "USDC",
		Amount:   decimal.NewFromInt(1),
		Deadline: time.Now().Add(-time.Minute),
		Nonce:    "nonce-3",
	}
	err = l.PermitTransfer(ctx, expired, "router")
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidPermit)))

	aliceBalance, err := l.BalanceOf(ctx, "alice", "USDC")
	require.NoError(t, err)
	assert.True(t, aliceBalance.Equal(decimal.NewFromInt(500_000)))
}

func TestLedger_PermitTransfer_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	l := newFundedLedger(t)

	permit := bankv1.TransferPermit{
		From:     "alice",
		Asset:    "USDC",
		Amount:   decimal.NewFromInt(2_000_000),
		Deadline: time.Now().Add(time.Hour),
		Nonce:    "nonce-big",
	}

	err := l.PermitTransfer(ctx, permit, "router")
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InsufficientBalance)))

	// A failed permit does not burn its nonce.
	require.NoError(t, l.Deposit(ctx, "alice", "USDC", decimal.NewFromInt(1_500_000)))
	require.NoError(t, l.PermitTransfer(ctx, permit, "router"))
}

func TestLedger_SnapshotRestore(t *testing.T) {
	ctx := context.Background()
	l := newFundedLedger(t)

	permit := bankv1.TransferPermit{
		From:     "alice",
		Asset:    "USDC",
		Amount:   decimal.NewFromInt(100_000),
		Deadline: time.Now().Add(time.Hour),
		Nonce:    "snap-nonce",
	}
	require.NoError(t, l.PermitTransfer(ctx, permit, "router"))

	data, err := l.Snapshot()
	require.NoError(t, err)

	restored := NewLedger()
	require.NoError(t, restored.Restore(data))

	balance, err := restored.BalanceOf(ctx, "alice", "USDC")
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(900_000)))

	decimals, err := restored.AssetDecimals(ctx, "TOKEN")
	require.NoError(t, err)
	assert.Equal(t, uint8(18), decimals)

	// Spent nonces survive the round trip.
	err = restored.PermitTransfer(ctx, permit, "router")
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidPermit)))
}
