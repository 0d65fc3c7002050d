package feemanager

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auctionv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/auction/v1"
	feesv1 "github.com/muhammadchandra19/auctionhouse/internal/domain/fees/v1"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
)

var batchRef = auctionv1.Ref{Name: "batch", Version: 1}

func TestManager_SetFee(t *testing.T) {
	ctx := context.Background()
	m := NewManager("admin", "treasury")

	require.NoError(t, m.SetFee(ctx, "admin", batchRef, feesv1.FeeKindProtocol, 100))
	require.NoError(t, m.SetFee(ctx, "admin", batchRef, feesv1.FeeKindReferrer, 105))
	require.NoError(t, m.SetFee(ctx, "admin", batchRef, feesv1.FeeKindMaxCurator, 90))

	fees := m.Fees(ctx, batchRef)
	assert.Equal(t, uint64(100), fees.Protocol)
	assert.Equal(t, uint64(105), fees.Referrer)
	assert.Equal(t, uint64(90), fees.MaxCurator)

	// Types without a policy read as zero.
	assert.Equal(t, feesv1.Fees{}, m.Fees(ctx, auctionv1.Ref{Name: "other", Version: 1}))

	// Non-admin writes are rejected.
	err := m.SetFee(ctx, "mallory", batchRef, feesv1.FeeKindProtocol, 50)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.NotAdmin)))

	// Fees at or above the denominator are rejected.
	err = m.SetFee(ctx, "admin", batchRef, feesv1.FeeKindProtocol, feesv1.Denominator)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidFee)))

	err = m.SetFee(ctx, "admin", batchRef, feesv1.FeeKind("unknown"), 1)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidParams)))
}

func TestManager_CuratorFee(t *testing.T) {
	ctx := context.Background()
	m := NewManager("admin", "treasury")

	require.NoError(t, m.SetFee(ctx, "admin", batchRef, feesv1.FeeKindMaxCurator, 90))

	// No election reads as zero.
	assert.Equal(t, uint64(0), m.CuratorFee(ctx, batchRef, "carol"))

	require.NoError(t, m.SetCuratorFee(ctx, "carol", batchRef, 90))
	assert.Equal(t, uint64(90), m.CuratorFee(ctx, batchRef, "carol"))

	// Elections are scoped per auction type and per curator.
	assert.Equal(t, uint64(0), m.CuratorFee(ctx, auctionv1.Ref{Name: "other", Version: 1}, "carol"))
	assert.Equal(t, uint64(0), m.CuratorFee(ctx, batchRef, "dave"))

	// Elections above the type's cap are rejected.
	err := m.SetCuratorFee(ctx, "carol", batchRef, 91)
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidFee)))

	// Lowering is always allowed.
	require.NoError(t, m.SetCuratorFee(ctx, "carol", batchRef, 10))
	assert.Equal(t, uint64(10), m.CuratorFee(ctx, batchRef, "carol"))
}

func TestManager_Rewards(t *testing.T) {
	ctx := context.Background()
	m := NewManager("admin", "treasury")

	m.Accrue(ctx, "ref1", "USDC", decimal.NewFromInt(2_100))
	m.Accrue(ctx, "ref1", "USDC", decimal.NewFromInt(900))
	m.Accrue(ctx, "treasury", "USDC", decimal.NewFromInt(2_000))

	// Zero recipients and non-positive amounts are dropped.
	m.Accrue(ctx, "", "USDC", decimal.NewFromInt(5))
	m.Accrue(ctx, "ref1", "USDC", decimal.Zero)

	assert.True(t, m.Rewards(ctx, "ref1", "USDC").Equal(decimal.NewFromInt(3_000)))
	assert.True(t, m.Rewards(ctx, "treasury", "USDC").Equal(decimal.NewFromInt(2_000)))
	assert.True(t, m.Rewards(ctx, "ref1", "TOKEN").IsZero())

	claimed, err := m.ClaimRewards(ctx, "ref1", "USDC")
	require.NoError(t, err)
	assert.True(t, claimed.Equal(decimal.NewFromInt(3_000)))
	assert.True(t, m.Rewards(ctx, "ref1", "USDC").IsZero())

	// Claiming again is rejected.
	_, err = m.ClaimRewards(ctx, "ref1", "USDC")
	require.Error(t, err)
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.NothingToClaim)))

	// Other recipients are untouched.
	assert.True(t, m.Rewards(ctx, "treasury", "USDC").Equal(decimal.NewFromInt(2_000)))
}

func TestManager_ProtocolRecipient(t *testing.T) {
	m := NewManager("admin", "treasury")
	assert.Equal(t, "treasury", string(m.ProtocolRecipient()))
}

func TestManager_SnapshotRestore(t *testing.T) {
	ctx := context.Background()
	m := NewManager("admin", "treasury")

	require.NoError(t, m.SetFee(ctx, "admin", batchRef, feesv1.FeeKindProtocol, 100))
	require.NoError(t, m.SetFee(ctx, "admin", batchRef, feesv1.FeeKindMaxCurator, 90))
	require.NoError(t, m.SetCuratorFee(ctx, "carol", batchRef, 75))
	m.Accrue(ctx, "ref1", "USDC", decimal.NewFromInt(1_234))

	data, err := m.Snapshot()
	require.NoError(t, err)

	restored := NewManager("admin", "treasury")
	require.NoError(t, restored.Restore(data))

	fees := restored.Fees(ctx, batchRef)
	assert.Equal(t, uint64(100), fees.Protocol)
	assert.Equal(t, uint64(90), fees.MaxCurator)
	assert.Equal(t, uint64(75), restored.CuratorFee(ctx, batchRef, "carol"))
	assert.True(t, restored.Rewards(ctx, "ref1", "USDC").Equal(decimal.NewFromInt(1_234)))
}
