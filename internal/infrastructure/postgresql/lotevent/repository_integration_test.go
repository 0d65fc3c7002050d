package lotevent

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/muhammadchandra19/auctionhouse/pkg/logger"
	"github.com/muhammadchandra19/auctionhouse/pkg/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	suite.Suite
	helper *postgresql.TestHelper
	repo   LotEventRepository
	ctx    context.Context
}

// SetupSuite runs once before all tests
func (suite *RepositoryTestSuite) SetupSuite() {
	suite.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../../migrations")
	require.NoError(suite.T(), err)

	config := &postgresql.TestContainerConfig{
		Image:            "postgres:15-alpine",
		Database:         "settlement_test_db",
		Username:         "settlement_test_user",
		Password:         "settlement_test_pass",
		MigrationsPath:   migrationsPath,
		MigrationPattern: "*.up.sql", // Only run UP migrations
		StartupTimeout:   3 * time.Minute,
	}

	suite.helper = postgresql.NewTestHelperWithConfig(suite.T(), config)

	logger, err := logger.NewLogger()
	require.NoError(suite.T(), err)
	suite.repo = NewRepository(suite.helper.GetClient(), logger)
}

// SetupTest runs before each test
func (suite *RepositoryTestSuite) SetupTest() {
	suite.helper.CleanupTables()
}

func (suite *RepositoryTestSuite) TestStoreAndGetByID() {
	event := &LotEvent{
		ID:         "01J8ZAC4VXT9BQ6TPNPWV3DHEK",
		LotID:      1,
		EventType:  "lot.created",
		ModuleRef:  "batch-fixed-price.v1",
		Payload:    []byte(`{"seller": "seller-1", "base_asset": "WETH"}`),
		OccurredAt: time.Now().UTC(),
	}

	err := suite.repo.Store(suite.ctx, event)
	require.NoError(suite.T(), err)

	stored, err := suite.repo.GetByID(suite.ctx, event.ID)
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), stored)

	assert.Equal(suite.T(), event.ID, stored.ID)
	assert.Equal(suite.T(), event.LotID, stored.LotID)
	assert.Equal(suite.T(), event.EventType, stored.EventType)
	assert.Equal(suite.T(), event.ModuleRef, stored.ModuleRef)
	assert.JSONEq(suite.T(), string(event.Payload), string(stored.Payload))
	assert.WithinDuration(suite.T(), event.OccurredAt, stored.OccurredAt, time.Second)
}

func (suite *RepositoryTestSuite) TestGetByIDNotFound() {
	stored, err := suite.repo.GetByID(suite.ctx, "01J8ZAC4VXT9BQ6TPNPWV3XXXX")
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), stored)
}

func (suite *RepositoryTestSuite) TestStoreBatch() {
	events := []*LotEvent{
		{
			ID:         "01J8ZAC4VXT9BQ6TPNPWV3DH01",
			LotID:      1,
			EventType:  "bid.placed",
			ModuleRef:  "batch-fixed-price.v1",
			Payload:    []byte(`{"bid_id": 1, "bidder": "alice"}`),
			OccurredAt: time.Now().UTC(),
		},
		{
			ID:         "01J8ZAC4VXT9BQ6TPNPWV3DH02",
			LotID:      1,
			EventType:  "bid.placed",
			ModuleRef:  "batch-fixed-price.v1",
			Payload:    []byte(`{"bid_id": 2, "bidder": "bob"}`),
			OccurredAt: time.Now().UTC(),
		},
		{
			ID:         "01J8ZAC4VXT9BQ6TPNPWV3DH03",
			LotID:      2,
			EventType:  "lot.created",
			ModuleRef:  "batch-fixed-price.v1",
			Payload:    []byte(`{"seller": "seller-2"}`),
			OccurredAt: time.Now().UTC(),
		},
	}

	err := suite.repo.StoreBatch(suite.ctx, events)
	require.NoError(suite.T(), err)

	listed, err := suite.repo.List(suite.ctx, Filter{LotID: 1})
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), listed, 2)
}

func (suite *RepositoryTestSuite) TestListFilters() {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	events := []*LotEvent{
		{
			ID:         "01J8ZAC4VXT9BQ6TPNPWV3DH11",
			LotID:      1,
			EventType:  "lot.created",
			ModuleRef:  "batch-fixed-price.v1",
			Payload:    []byte(`{}`),
			OccurredAt: base,
		},
		{
			ID:         "01J8ZAC4VXT9BQ6TPNPWV3DH12",
			LotID:      1,
			EventType:  "bid.placed",
			ModuleRef:  "batch-fixed-price.v1",
			Payload:    []byte(`{"bid_id": 1}`),
			OccurredAt: base.Add(time.Minute),
		},
		{
			ID:         "01J8ZAC4VXT9BQ6TPNPWV3DH13",
			LotID:      1,
			EventType:  "lot.settled",
			ModuleRef:  "batch-fixed-price.v1",
			Payload:    []byte(`{"finished": true}`),
			OccurredAt: base.Add(2 * time.Hour),
		},
		{
			ID:         "01J8ZAC4VXT9BQ6TPNPWV3DH14",
			LotID:      2,
			EventType:  "lot.created",
			ModuleRef:  "linear-vesting.v1",
			Payload:    []byte(`{}`),
			OccurredAt: base.Add(3 * time.Hour),
		},
	}
	require.NoError(suite.T(), suite.repo.StoreBatch(suite.ctx, events))

	// By event type
	listed, err := suite.repo.List(suite.ctx, Filter{EventType: "bid.placed"})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), listed, 1)
	assert.Equal(suite.T(), "01J8ZAC4VXT9BQ6TPNPWV3DH12", listed[0].ID)

	// By module ref
	listed, err = suite.repo.List(suite.ctx, Filter{ModuleRef: "linear-vesting.v1"})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), listed, 1)
	assert.Equal(suite.T(), int64(2), listed[0].LotID)

	// Time window keeps the middle records only
	from := base.Add(30 * time.Second)
	to := base.Add(150 * time.Minute)
	listed, err = suite.repo.List(suite.ctx, Filter{From: &from, To: &to})
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), listed, 2)

	// Default ordering is newest first
	listed, err = suite.repo.List(suite.ctx, Filter{LotID: 1})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), listed, 3)
	assert.Equal(suite.T(), "lot.settled", listed[0].EventType)

	// Ascending with limit and offset
	listed, err = suite.repo.List(suite.ctx, Filter{LotID: 1, SortDirection: "ASC", Limit: 2, Offset: 1})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), listed, 2)
	assert.Equal(suite.T(), "bid.placed", listed[0].EventType)
	assert.Equal(suite.T(), "lot.settled", listed[1].EventType)
}

func (suite *RepositoryTestSuite) TestStoreDuplicateID() {
	event := &LotEvent{
		ID:         "01J8ZAC4VXT9BQ6TPNPWV3DH21",
		LotID:      1,
		EventType:  "lot.created",
		ModuleRef:  "batch-fixed-price.v1",
		Payload:    []byte(`{}`),
		OccurredAt: time.Now().UTC(),
	}

	require.NoError(suite.T(), suite.repo.Store(suite.ctx, event))
	assert.Error(suite.T(), suite.repo.Store(suite.ctx, event))
}

// Test error handling
func (suite *RepositoryTestSuite) TestErrorHandling() {
	cancelledCtx, cancel := context.WithCancel(suite.ctx)
	cancel() // Cancel immediately

	event := &LotEvent{
		ID:         "01J8ZAC4VXT9BQ6TPNPWV3DH31",
		LotID:      1,
		EventType:  "lot.created",
		ModuleRef:  "batch-fixed-price.v1",
		Payload:    []byte(`{}`),
		OccurredAt: time.Now(),
	}

	err := suite.repo.Store(cancelledCtx, event)
	assert.Error(suite.T(), err)
}

// Run the test suite
func TestRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
