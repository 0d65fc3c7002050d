package lotevent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/muhammadchandra19/auctionhouse/pkg/logger"
	mockLogger "github.com/muhammadchandra19/auctionhouse/pkg/logger/mock"
	mockPg "github.com/muhammadchandra19/auctionhouse/pkg/postgresql/mock"
	"github.com/stretchr/testify/assert"
)

func TestLotEvent_Store(t *testing.T) {
	ctx := context.Background()
	query := `INSERT INTO lot_events (id, lot_id, event_type, module_ref, payload, occurred_at) VALUES ($1, $2, $3, $4, $5, $6)`
	now := time.Now()
	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, tc *LotEvent)
		testData *LotEvent
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, tc *LotEvent) {
				mockpg.EXPECT().
					Exec(ctx, query,
						tc.ID,
						tc.LotID,
						tc.EventType,
						tc.ModuleRef,
						tc.Payload,
						tc.OccurredAt,
					).Return(pgconn.CommandTag{}, nil)

				mockLogger.EXPECT().
					Info("Inserted lot event", logger.Field{
						Key:   "commandTag",
						Value: "",
					})
			},
			testData: &LotEvent{
				ID:         "01J8ZAC4VXT9BQ6TPNPWV3DHEK",
				LotID:      1,
				EventType:  "lot.created",
				ModuleRef:  "batch-fixed-price.v1",
				Payload:    []byte(`{"seller":"seller-1"}`),
				OccurredAt: now,
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, tc *LotEvent) {
				mockpg.EXPECT().
					Exec(ctx, query,
						tc.ID,
						tc.LotID,
						tc.EventType,
						tc.ModuleRef,
						tc.Payload,
						tc.OccurredAt,
					).Return(pgconn.CommandTag{}, errors.New("error"))

				mockLogger.EXPECT().
					Error(errors.New("error"), logger.Field{
						Key:   "error",
						Value: "error",
					})
			},
			testData: &LotEvent{
				ID:         "01J8ZAC4VXT9BQ6TPNPWV3DHEK",
				LotID:      1,
				EventType:  "lot.created",
				ModuleRef:  "batch-fixed-price.v1",
				Payload:    []byte(`{"seller":"seller-1"}`),
				OccurredAt: now,
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			log := mockLogger.NewMockInterface(ctrl)

			repo := NewRepository(pg, log)

			tc.mockFn(pg, log, tc.testData)

			err := repo.Store(ctx, tc.testData)
			tc.assertFn(t, err)
		})
	}
}

func TestLotEvent_StoreBatch(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, tc []*LotEvent)
		testData []*LotEvent
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, tc []*LotEvent) {
				mockpg.EXPECT().
					CopyFrom(ctx, pgx.Identifier{"lot_events"}, []string{
						"id",
						"lot_id",
						"event_type",
						"module_ref",
						"payload",
						"occurred_at",
					}, gomock.Any()).
					Return(int64(len(tc)), nil)

				mockLogger.EXPECT().
					Info("Inserted batch of lot events", logger.Field{
						Key:   "copyCount",
						Value: int64(len(tc)),
					})
			},
			testData: []*LotEvent{
				{
					ID:         "01J8ZAC4VXT9BQ6TPNPWV3DHEK",
					LotID:      1,
					EventType:  "bid.placed",
					ModuleRef:  "batch-fixed-price.v1",
					Payload:    []byte(`{"bid_id":1,"bidder":"alice"}`),
					OccurredAt: now,
				},
				{
					ID:         "01J8ZAC5JB0F3YV9H2M8RWT6QD",
					LotID:      1,
					EventType:  "bid.placed",
					ModuleRef:  "batch-fixed-price.v1",
					Payload:    []byte(`{"bid_id":2,"bidder":"bob"}`),
					OccurredAt: now,
				},
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, tc []*LotEvent) {
				mockpg.EXPECT().
					CopyFrom(ctx, pgx.Identifier{"lot_events"}, gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("error"))

				mockLogger.EXPECT().
					Error(errors.New("error"), logger.Field{
						Key:   "error",
						Value: "error",
					})
			},
			testData: []*LotEvent{
				{
					ID:         "01J8ZAC4VXT9BQ6TPNPWV3DHEK",
					LotID:      1,
					EventType:  "bid.placed",
					ModuleRef:  "batch-fixed-price.v1",
					Payload:    []byte(`{"bid_id":1,"bidder":"alice"}`),
					OccurredAt: now,
				},
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			log := mockLogger.NewMockInterface(ctrl)

			repo := NewRepository(pg, log)

			tc.mockFn(pg, log, tc.testData)

			err := repo.StoreBatch(ctx, tc.testData)
			tc.assertFn(t, err)
		})
	}
}

func TestLotEvent_GetByID(t *testing.T) {
	ctx := context.Background()
	query := `SELECT id, lot_id, event_type, module_ref, payload, occurred_at FROM lot_events WHERE id = $1`
	now := time.Now()
	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, mockRow *mockPg.MockRowInterface, tc *LotEvent)
		testData *LotEvent
		assertFn func(t *testing.T, err error, tc *LotEvent, event *LotEvent)
	}{
		{
			name: "success",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, mockRow *mockPg.MockRowInterface, tc *LotEvent) {
				mockpg.EXPECT().
					QueryRow(ctx, query, tc.ID).
					Return(mockRow)

				mockRow.EXPECT().
					Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					*dest[0].(*string) = tc.ID
					*dest[1].(*int64) = tc.LotID
					*dest[2].(*string) = tc.EventType
					*dest[3].(*string) = tc.ModuleRef
					*dest[4].(*[]byte) = tc.Payload
					*dest[5].(*time.Time) = tc.OccurredAt
					return nil
				})
			},
			testData: &LotEvent{
				ID:         "01J8ZAC4VXT9BQ6TPNPWV3DHEK",
				LotID:      7,
				EventType:  "lot.settled",
				ModuleRef:  "batch-fixed-price.v1",
				Payload:    []byte(`{"finished":true}`),
				OccurredAt: now,
			},
			assertFn: func(t *testing.T, err error, tc *LotEvent, event *LotEvent) {
				assert.NoError(t, err)
				assert.Equal(t, tc, event)
			},
		},
		{
			name: "error: no rows",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, mockRow *mockPg.MockRowInterface, tc *LotEvent) {
				mockpg.EXPECT().
					QueryRow(ctx, query, tc.ID).
					Return(mockRow)

				mockRow.EXPECT().
					Scan(gomock.Any()).Return(pgx.ErrNoRows)
			},
			testData: &LotEvent{
				ID: "01J8ZAC4VXT9BQ6TPNPWV3DHEK",
			},
			assertFn: func(t *testing.T, err error, tc *LotEvent, event *LotEvent) {
				assert.NoError(t, err)
				assert.Nil(t, event)
			},
		},
		{
			name: "error: query fails",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, mockRow *mockPg.MockRowInterface, tc *LotEvent) {
				mockpg.EXPECT().
					QueryRow(ctx, query, tc.ID).
					Return(mockRow)

				mockRow.EXPECT().
					Scan(gomock.Any()).Return(errors.New("error"))
			},
			testData: &LotEvent{
				ID: "01J8ZAC4VXT9BQ6TPNPWV3DHEK",
			},
			assertFn: func(t *testing.T, err error, tc *LotEvent, event *LotEvent) {
				assert.Error(t, err)
				assert.Nil(t, event)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			row := mockPg.NewMockRowInterface(ctrl)
			log := mockLogger.NewMockInterface(ctrl)

			repo := NewRepository(pg, log)

			tc.mockFn(pg, log, row, tc.testData)

			event, err := repo.GetByID(ctx, tc.testData.ID)
			tc.assertFn(t, err, tc.testData, event)
		})
	}
}

func TestLotEvent_List(t *testing.T) {
	ctx := context.Background()
	query := "SELECT id, lot_id, event_type, module_ref, payload, occurred_at FROM lot_events"
	now := time.Now()
	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, mockRows *mockPg.MockRowsInterface, tc Filter)
		filter   Filter
		assertFn func(t *testing.T, err error, events []*LotEvent)
	}{
		{
			name: "success",
			filter: Filter{
				LotID:         7,
				EventType:     "bid.placed",
				ModuleRef:     "batch-fixed-price.v1",
				From:          &now,
				To:            &now,
				Limit:         20,
				Offset:        10,
				SortDirection: "ASC",
			},
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, mockRows *mockPg.MockRowsInterface, tc Filter) {
				mockpg.EXPECT().
					Query(
						ctx,
						query+" WHERE lot_id = $1 AND event_type = $2 AND module_ref = $3 AND occurred_at >= $4 AND occurred_at <= $5 ORDER BY occurred_at ASC LIMIT $6 OFFSET $7",
						int64(tc.LotID),
						tc.EventType,
						tc.ModuleRef,
						now,
						now,
						tc.Limit,
						tc.Offset,
					).Return(mockRows, nil)

				mockRows.EXPECT().Next().Return(true)
				mockRows.EXPECT().
					Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					*dest[0].(*string) = "01J8ZAC4VXT9BQ6TPNPWV3DHEK"
					*dest[1].(*int64) = 7
					*dest[2].(*string) = "bid.placed"
					*dest[3].(*string) = "batch-fixed-price.v1"
					*dest[4].(*[]byte) = []byte(`{"bid_id":1}`)
					*dest[5].(*time.Time) = now
					return nil
				})

				mockRows.EXPECT().Next().Return(false)
				mockRows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, err error, events []*LotEvent) {
				assert.NoError(t, err)
				assert.Equal(t, 1, len(events))
				assert.Equal(t, "bid.placed", events[0].EventType)
			},
		},
		{
			name: "success: no filters default ordering",
			filter: Filter{},
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, mockRows *mockPg.MockRowsInterface, tc Filter) {
				mockpg.EXPECT().
					Query(ctx, query+" ORDER BY occurred_at DESC").
					Return(mockRows, nil)

				mockRows.EXPECT().Next().Return(false)
				mockRows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, err error, events []*LotEvent) {
				assert.NoError(t, err)
				assert.Equal(t, 0, len(events))
			},
		},
		{
			name: "failed to query",
			filter: Filter{
				LotID: 7,
				Limit: 20,
			},
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, mockRows *mockPg.MockRowsInterface, tc Filter) {
				mockpg.EXPECT().
					Query(
						ctx,
						query+" WHERE lot_id = $1 ORDER BY occurred_at DESC LIMIT $2",
						int64(tc.LotID),
						tc.Limit,
					).Return(mockRows, errors.New("error"))

				mockLogger.EXPECT().
					Error(errors.New("error"), logger.Field{
						Key:   "error query",
						Value: "error",
					})
			},
			assertFn: func(t *testing.T, err error, events []*LotEvent) {
				assert.Error(t, err)
				assert.Nil(t, events)
			},
		},
		{
			name: "failed to scan",
			filter: Filter{
				EventType: "lot.settled",
			},
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, mockRows *mockPg.MockRowsInterface, tc Filter) {
				mockpg.EXPECT().
					Query(
						ctx,
						query+" WHERE event_type = $1 ORDER BY occurred_at DESC",
						tc.EventType,
					).Return(mockRows, nil)

				mockRows.EXPECT().Next().Return(true)
				mockRows.EXPECT().
					Scan(gomock.Any()).Return(errors.New("error"))
				mockRows.EXPECT().Close()

				mockLogger.EXPECT().
					Error(errors.New("error"), logger.Field{
						Key:   "error scan",
						Value: "error",
					})
			},
			assertFn: func(t *testing.T, err error, events []*LotEvent) {
				assert.Error(t, err)
				assert.Nil(t, events)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			rows := mockPg.NewMockRowsInterface(ctrl)
			log := mockLogger.NewMockInterface(ctrl)

			repo := NewRepository(pg, log)

			tc.mockFn(pg, log, rows, tc.filter)

			events, err := repo.List(ctx, tc.filter)
			tc.assertFn(t, err, events)
		})
	}
}
