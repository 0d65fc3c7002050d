package history

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/muhammadchandra19/auctionhouse/internal/infrastructure/postgresql/lotevent"
	mockRepo "github.com/muhammadchandra19/auctionhouse/internal/infrastructure/postgresql/lotevent/mock"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
	mockLogger "github.com/muhammadchandra19/auctionhouse/pkg/logger/mock"
)

func TestHistory_StoreRecord(t *testing.T) {
	ctx := context.Background()
	record := &lotevent.LotEvent{
		ID:         "01J8ZAC4VXT9BQ6TPNPWV3DHEK",
		LotID:      1,
		EventType:  "lot.created",
		ModuleRef:  "batch-fixed-price.v1",
		Payload:    []byte(`{}`),
		OccurredAt: time.Now(),
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mockRepo.NewMockLotEventRepository(ctrl)
	log := mockLogger.NewMockInterface(ctrl)

	repo.EXPECT().Store(ctx, record).Return(nil)

	uc := NewUsecase(repo, log)
	assert.NoError(t, uc.StoreRecord(ctx, record))
}

func TestHistory_StoreRecords(t *testing.T) {
	ctx := context.Background()
	records := []*lotevent.LotEvent{
		{ID: "01J8ZAC4VXT9BQ6TPNPWV3DH01", LotID: 1, EventType: "bid.placed"},
		{ID: "01J8ZAC4VXT9BQ6TPNPWV3DH02", LotID: 1, EventType: "bid.placed"},
	}

	testCases := []struct {
		name     string
		records  []*lotevent.LotEvent
		mockFn   func(repo *mockRepo.MockLotEventRepository)
		assertFn func(t *testing.T, err error)
	}{
		{
			name:    "success",
			records: records,
			mockFn: func(repo *mockRepo.MockLotEventRepository) {
				repo.EXPECT().StoreBatch(ctx, records).Return(nil)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:    "empty batch rejected",
			records: nil,
			mockFn:  func(repo *mockRepo.MockLotEventRepository) {},
			assertFn: func(t *testing.T, err error) {
				assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidParams)))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mockRepo.NewMockLotEventRepository(ctrl)
			log := mockLogger.NewMockInterface(ctrl)

			tc.mockFn(repo)

			uc := NewUsecase(repo, log)
			tc.assertFn(t, uc.StoreRecords(ctx, tc.records))
		})
	}
}

func TestHistory_GetRecordList(t *testing.T) {
	ctx := context.Background()
	filter := lotevent.Filter{LotID: 7, EventType: "lot.settled"}
	stored := []*lotevent.LotEvent{
		{ID: "01J8ZAC4VXT9BQ6TPNPWV3DH11", LotID: 7, EventType: "lot.settled"},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mockRepo.NewMockLotEventRepository(ctrl)
	log := mockLogger.NewMockInterface(ctrl)

	repo.EXPECT().List(ctx, filter).Return(stored, nil)

	uc := NewUsecase(repo, log)
	records, err := uc.GetRecordList(ctx, filter)
	assert.NoError(t, err)
	assert.Equal(t, stored, records)
}

func TestHistory_GetRecord(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mockRepo.NewMockLotEventRepository(ctrl)
	log := mockLogger.NewMockInterface(ctrl)

	repo.EXPECT().GetByID(ctx, "01J8ZAC4VXT9BQ6TPNPWV3DHEK").Return(nil, nil)

	uc := NewUsecase(repo, log)
	record, err := uc.GetRecord(ctx, "01J8ZAC4VXT9BQ6TPNPWV3DHEK")
	assert.NoError(t, err)
	assert.Nil(t, record)
}
