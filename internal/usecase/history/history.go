package history

import (
	"context"

	"github.com/muhammadchandra19/auctionhouse/internal/infrastructure/postgresql/lotevent"
	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
	"github.com/muhammadchandra19/auctionhouse/pkg/logger"
)

type usecase struct {
	events lotevent.LotEventRepository
	logger logger.Interface
}

// NewUsecase creates a new history usecase.
func NewUsecase(events lotevent.LotEventRepository, logger logger.Interface) *usecase {
	return &usecase{events: events, logger: logger}
}

// StoreRecord stores a single lifecycle record.
func (u *usecase) StoreRecord(ctx context.Context, record *lotevent.LotEvent) error {
	err := u.events.Store(ctx, record)
	if err != nil {
		return err
	}
	return nil
}

// StoreRecords stores a batch of lifecycle records.
func (u *usecase) StoreRecords(ctx context.Context, records []*lotevent.LotEvent) error {
	if len(records) == 0 {
		return errors.NewErrorDetails(
			"no records to store",
			string(errors.InvalidParams),
			"records",
		)
	}

	err := u.events.StoreBatch(ctx, records)
	if err != nil {
		return err
	}
	return nil
}

// GetRecord gets a record by its ulid.
func (u *usecase) GetRecord(ctx context.Context, id string) (*lotevent.LotEvent, error) {
	record, err := u.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// GetRecordList gets the records matching the filter.
func (u *usecase) GetRecordList(ctx context.Context, filter lotevent.Filter) ([]*lotevent.LotEvent, error) {
	records, err := u.events.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return records, nil
}
