package v1

import (
	"context"

	"github.com/muhammadchandra19/auctionhouse/internal/infrastructure/postgresql/lotevent"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Usecase is the ingest and query surface of the lot event history.
type Usecase interface {
	GetRecord(ctx context.Context, id string) (*lotevent.LotEvent, error)
	GetRecordList(ctx context.Context, filter lotevent.Filter) ([]*lotevent.LotEvent, error)
	StoreRecord(ctx context.Context, record *lotevent.LotEvent) error
	StoreRecords(ctx context.Context, records []*lotevent.LotEvent) error
}
