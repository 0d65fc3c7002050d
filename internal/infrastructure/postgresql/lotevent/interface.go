package lotevent

import "context"

//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock

// LotEventRepository is the repository for the lot event history. The
// history is append-only; rows are never updated or deleted.
type LotEventRepository interface {
	GetByID(ctx context.Context, id string) (*LotEvent, error)
	List(ctx context.Context, filter Filter) ([]*LotEvent, error)
	Store(ctx context.Context, event *LotEvent) error
	StoreBatch(ctx context.Context, events []*LotEvent) error
}
