package bootstrap

import (
	loteventinfra "github.com/muhammadchandra19/auctionhouse/internal/infrastructure/postgresql/lotevent"
)

// Repository is the repository layer for the settlement daemon.
type Repository struct {
	LotEventRepository loteventinfra.LotEventRepository
}

// registerRepository registers the repository layer.
func (b *Bootstrap) registerRepository() {
	if b.Postgres == nil {
		return
	}
	b.Repository.LotEventRepository = loteventinfra.NewRepository(b.Postgres, b.Logger)
}
