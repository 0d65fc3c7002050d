// Package bootstrap assembles the settlement daemon's repositories and
// usecases in dependency order so cmd wiring stays declarative.
package bootstrap

import (
	"github.com/muhammadchandra19/auctionhouse/pkg/config"
	"github.com/muhammadchandra19/auctionhouse/pkg/logger"
	"github.com/muhammadchandra19/auctionhouse/pkg/postgresql"
	"github.com/muhammadchandra19/auctionhouse/pkg/redis"
)

// Bootstrap is the bootstrap for the settlement daemon.
type Bootstrap struct {
	Usecase    Usecase
	Repository Repository
	Logger     logger.Interface

	Config   *config.Config
	Postgres postgresql.PostgreSQLClient
	Redis    redis.Client
}

// BootstrapConfig is the config for the bootstrap. Postgres is optional;
// without it the daemon runs without the history surface.
type BootstrapConfig struct {
	Config   *config.Config
	Logger   logger.Interface
	Postgres postgresql.PostgreSQLClient
	Redis    redis.Client
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) (*Bootstrap, error) {
	b.Config = config.Config
	b.Logger = config.Logger
	b.Postgres = config.Postgres
	b.Redis = config.Redis

	b.registerRepository()
	if err := b.registerUsecase(); err != nil {
		return nil, err
	}

	return b, nil
}
