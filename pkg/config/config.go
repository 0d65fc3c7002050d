package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/muhammadchandra19/auctionhouse/pkg/postgresql"
	"github.com/muhammadchandra19/auctionhouse/pkg/redis"
)

// MustLoad loads the configuration from environment variables and .env file.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load() // Load environment variables from .env file

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and .env file.
func Load[T any](cfg T) error {
	_ = godotenv.Load() // .env file is optional

	if err := env.Parse(cfg); err != nil {
		return err
	}

	return nil
}

// Config holds the configuration for the settlement daemon.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"settlementd"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	// Router accounts. The router account is the custody account every escrow
	// lives under; the protocol account receives the protocol's fee share.
	RouterAccount   string `env:"ROUTER_ACCOUNT" envDefault:"settlement-router"`
	ProtocolAccount string `env:"PROTOCOL_ACCOUNT,required"`
	AdminAccount    string `env:"ADMIN_ACCOUNT,required"`

	// Assets registered at boot, comma-separated "ID:decimals" pairs,
	// e.g. "USDC:6,WETH:18".
	Assets []string `env:"ASSETS" envDefault:""`

	// Dedicated settlement window after a lot concludes. Once it expires an
	// unsettled lot can only be aborted.
	SettlePeriod time.Duration `env:"SETTLE_PERIOD" envDefault:"6h"`
	// Upper bound on bids processed per settle call when the caller passes none.
	MaxSettleBatch int `env:"MAX_SETTLE_BATCH" envDefault:"500"`

	SnapshotInterval time.Duration `env:"SNAPSHOT_INTERVAL" envDefault:"30s"`
	SnapshotKey      string        `env:"SNAPSHOT_KEY" envDefault:"settlement:snapshot"`

	Kafka    KafkaConfig       `envPrefix:"KAFKA_"`
	Redis    redis.Config      `envPrefix:"REDIS_"`
	Postgres postgresql.Config `envPrefix:"POSTGRES_"`
}

// KafkaConfig holds the configuration for the lifecycle record topic.
// An empty broker list disables publishing and the history consumer.
type KafkaConfig struct {
	Brokers []string `env:"BROKERS" envDefault:""`
	Topic   string   `env:"TOPIC" envDefault:"lot-events"`
	GroupID string   `env:"GROUP_ID" envDefault:"settlement-history"`
}

// Enabled reports whether a Kafka broker list was configured.
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}
