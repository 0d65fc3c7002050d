package snapshot

import (
	"context"

	"github.com/muhammadchandra19/auctionhouse/pkg/errors"
	"github.com/muhammadchandra19/auctionhouse/pkg/logger"
	"github.com/muhammadchandra19/auctionhouse/pkg/redis"
)

//go:generate mockgen -source=store.go -destination=mock/store_mock.go -package=mock

// Store persists opaque snapshot blobs under a fixed key.
type Store interface {
	Save(ctx context.Context, data []byte) error
	Load(ctx context.Context) ([]byte, bool, error)
}

// RedisStore keeps the latest snapshot in Redis with no expiration. One key
// holds one snapshot; every save replaces the previous one.
type RedisStore struct {
	key         string
	logger      logger.Interface
	redisclient redis.Client
}

// NewRedisStore creates a snapshot store writing to the given key.
func NewRedisStore(redisclient redis.Client, key string, logger logger.Interface) *RedisStore {
	return &RedisStore{
		key:         key,
		logger:      logger,
		redisclient: redisclient,
	}
}

// Save stores the snapshot blob.
func (s *RedisStore) Save(ctx context.Context, data []byte) error {
	if err := s.redisclient.Set(ctx, s.key, data, 0); err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "snapshot_key",
			Value: s.key,
		})
		return errors.NewTracer("snapshot_store_error").Wrap(err)
	}

	s.logger.InfoContext(ctx, "snapshot stored",
		logger.Field{Key: "snapshot_key", Value: s.key},
		logger.Field{Key: "bytes", Value: len(data)},
	)
	return nil
}

// Load returns the stored snapshot blob. The second return reports whether a
// snapshot existed.
func (s *RedisStore) Load(ctx context.Context) ([]byte, bool, error) {
	data, err := s.redisclient.Get(ctx, s.key)
	if err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "snapshot_key",
			Value: s.key,
		})
		return nil, false, errors.NewTracer("snapshot_load_error").Wrap(err)
	}
	if data == "" {
		return nil, false, nil
	}
	return []byte(data), true, nil
}
