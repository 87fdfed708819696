package store

import (
	"bytes"
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "othello:"

// RedisStore keeps snapshots as gob blobs in Redis, so that arena workers on
// several machines can share what they learned.
type RedisStore struct {
	client *redis.Client
	log    *zap.SugaredLogger
}

func NewRedisStore(ctx context.Context, addr string, log *zap.SugaredLogger) (*RedisStore, error) {
	var client = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing).Err(); err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "connect redis %s", addr)
	}
	log.Infow("connected to redis", "addr", addr)
	return &RedisStore{client: client, log: log}, nil
}

func (s *RedisStore) Load(ctx context.Context, key string, snapshot Snapshot) error {
	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			s.log.Infow("snapshot not found, starting empty", "key", key)
			return nil
		}
		return errors.Wrapf(err, "get %s", key)
	}
	if err := snapshot.Load(bytes.NewReader(data)); err != nil {
		return errors.Wrapf(err, "decode %s", key)
	}
	s.log.Infow("snapshot loaded", "key", key, "bytes", len(data))
	return nil
}

func (s *RedisStore) Save(ctx context.Context, key string, snapshot Snapshot) error {
	var buf bytes.Buffer
	if err := snapshot.Save(&buf); err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}
	if err := s.client.Set(ctx, keyPrefix+key, buf.Bytes(), 0).Err(); err != nil {
		return errors.Wrapf(err, "set %s", key)
	}
	s.log.Infow("snapshot saved", "key", key, "bytes", buf.Len())
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
