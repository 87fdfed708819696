// Package store persists search caches and learned tables between runs.
package store

import (
	"context"
	"io"

	"go.uber.org/zap"
)

// Snapshot is state that can write itself out and merge itself back in.
// engine.TransTable and strategy.QTable satisfy it.
type Snapshot interface {
	Load(r io.Reader) error
	Save(w io.Writer) error
}

// Store loads and saves snapshots by key. Loading a key that was never saved
// leaves the snapshot untouched and is not an error.
type Store interface {
	Load(ctx context.Context, key string, s Snapshot) error
	Save(ctx context.Context, key string, s Snapshot) error
	Close() error
}

// Open returns a RedisStore when redisAddr is set and a FileStore under dir
// otherwise.
func Open(ctx context.Context, redisAddr, dir string, log *zap.SugaredLogger) (Store, error) {
	if redisAddr != "" {
		s, err := NewRedisStore(ctx, redisAddr, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return NewFileStore(dir, log), nil
}
