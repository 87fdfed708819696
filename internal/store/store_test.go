package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/ChizhovVadim/OthelloGo/pkg/common"
	"github.com/ChizhovVadim/OthelloGo/pkg/engine"
	"github.com/ChizhovVadim/OthelloGo/pkg/strategy"
)

func roundTrip(t *testing.T, s Store) {
	var ctx = context.Background()

	var e = engine.NewEngine(engine.Options{CacheMinDepth: 4, Seed: 1}, nil)
	e.Think(common.InitialPosition, common.Black, 5)
	var q = strategy.NewQTable()
	q.SetValue(common.InitialBlack, common.InitialWhite, common.SquareF4, 0.5)

	tests := []struct {
		key   string
		saved Snapshot
		fresh func() Snapshot
		len   func(Snapshot) int
	}{
		{
			key:   "cache",
			saved: e.TransTable(),
			fresh: func() Snapshot { return engine.NewTransTable() },
			len:   func(s Snapshot) int { return s.(engine.TransTable).Len() },
		},
		{
			key:   "qtable",
			saved: q,
			fresh: func() Snapshot { return strategy.NewQTable() },
			len:   func(s Snapshot) int { return s.(*strategy.QTable).Len() },
		},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			var missing = tt.fresh()
			if err := s.Load(ctx, tt.key+"-missing", missing); err != nil {
				t.Fatalf("missing key: %v", err)
			}
			if n := tt.len(missing); n != 0 {
				t.Fatalf("missing key loaded %v entries", n)
			}

			if err := s.Save(ctx, tt.key, tt.saved); err != nil {
				t.Fatal(err)
			}
			var loaded = tt.fresh()
			if err := s.Load(ctx, tt.key, loaded); err != nil {
				t.Fatal(err)
			}
			if tt.len(loaded) != tt.len(tt.saved) {
				t.Errorf("loaded %v entries, saved %v", tt.len(loaded), tt.len(tt.saved))
			}
		})
	}
}

func TestFileStore(t *testing.T) {
	var dir = filepath.Join(t.TempDir(), "data")
	var s = NewFileStore(dir, zap.NewNop().Sugar())
	defer s.Close()
	roundTrip(t, s)
	if _, err := os.Stat(filepath.Join(dir, "cache.gob")); err != nil {
		t.Error(err)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	var dir = t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cache.gob"), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	var s = NewFileStore(dir, zap.NewNop().Sugar())
	if err := s.Load(context.Background(), "cache", engine.NewTransTable()); err == nil {
		t.Error("corrupt file loaded without error")
	}
}

func TestRedisStore(t *testing.T) {
	var addr = os.Getenv("OTHELLO_TEST_REDIS")
	if addr == "" {
		t.Skip("OTHELLO_TEST_REDIS not set")
	}
	s, err := NewRedisStore(context.Background(), addr, zap.NewNop().Sugar())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	roundTrip(t, s)
}
