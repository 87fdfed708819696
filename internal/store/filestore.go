package store

import (
	"bufio"
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// FileStore keeps one gob file per key under a directory.
type FileStore struct {
	dir string
	log *zap.SugaredLogger
}

func NewFileStore(dir string, log *zap.SugaredLogger) *FileStore {
	return &FileStore{dir: dir, log: log}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".gob")
}

func (s *FileStore) Load(ctx context.Context, key string, snapshot Snapshot) error {
	var path = s.path(key)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Infow("snapshot not found, starting empty", "path", path)
			return nil
		}
		return errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	if err := snapshot.Load(bufio.NewReader(file)); err != nil {
		return errors.Wrapf(err, "decode %s", path)
	}
	s.log.Infow("snapshot loaded", "path", path)
	return nil
}

func (s *FileStore) Save(ctx context.Context, key string, snapshot Snapshot) error {
	if s.dir != "" && s.dir != "." {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", s.dir)
		}
	}
	var path = s.path(key)
	var tmp = path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return errors.Wrapf(err, "create %s", tmp)
	}
	var w = bufio.NewWriter(file)
	if err := snapshot.Save(w); err != nil {
		file.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "rename %s", tmp)
	}
	s.log.Infow("snapshot saved", "path", path)
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
