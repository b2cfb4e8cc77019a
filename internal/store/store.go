// Package store is a synchronous key-value facade that persists whole values
// under fixed keys. Loads fall back to a caller default and saves never fail
// loudly: a write that cannot happen is logged and the previous value stays.
package store

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned by a Backend when the key holds no value.
var ErrNotFound = errors.New("key not found")

// Backend stores opaque values. Put must replace the value atomically.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

type Store struct {
	backend Backend
	log     *logrus.Entry
}

func New(backend Backend, log *logrus.Entry) *Store {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Store{backend: backend, log: log.WithField("component", "store")}
}

func (s *Store) Close() error {
	return s.backend.Close()
}

// Load returns the value stored under key, or def when the key is absent,
// the backend is unavailable or the stored bytes do not decode.
func Load[T any](ctx context.Context, s *Store, key string, def T) T {
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.WithError(err).WithField("key", key).Warn("load failed, using default")
		}
		return def
	}
	var v T
	if err := sonic.ConfigStd.Unmarshal(raw, &v); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("stored value is corrupt, using default")
		return def
	}
	return v
}

// Save replaces the value under key. It reports whether the write happened.
func Save[T any](ctx context.Context, s *Store, key string, v T) bool {
	raw, err := sonic.ConfigStd.Marshal(v)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Error("encode failed, value not saved")
		return false
	}
	if err := s.backend.Put(ctx, key, raw); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("save failed, keeping previous value")
		return false
	}
	return true
}
