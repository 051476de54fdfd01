// Package keystore implements the durable set of processed task identities.
package keystore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"go.trai.ch/courier/internal/core/domain"
	"go.trai.ch/courier/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.KeyStore = (*Store)(nil)

// Store implements ports.KeyStore using a flat JSON file rewritten on every change.
// Mutations hold an exclusive flock on a sibling ".lock" file and start from the
// persisted set, so processes sharing the file never overwrite each other's changes.
type Store struct {
	path string
	lock *flock.Flock

	mu       sync.Mutex
	keys     map[string]struct{}
	checksum string
}

// NewStore loads the key set persisted at path. A missing file yields an empty set.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path: filepath.Clean(path),
		keys: make(map[string]struct{}),
	}
	s.lock = flock.New(s.path + ".lock")
	if _, err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// ContainsAndInsert reports whether key was present and inserts it if not.
// The mutex and the file lock are held across the check, the insert and the rewrite, so two callers
// with the same key can never both observe it as absent.
func (s *Store) ContainsAndInsert(key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lockFile(s.lock.Lock)
	if err != nil {
		return false, zerr.With(err, "key", key)
	}
	defer unlock()

	if err := s.load(); err != nil {
		return false, zerr.With(err, "key", key)
	}

	if _, ok := s.keys[key]; ok {
		return true, nil
	}

	s.keys[key] = struct{}{}
	if err := s.persist(); err != nil {
		delete(s.keys, key)
		return false, zerr.With(err, "key", key)
	}
	return false, nil
}

// Contains reports whether key is present.
func (s *Store) Contains(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.keys[key]
	return ok
}

// Keys returns every key in lexical order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return sortedKeys(s.keys)
}

// Forget removes keys and persists the set. Nothing is removed if any key is absent.
func (s *Store) Forget(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lockFile(s.lock.Lock)
	if err != nil {
		return err
	}
	defer unlock()

	if err := s.load(); err != nil {
		return err
	}

	for _, k := range keys {
		if _, ok := s.keys[k]; !ok {
			return zerr.With(zerr.Wrap(domain.ErrKeyNotFound, "forget"), "key", k)
		}
	}

	removed := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := s.keys[k]; ok {
			delete(s.keys, k)
			removed = append(removed, k)
		}
	}

	if err := s.persist(); err != nil {
		for _, k := range removed {
			s.keys[k] = struct{}{}
		}
		return err
	}
	return nil
}

// Reload replaces the in-memory set with the persisted one.
func (s *Store) Reload() error {
	_, err := s.reload()
	return err
}

// reload reads the file and reports whether the set differs from the one held before.
func (s *Store) reload() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lockFile(s.lock.RLock)
	if err != nil {
		return false, err
	}
	defer unlock()

	before := s.checksum
	if err := s.load(); err != nil {
		return false, err
	}
	return s.checksum != before, nil
}

// load replaces the in-memory set with the persisted one. Callers hold s.mu and the file lock.
func (s *Store) load() error {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(domain.WrapCause(domain.ErrStoreReadFailed, err), "path", s.path)
	}

	keys, sum, err := decodeDocument(data)
	if err != nil {
		return zerr.With(err, "path", s.path)
	}

	s.keys = keys
	s.checksum = sum
	return nil
}

// lockFile acquires the file lock with acquire and returns its release.
func (s *Store) lockFile(acquire func() error) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return nil, zerr.With(domain.WrapCause(domain.ErrStoreLockFailed, err), "path", s.lock.Path())
	}
	if err := acquire(); err != nil {
		return nil, zerr.With(domain.WrapCause(domain.ErrStoreLockFailed, err), "path", s.lock.Path())
	}
	return func() { _ = s.lock.Unlock() }, nil
}

// persist rewrites the file from the in-memory set. Callers hold s.mu.
func (s *Store) persist() error {
	data, sum, err := encode(s.keys)
	if err != nil {
		return err
	}

	if err := atomicWriteFile(s.path, data); err != nil {
		return zerr.With(domain.WrapCause(domain.ErrStoreWriteFailed, err), "path", s.path)
	}
	s.checksum = sum
	return nil
}
