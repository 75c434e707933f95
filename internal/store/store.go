// Package store is a small JSON-file-backed key-value store used to persist
// UI options and text buffers between sessions. Storage failures are never
// surfaced: the in-memory value stays authoritative for the session and the
// worst case is loss of persistence.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// Store holds the deserialized state file. Each key is kept as raw JSON so
// that one corrupt value cannot poison the rest of the file.
type Store struct {
	mu     sync.Mutex
	path   string
	values map[string]json.RawMessage

	// flushMu serializes flushes. Every Write spawns one; without this,
	// two in-flight flushes could interleave on the shared temp file and
	// rename a torn blob into place.
	flushMu sync.Mutex
}

// Open loads the state file at path. A missing or unreadable file, or one
// that fails to parse, yields an empty store; the error is absorbed.
func Open(path string) *Store {
	s := &Store{path: path, values: map[string]json.RawMessage{}}
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.WithError(err).Debug("state file not read; starting empty")
		return s
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		logrus.WithError(err).Debug("state file unparseable; starting empty")
		s.values = map[string]json.RawMessage{}
	}
	return s
}

// Read returns the value stored under key, or fallback when the key is
// absent or its stored form does not unmarshal into T.
func Read[T any](s *Store, key string, fallback T) T {
	s.mu.Lock()
	raw, ok := s.values[key]
	s.mu.Unlock()
	if !ok {
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logrus.WithError(err).WithField("key", key).Debug("stored value corrupt; using fallback")
		return fallback
	}
	return v
}

// Write serializes v under key and triggers one asynchronous flush to disk.
// There is deliberately no dirty-check here; callers that want to avoid
// redundant writes dedup before calling (the buffer synchronizer does).
func (s *Store) Write(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Debug("value not serializable; skipping write")
		return
	}
	s.mu.Lock()
	s.values[key] = data
	s.mu.Unlock()
	go s.flush()
}

// Flush writes the current state to disk synchronously. Called on teardown
// so the last edits of a session are not lost to a still-pending write.
func (s *Store) Flush() {
	s.flush()
}

func (s *Store) flush() {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	s.mu.Lock()
	data, err := json.MarshalIndent(s.values, "", "  ")
	path := s.path
	s.mu.Unlock()
	if err != nil {
		logrus.WithError(err).Debug("state marshal failed")
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logrus.WithError(err).Debug("state dir not created")
		return
	}
	// Temp-file + rename so a crash mid-write never leaves a truncated file.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		logrus.WithError(err).Debug("state write failed")
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		logrus.WithError(err).Debug("state rename failed")
	}
}

// Field binds one in-memory value to a store key: read-on-init,
// write-on-every-Set. Get and Set are called from the UI goroutine only
// (single writer per field); the store itself handles flush concurrency.
type Field[T any] struct {
	store *Store
	key   string
	val   T
}

// Bind creates a Field initialized from the store, or from initial when the
// key is absent or corrupt.
func Bind[T any](s *Store, key string, initial T) *Field[T] {
	return &Field[T]{store: s, key: key, val: Read(s, key, initial)}
}

func (f *Field[T]) Key() string { return f.key }

func (f *Field[T]) Get() T { return f.val }

// Set updates the in-memory value and issues exactly one write attempt,
// even when the new value equals the old one.
func (f *Field[T]) Set(v T) {
	f.val = v
	f.store.Write(f.key, v)
}
