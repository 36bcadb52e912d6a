// Package session is a Go client for the warehouse API that mirrors the
// dashboard's session handling: credentials and identity are persisted in a
// small key-value store, restored on startup, and dropped the moment the
// server rejects them.
package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Persisted keys. All three are written on login and removed together on
// logout or credential rejection.
const (
	KeyAccessToken  = "wh_access_token"
	KeyRefreshToken = "wh_refresh_token"
	KeyIdentity     = "wh_identity"
)

// Store persists session state between runs.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// MemStore is an in-memory Store, useful for tests and one-shot tools.
type MemStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *MemStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// FileStore persists each key as a file under dir, one value per file.
// Write failures are silently dropped; a missing value simply means the
// session starts anonymous.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Get(key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return strings.TrimRight(string(data), "\n"), true
}

func (s *FileStore) Set(key, value string) {
	_ = os.WriteFile(s.path(key), []byte(value), 0o600)
}

func (s *FileStore) Delete(key string) {
	_ = os.Remove(s.path(key))
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key)
}
