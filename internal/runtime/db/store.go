// Package db persists verifier bytecode in a cometbft-db database.
package db

import (
	"bytes"
	"fmt"
	"sync"

	dbm "github.com/cometbft/cometbft-db"

	"github.com/CosmWasm/blsverify/types"
)

var codePrefix = []byte("code/")

// Store is a thread-safe code store keyed by checksum.
type Store struct {
	mu sync.RWMutex
	db dbm.DB
}

// New wraps an open database. Store takes ownership and closes it in Close.
func New(db dbm.DB) *Store {
	return &Store{db: db}
}

// Open creates or opens the named database. The memdb backend ignores dir.
func Open(name string, backend dbm.BackendType, dir string) (*Store, error) {
	db, err := dbm.NewDB(name, backend, dir)
	if err != nil {
		return nil, fmt.Errorf("open %s database %q: %w", backend, name, err)
	}
	return New(db), nil
}

func codeKey(cs types.Checksum) []byte {
	return append(append([]byte(nil), codePrefix...), cs[:]...)
}

// Get returns the code for cs, or nil when none is stored.
func (s *Store) Get(cs types.Checksum) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db.Get(codeKey(cs))
}

func (s *Store) Has(cs types.Checksum) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db.Has(codeKey(cs))
}

// Set stores code under its checksum and syncs to disk.
func (s *Store) Set(cs types.Checksum, code []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.SetSync(codeKey(cs), code)
}

func (s *Store) Delete(cs types.Checksum) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.DeleteSync(codeKey(cs))
}

// Checksums lists every stored checksum in key order.
func (s *Store) Checksums() ([]types.Checksum, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, err := s.db.Iterator(codePrefix, calculatePrefixEnd(codePrefix))
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []types.Checksum
	for ; it.Valid(); it.Next() {
		cs, err := types.NewChecksum(it.Key()[len(codePrefix):])
		if err != nil {
			return nil, fmt.Errorf("corrupt code key %x: %w", it.Key(), err)
		}
		out = append(out, cs)
	}
	return out, it.Error()
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// calculatePrefixEnd returns the end key for prefix iteration
func calculatePrefixEnd(prefix []byte) []byte {
	if len(prefix) == 0 {
		return nil
	}

	end := make([]byte, len(prefix))
	copy(end, prefix)

	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}

	// If we got here, we had a prefix of all 0xff values
	return bytes.Repeat([]byte{0xff}, len(prefix))
}
