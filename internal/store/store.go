// Package store provides the bbolt-backed key-value store behind the
// persistence contract.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketState = []byte("state")

// Store implements domain.KV on BoltDB. When opened without a directory it
// runs memory-only, which keeps tests and --no-persist runs off the disk.
type Store struct {
	db *bolt.DB

	mu  sync.RWMutex
	mem map[string]string
}

// Open opens (or creates) the database under dir. An empty dir selects
// memory-only mode.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return &Store{mem: make(map[string]string)}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "marquee.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketState)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, mem: make(map[string]string)}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ReadString returns the stored value and whether the key was present.
func (s *Store) ReadString(key string) (string, bool) {
	s.mu.RLock()
	if v, ok := s.mem[key]; ok {
		s.mu.RUnlock()
		return v, true
	}
	s.mu.RUnlock()

	if s.db == nil {
		return "", false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketState).Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if data == nil {
		return "", false
	}

	// Promote to memory for hot-path reads
	s.mu.Lock()
	s.mem[key] = string(data)
	s.mu.Unlock()

	return string(data), true
}

// WriteString stores the value under the key.
func (s *Store) WriteString(key, value string) error {
	s.mu.Lock()
	s.mem[key] = value
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Put([]byte(key), []byte(value))
	})
}
