// Package store provides the durable state backend for hosts that run the
// governance engine on a local key-value store.
package store

import (
	"errors"
	"fmt"
	"log/slog"

	badger "github.com/dgraph-io/badger/v4"
)

// BadgerState implements gov.State over a badger database. Writes are
// buffered per request and flushed in one transaction by Commit, which is how
// the engine gets its all-or-nothing request semantics. A nil pending value
// marks a delete.
type BadgerState struct {
	db      *badger.DB
	logger  *slog.Logger
	pending map[string]*string
}

// New opens (or creates) a badger database under dataDir. An empty dataDir
// opens an in-memory database, which is what the test harness uses.
func New(dataDir string, logger *slog.Logger) (*BadgerState, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var opts badger.Options
	if dataDir == "" {
		opts = badger.DefaultOptions("").
			WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(dataDir)
	}
	opts = opts.
		WithLogger(newBadgerLogger(logger)).
		// The default INFO logging is a bit verbose
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open state db: %w", err)
	}
	return &BadgerState{
		db:      db,
		logger:  logger,
		pending: make(map[string]*string),
	}, nil
}

// Set stages a write; nothing hits disk until Commit.
func (s *BadgerState) Set(key, value string) {
	s.pending[key] = &value
}

// Get serves staged writes first so a request reads its own effects, then
// falls through to the committed store. Missing keys return nil.
func (s *BadgerState) Get(key string) *string {
	if val, ok := s.pending[key]; ok {
		return val
	}
	var out *string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			str := string(val)
			out = &str
			return nil
		})
	})
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		s.logger.Warn("state read failed", "key", key, "error", err)
		return nil
	}
	return out
}

// Delete stages a tombstone for the key.
func (s *BadgerState) Delete(key string) {
	s.pending[key] = nil
}

// Commit flushes all staged writes and deletes in a single transaction and
// clears the buffer. On error nothing is applied and the buffer is kept so
// the caller can decide between retry and Discard.
func (s *BadgerState) Commit() error {
	if len(s.pending) == 0 {
		return nil
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		for key, val := range s.pending {
			if val == nil {
				if err := txn.Delete([]byte(key)); err != nil {
					return err
				}
				continue
			}
			if err := txn.Set([]byte(key), []byte(*val)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to commit state: %w", err)
	}
	s.pending = make(map[string]*string)
	return nil
}

// Discard drops all staged writes, rolling the request back.
func (s *BadgerState) Discard() {
	s.pending = make(map[string]*string)
}

// Close discards anything uncommitted and releases the database.
func (s *BadgerState) Close() error {
	s.Discard()
	return s.db.Close()
}
