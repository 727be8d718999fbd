// Package corpusbolt persists the FAQ corpus in a bbolt database, as a
// single-file alternative to the JSON store. Entries are keyed by
// big-endian id; fresh ids always exceed every live id, so key order equals
// insertion order.
package corpusbolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"

	bolt "go.etcd.io/bbolt"

	"github.com/optfm/faq-engine/internal/domain/faq"
	apperrors "github.com/optfm/faq-engine/pkg/errors"
)

var bucketEntries = []byte("faq_entries")

// Store reads and writes the corpus snapshot in a bolt database.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCorpusLoad, "open corpus database", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load implements faq.Store. A database without the entries bucket returns
// (nil, nil), matching the missing-file semantics of the JSON store; a
// bucket persisted with zero entries loads as an empty, non-nil corpus.
func (s *Store) Load(_ context.Context) ([]faq.Entry, error) {
	var entries []faq.Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketEntries)
		if bucket == nil {
			return nil
		}
		entries = make([]faq.Entry, 0, bucket.Stats().KeyN)
		return bucket.ForEach(func(key, value []byte) error {
			var entry faq.Entry
			if err := json.Unmarshal(value, &entry); err != nil {
				return err
			}
			if len(key) != 8 || int64(binary.BigEndian.Uint64(key)) != entry.ID {
				return errors.New("entry key does not match entry id")
			}
			entries = append(entries, entry)
			return nil
		})
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCorpusLoad, "read corpus database", err)
	}
	return entries, nil
}

// Save implements faq.Store. The whole snapshot is rewritten in one
// transaction, so a failure leaves the previous copy intact.
func (s *Store) Save(_ context.Context, entries []faq.Entry) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketEntries) != nil {
			if err := tx.DeleteBucket(bucketEntries); err != nil {
				return err
			}
		}
		bucket, err := tx.CreateBucket(bucketEntries)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			value, err := json.Marshal(entry)
			if err != nil {
				return err
			}
			key := make([]byte, 8)
			binary.BigEndian.PutUint64(key, uint64(entry.ID))
			if err := bucket.Put(key, value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.Wrap(apperrors.CodeCorpusPersist, "write corpus database", err)
	}
	return nil
}

var _ faq.Store = (*Store)(nil)
