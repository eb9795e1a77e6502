package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/ddanilov/sitesync/internal/client/storage"
	"github.com/ddanilov/sitesync/internal/models"
)

// Очередь хранится под 8-байтовыми big-endian sequence ключами: порядок
// обхода bucket совпадает с порядком вставки (FIFO). Индексный bucket
// отображает ID мутации в её sequence ключ.

// SaveMutation stores or updates a queued mutation. An update keeps the
// mutation's original queue position.
func (s *Storage) SaveMutation(ctx context.Context, m *models.PendingMutation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal mutation: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		queue := tx.Bucket(bucketQueue)
		index := tx.Bucket(bucketQueueIndex)

		// Существующая запись сохраняет свой sequence ключ
		key := index.Get([]byte(m.ID))
		if key == nil {
			seq, err := queue.NextSequence()
			if err != nil {
				return fmt.Errorf("failed to allocate sequence: %w", err)
			}
			key = make([]byte, 8)
			binary.BigEndian.PutUint64(key, seq)

			if err := index.Put([]byte(m.ID), key); err != nil {
				return fmt.Errorf("failed to index mutation: %w", err)
			}
		}

		if err := queue.Put(key, data); err != nil {
			return fmt.Errorf("failed to save mutation: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetMutation retrieves a queued mutation by ID
func (s *Storage) GetMutation(ctx context.Context, id string) (*models.PendingMutation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var m *models.PendingMutation

	err := s.db.View(func(tx *bbolt.Tx) error {
		key := tx.Bucket(bucketQueueIndex).Get([]byte(id))
		if key == nil {
			return storage.ErrMutationNotFound
		}

		data := tx.Bucket(bucketQueue).Get(key)
		if data == nil {
			return storage.ErrMutationNotFound
		}

		m = &models.PendingMutation{}
		if err := json.Unmarshal(data, m); err != nil {
			return fmt.Errorf("failed to unmarshal mutation: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return m, nil
}

// ListMutations returns all queued mutations in insertion order
func (s *Storage) ListMutations(ctx context.Context) ([]*models.PendingMutation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var mutations []*models.PendingMutation

	err := s.db.View(func(tx *bbolt.Tx) error {
		// ForEach обходит ключи в байтовом порядке = порядок вставки
		return tx.Bucket(bucketQueue).ForEach(func(k, v []byte) error {
			var m models.PendingMutation
			if err := json.Unmarshal(v, &m); err != nil {
				return fmt.Errorf("failed to unmarshal mutation: %w", err)
			}
			mutations = append(mutations, &m)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list mutations: %w", err)
	}

	return mutations, nil
}

// DeleteMutation removes a queued mutation by ID.
// Deleting a missing mutation is a no-op.
func (s *Storage) DeleteMutation(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		index := tx.Bucket(bucketQueueIndex)

		key := index.Get([]byte(id))
		if key == nil {
			return nil
		}

		if err := tx.Bucket(bucketQueue).Delete(key); err != nil {
			return fmt.Errorf("failed to delete mutation: %w", err)
		}
		if err := index.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete mutation index: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}

	return nil
}

// ClearMutations removes every queued mutation
func (s *Storage) ClearMutations(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketQueue, bucketQueueIndex} {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("failed to delete bucket %s: %w", name, err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("failed to recreate bucket %s: %w", name, err)
			}
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}

	return nil
}

// CountMutationsByStatus returns the number of mutations with the given
// status. BoltDB has no secondary indexes, so this is a full scan.
func (s *Storage) CountMutationsByStatus(ctx context.Context, status models.MutationStatus) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	count := 0

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketQueue).ForEach(func(k, v []byte) error {
			var m models.PendingMutation
			if err := json.Unmarshal(v, &m); err != nil {
				return fmt.Errorf("failed to unmarshal mutation: %w", err)
			}
			if m.Status == status {
				count++
			}
			return nil
		})
	})

	if err != nil {
		return 0, fmt.Errorf("failed to count mutations: %w", err)
	}

	return count, nil
}
