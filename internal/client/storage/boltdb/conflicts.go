package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/ddanilov/sitesync/internal/client/storage"
	"github.com/ddanilov/sitesync/internal/models"
)

// SaveConflict stores or updates a conflict record in BoltDB
func (s *Storage) SaveConflict(ctx context.Context, c *models.SyncConflict) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal conflict: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketConflicts).Put([]byte(c.ID), data); err != nil {
			return fmt.Errorf("failed to save conflict: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetConflict retrieves a conflict by ID
func (s *Storage) GetConflict(ctx context.Context, id string) (*models.SyncConflict, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var c *models.SyncConflict

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketConflicts).Get([]byte(id))
		if data == nil {
			return storage.ErrConflictNotFound
		}

		c = &models.SyncConflict{}
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to unmarshal conflict: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return c, nil
}

// ListConflicts returns all conflicts, resolved ones included
func (s *Storage) ListConflicts(ctx context.Context) ([]*models.SyncConflict, error) {
	return s.listConflicts(ctx, false)
}

// ListUnresolvedConflicts returns conflicts with Resolved=false
func (s *Storage) ListUnresolvedConflicts(ctx context.Context) ([]*models.SyncConflict, error) {
	return s.listConflicts(ctx, true)
}

func (s *Storage) listConflicts(ctx context.Context, unresolvedOnly bool) ([]*models.SyncConflict, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var conflicts []*models.SyncConflict

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketConflicts).ForEach(func(k, v []byte) error {
			var c models.SyncConflict
			if err := json.Unmarshal(v, &c); err != nil {
				return fmt.Errorf("failed to unmarshal conflict: %w", err)
			}
			if unresolvedOnly && c.Resolved {
				return nil
			}
			conflicts = append(conflicts, &c)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list conflicts: %w", err)
	}

	return conflicts, nil
}

// CountUnresolvedConflicts returns the number of unresolved conflicts.
// BoltDB cannot index the boolean Resolved flag, so this is a full scan.
func (s *Storage) CountUnresolvedConflicts(ctx context.Context) (int, error) {
	conflicts, err := s.listConflicts(ctx, true)
	if err != nil {
		return 0, err
	}
	return len(conflicts), nil
}

// ClearConflicts removes every conflict record
func (s *Storage) ClearConflicts(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketConflicts); err != nil {
			return fmt.Errorf("failed to delete bucket: %w", err)
		}
		if _, err := tx.CreateBucket(bucketConflicts); err != nil {
			return fmt.Errorf("failed to recreate bucket: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}

	return nil
}
