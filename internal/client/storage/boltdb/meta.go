package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.etcd.io/bbolt"

	"github.com/ddanilov/sitesync/internal/client/storage"
	"github.com/ddanilov/sitesync/internal/models"
)

var (
	// Keys within the meta bucket
	keyPreferences  = []byte("preferences")
	keyLastSyncTime = []byte("last_sync_time")
	keyAccessToken  = []byte("access_token")
)

// SavePreferences persists the full preferences value
func (s *Storage) SavePreferences(ctx context.Context, prefs models.SyncPreferences) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(keyPreferences, data)
	})
}

// GetPreferences retrieves the saved preferences
func (s *Storage) GetPreferences(ctx context.Context) (models.SyncPreferences, error) {
	var prefs models.SyncPreferences

	if s.db == nil {
		return prefs, storage.ErrStorageClosed
	}

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keyPreferences)
		if data == nil {
			return storage.ErrPreferencesNotFound
		}
		if err := json.Unmarshal(data, &prefs); err != nil {
			return fmt.Errorf("failed to unmarshal preferences: %w", err)
		}
		return nil
	})

	if err != nil {
		return models.SyncPreferences{}, err
	}

	return prefs, nil
}

// SaveLastSyncTime saves the epoch millis of the last successful drain
func (s *Storage) SaveLastSyncTime(ctx context.Context, ts int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(keyLastSyncTime, []byte(strconv.FormatInt(ts, 10)))
	})
}

// GetLastSyncTime retrieves the epoch millis of the last successful drain,
// or 0 if no drain has completed yet
func (s *Storage) GetLastSyncTime(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var ts int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keyLastSyncTime)
		if data == nil {
			return nil
		}
		parsed, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse last sync time: %w", err)
		}
		ts = parsed
		return nil
	})

	if err != nil {
		return 0, err
	}

	return ts, nil
}

// SaveAccessToken persists the bearer token used by the transport
func (s *Storage) SaveAccessToken(ctx context.Context, token string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(keyAccessToken, []byte(token))
	})
}

// GetAccessToken retrieves the saved bearer token
func (s *Storage) GetAccessToken(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var token string

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keyAccessToken)
		if data == nil {
			return storage.ErrTokenNotFound
		}
		token = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return token, nil
}
