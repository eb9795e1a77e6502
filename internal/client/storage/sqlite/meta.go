package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/ddanilov/sitesync/internal/client/storage"
	"github.com/ddanilov/sitesync/internal/models"
)

// Keys within the meta table
const (
	metaKeyPreferences  = "preferences"
	metaKeyLastSyncTime = "last_sync_time"
	metaKeyAccessToken  = "access_token"
)

func (s *Storage) setMeta(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set meta %s: %w", key, err)
	}
	return nil
}

func (s *Storage) getMeta(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// SavePreferences persists the full preferences value
func (s *Storage) SavePreferences(ctx context.Context, prefs models.SyncPreferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	return s.setMeta(ctx, metaKeyPreferences, string(data))
}

// GetPreferences retrieves the saved preferences
func (s *Storage) GetPreferences(ctx context.Context) (models.SyncPreferences, error) {
	var prefs models.SyncPreferences

	value, err := s.getMeta(ctx, metaKeyPreferences)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return prefs, storage.ErrPreferencesNotFound
		}
		return prefs, fmt.Errorf("failed to get preferences: %w", err)
	}

	if err := json.Unmarshal([]byte(value), &prefs); err != nil {
		return models.SyncPreferences{}, fmt.Errorf("failed to unmarshal preferences: %w", err)
	}

	return prefs, nil
}

// SaveLastSyncTime saves the epoch millis of the last successful drain
func (s *Storage) SaveLastSyncTime(ctx context.Context, ts int64) error {
	return s.setMeta(ctx, metaKeyLastSyncTime, strconv.FormatInt(ts, 10))
}

// GetLastSyncTime retrieves the epoch millis of the last successful drain,
// or 0 if no drain has completed yet
func (s *Storage) GetLastSyncTime(ctx context.Context) (int64, error) {
	value, err := s.getMeta(ctx, metaKeyLastSyncTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get last sync time: %w", err)
	}

	ts, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse last sync time: %w", err)
	}

	return ts, nil
}

// SaveAccessToken persists the bearer token used by the transport
func (s *Storage) SaveAccessToken(ctx context.Context, token string) error {
	return s.setMeta(ctx, metaKeyAccessToken, token)
}

// GetAccessToken retrieves the saved bearer token
func (s *Storage) GetAccessToken(ctx context.Context) (string, error) {
	token, err := s.getMeta(ctx, metaKeyAccessToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrTokenNotFound
		}
		return "", fmt.Errorf("failed to get access token: %w", err)
	}
	return token, nil
}
