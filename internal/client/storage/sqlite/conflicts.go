package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ddanilov/sitesync/internal/client/storage"
	"github.com/ddanilov/sitesync/internal/models"
)

// SaveConflict creates or updates a conflict record
func (s *Storage) SaveConflict(ctx context.Context, c *models.SyncConflict) error {
	localData, err := json.Marshal(c.LocalData)
	if err != nil {
		return fmt.Errorf("failed to marshal local data: %w", err)
	}
	serverData, err := json.Marshal(c.ServerData)
	if err != nil {
		return fmt.Errorf("failed to marshal server data: %w", err)
	}

	query := `
		INSERT INTO conflicts (
			id, entity_type, entity_id, local_data, server_data,
			local_timestamp, server_timestamp, resolved, created_at, detected_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			local_data = excluded.local_data,
			server_data = excluded.server_data,
			local_timestamp = excluded.local_timestamp,
			server_timestamp = excluded.server_timestamp,
			resolved = excluded.resolved,
			detected_at = excluded.detected_at
	`

	_, err = s.db.ExecContext(ctx, query,
		c.ID,
		c.EntityType,
		c.EntityID,
		string(localData),
		string(serverData),
		c.LocalTimestamp,
		c.ServerTimestamp,
		boolToInt(c.Resolved),
		c.CreatedAt,
		c.DetectedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save conflict: %w", err)
	}

	return nil
}

// GetConflict retrieves a conflict by ID
func (s *Storage) GetConflict(ctx context.Context, id string) (*models.SyncConflict, error) {
	query := `
		SELECT id, entity_type, entity_id, local_data, server_data,
		       local_timestamp, server_timestamp, resolved, created_at, detected_at
		FROM conflicts
		WHERE id = ?
	`

	c, err := scanConflict(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrConflictNotFound
		}
		return nil, fmt.Errorf("failed to get conflict: %w", err)
	}

	return c, nil
}

// ListConflicts returns all conflicts, resolved ones included
func (s *Storage) ListConflicts(ctx context.Context) ([]*models.SyncConflict, error) {
	return s.listConflicts(ctx, `
		SELECT id, entity_type, entity_id, local_data, server_data,
		       local_timestamp, server_timestamp, resolved, created_at, detected_at
		FROM conflicts
		ORDER BY created_at ASC
	`)
}

// ListUnresolvedConflicts returns conflicts with resolved = 0
func (s *Storage) ListUnresolvedConflicts(ctx context.Context) ([]*models.SyncConflict, error) {
	return s.listConflicts(ctx, `
		SELECT id, entity_type, entity_id, local_data, server_data,
		       local_timestamp, server_timestamp, resolved, created_at, detected_at
		FROM conflicts
		WHERE resolved = 0
		ORDER BY created_at ASC
	`)
}

func (s *Storage) listConflicts(ctx context.Context, query string) ([]*models.SyncConflict, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list conflicts: %w", err)
	}
	defer rows.Close()

	var conflicts []*models.SyncConflict
	for rows.Next() {
		c, err := scanConflict(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conflict: %w", err)
		}
		conflicts = append(conflicts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return conflicts, nil
}

// CountUnresolvedConflicts returns the number of unresolved conflicts
// using the idx_conflicts_resolved index.
func (s *Storage) CountUnresolvedConflicts(ctx context.Context) (int, error) {
	var count int

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM conflicts WHERE resolved = 0`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count conflicts: %w", err)
	}

	return count, nil
}

// ClearConflicts removes every conflict record
func (s *Storage) ClearConflicts(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM conflicts`); err != nil {
		return fmt.Errorf("failed to clear conflicts: %w", err)
	}
	return nil
}

func scanConflict(row scanner) (*models.SyncConflict, error) {
	c := &models.SyncConflict{}
	var localData, serverData string
	var resolved int

	err := row.Scan(
		&c.ID,
		&c.EntityType,
		&c.EntityID,
		&localData,
		&serverData,
		&c.LocalTimestamp,
		&c.ServerTimestamp,
		&resolved,
		&c.CreatedAt,
		&c.DetectedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Resolved = intToBool(resolved)

	if err := json.Unmarshal([]byte(localData), &c.LocalData); err != nil {
		return nil, fmt.Errorf("failed to unmarshal local data: %w", err)
	}
	if err := json.Unmarshal([]byte(serverData), &c.ServerData); err != nil {
		return nil, fmt.Errorf("failed to unmarshal server data: %w", err)
	}

	return c, nil
}
