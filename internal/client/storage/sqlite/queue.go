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

// SaveMutation creates or updates a queued mutation.
// The AUTOINCREMENT seq column preserves insertion order across updates.
func (s *Storage) SaveMutation(ctx context.Context, m *models.PendingMutation) error {
	payload, err := json.Marshal(m.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	query := `
		INSERT INTO sync_queue (
			id, entity_type, entity_id, operation, payload,
			status, retry_count, created_at, timestamp
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			entity_type = excluded.entity_type,
			entity_id = excluded.entity_id,
			operation = excluded.operation,
			payload = excluded.payload,
			status = excluded.status,
			retry_count = excluded.retry_count,
			timestamp = excluded.timestamp
	`

	_, err = s.db.ExecContext(ctx, query,
		m.ID,
		m.EntityType,
		m.EntityID,
		string(m.Operation),
		string(payload),
		string(m.Status),
		m.RetryCount,
		m.CreatedAt,
		m.Timestamp,
	)

	if err != nil {
		return fmt.Errorf("failed to save mutation: %w", err)
	}

	return nil
}

// GetMutation retrieves a queued mutation by ID
func (s *Storage) GetMutation(ctx context.Context, id string) (*models.PendingMutation, error) {
	query := `
		SELECT id, entity_type, entity_id, operation, payload,
		       status, retry_count, created_at, timestamp
		FROM sync_queue
		WHERE id = ?
	`

	m, err := scanMutation(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrMutationNotFound
		}
		return nil, fmt.Errorf("failed to get mutation: %w", err)
	}

	return m, nil
}

// ListMutations returns all queued mutations in insertion order
func (s *Storage) ListMutations(ctx context.Context) ([]*models.PendingMutation, error) {
	query := `
		SELECT id, entity_type, entity_id, operation, payload,
		       status, retry_count, created_at, timestamp
		FROM sync_queue
		ORDER BY seq ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list mutations: %w", err)
	}
	defer rows.Close()

	var mutations []*models.PendingMutation
	for rows.Next() {
		m, err := scanMutation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mutation: %w", err)
		}
		mutations = append(mutations, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return mutations, nil
}

// DeleteMutation removes a queued mutation by ID.
// Deleting a missing mutation is a no-op.
func (s *Storage) DeleteMutation(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sync_queue WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete mutation: %w", err)
	}
	return nil
}

// ClearMutations removes every queued mutation
func (s *Storage) ClearMutations(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sync_queue`); err != nil {
		return fmt.Errorf("failed to clear mutations: %w", err)
	}
	return nil
}

// CountMutationsByStatus returns the number of mutations with the given
// status using the idx_sync_queue_status index.
func (s *Storage) CountMutationsByStatus(ctx context.Context, status models.MutationStatus) (int, error) {
	var count int

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sync_queue WHERE status = ?`, string(status),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count mutations: %w", err)
	}

	return count, nil
}

// scanner объединяет *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanMutation(row scanner) (*models.PendingMutation, error) {
	m := &models.PendingMutation{}
	var operation, payload, status string

	err := row.Scan(
		&m.ID,
		&m.EntityType,
		&m.EntityID,
		&operation,
		&payload,
		&status,
		&m.RetryCount,
		&m.CreatedAt,
		&m.Timestamp,
	)
	if err != nil {
		return nil, err
	}

	m.Operation = models.MutationOperation(operation)
	m.Status = models.MutationStatus(status)

	if err := json.Unmarshal([]byte(payload), &m.Payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return m, nil
}
