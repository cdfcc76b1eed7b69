package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jengzang/handover-backend-go/internal/database"
	"github.com/jengzang/handover-backend-go/internal/models"
)

// EventRepository handles database operations for the event table
type EventRepository struct {
	db *database.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *database.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Replace swaps the stored table for rows in a single transaction
func (r *EventRepository) Replace(ctx context.Context, rows []models.EventRow, meta models.EventTableMeta) error {
	return r.db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM event_rows"); err != nil {
			return fmt.Errorf("failed to clear event rows: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO event_rows
			(position, code, description, trigger_cond, condition_type, action)
			VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for i, row := range rows {
			if _, err := stmt.ExecContext(ctx, i, row.Code, row.Description,
				row.Trigger, row.ConditionType, row.Action); err != nil {
				return fmt.Errorf("failed to insert event row %d: %w", i, err)
			}
		}

		_, err = tx.ExecContext(ctx, `INSERT INTO event_table_meta (id, source, location, row_count, loaded_at)
			VALUES (1, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				source = excluded.source,
				location = excluded.location,
				row_count = excluded.row_count,
				loaded_at = excluded.loaded_at`,
			string(meta.Source), meta.Location, len(rows), meta.LoadedAt.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("failed to store event table meta: %w", err)
		}
		return nil
	})
}

// List returns the stored rows in their original order
func (r *EventRepository) List(ctx context.Context) ([]models.EventRow, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT code, description, trigger_cond, condition_type, action
		FROM event_rows ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query event rows: %w", err)
	}
	defer rows.Close()

	result := []models.EventRow{}
	for rows.Next() {
		var e models.EventRow
		if err := rows.Scan(&e.Code, &e.Description, &e.Trigger, &e.ConditionType, &e.Action); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// Meta returns the metadata of the stored table; nil when nothing was stored yet
func (r *EventRepository) Meta(ctx context.Context) (*models.EventTableMeta, error) {
	var (
		meta     models.EventTableMeta
		source   string
		loadedAt string
	)
	err := r.db.QueryRowContext(ctx, `SELECT source, location, row_count, loaded_at
		FROM event_table_meta WHERE id = 1`).Scan(&source, &meta.Location, &meta.RowCount, &loadedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event table meta: %w", err)
	}

	meta.Source = models.EventTableSource(source)
	if t, err := time.Parse(time.RFC3339Nano, loadedAt); err == nil {
		meta.LoadedAt = t
	}
	return &meta, nil
}
