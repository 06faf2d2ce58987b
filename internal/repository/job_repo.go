package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type JobRepository interface {
	GetActiveScheduleIDsPastEndDate(ctx context.Context) ([]int64, error)
	UpdateScheduleStatuses(ctx context.Context, ids []int64, newStatus string) error
}

type jobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) JobRepository {
	return &jobRepository{db: db}
}

// GetActiveScheduleIDsPastEndDate returns active reservations whose last day is over.
func (r *jobRepository) GetActiveScheduleIDsPastEndDate(ctx context.Context) ([]int64, error) {
	query := `SELECT id FROM schedules_byuser WHERE status = 'active' AND end_date < CURRENT_DATE`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying active schedules past end date: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning schedule ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

func (r *jobRepository) UpdateScheduleStatuses(ctx context.Context, ids []int64, newStatus string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE schedules_byuser SET status = $1, updated_at = NOW() WHERE id = ANY($2)`
	result, err := r.db.ExecContext(ctx, query, newStatus, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error updating schedule statuses: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		zap.S().Warnw("could not get rows affected", "error", err)
	} else {
		zap.S().Infow("updated schedule statuses", "count", rowsAffected, "status", newStatus)
	}
	return nil
}
