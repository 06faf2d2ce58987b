package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"rentx/internal/db"
	apperrors "rentx/internal/errors"
)

type ScheduleRepository interface {
	GetByCar(ctx context.Context, carID string) (*db.CarSchedule, error)
	// SaveByCar replaces the unavailable dates of a car and returns the new
	// version. When ifVersion is set the write only happens if the stored
	// version still matches; 0 means "no record yet".
	SaveByCar(ctx context.Context, carID string, dates []string, ifVersion *int64) (int64, error)
	CreateUserSchedule(ctx context.Context, s *db.UserSchedule) error
	GetUserSchedule(ctx context.Context, id int64) (*db.UserSchedule, error)
	GetUserScheduleByKey(ctx context.Context, key string) (*db.UserSchedule, error)
	ListUserSchedules(ctx context.Context, userID int64) ([]db.UserSchedule, error)
}

type scheduleRepository struct {
	db *sql.DB
}

func NewScheduleRepository(db *sql.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

const userScheduleColumns = `id, user_id, car_id, car, start_date, end_date, status, payment_status,
	stripe_session_id, checkout_url, COALESCE(idempotency_key, ''), created_at, updated_at`

func (r *scheduleRepository) GetByCar(ctx context.Context, carID string) (*db.CarSchedule, error) {
	s := db.CarSchedule{CarID: carID}
	err := r.db.QueryRowContext(ctx,
		`SELECT unavailable_dates, version, updated_at FROM schedules_bycars WHERE car_id = $1`, carID).
		Scan(pq.Array(&s.UnavailableDates), &s.Version, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("schedule for car %s: %w", carID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error querying schedule for car %s: %w", carID, err)
	}
	return &s, nil
}

func (r *scheduleRepository) SaveByCar(ctx context.Context, carID string, dates []string, ifVersion *int64) (int64, error) {
	if dates == nil {
		dates = []string{}
	}

	var (
		query string
		args  []interface{}
	)
	switch {
	case ifVersion == nil:
		query = `
			INSERT INTO schedules_bycars (car_id, unavailable_dates, version, updated_at)
			VALUES ($1, $2, 1, NOW())
			ON CONFLICT (car_id) DO UPDATE
			SET unavailable_dates = EXCLUDED.unavailable_dates,
				version = schedules_bycars.version + 1,
				updated_at = NOW()
			RETURNING version`
		args = []interface{}{carID, pq.Array(dates)}
	case *ifVersion == 0:
		query = `
			INSERT INTO schedules_bycars (car_id, unavailable_dates, version, updated_at)
			VALUES ($1, $2, 1, NOW())
			ON CONFLICT (car_id) DO NOTHING
			RETURNING version`
		args = []interface{}{carID, pq.Array(dates)}
	default:
		query = `
			UPDATE schedules_bycars
			SET unavailable_dates = $2, version = version + 1, updated_at = NOW()
			WHERE car_id = $1 AND version = $3
			RETURNING version`
		args = []interface{}{carID, pq.Array(dates), *ifVersion}
	}

	var version int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) && ifVersion != nil {
			return 0, fmt.Errorf("schedule for car %s changed since version %d: %w", carID, *ifVersion, apperrors.ErrConflict)
		}
		return 0, fmt.Errorf("error saving schedule for car %s: %w", carID, err)
	}
	return version, nil
}

func (r *scheduleRepository) CreateUserSchedule(ctx context.Context, s *db.UserSchedule) error {
	key := sql.NullString{String: s.IdempotencyKey, Valid: s.IdempotencyKey != ""}
	query := `
		INSERT INTO schedules_byuser
		(user_id, car_id, car, start_date, end_date, status, payment_status, idempotency_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		s.UserID,
		s.CarID,
		s.CarSnapshot,
		s.StartDate,
		s.EndDate,
		s.Status,
		s.PaymentStatus,
		key,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("idempotency key %s already used: %w", s.IdempotencyKey, apperrors.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("error inserting user schedule: %w", err)
	}
	return nil
}

func (r *scheduleRepository) GetUserSchedule(ctx context.Context, id int64) (*db.UserSchedule, error) {
	return r.getUserSchedule(ctx, `SELECT `+userScheduleColumns+` FROM schedules_byuser WHERE id = $1`, id)
}

func (r *scheduleRepository) GetUserScheduleByKey(ctx context.Context, key string) (*db.UserSchedule, error) {
	return r.getUserSchedule(ctx, `SELECT `+userScheduleColumns+` FROM schedules_byuser WHERE idempotency_key = $1`, key)
}

func (r *scheduleRepository) getUserSchedule(ctx context.Context, query string, arg interface{}) (*db.UserSchedule, error) {
	row := r.db.QueryRowContext(ctx, query, arg)
	s, err := scanUserSchedule(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user schedule %v: %w", arg, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error querying user schedule %v: %w", arg, err)
	}
	return s, nil
}

func (r *scheduleRepository) ListUserSchedules(ctx context.Context, userID int64) ([]db.UserSchedule, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userScheduleColumns+` FROM schedules_byuser WHERE user_id = $1 ORDER BY start_date DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying schedules of user %d: %w", userID, err)
	}
	defer rows.Close()

	schedules := []db.UserSchedule{}
	for rows.Next() {
		s, err := scanUserSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user schedule: %w", err)
		}
		schedules = append(schedules, *s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating user schedules: %w", err)
	}
	return schedules, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUserSchedule(row rowScanner) (*db.UserSchedule, error) {
	var s db.UserSchedule
	err := row.Scan(
		&s.ID, &s.UserID, &s.CarID, &s.CarSnapshot, &s.StartDate, &s.EndDate, &s.Status, &s.PaymentStatus,
		&s.StripeSessionID, &s.CheckoutURL, &s.IdempotencyKey, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
