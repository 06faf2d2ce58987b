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

type CarRepository interface {
	List(ctx context.Context) ([]db.Car, error)
	GetByID(ctx context.Context, id string) (*db.Car, error)
	Create(ctx context.Context, car *db.Car) error
	Delete(ctx context.Context, id string) error
}

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) List(ctx context.Context) ([]db.Car, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, brand, name, rent_period, rent_price, accessories, photos, created_at
		FROM cars
		ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("error querying cars: %w", err)
	}
	defer rows.Close()

	cars := []db.Car{}
	for rows.Next() {
		var c db.Car
		if err := rows.Scan(&c.ID, &c.Brand, &c.Name, &c.RentPeriod, &c.RentPrice, &c.Accessories, pq.Array(&c.Photos), &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning car: %w", err)
		}
		cars = append(cars, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating cars: %w", err)
	}
	return cars, nil
}

func (r *carRepository) GetByID(ctx context.Context, id string) (*db.Car, error) {
	var c db.Car
	err := r.db.QueryRowContext(ctx, `
		SELECT id, brand, name, rent_period, rent_price, accessories, photos, created_at
		FROM cars WHERE id = $1`, id).
		Scan(&c.ID, &c.Brand, &c.Name, &c.RentPeriod, &c.RentPrice, &c.Accessories, pq.Array(&c.Photos), &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("car %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error querying car %s: %w", id, err)
	}
	return &c, nil
}

func (r *carRepository) Create(ctx context.Context, car *db.Car) error {
	accessories := car.Accessories
	if len(accessories) == 0 {
		accessories = []byte("[]")
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO cars (id, brand, name, rent_period, rent_price, accessories, photos)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		car.ID, car.Brand, car.Name, car.RentPeriod, car.RentPrice, accessories, pq.Array(car.Photos),
	).Scan(&car.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("car %s: %w", car.ID, apperrors.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("error inserting car: %w", err)
	}
	return nil
}

func (r *carRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting car %s: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error deleting car %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("car %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
