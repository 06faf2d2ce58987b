package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"rentx/internal/db"
	apperrors "rentx/internal/errors"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*db.User, error)
	GetByID(ctx context.Context, id int64) (*db.User, error)
	Create(ctx context.Context, user *db.User, password string) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*db.User, error) {
	return r.getOne(ctx, "SELECT id, name, email, phone, password_hash, is_admin, created_at FROM users WHERE email = $1", email)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*db.User, error) {
	return r.getOne(ctx, "SELECT id, name, email, phone, password_hash, is_admin, created_at FROM users WHERE id = $1", id)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg interface{}) (*db.User, error) {
	var u db.User
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying user: %w", err)
	}
	return &u, nil
}

// Create hashes password with bcrypt and inserts the user, filling ID and
// CreatedAt.
func (r *userRepository) Create(ctx context.Context, user *db.User, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashedPassword)

	query := `
		INSERT INTO users (name, email, phone, password_hash, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err = r.db.QueryRowContext(ctx, query, user.Name, user.Email, user.Phone, user.PasswordHash, user.IsAdmin).
		Scan(&user.ID, &user.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("email %s already registered: %w", user.Email, apperrors.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("error inserting user: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
