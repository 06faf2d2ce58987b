package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	apperrors "rentx/internal/errors"
)

type PaymentRepository interface {
	SetCheckoutSession(ctx context.Context, scheduleID int64, sessionID, checkoutURL, paymentStatus string) error
	UpdatePaymentStatusBySessionID(ctx context.Context, sessionID, paymentStatus string) error
}

type StripeRepository struct {
	DB *sql.DB
}

func NewStripeRepository(db *sql.DB) *StripeRepository {
	return &StripeRepository{DB: db}
}

func (r *StripeRepository) SetCheckoutSession(ctx context.Context, scheduleID int64, sessionID, checkoutURL, paymentStatus string) error {
	query := `
		UPDATE schedules_byuser
		SET
			stripe_session_id = $2,
			checkout_url = $3,
			payment_status = $4,
			updated_at = $5
		WHERE id = $1`

	_, err := r.DB.ExecContext(ctx, query,
		scheduleID,
		sessionID,
		checkoutURL,
		paymentStatus,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("error updating schedule %d with Stripe session: %w", scheduleID, err)
	}
	return nil
}

func (r *StripeRepository) UpdatePaymentStatusBySessionID(ctx context.Context, sessionID, paymentStatus string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE schedules_byuser SET payment_status = $2, updated_at = $3 WHERE stripe_session_id = $1`,
		sessionID, paymentStatus, time.Now())
	if err != nil {
		return fmt.Errorf("error updating payment status for session %s: %w", sessionID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error updating payment status for session %s: %w", sessionID, err)
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", sessionID, apperrors.ErrNotFound)
	}
	return nil
}
