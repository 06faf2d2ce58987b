package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"rentx/internal/db"
	"rentx/internal/entities"
	apperrors "rentx/internal/errors"
	"rentx/internal/repository"
	"rentx/internal/utils"
)

const (
	StatusActive   = "active"
	StatusFinished = "finished"

	paymentPending = "pending"
	paymentPaid    = "paid"
)

type ScheduleService interface {
	GetByCar(ctx context.Context, carID string) (*entities.ScheduleByCar, error)
	UpdateByCar(ctx context.Context, carID string, req entities.ScheduleByCar, ifVersion *int64) (*entities.ScheduleByCar, error)
	// CreateUserSchedule stores a reservation for userID. The returned bool is
	// false when idempotencyKey matched an earlier reservation, which is
	// returned instead of creating a new one.
	CreateUserSchedule(ctx context.Context, userID int64, req entities.ScheduleByUserRequest, idempotencyKey string) (*entities.ScheduleByUser, bool, error)
	ListUserSchedules(ctx context.Context, userID int64) ([]entities.ScheduleByUser, error)
	MarkPaidBySession(ctx context.Context, sessionID string) error
}

// CheckoutProvider opens a hosted payment page for a reservation.
type CheckoutProvider interface {
	CreateCheckoutSession(amount int64, description, customerEmail string) (url string, sessionID string, err error)
}

type scheduleService struct {
	repo     repository.ScheduleRepository
	cars     repository.CarRepository
	users    repository.UserRepository
	keys     repository.IdempotencyStore
	payments repository.PaymentRepository
	checkout CheckoutProvider
	notifier Notifier
}

// NewScheduleService builds the schedule service. keys, checkout and notifier
// may be nil, which disables the matching feature.
func NewScheduleService(
	repo repository.ScheduleRepository,
	cars repository.CarRepository,
	users repository.UserRepository,
	keys repository.IdempotencyStore,
	payments repository.PaymentRepository,
	checkout CheckoutProvider,
	notifier Notifier,
) ScheduleService {
	return &scheduleService{
		repo:     repo,
		cars:     cars,
		users:    users,
		keys:     keys,
		payments: payments,
		checkout: checkout,
		notifier: notifier,
	}
}

// GetByCar returns the unavailable dates of a car. A car nobody booked yet
// has an empty list and version 0.
func (s *scheduleService) GetByCar(ctx context.Context, carID string) (*entities.ScheduleByCar, error) {
	row, err := s.repo.GetByCar(ctx, carID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return &entities.ScheduleByCar{ID: carID, UnavailableDates: []string{}}, nil
	}
	if err != nil {
		return nil, err
	}
	dates := row.UnavailableDates
	if dates == nil {
		dates = []string{}
	}
	return &entities.ScheduleByCar{ID: carID, UnavailableDates: dates, Version: row.Version}, nil
}

// UpdateByCar replaces the unavailable dates. Dates are stored as sent,
// duplicates included, but each one must be a parseable date.
func (s *scheduleService) UpdateByCar(ctx context.Context, carID string, req entities.ScheduleByCar, ifVersion *int64) (*entities.ScheduleByCar, error) {
	if req.ID != "" && req.ID != carID {
		return nil, apperrors.ErrBadRequest(fmt.Sprintf("body id %q does not match car %q", req.ID, carID))
	}
	for _, d := range req.UnavailableDates {
		if _, err := utils.ParseDate(d); err != nil {
			return nil, apperrors.ErrBadRequest(err.Error())
		}
	}

	version, err := s.repo.SaveByCar(ctx, carID, req.UnavailableDates, ifVersion)
	if err != nil {
		return nil, err
	}
	dates := req.UnavailableDates
	if dates == nil {
		dates = []string{}
	}
	return &entities.ScheduleByCar{ID: carID, UnavailableDates: dates, Version: version}, nil
}

func (s *scheduleService) CreateUserSchedule(ctx context.Context, userID int64, req entities.ScheduleByUserRequest, idempotencyKey string) (*entities.ScheduleByUser, bool, error) {
	if req.Car.ID == "" {
		return nil, false, apperrors.ErrBadRequest("car id is required")
	}
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, false, apperrors.ErrBadRequest("invalid startDate: " + err.Error())
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, false, apperrors.ErrBadRequest("invalid endDate: " + err.Error())
	}
	if end.Before(start) {
		return nil, false, apperrors.ErrBadRequest("endDate is before startDate")
	}
	if req.UserID != 0 && req.UserID != userID {
		zap.S().Warnw("reservation body names another user, using the authenticated one",
			"body_user_id", req.UserID, "user_id", userID)
	}

	if idempotencyKey != "" {
		existing, err := s.lookupKey(ctx, userID, idempotencyKey)
		if err != nil || existing != nil {
			return existing, false, err
		}
	}

	car, err := s.cars.GetByID(ctx, req.Car.ID)
	if err != nil {
		return nil, false, err
	}

	snapshot, err := json.Marshal(req.Car)
	if err != nil {
		return nil, false, fmt.Errorf("error encoding car snapshot: %w", err)
	}
	row := &db.UserSchedule{
		UserID:         userID,
		CarID:          req.Car.ID,
		CarSnapshot:    snapshot,
		StartDate:      start,
		EndDate:        end,
		Status:         StatusActive,
		IdempotencyKey: idempotencyKey,
	}
	if err := s.repo.CreateUserSchedule(ctx, row); err != nil {
		if idempotencyKey != "" && errors.Is(err, apperrors.ErrConflict) {
			// Lost a race against a concurrent request with the same key.
			existing, lookupErr := s.repo.GetUserScheduleByKey(ctx, idempotencyKey)
			if lookupErr != nil {
				return nil, false, lookupErr
			}
			dto, convErr := s.ownedSchedule(userID, *existing)
			return dto, false, convErr
		}
		zap.S().Errorw("error creating user schedule", "user_id", userID, "car_id", req.Car.ID, "error", err)
		return nil, false, err
	}

	if s.keys != nil && idempotencyKey != "" {
		if err := s.keys.Remember(ctx, idempotencyKey, row.ID); err != nil {
			zap.S().Warnw("could not cache idempotency key", "key", idempotencyKey, "error", err)
		}
	}

	dto, err := toScheduleDTO(*row)
	if err != nil {
		return nil, false, err
	}

	total := int64(utils.DaysInclusive(start, end)) * car.RentPrice
	s.afterCreate(ctx, userID, &dto, total)
	return &dto, true, nil
}

func (s *scheduleService) lookupKey(ctx context.Context, userID int64, key string) (*entities.ScheduleByUser, error) {
	if s.keys != nil {
		id, ok, err := s.keys.Lookup(ctx, key)
		if err != nil {
			zap.S().Warnw("idempotency cache unavailable, falling back to database", "key", key, "error", err)
		} else if ok {
			row, err := s.repo.GetUserSchedule(ctx, id)
			if err != nil {
				return nil, err
			}
			return s.ownedSchedule(userID, *row)
		}
	}

	row, err := s.repo.GetUserScheduleByKey(ctx, key)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.ownedSchedule(userID, *row)
}

func (s *scheduleService) ownedSchedule(userID int64, row db.UserSchedule) (*entities.ScheduleByUser, error) {
	if row.UserID != userID {
		return nil, fmt.Errorf("idempotency key belongs to another user: %w", apperrors.ErrConflict)
	}
	dto, err := toScheduleDTO(row)
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// afterCreate opens the checkout session and sends notifications. Failures
// are logged and never undo the reservation.
func (s *scheduleService) afterCreate(ctx context.Context, userID int64, dto *entities.ScheduleByUser, total int64) {
	if s.checkout == nil && s.notifier == nil {
		return
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		zap.S().Errorw("could not load user after reservation", "user_id", userID, "schedule_id", dto.ID, "error", err)
		return
	}

	if s.checkout != nil && total > 0 {
		description := fmt.Sprintf("RentX #%d %s %s (%s - %s)", dto.ID, dto.Car.Brand, dto.Car.Name, dto.StartDate, dto.EndDate)
		url, sessionID, err := s.checkout.CreateCheckoutSession(total*100, description, user.Email)
		if err != nil {
			zap.S().Errorw("could not create checkout session", "schedule_id", dto.ID, "error", err)
		} else if err := s.payments.SetCheckoutSession(ctx, dto.ID, sessionID, url, paymentPending); err != nil {
			zap.S().Errorw("could not store checkout session", "schedule_id", dto.ID, "session_id", sessionID, "error", err)
		} else {
			dto.CheckoutURL = url
			dto.PaymentStatus = paymentPending
		}
	}

	if s.notifier != nil {
		s.notifier.NotifyScheduleCreated(entities.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
		}, *dto, total)
	}
}

func (s *scheduleService) ListUserSchedules(ctx context.Context, userID int64) ([]entities.ScheduleByUser, error) {
	rows, err := s.repo.ListUserSchedules(ctx, userID)
	if err != nil {
		return nil, err
	}
	schedules := make([]entities.ScheduleByUser, 0, len(rows))
	for _, row := range rows {
		dto, err := toScheduleDTO(row)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, dto)
	}
	return schedules, nil
}

func (s *scheduleService) MarkPaidBySession(ctx context.Context, sessionID string) error {
	if s.payments == nil {
		return errors.New("payments are not configured")
	}
	return s.payments.UpdatePaymentStatusBySessionID(ctx, sessionID, paymentPaid)
}
