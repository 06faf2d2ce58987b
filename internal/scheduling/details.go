// Package scheduling holds the date picking and reservation confirmation
// screens of the client.
package scheduling

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rentx/internal/entities"
	"rentx/internal/navigation"
	"rentx/internal/utils"
)

// ConfirmFailedMessage is the alert shown when a reservation could not be
// confirmed.
const ConfirmFailedMessage = "Não foi possível confirmar o agendamento."

var ErrConfirmInProgress = errors.New("confirmation already in progress")

// Store is the remote side of the confirmation flow.
type Store interface {
	GetScheduleByCar(ctx context.Context, carID string) (*entities.ScheduleByCar, error)
	CreateUserSchedule(ctx context.Context, req entities.ScheduleByUserRequest, idempotencyKey string) (*entities.ScheduleByUser, error)
	UpdateScheduleByCar(ctx context.Context, schedule entities.ScheduleByCar, version *int64) (*entities.ScheduleByCar, error)
}

type RentalPeriod struct {
	Start string
	End   string
}

// Details is the confirmation screen for a car and the dates picked for it.
type Details struct {
	Car       entities.CarDTO
	Dates     []string
	Period    RentalPeriod
	RentTotal int64

	session        entities.Session
	store          Store
	nav            navigation.Navigator
	idempotencyKey string

	mu      sync.Mutex
	loading bool
}

// NewDetails prepares the confirmation screen. Start and end of the period
// are the first and last picked dates moved one day forward, as dd-MM-yyyy.
func NewDetails(params navigation.SchedulingDetailsParams, session entities.Session, store Store, nav navigation.Navigator) (*Details, error) {
	if err := navigation.Validate(navigation.SchedulingDetails, params); err != nil {
		return nil, err
	}
	start, err := utils.ShiftDate(params.Dates[0], 1)
	if err != nil {
		return nil, err
	}
	end, err := utils.ShiftDate(params.Dates[len(params.Dates)-1], 1)
	if err != nil {
		return nil, err
	}

	return &Details{
		Car:            params.Car,
		Dates:          params.Dates,
		Period:         RentalPeriod{Start: start, End: end},
		RentTotal:      int64(len(params.Dates)) * params.Car.Rent.Price,
		session:        session,
		store:          store,
		nav:            nav,
		idempotencyKey: uuid.NewString(),
	}, nil
}

func (d *Details) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

func (d *Details) GoBack() {
	d.nav.GoBack()
}

// Confirm reads the car's unavailable dates, records the reservation and
// writes the merged dates back, then moves to SchedulingComplete.
//
// A failed read returns its error and leaves the screen as it was. A failed
// write raises ConfirmFailedMessage and clears the loading flag so the user
// can retry. An already recorded reservation is not undone; retrying reuses
// the same idempotency key so it is not recorded twice.
func (d *Details) Confirm(ctx context.Context) error {
	d.mu.Lock()
	if d.loading {
		d.mu.Unlock()
		return ErrConfirmInProgress
	}
	d.loading = true
	d.mu.Unlock()

	existing, err := d.store.GetScheduleByCar(ctx, d.Car.ID)
	if err != nil {
		zap.S().Warnw("could not read car schedule", "car_id", d.Car.ID, "error", err)
		d.setLoading(false)
		return err
	}
	unavailable := MergeUnavailable(existing.UnavailableDates, d.Dates)

	_, err = d.store.CreateUserSchedule(ctx, entities.ScheduleByUserRequest{
		UserID:    d.session.UserID,
		Car:       d.Car,
		StartDate: d.Period.Start,
		EndDate:   d.Period.End,
	}, d.idempotencyKey)
	if err != nil {
		return d.fail("could not create reservation", err)
	}

	version := existing.Version
	_, err = d.store.UpdateScheduleByCar(ctx, entities.ScheduleByCar{ID: d.Car.ID, UnavailableDates: unavailable}, &version)
	if err != nil {
		return d.fail("could not update car schedule", err)
	}

	// loading stays set: the screen is left and must not confirm again.
	return d.nav.Navigate(navigation.SchedulingComplete, nil)
}

func (d *Details) fail(msg string, err error) error {
	zap.S().Errorw(msg, "car_id", d.Car.ID, "user_id", d.session.UserID, "error", err)
	d.setLoading(false)
	d.nav.Alert(ConfirmFailedMessage)
	return err
}

func (d *Details) setLoading(v bool) {
	d.mu.Lock()
	d.loading = v
	d.mu.Unlock()
}

// MergeUnavailable appends selected to existing. Order and duplicates are
// kept.
func MergeUnavailable(existing, selected []string) []string {
	merged := make([]string, 0, len(existing)+len(selected))
	merged = append(merged, existing...)
	return append(merged, selected...)
}
