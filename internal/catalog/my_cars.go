package catalog

import (
	"context"

	"go.uber.org/zap"

	"rentx/internal/entities"
	"rentx/internal/navigation"
)

type ReservationLister interface {
	ListUserSchedules(ctx context.Context, userID int64) ([]entities.ScheduleByUser, error)
}

// MyCars lists the reservations of the session user.
type MyCars struct {
	Reservations []entities.ScheduleByUser
	Loading      bool
	FetchErr     error

	nav navigation.Navigator
}

func LoadMyCars(ctx context.Context, schedules ReservationLister, session entities.Session, nav navigation.Navigator) *MyCars {
	m := &MyCars{Reservations: []entities.ScheduleByUser{}, Loading: true, nav: nav}
	defer func() { m.Loading = false }()

	list, err := schedules.ListUserSchedules(ctx, session.UserID)
	if err != nil {
		zap.S().Errorw("could not fetch reservations", "user_id", session.UserID, "error", err)
		m.FetchErr = err
		return m
	}
	if list != nil {
		m.Reservations = list
	}
	return m
}

func (m *MyCars) Total() int {
	return len(m.Reservations)
}

func (m *MyCars) GoBack() {
	m.nav.GoBack()
}
