package scheduling

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"rentx/internal/entities"
	"rentx/internal/navigation"
	"rentx/internal/utils"
)

var (
	ErrDateUnavailable = errors.New("date unavailable")
	ErrNoDatesSelected = errors.New("no dates selected")
)

// ScheduleReader reads the unavailable dates of a car.
type ScheduleReader interface {
	GetScheduleByCar(ctx context.Context, carID string) (*entities.ScheduleByCar, error)
}

// Interval lists every day from start to end, both included, as yyyy-MM-dd.
// The bounds may be given in either order.
func Interval(start, end string) ([]string, error) {
	from, err := utils.ParseDate(start)
	if err != nil {
		return nil, err
	}
	to, err := utils.ParseDate(end)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		from, to = to, from
	}

	days := make([]string, 0, utils.DaysInclusive(from, to))
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(utils.CalendarLayout))
	}
	return days, nil
}

// Calendar is the date picking screen of a car.
type Calendar struct {
	Car entities.CarDTO

	nav         navigation.Navigator
	unavailable map[string]bool

	mu     sync.Mutex
	last   string
	marked []string
}

// NewCalendar loads the car's unavailable dates, which can not be picked.
func NewCalendar(ctx context.Context, params navigation.SchedulingParams, store ScheduleReader, nav navigation.Navigator) (*Calendar, error) {
	if err := navigation.Validate(navigation.Scheduling, params); err != nil {
		return nil, err
	}
	schedule, err := store.GetScheduleByCar(ctx, params.Car.ID)
	if err != nil {
		return nil, err
	}

	unavailable := make(map[string]bool, len(schedule.UnavailableDates))
	for _, raw := range schedule.UnavailableDates {
		d, err := utils.ParseDate(raw)
		if err != nil {
			continue
		}
		unavailable[d.Format(utils.CalendarLayout)] = true
	}
	return &Calendar{Car: params.Car, nav: nav, unavailable: unavailable}, nil
}

// Unavailable reports whether day is already booked.
func (c *Calendar) Unavailable(day string) bool {
	d, err := utils.ParseDate(day)
	if err != nil {
		return false
	}
	return c.unavailable[d.Format(utils.CalendarLayout)]
}

// Select picks a day. The interval runs from the previously picked day, or
// from this one on the first pick, to this day. A range touching a booked
// day is rejected and the previous selection kept.
func (c *Calendar) Select(day string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := c.last
	if start == "" {
		start = day
	}
	days, err := Interval(start, day)
	if err != nil {
		return err
	}
	for _, d := range days {
		if c.unavailable[d] {
			return fmt.Errorf("%s: %w", d, ErrDateUnavailable)
		}
	}

	c.last = day
	c.marked = days
	return nil
}

// Marked returns the picked days in order.
func (c *Calendar) Marked() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.marked...)
}

// Period renders the first and last picked day as dd-MM-yyyy.
func (c *Calendar) Period() RentalPeriod {
	marked := c.Marked()
	if len(marked) == 0 {
		return RentalPeriod{}
	}
	start, _ := utils.ParseDate(marked[0])
	end, _ := utils.ParseDate(marked[len(marked)-1])
	return RentalPeriod{Start: utils.FormatDate(start), End: utils.FormatDate(end)}
}

// Confirm moves to SchedulingDetails with the picked days.
func (c *Calendar) Confirm() error {
	marked := c.Marked()
	if len(marked) == 0 {
		return ErrNoDatesSelected
	}
	return c.nav.Navigate(navigation.SchedulingDetails, navigation.SchedulingDetailsParams{Car: c.Car, Dates: marked})
}
