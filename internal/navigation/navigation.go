// Package navigation names the screens of the client and carries the typed
// parameters each one needs.
package navigation

import (
	"errors"
	"fmt"
	"sync"

	"rentx/internal/entities"
)

type Route string

const (
	Splash             Route = "Splash"
	Home               Route = "Home"
	MyCars             Route = "MyCars"
	CarDetails         Route = "CarDetails"
	Scheduling         Route = "Scheduling"
	SchedulingDetails  Route = "SchedulingDetails"
	SchedulingComplete Route = "SchedulingComplete"
)

type CarDetailsParams struct {
	Car entities.CarDTO
}

type SchedulingParams struct {
	Car entities.CarDTO
}

type SchedulingDetailsParams struct {
	Car   entities.CarDTO
	Dates []string
}

var (
	ErrUnknownRoute  = errors.New("unknown route")
	ErrInvalidParams = errors.New("invalid route params")
)

// Navigator moves between screens and shows blocking alerts.
type Navigator interface {
	Navigate(route Route, params interface{}) error
	GoBack()
	Alert(message string)
}

// Validate checks that params is what route expects.
func Validate(route Route, params interface{}) error {
	switch route {
	case Splash, Home, MyCars, SchedulingComplete:
		if params != nil {
			return fmt.Errorf("%s takes no params, got %T: %w", route, params, ErrInvalidParams)
		}
	case CarDetails:
		p, ok := params.(CarDetailsParams)
		if !ok || p.Car.ID == "" {
			return fmt.Errorf("%s needs CarDetailsParams with a car: %w", route, ErrInvalidParams)
		}
	case Scheduling:
		p, ok := params.(SchedulingParams)
		if !ok || p.Car.ID == "" {
			return fmt.Errorf("%s needs SchedulingParams with a car: %w", route, ErrInvalidParams)
		}
	case SchedulingDetails:
		p, ok := params.(SchedulingDetailsParams)
		if !ok || p.Car.ID == "" || len(p.Dates) == 0 {
			return fmt.Errorf("%s needs SchedulingDetailsParams with a car and dates: %w", route, ErrInvalidParams)
		}
	default:
		return fmt.Errorf("%q: %w", route, ErrUnknownRoute)
	}
	return nil
}

type Entry struct {
	Route  Route
	Params interface{}
}

// Stack is an in-memory Navigator. Home is the root once reached: going
// there clears the history and GoBack never leaves it.
type Stack struct {
	mu      sync.Mutex
	entries []Entry
	alerts  []string
	onAlert func(string)
}

type StackOption func(*Stack)

// WithAlertHandler is called for every Alert, after it is recorded.
func WithAlertHandler(fn func(message string)) StackOption {
	return func(s *Stack) { s.onAlert = fn }
}

func NewStack(opts ...StackOption) *Stack {
	s := &Stack{entries: []Entry{{Route: Splash}}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Stack) Navigate(route Route, params interface{}) error {
	if err := Validate(route, params); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if route == Home {
		s.entries = s.entries[:0]
	}
	s.entries = append(s.entries, Entry{Route: route, Params: params})
	return nil
}

func (s *Stack) GoBack() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) <= 1 || s.entries[len(s.entries)-1].Route == Home {
		return
	}
	s.entries = s.entries[:len(s.entries)-1]
}

func (s *Stack) Alert(message string) {
	s.mu.Lock()
	s.alerts = append(s.alerts, message)
	fn := s.onAlert
	s.mu.Unlock()
	if fn != nil {
		fn(message)
	}
}

// Current returns the screen on top of the stack.
func (s *Stack) Current() Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[len(s.entries)-1]
}

func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Stack) Alerts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.alerts...)
}
