// Package catalog holds the car listing screens of the client.
package catalog

import (
	"context"

	"go.uber.org/zap"

	"rentx/internal/entities"
	"rentx/internal/navigation"
)

type CarLister interface {
	ListCars(ctx context.Context) ([]entities.CarDTO, error)
}

// Home is the car listing screen. A failed fetch leaves Cars empty and is
// reported through FetchErr only.
type Home struct {
	Cars     []entities.CarDTO
	Loading  bool
	FetchErr error

	nav navigation.Navigator
}

func LoadHome(ctx context.Context, cars CarLister, nav navigation.Navigator) *Home {
	h := &Home{Cars: []entities.CarDTO{}, Loading: true, nav: nav}
	defer func() { h.Loading = false }()

	list, err := cars.ListCars(ctx)
	if err != nil {
		zap.S().Errorw("could not fetch cars", "error", err)
		h.FetchErr = err
		return h
	}
	if list != nil {
		h.Cars = list
	}
	return h
}

func (h *Home) TotalCars() int {
	return len(h.Cars)
}

func (h *Home) OpenCar(car entities.CarDTO) error {
	return h.nav.Navigate(navigation.CarDetails, navigation.CarDetailsParams{Car: car})
}

func (h *Home) OpenMyCars() error {
	return h.nav.Navigate(navigation.MyCars, nil)
}
