package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentx/internal/db"
	"rentx/internal/entities"
	apperrors "rentx/internal/errors"
	"rentx/internal/repository/mocks"
)

func TestCarService_ListCars(t *testing.T) {
	repo := &mocks.CarRepository{}
	repo.On("List", mock.Anything).Return([]db.Car{
		{
			ID:          "car-1",
			Brand:       "Audi",
			Name:        "RS 5 Coupé",
			RentPeriod:  "Ao dia",
			RentPrice:   120,
			Accessories: []byte(`[{"type":"speed","name":"235km/h"},{"type":"seats","name":"2 pessoas"}]`),
			Photos:      []string{"https://cdn.test/rs5.png"},
		},
		{ID: "car-2", Brand: "Porsche", Name: "Panamera", RentPeriod: "Ao dia", RentPrice: 340},
	}, nil)

	cars, err := NewCarService(repo).ListCars(context.Background())

	require.NoError(t, err)
	require.Len(t, cars, 2)
	assert.Equal(t, "car-1", cars[0].ID)
	assert.Equal(t, entities.Rent{Period: "Ao dia", Price: 120}, cars[0].Rent)
	assert.Equal(t, []entities.Accessory{{Type: "speed", Name: "235km/h"}, {Type: "seats", Name: "2 pessoas"}}, cars[0].Accessories)
	assert.Equal(t, []string{"https://cdn.test/rs5.png"}, cars[0].Photos)
	assert.Empty(t, cars[1].Accessories)
	assert.NotNil(t, cars[1].Photos)
}

func TestCarService_ListCarsMalformedAccessories(t *testing.T) {
	repo := &mocks.CarRepository{}
	repo.On("List", mock.Anything).Return([]db.Car{{ID: "car-1", Accessories: []byte(`{`)}}, nil)

	_, err := NewCarService(repo).ListCars(context.Background())

	assert.Error(t, err)
}

func TestCarService_CreateCarAssignsID(t *testing.T) {
	repo := &mocks.CarRepository{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *db.Car) bool {
		return c.ID != "" && c.Brand == "Volvo" && c.RentPeriod == "Ao dia" && string(c.Accessories) == `[]`
	})).Return(nil)

	car, err := NewCarService(repo).CreateCar(context.Background(), entities.CarDTO{
		Brand: "Volvo",
		Name:  "XC40",
		Rent:  entities.Rent{Price: 300},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, car.ID)
	assert.Equal(t, "Ao dia", car.Rent.Period)
	repo.AssertExpectations(t)
}

func TestCarService_CreateCarValidation(t *testing.T) {
	svc := NewCarService(&mocks.CarRepository{})

	_, err := svc.CreateCar(context.Background(), entities.CarDTO{Name: "XC40", Rent: entities.Rent{Price: 300}})
	assert.Equal(t, 400, apperrors.StatusFor(err))

	_, err = svc.CreateCar(context.Background(), entities.CarDTO{Brand: "Volvo", Name: "XC40"})
	assert.Equal(t, 400, apperrors.StatusFor(err))
}

func TestCarService_GetCarNotFound(t *testing.T) {
	repo := &mocks.CarRepository{}
	repo.On("GetByID", mock.Anything, "nope").Return(nil, apperrors.ErrNotFound)

	_, err := NewCarService(repo).GetCar(context.Background(), "nope")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
