package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rentx/internal/accessory"
	"rentx/internal/entities"
	apperrors "rentx/internal/errors"
	"rentx/internal/repository"
	"rentx/internal/utils"
)

type CarService interface {
	ListCars(ctx context.Context) ([]entities.CarDTO, error)
	GetCar(ctx context.Context, id string) (*entities.CarDTO, error)
	CreateCar(ctx context.Context, car entities.CarDTO) (*entities.CarDTO, error)
	DeleteCar(ctx context.Context, id string) error
}

type carService struct {
	repo repository.CarRepository
}

func NewCarService(repo repository.CarRepository) CarService {
	return &carService{repo: repo}
}

func (s *carService) ListCars(ctx context.Context) ([]entities.CarDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	cars := make([]entities.CarDTO, 0, len(rows))
	for _, row := range rows {
		car, err := toCarDTO(row)
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	return cars, nil
}

func (s *carService) GetCar(ctx context.Context, id string) (*entities.CarDTO, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	car, err := toCarDTO(*row)
	if err != nil {
		return nil, err
	}
	return &car, nil
}

// CreateCar validates and stores a car, assigning an id when none is given.
func (s *carService) CreateCar(ctx context.Context, car entities.CarDTO) (*entities.CarDTO, error) {
	car.Brand = strings.TrimSpace(car.Brand)
	car.Name = strings.TrimSpace(car.Name)
	if err := utils.ValidateStruct(car); err != nil {
		return nil, apperrors.ErrBadRequest(err.Error())
	}
	if car.Rent.Period == "" {
		car.Rent.Period = "Ao dia"
	}
	if car.ID == "" {
		car.ID = uuid.NewString()
	}
	for _, a := range car.Accessories {
		if !accessory.Known(a.Type) {
			zap.S().Warnw("car has accessory without a dedicated icon", "car_id", car.ID, "type", a.Type)
		}
	}

	row, err := toCarRow(car)
	if err != nil {
		return nil, fmt.Errorf("error encoding car: %w", err)
	}
	if err := s.repo.Create(ctx, &row); err != nil {
		return nil, err
	}
	created, err := toCarDTO(row)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *carService) DeleteCar(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
