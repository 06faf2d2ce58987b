package service

import (
	"encoding/json"
	"fmt"

	"rentx/internal/db"
	"rentx/internal/entities"
	"rentx/internal/utils"
)

func toCarDTO(c db.Car) (entities.CarDTO, error) {
	dto := entities.CarDTO{
		ID:          c.ID,
		Brand:       c.Brand,
		Name:        c.Name,
		Rent:        entities.Rent{Period: c.RentPeriod, Price: c.RentPrice},
		Accessories: []entities.Accessory{},
		Photos:      c.Photos,
	}
	if dto.Photos == nil {
		dto.Photos = []string{}
	}
	if len(c.Accessories) > 0 {
		if err := json.Unmarshal(c.Accessories, &dto.Accessories); err != nil {
			return dto, fmt.Errorf("car %s has malformed accessories: %w", c.ID, err)
		}
	}
	return dto, nil
}

func toCarRow(c entities.CarDTO) (db.Car, error) {
	accessories := c.Accessories
	if accessories == nil {
		accessories = []entities.Accessory{}
	}
	raw, err := json.Marshal(accessories)
	if err != nil {
		return db.Car{}, err
	}
	return db.Car{
		ID:          c.ID,
		Brand:       c.Brand,
		Name:        c.Name,
		RentPeriod:  c.Rent.Period,
		RentPrice:   c.Rent.Price,
		Accessories: raw,
		Photos:      c.Photos,
	}, nil
}

func toScheduleDTO(s db.UserSchedule) (entities.ScheduleByUser, error) {
	dto := entities.ScheduleByUser{
		ID:            s.ID,
		UserID:        s.UserID,
		StartDate:     utils.FormatDate(s.StartDate),
		EndDate:       utils.FormatDate(s.EndDate),
		Status:        s.Status,
		PaymentStatus: s.PaymentStatus,
		CheckoutURL:   s.CheckoutURL,
		CreatedAt:     s.CreatedAt,
	}
	if len(s.CarSnapshot) > 0 {
		if err := json.Unmarshal(s.CarSnapshot, &dto.Car); err != nil {
			return dto, fmt.Errorf("schedule %d has a malformed car snapshot: %w", s.ID, err)
		}
	}
	if dto.Car.ID == "" {
		dto.Car.ID = s.CarID
	}
	return dto, nil
}
