package db

import "time"

type Car struct {
	ID          string
	Brand       string
	Name        string
	RentPeriod  string
	RentPrice   int64
	Accessories []byte // jsonb
	Photos      []string
	CreatedAt   time.Time
}

type CarSchedule struct {
	CarID            string
	UnavailableDates []string
	Version          int64
	UpdatedAt        time.Time
}

type UserSchedule struct {
	ID              int64
	UserID          int64
	CarID           string
	CarSnapshot     []byte // jsonb
	StartDate       time.Time
	EndDate         time.Time
	Status          string
	PaymentStatus   string
	StripeSessionID string
	CheckoutURL     string
	IdempotencyKey  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
