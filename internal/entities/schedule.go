package entities

import "time"

// ScheduleByCar holds the dates a car cannot be booked for.
type ScheduleByCar struct {
	ID               string   `json:"id"`
	UnavailableDates []string `json:"unavailable_dates"`
	Version          int64    `json:"version,omitempty"`
}

// ScheduleByUserRequest is the body of a reservation write.
type ScheduleByUserRequest struct {
	UserID    int64  `json:"user_id"`
	Car       CarDTO `json:"car"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ScheduleByUser is a stored reservation.
type ScheduleByUser struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Car           CarDTO    `json:"car"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status,omitempty"`
	CheckoutURL   string    `json:"checkout_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Session identifies the user a client acts for.
type Session struct {
	UserID int64
	Token  string
}
