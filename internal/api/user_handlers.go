package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"rentx/internal/auth"
	"rentx/internal/entities"
	apperrors "rentx/internal/errors"
	"rentx/internal/service"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	ifMatchHeader        = "If-Match"
	etagHeader           = "ETag"
)

// UserScheduleHandler serves the catalog and the reservation endpoints.
type UserScheduleHandler struct {
	Cars      service.CarService
	Schedules service.ScheduleService
}

func NewUserScheduleHandler(cars service.CarService, schedules service.ScheduleService) *UserScheduleHandler {
	return &UserScheduleHandler{Cars: cars, Schedules: schedules}
}

func (h *UserScheduleHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := h.Cars.ListCars(r.Context())
	if err != nil {
		writeError(w, "Could not list cars", err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *UserScheduleHandler) GetCar(w http.ResponseWriter, r *http.Request) {
	car, err := h.Cars.GetCar(r.Context(), mux.Vars(r)["carId"])
	if err != nil {
		writeError(w, "Car not found", err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *UserScheduleHandler) GetScheduleByCar(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.Schedules.GetByCar(r.Context(), mux.Vars(r)["carId"])
	if err != nil {
		writeError(w, "Could not get car schedule", err)
		return
	}
	w.Header().Set(etagHeader, formatVersion(schedule.Version))
	writeJSON(w, http.StatusOK, schedule)
}

// UpdateScheduleByCar replaces the unavailable dates of a car. With an
// If-Match header the write only succeeds when the stored version matches.
func (h *UserScheduleHandler) UpdateScheduleByCar(w http.ResponseWriter, r *http.Request) {
	ifVersion, err := parseVersion(r.Header.Get(ifMatchHeader))
	if err != nil {
		writeError(w, "Invalid If-Match header", err)
		return
	}
	var req entities.ScheduleByCar
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "Invalid request body", err)
		return
	}

	schedule, err := h.Schedules.UpdateByCar(r.Context(), mux.Vars(r)["carId"], req, ifVersion)
	if err != nil {
		writeError(w, "Could not update car schedule, it may have changed", err)
		return
	}
	w.Header().Set(etagHeader, formatVersion(schedule.Version))
	writeJSON(w, http.StatusOK, schedule)
}

// CreateUserSchedule records a reservation for the authenticated user.
// Replaying an Idempotency-Key answers 200 with the original reservation.
func (h *UserScheduleHandler) CreateUserSchedule(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		apperrors.ErrorStatus("Unauthorized", http.StatusUnauthorized, w, apperrors.ErrUnauthorized("missing claims"))
		return
	}
	var req entities.ScheduleByUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "Invalid request body", err)
		return
	}

	schedule, created, err := h.Schedules.CreateUserSchedule(r.Context(), claims.UserID, req, strings.TrimSpace(r.Header.Get(idempotencyKeyHeader)))
	if err != nil {
		writeError(w, "Could not create reservation", err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, schedule)
}

// ListUserSchedules lists reservations of the user_id query parameter, which
// defaults to the caller. Only admins may list other users.
func (h *UserScheduleHandler) ListUserSchedules(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		apperrors.ErrorStatus("Unauthorized", http.StatusUnauthorized, w, apperrors.ErrUnauthorized("missing claims"))
		return
	}

	userID := claims.UserID
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, "Invalid user_id", apperrors.ErrBadRequest("Invalid user_id"))
			return
		}
		userID = id
	}
	if userID != claims.UserID && !claims.IsAdmin {
		apperrors.ErrorStatus("Forbidden", http.StatusForbidden, w, fmt.Errorf("user %d asked for reservations of user %d", claims.UserID, userID))
		return
	}

	schedules, err := h.Schedules.ListUserSchedules(r.Context(), userID)
	if err != nil {
		writeError(w, "Could not list reservations", err)
		return
	}
	writeJSON(w, http.StatusOK, schedules)
}

func formatVersion(v int64) string {
	return strconv.Quote(strconv.FormatInt(v, 10))
}

// parseVersion reads an If-Match value such as "3", W/"3" or 3. An empty
// header means no precondition.
func parseVersion(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "*" {
		return nil, nil
	}
	raw = strings.Trim(strings.TrimPrefix(raw, "W/"), `"`)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return nil, apperrors.ErrBadRequest("If-Match must be a schedule version")
	}
	return &v, nil
}
