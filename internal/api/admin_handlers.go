package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentx/internal/entities"
	"rentx/internal/service"
)

// AdminHandler manages the car catalog.
type AdminHandler struct {
	Cars service.CarService
}

func NewAdminHandler(cars service.CarService) *AdminHandler {
	return &AdminHandler{Cars: cars}
}

func (h *AdminHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	var req entities.CarDTO
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "Invalid request body", err)
		return
	}
	car, err := h.Cars.CreateCar(r.Context(), req)
	if err != nil {
		writeError(w, "Could not create car", err)
		return
	}
	writeJSON(w, http.StatusCreated, car)
}

func (h *AdminHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	if err := h.Cars.DeleteCar(r.Context(), mux.Vars(r)["carId"]); err != nil {
		writeError(w, "Could not delete car", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
