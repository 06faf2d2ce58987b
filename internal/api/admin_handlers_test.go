package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentx/internal/entities"
	apperrors "rentx/internal/errors"
	"rentx/internal/service/mocks"
)

func TestAdminHandler_CreateCar(t *testing.T) {
	cars := &mocks.CarService{}
	cars.On("CreateCar", mock.Anything, mock.MatchedBy(func(c entities.CarDTO) bool {
		return c.Brand == "Audi" && c.Rent.Price == 120
	})).Return(&entities.CarDTO{ID: "new", Brand: "Audi", Name: "RS 5", Rent: entities.Rent{Period: "Ao dia", Price: 120}}, nil)

	rr := httptest.NewRecorder()
	NewAdminHandler(cars).CreateCar(rr, httptest.NewRequest("POST", "/admin/cars",
		strings.NewReader(`{"brand":"Audi","name":"RS 5","rent":{"price":120}}`)))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":"new"`)
}

func TestAdminHandler_CreateCarValidation(t *testing.T) {
	cars := &mocks.CarService{}
	cars.On("CreateCar", mock.Anything, mock.Anything).Return(nil, apperrors.ErrBadRequest("brand and name are required"))

	rr := httptest.NewRecorder()
	NewAdminHandler(cars).CreateCar(rr, httptest.NewRequest("POST", "/admin/cars", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"response":"brand and name are required"}`, rr.Body.String())
}

func TestAdminHandler_DeleteCar(t *testing.T) {
	cars := &mocks.CarService{}
	cars.On("DeleteCar", mock.Anything, "car-1").Return(nil)
	cars.On("DeleteCar", mock.Anything, "gone").Return(apperrors.ErrNotFound)
	h := NewAdminHandler(cars)

	rr := httptest.NewRecorder()
	h.DeleteCar(rr, mux.SetURLVars(httptest.NewRequest("DELETE", "/admin/cars/car-1", nil), map[string]string{"carId": "car-1"}))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	h.DeleteCar(rr, mux.SetURLVars(httptest.NewRequest("DELETE", "/admin/cars/gone", nil), map[string]string{"carId": "gone"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
