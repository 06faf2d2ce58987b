package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusFor(fmt.Errorf("car 1: %w", ErrNotFound)))
	assert.Equal(t, http.StatusConflict, StatusFor(ErrConflict))
	assert.Equal(t, http.StatusUnauthorized, StatusFor(ErrInvalidCredentials))
	assert.Equal(t, http.StatusBadRequest, StatusFor(fmt.Errorf("wrap: %w", ErrBadRequest("bad dates"))))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(fmt.Errorf("boom")))
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()

	ErrorStatus("failed to get cars", http.StatusBadGateway, rr, fmt.Errorf("db down"))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	var body Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "failed to get cars", body.Response)
}
