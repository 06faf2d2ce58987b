package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	apperrors "rentx/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Errorw("failed to encode response", "error", err)
	}
}

// writeError reports validation errors with their own message and anything
// else with fallback.
func writeError(w http.ResponseWriter, fallback string, err error) {
	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		apperrors.ErrorStatus(httpErr.Message, httpErr.Code, w, err)
		return
	}
	apperrors.Write(fallback, w, err)
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.ErrBadRequest("Invalid request body")
	}
	return nil
}
