package api

import (
	"net/http"

	"rentx/internal/entities"
	"rentx/internal/service"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req entities.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "Invalid request body", err)
		return
	}
	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeError(w, "Could not register user", err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req entities.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, "Invalid request body", err)
		return
	}
	resp, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, "Invalid credentials", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
