package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"rentx/internal/auth"
	"rentx/internal/db"
	"rentx/internal/entities"
	apperrors "rentx/internal/errors"
	"rentx/internal/repository"
	"rentx/internal/utils"
)

type AuthService interface {
	Register(ctx context.Context, req entities.RegisterRequest) (*entities.UserResponse, error)
	Login(ctx context.Context, email, password string) (*entities.LoginResponse, error)
}

type authService struct {
	repo        repository.UserRepository
	secret      string
	tokenTTL    time.Duration
	adminEmails map[string]bool
}

// NewAuthService builds the auth service. Accounts registered with one of
// adminEmails are admins.
func NewAuthService(repo repository.UserRepository, secret string, tokenTTL time.Duration, adminEmails ...string) AuthService {
	admins := make(map[string]bool, len(adminEmails))
	for _, email := range adminEmails {
		admins[strings.ToLower(strings.TrimSpace(email))] = true
	}
	return &authService{repo: repo, secret: secret, tokenTTL: tokenTTL, adminEmails: admins}
}

func (s *authService) Register(ctx context.Context, req entities.RegisterRequest) (*entities.UserResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.ErrBadRequest(err.Error())
	}

	user := &db.User{Name: req.Name, Email: req.Email, Phone: req.Phone, IsAdmin: s.adminEmails[req.Email]}
	if err := s.repo.Create(ctx, user, req.Password); err != nil {
		return nil, err
	}
	return &entities.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email, Phone: user.Phone}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*entities.LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.IssueToken(s.secret, user.ID, user.IsAdmin, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &entities.LoginResponse{Token: token, UserID: user.ID}, nil
}
