package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"rentx/internal/auth"
	"rentx/internal/db"
	"rentx/internal/entities"
	apperrors "rentx/internal/errors"
	"rentx/internal/repository/mocks"
)

func TestAuthService_Register(t *testing.T) {
	repo := &mocks.UserRepository{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *db.User) bool {
		return u.Email == "ana@example.com" && u.Name == "Ana"
	}), "secret123").Run(func(args mock.Arguments) {
		args.Get(1).(*db.User).ID = 5
	}).Return(nil)

	user, err := NewAuthService(repo, "s", time.Hour).Register(context.Background(), entities.RegisterRequest{
		Name:     " Ana ",
		Email:    "Ana@Example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, &entities.UserResponse{ID: 5, Name: "Ana", Email: "ana@example.com"}, user)
}

func TestAuthService_RegisterAdmin(t *testing.T) {
	repo := &mocks.UserRepository{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *db.User) bool { return u.IsAdmin }), "secret123").Return(nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *db.User) bool { return !u.IsAdmin }), "secret123").Return(nil)
	svc := NewAuthService(repo, "s", time.Hour, " Admin@RentX.test ")

	_, err := svc.Register(context.Background(), entities.RegisterRequest{Name: "Root", Email: "admin@rentx.test", Password: "secret123"})
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), entities.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)

	repo.AssertNumberOfCalls(t, "Create", 2)
	assert.True(t, repo.Calls[0].Arguments.Get(1).(*db.User).IsAdmin)
	assert.False(t, repo.Calls[1].Arguments.Get(1).(*db.User).IsAdmin)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc := NewAuthService(&mocks.UserRepository{}, "s", time.Hour)

	for name, req := range map[string]entities.RegisterRequest{
		"email":    {Name: "Ana", Email: "not-an-email", Password: "secret123"},
		"name":     {Email: "ana@example.com", Password: "secret123"},
		"password": {Name: "Ana", Email: "ana@example.com", Password: "123"},
	} {
		_, err := svc.Register(context.Background(), req)
		assert.Equal(t, 400, apperrors.StatusFor(err), name)
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mocks.UserRepository{}
	repo.On("GetByEmail", mock.Anything, "ana@example.com").
		Return(&db.User{ID: 5, Email: "ana@example.com", PasswordHash: string(hash)}, nil)
	svc := NewAuthService(repo, "s", time.Hour)

	resp, err := svc.Login(context.Background(), "ana@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.UserID)

	claims, err := auth.ParseToken("s", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.UserID)
	assert.False(t, claims.IsAdmin)

	_, err = svc.Login(context.Background(), "ana@example.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	repo := &mocks.UserRepository{}
	repo.On("GetByEmail", mock.Anything, "who@example.com").Return(nil, apperrors.ErrNotFound)

	_, err := NewAuthService(repo, "s", time.Hour).Login(context.Background(), "who@example.com", "x")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
