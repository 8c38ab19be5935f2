package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "protrack/internal/errors"
	"protrack/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password, name string) (*model.User, string, error) {
	args := m.Called(ctx, email, password, name)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Profile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAuthHandler_RegisterSuccess(t *testing.T) {
	mockSvc := new(MockAuthService)
	mockSvc.On("Register", mock.Anything, "a@x.com", "secret1", "A").
		Return(&model.User{Email: "a@x.com", Name: "A", Role: model.RoleUser}, "tok", nil)

	h := NewAuthHandler(mockSvc, false)
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"a@x.com","password":"secret1","name":"A"}`, uuid.New())

	assert.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	data := env.Data.(map[string]interface{})
	assert.Equal(t, "tok", data["token"])

	user := data["user"].(map[string]interface{})
	assert.Equal(t, "a@x.com", user["email"])
	// Password hash must never leave the server.
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)
	_, hasHash := user["passwordHash"]
	assert.False(t, hasHash)
}

func TestAuthHandler_RegisterDuplicateEmailIs400(t *testing.T) {
	mockSvc := new(MockAuthService)
	mockSvc.On("Register", mock.Anything, "a@x.com", "secret1", "A").
		Return(nil, "", apperrors.ErrEmailTaken)

	h := NewAuthHandler(mockSvc, false)
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"a@x.com","password":"secret1","name":"A"}`, uuid.New())

	assert.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Email already registered", env.Error)
}

func TestAuthHandler_LoginInvalidCredentialsIs401(t *testing.T) {
	mockSvc := new(MockAuthService)
	mockSvc.On("Login", mock.Anything, "a@x.com", "wrongpass").
		Return(nil, "", apperrors.ErrInvalidCredentials)

	h := NewAuthHandler(mockSvc, false)
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"wrongpass"}`, uuid.New())

	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid email or password", env.Error)
}

func TestAuthHandler_MeReturnsProfile(t *testing.T) {
	userID := uuid.New()

	mockSvc := new(MockAuthService)
	mockSvc.On("Profile", mock.Anything, userID).
		Return(&model.User{ID: userID, Email: "a@x.com", Name: "A", Role: model.RoleUser}, nil)

	h := NewAuthHandler(mockSvc, false)
	c, rec := newTestContext(t, http.MethodGet, "/api/auth/me", "", userID)

	assert.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	data := env.Data.(map[string]interface{})
	assert.Equal(t, "a@x.com", data["email"])
}
