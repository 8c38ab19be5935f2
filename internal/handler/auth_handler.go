package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"protrack/internal/auth"
	"protrack/internal/model"
	"protrack/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	debug       bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, debug bool) *AuthHandler {
	return &AuthHandler{authService: authService, debug: debug}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,max=100"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse carries the authenticated user and their bearer token.
type AuthResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} Envelope{data=AuthResponse}
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondServiceError(c, err, h.debug)
	}

	user, token, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return respondServiceError(c, err, h.debug)
	}

	return respondData(c, http.StatusCreated, AuthResponse{User: user, Token: token})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} Envelope{data=AuthResponse}
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondServiceError(c, err, h.debug)
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondServiceError(c, err, h.debug)
	}

	return respondData(c, http.StatusOK, AuthResponse{User: user, Token: token})
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope{data=model.User}
// @Failure 401 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, err := auth.FromContext(c)
	if err != nil {
		return RespondUnauthorized(c)
	}
	userID, err := claims.ParsedUserID()
	if err != nil {
		return RespondUnauthorized(c)
	}

	user, err := h.authService.Profile(c.Request().Context(), userID)
	if err != nil {
		return respondServiceError(c, err, h.debug)
	}

	return respondData(c, http.StatusOK, user)
}
