package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/internlink/internal/api/dto"
	"github.com/spec-kit/internlink/internal/service"
	apperrors "github.com/spec-kit/internlink/pkg/util/errorutil"
)

// AuthHandler exposes signup and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" || req.UserType == "" {
		return apperrors.NewValidationError("fullName, email, password, userType required", nil)
	}

	user, err := h.auth.Signup(c.Context(), service.SignupInput{
		FullName:     req.FullName,
		Email:        req.Email,
		Password:     req.Password,
		Organization: req.Organization,
		Phone:        req.Phone,
		UserType:     req.UserType,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.UserResponse{
				ID:           user.ID,
				FullName:     user.FullName,
				Email:        user.Email,
				Organization: user.Organization,
				Phone:        user.Phone,
				Role:         string(user.Role),
				CreatedAt:    user.CreatedAt,
			},
			"message": "signup successful",
		},
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" || req.UserType == "" {
		return apperrors.NewValidationError("email, password, userType required", nil)
	}

	token, err := h.auth.Login(c.Context(), req.Email, req.Password, req.UserType)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.AuthResponse{
			Token:     token.Value,
			Role:      string(token.Role),
			ExpiresAt: token.ExpiresAt,
		},
	})
}
