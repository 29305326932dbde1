package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/internlink/internal/api/dto"
	"github.com/spec-kit/internlink/internal/auth"
	"github.com/spec-kit/internlink/internal/service"
	apperrors "github.com/spec-kit/internlink/pkg/util/errorutil"
)

// CandidateHandler manages candidate profile endpoints.
type CandidateHandler struct {
	profiles *service.ProfileService
}

// NewCandidateHandler constructs handler.
func NewCandidateHandler(profileService *service.ProfileService) *CandidateHandler {
	return &CandidateHandler{profiles: profileService}
}

// GetProfile handles GET /candidate/profile.
func (h *CandidateHandler) GetProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewForbidden("authentication required")
	}

	profile, err := h.profiles.GetProfile(c.Context(), principal.User.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(profile)})
}

// SaveProfile handles POST /candidate/profile.
func (h *CandidateHandler) SaveProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewForbidden("authentication required")
	}

	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	saved, err := h.profiles.SaveOrUpdate(c.Context(), principal.User.Email, req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(saved)})
}
