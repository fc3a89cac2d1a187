package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vitorsm19/aisel-tech-case-vitor/internal/api/dto"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/auth"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/service"
	apperrors "github.com/vitorsm19/aisel-tech-case-vitor/pkg/util/errorutil"
)

// AuthHandler exposes login and identity endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	res, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.LoginResponse{
		AccessToken: res.Token,
		ExpiresAt:   res.ExpiresAt,
		User:        res.User,
	})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(principal.User.Info())
}
