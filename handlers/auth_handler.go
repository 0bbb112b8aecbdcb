package handlers

import (
	"errors"
	"strings"

	"SuratMutasi/dto"
	"SuratMutasi/middleware"
	"SuratMutasi/models"
	"SuratMutasi/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db *gorm.DB
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{db: db}
}

// Login - POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "validation error", validationErrors)
	}

	var user models.User
	if err := h.db.Where("email = ?", strings.TrimSpace(req.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid email or password", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve user", err.Error())
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid email or password", nil)
	}

	if !user.Verified {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "account is not verified", nil)
	}

	accessToken, claims, err := utils.GenerateAccessToken(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to generate access token", nil)
	}

	refreshToken, _, err := utils.GenerateRefreshToken(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to generate refresh token", nil)
	}

	response := dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    claims.ExpiresAt.Time,
		User:         dto.NewUserSummary(user),
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "login successful", response)
}

// Refresh - POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	claims, err := utils.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid or expired refresh token", nil)
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", claims.UserID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "user no longer exists", nil)
	}

	accessToken, newClaims, err := utils.GenerateAccessToken(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to generate access token", nil)
	}

	response := dto.RefreshTokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   newClaims.ExpiresAt.Time,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "token refreshed successfully", response)
}

// Me - GET /api/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "authorization context missing", nil)
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve user", err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "user retrieved successfully", dto.NewUserSummary(user))
}
