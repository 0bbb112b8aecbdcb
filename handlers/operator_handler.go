package handlers

import (
	"errors"
	"strconv"
	"strings"

	"SuratMutasi/dto"
	"SuratMutasi/models"
	"SuratMutasi/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// OperatorHandler - manajemen akun operator oleh admin
type OperatorHandler struct {
	db *gorm.DB
}

func NewOperatorHandler(db *gorm.DB) *OperatorHandler {
	return &OperatorHandler{db: db}
}

// CreateOperator - POST /api/admin/operators
func (h *OperatorHandler) CreateOperator(c *fiber.Ctx) error {
	var req dto.OperatorCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "validation error", validationErrors)
	}

	passwordHash, err := utils.HashPassword(strings.TrimSpace(req.Password))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to hash password", nil)
	}

	user := models.User{
		Username:     strings.TrimSpace(req.Username),
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: passwordHash,
		Role:         req.Role,
		Verified:     true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "username or email already exists", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create operator", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "operator created successfully", dto.NewOperatorResponse(user))
}

// ListOperators - GET /api/admin/operators?page=&limit=&role=&q=
func (h *OperatorHandler) ListOperators(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	role := strings.TrimSpace(c.Query("role", ""))
	q := strings.TrimSpace(c.Query("q", ""))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	tx := h.db.Model(&models.User{})
	if role != "" {
		tx = tx.Where("role = ?", role)
	}
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where(
			h.db.Where("username LIKE ?", like).
				Or("email LIKE ?", like).
				Or("full_name LIKE ?", like),
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to count operators", err.Error())
	}

	var users []models.User
	if err := tx.Order("id DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve operators", err.Error())
	}

	responses := make([]dto.OperatorResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewOperatorResponse(users[i]))
	}

	data := fiber.Map{
		"operators":  responses,
		"pagination": utils.NewPagination(page, limit, total),
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "operators retrieved successfully", data)
}
