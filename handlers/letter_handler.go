package handlers

import (
	"errors"
	"strconv"
	"strings"

	letterdto "SuratMutasi/dto/letters"
	"SuratMutasi/services"
	"SuratMutasi/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LetterHandler struct {
	db      *gorm.DB
	service *services.LetterService
}

func NewLetterHandler(db *gorm.DB) *LetterHandler {
	return &LetterHandler{
		db:      db,
		service: services.NewLetterService(db),
	}
}

// ListLetters - GET /api/letters?search=&status=&department=&page=
func (h *LetterHandler) ListLetters(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}

	filter := services.ListFilter{
		Search:     strings.TrimSpace(c.Query("search")),
		Status:     strings.TrimSpace(c.Query("status")),
		Department: strings.TrimSpace(c.Query("department")),
		Page:       page,
	}

	result, err := h.service.List(filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve letters", err.Error())
	}

	responses := make([]letterdto.LetterResponse, 0, len(result.Letters))
	for i := range result.Letters {
		responses = append(responses, letterdto.NewLetterResponse(&result.Letters[i]))
	}

	data := fiber.Map{
		"letters":    responses,
		"pagination": result.Pagination,
		"filters": fiber.Map{
			"search":     filter.Search,
			"status":     filter.Status,
			"department": filter.Department,
		},
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "letters retrieved successfully", data)
}

// CreateLetter - POST /api/letters
func (h *LetterHandler) CreateLetter(c *fiber.Ctx) error {
	var req letterdto.CreateLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	validationErrors := req.Validate()
	if _, hasErr := validationErrors["registration_number"]; !hasErr {
		taken, err := h.service.RegistrationNumberTaken(strings.TrimSpace(req.RegistrationNumber), 0)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to check registration number", err.Error())
		}
		if taken {
			validationErrors["registration_number"] = letterdto.MsgRegistrationTaken
		}
	}
	if len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "Validasi gagal", validationErrors)
	}

	letter := req.ToModel()
	if err := h.service.Create(&letter); err != nil {
		if errors.Is(err, services.ErrRegistrationTaken) {
			return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "Validasi gagal", fiber.Map{
				"registration_number": letterdto.MsgRegistrationTaken,
			})
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create letter", err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Surat masuk berhasil ditambahkan.", letterdto.NewLetterResponse(&letter))
}

// GetLetterByID - GET /api/letters/:id
func (h *LetterHandler) GetLetterByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Surat tidak ditemukan", nil)
	}

	letter, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrLetterNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Surat tidak ditemukan", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve letter", err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "letter retrieved successfully", letterdto.NewLetterResponse(letter))
}

// UpdateLetter - PUT /api/letters/:id (edit penuh data deskriptif)
func (h *LetterHandler) UpdateLetter(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Surat tidak ditemukan", nil)
	}

	letter, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrLetterNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Surat tidak ditemukan", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve letter", err.Error())
	}

	var req letterdto.UpdateLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	validationErrors := req.Validate()
	if _, hasErr := validationErrors["registration_number"]; !hasErr {
		taken, err := h.service.RegistrationNumberTaken(strings.TrimSpace(req.RegistrationNumber), letter.ID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to check registration number", err.Error())
		}
		if taken {
			validationErrors["registration_number"] = letterdto.MsgRegistrationTaken
		}
	}
	if len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "Validasi gagal", validationErrors)
	}

	letterdto.ApplyUpdate(letter, &req)

	if err := h.service.Update(letter); err != nil {
		if errors.Is(err, services.ErrRegistrationTaken) {
			return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "Validasi gagal", fiber.Map{
				"registration_number": letterdto.MsgRegistrationTaken,
			})
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update letter", err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Data surat berhasil diperbarui.", letterdto.NewLetterResponse(letter))
}

// UpdateLetterProgress - PATCH /api/letters/:id/progress
// Hanya menyentuh status, bidang, tanggal update, dan keterangan;
// field deskriptif surat tidak berubah.
func (h *LetterHandler) UpdateLetterProgress(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Surat tidak ditemukan", nil)
	}

	letter, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrLetterNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Surat tidak ditemukan", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve letter", err.Error())
	}

	var req letterdto.UpdateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "Validasi gagal", validationErrors)
	}

	letterdto.ApplyProgress(letter, &req)

	if err := h.service.Update(letter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update letter", err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Data surat berhasil diperbarui.", letterdto.NewLetterResponse(letter))
}

// DeleteLetter - DELETE /api/letters/:id
func (h *LetterHandler) DeleteLetter(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Surat tidak ditemukan", nil)
	}

	if err := h.service.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrLetterNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Surat tidak ditemukan", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to delete letter", err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Surat berhasil dihapus.", nil)
}

// Dashboard - GET /api/dashboard
func (h *LetterHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve dashboard stats", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "dashboard stats retrieved successfully", stats)
}
