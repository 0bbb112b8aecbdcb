package handlers

import (
	"strings"

	letterdto "SuratMutasi/dto/letters"
	"SuratMutasi/services"
	"SuratMutasi/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TrackHandler melayani pelacakan surat publik: hanya pencocokan persis
// nomor register, tanpa autentikasi dan tanpa pencarian substring agar
// pengguna anonim tidak bisa menjelajah surat lain.
type TrackHandler struct {
	service *services.LetterService
}

func NewTrackHandler(db *gorm.DB) *TrackHandler {
	return &TrackHandler{service: services.NewLetterService(db)}
}

type trackRequest struct {
	RegistrationNumber string `json:"registration_number" form:"registration_number"`
}

// ShowTrackForm - GET /track
func (h *TrackHandler) ShowTrackForm(c *fiber.Ctx) error {
	data := fiber.Map{
		"registration_number": "",
		"letter":              nil,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "track form", data)
}

// TrackLetter - POST /track
// Surat yang tidak ditemukan adalah hasil normal, bukan error: respons tetap
// sukses dengan letter null sehingga halaman pelacakan bisa menampilkan
// pesan ramah alih-alih halaman gagal.
func (h *TrackHandler) TrackLetter(c *fiber.Ctx) error {
	var req trackRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.ErrBadRequest.Code, "invalid request body", err.Error())
	}

	registrationNumber := strings.TrimSpace(req.RegistrationNumber)

	letter, err := h.service.Track(registrationNumber)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to track letter", err.Error())
	}

	data := fiber.Map{"registration_number": registrationNumber}
	if letter == nil {
		data["letter"] = nil
		return utils.SuccessResponse(c, fiber.StatusOK, "Surat tidak ditemukan", data)
	}

	data["letter"] = letterdto.NewLetterResponse(letter)
	return utils.SuccessResponse(c, fiber.StatusOK, "Surat ditemukan", data)
}
