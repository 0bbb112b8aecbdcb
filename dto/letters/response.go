package letters

import (
	"time"

	"SuratMutasi/models"
)

// statusLabels memetakan status ke teks tampilan. Murni presentasi,
// logika bisnis tetap memakai nilai enum mentah.
var statusLabels = map[models.LetterStatus]string{
	models.StatusReceived:  "Diterima",
	models.StatusInProcess: "Dalam Proses",
	models.StatusReviewed:  "Sedang Ditinjau",
	models.StatusApproved:  "Disetujui",
	models.StatusRejected:  "Ditolak",
	models.StatusCompleted: "Selesai",
}

func StatusLabel(s models.LetterStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

type LetterResponse struct {
	ID                 uint                `json:"id"`
	RegistrationNumber string              `json:"registration_number"`
	SenderName         string              `json:"sender_name"`
	SenderOrganization string              `json:"sender_organization"`
	Subject            string              `json:"subject"`
	LetterNumber       string              `json:"letter_number"`
	RecipientName      string              `json:"recipient_name"`
	ReceivedDate       string              `json:"received_date"`
	Status             models.LetterStatus `json:"status"`
	StatusLabel        string              `json:"status_label"`
	Department         string              `json:"department"`
	LastUpdateDate     *string             `json:"last_update_date"`
	Notes              string              `json:"notes"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

func NewLetterResponse(letter *models.IncomingLetter) LetterResponse {
	if letter == nil {
		return LetterResponse{}
	}

	var lastUpdate *string
	if letter.LastUpdateDate != nil {
		formatted := letter.LastUpdateDate.Format(dateLayout)
		lastUpdate = &formatted
	}

	return LetterResponse{
		ID:                 letter.ID,
		RegistrationNumber: letter.RegistrationNumber,
		SenderName:         letter.SenderName,
		SenderOrganization: letter.SenderOrganization,
		Subject:            letter.Subject,
		LetterNumber:       letter.LetterNumber,
		RecipientName:      letter.RecipientName,
		ReceivedDate:       letter.ReceivedDate.Format(dateLayout),
		Status:             letter.Status,
		StatusLabel:        StatusLabel(letter.Status),
		Department:         letter.Department,
		LastUpdateDate:     lastUpdate,
		Notes:              letter.Notes,
		CreatedAt:          letter.CreatedAt,
		UpdatedAt:          letter.UpdatedAt,
	}
}
