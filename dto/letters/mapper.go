package letters

import (
	"strings"
	"time"

	"SuratMutasi/models"
)

func (r *CreateLetterRequest) ToModel() models.IncomingLetter {
	// Tanggal sudah lolos validasi, error parse diabaikan
	receivedDate, _ := time.Parse(dateLayout, strings.TrimSpace(r.ReceivedDate))

	return models.IncomingLetter{
		RegistrationNumber: strings.TrimSpace(r.RegistrationNumber),
		SenderName:         strings.TrimSpace(r.SenderName),
		SenderOrganization: strings.TrimSpace(r.SenderOrganization),
		Subject:            strings.TrimSpace(r.Subject),
		LetterNumber:       strings.TrimSpace(r.LetterNumber),
		RecipientName:      strings.TrimSpace(r.RecipientName),
		ReceivedDate:       receivedDate,
		Status:             models.LetterStatus(strings.TrimSpace(r.Status)),
		Department:         strings.TrimSpace(r.Department),
		Notes:              strings.TrimSpace(r.Notes),
	}
}

// ApplyUpdate menimpa field deskriptif surat dari request edit penuh.
func ApplyUpdate(letter *models.IncomingLetter, req *UpdateLetterRequest) {
	if letter == nil || req == nil {
		return
	}

	letter.RegistrationNumber = strings.TrimSpace(req.RegistrationNumber)
	letter.SenderName = strings.TrimSpace(req.SenderName)
	letter.SenderOrganization = strings.TrimSpace(req.SenderOrganization)
	letter.Subject = strings.TrimSpace(req.Subject)
	letter.LetterNumber = strings.TrimSpace(req.LetterNumber)
	letter.RecipientName = strings.TrimSpace(req.RecipientName)
	letter.Status = models.LetterStatus(strings.TrimSpace(req.Status))
	letter.Department = strings.TrimSpace(req.Department)

	if t, err := time.Parse(dateLayout, strings.TrimSpace(req.ReceivedDate)); err == nil {
		letter.ReceivedDate = t
	}
	if req.Notes != nil {
		letter.Notes = strings.TrimSpace(*req.Notes)
	}
}

// ApplyProgress memperbarui status penanganan tanpa menyentuh field deskriptif.
func ApplyProgress(letter *models.IncomingLetter, req *UpdateProgressRequest) {
	if letter == nil || req == nil {
		return
	}

	letter.Status = models.LetterStatus(strings.TrimSpace(req.Status))
	letter.Department = strings.TrimSpace(req.Department)

	if t, err := time.Parse(dateLayout, strings.TrimSpace(req.LastUpdateDate)); err == nil {
		letter.LastUpdateDate = &t
	}
	if req.Notes != nil {
		letter.Notes = strings.TrimSpace(*req.Notes)
	}
}
