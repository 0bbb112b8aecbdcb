package letters

import (
	"strings"
	"time"

	"SuratMutasi/models"
)

const dateLayout = "2006-01-02"

// Pesan error validasi mengikuti label form surat masuk.
const (
	MsgRegistrationRequired = "Nomor Register wajib diisi."
	MsgRegistrationTooLong  = "Nomor Register maksimal 255 karakter."
	MsgRegistrationTaken    = "Nomor Register sudah digunakan."
	MsgSenderNameRequired   = "Nama Pengirim wajib diisi."
	MsgSenderNameTooLong    = "Nama Pengirim maksimal 255 karakter."
	MsgSenderOrgRequired    = "Nama OPD wajib diisi."
	MsgSenderOrgTooLong     = "Nama OPD maksimal 255 karakter."
	MsgSubjectRequired      = "Perihal Surat wajib diisi."
	MsgSubjectTooLong       = "Perihal Surat maksimal 500 karakter."
	MsgLetterNumberRequired = "Nomor Surat wajib diisi."
	MsgLetterNumberTooLong  = "Nomor Surat maksimal 255 karakter."
	MsgRecipientRequired    = "Nama Penerima wajib diisi."
	MsgRecipientTooLong     = "Nama Penerima maksimal 255 karakter."
	MsgReceivedDateRequired = "Tanggal Surat Masuk wajib diisi."
	MsgReceivedDateInvalid  = "Format tanggal tidak valid."
	MsgStatusRequired       = "Status Surat wajib dipilih."
	MsgStatusInvalid        = "Status Surat tidak valid."
	MsgDepartmentRequired   = "Bidang wajib diisi."
	MsgDepartmentTooLong    = "Bidang maksimal 255 karakter."
	MsgUpdateDateRequired   = "Tanggal Update wajib diisi."
	MsgUpdateDateInvalid    = "Format tanggal update tidak valid."
)

// CreateLetterRequest - Req pencatatan surat masuk baru
type CreateLetterRequest struct {
	RegistrationNumber string `json:"registration_number" form:"registration_number"`
	SenderName         string `json:"sender_name" form:"sender_name"`
	SenderOrganization string `json:"sender_organization" form:"sender_organization"`
	Subject            string `json:"subject" form:"subject"`
	LetterNumber       string `json:"letter_number" form:"letter_number"`
	RecipientName      string `json:"recipient_name" form:"recipient_name"`
	ReceivedDate       string `json:"received_date" form:"received_date"` // YYYY-MM-DD
	Status             string `json:"status" form:"status"`
	Department         string `json:"department" form:"department"`
	Notes              string `json:"notes" form:"notes"` // Opsional
}

// UpdateLetterRequest - Req edit penuh data deskriptif surat.
// Aturan field sama dengan create; keunikan nomor register dicek
// dengan mengecualikan id surat yang sedang diedit.
type UpdateLetterRequest struct {
	RegistrationNumber string  `json:"registration_number" form:"registration_number"`
	SenderName         string  `json:"sender_name" form:"sender_name"`
	SenderOrganization string  `json:"sender_organization" form:"sender_organization"`
	Subject            string  `json:"subject" form:"subject"`
	LetterNumber       string  `json:"letter_number" form:"letter_number"`
	RecipientName      string  `json:"recipient_name" form:"recipient_name"`
	ReceivedDate       string  `json:"received_date" form:"received_date"`
	Status             string  `json:"status" form:"status"`
	Department         string  `json:"department" form:"department"`
	Notes              *string `json:"notes" form:"notes"`
}

// UpdateProgressRequest - Req pembaruan progres penanganan surat.
// Hanya menyentuh status, bidang, tanggal update, dan keterangan.
type UpdateProgressRequest struct {
	Status         string  `json:"status" form:"status"`
	Department     string  `json:"department" form:"department"`
	LastUpdateDate string  `json:"last_update_date" form:"last_update_date"` // YYYY-MM-DD
	Notes          *string `json:"notes" form:"notes"`
}

// Validate mengumpulkan seluruh pelanggaran aturan, bukan berhenti di error pertama.
// Keunikan nomor register dicek terpisah oleh service karena butuh akses store.
func (r *CreateLetterRequest) Validate() map[string]string {
	errors := make(map[string]string)

	validateRequiredField(errors, "registration_number", r.RegistrationNumber, 255, MsgRegistrationRequired, MsgRegistrationTooLong)
	validateRequiredField(errors, "sender_name", r.SenderName, 255, MsgSenderNameRequired, MsgSenderNameTooLong)
	validateRequiredField(errors, "sender_organization", r.SenderOrganization, 255, MsgSenderOrgRequired, MsgSenderOrgTooLong)
	validateRequiredField(errors, "subject", r.Subject, 500, MsgSubjectRequired, MsgSubjectTooLong)
	validateRequiredField(errors, "letter_number", r.LetterNumber, 255, MsgLetterNumberRequired, MsgLetterNumberTooLong)
	validateRequiredField(errors, "recipient_name", r.RecipientName, 255, MsgRecipientRequired, MsgRecipientTooLong)
	validateDateField(errors, "received_date", r.ReceivedDate, MsgReceivedDateRequired, MsgReceivedDateInvalid)
	validateStatusField(errors, r.Status)
	validateRequiredField(errors, "department", r.Department, 255, MsgDepartmentRequired, MsgDepartmentTooLong)

	return errors
}

func (r *UpdateLetterRequest) Validate() map[string]string {
	errors := make(map[string]string)

	validateRequiredField(errors, "registration_number", r.RegistrationNumber, 255, MsgRegistrationRequired, MsgRegistrationTooLong)
	validateRequiredField(errors, "sender_name", r.SenderName, 255, MsgSenderNameRequired, MsgSenderNameTooLong)
	validateRequiredField(errors, "sender_organization", r.SenderOrganization, 255, MsgSenderOrgRequired, MsgSenderOrgTooLong)
	validateRequiredField(errors, "subject", r.Subject, 500, MsgSubjectRequired, MsgSubjectTooLong)
	validateRequiredField(errors, "letter_number", r.LetterNumber, 255, MsgLetterNumberRequired, MsgLetterNumberTooLong)
	validateRequiredField(errors, "recipient_name", r.RecipientName, 255, MsgRecipientRequired, MsgRecipientTooLong)
	validateDateField(errors, "received_date", r.ReceivedDate, MsgReceivedDateRequired, MsgReceivedDateInvalid)
	validateStatusField(errors, r.Status)
	validateRequiredField(errors, "department", r.Department, 255, MsgDepartmentRequired, MsgDepartmentTooLong)

	return errors
}

func (r *UpdateProgressRequest) Validate() map[string]string {
	errors := make(map[string]string)

	validateStatusField(errors, r.Status)
	validateRequiredField(errors, "department", r.Department, 255, MsgDepartmentRequired, MsgDepartmentTooLong)
	validateDateField(errors, "last_update_date", r.LastUpdateDate, MsgUpdateDateRequired, MsgUpdateDateInvalid)

	return errors
}

func validateRequiredField(errors map[string]string, field, value string, maxLen int, requiredMsg, tooLongMsg string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		errors[field] = requiredMsg
		return
	}
	if len([]rune(trimmed)) > maxLen {
		errors[field] = tooLongMsg
	}
}

func validateDateField(errors map[string]string, field, value, requiredMsg, invalidMsg string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		errors[field] = requiredMsg
		return
	}
	if _, err := time.Parse(dateLayout, trimmed); err != nil {
		errors[field] = invalidMsg
	}
}

func validateStatusField(errors map[string]string, value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		errors["status"] = MsgStatusRequired
		return
	}
	if !models.LetterStatus(trimmed).Valid() {
		errors["status"] = MsgStatusInvalid
	}
}
