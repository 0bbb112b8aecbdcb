package models

import (
	"time"
)

type LetterStatus string

const (
	StatusReceived  LetterStatus = "received"
	StatusInProcess LetterStatus = "in_process"
	StatusReviewed  LetterStatus = "reviewed"
	StatusApproved  LetterStatus = "approved"
	StatusRejected  LetterStatus = "rejected"
	StatusCompleted LetterStatus = "completed"
)

// Valid reports whether s is one of the six letter statuses.
func (s LetterStatus) Valid() bool {
	switch s {
	case StatusReceived, StatusInProcess, StatusReviewed,
		StatusApproved, StatusRejected, StatusCompleted:
		return true
	default:
		return false
	}
}

// IncomingLetter is one surat masuk permohonan mutasi. registration_number
// is the public tracking key and must stay globally unique.
type IncomingLetter struct {
	ID                 uint         `gorm:"primaryKey;autoIncrement:true"`
	RegistrationNumber string       `gorm:"type:varchar(255);uniqueIndex;not null"`
	SenderName         string       `gorm:"type:varchar(255);not null;index"`
	SenderOrganization string       `gorm:"type:varchar(255);not null"`
	Subject            string       `gorm:"type:varchar(500);not null"`
	LetterNumber       string       `gorm:"type:varchar(255);not null"`
	RecipientName      string       `gorm:"type:varchar(255);not null;index"`
	ReceivedDate       time.Time    `gorm:"type:date;not null;index"`
	Status             LetterStatus `gorm:"type:varchar(20);default:'received';not null;index;index:idx_status_department,priority:1"`
	Department         string       `gorm:"type:varchar(255);not null;index:idx_status_department,priority:2"`
	LastUpdateDate     *time.Time   `gorm:"type:date;index"`
	Notes              string       `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (IncomingLetter) TableName() string {
	return "incoming_letters"
}
