package services

import (
	"errors"
	"strings"

	"SuratMutasi/models"
	"SuratMutasi/utils"

	"gorm.io/gorm"
)

var (
	ErrLetterNotFound    = errors.New("letter not found")
	ErrRegistrationTaken = errors.New("registration number already in use")
)

// LettersPerPage is the fixed page size of the administrative listing.
const LettersPerPage = 15

type LetterService struct {
	db *gorm.DB
}

func NewLetterService(db *gorm.DB) *LetterService {
	return &LetterService{db: db}
}

// ListFilter membatasi hasil listing surat. Semua field opsional;
// filter yang terisi digabung dengan AND.
type ListFilter struct {
	Search     string
	Status     string
	Department string
	Page       int
}

type LetterPage struct {
	Letters    []models.IncomingLetter
	Pagination utils.Pagination
}

type DashboardStats struct {
	TotalLetters int64                         `json:"total_letters"`
	ByStatus     map[models.LetterStatus]int64 `json:"by_status"`
}

// RegistrationNumberTaken melapor apakah nomor register sudah dipakai surat lain.
// excludeID mengecualikan surat yang sedang diedit agar boleh revalidasi
// terhadap nilainya sendiri.
func (s *LetterService) RegistrationNumberTaken(number string, excludeID uint) (bool, error) {
	q := s.db.Model(&models.IncomingLetter{}).Where("registration_number = ?", number)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *LetterService) Create(letter *models.IncomingLetter) error {
	taken, err := s.RegistrationNumberTaken(letter.RegistrationNumber, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrRegistrationTaken
	}

	if err := s.db.Create(letter).Error; err != nil {
		// Backstop: unique index menangkap duplikat yang lolos pre-check
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrRegistrationTaken
		}
		return err
	}
	return nil
}

func (s *LetterService) GetByID(id uint) (*models.IncomingLetter, error) {
	var letter models.IncomingLetter
	if err := s.db.First(&letter, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLetterNotFound
		}
		return nil, err
	}
	return &letter, nil
}

// Update menyimpan surat yang sudah dimutasi caller (edit penuh maupun
// pembaruan progres memakai primitive yang sama).
func (s *LetterService) Update(letter *models.IncomingLetter) error {
	taken, err := s.RegistrationNumberTaken(letter.RegistrationNumber, letter.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrRegistrationTaken
	}

	if err := s.db.Save(letter).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrRegistrationTaken
		}
		return err
	}
	return nil
}

func (s *LetterService) Delete(id uint) error {
	result := s.db.Delete(&models.IncomingLetter{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLetterNotFound
	}
	return nil
}

// List mengembalikan satu halaman surat sesuai filter, terurut dari tanggal
// masuk terbaru. Halaman di luar rentang menghasilkan data kosong, bukan error.
func (s *LetterService) List(f ListFilter) (*LetterPage, error) {
	page := f.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * LettersPerPage

	var total int64
	if err := s.filtered(f).Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.IncomingLetter
	if err := s.filtered(f).
		Order("received_date DESC, id DESC").
		Limit(LettersPerPage).
		Offset(offset).
		Find(&items).Error; err != nil {
		return nil, err
	}

	return &LetterPage{
		Letters:    items,
		Pagination: utils.NewPagination(page, LettersPerPage, total),
	}, nil
}

func (s *LetterService) filtered(f ListFilter) *gorm.DB {
	q := s.db.Model(&models.IncomingLetter{})

	if search := strings.TrimSpace(f.Search); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			s.db.Where("sender_name LIKE ?", like).
				Or("recipient_name LIKE ?", like).
				Or("registration_number LIKE ?", like).
				Or("subject LIKE ?", like),
		)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Department != "" {
		q = q.Where("department = ?", f.Department)
	}

	return q
}

// Track mencari surat berdasarkan nomor register persis (case-sensitive).
// Tidak ditemukan bukan error: hasil (nil, nil) agar pemanggil bisa
// menampilkan pesan "surat tidak ditemukan" sebagai respons normal.
func (s *LetterService) Track(registrationNumber string) (*models.IncomingLetter, error) {
	registrationNumber = strings.TrimSpace(registrationNumber)
	if registrationNumber == "" {
		return nil, nil
	}

	var letter models.IncomingLetter
	err := s.db.Where("registration_number = ?", registrationNumber).First(&letter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &letter, nil
}

func (s *LetterService) Stats() (*DashboardStats, error) {
	var total int64
	if err := s.db.Model(&models.IncomingLetter{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		Status models.LetterStatus
		Count  int64
	}
	if err := s.db.Model(&models.IncomingLetter{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	byStatus := map[models.LetterStatus]int64{
		models.StatusReceived:  0,
		models.StatusInProcess: 0,
		models.StatusReviewed:  0,
		models.StatusApproved:  0,
		models.StatusRejected:  0,
		models.StatusCompleted: 0,
	}
	for _, row := range rows {
		byStatus[row.Status] = row.Count
	}

	return &DashboardStats{TotalLetters: total, ByStatus: byStatus}, nil
}
