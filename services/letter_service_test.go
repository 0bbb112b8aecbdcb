package services

import (
	"fmt"
	"testing"
	"time"

	"SuratMutasi/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// Every pooled connection to :memory: gets its own database,
	// so keep the pool at a single connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.IncomingLetter{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", value, err)
	}
	return parsed
}

func sampleLetter(t *testing.T, registrationNumber string) models.IncomingLetter {
	t.Helper()
	return models.IncomingLetter{
		RegistrationNumber: registrationNumber,
		SenderName:         "Budi Santoso",
		SenderOrganization: "Dinas Pendidikan",
		Subject:            "Permohonan Mutasi Guru",
		LetterNumber:       "421/035/2024",
		RecipientName:      "Kepala BKD",
		ReceivedDate:       date(t, "2024-01-15"),
		Status:             models.StatusReceived,
		Department:         "Bagian Kepegawaian",
	}
}

func TestCreateRejectsDuplicateRegistrationNumber(t *testing.T) {
	svc := NewLetterService(newTestDB(t))

	first := sampleLetter(t, "REG-001/2024")
	if err := svc.Create(&first); err != nil {
		t.Fatalf("unexpected error creating first letter: %v", err)
	}

	duplicate := sampleLetter(t, "REG-001/2024")
	duplicate.SenderName = "Orang Lain"
	if err := svc.Create(&duplicate); err != ErrRegistrationTaken {
		t.Fatalf("expected ErrRegistrationTaken, got %v", err)
	}

	var count int64
	svc.db.Model(&models.IncomingLetter{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected store to hold 1 record after rejected duplicate, got %d", count)
	}
}

func TestRegistrationNumberTakenExcludesOwnRecord(t *testing.T) {
	svc := NewLetterService(newTestDB(t))

	letter := sampleLetter(t, "REG-001/2024")
	if err := svc.Create(&letter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	taken, err := svc.RegistrationNumberTaken("REG-001/2024", letter.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if taken {
		t.Fatal("a record must be allowed to re-validate against its own registration number")
	}

	taken, err = svc.RegistrationNumberTaken("REG-001/2024", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !taken {
		t.Fatal("expected registration number to be reported as taken for other records")
	}
}

func TestUpdateProgressPreservesDescriptiveFields(t *testing.T) {
	svc := NewLetterService(newTestDB(t))

	letter := sampleLetter(t, "REG-001/2024")
	if err := svc.Create(&letter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.GetByID(letter.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lastUpdate := date(t, "2024-06-01")
	updated.Status = models.StatusCompleted
	updated.Department = "Bagian Umum"
	updated.LastUpdateDate = &lastUpdate
	updated.Notes = "Selesai diproses"

	if err := svc.Update(updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetByID(letter.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != models.StatusCompleted {
		t.Errorf("status = %q, want %q", got.Status, models.StatusCompleted)
	}
	if got.Department != "Bagian Umum" {
		t.Errorf("department = %q, want %q", got.Department, "Bagian Umum")
	}
	if got.LastUpdateDate == nil || !got.LastUpdateDate.Equal(lastUpdate) {
		t.Errorf("last_update_date = %v, want %v", got.LastUpdateDate, lastUpdate)
	}
	if got.RegistrationNumber != "REG-001/2024" {
		t.Errorf("registration_number changed to %q", got.RegistrationNumber)
	}
	if got.SenderName != "Budi Santoso" || got.Subject != "Permohonan Mutasi Guru" {
		t.Error("descriptive fields must not change on a progress update")
	}
}

func TestListPaginatesByReceivedDateDescending(t *testing.T) {
	svc := NewLetterService(newTestDB(t))

	base := date(t, "2024-01-01")
	for i := 1; i <= 25; i++ {
		letter := sampleLetter(t, fmt.Sprintf("REG-%03d/2024", i))
		letter.ReceivedDate = base.AddDate(0, 0, i)
		if err := svc.Create(&letter); err != nil {
			t.Fatalf("unexpected error creating letter %d: %v", i, err)
		}
	}

	page1, err := svc.List(ListFilter{Page: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page1.Letters) != 15 {
		t.Fatalf("page 1 returned %d letters, want 15", len(page1.Letters))
	}
	if page1.Letters[0].RegistrationNumber != "REG-025/2024" {
		t.Errorf("page 1 must start with the most recently received letter, got %s", page1.Letters[0].RegistrationNumber)
	}
	if page1.Pagination.Total != 25 || page1.Pagination.LastPage != 2 {
		t.Errorf("pagination = total %d last_page %d, want 25 and 2", page1.Pagination.Total, page1.Pagination.LastPage)
	}

	page2, err := svc.List(ListFilter{Page: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page2.Letters) != 10 {
		t.Fatalf("page 2 returned %d letters, want 10", len(page2.Letters))
	}

	page3, err := svc.List(ListFilter{Page: 3})
	if err != nil {
		t.Fatalf("requesting a page beyond the last page must not fail: %v", err)
	}
	if len(page3.Letters) != 0 {
		t.Fatalf("page 3 returned %d letters, want empty set", len(page3.Letters))
	}
}

func TestListBreaksDateTiesByIDDescending(t *testing.T) {
	svc := NewLetterService(newTestDB(t))

	first := sampleLetter(t, "REG-001/2024")
	second := sampleLetter(t, "REG-002/2024")
	if err := svc.Create(&first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Create(&second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page, err := svc.List(ListFilter{Page: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Letters[0].ID != second.ID {
		t.Errorf("expected the later-inserted letter first on equal dates, got id %d", page.Letters[0].ID)
	}
}

func TestListFilterComposition(t *testing.T) {
	svc := NewLetterService(newTestDB(t))

	completedUmum := sampleLetter(t, "REG-001/2024")
	completedUmum.Status = models.StatusCompleted
	completedUmum.Department = "Bagian Umum"

	completedKepeg := sampleLetter(t, "REG-002/2024")
	completedKepeg.Status = models.StatusCompleted
	completedKepeg.Department = "Bagian Kepegawaian"

	receivedUmum := sampleLetter(t, "REG-003/2024")
	receivedUmum.Department = "Bagian Umum"

	for _, letter := range []*models.IncomingLetter{&completedUmum, &completedKepeg, &receivedUmum} {
		if err := svc.Create(letter); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	page, err := svc.List(ListFilter{Status: "completed", Department: "Bagian Umum", Page: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Letters) != 1 || page.Letters[0].RegistrationNumber != "REG-001/2024" {
		t.Fatalf("status+department filter must return exactly the intersection, got %d letters", len(page.Letters))
	}
}

func TestListSearchMatchesCaseInsensitively(t *testing.T) {
	svc := NewLetterService(newTestDB(t))

	match := sampleLetter(t, "REG-001/2024")
	match.SenderName = "Budi Santoso"

	other := sampleLetter(t, "REG-002/2024")
	other.SenderName = "Siti Aminah"
	other.RecipientName = "Sekretaris Daerah"
	other.Subject = "Permohonan Mutasi Perawat"

	for _, letter := range []*models.IncomingLetter{&match, &other} {
		if err := svc.Create(letter); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	page, err := svc.List(ListFilter{Search: "budi", Page: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Letters) != 1 || page.Letters[0].RegistrationNumber != "REG-001/2024" {
		t.Fatalf("search must match sender_name case-insensitively, got %d letters", len(page.Letters))
	}

	// OR across fields: subject match on the other letter
	page, err = svc.List(ListFilter{Search: "perawat", Page: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Letters) != 1 || page.Letters[0].RegistrationNumber != "REG-002/2024" {
		t.Fatalf("search must match subject, got %d letters", len(page.Letters))
	}
}

func TestDeleteRemovesRecordAndTracking(t *testing.T) {
	svc := NewLetterService(newTestDB(t))

	letter := sampleLetter(t, "REG-001/2024")
	if err := svc.Create(&letter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(letter.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.GetByID(letter.ID); err != ErrLetterNotFound {
		t.Fatalf("expected ErrLetterNotFound after delete, got %v", err)
	}

	tracked, err := svc.Track("REG-001/2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tracked != nil {
		t.Fatal("tracking a deleted letter must report not found")
	}

	if err := svc.Delete(letter.ID); err != ErrLetterNotFound {
		t.Fatalf("deleting twice must report not found, got %v", err)
	}
}

func TestTrackIsIdempotentAndExactMatch(t *testing.T) {
	svc := NewLetterService(newTestDB(t))

	letter := sampleLetter(t, "REG-001/2024")
	if err := svc.Create(&letter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := svc.Track("  REG-001/2024  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == nil {
		t.Fatal("expected trimmed input to match")
	}

	second, err := svc.Track("REG-001/2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second == nil || second.ID != first.ID || second.Status != first.Status {
		t.Fatal("repeated lookups without intervening writes must return the same result")
	}

	missing, err := svc.Track("REG-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Fatal("partial registration numbers must not match")
	}

	empty, err := svc.Track("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty != nil {
		t.Fatal("empty input must report not found")
	}
}

func TestProgressUpdateVisibleThroughTracking(t *testing.T) {
	svc := NewLetterService(newTestDB(t))

	letter := sampleLetter(t, "REG-001/2024")
	if err := svc.Create(&letter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := svc.GetByID(letter.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lastUpdate := date(t, "2024-06-01")
	stored.Status = models.StatusCompleted
	stored.LastUpdateDate = &lastUpdate
	if err := svc.Update(stored); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tracked, err := svc.Track("REG-001/2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tracked == nil {
		t.Fatal("expected letter to be found")
	}
	if tracked.Status != models.StatusCompleted {
		t.Errorf("status = %q, want completed", tracked.Status)
	}
	if tracked.LastUpdateDate == nil || !tracked.LastUpdateDate.Equal(lastUpdate) {
		t.Errorf("last_update_date = %v, want %v", tracked.LastUpdateDate, lastUpdate)
	}
	if tracked.SenderName != "Budi Santoso" || tracked.SenderOrganization != "Dinas Pendidikan" {
		t.Error("original descriptive fields must stay intact after a progress update")
	}
}

func TestStatsCountsByStatus(t *testing.T) {
	svc := NewLetterService(newTestDB(t))

	statuses := []models.LetterStatus{
		models.StatusReceived, models.StatusReceived, models.StatusCompleted,
	}
	for i, status := range statuses {
		letter := sampleLetter(t, fmt.Sprintf("REG-%03d/2024", i+1))
		letter.Status = status
		if err := svc.Create(&letter); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	stats, err := svc.Stats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalLetters != 3 {
		t.Errorf("total = %d, want 3", stats.TotalLetters)
	}
	if stats.ByStatus[models.StatusReceived] != 2 {
		t.Errorf("received count = %d, want 2", stats.ByStatus[models.StatusReceived])
	}
	if stats.ByStatus[models.StatusCompleted] != 1 {
		t.Errorf("completed count = %d, want 1", stats.ByStatus[models.StatusCompleted])
	}
	if stats.ByStatus[models.StatusRejected] != 0 {
		t.Errorf("rejected count = %d, want 0", stats.ByStatus[models.StatusRejected])
	}
}
