package main

import (
	"flag"
	"log"
	"time"

	"SuratMutasi/config"
	"SuratMutasi/models"
	"SuratMutasi/utils"

	"gorm.io/gorm"
)

func main() {
	seed := flag.Bool("seed", false, "seed admin account and sample letters after migrating")
	flag.Parse()

	db := config.ConnectDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.IncomingLetter{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("✅ Migration completed")

	if *seed {
		if err := seedData(db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		log.Println("✅ Seeding completed")
	}
}

func seedData(db *gorm.DB) error {
	passwordHash, err := utils.HashPassword("password")
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     "admin",
		FullName:     "Administrator",
		Email:        "admin@example.com",
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		Verified:     true,
	}
	if err := db.Where("email = ?", admin.Email).FirstOrCreate(&admin).Error; err != nil {
		return err
	}

	date := func(value string) time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return t
	}
	updateDate := func(value string) *time.Time {
		t := date(value)
		return &t
	}

	letters := []models.IncomingLetter{
		{
			RegistrationNumber: "REG-001/2024",
			SenderName:         "Budi Santoso",
			SenderOrganization: "Dinas Pendidikan",
			Subject:            "Permohonan Mutasi Guru Sekolah Dasar",
			LetterNumber:       "421/035/2024",
			RecipientName:      "Kepala Badan Kepegawaian Daerah",
			ReceivedDate:       date("2024-01-15"),
			Status:             models.StatusCompleted,
			Department:         "Bagian Kepegawaian",
			LastUpdateDate:     updateDate("2024-03-01"),
			Notes:              "Berkas lengkap, mutasi disetujui.",
		},
		{
			RegistrationNumber: "REG-002/2024",
			SenderName:         "Siti Aminah",
			SenderOrganization: "Dinas Kesehatan",
			Subject:            "Permohonan Mutasi Tenaga Kesehatan",
			LetterNumber:       "440/112/2024",
			RecipientName:      "Kepala Badan Kepegawaian Daerah",
			ReceivedDate:       date("2024-02-20"),
			Status:             models.StatusInProcess,
			Department:         "Bidang Kesehatan",
			LastUpdateDate:     updateDate("2024-02-28"),
		},
		{
			RegistrationNumber: "REG-003/2024",
			SenderName:         "Agus Wijaya",
			SenderOrganization: "Dinas Pekerjaan Umum",
			Subject:            "Permohonan Mutasi Staf Teknis",
			LetterNumber:       "600/078/2024",
			RecipientName:      "Sekretaris Daerah",
			ReceivedDate:       date("2024-03-05"),
			Status:             models.StatusReceived,
			Department:         "Bidang Pembangunan",
		},
		{
			RegistrationNumber: "REG-004/2024",
			SenderName:         "Dewi Lestari",
			SenderOrganization: "Sekretariat Daerah",
			Subject:            "Permohonan Mutasi Analis Kepegawaian",
			LetterNumber:       "800/091/2024",
			RecipientName:      "Kepala Badan Kepegawaian Daerah",
			ReceivedDate:       date("2024-03-18"),
			Status:             models.StatusReviewed,
			Department:         "Bagian Umum",
			LastUpdateDate:     updateDate("2024-04-02"),
		},
		{
			RegistrationNumber: "REG-005/2024",
			SenderName:         "Rahmat Hidayat",
			SenderOrganization: "Badan Kepegawaian Daerah",
			Subject:            "Permohonan Mutasi Antar Daerah",
			LetterNumber:       "810/044/2024",
			RecipientName:      "Kepala Badan Kepegawaian Daerah",
			ReceivedDate:       date("2024-04-10"),
			Status:             models.StatusRejected,
			Department:         "Bagian Kepegawaian",
			LastUpdateDate:     updateDate("2024-05-01"),
			Notes:              "Formasi tujuan belum tersedia.",
		},
	}

	for i := range letters {
		letter := letters[i]
		if err := db.Where("registration_number = ?", letter.RegistrationNumber).
			FirstOrCreate(&letter).Error; err != nil {
			return err
		}
	}
	return nil
}
