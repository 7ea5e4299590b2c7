package database

import (
	"log"
	"os"
	"time"

	"oncoscreen/internal/models"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init connects to postgres when a DSN is configured, otherwise falls back
// to a local sqlite file so the app runs without any infrastructure.
func Init(dsn string) {
	var err error

	if dsn == "" {
		log.Println("DB_DSN not set, using local sqlite database")
		DB, err = gorm.Open(sqlite.Open("local_medical.db"), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open sqlite database: %v", err)
		}
	} else {
		const maxAttempts = 10
		for i := 1; i <= maxAttempts; i++ {
			log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

			DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
			if err == nil {
				log.Println("connected to DB successfully")
				break
			}

			log.Printf("failed to connect to DB: %v", err)
			time.Sleep(2 * time.Second)
		}

		if err != nil {
			log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
		}
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedStaffAccounts(DB)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.PatientRecord{},
		&models.PatientNote{},
		&models.BiopsyImage{},
		&models.AuditLog{},
	)
}

type seedAccount struct {
	ID          string
	Name        string
	Role        models.UserRole
	PasswordEnv string
	Fallback    string
}

// seedStaffAccounts creates the default staff logins on first run.
// Passwords come from the environment where set; they are hashed before
// storage and never logged.
func seedStaffAccounts(db *gorm.DB) {
	accounts := []seedAccount{
		{ID: "admin1", Name: "System Admin", Role: models.RoleAdmin, PasswordEnv: "ADMIN_PASSWORD", Fallback: "Admin123!"},
		{ID: "doctor1", Name: "Dr. Saravana Kumar", Role: models.RoleDoctor, PasswordEnv: "DOCTOR_PASSWORD", Fallback: "Doctor123!"},
		{ID: "rad1", Name: "Chief Radiologist", Role: models.RoleRadiologist, PasswordEnv: "RADIOLOGIST_PASSWORD", Fallback: "Radiol123!"},
	}

	for _, a := range accounts {
		var count int64
		if err := db.Model(&models.User{}).
			Where("id = ?", a.ID).
			Count(&count).Error; err != nil {
			log.Printf("failed to check seed user %s: %v", a.ID, err)
			continue
		}
		if count > 0 {
			continue
		}

		password := os.Getenv(a.PasswordEnv)
		if password == "" {
			password = a.Fallback
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("failed to hash password for %s: %v", a.ID, err)
			continue
		}

		user := models.User{
			ID:           a.ID,
			PasswordHash: string(hash),
			Role:         a.Role,
			Name:         a.Name,
		}

		if err := db.Create(&user).Error; err != nil {
			log.Printf("failed to create seed user %s: %v", a.ID, err)
			continue
		}

		log.Printf("created seed user: %s (role=%s)", a.ID, a.Role)
	}
}
