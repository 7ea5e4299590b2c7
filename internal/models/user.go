package models

import "time"

type UserRole string

const (
	RoleAdmin       UserRole = "admin"
	RoleDoctor      UserRole = "doctor"
	RoleRadiologist UserRole = "radiologist"
	RolePatient     UserRole = "patient"
)

// User shares its identifier space with PatientRecord: a patient logs in
// with the same id their record is stored under.
type User struct {
	ID           string   `gorm:"primaryKey;size:50"`
	PasswordHash string   `gorm:"size:100;not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`
	Name         string   `gorm:"size:100;not null"`

	CreatedAt time.Time
}
