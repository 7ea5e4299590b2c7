package models

import "time"

const (
	RiskPending = "Pending"
	RiskHigh    = "High Risk"
	RiskLow     = "Low Risk"
	ProbUnknown = "N/A"
)

type PatientRecord struct {
	ID   string `gorm:"primaryKey;size:50"` // matches User.ID
	Name string `gorm:"size:100"`
	Age  int

	RiskStatus string `gorm:"size:50;not null;default:'Pending'"`
	LastProb   string `gorm:"size:20;not null;default:'N/A'"`

	Notes  []PatientNote `gorm:"foreignKey:PatientID"`
	Images []BiopsyImage `gorm:"foreignKey:PatientID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PatientNote rows are append-only; the note log is never rewritten.
type PatientNote struct {
	ID        uint   `gorm:"primaryKey"`
	PatientID string `gorm:"size:50;index;not null"`
	Author    string `gorm:"size:100;not null"` // display name of the doctor
	Text      string `gorm:"type:text;not null"`

	CreatedAt time.Time
}

// BiopsyImage references a file stored under the upload directory.
type BiopsyImage struct {
	ID        uint   `gorm:"primaryKey"`
	PatientID string `gorm:"size:50;index;not null"`
	Filename  string `gorm:"size:255;not null"` // stored name, already sanitized

	CreatedAt time.Time
}
