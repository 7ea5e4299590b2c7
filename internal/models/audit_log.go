package models

import "time"

type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	ActorID   string `gorm:"size:50;not null"` // User.ID performing the action
	PatientID string `gorm:"size:50"`

	Action  string `gorm:"size:50;not null"` // "create_patient", "add_note", "upload_biopsy", "predict"
	Details string `gorm:"type:text"`
}
