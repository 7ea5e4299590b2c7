package database

import (
	"errors"
	"fmt"

	"oncoscreen/internal/models"

	"gorm.io/gorm"
)

var (
	ErrDuplicateID = errors.New("patient id already exists")
	ErrNotFound    = errors.New("patient not found")
)

// CreatePatient creates the login and the clinical record in a single
// transaction, so a failure can never leave a User without its record.
func CreatePatient(id, name string, age int, passwordHash string) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateID
		}

		user := models.User{
			ID:           id,
			PasswordHash: passwordHash,
			Role:         models.RolePatient,
			Name:         name,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		record := models.PatientRecord{
			ID:         id,
			Name:       name,
			Age:        age,
			RiskStatus: models.RiskPending,
			LastProb:   models.ProbUnknown,
		}
		return tx.Create(&record).Error
	})
}

// AppendNote adds an author-attributed line to the note log.
func AppendNote(patientID, text, author string) error {
	if err := requireRecord(patientID); err != nil {
		return err
	}
	note := models.PatientNote{
		PatientID: patientID,
		Author:    author,
		Text:      text,
	}
	return DB.Create(&note).Error
}

// AppendImage records a stored filename in the image log.
func AppendImage(patientID, filename string) error {
	if err := requireRecord(patientID); err != nil {
		return err
	}
	image := models.BiopsyImage{
		PatientID: patientID,
		Filename:  filename,
	}
	return DB.Create(&image).Error
}

// RecordPrediction overwrites the running risk status. The stored
// probability is a percentage string with one decimal place.
func RecordPrediction(patientID, status string, prob float64) error {
	if err := requireRecord(patientID); err != nil {
		return err
	}
	return DB.Model(&models.PatientRecord{}).
		Where("id = ?", patientID).
		Updates(map[string]interface{}{
			"risk_status": status,
			"last_prob":   fmt.Sprintf("%.1f%%", prob*100),
		}).Error
}

func GetPatient(id string) (*models.PatientRecord, error) {
	var record models.PatientRecord
	err := DB.
		Preload("Notes", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func ListPatients() ([]models.PatientRecord, error) {
	var records []models.PatientRecord
	err := DB.
		Preload("Notes", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Order("id asc").
		Find(&records).Error
	return records, err
}

func requireRecord(id string) error {
	var count int64
	if err := DB.Model(&models.PatientRecord{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
