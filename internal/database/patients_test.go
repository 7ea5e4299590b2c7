package database

import (
	"errors"
	"path/filepath"
	"testing"

	"oncoscreen/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	prev := DB
	DB = db
	t.Cleanup(func() { DB = prev })
}

func TestCreatePatient(t *testing.T) {
	setupDB(t)

	if err := CreatePatient("p1", "Jane Doe", 30, "hash"); err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}

	var user models.User
	if err := DB.First(&user, "id = ?", "p1").Error; err != nil {
		t.Fatalf("user row missing: %v", err)
	}
	if user.Role != models.RolePatient {
		t.Errorf("role = %s, want patient", user.Role)
	}

	record, err := GetPatient("p1")
	if err != nil {
		t.Fatalf("GetPatient: %v", err)
	}
	if record.RiskStatus != models.RiskPending {
		t.Errorf("risk status = %q, want %q", record.RiskStatus, models.RiskPending)
	}
	if record.LastProb != models.ProbUnknown {
		t.Errorf("last prob = %q, want %q", record.LastProb, models.ProbUnknown)
	}
}

func TestCreatePatient_Duplicate(t *testing.T) {
	setupDB(t)

	if err := CreatePatient("p1", "Jane Doe", 30, "hash"); err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}
	err := CreatePatient("p1", "Other Name", 40, "hash2")
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("duplicate create = %v, want ErrDuplicateID", err)
	}

	// existing rows untouched
	record, err := GetPatient("p1")
	if err != nil {
		t.Fatalf("GetPatient: %v", err)
	}
	if record.Name != "Jane Doe" {
		t.Errorf("name = %q, want Jane Doe", record.Name)
	}
}

func TestCreatePatient_DuplicateAgainstStaffLogin(t *testing.T) {
	setupDB(t)

	staff := models.User{ID: "doctor1", PasswordHash: "h", Role: models.RoleDoctor, Name: "Doc"}
	if err := DB.Create(&staff).Error; err != nil {
		t.Fatalf("seed staff: %v", err)
	}

	// the id space is shared with logins, not just records
	if err := CreatePatient("doctor1", "Jane Doe", 30, "hash"); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("create over staff id = %v, want ErrDuplicateID", err)
	}
	if _, err := GetPatient("doctor1"); !errors.Is(err, ErrNotFound) {
		t.Error("orphaned patient record created for staff id")
	}
}

func TestAppendNote(t *testing.T) {
	setupDB(t)

	if err := CreatePatient("p1", "Jane Doe", 30, "hash"); err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}

	if err := AppendNote("p1", "first", "House"); err != nil {
		t.Fatalf("AppendNote: %v", err)
	}
	if err := AppendNote("p1", "second", "House"); err != nil {
		t.Fatalf("AppendNote: %v", err)
	}

	record, err := GetPatient("p1")
	if err != nil {
		t.Fatalf("GetPatient: %v", err)
	}
	if len(record.Notes) != 2 {
		t.Fatalf("notes = %d, want 2", len(record.Notes))
	}
	if record.Notes[0].Text != "first" || record.Notes[1].Text != "second" {
		t.Errorf("note order wrong: %q, %q", record.Notes[0].Text, record.Notes[1].Text)
	}
}

func TestAppendNote_UnknownPatient(t *testing.T) {
	setupDB(t)

	if err := AppendNote("ghost", "note", "House"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("AppendNote = %v, want ErrNotFound", err)
	}

	// the failed append must not create a record
	if _, err := GetPatient("ghost"); !errors.Is(err, ErrNotFound) {
		t.Error("record appeared for unknown id")
	}
	var count int64
	DB.Model(&models.PatientNote{}).Count(&count)
	if count != 0 {
		t.Errorf("note rows = %d, want 0", count)
	}
}

func TestAppendImage_UnknownPatient(t *testing.T) {
	setupDB(t)

	if err := AppendImage("ghost", "ghost_scan.png"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("AppendImage = %v, want ErrNotFound", err)
	}
}

func TestRecordPrediction(t *testing.T) {
	setupDB(t)

	if err := CreatePatient("p1", "Jane Doe", 30, "hash"); err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}

	if err := RecordPrediction("p1", models.RiskHigh, 0.85); err != nil {
		t.Fatalf("RecordPrediction: %v", err)
	}

	record, err := GetPatient("p1")
	if err != nil {
		t.Fatalf("GetPatient: %v", err)
	}
	if record.RiskStatus != models.RiskHigh {
		t.Errorf("risk status = %q, want %q", record.RiskStatus, models.RiskHigh)
	}
	if record.LastProb != "85.0%" {
		t.Errorf("last prob = %q, want 85.0%%", record.LastProb)
	}

	// each prediction overwrites the previous one
	if err := RecordPrediction("p1", models.RiskLow, 0.123); err != nil {
		t.Fatalf("RecordPrediction: %v", err)
	}
	record, _ = GetPatient("p1")
	if record.RiskStatus != models.RiskLow || record.LastProb != "12.3%" {
		t.Errorf("overwrite = %q/%q, want Low Risk/12.3%%", record.RiskStatus, record.LastProb)
	}
}

func TestRecordPrediction_UnknownPatient(t *testing.T) {
	setupDB(t)

	if err := RecordPrediction("ghost", models.RiskHigh, 0.85); !errors.Is(err, ErrNotFound) {
		t.Fatalf("RecordPrediction = %v, want ErrNotFound", err)
	}
}

func TestListPatients(t *testing.T) {
	setupDB(t)

	for _, id := range []string{"p2", "p1"} {
		if err := CreatePatient(id, "Jane Doe", 30, "hash"); err != nil {
			t.Fatalf("CreatePatient %s: %v", id, err)
		}
	}

	records, err := ListPatients()
	if err != nil {
		t.Fatalf("ListPatients: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].ID != "p1" || records[1].ID != "p2" {
		t.Errorf("order = %s, %s, want p1, p2", records[0].ID, records[1].ID)
	}
}
