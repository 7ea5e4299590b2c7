package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"oncoscreen/internal/database"
	"oncoscreen/internal/middleware"
	"oncoscreen/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type createPatientInput struct {
	PatientID string `json:"patient_id"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
}

// CreatePatient provisions the login and the clinical record together.
// Allowed roles: admin, doctor (enforced in the router).
func (e *Env) CreatePatient(c *gin.Context) {
	var input createPatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		jsonError(c, http.StatusBadRequest, "validation_failed", "malformed request body")
		return
	}

	if err := ValidatePatientID(input.PatientID); err != nil {
		jsonError(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	if err := ValidateName(input.Name); err != nil {
		jsonError(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	if err := ValidatePassword(input.Password); err != nil {
		jsonError(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		internalError(c, err)
		return
	}

	err = database.CreatePatient(input.PatientID, input.Name, input.Age, string(hash))
	if errors.Is(err, database.ErrDuplicateID) {
		jsonError(c, http.StatusConflict, "duplicate_id", "Patient ID already exists")
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	if actor, ok := middleware.CurrentUser(c); ok {
		database.CreateAuditLog(actor.ID, input.PatientID, "create_patient",
			fmt.Sprintf("created patient %s (%s)", input.PatientID, input.Name))
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Patient Created"})
}

type patientView struct {
	ID         string
	Name       string
	Age        int
	RiskStatus string
	LastProb   string
	Notes      []string
	Images     []string
}

// Dashboard lists records for staff; a patient only ever sees their own.
func (e *Env) Dashboard(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var (
		records []models.PatientRecord
		err     error
	)
	if user.Role == models.RolePatient {
		var record *models.PatientRecord
		record, err = database.GetPatient(user.ID)
		if err == nil {
			records = []models.PatientRecord{*record}
		} else if errors.Is(err, database.ErrNotFound) {
			records, err = nil, nil
		}
	} else {
		records, err = database.ListPatients()
	}
	if err != nil {
		internalError(c, err)
		return
	}

	views := make([]patientView, 0, len(records))
	for _, r := range records {
		views = append(views, toPatientView(r))
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"patients":     views,
		"featureNames": e.Model.FeatureNames,
		"modelLoaded":  e.Model.Loaded,
	})
}

func toPatientView(r models.PatientRecord) patientView {
	v := patientView{
		ID:         r.ID,
		Name:       r.Name,
		Age:        r.Age,
		RiskStatus: r.RiskStatus,
		LastProb:   r.LastProb,
	}
	for _, n := range r.Notes {
		v.Notes = append(v.Notes, fmt.Sprintf("[%s] Dr. %s: %s",
			n.CreatedAt.Format("2006-01-02 15:04"), n.Author, n.Text))
	}
	for _, img := range r.Images {
		v.Images = append(v.Images, img.Filename)
	}
	return v
}
