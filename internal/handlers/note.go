package handlers

import (
	"errors"
	"net/http"
	"strings"

	"oncoscreen/internal/database"
	"oncoscreen/internal/middleware"

	"github.com/gin-gonic/gin"
)

type addNoteInput struct {
	PatientID string `json:"patient_id"`
	Note      string `json:"note"`
}

// AddNote appends a clinical note to the patient's log. Doctor only
// (enforced in the router).
func (e *Env) AddNote(c *gin.Context) {
	var input addNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		jsonError(c, http.StatusBadRequest, "validation_failed", "malformed request body")
		return
	}

	input.Note = strings.TrimSpace(input.Note)
	if input.Note == "" {
		jsonError(c, http.StatusBadRequest, "validation_failed", "note must not be empty")
		return
	}

	author, ok := middleware.CurrentUser(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "auth_failed", "authentication required")
		return
	}

	err := database.AppendNote(input.PatientID, input.Note, author.Name)
	if errors.Is(err, database.ErrNotFound) {
		jsonError(c, http.StatusNotFound, "not_found", "unknown patient id")
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	database.CreateAuditLog(author.ID, input.PatientID, "add_note", "note appended")

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
