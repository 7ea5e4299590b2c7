package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"oncoscreen/internal/database"
	"oncoscreen/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Predict runs the inference path: feature vector build, preprocessing,
// classification, then persists the result on the target patient. Any
// authenticated role may call it. Failures always come back as a
// structured error response; this path never surfaces a raw panic or
// error to the client.
func (e *Env) Predict(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		jsonError(c, http.StatusBadRequest, "validation_failed", "malformed request body")
		return
	}

	patientID, _ := body["patient_id_context"].(string)

	result, err := e.Model.Predict(body)
	if err != nil {
		internalError(c, err)
		return
	}

	status := result.StatusText()

	// Persisting on an unknown patient id is a no-op, matching the
	// record_prediction contract; the caller still gets the result.
	if patientID != "" {
		err := database.RecordPrediction(patientID, status, result.Probability)
		if err != nil && !errors.Is(err, database.ErrNotFound) {
			internalError(c, err)
			return
		}
	}

	if actor, ok := middleware.CurrentUser(c); ok {
		detail := fmt.Sprintf("%s (%.2f%%)", status, result.Probability*100)
		if !result.ModelLoaded {
			detail += " [fallback]"
		}
		database.CreateAuditLog(actor.ID, patientID, "predict", detail)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"prediction":   status,
		"probability":  fmt.Sprintf("%.2f%%", result.Probability*100),
		"model_loaded": result.ModelLoaded,
	})
}
