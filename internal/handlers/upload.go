package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"oncoscreen/internal/database"
	"oncoscreen/internal/middleware"

	"github.com/gin-gonic/gin"
)

var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".pdf":  {},
}

// UploadBiopsy stores an uploaded biopsy file and appends its reference to
// the patient's image log. Radiologist only (enforced in the router).
func (e *Env) UploadBiopsy(c *gin.Context) {
	patientID := strings.TrimSpace(c.PostForm("patient_id"))
	if patientID == "" {
		jsonError(c, http.StatusBadRequest, "validation_failed", "patient_id is required")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		jsonError(c, http.StatusBadRequest, "validation_failed", "file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		jsonError(c, http.StatusBadRequest, "validation_failed",
			"file type not accepted (png, jpg, jpeg, pdf)")
		return
	}

	stored := SanitizeFilename(patientID + "_" + filepath.Base(file.Filename))
	dst := filepath.Join(e.Cfg.UploadDir, stored)

	if err := os.MkdirAll(e.Cfg.UploadDir, 0o755); err != nil {
		internalError(c, err)
		return
	}
	if err := c.SaveUploadedFile(file, dst); err != nil {
		internalError(c, err)
		return
	}

	err = database.AppendImage(patientID, stored)
	if err != nil {
		// remove the stored file so a failed append cannot leave an
		// unreferenced upload behind
		_ = os.Remove(dst)
	}
	if errors.Is(err, database.ErrNotFound) {
		jsonError(c, http.StatusNotFound, "not_found", "unknown patient id")
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	if actor, ok := middleware.CurrentUser(c); ok {
		database.CreateAuditLog(actor.ID, patientID, "upload_biopsy", "stored "+stored)
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "filename": stored})
}

// ServeUpload returns a previously stored file.
func (e *Env) ServeUpload(c *gin.Context) {
	name := SanitizeFilename(filepath.Base(c.Param("filename")))
	path := filepath.Join(e.Cfg.UploadDir, name)

	if _, err := os.Stat(path); err != nil {
		jsonError(c, http.StatusNotFound, "not_found", "no such file")
		return
	}
	c.File(path)
}

// SanitizeFilename reduces a filename to a safe character set: letters,
// digits, dot, dash and underscore. Everything else becomes an underscore.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	// a name of only dots could escape the upload dir
	trimmed := strings.Trim(b.String(), ".")
	if trimmed == "" {
		return "_"
	}
	return trimmed
}
