package database

import "oncoscreen/internal/models"

// CreateAuditLog appends to the audit trail. Best effort: a failed audit
// write never blocks the request that triggered it.
func CreateAuditLog(actorID, patientID, action, details string) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		ActorID:   actorID,
		PatientID: patientID,
		Action:    action,
		Details:   details,
	}
	_ = DB.Create(&record).Error
}
