package models

import "time"

// CameraAction is a single audit-trail record describing something that
// happened to a camera: a status change, a maintenance visit, a move.
// Records are append-only; the service layer never updates them.
type CameraAction struct {
	ID         int64     `json:"id"`
	CameraID   int64     `json:"camera_id"`
	ActionType string    `json:"action_type"` // "Status Change", "Maintenance", "Location Change", ...
	OldValue   string    `json:"old_value,omitempty"`
	NewValue   string    `json:"new_value,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	ActionDate time.Time `json:"action_date"`
}

// TableName returns the name of the database table
// associated with the CameraAction model.
func (a CameraAction) TableName() string {
	return "camera_actions"
}
