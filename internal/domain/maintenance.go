package domain

import "time"

type MaintenanceStatus string

const (
	MaintenanceStatusPending    MaintenanceStatus = "pending"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceStatusPending, MaintenanceStatusInProgress, MaintenanceStatusCompleted:
		return true
	}
	return false
}

type MaintenanceUrgency string

const (
	MaintenanceUrgencyLow    MaintenanceUrgency = "low"
	MaintenanceUrgencyMedium MaintenanceUrgency = "medium"
	MaintenanceUrgencyHigh   MaintenanceUrgency = "high"
)

func (u MaintenanceUrgency) Valid() bool {
	switch u {
	case MaintenanceUrgencyLow, MaintenanceUrgencyMedium, MaintenanceUrgencyHigh:
		return true
	}
	return false
}

// MaintenanceRequest tracks a repair ticket against a rental. Photos and
// ProgressNotes are append-only logs; rows are never rewritten wholesale.
type MaintenanceRequest struct {
	ID            int64              `json:"id"`
	PropertyID    int64              `json:"property_id"`
	RentalID      int64              `json:"rental_id"`
	TenantID      string             `json:"tenant_id"`
	CaretakerID   *string            `json:"caretaker_id,omitempty"`
	Description   string             `json:"description"`
	Category      string             `json:"category"`
	Urgency       MaintenanceUrgency `json:"urgency"`
	Status        MaintenanceStatus  `json:"status"`
	Photos        []string           `json:"photos"`
	ProgressNotes []string           `json:"progress_notes"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
