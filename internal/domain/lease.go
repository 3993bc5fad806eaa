package domain

import "time"

type LeaseStatus string

const (
	LeaseStatusSentToTenant        LeaseStatus = "sent_to_tenant"
	LeaseStatusSignedByTenant      LeaseStatus = "signed_by_tenant"
	LeaseStatusAcknowledgedByManager LeaseStatus = "acknowledged_by_manager"
)

type Lease struct {
	ID             int64       `json:"id"`
	ManagerID      string      `json:"manager_id"`
	TenantID       string      `json:"tenant_id"`
	ApplicationID  int64       `json:"application_id"`
	LeaseDocument  string      `json:"lease_document"`
	SignedDocument *string     `json:"signed_document,omitempty"`
	Status         LeaseStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// LeaseWithApplication is the list row returned to clients, joining a
// summary of the application the lease was issued for.
type LeaseWithApplication struct {
	Lease
	ApplicantFirstName string            `json:"applicant_first_name"`
	ApplicantLastName  string            `json:"applicant_last_name"`
	PropertyID         int64             `json:"property_id"`
	ApplicationStatus  ApplicationStatus `json:"application_status"`
}
