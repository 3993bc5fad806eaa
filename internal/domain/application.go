package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

type Application struct {
	ID           int64             `json:"id"`
	PropertyID   int64             `json:"property_id"`
	ApplicantID  string            `json:"applicant_id"`
	FirstName    string            `json:"first_name"`
	LastName     string            `json:"last_name"`
	PhoneNumber  string            `json:"phone_number"`
	IDNumber     string            `json:"id_number"`
	Age          int32             `json:"age"`
	JobTitle     string            `json:"job_title"`
	IncomeCents  int64             `json:"income_cents"`
	IncomeSource string            `json:"income_source"`
	LeaseAgreed  bool              `json:"lease_agreed"`
	Documents    []string          `json:"documents"`
	Notes        string            `json:"notes"`
	Status       ApplicationStatus `json:"status"`
	SubmittedAt  time.Time         `json:"submitted_at"`
	ApprovedAt   *time.Time        `json:"approved_at,omitempty"`
}
