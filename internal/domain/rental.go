package domain

import "time"

type RentalStatus string

const (
	RentalStatusActive RentalStatus = "active"
	RentalStatusEnded  RentalStatus = "ended"
)

// Rental is created only as a side effect of an application being
// approved; one rental per approval.
type Rental struct {
	ID         int64        `json:"id"`
	PropertyID int64        `json:"property_id"`
	TenantID   string       `json:"tenant_id"`
	StartDate  time.Time    `json:"start_date"`
	Status     RentalStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
