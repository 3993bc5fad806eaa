package domain

import "time"

type Property struct {
	ID        int64     `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	PriceCents int64    `json:"price_cents"`
	Bedrooms  int32     `json:"bedrooms"`
	Amenities []string  `json:"amenities"`
	Images    []string  `json:"images"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
