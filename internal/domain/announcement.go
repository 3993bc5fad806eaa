package domain

import "time"

type Announcement struct {
	ID        int64     `json:"id"`
	AdminID   string    `json:"admin_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
