package model

import (
	"time"
)

type Podcast struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Category  string    `json:"category"`
	Rating    float64   `json:"rating"`
	OwnerID   string    `json:"owner_id"` // Set at creation, never reassigned
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Episodes  []Episode `json:"episodes,omitempty"`
}
