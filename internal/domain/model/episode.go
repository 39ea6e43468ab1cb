package model

import (
	"time"
)

// Episode belongs to exactly one Podcast; every lookup is scoped by
// (podcast_id, episode_id) so an id valid under another podcast never matches.
type Episode struct {
	ID        string    `json:"id"`
	PodcastID string    `json:"podcast_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
