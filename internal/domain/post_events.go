package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventNamePostCreated = "post_created"
	EventNamePostUpdated = "post_updated"
)

type EventPostCreated struct {
	PostID    uuid.UUID `json:"post_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type EventPostUpdated struct {
	PostID    uuid.UUID `json:"post_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}
