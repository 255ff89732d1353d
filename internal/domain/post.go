package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrPostNotFound = errors.New("post not found")

type Post struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  uuid.UUID `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreatePostRequest rejects blank title or content.
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdatePostRequest leaves a field untouched when it is nil. At least one of
// Title or Content must be set.
type UpdatePostRequest struct {
	ID      string  `json:"id" validate:"required,uuid"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	UpdateOwned(ctx context.Context, post *Post, title, content *string) error
	GetByID(ctx context.Context, postID uuid.UUID) (*Post, error)
	List(ctx context.Context) ([]*Post, error)
}

// PostCache is a best-effort read-through cache. Get returns nil, nil on miss.
type PostCache interface {
	Get(ctx context.Context, postID uuid.UUID) (*Post, error)
	Set(ctx context.Context, post *Post) error
	Delete(ctx context.Context, postID uuid.UUID) error
}

type PostService interface {
	Create(ctx context.Context, identity Identity, req CreatePostRequest) (*Post, error)
	Update(ctx context.Context, identity Identity, req UpdatePostRequest) (*Post, error)
	GetByID(ctx context.Context, postID uuid.UUID) (*Post, error)
	ListAll(ctx context.Context) ([]*Post, error)
}
