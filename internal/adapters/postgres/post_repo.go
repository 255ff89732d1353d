package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inkwell/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostRepository struct {
	db *pgxpool.Pool
}

func NewPostRepository(db *pgxpool.Pool) domain.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (title, content, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id
	`

	now := time.Now().UTC()

	err := r.db.QueryRow(ctx, query, post.Title, post.Content, post.AuthorID, now).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	post.CreatedAt = now
	post.UpdatedAt = now

	return nil
}

// UpdateOwned updates the post matching both post.ID and post.AuthorID. A nil
// title or content keeps the stored value. On success post is refreshed from
// the row; when no row matches it returns domain.ErrPostNotFound.
func (r *PostRepository) UpdateOwned(ctx context.Context, post *domain.Post, title, content *string) error {
	query := `
		UPDATE posts
		SET title = COALESCE($1, title), content = COALESCE($2, content), updated_at = $3
		WHERE id = $4 AND author_id = $5
		RETURNING title, content, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, title, content, time.Now().UTC(), post.ID, post.AuthorID).Scan(
		&post.Title, &post.Content, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrPostNotFound
		}
		return fmt.Errorf("failed to update post: %w", err)
	}

	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	query := `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	var post domain.Post
	err := r.db.QueryRow(ctx, query, postID).Scan(
		&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}

	return &post, nil
}

func (r *PostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	query := `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM posts
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []*domain.Post{}
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan posts: %w", err)
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}
