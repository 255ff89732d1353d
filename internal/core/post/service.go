// Package post
package post

import (
	"context"
	"errors"
	"fmt"

	"inkwell/internal/domain"
	"inkwell/internal/event"
	"inkwell/internal/logger"

	"github.com/google/uuid"
)

type Service struct {
	repo  domain.PostRepository
	cache domain.PostCache
	bus   *event.Bus
	log   logger.Logger
}

// NewService wires the post use cases. cache and bus may be nil.
func NewService(repo domain.PostRepository, cache domain.PostCache, bus *event.Bus, log logger.Logger) domain.PostService {
	return &Service{
		repo:  repo,
		cache: cache,
		bus:   bus,
		log:   log,
	}
}

func (s *Service) Create(ctx context.Context, identity domain.Identity, req domain.CreatePostRequest) (*domain.Post, error) {
	post := &domain.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: identity.UserID,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	if s.bus != nil {
		s.bus.Publish(domain.EventNamePostCreated, domain.EventPostCreated{
			PostID:    post.ID,
			AuthorID:  post.AuthorID,
			Title:     post.Title,
			CreatedAt: post.CreatedAt,
		})
	}

	return post, nil
}

func (s *Service) Update(ctx context.Context, identity domain.Identity, req domain.UpdatePostRequest) (*domain.Post, error) {
	postID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	post := &domain.Post{
		ID:       postID,
		AuthorID: identity.UserID,
	}

	if err := s.repo.UpdateOwned(ctx, post, req.Title, req.Content); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.refreshCache(ctx, post)
	}

	if s.bus != nil {
		s.bus.Publish(domain.EventNamePostUpdated, domain.EventPostUpdated{
			PostID:    post.ID,
			AuthorID:  post.AuthorID,
			Title:     post.Title,
			UpdatedAt: post.UpdatedAt,
		})
	}

	return post, nil
}

// refreshCache overwrites the cached copy with the updated row. Dropping the
// key instead would let a concurrent GetByID put the old row back.
func (s *Service) refreshCache(ctx context.Context, post *domain.Post) {
	err := s.cache.Set(ctx, post)
	if err == nil {
		return
	}

	s.log.Warn("post: cache refresh failed", "post_id", post.ID.String(), "error", err)
	if err := s.cache.Delete(ctx, post.ID); err != nil {
		s.log.Warn("post: cache invalidation failed", "post_id", post.ID.String(), "error", err)
	}
}

// GetByID returns nil, nil when the post does not exist.
func (s *Service) GetByID(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, postID)
		if err != nil {
			s.log.Warn("post: cache read failed", "post_id", postID.String(), "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, post); err != nil {
			s.log.Warn("post: cache write failed", "post_id", postID.String(), "error", err)
		}
	}

	return post, nil
}

func (s *Service) ListAll(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	if posts == nil {
		posts = []*domain.Post{}
	}

	return posts, nil
}
