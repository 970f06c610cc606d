package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/msomdec/inkpost/internal/domain"
)

const defaultPageSize = 10

// PostService handles post CRUD and the embedded comment sequence.
type PostService struct {
	posts domain.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts domain.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// List returns one page of posts, newest first. Page and page size are
// clamped to sane minimums; a page past the end returns an empty slice.
func (s *PostService) List(ctx context.Context, filter domain.PostFilter) (*domain.PostPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	return s.posts.List(ctx, filter)
}

// Get returns a post by id with category and author populated.
func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// Create validates required fields and persists the post with an empty
// comment sequence.
func (s *PostService) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if strings.TrimSpace(post.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(post.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	}
	if post.CategoryID == 0 {
		return nil, fmt.Errorf("%w: category is required", domain.ErrInvalidInput)
	}
	if post.AuthorID == 0 {
		return nil, fmt.Errorf("%w: author is required", domain.ErrInvalidInput)
	}

	post.Comments = []domain.Comment{}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.posts.GetByID(ctx, post.ID)
}

// Update applies a partial update; only supplied fields are validated
// and changed.
func (s *PostService) Update(ctx context.Context, id int64, update domain.PostUpdate) (*domain.Post, error) {
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidInput)
	}
	if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", domain.ErrInvalidInput)
	}
	if update.CategoryID != nil && *update.CategoryID == 0 {
		return nil, fmt.Errorf("%w: category cannot be empty", domain.ErrInvalidInput)
	}
	return s.posts.Update(ctx, id, update)
}

// Delete removes the post and every embedded comment, returning the
// deleted post.
func (s *PostService) Delete(ctx context.Context, id int64) (*domain.Post, error) {
	return s.posts.Delete(ctx, id)
}

// ListComments returns the post's comments in append order.
func (s *PostService) ListComments(ctx context.Context, id int64) ([]domain.Comment, error) {
	return s.posts.ListComments(ctx, id)
}

// AddComment appends an anonymous comment to the post, stamping the
// server-side creation time.
func (s *PostService) AddComment(ctx context.Context, id int64, content string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	}

	comment := &domain.Comment{
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.posts.AppendComment(ctx, id, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
