package domain

import (
	"context"
	"time"
)

// Comment is embedded in its parent post. Comments are anonymous and
// immutable; they only disappear when the post is deleted.
type Comment struct {
	Content   string
	CreatedAt time.Time
}

// Post is a blog entry owning an ordered sequence of embedded comments.
// Category and Author are stored by id and populated on read; Author's
// password hash is never loaded alongside a post.
type Post struct {
	ID            int64
	Title         string
	Content       string
	CategoryID    int64
	AuthorID      int64
	FeaturedImage string
	Comments      []Comment
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Category *Category
	Author   *User
}

// PostFilter selects and paginates posts for listing.
// TitleQuery is a case-insensitive substring match on the title;
// CategoryID of zero means no category filter.
type PostFilter struct {
	Page       int
	PageSize   int
	CategoryID int64
	TitleQuery string
}

// PostPage is one page of a filtered post listing.
type PostPage struct {
	Posts      []Post
	Total      int
	TotalPages int
}

// PostUpdate carries a partial update; nil fields are left unchanged.
type PostUpdate struct {
	Title         *string
	Content       *string
	CategoryID    *int64
	FeaturedImage *string
}

// PostRepository defines persistence operations for posts and their
// embedded comments.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	// List returns posts sorted by creation time descending. A page past
	// the end yields an empty Posts slice, not an error.
	List(ctx context.Context, filter PostFilter) (*PostPage, error)
	Update(ctx context.Context, id int64, update PostUpdate) (*Post, error)
	// Delete removes the post and all embedded comments in a single
	// mutation, returning the deleted post.
	Delete(ctx context.Context, id int64) (*Post, error)
	ListComments(ctx context.Context, id int64) ([]Comment, error)
	// AppendComment adds the comment to the end of the post's sequence.
	AppendComment(ctx context.Context, id int64, comment *Comment) error
}
