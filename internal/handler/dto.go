package handler

import (
	"time"

	"github.com/msomdec/inkpost/internal/domain"
)

// UserDTO is the JSON representation of a user. The password hash has no
// field here, so it can never leak into a response.
type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// CategoryDTO is the JSON representation of a category.
type CategoryDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func toCategoryDTO(c *domain.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Slug:        c.Slug,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}

func toCategoryDTOs(categories []domain.Category) []CategoryDTO {
	dtos := make([]CategoryDTO, len(categories))
	for i := range categories {
		dtos[i] = toCategoryDTO(&categories[i])
	}
	return dtos
}

// CommentDTO is the JSON representation of an embedded comment.
type CommentDTO struct {
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

func toCommentDTO(c domain.Comment) CommentDTO {
	return CommentDTO{
		Content:   c.Content,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func toCommentDTOs(comments []domain.Comment) []CommentDTO {
	dtos := make([]CommentDTO, len(comments))
	for i, c := range comments {
		dtos[i] = toCommentDTO(c)
	}
	return dtos
}

// PostDTO is the JSON representation of a post with category and author
// embedded by value.
type PostDTO struct {
	ID            int64        `json:"id"`
	Title         string       `json:"title"`
	Content       string       `json:"content"`
	Category      CategoryDTO  `json:"category"`
	Author        UserDTO      `json:"author"`
	FeaturedImage string       `json:"featuredImage,omitempty"`
	Comments      []CommentDTO `json:"comments"`
	CreatedAt     string       `json:"createdAt"`
	UpdatedAt     string       `json:"updatedAt"`
}

func toPostDTO(p *domain.Post) PostDTO {
	return PostDTO{
		ID:            p.ID,
		Title:         p.Title,
		Content:       p.Content,
		Category:      toCategoryDTO(p.Category),
		Author:        toUserDTO(p.Author),
		FeaturedImage: p.FeaturedImage,
		Comments:      toCommentDTOs(p.Comments),
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
	}
}

func toPostDTOs(posts []domain.Post) []PostDTO {
	dtos := make([]PostDTO, len(posts))
	for i := range posts {
		dtos[i] = toPostDTO(&posts[i])
	}
	return dtos
}

// PostListDTO is the paginated post listing envelope.
type PostListDTO struct {
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
	Posts      []PostDTO `json:"posts"`
}
