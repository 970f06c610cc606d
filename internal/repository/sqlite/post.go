package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/msomdec/inkpost/internal/domain"
)

// PostRepository implements domain.PostRepository using SQLite.
// The comments column holds the embedded comment sequence as a JSON
// array in append order.
type PostRepository struct {
	db *sql.DB
}

// commentRecord is the stored JSON shape of an embedded comment.
type commentRecord struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func encodeComments(comments []domain.Comment) (string, error) {
	records := make([]commentRecord, len(comments))
	for i, c := range comments {
		records[i] = commentRecord{Content: c.Content, CreatedAt: c.CreatedAt}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encode comments: %w", err)
	}
	return string(raw), nil
}

func decodeComments(raw string) ([]domain.Comment, error) {
	var records []commentRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	comments := make([]domain.Comment, len(records))
	for i, rec := range records {
		comments[i] = domain.Comment{Content: rec.Content, CreatedAt: rec.CreatedAt}
	}
	return comments, nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	now := time.Now().UTC()
	comments, err := encodeComments(post.Comments)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (title, content, category_id, author_id, featured_image, comments, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		post.Title, post.Content, post.CategoryID, post.AuthorID,
		post.FeaturedImage, comments, now, now,
	)
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("%w: category or author does not exist", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	post.ID = id
	post.CreatedAt = now
	post.UpdatedAt = now
	return nil
}

// postColumns selects a post joined with its category and author. The
// author's password hash is deliberately never part of the projection.
const postColumns = `
	p.id, p.title, p.content, p.category_id, p.author_id, p.featured_image, p.comments, p.created_at, p.updated_at,
	c.id, c.name, c.description, c.slug, c.created_at, c.updated_at,
	u.id, u.username, u.email, u.created_at, u.updated_at`

const postFrom = `
	FROM posts p
	JOIN categories c ON c.id = p.category_id
	JOIN users u ON u.id = p.author_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*domain.Post, error) {
	p := &domain.Post{Category: &domain.Category{}, Author: &domain.User{}}
	var comments string
	err := row.Scan(
		&p.ID, &p.Title, &p.Content, &p.CategoryID, &p.AuthorID, &p.FeaturedImage, &comments, &p.CreatedAt, &p.UpdatedAt,
		&p.Category.ID, &p.Category.Name, &p.Category.Description, &p.Category.Slug, &p.Category.CreatedAt, &p.Category.UpdatedAt,
		&p.Author.ID, &p.Author.Username, &p.Author.Email, &p.Author.CreatedAt, &p.Author.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Comments, err = decodeComments(comments)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	row := r.db.QueryRowContext(ctx, "SELECT"+postColumns+postFrom+" WHERE p.id = ?", id)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query post by id: %w", err)
	}
	return post, nil
}

func (r *PostRepository) List(ctx context.Context, filter domain.PostFilter) (*domain.PostPage, error) {
	var conds []string
	var args []any
	if filter.TitleQuery != "" {
		conds = append(conds, "p.title LIKE ?")
		args = append(args, "%"+filter.TitleQuery+"%")
	}
	if filter.CategoryID != 0 {
		conds = append(conds, "p.category_id = ?")
		args = append(args, filter.CategoryID)
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts p"+where, args...).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	query := "SELECT" + postColumns + postFrom + where +
		" ORDER BY p.created_at DESC, p.id DESC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, query, append(args, filter.PageSize, offset)...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &domain.PostPage{
		Posts:      posts,
		Total:      total,
		TotalPages: (total + filter.PageSize - 1) / filter.PageSize,
	}, nil
}

func (r *PostRepository) Update(ctx context.Context, id int64, update domain.PostUpdate) (*domain.Post, error) {
	var sets []string
	var args []any
	if update.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *update.Title)
	}
	if update.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *update.Content)
	}
	if update.CategoryID != nil {
		sets = append(sets, "category_id = ?")
		args = append(args, *update.CategoryID)
	}
	if update.FeaturedImage != nil {
		sets = append(sets, "featured_image = ?")
		args = append(args, *update.FeaturedImage)
	}

	if len(sets) > 0 {
		sets = append(sets, "updated_at = ?")
		args = append(args, time.Now().UTC())

		result, err := r.db.ExecContext(ctx,
			"UPDATE posts SET "+strings.Join(sets, ", ")+" WHERE id = ?",
			append(args, id)...,
		)
		if err != nil {
			if isForeignKeyError(err) {
				return nil, fmt.Errorf("%w: category does not exist", domain.ErrInvalidInput)
			}
			return nil, fmt.Errorf("update post: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("rows affected: %w", err)
		}
		if rows == 0 {
			return nil, domain.ErrNotFound
		}
	}

	return r.GetByID(ctx, id)
}

func (r *PostRepository) Delete(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The embedded comments live in the same row, so this single
	// statement removes the post and all its comments.
	if _, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("delete post: %w", err)
	}
	return post, nil
}

func (r *PostRepository) ListComments(ctx context.Context, id int64) ([]domain.Comment, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, "SELECT comments FROM posts WHERE id = ?", id).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query post comments: %w", err)
	}
	return decodeComments(raw)
}

func (r *PostRepository) AppendComment(ctx context.Context, id int64, comment *domain.Comment) error {
	record, err := json.Marshal(commentRecord{Content: comment.Content, CreatedAt: comment.CreatedAt})
	if err != nil {
		return fmt.Errorf("encode comment: %w", err)
	}

	// json_insert with '$[#]' appends in place, keeping the whole
	// operation a single-row atomic write.
	result, err := r.db.ExecContext(ctx,
		`UPDATE posts SET comments = json_insert(comments, '$[#]', json(?)), updated_at = ? WHERE id = ?`,
		string(record), time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("append comment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
