package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/msomdec/inkpost/internal/domain"
	"github.com/msomdec/inkpost/internal/service"
)

func TestPostService_Create(t *testing.T) {
	db := newTestDB(t)
	posts := service.NewPostService(db.Posts())
	ctx := context.Background()

	author := createTestUser(t, db)
	category := createTestCategory(t, db)

	post, err := posts.Create(ctx, &domain.Post{
		Title:      "First",
		Content:    "body",
		CategoryID: category.ID,
		AuthorID:   author.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.ID == 0 {
		t.Error("expected post ID to be set")
	}
	if post.Category == nil || post.Category.ID != category.ID {
		t.Errorf("expected populated category, got %+v", post.Category)
	}
	if post.Author == nil || post.Author.ID != author.ID {
		t.Errorf("expected populated author, got %+v", post.Author)
	}
	if post.Comments == nil || len(post.Comments) != 0 {
		t.Errorf("expected empty comment sequence, got %+v", post.Comments)
	}
}

func TestPostService_Create_Validation(t *testing.T) {
	db := newTestDB(t)
	posts := service.NewPostService(db.Posts())
	ctx := context.Background()

	author := createTestUser(t, db)
	category := createTestCategory(t, db)

	cases := []struct {
		name string
		post domain.Post
	}{
		{"missing title", domain.Post{Content: "c", CategoryID: category.ID, AuthorID: author.ID}},
		{"blank title", domain.Post{Title: "  ", Content: "c", CategoryID: category.ID, AuthorID: author.ID}},
		{"missing content", domain.Post{Title: "t", CategoryID: category.ID, AuthorID: author.ID}},
		{"missing category", domain.Post{Title: "t", Content: "c", AuthorID: author.ID}},
		{"missing author", domain.Post{Title: "t", Content: "c", CategoryID: category.ID}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			post := tc.post
			if _, err := posts.Create(ctx, &post); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestPostService_List_ClampsPaging(t *testing.T) {
	db := newTestDB(t)
	posts := service.NewPostService(db.Posts())
	ctx := context.Background()

	author := createTestUser(t, db)
	category := createTestCategory(t, db)
	if _, err := posts.Create(ctx, &domain.Post{
		Title: "Only", Content: "c", CategoryID: category.ID, AuthorID: author.ID,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Page 0 and negative sizes fall back to page 1 with the default size.
	page, err := posts.List(ctx, domain.PostFilter{Page: 0, PageSize: -5})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 1 || len(page.Posts) != 1 {
		t.Fatalf("expected the single post, got total=%d len=%d", page.Total, len(page.Posts))
	}
}

func TestPostService_Update_RejectsBlankFields(t *testing.T) {
	db := newTestDB(t)
	posts := service.NewPostService(db.Posts())
	ctx := context.Background()

	author := createTestUser(t, db)
	category := createTestCategory(t, db)
	created, err := posts.Create(ctx, &domain.Post{
		Title: "Keep", Content: "c", CategoryID: category.ID, AuthorID: author.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	blank := "   "
	if _, err := posts.Update(ctx, created.ID, domain.PostUpdate{Title: &blank}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank title, got %v", err)
	}

	got, err := posts.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Keep" {
		t.Errorf("title changed after rejected update: %q", got.Title)
	}
}

func TestPostService_AddComment(t *testing.T) {
	db := newTestDB(t)
	posts := service.NewPostService(db.Posts())
	ctx := context.Background()

	author := createTestUser(t, db)
	category := createTestCategory(t, db)
	created, err := posts.Create(ctx, &domain.Post{
		Title: "Talk", Content: "c", CategoryID: category.ID, AuthorID: author.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	before := time.Now().UTC().Add(-time.Second)
	comment, err := posts.AddComment(ctx, created.ID, "nice post")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if comment.Content != "nice post" {
		t.Errorf("unexpected content %q", comment.Content)
	}
	if comment.CreatedAt.Before(before) {
		t.Errorf("expected server-side timestamp, got %v", comment.CreatedAt)
	}

	comments, err := posts.ListComments(ctx, created.ID)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(comments) != 1 || comments[0].Content != "nice post" {
		t.Fatalf("expected the appended comment, got %+v", comments)
	}
}

func TestPostService_AddComment_Blank(t *testing.T) {
	db := newTestDB(t)
	posts := service.NewPostService(db.Posts())
	ctx := context.Background()

	author := createTestUser(t, db)
	category := createTestCategory(t, db)
	created, err := posts.Create(ctx, &domain.Post{
		Title: "Talk", Content: "c", CategoryID: category.ID, AuthorID: author.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := posts.AddComment(ctx, created.ID, "   "); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
