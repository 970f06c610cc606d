package sqlite_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/msomdec/inkpost/internal/domain"
	"github.com/msomdec/inkpost/internal/repository/sqlite"
)

type postFixture struct {
	db       *sqlite.DB
	author   *domain.User
	category *domain.Category
}

func newPostFixture(t *testing.T) postFixture {
	t.Helper()
	db := newTestDB(t)
	return postFixture{
		db:       db,
		author:   createTestUser(t, db, "author", "author@example.com"),
		category: createTestCategory(t, db, "Tech", "tech"),
	}
}

func (f postFixture) createPost(t *testing.T, title string) *domain.Post {
	t.Helper()
	post := &domain.Post{
		Title:      title,
		Content:    "content of " + title,
		CategoryID: f.category.ID,
		AuthorID:   f.author.ID,
		Comments:   []domain.Comment{},
	}
	if err := f.db.Posts().Create(context.Background(), post); err != nil {
		t.Fatalf("Create post %s: %v", title, err)
	}
	return post
}

func TestPostRepository_CreateAndGet(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	post := f.createPost(t, "Hello World")

	found, err := f.db.Posts().GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	if found.Title != "Hello World" {
		t.Errorf("expected title 'Hello World', got %q", found.Title)
	}
	if found.Content != "content of Hello World" {
		t.Errorf("unexpected content %q", found.Content)
	}
	if len(found.Comments) != 0 {
		t.Errorf("expected empty comment sequence, got %d", len(found.Comments))
	}
	if found.Category == nil || found.Category.Name != "Tech" {
		t.Errorf("expected populated category, got %+v", found.Category)
	}
	if found.Author == nil || found.Author.Username != "author" {
		t.Errorf("expected populated author, got %+v", found.Author)
	}
	if found.Author.PasswordHash != "" {
		t.Error("author password hash must not be loaded with a post")
	}
}

func TestPostRepository_Create_MissingCategory(t *testing.T) {
	f := newPostFixture(t)

	err := f.db.Posts().Create(context.Background(), &domain.Post{
		Title:      "Orphan",
		Content:    "no category",
		CategoryID: 9999,
		AuthorID:   f.author.ID,
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing category, got %v", err)
	}
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	f := newPostFixture(t)

	_, err := f.db.Posts().GetByID(context.Background(), 9999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostRepository_List_Pagination(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		f.createPost(t, fmt.Sprintf("Post %d", i))
	}

	page, err := f.db.Posts().List(ctx, domain.PostFilter{Page: 1, PageSize: 3})
	if err != nil {
		t.Fatalf("List page 1: %v", err)
	}
	if page.Total != 7 {
		t.Errorf("expected total 7, got %d", page.Total)
	}
	if page.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", page.TotalPages)
	}
	if len(page.Posts) != 3 {
		t.Fatalf("expected 3 posts on page 1, got %d", len(page.Posts))
	}
	// Newest first.
	if page.Posts[0].Title != "Post 7" {
		t.Errorf("expected newest post first, got %q", page.Posts[0].Title)
	}

	page3, err := f.db.Posts().List(ctx, domain.PostFilter{Page: 3, PageSize: 3})
	if err != nil {
		t.Fatalf("List page 3: %v", err)
	}
	if len(page3.Posts) != 1 {
		t.Errorf("expected 1 post on last page, got %d", len(page3.Posts))
	}
	if page3.Posts[0].Title != "Post 1" {
		t.Errorf("expected oldest post last, got %q", page3.Posts[0].Title)
	}
}

func TestPostRepository_List_PageBeyondRange(t *testing.T) {
	f := newPostFixture(t)

	f.createPost(t, "Only One")
	f.createPost(t, "Only Two")

	page, err := f.db.Posts().List(context.Background(), domain.PostFilter{Page: 3, PageSize: 5})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Posts) != 0 {
		t.Errorf("expected empty page beyond range, got %d posts", len(page.Posts))
	}
	if page.Total != 2 {
		t.Errorf("expected total 2, got %d", page.Total)
	}
	if page.TotalPages != 1 {
		t.Errorf("expected 1 total page, got %d", page.TotalPages)
	}
}

func TestPostRepository_List_TitleQuery(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	f.createPost(t, "Go Concurrency Patterns")
	f.createPost(t, "Rust Ownership")
	f.createPost(t, "Advanced GO Tips")

	page, err := f.db.Posts().List(ctx, domain.PostFilter{Page: 1, PageSize: 10, TitleQuery: "go"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	// Substring match is case-insensitive.
	if page.Total != 2 {
		t.Fatalf("expected 2 matches for 'go', got %d", page.Total)
	}
	for _, p := range page.Posts {
		if p.Title != "Go Concurrency Patterns" && p.Title != "Advanced GO Tips" {
			t.Errorf("unexpected match %q", p.Title)
		}
	}
}

func TestPostRepository_List_CategoryFilter(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	other := createTestCategory(t, f.db, "Life", "life")
	f.createPost(t, "In Tech")

	post := &domain.Post{
		Title:      "In Life",
		Content:    "c",
		CategoryID: other.ID,
		AuthorID:   f.author.ID,
	}
	if err := f.db.Posts().Create(ctx, post); err != nil {
		t.Fatalf("Create: %v", err)
	}

	page, err := f.db.Posts().List(ctx, domain.PostFilter{Page: 1, PageSize: 10, CategoryID: other.ID})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Total != 1 || page.Posts[0].Title != "In Life" {
		t.Fatalf("expected only the 'In Life' post, got %+v", page.Posts)
	}
}

func TestPostRepository_Update_Partial(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	post := f.createPost(t, "Original Title")

	newTitle := "Updated Title"
	updated, err := f.db.Posts().Update(ctx, post.ID, domain.PostUpdate{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Title != "Updated Title" {
		t.Errorf("expected updated title, got %q", updated.Title)
	}
	// Unspecified fields are untouched.
	if updated.Content != post.Content {
		t.Errorf("content changed unexpectedly: %q", updated.Content)
	}
	if updated.CategoryID != post.CategoryID {
		t.Errorf("category changed unexpectedly: %d", updated.CategoryID)
	}
}

func TestPostRepository_Update_NotFound(t *testing.T) {
	f := newPostFixture(t)

	title := "whatever"
	_, err := f.db.Posts().Update(context.Background(), 9999, domain.PostUpdate{Title: &title})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostRepository_Delete(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	post := f.createPost(t, "Doomed")
	if err := f.db.Posts().AppendComment(ctx, post.ID, &domain.Comment{Content: "bye"}); err != nil {
		t.Fatalf("AppendComment: %v", err)
	}

	deleted, err := f.db.Posts().Delete(ctx, post.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.Title != "Doomed" {
		t.Errorf("expected deleted post returned, got %q", deleted.Title)
	}

	if _, err := f.db.Posts().GetByID(ctx, post.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if _, err := f.db.Posts().ListComments(ctx, post.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for comments after delete, got %v", err)
	}
}

func TestPostRepository_Delete_NotFound(t *testing.T) {
	f := newPostFixture(t)

	_, err := f.db.Posts().Delete(context.Background(), 9999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostRepository_AppendComment_PreservesOrder(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	post := f.createPost(t, "Discussion")

	for i := 1; i <= 5; i++ {
		comment := &domain.Comment{Content: fmt.Sprintf("comment %d", i)}
		if err := f.db.Posts().AppendComment(ctx, post.ID, comment); err != nil {
			t.Fatalf("AppendComment %d: %v", i, err)
		}
	}

	comments, err := f.db.Posts().ListComments(ctx, post.ID)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(comments) != 5 {
		t.Fatalf("expected 5 comments, got %d", len(comments))
	}
	for i, c := range comments {
		want := fmt.Sprintf("comment %d", i+1)
		if c.Content != want {
			t.Errorf("position %d: expected %q, got %q", i, want, c.Content)
		}
	}
}

func TestPostRepository_AppendComment_NotFound(t *testing.T) {
	f := newPostFixture(t)

	err := f.db.Posts().AppendComment(context.Background(), 9999, &domain.Comment{Content: "lost"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostRepository_ListComments_EmptyPost(t *testing.T) {
	f := newPostFixture(t)

	post := f.createPost(t, "Quiet")

	comments, err := f.db.Posts().ListComments(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("expected no comments, got %d", len(comments))
	}
}
