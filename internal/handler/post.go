package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/msomdec/inkpost/internal/domain"
	"github.com/msomdec/inkpost/internal/service"
)

// PostHandler handles post CRUD and comment requests.
type PostHandler struct {
	posts *service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// postID parses the {id} path parameter. Ids must be numeric; a
// malformed id is rejected before any store interaction.
func postID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErrors(w, http.StatusBadRequest, []FieldError{{Msg: "Invalid post ID", Path: "id"}})
		return 0, false
	}
	return id, true
}

// HandleList returns a page of posts, newest first.
// GET /api/posts?page&limit&q&category
// Response: {"total","page","pageSize","totalPages","posts":[...]}
func (h *PostHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)

	filter := domain.PostFilter{
		Page:       page,
		PageSize:   limit,
		TitleQuery: r.URL.Query().Get("q"),
	}
	if raw := r.URL.Query().Get("category"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeErrors(w, http.StatusBadRequest, []FieldError{{Msg: "Invalid category ID", Path: "category"}})
			return
		}
		filter.CategoryID = categoryID
	}

	result, err := h.posts.List(r.Context(), filter)
	if err != nil {
		slog.Error("list posts", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	posts := toPostDTOs(result.Posts)
	writeJSON(w, http.StatusOK, PostListDTO{
		Total:      result.Total,
		Page:       page,
		PageSize:   len(posts),
		TotalPages: result.TotalPages,
		Posts:      posts,
	})
}

// HandleGet returns a single post with category, author, and comments.
// GET /api/posts/{id}
func (h *PostHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	post, err := h.posts.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		slog.Error("get post", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, toPostDTO(post))
}

// HandleCreate creates a new post.
// POST /api/posts (auth required)
// Request: {"title","content","author","category","featuredImage"?}
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title         string `json:"title"`
		Content       string `json:"content"`
		Author        int64  `json:"author"`
		Category      int64  `json:"category"`
		FeaturedImage string `json:"featuredImage"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, []FieldError{{Msg: "Invalid request body"}})
		return
	}

	var v validator
	v.require("title", req.Title, "Title is required")
	v.require("content", req.Content, "Content is required")
	if req.Author == 0 {
		v.add("author", "Author is required")
	}
	if req.Category == 0 {
		v.add("category", "Category is required")
	}
	if !v.ok() {
		writeErrors(w, http.StatusBadRequest, v.errs)
		return
	}

	post, err := h.posts.Create(r.Context(), &domain.Post{
		Title:         req.Title,
		Content:       req.Content,
		AuthorID:      req.Author,
		CategoryID:    req.Category,
		FeaturedImage: req.FeaturedImage,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeErrors(w, http.StatusBadRequest, []FieldError{{Msg: err.Error()}})
			return
		}
		slog.Error("create post", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, toPostDTO(post))
}

// HandleUpdate applies a partial update; absent fields are left unchanged.
// PUT /api/posts/{id} (auth required)
func (h *PostHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	var req struct {
		Title         *string `json:"title"`
		Content       *string `json:"content"`
		Category      *int64  `json:"category"`
		FeaturedImage *string `json:"featuredImage"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, []FieldError{{Msg: "Invalid request body"}})
		return
	}

	post, err := h.posts.Update(r.Context(), id, domain.PostUpdate{
		Title:         req.Title,
		Content:       req.Content,
		CategoryID:    req.Category,
		FeaturedImage: req.FeaturedImage,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeErrors(w, http.StatusBadRequest, []FieldError{{Msg: err.Error()}})
			return
		}
		slog.Error("update post", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, toPostDTO(post))
}

// HandleDelete removes a post and all its embedded comments.
// DELETE /api/posts/{id} (auth required)
func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	if _, err := h.posts.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		slog.Error("delete post", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted"})
}

// HandleListComments returns a post's comments in append order.
// GET /api/posts/{id}/comments
func (h *PostHandler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	comments, err := h.posts.ListComments(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		slog.Error("list comments", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, toCommentDTOs(comments))
}

// HandleAddComment appends an anonymous comment to a post.
// POST /api/posts/{id}/comments (no auth)
// Request: {"content":"..."}
func (h *PostHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, []FieldError{{Msg: "Invalid request body"}})
		return
	}

	var v validator
	v.require("content", req.Content, "Content is required")
	if !v.ok() {
		writeErrors(w, http.StatusBadRequest, v.errs)
		return
	}

	comment, err := h.posts.AddComment(r.Context(), id, req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeErrors(w, http.StatusBadRequest, []FieldError{{Msg: err.Error(), Path: "content"}})
			return
		}
		slog.Error("add comment", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, toCommentDTO(*comment))
}

// queryInt parses a positive integer query parameter, falling back to def.
func queryInt(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
