package handler

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/msomdec/inkpost/internal/service"
	"github.com/msomdec/inkpost/web"
)

// NewRouter wires up all HTTP routes. Mutation routes carry RequireAuth
// explicitly; list/get/comment-list reads and anonymous comment creation
// stay public.
func NewRouter(auth *service.AuthService, categories *service.CategoryService, posts *service.PostService, uploads *service.UploadService) chi.Router {
	r := chi.NewRouter()
	r.Use(Recoverer)
	r.Use(RequestLogger)
	r.Use(SecurityHeaders)

	authHandler := NewAuthHandler(auth)
	categoryHandler := NewCategoryHandler(categories)
	postHandler := NewPostHandler(posts)
	uploadHandler := NewUploadHandler(uploads)

	requireAuth := RequireAuth(auth)

	r.Get("/healthz", HandleHealthz)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)

		r.Get("/categories", categoryHandler.HandleList)
		r.With(requireAuth).Post("/categories", categoryHandler.HandleCreate)

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", postHandler.HandleList)
			r.With(requireAuth).Post("/", postHandler.HandleCreate)
			r.With(requireAuth).Post("/upload", uploadHandler.HandleUpload)
			r.Get("/{id}", postHandler.HandleGet)
			r.With(requireAuth).Put("/{id}", postHandler.HandleUpdate)
			r.With(requireAuth).Delete("/{id}", postHandler.HandleDelete)
			r.Get("/{id}/comments", postHandler.HandleListComments)
			r.Post("/{id}/comments", postHandler.HandleAddComment)
		})
	})

	// Uploaded images are served straight from the content directory.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(uploads.Dir()))))

	registerClient(r)

	return r
}

// registerClient serves the embedded browser client.
func registerClient(r chi.Router) {
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic(err)
	}
	fileServer := http.FileServerFS(staticFS)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFileFS(w, req, staticFS, "index.html")
	})
	r.Get("/static/*", http.StripPrefix("/static/", fileServer).ServeHTTP)
}
