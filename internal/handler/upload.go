package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/inkpost/internal/domain"
	"github.com/msomdec/inkpost/internal/service"
)

// maxUploadSize caps featured image uploads at 10MB.
const maxUploadSize = 10 << 20

// uploadFieldName is the multipart form field carrying the image.
const uploadFieldName = "featuredImage"

// UploadHandler handles featured image uploads.
type UploadHandler struct {
	uploads *service.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploads *service.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// HandleUpload stores a featured image and returns its served path.
// POST /api/posts/upload (auth required, multipart field "featuredImage")
// Response: 201 {"filePath":"/uploads/..."} or 400 {"error":"..."}
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "File too large or malformed upload")
		return
	}

	file, header, err := r.FormFile(uploadFieldName)
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded or invalid file type")
		return
	}
	defer file.Close()

	filePath, err := h.uploads.Save(uploadFieldName, header.Filename, file)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedFile) {
			writeError(w, http.StatusBadRequest, "Only image files are allowed")
			return
		}
		slog.Error("save upload", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"filePath": filePath})
}
