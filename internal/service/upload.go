package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/msomdec/inkpost/internal/domain"
)

// allowedImageExts is the extension allow-list for featured images.
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// UploadService persists uploaded featured images to a content directory
// and hands back the relative path they are served under.
type UploadService struct {
	dir string
}

// NewUploadService creates an UploadService writing into dir.
func NewUploadService(dir string) *UploadService {
	return &UploadService{dir: dir}
}

// Dir returns the directory uploads are written to.
func (s *UploadService) Dir() string {
	return s.dir
}

// Save validates the original filename's extension against the image
// allow-list, stores the file under a collision-resistant generated name
// (timestamp + field name + original extension), and returns the
// relative path the file is served at. Rejected extensions fail with
// domain.ErrUnsupportedFile before anything is written.
func (s *UploadService) Save(fieldName, originalName string, file io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("%w: only jpg, jpeg, png, and gif files are allowed", domain.ErrUnsupportedFile)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), fieldName, ext)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return "/uploads/" + name, nil
}
