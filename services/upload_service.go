package services

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/appcanvas-backend/models"
	"github.com/google/uuid"
)

// UploadService persists uploaded files into the content directory
type UploadService struct {
	dir string
}

// NewUploadService creates a new upload service writing into dir
func NewUploadService(dir string) *UploadService {
	return &UploadService{dir: dir}
}

// Store writes the uploaded file under a generated unique name and returns
// the relative URL it is served from. Uploads are not tied to a project
// here; the caller attaches the URL via AddAsset separately.
func (s *UploadService) Store(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", models.ErrInvalidInput
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}
