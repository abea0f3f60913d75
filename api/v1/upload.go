package v1

import (
	"net/http"

	"github.com/appcanvas-backend/services"
	"github.com/gin-gonic/gin"
)

// UploadHandler accepts multipart file uploads
type UploadHandler struct {
	uploads *services.UploadService
}

// NewUploadHandler creates a new upload handler instance
func NewUploadHandler(uploads *services.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Upload stores the uploaded file and returns its public URL
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "no file uploaded"})
		return
	}

	url, err := h.uploads.Store(file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
