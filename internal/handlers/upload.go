package handlers

import (
	"fmt"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elitecrew/elite-crew-backend/internal/apperrors"
	s3platform "github.com/elitecrew/elite-crew-backend/internal/platform/s3"
)

// uploadImage stores a multipart image under keyPrefix and returns its URL.
// Returns ("", nil) when the form carries no file under the field name.
func uploadImage(c *gin.Context, s3Client *s3platform.Client, field string, keyPrefix string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		// No file attached
		return "", nil
	}

	if s3Client == nil {
		return "", apperrors.NewAppError(503, "image uploads are not configured", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", apperrors.NewBadRequestError("failed to read uploaded file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	key := fmt.Sprintf("%s/%s%s", keyPrefix, uuid.NewString(), filepath.Ext(fileHeader.Filename))

	url, err := s3Client.UploadFile(key, file, contentType)
	if err != nil {
		return "", apperrors.NewInternalServerError("failed to store uploaded file")
	}
	return url, nil
}
