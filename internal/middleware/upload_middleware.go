package middleware

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"ambition/pkg/logger"
	"ambition/pkg/storage"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContextUploadedFiles holds a map[string]string of form field name to the
// stored file's URL, set by UploadImages.
const ContextUploadedFiles = "uploaded_files"

// UploadImages stores every file field of a multipart request through the
// configured storage backend and exposes the resulting URLs to the handler.
// Requests without a multipart body pass through untouched.
func UploadImages(provider storage.Provider, maxSizeMB int, log *logger.Logger) gin.HandlerFunc {
	maxBytes := int64(maxSizeMB) << 20

	return func(c *gin.Context) {
		contentType := c.GetHeader("Content-Type")
		if !strings.HasPrefix(contentType, "multipart/form-data") {
			c.Next()
			return
		}

		if err := c.Request.ParseMultipartForm(maxBytes); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart body"})
			c.Abort()
			return
		}

		urls := make(map[string]string)
		for field, headers := range c.Request.MultipartForm.File {
			if len(headers) == 0 {
				continue
			}
			header := headers[0]
			if header.Size > maxBytes {
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("file %s exceeds %dMB", field, maxSizeMB)})
				c.Abort()
				return
			}

			file, err := header.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
				c.Abort()
				return
			}

			key := fmt.Sprintf("uploads/%s%s", primitive.NewObjectID().Hex(), filepath.Ext(header.Filename))
			result, err := provider.Upload(c.Request.Context(), &storage.UploadRequest{
				Key:         key,
				Reader:      file,
				ContentType: header.Header.Get("Content-Type"),
				Size:        header.Size,
			})
			file.Close()
			if err != nil {
				log.WithError(err).WithField("field", field).Error("failed to store uploaded file")
				c.JSON(http.StatusBadGateway, gin.H{"error": "failed to store uploaded file"})
				c.Abort()
				return
			}

			urls[field] = result.URL
		}

		c.Set(ContextUploadedFiles, urls)
		c.Next()
	}
}
