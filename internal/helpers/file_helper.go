package helpers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadConfig struct {
	MaxSizeBytes      int64
	AllowedExtensions []string
	AllowedMimeTypes  []string
	UploadDir         string
	PublicPath        string
}

var DefaultImageUploadConfig = UploadConfig{
	MaxSizeBytes:      10 * 1024 * 1024, // 10MB
	AllowedExtensions: []string{".jpeg", ".jpg", ".png", ".gif"},
	AllowedMimeTypes: []string{
		"image/jpeg",
		"image/png",
		"image/gif",
	},
	UploadDir:  "./uploads",
	PublicPath: "/uploads",
}

// AllowedImageType checks the file extension and the sniffed MIME type
// against the config. Both must pass; neither alone is trusted.
func (cfg UploadConfig) AllowedImageType(filename, mimeType string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	extOK := false
	for _, allowed := range cfg.AllowedExtensions {
		if ext == allowed {
			extOK = true
			break
		}
	}
	if !extOK {
		return false
	}
	for _, allowed := range cfg.AllowedMimeTypes {
		if mimeType == allowed {
			return true
		}
	}
	return false
}

// UploadImage validates and stores an uploaded image, returning its public
// web path. Validation failures are client errors and must surface as 400.
func UploadImage(c *gin.Context, fileHeader *multipart.FileHeader, configs ...UploadConfig) (string, error) {
	cfg := DefaultImageUploadConfig
	if len(configs) > 0 {
		cfg = configs[0]
	}

	if fileHeader.Size > cfg.MaxSizeBytes {
		return "", fmt.Errorf("file size exceeds maximum limit of %d MB", cfg.MaxSizeBytes/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	buffer := make([]byte, 512)
	n, err := src.Read(buffer)
	if err != nil && n == 0 {
		return "", err
	}
	mimeType := http.DetectContentType(buffer[:n])

	if !cfg.AllowedImageType(fileHeader.Filename, mimeType) {
		return "", fmt.Errorf("invalid file type. Allowed types: %v", cfg.AllowedExtensions)
	}

	if err := os.MkdirAll(cfg.UploadDir, os.ModePerm); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s%s", uuid.New().String(), strings.ToLower(filepath.Ext(fileHeader.Filename)))
	if err := c.SaveUploadedFile(fileHeader, filepath.Join(cfg.UploadDir, filename)); err != nil {
		return "", err
	}

	return cfg.PublicPath + "/" + filename, nil
}
