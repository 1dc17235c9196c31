package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"acsp_backend/internal/apperrors"
	"acsp_backend/internal/imageprocessor"
	"acsp_backend/internal/storage"
)

// UploadService relays validated images to the configured image host and
// returns public URLs. Nothing is kept on the API server.
type UploadService interface {
	UploadImage(ctx context.Context, upload *ImageUpload) (string, error)
}

// ImageUpload describes an incoming multipart file.
type ImageUpload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Filename    string
	MaxDim      int // longest side after normalization, 0 for the content default
}

type UploadServiceImpl struct {
	storage      storage.Storage
	processor    *imageprocessor.Processor
	maxSize      int64
	allowedTypes []string
}

func NewUploadService(store storage.Storage, processor *imageprocessor.Processor, maxSize int64, allowedTypes []string) UploadService {
	return &UploadServiceImpl{
		storage:      store,
		processor:    processor,
		maxSize:      maxSize,
		allowedTypes: allowedTypes,
	}
}

func (s *UploadServiceImpl) UploadImage(ctx context.Context, upload *ImageUpload) (string, error) {
	if s.maxSize > 0 && upload.Size > s.maxSize {
		return "", apperrors.ErrFileTooLarge
	}
	if !s.typeAllowed(upload.ContentType) {
		return "", apperrors.ErrInvalidFileType
	}

	maxDim := upload.MaxDim
	if maxDim <= 0 {
		maxDim = imageprocessor.MaxContentImageDim
	}

	// Normalize also proves the payload is a real image, not just a file
	// with an image content type.
	normalized, contentType, err := s.processor.Normalize(upload.Reader, maxDim)
	if err != nil {
		return "", apperrors.ErrInvalidFileType
	}

	path := s.objectPath(contentType)
	url, err := s.storage.Upload(ctx, path, normalized, contentType)
	if err != nil {
		return "", apperrors.ExternalServiceError(err, "Image upload failed")
	}

	return url, nil
}

func (s *UploadServiceImpl) typeAllowed(contentType string) bool {
	for _, prefix := range s.allowedTypes {
		if strings.HasPrefix(contentType, prefix) {
			return true
		}
	}
	return false
}

// objectPath builds a collision-free storage key: date prefix for tidy
// buckets, random name so originals cannot be guessed.
func (s *UploadServiceImpl) objectPath(contentType string) string {
	ext := ".jpg"
	if contentType == "image/png" {
		ext = ".png"
	}
	return fmt.Sprintf("%s/%s%s", time.Now().UTC().Format("2006/01"), uuid.NewString(), ext)
}
