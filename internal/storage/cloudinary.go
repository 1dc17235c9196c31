package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage implements Storage over the Cloudinary upload API.
type CloudinaryStorage struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStorage creates a Cloudinary-backed storage instance.
// Credentials come from cfg.CloudinaryURL or the CLOUDINARY_URL env variable.
func NewCloudinaryStorage(cfg Config) (*CloudinaryStorage, error) {
	var (
		client *cloudinary.Cloudinary
		err    error
	)
	if cfg.CloudinaryURL != "" {
		client, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
	} else {
		client, err = cloudinary.New()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}

	folder := cfg.Folder
	if folder == "" {
		folder = "acsp"
	}

	return &CloudinaryStorage{
		client: client,
		folder: folder,
	}, nil
}

// Upload sends the file to Cloudinary and returns its secure URL.
func (s *CloudinaryStorage) Upload(ctx context.Context, path string, reader io.Reader, contentType string) (string, error) {
	res, err := s.client.Upload.Upload(ctx, reader, uploader.UploadParams{
		Folder:       s.folder,
		PublicID:     publicID(path),
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary rejected upload: %s", res.Error.Message)
	}

	return res.SecureURL, nil
}

// Delete removes the file from Cloudinary.
func (s *CloudinaryStorage) Delete(ctx context.Context, path string) error {
	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: s.folder + "/" + publicID(path),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from cloudinary: %w", err)
	}

	return nil
}

// publicID strips the file extension, Cloudinary derives the format itself.
func publicID(path string) string {
	if i := strings.LastIndex(path, "."); i > 0 {
		return path[:i]
	}
	return path
}
