package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"jobtrail/internal/config"
	"jobtrail/internal/domain"
	"jobtrail/internal/port"
)

// ScreenshotUploadInput is the DTO for screenshot upload requests.
type ScreenshotUploadInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// ScreenshotService defines the screenshot storage contract.
type ScreenshotService interface {
	Upload(ctx context.Context, input ScreenshotUploadInput) (*domain.Screenshot, error)
	GetURL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

type screenshotService struct {
	storage port.ObjectStorage
	cfg     *config.S3Config
}

// NewScreenshotService creates a new ScreenshotService implementation.
func NewScreenshotService(storage port.ObjectStorage, cfg *config.S3Config) ScreenshotService {
	return &screenshotService{storage: storage, cfg: cfg}
}

func (s *screenshotService) Upload(ctx context.Context, input ScreenshotUploadInput) (*domain.Screenshot, error) {
	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	imgType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Read first 512 bytes for magic-byte content type detection
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	detectedType := http.DetectContentType(buf[:n])

	if _, validContent := domain.AllowedContentTypes[detectedType]; !validContent {
		return nil, domain.ErrUnsupportedFileType
	}

	// Seek back to beginning for upload
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	contentType := domain.AllowedImageTypes[imgType]
	key := fmt.Sprintf("screenshots/%s.%s", uuid.New(), ext)

	log.Printf("screenshotService.Upload: uploading %s (%s, %d bytes) as %s",
		input.Header.Filename, contentType, input.Header.Size, key)

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("screenshotService.Upload: S3 upload failed for %s: %v", key, err)
		return nil, domain.ErrUploadFailed
	}

	url, err := s.storage.GetPresignedURL(ctx, s.cfg.Bucket, key, s.cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("presigning screenshot url: %w", err)
	}

	return &domain.Screenshot{
		Key:         key,
		ContentType: contentType,
		Size:        input.Header.Size,
		URL:         url,
	}, nil
}

func (s *screenshotService) GetURL(ctx context.Context, key string) (string, error) {
	return s.storage.GetPresignedURL(ctx, s.cfg.Bucket, key, s.cfg.PresignExpiry)
}

func (s *screenshotService) Delete(ctx context.Context, key string) error {
	log.Printf("screenshotService.Delete: deleting screenshot %s", key)
	return s.storage.Delete(ctx, s.cfg.Bucket, key)
}
