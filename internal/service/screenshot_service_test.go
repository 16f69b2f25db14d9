package service_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jobtrail/internal/config"
	"jobtrail/internal/domain"
	"jobtrail/internal/port"
	"jobtrail/internal/service"
	"jobtrail/mocks"
)

// memFile adapts an in-memory byte slice to multipart.File.
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func newMemFile(data []byte) multipart.File {
	return memFile{Reader: bytes.NewReader(data)}
}

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

func s3TestConfig() *config.S3Config {
	return &config.S3Config{
		Bucket:        "jobtrail-screenshots",
		MaxFileSizeMB: 10,
		PresignExpiry: 3600,
	}
}

func TestScreenshotService_Upload(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "jobtrail-screenshots" && in.ContentType == "image/png"
	})).Return(&port.UploadOutput{Location: "https://s3/shot.png"}, nil)
	storage.On("GetPresignedURL", mock.Anything, "jobtrail-screenshots", mock.Anything, int64(3600)).
		Return("https://s3/presigned", nil)

	svc := service.NewScreenshotService(storage, s3TestConfig())
	shot, err := svc.Upload(context.Background(), service.ScreenshotUploadInput{
		File:   newMemFile(pngBytes),
		Header: &multipart.FileHeader{Filename: "shot.png", Size: int64(len(pngBytes))},
	})
	require.NoError(t, err)

	assert.Contains(t, shot.Key, "screenshots/")
	assert.Contains(t, shot.Key, ".png")
	assert.Equal(t, "image/png", shot.ContentType)
	assert.Equal(t, "https://s3/presigned", shot.URL)
	storage.AssertExpectations(t)
}

func TestScreenshotService_Upload_UnsupportedExtension(t *testing.T) {
	svc := service.NewScreenshotService(new(mocks.MockObjectStorage), s3TestConfig())
	_, err := svc.Upload(context.Background(), service.ScreenshotUploadInput{
		File:   newMemFile(pngBytes),
		Header: &multipart.FileHeader{Filename: "resume.pdf", Size: 100},
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestScreenshotService_Upload_ContentMismatch(t *testing.T) {
	// .png extension but plain text payload fails magic-byte detection
	svc := service.NewScreenshotService(new(mocks.MockObjectStorage), s3TestConfig())
	_, err := svc.Upload(context.Background(), service.ScreenshotUploadInput{
		File:   newMemFile([]byte("definitely not an image")),
		Header: &multipart.FileHeader{Filename: "shot.png", Size: 23},
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestScreenshotService_Upload_TooLarge(t *testing.T) {
	svc := service.NewScreenshotService(new(mocks.MockObjectStorage), s3TestConfig())
	_, err := svc.Upload(context.Background(), service.ScreenshotUploadInput{
		File:   newMemFile(pngBytes),
		Header: &multipart.FileHeader{Filename: "shot.png", Size: 11 * 1024 * 1024},
	})
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestScreenshotService_Upload_StorageFailure(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	svc := service.NewScreenshotService(storage, s3TestConfig())
	_, err := svc.Upload(context.Background(), service.ScreenshotUploadInput{
		File:   newMemFile(pngBytes),
		Header: &multipart.FileHeader{Filename: "shot.png", Size: int64(len(pngBytes))},
	})
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

func TestExtractService_Delegates(t *testing.T) {
	want := domain.ExtractedJobData{Company: "Ramp", Status: domain.StatusApplied}

	pipeline := new(stubPipeline)
	pipeline.record = want

	svc := service.NewExtractService(pipeline)
	got := svc.ExtractFromImage(context.Background(), "img.png")
	assert.Equal(t, want, got)
	assert.Equal(t, "img.png", pipeline.gotRef)
}

type stubPipeline struct {
	record domain.ExtractedJobData
	gotRef string
}

func (s *stubPipeline) Extract(ctx context.Context, imageRef string) domain.ExtractedJobData {
	s.gotRef = imageRef
	return s.record
}
