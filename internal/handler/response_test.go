package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"jobtrail/internal/domain"
	"jobtrail/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"validation", domain.ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unsupported file type", domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{"file too large", domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{"upload failed", domain.ErrUploadFailed, http.StatusInternalServerError, "UPLOAD_FAILED"},
		{"unknown", errors.New("surprise"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, _ := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestMapDomainError_WrappedValidation(t *testing.T) {
	wrapped := errors.Join(domain.ErrValidation, errors.New("company is required"))
	status, code, _ := handler.MapDomainError(wrapped)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", code)
}
