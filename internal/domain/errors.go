package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrValidation          = errors.New("invalid input")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
)
