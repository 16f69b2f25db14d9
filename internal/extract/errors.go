package extract

import (
	"errors"
	"fmt"
)

// ErrStageTimeout indicates an extraction stage lost the race against its
// timer. The pipeline treats it like any other stage failure.
var ErrStageTimeout = errors.New("extraction stage timed out")

// OCRError wraps a failure in the OCR stage. Op identifies the sub-step
// ("fetch", "init", "recognize").
type OCRError struct {
	Op  string
	Err error
}

func (e *OCRError) Error() string {
	return fmt.Sprintf("ocr %s: %v", e.Op, e.Err)
}

func (e *OCRError) Unwrap() error {
	return e.Err
}

// NewOCRError creates an OCRError for the given sub-step.
func NewOCRError(op string, err error) *OCRError {
	return &OCRError{Op: op, Err: err}
}

// VisionError wraps a failure in the vision stage. Reason identifies the
// failure mode ("api", "empty response", "malformed json").
type VisionError struct {
	Reason string
	Err    error
}

func (e *VisionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vision %s: %v", e.Reason, e.Err)
	}
	return "vision " + e.Reason
}

func (e *VisionError) Unwrap() error {
	return e.Err
}

// NewVisionError creates a VisionError for the given failure mode.
func NewVisionError(reason string, err error) *VisionError {
	return &VisionError{Reason: reason, Err: err}
}
