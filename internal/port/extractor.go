package port

import (
	"context"

	"jobtrail/internal/domain"
)

// VisionExtractor abstracts a multimodal vision model that turns a screenshot
// into a structured job record in one shot.
type VisionExtractor interface {
	ExtractStructured(ctx context.Context, imageRef string) (domain.ExtractedJobData, error)
}

// TextRecognizer abstracts an OCR engine that turns a screenshot into raw
// recognized text.
type TextRecognizer interface {
	Recognize(ctx context.Context, imageRef string) (string, error)
}
