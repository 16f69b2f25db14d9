package service

import (
	"context"

	"jobtrail/internal/domain"
)

// Extractor is the screenshot extraction contract. It never fails: the
// pipeline behind it degrades through its fallback stages down to a
// manual-entry default record.
type Extractor interface {
	Extract(ctx context.Context, imageRef string) domain.ExtractedJobData
}

// ExtractService exposes screenshot data extraction to the transport layer.
type ExtractService interface {
	ExtractFromImage(ctx context.Context, imageRef string) domain.ExtractedJobData
}

type extractService struct {
	pipeline Extractor
}

// NewExtractService creates a new ExtractService backed by the given pipeline.
func NewExtractService(pipeline Extractor) ExtractService {
	return &extractService{pipeline: pipeline}
}

func (s *extractService) ExtractFromImage(ctx context.Context, imageRef string) domain.ExtractedJobData {
	return s.pipeline.Extract(ctx, imageRef)
}
