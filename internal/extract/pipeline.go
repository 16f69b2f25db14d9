package extract

import (
	"context"
	"log"
	"time"

	"jobtrail/internal/domain"
	"jobtrail/internal/extract/textparse"
	"jobtrail/internal/port"
)

// Pipeline runs the ordered extraction fallback chain:
// vision model -> OCR + heuristic parse -> manual-entry default.
//
// A nil adapter marks that capability as absent (no vision credential, no
// OCR engine in this runtime); the corresponding stage is skipped rather
// than failed. Extract never returns an error: a fully degraded run still
// yields a usable default record.
type Pipeline struct {
	vision port.VisionExtractor
	ocr    port.TextRecognizer
	now    func() time.Time
}

// NewPipeline creates a Pipeline. Either adapter may be nil.
func NewPipeline(vision port.VisionExtractor, ocr port.TextRecognizer) *Pipeline {
	return NewPipelineWithClock(vision, ocr, time.Now)
}

// NewPipelineWithClock creates a Pipeline with a fixed clock (for testing).
func NewPipelineWithClock(vision port.VisionExtractor, ocr port.TextRecognizer, now func() time.Time) *Pipeline {
	return &Pipeline{vision: vision, ocr: ocr, now: now}
}

// Extract produces a job record from the given image reference. Each stage's
// failure is logged and swallowed; the chain advances until a stage succeeds
// or the default record is reached.
func (p *Pipeline) Extract(ctx context.Context, imageRef string) domain.ExtractedJobData {
	if p.vision != nil {
		rec, err := p.vision.ExtractStructured(ctx, imageRef)
		if err == nil {
			log.Printf("extract.Pipeline: vision stage succeeded for %s", imageRef)
			return rec
		}
		log.Printf("extract.Pipeline: vision stage failed: %v", err)
	} else {
		log.Printf("extract.Pipeline: vision stage skipped: no credential configured")
	}

	if p.ocr != nil {
		text, err := p.ocr.Recognize(ctx, imageRef)
		if err == nil {
			log.Printf("extract.Pipeline: ocr stage succeeded for %s, parsing text", imageRef)
			return textparse.Parse(text, imageRef, p.now())
		}
		log.Printf("extract.Pipeline: ocr stage failed: %v", err)
	} else {
		log.Printf("extract.Pipeline: ocr stage skipped: engine unavailable")
	}

	log.Printf("extract.Pipeline: all stages exhausted for %s, returning default record", imageRef)
	return DefaultRecord(imageRef, p.now())
}

// DefaultRecord is the terminal fallback: an empty record the user fills in
// by hand.
func DefaultRecord(imageRef string, now time.Time) domain.ExtractedJobData {
	return domain.ExtractedJobData{
		Status:         domain.StatusApplied,
		Date:           now.Format(domain.ISODateFormat),
		Notes:          "No data extracted - please fill in manually",
		SourceImageURL: imageRef,
	}
}
