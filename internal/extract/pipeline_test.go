package extract_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"jobtrail/internal/domain"
	"jobtrail/internal/extract"
	"jobtrail/mocks"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestPipeline_VisionSucceeds(t *testing.T) {
	want := domain.ExtractedJobData{
		Company:        "Ramp",
		Title:          "Software Engineer",
		Status:         domain.StatusApplied,
		Date:           "2024-03-14",
		SourceImageURL: "img.png",
	}

	vision := new(mocks.MockVisionExtractor)
	vision.On("ExtractStructured", mock.Anything, "img.png").Return(want, nil)
	ocr := new(mocks.MockTextRecognizer)

	p := extract.NewPipelineWithClock(vision, ocr, fixedClock)
	got := p.Extract(context.Background(), "img.png")

	assert.Equal(t, want, got)
	vision.AssertExpectations(t)
	ocr.AssertNotCalled(t, "Recognize", mock.Anything, mock.Anything)
}

func TestPipeline_VisionFailsOCRSucceeds(t *testing.T) {
	vision := new(mocks.MockVisionExtractor)
	vision.On("ExtractStructured", mock.Anything, "img.png").
		Return(domain.ExtractedJobData{}, errors.New("api down"))

	ocr := new(mocks.MockTextRecognizer)
	ocr.On("Recognize", mock.Anything, "img.png").
		Return("Thank you for applying to Stripe!\nBackend Engineer position", nil)

	p := extract.NewPipelineWithClock(vision, ocr, fixedClock)
	got := p.Extract(context.Background(), "img.png")

	assert.Equal(t, "Stripe", got.Company)
	assert.Equal(t, "Backend Engineer", got.Title)
	assert.Equal(t, domain.StatusApplied, got.Status)
	assert.Equal(t, "2025-06-15", got.Date)
	assert.Equal(t, "img.png", got.SourceImageURL)
	vision.AssertExpectations(t)
	ocr.AssertExpectations(t)
}

func TestPipeline_AllStagesFail(t *testing.T) {
	vision := new(mocks.MockVisionExtractor)
	vision.On("ExtractStructured", mock.Anything, "img.png").
		Return(domain.ExtractedJobData{}, extract.ErrStageTimeout)

	ocr := new(mocks.MockTextRecognizer)
	ocr.On("Recognize", mock.Anything, "img.png").
		Return("", extract.NewOCRError("init", errors.New("no binary")))

	p := extract.NewPipelineWithClock(vision, ocr, fixedClock)
	got := p.Extract(context.Background(), "img.png")

	assert.Equal(t, extract.DefaultRecord("img.png", fixedNow), got)
}

func TestPipeline_NilAdaptersSkipStages(t *testing.T) {
	p := extract.NewPipelineWithClock(nil, nil, fixedClock)
	got := p.Extract(context.Background(), "shot.jpg")

	assert.Equal(t, domain.ExtractedJobData{
		Status:         domain.StatusApplied,
		Date:           "2025-06-15",
		Notes:          "No data extracted - please fill in manually",
		SourceImageURL: "shot.jpg",
	}, got)
}

func TestDefaultRecord(t *testing.T) {
	got := extract.DefaultRecord("x.png", fixedNow)

	assert.Empty(t, got.Company)
	assert.Empty(t, got.Title)
	assert.Equal(t, domain.StatusApplied, got.Status)
	assert.Equal(t, "2025-06-15", got.Date)
	assert.Equal(t, "No data extracted - please fill in manually", got.Notes)
	assert.Equal(t, "x.png", got.SourceImageURL)
}
