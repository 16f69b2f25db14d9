package domain

// JobStatus represents the lifecycle stage of a job application.
type JobStatus string

const (
	StatusApplied   JobStatus = "applied"
	StatusInterview JobStatus = "interview"
	StatusOffer     JobStatus = "offer"
	StatusRejected  JobStatus = "rejected"
)

// ValidStatuses is the closed set of job statuses accepted by the API and
// produced by the extraction pipeline.
var ValidStatuses = map[JobStatus]bool{
	StatusApplied:   true,
	StatusInterview: true,
	StatusOffer:     true,
	StatusRejected:  true,
}

// NormalizeStatus coerces an arbitrary status string into the enum.
// Anything outside the set (including values invented by an external
// vision service) collapses to StatusApplied.
func NormalizeStatus(s string) JobStatus {
	st := JobStatus(s)
	if ValidStatuses[st] {
		return st
	}
	return StatusApplied
}

// ImageType represents the allowed screenshot file types for upload.
type ImageType string

const (
	ImageTypeJPG ImageType = "jpg"
	ImageTypePNG ImageType = "png"
)

// AllowedImageTypes maps ImageType to its MIME content type.
var AllowedImageTypes = map[ImageType]string{
	ImageTypeJPG: "image/jpeg",
	ImageTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to ImageType.
var AllowedContentTypes = map[string]ImageType{
	"image/jpeg": ImageTypeJPG,
	"image/png":  ImageTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to ImageType.
var AllowedExtensions = map[string]ImageType{
	"jpg":  ImageTypeJPG,
	"jpeg": ImageTypeJPG,
	"png":  ImageTypePNG,
}
