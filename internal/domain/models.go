package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxNotesLength bounds the notes field on every record the system produces.
const MaxNotesLength = 500

// ISODateFormat is the calendar date layout used throughout the API.
const ISODateFormat = "2006-01-02"

// Job represents a tracked job application.
type Job struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Company     string    `db:"company" json:"company"`
	Title       string    `db:"title" json:"title"`
	Status      JobStatus `db:"status" json:"status"`
	AppliedDate string    `db:"applied_date" json:"applied_date"`
	Notes       string    `db:"notes" json:"notes"`
	ImageURL    string    `db:"image_url" json:"image_url,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ExtractedJobData is the record the extraction pipeline produces from a
// screenshot. The JSON keys mirror what the vision service is prompted to
// return. A value is created fresh per extraction and never mutated; the
// pipeline replaces the whole record when a fallback stage takes over.
type ExtractedJobData struct {
	Company        string    `json:"company"`
	Title          string    `json:"title"`
	Status         JobStatus `json:"status"`
	Date           string    `json:"date"`
	Notes          string    `json:"notes,omitempty"`
	SourceImageURL string    `json:"sourceImageUrl,omitempty"`
}

// Stats holds aggregate job counts for the dashboard.
type Stats struct {
	TotalJobs  int `db:"total_jobs" json:"total_jobs"`
	Applied    int `db:"applied" json:"applied"`
	Interviews int `db:"interviews" json:"interviews"`
	Offers     int `db:"offers" json:"offers"`
	Rejected   int `db:"rejected" json:"rejected"`
}

// Screenshot describes an uploaded screenshot object.
type Screenshot struct {
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	URL         string `json:"url"`
}

// TruncateNotes enforces the MaxNotesLength bound.
func TruncateNotes(notes string) string {
	if len(notes) > MaxNotesLength {
		return notes[:MaxNotesLength]
	}
	return notes
}

// ValidISODate reports whether s is a syntactically valid YYYY-MM-DD
// calendar date.
func ValidISODate(s string) bool {
	_, err := time.Parse(ISODateFormat, s)
	return err == nil
}
