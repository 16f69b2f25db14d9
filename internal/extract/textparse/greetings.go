package textparse

import "strings"

// commonGreetings is the stoplist of salutation and role words that must
// never be mistaken for a company name. OCR text from application emails is
// full of "Dear Candidate" / "Hiring Team" lines that otherwise look like
// capitalized company phrases.
var commonGreetings = []string{
	"dear",
	"hello",
	"hi",
	"greetings",
	"good morning",
	"good afternoon",
	"good evening",
	"to whom it may concern",
	"sir",
	"madam",
	"mr",
	"mrs",
	"ms",
	"dr",
	"prof",
	"professor",
	"candidate",
	"applicant",
	"team",
	"hiring",
	"hr",
	"human resources",
	"recruiting",
	"recruitment",
}

// IsGreeting reports whether a candidate string equals, starts with, or ends
// with a common email greeting or honorific (case-insensitive).
func IsGreeting(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, g := range commonGreetings {
		if lower == g || strings.HasPrefix(lower, g+" ") || strings.HasSuffix(lower, " "+g) {
			return true
		}
	}
	return false
}
