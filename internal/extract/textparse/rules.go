package textparse

import (
	"regexp"
	"strings"
)

// companyRule is one entry in the ordered company-detection cascade. Rules
// are evaluated per line, top to bottom; the first non-empty extraction wins.
// Keeping them as data rather than inline branching lets each rule be tested
// and reordered independently.
type companyRule struct {
	name    string
	extract func(line string) string
}

var (
	reThankYou     = regexp.MustCompile(`(?i)thank you for applying to ([^!.]+)`)
	reAtCompany    = regexp.MustCompile(`\sat\s+([A-Z][a-zA-Z0-9\s&]+?)[\s!.,]`)
	reHiringTeam   = regexp.MustCompile(`(?i)^([A-Z][a-zA-Z0-9\s&]+?)\s+hiring\s+team`)
	reEmailSender  = regexp.MustCompile(`^([A-Z][a-zA-Z0-9\s&]+?)\s*<[^>]+@[a-zA-Z0-9.-]+`)
	reCandidateRef = regexp.MustCompile(`(?i)reference number\s*-\s*([A-Za-z\s]+)`)
)

var companyRules = []companyRule{
	{name: "labeled-field", extract: func(line string) string {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "company:") ||
			strings.Contains(lower, "employer:") ||
			strings.Contains(lower, "organization:") {
			return afterColon(line)
		}
		return ""
	}},
	{name: "thank-you-for-applying", extract: func(line string) string {
		if m := reThankYou.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
		return ""
	}},
	{name: "at-company", extract: func(line string) string {
		if m := reAtCompany.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
		return ""
	}},
	{name: "hiring-team", extract: func(line string) string {
		if m := reHiringTeam.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
		return ""
	}},
	{name: "email-sender", extract: func(line string) string {
		if m := reEmailSender.FindStringSubmatch(line); m != nil {
			sender := strings.TrimSpace(m[1])
			if !IsGreeting(sender) && len(sender) > 2 {
				return sender
			}
		}
		return ""
	}},
	{name: "candidate-reference", extract: func(line string) string {
		if m := reCandidateRef.FindStringSubmatch(line); m != nil {
			name := strings.TrimSpace(m[1])
			if !IsGreeting(name) && len(name) > 2 {
				return name
			}
		}
		return ""
	}},
}

// afterColon returns the segment between the first and second colon, trimmed.
func afterColon(line string) string {
	parts := strings.Split(line, ":")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Repeated-capitalized-word inference. Companies tend to mention their own
// name several times in one email (subject, body, signature), so a
// capitalized word or phrase occurring twice or more is a strong company
// candidate once common English and email words are discarded.
var (
	reSingleCap       = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
	reMultiCap        = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`)
	reCalendarPrefix  = regexp.MustCompile(`^(Mon|Tue|Wed|Thu|Fri|Sat|Sun|Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`)
	reGenericJobNoun  = regexp.MustCompile(`(?i)^(Application|Position|Job|Role|Team|Hiring|Email|Message|Subject)$`)
	reNonWordOrSpace  = regexp.MustCompile(`[^\w\s]`)
	reSingleCapAnchor = regexp.MustCompile(`^[A-Z][a-z]+$`)
	reCapPhraseAnchor = regexp.MustCompile(`^[A-Z][a-zA-Z\s]+$`)
)

var commonCapitalizedWords = map[string]bool{
	"Thank": true, "You": true, "Your": true, "Application": true,
	"Team": true, "Hiring": true, "Email": true, "Message": true,
	"Subject": true, "Dear": true, "Hello": true, "Best": true,
	"Regards": true, "Sincerely": true, "Please": true, "We": true,
	"This": true, "That": true, "The": true, "A": true, "An": true,
	"And": true, "Or": true, "But": true, "For": true, "To": true,
	"From": true, "With": true, "By": true, "At": true, "In": true,
	"On": true, "Of": true, "As": true, "Is": true, "Are": true,
	"Was": true, "Were": true, "Be": true, "Been": true, "Have": true,
	"Has": true, "Had": true, "Do": true, "Does": true, "Did": true,
	"Will": true, "Would": true, "Could": true, "Should": true,
	"May": true, "Might": true, "Can": true, "Must": true, "Shall": true,
	"Reference": true, "Number": true, "Candidate": true, "Letter": true,
	"Letters": true, "Inbox": true,
}

// Title detection.
var (
	reApplyToOur    = regexp.MustCompile(`(?i)apply to our ([^!.]+?)(?:\s+opening|\s+at|\s+position|!|\.)`)
	reTitleLeading  = regexp.MustCompile(`(?i)^(to our|for our|apply to|applying to|the|a|an)\s+`)
	reTitleTrailing = regexp.MustCompile(`(?i)\s+(opening|position|role|at\s+\w+).*$`)
)

var titleKeywords = []string{
	"engineer", "developer", "internship", "manager", "analyst",
	"specialist", "coordinator", "assistant", "director",
	"frontend", "backend", "fullstack", "software",
}

// titlePatterns are fallback templates for common title phrasings, tried
// against the full text when the line-based rules find nothing.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)software\s+associate\s+degree\s+programmer[^.]*?(?:entry\s+level)?[^.]*`),
	regexp.MustCompile(`(?i)software\s+engineer(?:\s+internship)?(?:\s*\|\s*frontend)?`),
	regexp.MustCompile(`(?i)frontend\s+(?:engineer|developer)(?:\s+internship)?`),
	regexp.MustCompile(`(?i)backend\s+(?:engineer|developer)(?:\s+internship)?`),
	regexp.MustCompile(`(?i)full\s*stack\s+(?:engineer|developer)(?:\s+internship)?`),
	regexp.MustCompile(`(?i)data\s+(?:scientist|analyst|engineer)`),
	regexp.MustCompile(`(?i)product\s+manager(?:\s+internship)?`),
	regexp.MustCompile(`(?i)(?:senior|junior|lead)\s+(?:engineer|developer)`),
	regexp.MustCompile(`(?i)(?:entry\s+level\s+)?(?:software|hardware|systems?)\s+(?:engineer|developer|programmer)`),
	regexp.MustCompile(`(?i)associate\s+(?:software|hardware|systems?)\s+(?:engineer|developer|programmer)`),
}

// Date detection: ordered patterns with their time.Parse layouts. The first
// regex match that parses into a real calendar date wins; a match that fails
// to parse is skipped, not fatal.
type datePattern struct {
	re      *regexp.Regexp
	layouts []string
}

var datePatterns = []datePattern{
	{regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`), []string{"1/2/2006"}},
	{regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`), []string{"2006-01-02"}},
	{regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{4}\b`), []string{"1-2-2006"}},
	{regexp.MustCompile(`\b\w+ \d{1,2}, \d{4}\b`), []string{"January 2, 2006", "Jan 2, 2006"}},
	{regexp.MustCompile(`\b\w+,\s+\w+ \d{1,2}, \d{1,2}:\d{2}\w{2}`), []string{"Monday, January 2, 3:04pm", "Mon, Jan 2, 3:04pm"}},
}
