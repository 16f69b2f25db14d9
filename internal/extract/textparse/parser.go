package textparse

import (
	"sort"
	"strings"
	"time"

	"jobtrail/internal/domain"
)

// Parse turns raw OCR text into a best-effort job record. It never fails:
// fields that cannot be determined come back empty, status defaults to
// applied, and the date defaults to now. Parse is a pure function of its
// inputs, so identical text always yields an identical record.
func Parse(text, imageRef string, now time.Time) domain.ExtractedJobData {
	lines := splitLines(text)

	company := detectCompany(lines, text)
	title := detectTitle(lines, text)

	// Strip angle brackets left over from email sender captures.
	company = strings.TrimSpace(stripAngles(company))
	title = strings.TrimSpace(stripAngles(title))

	return domain.ExtractedJobData{
		Company:        company,
		Title:          title,
		Status:         detectStatus(text),
		Date:           detectDate(text, now),
		Notes:          buildNotes(lines, company, title),
		SourceImageURL: imageRef,
	}
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func stripAngles(s string) string {
	return strings.NewReplacer("<", "", ">", "").Replace(s)
}

func detectCompany(lines []string, text string) string {
	for _, line := range lines {
		for _, rule := range companyRules {
			if c := rule.extract(line); c != "" {
				return c
			}
		}
	}
	if c := repeatedCompanyCandidate(text); c != "" {
		return c
	}
	return firstLinesCompany(lines)
}

// repeatedCompanyCandidate scans the whole text for capitalized words and
// phrases that occur at least twice, ranked by frequency, then phrase length
// in words, then string length. The top candidate that survives the greeting
// and generic-noun filters is taken as the company.
func repeatedCompanyCandidate(text string) string {
	for _, word := range findRepeatedCapitalized(text) {
		if !IsGreeting(word) && len(word) >= 3 && len(word) <= 30 &&
			!reGenericJobNoun.MatchString(word) {
			return word
		}
	}
	return ""
}

func findRepeatedCapitalized(text string) []string {
	matches := reSingleCap.FindAllString(text, -1)
	matches = append(matches, reMultiCap.FindAllString(text, -1)...)

	counts := make(map[string]int)
	for _, m := range matches {
		word := strings.TrimSpace(m)
		if len(word) <= 1 || commonCapitalizedWords[word] || IsGreeting(word) {
			continue
		}
		// weekday and month abbreviations read like proper nouns but never are
		if reCalendarPrefix.MatchString(word) {
			continue
		}
		counts[word]++
	}

	var repeated []string
	for word, count := range counts {
		if count >= 2 && len(word) >= 3 {
			repeated = append(repeated, word)
		}
	}

	sort.SliceStable(repeated, func(i, j int) bool {
		a, b := repeated[i], repeated[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		wordsA := len(strings.Fields(a))
		wordsB := len(strings.Fields(b))
		if wordsA != wordsB {
			return wordsA > wordsB
		}
		return len(a) > len(b)
	})

	return repeated
}

// firstLinesCompany is the last-resort company scan: a capitalized word or a
// short capitalized phrase in the first 8 lines, skipping anything that looks
// like an address, a link, or boilerplate.
func firstLinesCompany(lines []string) string {
	limit := len(lines)
	if limit > 8 {
		limit = 8
	}
	for _, line := range lines[:limit] {
		lower := strings.ToLower(line)
		if strings.Contains(line, "@") || strings.Contains(line, "http") ||
			strings.Contains(lower, "thank") || strings.Contains(lower, "application") ||
			strings.Contains(lower, "team") || IsGreeting(line) ||
			len(line) <= 2 || len(line) >= 50 {
			continue
		}

		for _, word := range strings.Fields(line) {
			if reSingleCapAnchor.MatchString(word) && len(word) > 3 && !IsGreeting(word) {
				return word
			}
		}

		// multi-word names like "Lockheed Martin"
		clean := strings.TrimSpace(reNonWordOrSpace.ReplaceAllString(line, ""))
		if reCapPhraseAnchor.MatchString(clean) &&
			len(strings.Fields(clean)) <= 3 && !IsGreeting(clean) {
			return clean
		}
	}
	return ""
}

func detectTitle(lines []string, text string) string {
	for _, line := range lines {
		lower := strings.ToLower(line)

		if strings.Contains(lower, "position:") || strings.Contains(lower, "title:") ||
			strings.Contains(lower, "role:") || strings.Contains(lower, "job title:") {
			if t := afterColon(line); t != "" {
				return t
			}
		}

		if m := reApplyToOur.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}

		if containsTitleKeyword(lower) {
			clean := reTitleLeading.ReplaceAllString(line, "")
			clean = reTitleTrailing.ReplaceAllString(clean, "")
			clean = strings.TrimSpace(clean)
			if len(clean) >= 5 && len(clean) <= 99 {
				return clean
			}
		}
	}

	for _, pattern := range titlePatterns {
		if m := pattern.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

func containsTitleKeyword(lower string) bool {
	for _, kw := range titleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// detectStatus scans for keyword families in fixed priority order:
// interview beats offer beats rejected. Texts often mention several states
// ("we scheduled an interview", "the offer was declined"), so the order is
// significant.
func detectStatus(text string) domain.JobStatus {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "interview") || strings.Contains(lower, "scheduled"):
		return domain.StatusInterview
	case strings.Contains(lower, "offer") || strings.Contains(lower, "accepted"):
		return domain.StatusOffer
	case strings.Contains(lower, "reject") || strings.Contains(lower, "declined"):
		return domain.StatusRejected
	}
	return domain.StatusApplied
}

func detectDate(text string, now time.Time) string {
	for _, p := range datePatterns {
		m := p.re.FindString(text)
		if m == "" {
			continue
		}
		for _, layout := range p.layouts {
			t, err := time.Parse(layout, m)
			if err != nil {
				continue
			}
			// layouts without a year parse to year 0; not a real date
			if t.Year() == 0 {
				continue
			}
			return t.Format(domain.ISODateFormat)
		}
	}
	return now.Format(domain.ISODateFormat)
}

// buildNotes joins the first two lines that are not the company/title, not
// contact noise, and long enough to carry information.
func buildNotes(lines []string, company, title string) string {
	var kept []string
	for _, line := range lines {
		if company != "" && strings.Contains(line, company) {
			continue
		}
		if title != "" && strings.Contains(line, title) {
			continue
		}
		if len(line) <= 15 {
			continue
		}
		if strings.Contains(line, "@") || strings.Contains(line, "http") {
			continue
		}
		kept = append(kept, line)
		if len(kept) == 2 {
			break
		}
	}
	return domain.TruncateNotes(strings.Join(kept, " "))
}
