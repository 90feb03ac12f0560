package engine

import (
	"regexp"

	"github.com/jonesrussell/siteleads/internal/domain"
)

// emailPattern matches RFC-loose email addresses.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// phonePattern matches North-American style phone numbers such as
// (312) 555-1234, 312.555.1234, or 3125551234.
var phonePattern = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

// ExtractContacts scans raw text for candidate email addresses and phone
// numbers. Matches are deduplicated by exact string comparison, keep their
// first-seen scan order, and are capped at domain.MaxContacts each.
// Callers must not assume any other ordering.
func ExtractContacts(text string) (emails, phones []string) {
	emails = dedupeCapped(emailPattern.FindAllString(text, -1), domain.MaxContacts)
	phones = dedupeCapped(phonePattern.FindAllString(text, -1), domain.MaxContacts)

	return emails, phones
}

// dedupeCapped removes duplicates while preserving first-seen order and
// truncates the result to at most limit entries.
func dedupeCapped(matches []string, limit int) []string {
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	out := make([]string, 0, limit)

	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true

		out = append(out, m)
		if len(out) == limit {
			break
		}
	}

	return out
}
