// Package search implements the roster filter engine: a free-text predicate
// over a few record fields combined with a status selector.
package search

import (
	"strings"

	"github.com/advocates/roster/internal/roster"
)

// checkEvery is how many records FilterFunc scans between keep checks.
const checkEvery = 512

// Matcher holds a prepared search text so the lowered form is computed once.
type Matcher struct {
	text  string
	lower string
}

// NewMatcher prepares text for repeated Match calls.
func NewMatcher(text string) Matcher {
	return Matcher{text: text, lower: strings.ToLower(text)}
}

// Match reports whether r satisfies the search predicate. Name, firm and
// email compare case-insensitively; phone and certificate number compare
// exactly as typed. Empty fields never match a non-empty text.
func (m Matcher) Match(r roster.Record) bool {
	if m.text == "" {
		return true
	}
	return containsFold(r.Name, m.lower) ||
		containsFold(r.FirmName, m.lower) ||
		containsFold(r.Email, m.lower) ||
		contains(r.Phone, m.text) ||
		contains(r.CertificateNo, m.text)
}

// Filter returns the records matching both text and status, in source order.
// The returned slice never aliases records.
func Filter(records []roster.Record, text string, status roster.StatusFilter) []roster.Record {
	out, _ := FilterFunc(records, text, status, nil)
	return out
}

// FilterFunc is Filter with an abort hook. keep is consulted before every
// chunk of records; once it returns false the scan stops and FilterFunc
// returns nil, false. A nil keep never aborts.
func FilterFunc(records []roster.Record, text string, status roster.StatusFilter, keep func() bool) ([]roster.Record, bool) {
	m := NewMatcher(text)
	out := make([]roster.Record, 0, len(records))
	for i, r := range records {
		if keep != nil && i%checkEvery == 0 && !keep() {
			return nil, false
		}
		if status.Matches(r.Status) && m.Match(r) {
			out = append(out, r)
		}
	}
	return out, true
}

func containsFold(field, lowered string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), lowered)
}

func contains(field, text string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(field, text)
}
