package table

import (
	"strings"
	"unicode"

	"github.com/pscheid92/emojiboard/internal/domain"
)

// Filter returns the records matching query, which must already be trimmed and
// lowercased. A record matches when the query occurs in its glyph, in its
// lowercased name, or, ignoring all whitespace on both sides, in its name.
// An empty query returns a copy of the full list.
func Filter(records []domain.SummaryRecord, query string) []domain.SummaryRecord {
	if query == "" {
		out := make([]domain.SummaryRecord, len(records))
		copy(out, records)
		return out
	}

	compactQuery := stripSpace(query)
	out := make([]domain.SummaryRecord, 0, len(records))
	for _, r := range records {
		if matches(r, query, compactQuery) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r domain.SummaryRecord, query, compactQuery string) bool {
	if strings.Contains(r.Emoji, query) {
		return true
	}
	name := strings.ToLower(r.Name)
	if strings.Contains(name, query) {
		return true
	}
	return strings.Contains(stripSpace(name), compactQuery)
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
