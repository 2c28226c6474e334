package utils

import (
	"strings"
	"unicode"

	"edubrief/domain"
)

const maxQueryLength = 512

// QuerySanitizer normalizes user-supplied search queries before they are
// forwarded to the search index.
type QuerySanitizer struct {
	maxLength int
}

func NewQuerySanitizer() *QuerySanitizer {
	return &QuerySanitizer{maxLength: maxQueryLength}
}

// Sanitize strips control characters and surrounding whitespace. A query
// that exceeds the length cap is client-fixable bad input.
func (s *QuerySanitizer) Sanitize(query string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, query)

	cleaned = strings.TrimSpace(cleaned)
	if len(cleaned) > s.maxLength {
		return "", &domain.ValidationError{Field: "q", Msg: "query too long"}
	}
	return cleaned, nil
}
