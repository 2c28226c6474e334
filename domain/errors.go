package domain

import (
	"errors"
	"strings"
)

// ErrNotFound marks a requested content entity as absent. It maps to a
// not-found response, not an error page.
var ErrNotFound = errors.New("not found")

// ValidationError is client-fixable bad input. It is detected before any
// external side-effecting call is made.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

// VerificationError means the bot-challenge token was rejected by the
// verification service.
type VerificationError struct {
	Codes []string
}

func (e *VerificationError) Error() string {
	if len(e.Codes) == 0 {
		return "bot verification rejected"
	}
	return "bot verification rejected: " + strings.Join(e.Codes, ", ")
}

// UpstreamError means an external collaborator (CMS, search index, mail
// or verification service) was unreachable or returned an error. It is
// not client-fixable.
type UpstreamError struct {
	Service string
	Op      string
	Err     string
}

func (e *UpstreamError) Error() string {
	return e.Service + ": " + e.Op + ": " + e.Err
}
