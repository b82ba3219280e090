// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import "errors"

// Machine-readable error codes carried in every error envelope.
const (
	CodeValidation = "validation"
	CodeConflict   = "conflict"
	CodeNotFound   = "not_found"
	CodeNoChanges  = "no_changes"
	CodeInternal   = "internal"

	CodeRateLimited = "rate_limited"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

func New(code, msg string) *APIError {
	return &APIError{Code: code, Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Code   string            `json:"code"`
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Code: CodeValidation, Detail: "Validation error", Fields: fields}
}

// Kind classifies a domain error detected before any write took place.
type Kind int

const (
	KindConflict Kind = iota + 1
	KindNotFound
	KindNoChanges
)

// Code returns the envelope code for k.
func (k Kind) Code() string {
	switch k {
	case KindConflict:
		return CodeConflict
	case KindNotFound:
		return CodeNotFound
	case KindNoChanges:
		return CodeNoChanges
	default:
		return CodeInternal
	}
}

// Error is a user-facing domain error. Its message names the key that caused
// the rejection and is safe to return to clients verbatim.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func Conflict(msg string) *Error  { return &Error{Kind: KindConflict, Msg: msg} }
func NotFound(msg string) *Error  { return &Error{Kind: KindNotFound, Msg: msg} }
func NoChanges(msg string) *Error { return &Error{Kind: KindNoChanges, Msg: msg} }

// As extracts a domain error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err carries a domain error of kind k.
func IsKind(err error, k Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == k
}
