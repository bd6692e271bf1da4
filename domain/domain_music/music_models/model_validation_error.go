package music_models

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindInvalidFormat    ErrorKind = "INVALID_FORMAT"
	KindExtractionFailed ErrorKind = "EXTRACTION_FAILED"
	KindDurationExceeded ErrorKind = "DURATION_EXCEEDED"
	KindNotAnArtist      ErrorKind = "NOT_AN_ARTIST"
	KindMissingUpload    ErrorKind = "MISSING_UPLOAD"
	KindEmptyQuery       ErrorKind = "EMPTY_QUERY"

	KindInvalidArgument ErrorKind = "INVALID_ARGUMENT"
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindForbidden       ErrorKind = "FORBIDDEN"
	KindConflict        ErrorKind = "CONFLICT"
	KindUnauthorized    ErrorKind = "UNAUTHORIZED"
)

// ValidationError 面向用户的拒绝型错误，不会导致进程失败
type ValidationError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(kind ErrorKind, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapValidationError 保留底层原因，Message 仍为用户可读文本
func WrapValidationError(kind ErrorKind, err error, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

func KindOf(err error) (ErrorKind, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind, true
	}
	return "", false
}

func IsValidationError(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
