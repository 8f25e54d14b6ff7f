package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrRequired      = errors.New("required field is missing")
	ErrMalformed     = errors.New("malformed value")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrConflict      = errors.New("consistency rule violated")
	ErrPrecondition  = errors.New("precondition not met")
	ErrNotFound      = errors.New("resource not found")
)

// RuleError is a business-rule failure with a message meant for the end user.
// errors.Is matches it against its Kind.
type RuleError struct {
	Kind error
	Msg  string
}

func (e *RuleError) Error() string { return e.Msg }

func (e *RuleError) Is(target error) bool { return target == e.Kind }

func newRuleError(kind error, format string, args ...any) error {
	return &RuleError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Required(format string, args ...any) error {
	return newRuleError(ErrRequired, format, args...)
}

func Malformed(format string, args ...any) error {
	return newRuleError(ErrMalformed, format, args...)
}

func Duplicate(format string, args ...any) error {
	return newRuleError(ErrAlreadyExists, format, args...)
}

func Conflict(format string, args ...any) error {
	return newRuleError(ErrConflict, format, args...)
}

func Precondition(format string, args ...any) error {
	return newRuleError(ErrPrecondition, format, args...)
}

func NotFound(format string, args ...any) error {
	return newRuleError(ErrNotFound, format, args...)
}
