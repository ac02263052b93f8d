// Package errors provides the typed error taxonomy for notification dispatch.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a dispatch error.
type Kind string

const (
	// KindValidation marks a missing or invalid required request field.
	KindValidation Kind = "VALIDATION_ERROR"
	// KindNotFound marks a failed reseller, client, or employee lookup,
	// including a client that does not belong to the resolved reseller.
	KindNotFound Kind = "NOT_FOUND"
	// KindTemplateData marks an assembled template field that came out empty.
	KindTemplateData Kind = "TEMPLATE_DATA_EMPTY"
)

// Error is a terminal dispatch error. Status carries the numeric
// classification callers branch on (400 for validation/not-found,
// 500 for template data).
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewValidationError creates a 400 validation error.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message, Status: 400}
}

// NewNotFoundError creates a 400 lookup error.
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message, Status: 400}
}

// NewTemplateDataError creates a 500 error naming the empty template field.
func NewTemplateDataError(field string) *Error {
	return &Error{
		Kind:    KindTemplateData,
		Message: fmt.Sprintf("Template Data (%s) is empty!", field),
		Status:  500,
	}
}

// KindOf returns the Kind of err, or "" when err is not a dispatch error.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// StatusOf returns the numeric classification of err. Unrecognized errors
// map to 500.
func StatusOf(err error) int {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Status
	}
	return 500
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsNotFound reports whether err is a lookup error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsTemplateData reports whether err is a template-data error.
func IsTemplateData(err error) bool { return KindOf(err) == KindTemplateData }
