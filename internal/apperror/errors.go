package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind defines the category of an application error.
type Kind string

const (
	KindValidation     Kind = "VALIDATION"
	KindNotFound       Kind = "NOT_FOUND"
	KindGraphIntegrity Kind = "GRAPH_INTEGRITY"
	KindInternal       Kind = "INTERNAL"
)

// Error is the typed failure raised by the catalog core.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports malformed or out-of-range input.
func Validation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

// ValidationWrap keeps the underlying validator error for logging.
func ValidationWrap(message string, err error) error {
	return &Error{Kind: KindValidation, Message: message, Err: err}
}

// NotFound reports a referenced resource that does not exist, e.g. NotFound("categories").
func NotFound(resource string) error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

// GraphIntegrity reports a cyclic or otherwise malformed category hierarchy.
func GraphIntegrity(format string, args ...any) error {
	return &Error{Kind: KindGraphIntegrity, Message: fmt.Sprintf(format, args...)}
}

func Internal(message string, err error) error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsValidation(err error) bool {
	return err != nil && KindOf(err) == KindValidation
}

func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

func IsGraphIntegrity(err error) bool {
	return err != nil && KindOf(err) == KindGraphIntegrity
}

// HTTPStatus maps an error to the status code a transport should answer with.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage hides internal details of server-side failures.
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case KindValidation, KindNotFound:
			return appErr.Message
		}
	}
	return "internal server error"
}
