package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorInvalid represents errors due to invalid input or configuration.
	// The caller can correct these upstream; they never indicate a bug in the
	// component core itself.
	ErrorInvalid ErrorClass = iota
	// ErrorFatal represents programmer misuse of the component lifecycle,
	// such as operating on a disposed component. These should fail loudly.
	ErrorFatal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Lifecycle misuse errors
	ErrDisposed     = errors.New("component already disposed")
	ErrNilElement   = errors.New("component has no backing element")
	ErrSelfAdoption = errors.New("component cannot adopt itself")

	// Registry errors
	ErrUnknownComponent = errors.New("component type not registered")
	ErrNilDefinition    = errors.New("component definition is nil")

	// Configuration errors
	ErrInvalidOptions = errors.New("invalid options")
	ErrMissingOptions = errors.New("missing required options")
	ErrInvalidConfig  = errors.New("invalid configuration")

	// Event and subscription errors
	ErrNilHandler       = errors.New("event handler is nil")
	ErrNilTarget        = errors.New("event target is nil")
	ErrEmptyEventType   = errors.New("event type is empty")
	ErrSubscriptionGone = errors.New("subscription already cancelled")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsFatal checks if an error represents lifecycle misuse that should stop the
// caller rather than be swallowed.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}

	return errors.Is(err, ErrDisposed) ||
		errors.Is(err, ErrNilElement) ||
		errors.Is(err, ErrSelfAdoption)
}

// IsInvalid checks if an error is due to invalid input or configuration.
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	return errors.Is(err, ErrInvalidOptions) ||
		errors.Is(err, ErrMissingOptions) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrUnknownComponent)
}

// Classify returns the error class for an error. Unknown errors default to
// Invalid: the component core performs no I/O, so anything unclassified came
// from caller input.
func Classify(err error) ErrorClass {
	if IsFatal(err) {
		return ErrorFatal
	}
	return ErrorInvalid
}

// newClassified creates a new classified error.
// This is an internal helper - use WrapInvalid() or WrapFatal() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapInvalid wraps an error as invalid input/configuration with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrappedErr, component, method, wrappedErr.Error())
}

// WrapFatal wraps an error as lifecycle misuse with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorFatal, wrappedErr, component, method, wrappedErr.Error())
}

// Is reports whether any error in err's chain matches target. Re-exported so
// callers of this package do not also need the stdlib errors package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target. Re-exported
// for the same reason as Is.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text. Re-exported for the
// same reason as Is.
func New(text string) error {
	return errors.New(text)
}
