package errors

import "github.com/pkg/errors"

// StackTracer is an interface that requires a StackTrace method.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// ErrorTracer is a custom error type that includes a message and an underlying error.
// The underlying error always carries a stack trace.
type ErrorTracer struct {
	Message string
	Err     error
}

// NewTracer creates a new ErrorTracer with the provided message.
func NewTracer(message string) *ErrorTracer {
	return &ErrorTracer{Message: message}
}

// TracerFromError creates a new ErrorTracer from an existing error, preserving the stack trace.
func TracerFromError(err error) *ErrorTracer {
	return &ErrorTracer{
		Message: err.Error(),
		Err:     ensureStack(err),
	}
}

// Wrap wraps an existing error into the ErrorTracer, preserving the stack trace.
func (t *ErrorTracer) Wrap(err error) *ErrorTracer {
	t.Err = ensureStack(err)
	return t
}

func (t *ErrorTracer) Error() string {
	return t.Message
}

func (t *ErrorTracer) Unwrap() error {
	return t.Err
}

// StackTrace returns the stack trace of the underlying error if it implements StackTracer.
func (t *ErrorTracer) StackTrace() errors.StackTrace {
	if withStack, ok := t.Unwrap().(StackTracer); ok {
		return withStack.StackTrace()
	}
	return nil
}

func ensureStack(err error) error {
	if _, ok := err.(StackTracer); ok {
		return err
	}
	return errors.WithStack(err)
}
