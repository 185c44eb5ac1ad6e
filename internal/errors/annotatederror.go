// Package errors provides annotated errors that carry slog attributes and the
// source location where the error was created. It re-exports the standard
// library helpers so that callers only need a single errors import.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// annotatedError wraps an error with a message, slog attributes, and the
// source location of the call site that created it.
type annotatedError struct {
	msg    string
	err    error
	attrs  []slog.Attr
	source string
}

// Error implements the error interface.
func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

// Unwrap allows errors.Is and errors.As to traverse the chain.
func (e *annotatedError) Unwrap() error {
	return e.err
}

// NewSentinel creates a new annotated error without a cause. Use it for
// package-level sentinel errors.
func NewSentinel(msg string) error {
	return &annotatedError{
		msg:    msg,
		err:    nil,
		attrs:  nil,
		source: callerSource(),
	}
}

// Wrap annotates err with a message and optional slog attributes.
// A nil err is tolerated and results in an error without a cause.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		msg:    msg,
		err:    err,
		attrs:  attrs,
		source: callerSource(),
	}
}

// New returns an error that formats as the given text.
func New(msg string) error {
	return errors.New(msg) //nolint:err113 // pass-through to the standard library.
}

// Unwrap calls [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Is calls [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As calls [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target) //nolint:errorlint // pass-through to the standard library.
}

// Join calls [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// DecoratePanic converts a recovered panic value into an annotated error
// pointing at the recovery site.
func DecoratePanic(recovered any) error {
	return &annotatedError{
		msg:    fmt.Sprintf("panic: %v", recovered),
		err:    nil,
		attrs:  nil,
		source: callerSource(),
	}
}

// SlogError renders err as a structured slog attribute. Annotations and source
// locations from every annotated error in the chain are included.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	var (
		attrs   []slog.Attr
		sources []string
	)
	for unwrapped := err; unwrapped != nil; unwrapped = errors.Unwrap(unwrapped) {
		if annotated, ok := unwrapped.(*annotatedError); ok { //nolint:errorlint // chain is walked manually.
			attrs = append(attrs, annotated.attrs...)
			sources = append(sources, annotated.source)
		}
	}

	groupAttrs := []any{slog.String("message", err.Error())}
	if len(sources) > 0 {
		groupAttrs = append(groupAttrs, slog.String("source", strings.Join(sources, " <- ")))
	}
	if len(attrs) > 0 {
		annotationArgs := make([]any, len(attrs))
		for i, attr := range attrs {
			annotationArgs[i] = attr
		}
		groupAttrs = append(groupAttrs, slog.Group("annotations", annotationArgs...))
	}
	return slog.Group("error", groupAttrs...)
}

// callerSource returns the file:line of the first caller outside this package.
func callerSource() string {
	const maxDepth = 16
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(2, pcs) //nolint:mnd // skip runtime.Callers and this function.
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasSuffix(frame.File, "annotatederror.go") {
			return fmt.Sprintf("%s:%d", trimPath(frame.File), frame.Line)
		}
		if !more {
			return "unknown"
		}
	}
}

// trimPath shortens the file path to the last two path elements.
func trimPath(file string) string {
	parts := strings.Split(file, "/")
	if len(parts) <= 2 {
		return file
	}
	return strings.Join(parts[len(parts)-2:], "/")
}
