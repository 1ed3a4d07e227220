// Package errs defines the two error kinds projtime reports: IO failures
// from the filesystem or the output sink, and usage errors for invalid
// argument values the flag parser cannot reject itself.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrIO covers directory listing, file metadata, and output write failures.
	ErrIO = errors.New("io error")
	// ErrUsage covers invalid argument values.
	ErrUsage = errors.New("usage error")
)

// IO wraps err with context as an ErrIO. Both the kind and the cause stay in
// the chain, so errors.Is works against either.
func IO(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrIO, fmt.Sprintf(format, args...), err)
}

// IOf reports an IO-kind failure that has no underlying cause.
func IOf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIO, fmt.Sprintf(format, args...))
}

// Usage reports an invalid argument value.
func Usage(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}
