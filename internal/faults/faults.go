// Package faults holds the error taxonomy shared by the store, the services
// and the transports. Callers classify an error with errors.Is against the
// sentinels below.
package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStorage marks persistence faults. They are never retried.
	ErrStorage = errors.New("storage fault")
	// ErrValidation marks input rejected before it reaches storage.
	ErrValidation = errors.New("validation fault")
	// ErrAuth marks rejected credentials or tokens.
	ErrAuth = errors.New("auth fault")
	// ErrNotFound marks a lookup of something that does not exist.
	ErrNotFound = errors.New("not found")
)

// Storage wraps err as a storage fault for the named operation. A nil err
// stays nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func Auth(reason string) error {
	return fmt.Errorf("%w: %s", ErrAuth, reason)
}

func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func IsStorage(err error) bool    { return errors.Is(err, ErrStorage) }
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
func IsAuth(err error) bool       { return errors.Is(err, ErrAuth) }
func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }

// Message returns the text following the outermost fault sentinel, which is
// safe to show to users. Errors outside the taxonomy yield "".
func Message(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sentinel := range []error{ErrValidation, ErrAuth, ErrNotFound} {
		if !errors.Is(err, sentinel) {
			continue
		}
		prefix := sentinel.Error() + ": "
		if i := strings.Index(msg, prefix); i >= 0 {
			return msg[i+len(prefix):]
		}
		return sentinel.Error()
	}
	return ""
}
