package reconcile

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorKind classifies fatal reconciliation failures.
type ErrorKind string

const (
	// KindSourceRead means the desired-stock input could not be read or parsed.
	KindSourceRead ErrorKind = "SOURCE_READ_ERROR"
	// KindFetch means reading remote inventory failed (transport or logical).
	KindFetch ErrorKind = "FETCH_ERROR"
	// KindUpdate means writing remote inventory failed (transport or logical).
	KindUpdate ErrorKind = "UPDATE_ERROR"
	// KindConfig means the run configuration is invalid.
	KindConfig ErrorKind = "CONFIG_ERROR"
)

// Error is a fatal reconciliation error.
type Error struct {
	// Kind is the failure class.
	Kind ErrorKind

	// Op describes what was being done, e.g. "fetch product variants".
	Op string

	// Payload holds the structured error payload returned by the remote API, if any.
	Payload json.RawMessage

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Op)
	if len(e.Payload) > 0 {
		msg += ": remote errors: " + string(e.Payload)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewSourceReadError wraps a failure to read the stock source.
func NewSourceReadError(location string, err error) *Error {
	return &Error{Kind: KindSourceRead, Op: fmt.Sprintf("read stock source %q", location), Err: err}
}

// NewFetchError wraps a failed variant fetch. payload may be nil.
func NewFetchError(op string, payload json.RawMessage, err error) *Error {
	return &Error{Kind: KindFetch, Op: op, Payload: payload, Err: err}
}

// NewUpdateError wraps a failed inventory update. payload may be nil.
func NewUpdateError(op string, payload json.RawMessage, err error) *Error {
	return &Error{Kind: KindUpdate, Op: op, Payload: payload, Err: err}
}

// NewConfigError reports an invalid run configuration.
func NewConfigError(format string, args ...any) *Error {
	return &Error{Kind: KindConfig, Op: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is, or wraps, an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
