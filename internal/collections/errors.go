package collections

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// FetchErrorKind classifies why a fetch failed. Callers treat every kind the
// same way; the kind only feeds logs and the status line.
type FetchErrorKind string

const (
	KindNetwork FetchErrorKind = "network"
	KindTimeout FetchErrorKind = "timeout"
	KindStatus  FetchErrorKind = "status"
	KindDecode  FetchErrorKind = "decode"
)

// FetchError is the single failure type returned by the Record Source.
type FetchError struct {
	Kind   FetchErrorKind
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	switch {
	case e.Kind == KindStatus:
		return fmt.Sprintf("fetch records: api returned status %d", e.Status)
	case e.Err != nil:
		return fmt.Sprintf("fetch records: %s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("fetch records: %s", e.Kind)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError reports whether err is or wraps a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

func transportError(err error) *FetchError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &FetchError{Kind: KindTimeout, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &FetchError{Kind: KindTimeout, Err: err}
	}
	return &FetchError{Kind: KindNetwork, Err: err}
}
