package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport matches every failure to obtain a response, including non-2xx statuses.
	ErrTransport = errors.New("forecast transport failure")
	// ErrDecode matches responses that are not valid JSON or do not match the Forecast schema.
	ErrDecode = errors.New("forecast decode failure")
	// ErrSuperseded is returned by Request.Do when a newer trigger replaced the call.
	ErrSuperseded = errors.New("forecast request superseded by a newer trigger")
)

// TransportError wraps a failure of the underlying HTTP round trip.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%v: %v", ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// StatusError reports a non-2xx provider response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("forecast API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("forecast API returned status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool { return target == ErrTransport }

// DecodeError reports a body that could not be converted into a Forecast.
// Field is the offending schema path when known.
type DecodeError struct {
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %v", ErrDecode, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", ErrDecode, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
