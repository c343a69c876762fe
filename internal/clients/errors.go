package clients

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of downstream failure shapes. Callers branch
// on Kind instead of probing response fields.
type ErrorKind int

const (
	// KindStatus: the service answered with a non-2xx status.
	KindStatus ErrorKind = iota
	// KindNoResponse: the request never got an answer (connection refused,
	// transport timeout, DNS failure).
	KindNoResponse
	// KindInternal: building the request or decoding the response failed on
	// our side.
	KindInternal
)

type Error struct {
	Kind       ErrorKind
	Service    string
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("%s returned %d: %s", e.Service, e.StatusCode, e.Message)
	case KindNoResponse:
		return fmt.Sprintf("no response from %s: %s", e.Service, e.Message)
	default:
		return fmt.Sprintf("%s client error: %s", e.Service, e.Message)
	}
}

// As unwraps err into a *Error, or wraps foreign errors as KindInternal so
// callers always see the closed taxonomy.
func As(err error) *Error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}
	return &Error{Kind: KindInternal, Message: err.Error()}
}

// IsStatus reports whether err is a downstream answer with the given code.
func IsStatus(err error, statusCode int) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == KindStatus && ce.StatusCode == statusCode
}
