package types

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidOption   = goerr.New("invalid option")
	ErrInvalidArgument = goerr.New("invalid argument")
	ErrNotFound        = goerr.New("not found")
)

// TransportError is returned for every failed GitHub API call: non-2xx
// responses, network failures and undecodable bodies. StatusCode is 0 when no
// response was received.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string

	cause error
}

func NewTransportError(method, path string, statusCode int, cause error) *TransportError {
	e := &TransportError{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		cause:      cause,
	}
	if cause != nil {
		e.Detail = cause.Error()
	}
	return e
}

func (x *TransportError) Error() string {
	if x.StatusCode == 0 {
		return fmt.Sprintf("github api %s %s failed: %s", x.Method, x.Path, x.Detail)
	}
	return fmt.Sprintf("github api %s %s failed with status %d: %s", x.Method, x.Path, x.StatusCode, x.Detail)
}

func (x *TransportError) Unwrap() error {
	return x.cause
}
