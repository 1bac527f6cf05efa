package instance

import (
	"errors"
	"fmt"
)

// ErrOperationInFlight is returned when a lifecycle operation is already
// pending for the same instance form. The submission is dropped, not queued.
var ErrOperationInFlight = errors.New("operation already in flight")

// ErrorKind classifies connection errors.
type ErrorKind string

const (
	ErrorURLIsLocal  ErrorKind = "url_is_local"
	ErrorURLNotValid ErrorKind = "url_not_valid"
	ErrorLabelEmpty  ErrorKind = "label_empty"
	ErrorBadAppName  ErrorKind = "bad_app_name"
	ErrorAPI         ErrorKind = "api"
)

// ConnectionError is a typed validation or transport failure for an
// instance connection. Validation kinds are produced locally before any
// network call; ErrorAPI wraps transport and server failures.
type ConnectionError struct {
	Kind    ErrorKind
	AppName string // reported application name, set for ErrorBadAppName
	Err     error  // underlying cause, set for ErrorAPI
}

func (e *ConnectionError) Error() string {
	switch e.Kind {
	case ErrorURLIsLocal:
		return "url host is local"
	case ErrorURLNotValid:
		return "url is not valid"
	case ErrorLabelEmpty:
		return "label is empty"
	case ErrorBadAppName:
		return fmt.Sprintf("instance reports app name %q", e.AppName)
	case ErrorAPI:
		return fmt.Sprintf("api error: %v", e.Err)
	}
	return string(e.Kind)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Title is the user-facing alert title for this error.
func (e *ConnectionError) Title() string {
	switch e.Kind {
	case ErrorURLIsLocal, ErrorURLNotValid:
		return "Invalid URL"
	case ErrorLabelEmpty:
		return "Invalid Label"
	case ErrorBadAppName:
		return "Wrong Instance Type"
	case ErrorAPI:
		return "Connection Failed"
	}
	return "Error"
}

// Suggestion is the user-facing recovery hint for this error.
func (e *ConnectionError) Suggestion() string {
	switch e.Kind {
	case ErrorURLIsLocal:
		return "URLs must be non-local, reachable addresses."
	case ErrorURLNotValid:
		return "Enter a valid URL starting with http:// or https://."
	case ErrorLabelEmpty:
		return "Enter a label for the instance."
	case ErrorBadAppName:
		return fmt.Sprintf("The URL belongs to a %s instance. Switch the instance type or use a different URL.", e.AppName)
	case ErrorAPI:
		if e.Err != nil {
			return e.Err.Error()
		}
	}
	return ""
}

func localURLError() *ConnectionError {
	return &ConnectionError{Kind: ErrorURLIsLocal}
}

func invalidURLError() *ConnectionError {
	return &ConnectionError{Kind: ErrorURLNotValid}
}

func emptyLabelError() *ConnectionError {
	return &ConnectionError{Kind: ErrorLabelEmpty}
}

func badAppNameError(name string) *ConnectionError {
	return &ConnectionError{Kind: ErrorBadAppName, AppName: name}
}

func apiError(err error) *ConnectionError {
	return &ConnectionError{Kind: ErrorAPI, Err: err}
}

// AsConnectionError unwraps err into a *ConnectionError, wrapping unknown
// errors as ErrorAPI so callers always get a typed result.
func AsConnectionError(err error) *ConnectionError {
	var cerr *ConnectionError
	if errors.As(err, &cerr) {
		return cerr
	}
	return apiError(err)
}
