package storeapi

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates the request did not complete in time
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the API host refused the connection
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates the API hostname could not be resolved
	ErrTypeDNS
	// ErrTypeHTTP indicates a non-2xx response
	ErrTypeHTTP
	// ErrTypeEncode indicates the request body could not be built
	ErrTypeEncode
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeEncode:
		return "Encode Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// APIError represents a failed call to the admin API
type APIError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (ErrTypeHTTP only)
	Method     string    // Request method
	Path       string    // Request path
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *APIError) Error() string {
	prefix := e.Type.String()
	if e.Method != "" {
		prefix = fmt.Sprintf("%s %s: %s", e.Method, e.Path, prefix)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", prefix, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *APIError) Unwrap() error {
	return e.Err
}

// classifyNetworkError narrows a transport failure down to a specific error type.
func classifyNetworkError(err error) (ErrorType, string) {
	if os.IsTimeout(err) {
		return ErrTypeTimeout, "request timed out"
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ErrTypeDNS, fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return ErrTypeConnectionRefused, "API refused connection"
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != err {
		return classifyNetworkError(urlErr.Err)
	}

	return ErrTypeNetwork, "network error occurred"
}

// newNetworkError wraps a transport failure with automatic classification
func newNetworkError(method, path string, err error) *APIError {
	typ, msg := classifyNetworkError(err)
	return &APIError{
		Type:    typ,
		Message: msg,
		Method:  method,
		Path:    path,
		Err:     err,
	}
}

// newHTTPError creates an error for a non-2xx response
func newHTTPError(method, path string, statusCode int, body string) *APIError {
	msg := fmt.Sprintf("unexpected status code: %d", statusCode)
	if body != "" {
		msg = fmt.Sprintf("%s: %s", msg, body)
	}
	return &APIError{
		Type:       ErrTypeHTTP,
		Message:    msg,
		StatusCode: statusCode,
		Method:     method,
		Path:       path,
	}
}

// newEncodeError creates an error for a request that could not be built
func newEncodeError(method, path string, err error) *APIError {
	return &APIError{
		Type:    ErrTypeEncode,
		Message: "failed to build request",
		Method:  method,
		Path:    path,
		Err:     err,
	}
}

// IsNetworkError reports whether err is a transport-level failure
// (including timeout, connection refused and DNS).
func IsNetworkError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Type {
	case ErrTypeNetwork, ErrTypeTimeout, ErrTypeConnectionRefused, ErrTypeDNS:
		return true
	}
	return false
}

// IsHTTPError reports whether err is a non-2xx response
func IsHTTPError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Type == ErrTypeHTTP
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// ShortMessage returns a concise, operator-facing description of err
func ShortMessage(err error) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err.Error()
	}

	switch apiErr.Type {
	case ErrTypeTimeout:
		return "Admin API not responding (timeout)"
	case ErrTypeConnectionRefused:
		return "Admin API refused connection - is the dashboard running?"
	case ErrTypeDNS:
		return "Cannot resolve admin API hostname"
	case ErrTypeNetwork:
		return "Network error - check connection"
	case ErrTypeHTTP:
		return fmt.Sprintf("Admin API error (HTTP %d)", apiErr.StatusCode)
	default:
		return apiErr.Message
	}
}
