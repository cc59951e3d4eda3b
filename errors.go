package llmsdk

import (
	"fmt"
)

// SDKError is the closed set of errors returned by a [Client]. Every failure
// is exactly one of [*TransportError], [*APIError], or [*DecodeError], so
// callers can switch over the three kinds (or use [errors.As] on each) and
// know the set is complete.
type SDKError interface {
	error

	sdkError()
}

// Ensure the error set stays closed.
var (
	_ SDKError = (*TransportError)(nil)
	_ SDKError = (*APIError)(nil)
	_ SDKError = (*DecodeError)(nil)
)

// TransportError reports that the HTTP exchange itself failed before any
// response was available: DNS failure, connection refused or reset, timeout,
// or a canceled context. The response decoder is never reached in this case.
type TransportError struct {
	// Op is the operation being performed, e.g. "chat completion".
	Op string

	// Err is the underlying transport error.
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport error: %s", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (*TransportError) sdkError() {}

// APIError is a non-success HTTP response carrying the provider's standard
// error envelope:
//
//	{"error": {"message": "...", "type": "...", "code": "..."}}
//
// https://platform.openai.com/docs/guides/error-codes/api-errors
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Code is the provider-assigned machine-readable error code,
	// e.g. "invalid_api_key". May be empty.
	Code string

	// Message is the human-readable error message.
	Message string

	// Type is the provider's error category, e.g. "invalid_request_error".
	Type string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error: %d: %s: %s: %s", e.StatusCode, e.Code, e.Type, e.Message)
	}
	return fmt.Sprintf("API error: %d: %s: %s", e.StatusCode, e.Type, e.Message)
}

func (*APIError) sdkError() {}

// DecodeError reports a response body that did not match the expected shape:
// a success status with a malformed payload, or an error status whose body is
// not the provider's error envelope. Body holds the raw bytes for diagnostics.
type DecodeError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Body is the raw response body that failed to decode.
	Body []byte

	// Err is the underlying decoding error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: status %d: %s", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (*DecodeError) sdkError() {}

// errorEnvelope is the provider's standard error response body.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"` // string or null, occasionally a number
	} `json:"error"`
}
