package payload

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vyrodovalexey/multipayload/encoding"
)

// Request-level payload errors.
var (
	// ErrInvalidContentType indicates that the request's Content-Type is
	// absent, unparsable, or does not match any enabled format.
	ErrInvalidContentType = errors.New("invalid content type")

	// ErrBodyTooLarge indicates that the request body exceeded the
	// configured size cap.
	ErrBodyTooLarge = errors.New("request body too large")
)

// DeserializeError wraps a decode failure for one format. The underlying
// codec message is preserved for diagnostics.
type DeserializeError struct {
	Format encoding.Format
	Err    error
}

// Error implements the error interface.
func (e *DeserializeError) Error() string {
	return fmt.Sprintf("failed to deserialize %s payload: %v", e.Format, e.Err)
}

// Unwrap returns the underlying codec error.
func (e *DeserializeError) Unwrap() error {
	return e.Err
}

// SerializeError wraps an encode failure for one format.
type SerializeError struct {
	Format encoding.Format
	Err    error
}

// Error implements the error interface.
func (e *SerializeError) Error() string {
	return fmt.Sprintf("failed to serialize %s payload: %v", e.Format, e.Err)
}

// Unwrap returns the underlying codec error.
func (e *SerializeError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps a payload error to the HTTP status code the host should
// respond with.
//
// Everything that originates from the client's bytes or headers is a 400;
// a serialization failure on the response path is a 500. The zero-formats
// misconfiguration never reaches this mapping because registry construction
// rejects it at startup.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidContentType), errors.Is(err, ErrBodyTooLarge):
		return http.StatusBadRequest
	}

	var deserializeErr *DeserializeError
	if errors.As(err, &deserializeErr) {
		return http.StatusBadRequest
	}

	var serializeErr *SerializeError
	if errors.As(err, &serializeErr) {
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
