package ggapi

import (
	"errors"
	"fmt"
	"net/url"
)

var (
	// ErrMissingGrant is returned by [New] when neither an authorization code
	// nor a complete token pair was supplied.
	ErrMissingGrant = errors.New("either an authorization code or an access token and refresh token must be provided")

	// ErrConflictingGrant is returned by [New] when both an authorization code
	// and stored tokens were supplied.
	ErrConflictingGrant = errors.New("authorization code and stored tokens are mutually exclusive")
)

// ConfigError reports an invalid [Session] configuration.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return "invalid options: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ServiceError is a structured rejection returned by the service with HTTP 400
// or 409 and a JSON error envelope.
type ServiceError struct {
	StatusCode int
	Code       string
	Message    string

	// Args holds the form data of the rejected request. It may contain the
	// client secret when the token endpoint rejected the call.
	Args url.Values
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("error %s: %s", e.Code, e.Message)
}

// HTTPError is any other non-2xx response. The body is kept verbatim.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *HTTPError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("http error %d: (empty error body)", e.StatusCode)
	}
	return fmt.Sprintf("http error %d: %s", e.StatusCode, e.Body)
}

type errorEnvelope struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}
