package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential blocks any network call when no API key is set.
	ErrMissingCredential = errors.New("missing API key")

	// ErrMalformedResponse means the provider answered 2xx but the body did
	// not carry the expected candidates structure.
	ErrMalformedResponse = errors.New("malformed provider response")
)

// RateLimitError signals provider throttling (HTTP 429). It is the only
// retryable classification.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited: %s", e.Message)
}

// RequestError is a terminal non-2xx response, carrying the provider's error
// message when present.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}
