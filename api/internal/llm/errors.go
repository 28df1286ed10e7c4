package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential means no API key is configured for the selected
	// provider. Engines return it before any network I/O.
	ErrMissingCredential = errors.New("llm: api key is not configured")

	// ErrNoContent means the gateway answered but carried no message content.
	ErrNoContent = errors.New("llm: model returned no content")

	// ErrMalformedResponse means the model output could not be parsed into
	// the expected JSON contract.
	ErrMalformedResponse = errors.New("llm: malformed model response")
)

// GatewayError is a non-success HTTP status from the remote completion API.
type GatewayError struct {
	Status int
	Body   string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("llm: gateway status %d: %s", e.Status, e.Body)
}
