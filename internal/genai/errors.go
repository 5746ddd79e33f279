package genai

import "errors"

var (
	// ErrEmptyResponse indicates the model returned no usable text.
	ErrEmptyResponse = errors.New("empty model response")

	// ErrFormat indicates the response did not contain the expected
	// delimited or structured region.
	ErrFormat = errors.New("unexpected response format")

	// ErrRateLimited indicates the provider rejected the call with a
	// rate-limit signal. Only image generation retries on this.
	ErrRateLimited = errors.New("rate limited by provider")

	// ErrUpstream indicates any other provider-side failure.
	ErrUpstream = errors.New("upstream provider error")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("model request timed out")

	// ErrMissingAPIKey indicates no API credential was configured.
	// Startup treats this as fatal.
	ErrMissingAPIKey = errors.New("missing API key")
)
