package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrExtractionFailed is returned by content extractors when the item
	// could not be rendered or its markup could not be parsed.
	ErrExtractionFailed = errors.New("content extraction failed")

	// ErrProviderPanic wraps a panic recovered from a chat provider call.
	ErrProviderPanic = errors.New("chat provider panicked")
)

// ProviderError reports a failed request to an upstream chat provider.
// Message is safe to show to editors; Err keeps the SDK error for logging.
type ProviderError struct {
	Provider string
	Message  string
	Err      error
}

// NewProviderError wraps err as a ProviderError for the given provider.
// An empty message falls back to the text of err.
func NewProviderError(provider, message string, err error) *ProviderError {
	if message == "" && err != nil {
		message = err.Error()
	}
	return &ProviderError{Provider: provider, Message: message, Err: err}
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Provider == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// Unwrap returns the underlying SDK error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}
