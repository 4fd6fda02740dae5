package bar

import "errors"

// Domain-specific errors for the bar package.
var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrLLMUnavailable = errors.New("language model unavailable")
)
