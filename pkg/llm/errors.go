package llm

import "fmt"

// CompletionError wraps any fault from a completion backend: timeouts,
// quota limits, transport failures, or malformed output.
type CompletionError struct {
	Provider string
	Err      error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion service (%s): %v", e.Provider, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

// NewCompletionError wraps err unless it already is a CompletionError.
func NewCompletionError(provider string, err error) *CompletionError {
	if ce, ok := err.(*CompletionError); ok {
		return ce
	}
	return &CompletionError{Provider: provider, Err: err}
}
