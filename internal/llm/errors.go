package llm

import "fmt"

// TransportError represents a failed call to the generation service
type TransportError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: API call failed: %s: %v", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: API call failed: %s", e.Operation, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// EmptyResponseError is returned when the provider answered without usable text.
// It is treated exactly like a transport failure by callers.
type EmptyResponseError struct {
	Operation string
	Reason    string
}

func (e *EmptyResponseError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: empty response: %s", e.Operation, e.Reason)
	}
	return fmt.Sprintf("%s: empty response", e.Operation)
}
