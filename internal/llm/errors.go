package llm

import "fmt"

// ServiceError represents a generation service failure after retries
// were exhausted.
type ServiceError struct {
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation service error: %s", e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}
