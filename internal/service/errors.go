package service

import (
	"fmt"
	"strings"
)

// ConfigurationError is returned when a required provider setting is absent.
// No network call is attempted.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s is not set", e.Setting)
}

// ModelInvocationError wraps a failed call to the language model.
type ModelInvocationError struct {
	Model string
	Cause error
}

func (e *ModelInvocationError) Error() string {
	return fmt.Sprintf("model %s failed: %v", e.Model, e.Cause)
}

func (e *ModelInvocationError) Unwrap() error {
	return e.Cause
}

// ExtractionError means no JSON object could be recovered from a reply.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return "could not parse AI response: " + e.Reason
}

// ValidationError lists required recipe fields absent from a parsed reply.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "AI response is missing required fields: " + strings.Join(e.Missing, ", ")
}
