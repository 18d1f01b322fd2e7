package services

import (
	"errors"
	"fmt"
	"strings"
)

// Errors produced by the service layer before any storage call.
var (
	// ErrInvalidID signals an identifier that is not a 24-character hex string.
	ErrInvalidID = errors.New("invalid ID, must be a 24 character hex string")
	// ErrInvalidCredentials signals a failed login without revealing whether
	// the email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError aggregates every violation found by the product
// validator, in evaluation order.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// SchemaError carries per-field constraint violations found when a partial
// update bypasses the full validation pipeline.
type SchemaError struct {
	Fields map[string]string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("model validation failed on %d field(s)", len(e.Fields))
}
