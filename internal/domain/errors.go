package domain

import (
	"fmt"
	"strings"
)

// ValidationError carries every rule violation found in one pass so callers
// can report all problems at once instead of fixing them one by one.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Reasons, "; ")
}

func NewValidationError(reasons ...string) *ValidationError {
	return &ValidationError{Reasons: reasons}
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ConsistencyError means a transactional invariant was about to be violated
// (e.g. a roster shrank between validation and commit). The enclosing
// transaction must roll back; nothing may be partially applied.
type ConsistencyError struct {
	Message string
}

func (e *ConsistencyError) Error() string {
	return e.Message
}
