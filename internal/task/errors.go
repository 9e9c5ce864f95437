package task

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the task package.
var (
	ErrNotFound         = errors.New("task not found")
	ErrTitleRequired    = errors.New("task title is required")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrClassifyRequired = errors.New("title and description are required")
	ErrClassifyFailed   = errors.New("classification service failed")
)

// ValidationFailed carries the per-task issue map from set validation.
type ValidationFailed struct {
	Issues Issues
}

func (e *ValidationFailed) Error() string {
	return fmt.Sprintf("task validation failed for %d tasks", len(e.Issues))
}
