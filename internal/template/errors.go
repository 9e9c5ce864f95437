package template

import "errors"

// Domain-specific errors for the template package.
var (
	ErrNotFound          = errors.New("template not found")
	ErrTaskNotFound      = errors.New("template task not found")
	ErrTitleRequired     = errors.New("template title is required")
	ErrProjectRequired   = errors.New("project ID is required for expansion")
	ErrCyclicDependency  = errors.New("template task dependencies contain a cycle")
	ErrUnknownDependency = errors.New("template task depends on an unknown task")
	ErrInvalidDirection  = errors.New("reorder direction must be up or down")
	ErrAtBoundary        = errors.New("task is already at the boundary")
)
