package project

import "errors"

// Domain-specific errors for the project package.
var (
	ErrNotFound         = errors.New("project not found")
	ErrNoProjectIDs     = errors.New("no project IDs provided")
	ErrInvalidProjectID = errors.New("project ID is not a valid UUID")
	ErrInvalidStatus    = errors.New("invalid project status")
	ErrEmptyUpdate      = errors.New("no recognized update fields provided")
	ErrClientRequired   = errors.New("client is required")
	ErrNameRequired     = errors.New("project name is required")
)
