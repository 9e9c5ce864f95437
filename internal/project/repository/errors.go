package repository

import "errors"

// Persistence errors for the project repository.
var (
	ErrFailedToInsert = errors.New("failed to insert project")
	ErrFailedToGet    = errors.New("failed to get project")
	ErrFailedToList   = errors.New("failed to list projects")
	ErrFailedToUpdate = errors.New("failed to update projects")
	ErrFailedToDelete = errors.New("failed to delete project")
)
