package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert template")
	ErrFailedToGet    = errors.New("failed to get template")
	ErrFailedToList   = errors.New("failed to list templates")
	ErrFailedToUpdate = errors.New("failed to update template")
	ErrFailedToDelete = errors.New("failed to delete template")
)
