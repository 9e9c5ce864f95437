package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert tax return")
	ErrFailedToGet    = errors.New("failed to get tax return")
	ErrFailedToList   = errors.New("failed to list tax returns")
	ErrFailedToUpdate = errors.New("failed to update tax return")
)
