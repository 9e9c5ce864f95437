package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert client")
	ErrFailedToGet    = errors.New("failed to get client")
	ErrFailedToList   = errors.New("failed to list clients")
	ErrFailedToUpdate = errors.New("failed to update client")
)
