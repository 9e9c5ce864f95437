package client

import "errors"

// Domain-specific errors for the client package.
var (
	ErrNotFound      = errors.New("client not found")
	ErrNameRequired  = errors.New("client name is required")
	ErrInvalidType   = errors.New("invalid client type")
	ErrInvalidStatus = errors.New("invalid client status")
)
