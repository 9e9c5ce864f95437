package taxreturn

import "errors"

// Domain-specific errors for the taxreturn package.
var (
	ErrNotFound       = errors.New("tax return not found")
	ErrClientRequired = errors.New("client ID is required")
	ErrInvalidType    = errors.New("invalid return type")
	ErrInvalidStatus  = errors.New("invalid tax return status")
	ErrInvalidYear    = errors.New("invalid tax year")
)
