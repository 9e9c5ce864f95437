package http

import (
	"errors"

	"tax-practice-management/internal/task"
	pkgErrors "tax-practice-management/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var vf *task.ValidationFailed
	if errors.As(err, &vf) {
		// The issue map travels as-is so clients can key errors by task.
		return pkgErrors.NewHTTPErrorWithDetails(400, "task validation failed", vf.Issues)
	}

	switch err {
	case task.ErrNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrTitleRequired:
		return pkgErrors.NewHTTPError(400, "title is required")
	case task.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(400, "invalid task status")
	case task.ErrClassifyRequired:
		return pkgErrors.NewHTTPError(400, "title and description are required")
	case task.ErrClassifyFailed:
		return pkgErrors.NewHTTPError(500, "classification service failed")
	default:
		return pkgErrors.NewHTTPErrorWithDetails(500, "internal server error", err.Error())
	}
}
