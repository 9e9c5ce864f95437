package http

import (
	"tax-practice-management/internal/project"
	pkgErrors "tax-practice-management/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Each bulk-update precondition keeps its own message so clients can tell
// the failures apart.
func (h *handler) mapError(err error) error {
	switch err {
	case project.ErrNotFound:
		return pkgErrors.NewHTTPError(404, "project not found")
	case project.ErrNoProjectIDs:
		return pkgErrors.NewHTTPError(400, "project_ids must not be empty")
	case project.ErrInvalidProjectID:
		return pkgErrors.NewHTTPError(400, "project_ids must be valid UUIDs")
	case project.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(400, "invalid project status")
	case project.ErrEmptyUpdate:
		return pkgErrors.NewHTTPError(400, "updates must contain at least one recognized field")
	case project.ErrClientRequired:
		return pkgErrors.NewHTTPError(400, "client_id is required")
	case project.ErrNameRequired:
		return pkgErrors.NewHTTPError(400, "name is required")
	default:
		return pkgErrors.NewHTTPErrorWithDetails(500, "internal server error", err.Error())
	}
}
