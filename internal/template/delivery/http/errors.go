package http

import (
	"tax-practice-management/internal/template"
	pkgErrors "tax-practice-management/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case template.ErrNotFound:
		return pkgErrors.NewHTTPError(404, "template not found")
	case template.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "template task not found")
	case template.ErrTitleRequired:
		return pkgErrors.NewHTTPError(400, "title is required")
	case template.ErrProjectRequired:
		return pkgErrors.NewHTTPError(400, "project_id is required")
	case template.ErrCyclicDependency:
		return pkgErrors.NewHTTPError(400, "task dependencies contain a cycle")
	case template.ErrUnknownDependency:
		return pkgErrors.NewHTTPError(400, "task depends on an unknown task")
	case template.ErrInvalidDirection:
		return pkgErrors.NewHTTPError(400, "direction must be up or down")
	case template.ErrAtBoundary:
		return pkgErrors.NewHTTPError(400, "task is already at the boundary")
	default:
		return pkgErrors.NewHTTPErrorWithDetails(500, "internal server error", err.Error())
	}
}
