package http

import (
	"tax-practice-management/internal/taxreturn"
	pkgErrors "tax-practice-management/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case taxreturn.ErrNotFound:
		return pkgErrors.NewHTTPError(404, "tax return not found")
	case taxreturn.ErrClientRequired:
		return pkgErrors.NewHTTPError(400, "client_id is required")
	case taxreturn.ErrInvalidType:
		return pkgErrors.NewHTTPError(400, "invalid return type")
	case taxreturn.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(400, "invalid tax return status")
	case taxreturn.ErrInvalidYear:
		return pkgErrors.NewHTTPError(400, "invalid tax year")
	default:
		return pkgErrors.NewHTTPErrorWithDetails(500, "internal server error", err.Error())
	}
}
