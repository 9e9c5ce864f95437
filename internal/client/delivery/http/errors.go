package http

import (
	"tax-practice-management/internal/client"
	pkgErrors "tax-practice-management/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case client.ErrNotFound:
		return pkgErrors.NewHTTPError(404, "client not found")
	case client.ErrNameRequired:
		return pkgErrors.NewHTTPError(400, "full_name or company_name is required")
	case client.ErrInvalidType:
		return pkgErrors.NewHTTPError(400, "invalid client type")
	case client.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(400, "invalid client status")
	default:
		return pkgErrors.NewHTTPErrorWithDetails(500, "internal server error", err.Error())
	}
}
