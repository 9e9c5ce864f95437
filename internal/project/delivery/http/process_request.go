package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "tax-practice-management/pkg/errors"
)

// processCreateReq binds and validates the create project request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.NewValidationError("id", "id is required")
	}
	return req, req.validate()
}

// processBulkUpdateReq binds the bulk update request body. Field presence
// checks happen in the use case, which owns the distinct validation errors.
func (h *handler) processBulkUpdateReq(c *gin.Context) (bulkUpdateReq, error) {
	var req bulkUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
