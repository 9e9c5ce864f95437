package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "tax-practice-management/pkg/errors"
)

// processCreateReq binds and validates the create template request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
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

// processExpandReq binds the expansion body + URI param.
func (h *handler) processExpandReq(c *gin.Context) (expandReq, error) {
	var req expandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.TemplateID = c.Param("id")
	if req.TemplateID == "" {
		return req, pkgErrors.NewValidationError("id", "id is required")
	}
	return req, req.validate()
}

// processReorderReq binds the reorder body + URI params.
func (h *handler) processReorderReq(c *gin.Context) (reorderReq, error) {
	var req reorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.TemplateID = c.Param("id")
	req.TaskID = c.Param("taskId")
	if req.TemplateID == "" || req.TaskID == "" {
		return req, pkgErrors.NewValidationError("id", "template and task ids are required")
	}
	return req, req.validate()
}
