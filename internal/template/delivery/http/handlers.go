package http

import (
	"github.com/gin-gonic/gin"

	"tax-practice-management/internal/middleware"
	"tax-practice-management/internal/model"
	"tax-practice-management/pkg/response"
)

func (h *handler) scope(c *gin.Context) (model.Scope, bool) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
	}
	return sc, ok
}

// Create godoc
// @Summary     Create a project template
// @Description Creates a template with its task list. Task dependencies are
// @Description validated for cycles and unknown references before saving.
// @Tags        Template
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Template data"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/templates [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// List godoc
// @Summary     List project templates
// @Tags        Template
// @Accept      json
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/templates [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	output, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get template detail
// @Tags        Template
// @Accept      json
// @Produce     json
// @Param       id path string true "Template ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/templates/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	output, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a project template
// @Description Applies a partial update. A tasks array replaces the task list
// @Description wholesale and is revalidated as a graph.
// @Tags        Template
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Template ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/templates/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Delete godoc
// @Summary     Delete a project template
// @Tags        Template
// @Accept      json
// @Produce     json
// @Param       id path string true "Template ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/templates/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Expand godoc
// @Summary     Expand a template into a project
// @Description Creates concrete tasks under the project from the template's
// @Description task list. Estimated minutes become estimated hours.
// @Tags        Template
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Template ID"
// @Param       body body expandReq true "Target project"
// @Success     200 {object} expandResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/templates/{id}/expand [POST]
func (h *handler) Expand(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processExpandReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Expand(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Expand: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExpandResp(output))
}

// Reorder godoc
// @Summary     Reorder a template task
// @Description Swaps the task with its neighbor in order_index.
// @Tags        Template
// @Accept      json
// @Produce     json
// @Param       id     path string     true "Template ID"
// @Param       taskId path string     true "Template task ID"
// @Param       body   body reorderReq true "Direction (up or down)"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/templates/{id}/tasks/{taskId}/reorder [POST]
func (h *handler) Reorder(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processReorderReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Reorder(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Reorder: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}
