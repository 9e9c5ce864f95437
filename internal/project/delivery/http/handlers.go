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
// @Summary     Create a project
// @Description Creates a new project for a client, optionally from a template.
// @Tags        Project
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Project data"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects [POST]
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
// @Summary     List projects
// @Description Returns the firm's projects filtered, sorted, and optionally grouped.
// @Tags        Project
// @Accept      json
// @Produce     json
// @Param       search     query string false "Free-text search over names"
// @Param       status     query []string false "Filter by status"
// @Param       service    query []string false "Filter by service category"
// @Param       priority   query []string false "Filter by priority"
// @Param       group_by   query string false "Group results (status/service/deadline/client)"
// @Param       sort_by    query string false "Sort key (created/due/name/status/priority)"
// @Param       sort_order query string false "asc or desc"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get project detail
// @Description Returns a single project hydrated with client and task relations.
// @Tags        Project
// @Accept      json
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	id := c.Param("id")
	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a project
// @Description Applies a partial update to one project. Absent fields are untouched.
// @Tags        Project
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Project ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{id} [PUT]
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
// @Summary     Archive a project
// @Description Soft-deletes a project by archiving it together with its tasks.
// @Tags        Project
// @Accept      json
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.uc.Archive(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Archive: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// BulkUpdate godoc
// @Summary     Bulk update projects
// @Description Applies one update payload to a batch of projects. Archiving
// @Description cascades to the projects' tasks. Returns the updated records.
// @Tags        Project
// @Accept      json
// @Produce     json
// @Param       body body bulkUpdateReq true "Project IDs and field updates"
// @Success     200 {object} bulkUpdateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/bulk [PUT]
func (h *handler) BulkUpdate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processBulkUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.BulkUpdate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.BulkUpdate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OKWithMessage(c, h.newBulkUpdateResp(output), output.Message)
}

// Metrics godoc
// @Summary     Project metrics
// @Description Aggregate counts over the filtered project set.
// @Tags        Project
// @Accept      json
// @Produce     json
// @Success     200 {object} metricsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/metrics [GET]
func (h *handler) Metrics(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Metrics(ctx, sc, input.Filters)
	if err != nil {
		h.l.Errorf(ctx, "uc.Metrics: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMetricsResp(output))
}
