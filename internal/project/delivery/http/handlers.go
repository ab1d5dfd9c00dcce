package http

import (
	"github.com/gin-gonic/gin"

	"project-dashboard/pkg/response"
)

// Create godoc
// @Summary     Create a new project
// @Description Creates a project with name, deadline, functional areas and an optional task list.
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       body body upsertReq true "Project data"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpsertReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	card, err := h.uc.Upsert(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Upsert: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(card))
}

// List godoc
// @Summary     List projects
// @Description Returns projects filtered by tab, search text and archived visibility.
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       q        query string false "Search text (name, description, areas, task titles)"
// @Param       tab      query string false "Tab filter (all/ongoing/week/overdue)"
// @Param       archived query bool   false "Include archived projects"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get project detail
// @Description Returns a single project with derived progress and urgency data.
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	card, err := h.uc.Detail(ctx, scopeFrom(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(card))
}

// Update godoc
// @Summary     Update a project
// @Description Replaces a project's editable fields, including its task list.
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Project ID"
// @Param       body body upsertReq true "Project data"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpsertReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	req.ID = c.Param("id")

	card, err := h.uc.Upsert(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Upsert: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(card))
}

// Delete godoc
// @Summary     Delete a project
// @Description Removes the project immediately; the remote store is updated in the background.
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.Delete(ctx, scopeFrom(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// ToggleArchive godoc
// @Summary     Toggle project archival
// @Description Flips the archived flag on a project.
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{id}/archive [POST]
func (h *handler) ToggleArchive(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	card, err := h.uc.ToggleArchive(ctx, scopeFrom(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleArchive: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(card))
}

// SetTaskStatus godoc
// @Summary     Set task status
// @Description Moves a task between todo, ongoing and done.
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       id     path string        true "Project ID"
// @Param       taskId path string        true "Task ID"
// @Param       body   body taskStatusReq true "New status"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{id}/tasks/{taskId}/status [PUT]
func (h *handler) SetTaskStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTaskStatusReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	card, err := h.uc.SetTaskStatus(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetTaskStatus: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(card))
}

// Stats godoc
// @Summary     Dashboard counters
// @Description Returns active, ongoing-task, due-this-week and overdue counters.
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dashboard/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx, scopeFrom(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// Calendar godoc
// @Summary     Deadline calendar
// @Description Groups non-archived deadlines by day for one month.
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Param       year  query int false "Year (defaults to current)"
// @Param       month query int false "Month 1-12 (defaults to current)"
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dashboard/calendar [GET]
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCalendarReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Calendar(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Calendar: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCalendarResp(output))
}

// Timeline godoc
// @Summary     Project year timeline
// @Description Returns the months of a year covered by the project's date span.
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Param       id   path  string true  "Project ID"
// @Param       year query int    false "Year (defaults to current)"
// @Success     200 {object} timelineResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{id}/timeline [GET]
func (h *handler) Timeline(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTimelineReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Timeline(ctx, scopeFrom(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Timeline: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTimelineResp(output))
}
