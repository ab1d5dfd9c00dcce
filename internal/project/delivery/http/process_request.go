package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"project-dashboard/internal/model"
)

// scopeFrom builds the request scope from headers. The dashboard is
// single-tenant so an absent header falls back to a shared scope.
func scopeFrom(c *gin.Context) model.Scope {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = "dashboard"
	}
	return model.Scope{UserID: userID}
}

// processUpsertReq binds and validates the create/update project request body.
func (h *handler) processUpsertReq(c *gin.Context) (upsertReq, error) {
	var req upsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds the list projects query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processTaskStatusReq binds the task status request body + URI params.
func (h *handler) processTaskStatusReq(c *gin.Context) (taskStatusReq, error) {
	var req taskStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ProjectID = c.Param("id")
	req.TaskID = c.Param("taskId")
	if req.ProjectID == "" || req.TaskID == "" {
		return req, errMissingID
	}
	return req, req.validate()
}

// processCalendarReq binds the calendar query parameters, defaulting to the
// current month.
func (h *handler) processCalendarReq(c *gin.Context) (calendarReq, error) {
	var req calendarReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	now := time.Now()
	if req.Year == 0 {
		req.Year = now.Year()
	}
	if req.Month == 0 {
		req.Month = int(now.Month())
	}
	return req, nil
}

// processTimelineReq binds the timeline URI param and query parameters,
// defaulting to the current year.
func (h *handler) processTimelineReq(c *gin.Context) (timelineReq, error) {
	var req timelineReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.ProjectID = c.Param("id")
	if req.ProjectID == "" {
		return req, errMissingID
	}
	if req.Year == 0 {
		req.Year = time.Now().Year()
	}
	return req, nil
}
