package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"project-dashboard/internal/project"
	"project-dashboard/pkg/response"
)

var errMissingID = errors.New("id is required")

// respondError translates domain/use-case errors into HTTP responses.
// Persist failures keep the local change and are surfaced as retryable so
// the client can warn the user without discarding their edit.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, project.ErrNotFound), errors.Is(err, project.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, project.ErrPersistFailed):
		response.Error(c, err, map[string]interface{}{"retryable": true})
	case errors.Is(err, project.ErrEmptyName),
		errors.Is(err, project.ErrInvalidStatus),
		errors.Is(err, project.ErrInvalidTab),
		errors.Is(err, project.ErrInvalidMonth):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
