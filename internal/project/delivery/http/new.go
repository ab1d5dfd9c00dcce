package http

import (
	"github.com/gin-gonic/gin"

	"project-dashboard/internal/project"
	"project-dashboard/pkg/log"
)

// Handler is the public interface for the project HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	ToggleArchive(c *gin.Context)
	SetTaskStatus(c *gin.Context)
	Stats(c *gin.Context)
	Calendar(c *gin.Context)
	Timeline(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc project.UseCase
}

// New creates a new HTTP handler for the project domain.
func New(l log.Logger, uc project.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
