package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"project-dashboard/internal/middleware"
	projectHTTP "project-dashboard/internal/project/delivery/http"
)

// setupProjectDomain registers the project domain routes. The use case is
// constructed at startup (it owns the in-memory working set), so only the
// HTTP handler is built here.
func (srv HTTPServer) setupProjectDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := projectHTTP.New(srv.l, srv.projectUC)

	// Registers /api/v1/projects and /api/v1/dashboard
	projectHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "project domain registered")
	return nil
}
