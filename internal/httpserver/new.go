package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"project-dashboard/internal/project"
	"project-dashboard/pkg/log"
	"project-dashboard/pkg/telemetry"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Project domain
	projectUC project.UseCase

	// Webhook sync
	webhookHandler interface {
		HandleStoreWebhook(c *gin.Context)
	}

	// Optional usage telemetry
	reporter *telemetry.Reporter
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	// Project domain
	ProjectUC project.UseCase

	// Webhook sync
	WebhookHandler interface {
		HandleStoreWebhook(c *gin.Context)
	}

	// Optional usage telemetry
	Reporter *telemetry.Reporter
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		projectUC:      cfg.ProjectUC,
		webhookHandler: cfg.WebhookHandler,
		reporter:       cfg.Reporter,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.projectUC == nil {
		return errors.New("project use case is required")
	}
	return nil
}
