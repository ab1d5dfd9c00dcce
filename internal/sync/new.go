package sync

import (
	"project-dashboard/internal/project"
	pkgLog "project-dashboard/pkg/log"
)

type WebhookHandler struct {
	uc       project.UseCase
	security *SecurityValidator
	l        pkgLog.Logger
}

func NewWebhookHandler(uc project.UseCase, security *SecurityValidator, l pkgLog.Logger) *WebhookHandler {
	return &WebhookHandler{
		uc:       uc,
		security: security,
		l:        l,
	}
}
