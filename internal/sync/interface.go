package sync

import "github.com/gin-gonic/gin"

// Handler defines the interface for the webhook sync handler.
type Handler interface {
	// HandleStoreWebhook processes incoming webhook payloads from the document store.
	HandleStoreWebhook(c *gin.Context)
}
