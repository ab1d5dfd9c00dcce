package sync

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgResponse "project-dashboard/pkg/response"
)

// HandleStoreWebhook processes document store change notifications. The
// in-memory working set stays authoritative for the running process, so a
// store-side change only schedules a background reload rather than a
// per-document patch.
func (h *WebhookHandler) HandleStoreWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "webhook: failed to read body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	signature := c.GetHeader("X-Signature-256")
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "webhook: signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	if err := h.security.CheckRateLimit(extractIP(c.Request)); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	var payload StoreWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		h.l.Errorf(ctx, "webhook: failed to parse payload: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	h.l.Infof(ctx, "webhook: received %s for document %s", payload.ActivityType, payload.Document.Key)

	switch payload.ActivityType {
	case "document.created", "document.updated", "document.deleted":
		// Process in background to avoid blocking the store
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			h.resyncWithRetry(bgCtx)
		}()
	default:
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "unsupported activity type"})
		return
	}

	// Acknowledge immediately
	pkgResponse.OK(c, gin.H{"status": "accepted"})
}

// resyncWithRetry reloads the working set with exponential backoff.
func (h *WebhookHandler) resyncWithRetry(ctx context.Context) {
	maxRetries := 3
	backoff := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := h.uc.Load(ctx); err != nil {
			h.l.Warnf(ctx, "webhook: resync failed (retry %d/%d): %v", i+1, maxRetries, err)
			time.Sleep(backoff)
			backoff *= 2
			continue
		}

		h.l.Infof(ctx, "webhook: resynced working set from store")
		return
	}

	h.l.Errorf(ctx, "webhook: resync failed after %d retries, keeping previous working set", maxRetries)
}
