package sync

// StoreWebhookPayload matches the document store webhook format.
type StoreWebhookPayload struct {
	ActivityType string `json:"activityType"` // e.g., "document.updated"
	Document     struct {
		Key  string `json:"key"`
		Name string `json:"name"` // e.g., "collections/projects/documents/abc"
	} `json:"document"`
}

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute
}
