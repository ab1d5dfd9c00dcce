package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const emitTimeout = 5 * time.Second

// Reporter ships usage events to an optional collector endpoint. A nil
// Reporter, or one built with an empty endpoint, drops every event, so
// callers never guard their Emit calls.
type Reporter struct {
	endpoint   string
	service    string
	httpClient *http.Client
}

// New creates a Reporter. An empty endpoint yields a no-op reporter.
func New(endpoint, service string) *Reporter {
	if endpoint == "" {
		return nil
	}
	return &Reporter{
		endpoint:   endpoint,
		service:    service,
		httpClient: &http.Client{Timeout: emitTimeout},
	}
}

type event struct {
	Service string         `json:"service"`
	Name    string         `json:"name"`
	Time    string         `json:"time"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// Emit posts one event in the background. Failures are dropped: telemetry
// must never affect request handling.
func (r *Reporter) Emit(name string, fields map[string]any) {
	if r == nil {
		return
	}

	ev := event{
		Service: r.service,
		Name:    name,
		Time:    time.Now().UTC().Format(time.RFC3339),
		Fields:  fields,
	}

	go func() {
		body, err := json.Marshal(ev)
		if err != nil {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), emitTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewBuffer(body))
		if err != nil {
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := r.httpClient.Do(req)
		if err != nil {
			return
		}
		resp.Body.Close()
	}()
}
