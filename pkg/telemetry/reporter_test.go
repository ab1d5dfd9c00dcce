package telemetry_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"project-dashboard/pkg/telemetry"
)

func TestReporter(t *testing.T) {
	t.Run("emits event to collector", func(t *testing.T) {
		received := make(chan map[string]any, 1)
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var ev map[string]any
			json.NewDecoder(r.Body).Decode(&ev)
			received <- ev
			w.WriteHeader(http.StatusAccepted)
		}))
		defer ts.Close()

		r := telemetry.New(ts.URL, "project-dashboard")
		r.Emit("request.handled", map[string]any{"path": "/api/v1/projects"})

		select {
		case ev := <-received:
			if ev["service"] != "project-dashboard" || ev["name"] != "request.handled" {
				t.Errorf("unexpected event: %v", ev)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("expected event to arrive")
		}
	})

	t.Run("nil reporter drops events", func(t *testing.T) {
		r := telemetry.New("", "project-dashboard")
		if r != nil {
			t.Fatal("empty endpoint must yield nil reporter")
		}
		// Must not panic.
		r.Emit("request.handled", nil)
	})
}
