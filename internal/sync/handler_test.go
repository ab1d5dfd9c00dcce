package sync_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"project-dashboard/internal/model"
	"project-dashboard/internal/project"
	"project-dashboard/internal/sync"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeUseCase records Load calls; everything else is unused by the webhook.
type fakeUseCase struct {
	loaded chan struct{}
}

func (f *fakeUseCase) Load(ctx context.Context) error {
	f.loaded <- struct{}{}
	return nil
}

func (f *fakeUseCase) List(ctx context.Context, sc model.Scope, ip project.ListInput) (project.ListOutput, error) {
	return project.ListOutput{}, nil
}

func (f *fakeUseCase) Detail(ctx context.Context, sc model.Scope, id string) (project.ProjectCard, error) {
	return project.ProjectCard{}, nil
}

func (f *fakeUseCase) Upsert(ctx context.Context, sc model.Scope, ip project.UpsertInput) (project.ProjectCard, error) {
	return project.ProjectCard{}, nil
}

func (f *fakeUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	return nil
}

func (f *fakeUseCase) ToggleArchive(ctx context.Context, sc model.Scope, id string) (project.ProjectCard, error) {
	return project.ProjectCard{}, nil
}

func (f *fakeUseCase) SetTaskStatus(ctx context.Context, sc model.Scope, ip project.SetTaskStatusInput) (project.ProjectCard, error) {
	return project.ProjectCard{}, nil
}

func (f *fakeUseCase) Stats(ctx context.Context, sc model.Scope) (project.StatsOutput, error) {
	return project.StatsOutput{}, nil
}

func (f *fakeUseCase) Calendar(ctx context.Context, sc model.Scope, ip project.CalendarInput) (project.CalendarOutput, error) {
	return project.CalendarOutput{}, nil
}

func (f *fakeUseCase) Timeline(ctx context.Context, sc model.Scope, ip project.TimelineInput) (project.TimelineOutput, error) {
	return project.TimelineOutput{}, nil
}

func newWebhookServer(t *testing.T, uc project.UseCase, cfg sync.SecurityConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := sync.NewWebhookHandler(uc, sync.NewSecurityValidator(cfg), &mockLogger{})

	r := gin.New()
	r.POST("/webhook/store", h.HandleStoreWebhook)
	return r
}

func TestHandleStoreWebhook(t *testing.T) {
	cfg := sync.SecurityConfig{Secret: "topsecret", RateLimitPerMin: 600}
	body := []byte(`{"activityType":"document.updated","document":{"key":"abc"}}`)

	t.Run("signed update triggers resync", func(t *testing.T) {
		uc := &fakeUseCase{loaded: make(chan struct{}, 1)}
		r := newWebhookServer(t, uc, cfg)

		req := httptest.NewRequest(http.MethodPost, "/webhook/store", bytes.NewReader(body))
		req.Header.Set("X-Signature-256", sign("topsecret", body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
		}

		select {
		case <-uc.loaded:
		case <-time.After(2 * time.Second):
			t.Fatal("expected background resync to run")
		}
	})

	t.Run("bad signature is rejected", func(t *testing.T) {
		uc := &fakeUseCase{loaded: make(chan struct{}, 1)}
		r := newWebhookServer(t, uc, cfg)

		req := httptest.NewRequest(http.MethodPost, "/webhook/store", bytes.NewReader(body))
		req.Header.Set("X-Signature-256", sign("wrong", body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}

		select {
		case <-uc.loaded:
			t.Fatal("resync must not run for rejected requests")
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("unknown activity type is ignored", func(t *testing.T) {
		uc := &fakeUseCase{loaded: make(chan struct{}, 1)}
		r := newWebhookServer(t, uc, cfg)

		ignored := []byte(`{"activityType":"document.viewed","document":{"key":"abc"}}`)
		req := httptest.NewRequest(http.MethodPost, "/webhook/store", bytes.NewReader(ignored))
		req.Header.Set("X-Signature-256", sign("topsecret", ignored))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}

		select {
		case <-uc.loaded:
			t.Fatal("resync must not run for ignored activity types")
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("ip allowlist blocks unknown sources", func(t *testing.T) {
		uc := &fakeUseCase{loaded: make(chan struct{}, 1)}
		restricted := cfg
		restricted.AllowedIPs = []string{"203.0.113.9"}
		r := newWebhookServer(t, uc, restricted)

		req := httptest.NewRequest(http.MethodPost, "/webhook/store", bytes.NewReader(body))
		req.Header.Set("X-Signature-256", sign("topsecret", body))
		req.RemoteAddr = "198.51.100.7:4242"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusForbidden)
		}
	})
}
