package usecase_test

import (
	"context"
	"testing"
	"time"

	"project-dashboard/internal/model"
	"project-dashboard/internal/project"
	"project-dashboard/internal/project/usecase"
	"project-dashboard/internal/stats"
	"project-dashboard/pkg/dateutil"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeRepo is a func-field fake of the project repository. Channels, when
// set, receive every write so tests can observe background persistence.
type fakeRepo struct {
	listFunc   func() ([]model.Project, error)
	upsertFunc func(p model.Project) (model.Project, error)
	deleteFunc func(id string) error

	upserted chan model.Project
	deleted  chan string
}

func (f *fakeRepo) ListProjects(ctx context.Context) ([]model.Project, error) {
	if f.listFunc != nil {
		return f.listFunc()
	}
	return []model.Project{}, nil
}

func (f *fakeRepo) UpsertProject(ctx context.Context, p model.Project) (model.Project, error) {
	if f.upserted != nil {
		f.upserted <- p
	}
	if f.upsertFunc != nil {
		return f.upsertFunc(p)
	}
	return p, nil
}

func (f *fakeRepo) DeleteProject(ctx context.Context, id string) error {
	if f.deleted != nil {
		f.deleted <- id
	}
	if f.deleteFunc != nil {
		return f.deleteFunc(id)
	}
	return nil
}

// testNow is the pinned "current instant" for every controller test:
// Wednesday, May 15, 2024, midday UTC.
var testNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

// newController builds a ready controller over the fake repo, pre-loaded
// with the given projects.
func newController(t *testing.T, repo *fakeRepo, preload ...model.Project) project.UseCase {
	t.Helper()

	calc, err := dateutil.NewCalc("UTC")
	if err != nil {
		t.Fatalf("failed to create calc: %v", err)
	}

	if repo.listFunc == nil {
		repo.listFunc = func() ([]model.Project, error) { return preload, nil }
	}

	uc := usecase.New(&mockLogger{}, repo, stats.New(calc), calc,
		dateutil.DefaultLabels(), nil, "", "UTC", func() time.Time { return testNow })
	if err := uc.Load(context.Background()); err != nil {
		t.Fatalf("initial load failed: %v", err)
	}
	return uc
}

func waitFor[T any](t *testing.T, ch chan T, what string) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
		panic("unreachable")
	}
}
