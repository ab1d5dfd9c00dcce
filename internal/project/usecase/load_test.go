package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"project-dashboard/internal/model"
	"project-dashboard/internal/project"
	"project-dashboard/internal/project/usecase"
	"project-dashboard/internal/stats"
	"project-dashboard/pkg/dateutil"
)

func newUnloadedController(t *testing.T, repo *fakeRepo) project.UseCase {
	t.Helper()
	calc, _ := dateutil.NewCalc("UTC")
	return usecase.New(&mockLogger{}, repo, stats.New(calc), calc,
		dateutil.DefaultLabels(), nil, "", "UTC", func() time.Time { return testNow })
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "tester"}

	t.Run("Successful load replaces snapshot", func(t *testing.T) {
		repo := &fakeRepo{listFunc: func() ([]model.Project, error) {
			return []model.Project{{ID: "p1", Deadline: "2024-05-20"}}, nil
		}}
		uc := newUnloadedController(t, repo)

		if err := uc.Load(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, _ := uc.List(ctx, sc, project.ListInput{})
		if out.Total != 1 {
			t.Errorf("expected 1 project after load, got %d", out.Total)
		}
	})

	t.Run("Failed first load still becomes ready with empty list", func(t *testing.T) {
		repo := &fakeRepo{listFunc: func() ([]model.Project, error) {
			return nil, errors.New("store unavailable")
		}}
		uc := newUnloadedController(t, repo)

		if err := uc.Load(ctx); err == nil {
			t.Fatalf("expected load error")
		}
		out, err := uc.List(ctx, sc, project.ListInput{})
		if err != nil {
			t.Fatalf("dashboard must stay interactive after a failed load: %v", err)
		}
		if out.Total != 0 {
			t.Errorf("expected empty list, got %d", out.Total)
		}
	})

	t.Run("Failed resync keeps last snapshot", func(t *testing.T) {
		calls := 0
		repo := &fakeRepo{listFunc: func() ([]model.Project, error) {
			calls++
			if calls == 1 {
				return []model.Project{{ID: "p1", Deadline: "2024-05-20"}}, nil
			}
			return nil, errors.New("store unavailable")
		}}
		uc := newUnloadedController(t, repo)

		if err := uc.Load(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.Load(ctx); err == nil {
			t.Fatalf("expected resync error")
		}
		out, _ := uc.List(ctx, sc, project.ListInput{})
		if out.Total != 1 {
			t.Errorf("resync failure must not discard the snapshot, got %d projects", out.Total)
		}
	})

	t.Run("Persistence suppressed before first load", func(t *testing.T) {
		repo := &fakeRepo{upserted: make(chan model.Project, 1)}
		uc := newUnloadedController(t, repo)

		// Mutation before Load: applied locally, never written remotely.
		card, err := uc.Upsert(ctx, sc, project.UpsertInput{Name: "Early bird"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if card.Project.ID == "" {
			t.Errorf("expected generated id")
		}

		select {
		case p := <-repo.upserted:
			t.Errorf("write before first load must be suppressed, got upsert of %s", p.ID)
		case <-time.After(50 * time.Millisecond):
		}
	})
}
