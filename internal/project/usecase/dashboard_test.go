package usecase_test

import (
	"context"
	"errors"
	"testing"

	"project-dashboard/internal/model"
	"project-dashboard/internal/project"
)

func TestCalendar(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "tester"}

	seed := []model.Project{
		{ID: "a", Name: "A", Deadline: "2024-05-03",
			Tasks: []model.Task{{ID: "t", Title: "x", Status: model.TaskStatusDone}}},
		{ID: "b", Name: "B", Deadline: "2024-05-03"},
		{ID: "c", Name: "C", Deadline: "2024-05-28"},
		{ID: "d", Name: "D", Deadline: "2024-06-10"},
	}

	t.Run("Invalid month", func(t *testing.T) {
		uc := newController(t, &fakeRepo{}, seed...)
		_, err := uc.Calendar(ctx, sc, project.CalendarInput{Year: 2024, Month: 13})
		if !errors.Is(err, project.ErrInvalidMonth) {
			t.Errorf("expected ErrInvalidMonth, got %v", err)
		}
	})

	t.Run("Groups deadlines by day, sorted", func(t *testing.T) {
		uc := newController(t, &fakeRepo{}, seed...)

		out, err := uc.Calendar(ctx, sc, project.CalendarInput{Year: 2024, Month: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Days) != 2 {
			t.Fatalf("expected 2 deadline days, got %d", len(out.Days))
		}
		if out.Days[0].Day != 3 || out.Days[1].Day != 28 {
			t.Errorf("days not sorted: %+v", out.Days)
		}
		if len(out.Days[0].Projects) != 2 {
			t.Errorf("expected 2 projects on day 3")
		}
		// One project at 100%, two at 0% in May: average 33.3…
		if out.AverageProgress < 33.0 || out.AverageProgress > 34.0 {
			t.Errorf("AverageProgress = %.2f, want about 33.33", out.AverageProgress)
		}
	})
}

func TestTimeline(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "tester"}

	uc := newController(t, &fakeRepo{}, model.Project{
		ID: "span", Name: "Span", StartDate: "2024-02-10", Deadline: "2024-04-20",
	})

	t.Run("Unknown project", func(t *testing.T) {
		_, err := uc.Timeline(ctx, sc, project.TimelineInput{ProjectID: "nope", Year: 2024})
		if !errors.Is(err, project.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Occupancy bar", func(t *testing.T) {
		out, err := uc.Timeline(ctx, sc, project.TimelineInput{ProjectID: "span", Year: 2024})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for m := 0; m < 12; m++ {
			want := m >= 1 && m <= 3 // Feb..Apr
			if out.Months[m] != want {
				t.Errorf("month %d: got %v, want %v", m+1, out.Months[m], want)
			}
		}
	})
}
