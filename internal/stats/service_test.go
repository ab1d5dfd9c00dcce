package stats_test

import (
	"testing"
	"time"

	"project-dashboard/internal/model"
	"project-dashboard/internal/stats"
	"project-dashboard/pkg/dateutil"
)

func newService(t *testing.T) stats.Service {
	t.Helper()
	calc, err := dateutil.NewCalc("UTC")
	if err != nil {
		t.Fatalf("failed to create calc: %v", err)
	}
	return stats.New(calc)
}

func taskWith(status model.TaskStatus) model.Task {
	return model.Task{ID: "t", Title: "task", Status: status}
}

func TestProjectProgress(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name  string
		tasks []model.Task
		want  int
	}{
		{name: "Empty task list", tasks: nil, want: 0},
		{
			name:  "None done",
			tasks: []model.Task{taskWith(model.TaskStatusTodo), taskWith(model.TaskStatusOngoing)},
			want:  0,
		},
		{
			name:  "Half done",
			tasks: []model.Task{taskWith(model.TaskStatusDone), taskWith(model.TaskStatusTodo)},
			want:  50,
		},
		{
			name: "One of three done rounds to 33",
			tasks: []model.Task{
				taskWith(model.TaskStatusDone),
				taskWith(model.TaskStatusTodo),
				taskWith(model.TaskStatusOngoing),
			},
			want: 33,
		},
		{
			name: "Two of three done rounds to 67",
			tasks: []model.Task{
				taskWith(model.TaskStatusDone),
				taskWith(model.TaskStatusDone),
				taskWith(model.TaskStatusTodo),
			},
			want: 67,
		},
		{
			name:  "All done",
			tasks: []model.Task{taskWith(model.TaskStatusDone)},
			want:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.ProjectProgress(model.Project{Tasks: tt.tasks})
			if got != tt.want {
				t.Errorf("ProjectProgress = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCounters(t *testing.T) {
	svc := newService(t)
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	projects := []model.Project{
		{
			ID:       "p1",
			Deadline: "2024-05-15", // due today
			Tasks:    []model.Task{taskWith(model.TaskStatusOngoing)},
		},
		{
			ID:       "p2",
			Deadline: "2024-05-10", // overdue
		},
		{
			ID:       "p3",
			Deadline: "2024-06-30", // on track
		},
		{
			ID:       "p4",
			Deadline: "2024-05-05", // overdue but archived
			Archived: true,
			Tasks:    []model.Task{taskWith(model.TaskStatusOngoing)},
		},
	}

	c := svc.Counters(projects, now)

	if c.Active != 3 {
		t.Errorf("Active = %d, want 3", c.Active)
	}
	// Archived projects still contribute their ongoing tasks.
	if c.OngoingTasks != 2 {
		t.Errorf("OngoingTasks = %d, want 2", c.OngoingTasks)
	}
	if c.DueThisWeek != 1 {
		t.Errorf("DueThisWeek = %d, want 1", c.DueThisWeek)
	}
	if c.Overdue != 1 {
		t.Errorf("Overdue = %d, want 1", c.Overdue)
	}
}

func TestDeadlinesByDay(t *testing.T) {
	svc := newService(t)

	projects := []model.Project{
		{ID: "a", Deadline: "2024-05-03"},
		{ID: "b", Deadline: "2024-05-03"},
		{ID: "c", Deadline: "2024-05-20"},
		{ID: "d", Deadline: "2024-06-01"},            // other month
		{ID: "e", Deadline: "2024-05-10", Archived: true}, // hidden
	}

	byDay := svc.DeadlinesByDay(projects, 2024, time.May)

	if len(byDay) != 2 {
		t.Fatalf("expected 2 deadline days, got %d", len(byDay))
	}
	if len(byDay[3]) != 2 {
		t.Errorf("expected 2 projects on day 3, got %d", len(byDay[3]))
	}
	if len(byDay[20]) != 1 || byDay[20][0].ID != "c" {
		t.Errorf("unexpected grouping for day 20: %+v", byDay[20])
	}
}

func TestMonthSummary(t *testing.T) {
	svc := newService(t)

	projects := []model.Project{
		{
			ID:       "a",
			Deadline: "2024-05-03",
			Tasks:    []model.Task{taskWith(model.TaskStatusDone)}, // 100%
		},
		{
			ID:       "b",
			Deadline: "2024-05-20",
			Tasks:    []model.Task{taskWith(model.TaskStatusDone), taskWith(model.TaskStatusTodo)}, // 50%
		},
		{ID: "c", Deadline: "2024-06-01"}, // other month, ignored
	}

	summary := svc.MonthSummary(projects, 2024, time.May)
	if summary.AverageProgress != 75 {
		t.Errorf("AverageProgress = %.1f, want 75.0", summary.AverageProgress)
	}

	empty := svc.MonthSummary(nil, 2024, time.May)
	if empty.AverageProgress != 0 {
		t.Errorf("empty month average should be 0, got %.1f", empty.AverageProgress)
	}
}

func TestYearOccupancy(t *testing.T) {
	svc := newService(t)

	t.Run("Span inside one year", func(t *testing.T) {
		p := model.Project{StartDate: "2024-03-10", Deadline: "2024-06-02"}
		occ := svc.YearOccupancy(p, 2024)
		for m := 0; m < 12; m++ {
			want := m >= 2 && m <= 5 // Mar..Jun
			if occ[m] != want {
				t.Errorf("month %d: occupancy = %v, want %v", m+1, occ[m], want)
			}
		}
	})

	t.Run("Span outside the displayed year", func(t *testing.T) {
		p := model.Project{StartDate: "2023-01-01", Deadline: "2023-12-31"}
		occ := svc.YearOccupancy(p, 2024)
		for m := 0; m < 12; m++ {
			if occ[m] {
				t.Errorf("month %d should not be occupied", m+1)
			}
		}
	})

	t.Run("Start after deadline collapses to deadline day", func(t *testing.T) {
		p := model.Project{StartDate: "2024-09-01", Deadline: "2024-04-15"}
		occ := svc.YearOccupancy(p, 2024)
		if !occ[3] {
			t.Errorf("April should be occupied")
		}
		for m := 0; m < 12; m++ {
			if m != 3 && occ[m] {
				t.Errorf("month %d should not be occupied", m+1)
			}
		}
	})
}
