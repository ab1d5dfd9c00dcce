package http

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"project-dashboard/internal/model"
	"project-dashboard/internal/project"
	"project-dashboard/pkg/response"
)

func TestNewProjectResp(t *testing.T) {
	t.Run("Timestamps render in display format", func(t *testing.T) {
		card := project.ProjectCard{
			Project: model.Project{
				ID:         "p1",
				Name:       "Release",
				Deadline:   "2024-05-20",
				CreateTime: "2024-05-01T15:30:00Z",
				UpdateTime: "2024-05-02T09:00:00Z",
			},
		}

		b, err := json.Marshal(newProjectResp(card))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// DateTime renders in the runner's local zone.
		created, _ := time.Parse(time.RFC3339, "2024-05-01T15:30:00Z")
		updated, _ := time.Parse(time.RFC3339, "2024-05-02T09:00:00Z")

		body := string(b)
		if want := `"create_time":"` + created.Local().Format(response.DateTimeFormat) + `"`; !strings.Contains(body, want) {
			t.Errorf("expected %s in %s", want, body)
		}
		if want := `"update_time":"` + updated.Local().Format(response.DateTimeFormat) + `"`; !strings.Contains(body, want) {
			t.Errorf("expected %s in %s", want, body)
		}
	})

	t.Run("Missing or malformed timestamps are omitted", func(t *testing.T) {
		card := project.ProjectCard{
			Project: model.Project{
				ID:         "p1",
				Name:       "Release",
				Deadline:   "2024-05-20",
				UpdateTime: "yesterday",
			},
		}

		b, err := json.Marshal(newProjectResp(card))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		body := string(b)
		if strings.Contains(body, "create_time") || strings.Contains(body, "update_time") {
			t.Errorf("expected timestamps omitted, got %s", body)
		}
	})
}

func TestNewCalendarResp(t *testing.T) {
	h := &handler{}

	out := project.CalendarOutput{
		Year:  2024,
		Month: 5,
		Days: []project.CalendarDay{
			{Day: 20, Projects: []project.ProjectCard{{Project: model.Project{ID: "p1", Name: "Release", Deadline: "2024-05-20"}}}},
		},
	}

	b, err := json.Marshal(h.newCalendarResp(out))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(string(b), `"date":"20 May 2024"`) {
		t.Errorf("day date not in display format: %s", b)
	}
}
