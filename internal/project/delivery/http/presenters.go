package http

import (
	"strings"
	"time"

	"project-dashboard/internal/project"
	"project-dashboard/pkg/response"
)

// --- Request DTOs ---

type taskReq struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Area   string `json:"area"`
	Status string `json:"status"`
}

type upsertReq struct {
	ID              string    `json:"-"` // populated from URI param on update
	Name            string    `json:"name"        binding:"required,min=1,max=255"`
	Description     string    `json:"description" binding:"max=2000"`
	FunctionalAreas []string  `json:"functional_areas"`
	AreasText       string    `json:"areas_text"` // raw comma-separated alternative
	StartDate       string    `json:"start_date"`
	Deadline        string    `json:"deadline"`
	Tasks           []taskReq `json:"tasks"`
	Archived        bool      `json:"archived"`
}

func (r upsertReq) validate() error { return nil }

func (r upsertReq) toInput() project.UpsertInput {
	areas := r.FunctionalAreas
	if len(areas) == 0 && r.AreasText != "" {
		for _, a := range strings.Split(r.AreasText, ",") {
			if a = strings.TrimSpace(a); a != "" {
				areas = append(areas, a)
			}
		}
	}

	tasks := make([]project.TaskDraft, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = project.TaskDraft{
			ID:     t.ID,
			Title:  t.Title,
			Area:   t.Area,
			Status: t.Status,
		}
	}

	return project.UpsertInput{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		FunctionalAreas: areas,
		StartDate:       r.StartDate,
		Deadline:        r.Deadline,
		Tasks:           tasks,
		Archived:        r.Archived,
	}
}

// ---

type listReq struct {
	Query        string `form:"q"`
	Tab          string `form:"tab"`
	ShowArchived bool   `form:"archived"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() project.ListInput {
	return project.ListInput{
		Query:        r.Query,
		Tab:          project.Tab(r.Tab),
		ShowArchived: r.ShowArchived,
	}
}

// ---

type taskStatusReq struct {
	ProjectID string `json:"-"`
	TaskID    string `json:"-"`
	Status    string `json:"status" binding:"required"`
}

func (r taskStatusReq) validate() error { return nil }

func (r taskStatusReq) toInput() project.SetTaskStatusInput {
	return project.SetTaskStatusInput{
		ProjectID: r.ProjectID,
		TaskID:    r.TaskID,
		Status:    r.Status,
	}
}

// ---

type calendarReq struct {
	Year  int `form:"year"`
	Month int `form:"month"`
}

func (r calendarReq) toInput() project.CalendarInput {
	return project.CalendarInput{Year: r.Year, Month: r.Month}
}

type timelineReq struct {
	ProjectID string `form:"-"`
	Year      int    `form:"year"`
}

func (r timelineReq) toInput() project.TimelineInput {
	return project.TimelineInput{ProjectID: r.ProjectID, Year: r.Year}
}

// --- Response DTOs ---

type taskResp struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Area   string `json:"area,omitempty"`
	Status string `json:"status"`
}

type projectResp struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	FunctionalAreas []string   `json:"functional_areas"`
	StartDate       string     `json:"start_date"`
	Deadline        string     `json:"deadline"`
	DeadlineDisplay string     `json:"deadline_display"`
	Tasks           []taskResp `json:"tasks"`
	Archived        bool       `json:"archived"`
	Progress        int        `json:"progress"`
	DaysUntil       int        `json:"days_until"`
	Urgency         string     `json:"urgency"`
	DueLabel        string     `json:"due_label"`
	CreateTime      *response.DateTime `json:"create_time,omitempty"`
	UpdateTime      *response.DateTime `json:"update_time,omitempty"`
}

// timestampResp parses a stored RFC3339 timestamp into the display
// marshaler. Records synced from the store before timestamps were
// recorded carry none, so a missing or malformed value renders as absent.
func timestampResp(s string) *response.DateTime {
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	dt := response.DateTime(ts)
	return &dt
}

func newProjectResp(card project.ProjectCard) projectResp {
	p := card.Project
	tasks := make([]taskResp, len(p.Tasks))
	for i, t := range p.Tasks {
		tasks[i] = taskResp{
			ID:     t.ID,
			Title:  t.Title,
			Area:   t.Area,
			Status: string(t.Status),
		}
	}
	return projectResp{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		FunctionalAreas: p.FunctionalAreas,
		StartDate:       p.StartDate,
		Deadline:        p.Deadline,
		DeadlineDisplay: card.DeadlineDisplay,
		Tasks:           tasks,
		Archived:        p.Archived,
		Progress:        card.Progress,
		DaysUntil:       card.DaysUntil,
		Urgency:         string(card.Urgency),
		DueLabel:        card.DueLabel,
		CreateTime:      timestampResp(p.CreateTime),
		UpdateTime:      timestampResp(p.UpdateTime),
	}
}

type detailResp struct {
	Project projectResp `json:"project"`
}

func (h *handler) newDetailResp(card project.ProjectCard) detailResp {
	return detailResp{Project: newProjectResp(card)}
}

type listResp struct {
	Projects []projectResp `json:"projects"`
	Total    int           `json:"total"`
}

func (h *handler) newListResp(out project.ListOutput) listResp {
	projects := make([]projectResp, len(out.Projects))
	for i, card := range out.Projects {
		projects[i] = newProjectResp(card)
	}
	return listResp{
		Projects: projects,
		Total:    out.Total,
	}
}

type statsResp struct {
	Active       int `json:"active"`
	OngoingTasks int `json:"ongoing_tasks"`
	DueThisWeek  int `json:"due_this_week"`
	Overdue      int `json:"overdue"`
}

func (h *handler) newStatsResp(out project.StatsOutput) statsResp {
	return statsResp{
		Active:       out.Counters.Active,
		OngoingTasks: out.Counters.OngoingTasks,
		DueThisWeek:  out.Counters.DueThisWeek,
		Overdue:      out.Counters.Overdue,
	}
}

type calendarDayResp struct {
	Day      int           `json:"day"`
	Date     response.Date `json:"date"`
	Projects []projectResp `json:"projects"`
}

type calendarResp struct {
	Year            int               `json:"year"`
	Month           int               `json:"month"`
	Days            []calendarDayResp `json:"days"`
	AverageProgress float64           `json:"average_progress"`
}

func (h *handler) newCalendarResp(out project.CalendarOutput) calendarResp {
	days := make([]calendarDayResp, len(out.Days))
	for i, d := range out.Days {
		projects := make([]projectResp, len(d.Projects))
		for j, card := range d.Projects {
			projects[j] = newProjectResp(card)
		}
		days[i] = calendarDayResp{
			Day:      d.Day,
			Date:     response.Date(time.Date(out.Year, time.Month(out.Month), d.Day, 0, 0, 0, 0, time.UTC)),
			Projects: projects,
		}
	}
	return calendarResp{
		Year:            out.Year,
		Month:           out.Month,
		Days:            days,
		AverageProgress: out.AverageProgress,
	}
}

type timelineResp struct {
	ProjectID string   `json:"project_id"`
	Year      int      `json:"year"`
	Months    [12]bool `json:"months"`
}

func (h *handler) newTimelineResp(out project.TimelineOutput) timelineResp {
	return timelineResp{
		ProjectID: out.ProjectID,
		Year:      out.Year,
		Months:    out.Months,
	}
}
