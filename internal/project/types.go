package project

import (
	"project-dashboard/internal/model"
	"project-dashboard/internal/stats"
	"project-dashboard/pkg/dateutil"
)

// Tab is the dashboard category tab.
type Tab string

const (
	TabAll     Tab = "all"
	TabOngoing Tab = "ongoing" // at least one task with status "ongoing"
	TabWeek    Tab = "week"    // 0 <= daysUntil <= 7
	TabOverdue Tab = "overdue" // daysUntil < 0
)

// Valid reports whether t is a known tab. The empty tab means "all".
func (t Tab) Valid() bool {
	switch t {
	case TabAll, TabOngoing, TabWeek, TabOverdue, "":
		return true
	}
	return false
}

// ListInput selects the displayed subset of the collection.
type ListInput struct {
	Query        string // Case-insensitive substring over name, description, areas, task titles
	Tab          Tab    // Defaults to "all"
	ShowArchived bool   // Include archived projects
}

// ProjectCard is a project enriched with the derived values every view
// needs: completion percentage, urgency and the due-date label.
type ProjectCard struct {
	Project         model.Project
	Progress        int           // 0-100
	DaysUntil       int           // Negative = overdue
	Urgency         dateutil.Band //
	DueLabel        string        // Human label, e.g. "due today"
	DeadlineDisplay string        // "02 Jan 2006"
}

// ListOutput is the derived view of the collection.
type ListOutput struct {
	Projects []ProjectCard
	Total    int // Size of the filtered set
}

// TaskDraft is one task inside an upsert draft.
type TaskDraft struct {
	ID     string // Empty on newly added tasks; generated by the controller
	Title  string
	Area   string
	Status string // Coerced to the tri-state enum, defaulting to "todo"
}

// UpsertInput is the edit-dialog draft for create or update.
type UpsertInput struct {
	ID              string // Empty means create
	Name            string
	Description     string
	FunctionalAreas []string
	StartDate       string // ISO date; defaulted from deadline when empty
	Deadline        string // ISO date; defaulted to today when empty
	Tasks           []TaskDraft
	Archived        bool
}

// SetTaskStatusInput targets one task within one project.
type SetTaskStatusInput struct {
	ProjectID string
	TaskID    string
	Status    string
}

// StatsOutput carries the dashboard headline counters.
type StatsOutput struct {
	Counters stats.Counters
}

// CalendarInput selects the displayed month.
type CalendarInput struct {
	Year  int
	Month int // 1-12
}

// CalendarDay is one day cell of the displayed month.
type CalendarDay struct {
	Day      int
	Projects []ProjectCard
}

// CalendarOutput is the month view: its deadline days plus the month's
// average progress.
type CalendarOutput struct {
	Year            int
	Month           int
	Days            []CalendarDay // Sorted by day, only days with deadlines
	AverageProgress float64
}

// TimelineInput selects a project and a displayed year.
type TimelineInput struct {
	ProjectID string
	Year      int
}

// TimelineOutput is the 12-slot occupancy bar of one project.
type TimelineOutput struct {
	ProjectID string
	Year      int
	Months    stats.Occupancy
}
