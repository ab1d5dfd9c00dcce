package usecase

import (
	"context"
	"sort"
	"time"

	"project-dashboard/internal/model"
	"project-dashboard/internal/project"
)

// Stats computes the dashboard headline counters over the whole collection.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (project.StatsOutput, error) {
	return project.StatsOutput{
		Counters: uc.stats.Counters(uc.snapshot(), uc.now()),
	}, nil
}

// Calendar groups the displayed month's deadlines by day and computes the
// month's average progress.
func (uc *implUseCase) Calendar(ctx context.Context, sc model.Scope, input project.CalendarInput) (project.CalendarOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return project.CalendarOutput{}, project.ErrInvalidMonth
	}

	now := uc.now()
	projects := uc.snapshot()
	month := time.Month(input.Month)

	byDay := uc.stats.DeadlinesByDay(projects, input.Year, month)

	days := make([]project.CalendarDay, 0, len(byDay))
	for day, group := range byDay {
		cards := make([]project.ProjectCard, 0, len(group))
		for _, p := range group {
			cards = append(cards, uc.card(p, now))
		}
		days = append(days, project.CalendarDay{Day: day, Projects: cards})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })

	summary := uc.stats.MonthSummary(projects, input.Year, month)

	return project.CalendarOutput{
		Year:            input.Year,
		Month:           input.Month,
		Days:            days,
		AverageProgress: summary.AverageProgress,
	}, nil
}

// Timeline computes one project's month-by-month occupancy of a year.
func (uc *implUseCase) Timeline(ctx context.Context, sc model.Scope, input project.TimelineInput) (project.TimelineOutput, error) {
	for _, p := range uc.snapshot() {
		if p.ID == input.ProjectID {
			return project.TimelineOutput{
				ProjectID: p.ID,
				Year:      input.Year,
				Months:    uc.stats.YearOccupancy(p, input.Year),
			}, nil
		}
	}
	return project.TimelineOutput{}, project.ErrNotFound
}
