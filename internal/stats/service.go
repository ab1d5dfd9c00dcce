package stats

import (
	"math"
	"time"

	"project-dashboard/internal/model"
	"project-dashboard/pkg/dateutil"
)

type Service interface {
	// ProjectProgress is the rounded completion percentage of one project.
	ProjectProgress(p model.Project) int

	// Counters computes the dashboard headline numbers.
	Counters(projects []model.Project, now time.Time) Counters

	// DeadlinesByDay groups non-archived projects by deadline day-of-month
	// for one displayed month.
	DeadlinesByDay(projects []model.Project, year int, month time.Month) map[int][]model.Project

	// MonthSummary computes the average progress of the month's projects.
	MonthSummary(projects []model.Project, year int, month time.Month) MonthSummary

	// YearOccupancy marks the months of year that overlap the project's
	// [startDate, deadline] span.
	YearOccupancy(p model.Project, year int) Occupancy
}

type service struct {
	calc *dateutil.Calc
}

func New(calc *dateutil.Calc) Service {
	return &service{calc: calc}
}

// ProjectProgress returns round(100 * done / total), and 0 for an empty
// task list.
func (s *service) ProjectProgress(p model.Project) int {
	total := len(p.Tasks)
	if total == 0 {
		return 0
	}

	done := 0
	for _, t := range p.Tasks {
		if t.Status == model.TaskStatusDone {
			done++
		}
	}

	return int(math.Round(100 * float64(done) / float64(total)))
}

func (s *service) Counters(projects []model.Project, now time.Time) Counters {
	var c Counters
	for _, p := range projects {
		// Ongoing-task total counts archived projects too.
		for _, t := range p.Tasks {
			if t.Status == model.TaskStatusOngoing {
				c.OngoingTasks++
			}
		}

		if p.Archived {
			continue
		}
		c.Active++

		days := s.calc.DaysUntil(p.Deadline, now)
		switch {
		case days < 0:
			c.Overdue++
		case days <= dateutil.DueSoonWindowDays:
			c.DueThisWeek++
		}
	}
	return c
}

func (s *service) DeadlinesByDay(projects []model.Project, year int, month time.Month) map[int][]model.Project {
	byDay := make(map[int][]model.Project)
	for _, p := range projects {
		if p.Archived {
			continue
		}
		t, ok := s.calc.ParseDay(p.Deadline)
		if !ok || t.Year() != year || t.Month() != month {
			continue
		}
		byDay[t.Day()] = append(byDay[t.Day()], p)
	}
	return byDay
}

func (s *service) MonthSummary(projects []model.Project, year int, month time.Month) MonthSummary {
	summary := MonthSummary{Year: year, Month: int(month)}

	sum, count := 0, 0
	for _, p := range projects {
		if p.Archived {
			continue
		}
		t, ok := s.calc.ParseDay(p.Deadline)
		if !ok || t.Year() != year || t.Month() != month {
			continue
		}
		sum += s.ProjectProgress(p)
		count++
	}

	if count > 0 {
		summary.AverageProgress = float64(sum) / float64(count)
	}
	return summary
}

func (s *service) YearOccupancy(p model.Project, year int) Occupancy {
	var occ Occupancy

	end, ok := s.calc.ParseDay(p.Deadline)
	if !ok {
		return occ
	}
	start, ok := s.calc.ParseDay(p.StartDate)
	if !ok || start.After(end) {
		start = end
	}

	for m := time.January; m <= time.December; m++ {
		monthStart := time.Date(year, m, 1, 0, 0, 0, 0, start.Location())
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
		if !start.After(monthEnd) && !end.Before(monthStart) {
			occ[int(m)-1] = true
		}
	}
	return occ
}
