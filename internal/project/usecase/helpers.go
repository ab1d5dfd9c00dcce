package usecase

import (
	"context"
	"time"

	"project-dashboard/internal/model"
	"project-dashboard/internal/project"
	"project-dashboard/pkg/dateutil"
	"project-dashboard/pkg/gcalendar"
)

// card enriches a project with the derived values the views render.
func (uc *implUseCase) card(p model.Project, now time.Time) project.ProjectCard {
	days := uc.calc.DaysUntil(p.Deadline, now)
	return project.ProjectCard{
		Project:         p,
		Progress:        uc.stats.ProjectProgress(p),
		DaysUntil:       days,
		Urgency:         dateutil.BandFor(days),
		DueLabel:        uc.labels.For(days),
		DeadlineDisplay: uc.calc.FormatDisplay(p.Deadline),
	}
}

// snapshot copies the canonical list so derivations run without the lock.
func (uc *implUseCase) snapshot() []model.Project {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]model.Project, len(uc.projects))
	copy(out, uc.projects)
	return out
}

// persistAsync writes one project back to the store in the background.
// A failure is logged and swallowed: the optimistic local state stands and
// the record is reconciled on the next full load.
func (uc *implUseCase) persistAsync(op string, p model.Project) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if _, err := uc.repo.UpsertProject(ctx, p); err != nil {
			uc.l.Warnf(ctx, "%s: best-effort persist of project %s failed: %v", op, p.ID, err)
		}
	}()
}

// deleteAsync issues the remote delete in the background, best-effort.
func (uc *implUseCase) deleteAsync(id string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if err := uc.repo.DeleteProject(ctx, id); err != nil {
			uc.l.Warnf(ctx, "delete: best-effort remote delete of project %s failed: %v", id, err)
		}
	}()
}

// mirrorDeadline creates an all-day calendar event on the project's
// deadline when calendar mirroring is configured. Never surfaced.
func (uc *implUseCase) mirrorDeadline(p model.Project) {
	if uc.calendar == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		day, ok := uc.calc.ParseDay(p.Deadline)
		if !ok {
			return
		}

		_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     "Deadline: " + p.Name,
			Description: p.Description,
			StartTime:   day,
			EndTime:     day.AddDate(0, 0, 1),
			AllDay:      true,
			Timezone:    uc.timezone,
		})
		if err != nil {
			uc.l.Warnf(ctx, "upsert: calendar mirror for project %s failed: %v", p.ID, err)
		}
	}()
}
