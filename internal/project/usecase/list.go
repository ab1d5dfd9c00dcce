package usecase

import (
	"context"
	"strings"
	"time"

	"project-dashboard/internal/model"
	"project-dashboard/internal/project"
	"project-dashboard/pkg/dateutil"
)

// List derives the displayed subset: archived-visibility, category tab and
// free-text search are independent predicates ANDed together, applied in
// that order. Pure with respect to persistence.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input project.ListInput) (project.ListOutput, error) {
	if !input.Tab.Valid() {
		return project.ListOutput{}, project.ErrInvalidTab
	}

	now := uc.now()
	query := strings.ToLower(strings.TrimSpace(input.Query))

	cards := make([]project.ProjectCard, 0)
	for _, p := range uc.snapshot() {
		if p.Archived && !input.ShowArchived {
			continue
		}
		if !uc.matchesTab(p, input.Tab, now) {
			continue
		}
		if query != "" && !strings.Contains(searchHaystack(p), query) {
			continue
		}
		cards = append(cards, uc.card(p, now))
	}

	return project.ListOutput{Projects: cards, Total: len(cards)}, nil
}

// Detail returns one project by id.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (project.ProjectCard, error) {
	for _, p := range uc.snapshot() {
		if p.ID == id {
			return uc.card(p, uc.now()), nil
		}
	}
	return project.ProjectCard{}, project.ErrNotFound
}

func (uc *implUseCase) matchesTab(p model.Project, tab project.Tab, now time.Time) bool {
	switch tab {
	case project.TabAll, "":
		return true
	case project.TabOngoing:
		for _, t := range p.Tasks {
			if t.Status == model.TaskStatusOngoing {
				return true
			}
		}
		return false
	case project.TabWeek:
		days := uc.calc.DaysUntil(p.Deadline, now)
		return days >= 0 && days <= dateutil.DueSoonWindowDays
	case project.TabOverdue:
		return uc.calc.DaysUntil(p.Deadline, now) < 0
	}
	return false
}

// searchHaystack concatenates the searchable text of one project: name,
// description, joined area tags and joined task titles, lowercased.
func searchHaystack(p model.Project) string {
	parts := make([]string, 0, 3+len(p.Tasks))
	parts = append(parts, p.Name, p.Description, strings.Join(p.FunctionalAreas, " "))
	for _, t := range p.Tasks {
		parts = append(parts, t.Title)
	}
	return strings.ToLower(strings.Join(parts, " "))
}
