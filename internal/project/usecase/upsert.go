package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"project-dashboard/internal/model"
	"project-dashboard/internal/project"
)

// Upsert creates or updates a project from an edit-dialog draft. Field
// defaults are applied to the draft, the local list is updated first, and
// the write is awaited so the caller can keep the dialog open on failure.
func (uc *implUseCase) Upsert(ctx context.Context, sc model.Scope, input project.UpsertInput) (project.ProjectCard, error) {
	if strings.TrimSpace(input.Name) == "" {
		return project.ProjectCard{}, project.ErrEmptyName
	}

	now := uc.now()
	p := uc.fromDraft(input)

	uc.mu.Lock()
	replaced := false
	for i := range uc.projects {
		if uc.projects[i].ID == p.ID {
			// Keep the store-managed creation time across overwrites.
			p.CreateTime = uc.projects[i].CreateTime
			uc.projects[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		uc.projects = append([]model.Project{p}, uc.projects...)
	}
	ready := uc.ready
	uc.mu.Unlock()

	uc.l.Infof(ctx, "upsert: user=%s project=%s replaced=%v", sc.UserID, p.ID, replaced)

	if !ready {
		// Persistence is suppressed until the first load completes.
		return uc.card(p, now), nil
	}

	persisted, err := uc.repo.UpsertProject(ctx, p)
	if err != nil {
		// The local change stands; the caller shows a failure notice and
		// may retry manually.
		return project.ProjectCard{}, fmt.Errorf("%w: %v", project.ErrPersistFailed, err)
	}

	uc.mu.Lock()
	for i := range uc.projects {
		if uc.projects[i].ID == persisted.ID {
			uc.projects[i] = persisted
			break
		}
	}
	uc.mu.Unlock()

	uc.mirrorDeadline(persisted)

	return uc.card(persisted, now), nil
}

// fromDraft applies the data-model defaults to an edit buffer: generated
// ids, deadline falling back to today, start date to deadline minus 30
// days, task statuses coerced into the tri-state enum.
func (uc *implUseCase) fromDraft(input project.UpsertInput) model.Project {
	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}

	deadline := strings.TrimSpace(input.Deadline)
	if deadline == "" {
		deadline = uc.calc.Today(uc.now())
	}

	startDate := strings.TrimSpace(input.StartDate)
	if startDate == "" {
		startDate = uc.calc.AddDays(deadline, -30)
	}

	areas := make([]string, 0, len(input.FunctionalAreas))
	for _, a := range input.FunctionalAreas {
		if a = strings.TrimSpace(a); a != "" {
			areas = append(areas, a)
		}
	}

	tasks := make([]model.Task, 0, len(input.Tasks))
	for _, t := range input.Tasks {
		title := strings.TrimSpace(t.Title)
		if title == "" {
			continue
		}

		taskID := t.ID
		if taskID == "" {
			taskID = uuid.NewString()
		}

		status := model.TaskStatus(t.Status)
		if !status.Valid() {
			status = model.TaskStatusTodo
		}

		tasks = append(tasks, model.Task{
			ID:     taskID,
			Title:  title,
			Area:   strings.TrimSpace(t.Area),
			Status: status,
		})
	}

	return model.Project{
		ID:              id,
		Name:            strings.TrimSpace(input.Name),
		Description:     input.Description,
		FunctionalAreas: areas,
		StartDate:       startDate,
		Deadline:        deadline,
		Tasks:           tasks,
		Archived:        input.Archived,
	}
}
