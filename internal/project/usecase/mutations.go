package usecase

import (
	"context"

	"project-dashboard/internal/model"
	"project-dashboard/internal/project"
)

// Delete removes the project from local state immediately and issues the
// remote delete in the background. A remote failure is swallowed: the
// record is reconciled on the next full load.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	uc.mu.Lock()
	idx := -1
	for i := range uc.projects {
		if uc.projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		uc.mu.Unlock()
		return project.ErrNotFound
	}
	uc.projects = append(uc.projects[:idx], uc.projects[idx+1:]...)
	ready := uc.ready
	uc.mu.Unlock()

	uc.l.Infof(ctx, "delete: user=%s project=%s", sc.UserID, id)

	if ready {
		uc.deleteAsync(id)
	}
	return nil
}

// ToggleArchive flips the archived flag on one project and persists the
// record best-effort.
func (uc *implUseCase) ToggleArchive(ctx context.Context, sc model.Scope, id string) (project.ProjectCard, error) {
	uc.mu.Lock()
	var toggled model.Project
	found := false
	for i := range uc.projects {
		if uc.projects[i].ID == id {
			uc.projects[i].Archived = !uc.projects[i].Archived
			toggled = uc.projects[i]
			found = true
			break
		}
	}
	ready := uc.ready
	uc.mu.Unlock()

	if !found {
		return project.ProjectCard{}, project.ErrNotFound
	}

	uc.l.Infof(ctx, "archive: user=%s project=%s archived=%v", sc.UserID, id, toggled.Archived)

	if ready {
		uc.persistAsync("archive", toggled)
	}
	return uc.card(toggled, uc.now()), nil
}

// SetTaskStatus replaces the status of one task, located by id inside its
// parent project, leaving all other tasks untouched. The whole project
// document is persisted: the store has no finer-grained field update.
func (uc *implUseCase) SetTaskStatus(ctx context.Context, sc model.Scope, input project.SetTaskStatusInput) (project.ProjectCard, error) {
	status := model.TaskStatus(input.Status)
	if !status.Valid() {
		return project.ProjectCard{}, project.ErrInvalidStatus
	}

	uc.mu.Lock()
	var updated model.Project
	foundProject, foundTask := false, false
	for i := range uc.projects {
		if uc.projects[i].ID != input.ProjectID {
			continue
		}
		foundProject = true
		// Copy-on-write: snapshots hand the old task slice to concurrent
		// readers, so the element is never written through in place.
		tasks := make([]model.Task, len(uc.projects[i].Tasks))
		copy(tasks, uc.projects[i].Tasks)
		for j := range tasks {
			if tasks[j].ID == input.TaskID {
				tasks[j].Status = status
				foundTask = true
				break
			}
		}
		if foundTask {
			uc.projects[i].Tasks = tasks
		}
		updated = uc.projects[i]
		break
	}
	ready := uc.ready
	uc.mu.Unlock()

	if !foundProject {
		return project.ProjectCard{}, project.ErrNotFound
	}
	if !foundTask {
		return project.ProjectCard{}, project.ErrTaskNotFound
	}

	uc.l.Infof(ctx, "task-status: user=%s project=%s task=%s status=%s",
		sc.UserID, input.ProjectID, input.TaskID, status)

	if ready {
		uc.persistAsync("task-status", updated)
	}
	return uc.card(updated, uc.now()), nil
}
