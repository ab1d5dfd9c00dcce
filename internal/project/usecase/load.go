package usecase

import (
	"context"

	"project-dashboard/internal/model"
)

// Load fetches the whole collection and replaces the in-memory snapshot.
// The controller becomes ready after the first call completes, success or
// not; until then, mutations are applied locally but never persisted, so a
// half-initialized client can't overwrite the remote store with an empty
// list.
func (uc *implUseCase) Load(ctx context.Context) error {
	projects, err := uc.repo.ListProjects(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	wasReady := uc.ready
	uc.ready = true

	if err != nil {
		uc.l.Errorf(ctx, "load: failed to fetch project collection: %v", err)
		if !wasReady {
			// First load failed: start with an empty, interactive dashboard.
			uc.projects = []model.Project{}
		}
		// On a resync failure the last known snapshot stays in place.
		return err
	}

	uc.projects = projects
	uc.l.Infof(ctx, "load: snapshot replaced with %d projects", len(projects))
	return nil
}
