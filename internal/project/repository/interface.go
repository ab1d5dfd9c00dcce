package repository

import (
	"context"

	"project-dashboard/internal/model"
)

// ProjectRepository is the interface for remote document-store access.
// The whole Project document is the unit of persistence; the store has no
// finer-grained field update.
type ProjectRepository interface {
	// ListProjects fetches the full collection in stable order.
	ListProjects(ctx context.Context) ([]model.Project, error)

	// UpsertProject writes one project by id with partial-field merge, so
	// fields omitted by this client are preserved on the remote document.
	UpsertProject(ctx context.Context, p model.Project) (model.Project, error)

	// DeleteProject removes one document by id.
	DeleteProject(ctx context.Context, id string) error
}
