package docstore

import (
	"context"

	"project-dashboard/internal/model"
	"project-dashboard/internal/project/repository"
	pkgLog "project-dashboard/pkg/log"
)

type implRepository struct {
	client *Client
	mapper *Mapper
	l      pkgLog.Logger
}

// New creates a document-store backed project repository.
func New(client *Client, mapper *Mapper, l pkgLog.Logger) repository.ProjectRepository {
	return &implRepository{
		client: client,
		mapper: mapper,
		l:      l,
	}
}

func (r *implRepository) ListProjects(ctx context.Context) ([]model.Project, error) {
	docs, err := r.client.ListDocuments(ctx)
	if err != nil {
		r.l.Errorf(ctx, "docstore repository: failed to list documents: %v", err)
		return nil, err
	}

	projects := make([]model.Project, 0, len(docs))
	for _, doc := range docs {
		projects = append(projects, r.mapper.Project(doc))
	}
	return projects, nil
}

func (r *implRepository) UpsertProject(ctx context.Context, p model.Project) (model.Project, error) {
	doc, err := r.client.PatchDocument(ctx, p.ID, r.mapper.Fields(p))
	if err != nil {
		r.l.Errorf(ctx, "docstore repository: failed to upsert project %s: %v", p.ID, err)
		return model.Project{}, err
	}
	return r.mapper.Project(*doc), nil
}

func (r *implRepository) DeleteProject(ctx context.Context, id string) error {
	if err := r.client.DeleteDocument(ctx, id); err != nil {
		r.l.Errorf(ctx, "docstore repository: failed to delete project %s: %v", id, err)
		return err
	}
	return nil
}
