package project

import (
	"context"

	"project-dashboard/internal/model"
)

// UseCase is the dashboard controller: it owns the canonical in-memory
// project list and funnels every mutation through a named operation.
type UseCase interface {
	// Load fetches the full collection from the store and replaces the
	// in-memory snapshot. The first call (successful or not) moves the
	// controller from loading to ready. Later calls act as a resync.
	Load(ctx context.Context) error

	// List derives the displayed subset: archived-visibility, category
	// tab, then free-text search, ANDed together. Pure, no persistence.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Detail returns one project by id.
	Detail(ctx context.Context, sc model.Scope, id string) (ProjectCard, error)

	// Upsert creates or updates a project from a draft, applying field
	// defaults. Persistence is awaited; a failure is returned to the
	// caller while the local change stands.
	Upsert(ctx context.Context, sc model.Scope, input UpsertInput) (ProjectCard, error)

	// Delete removes a project optimistically; the remote delete is
	// best-effort and never rolled back.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// ToggleArchive flips the archived flag; persisted best-effort.
	ToggleArchive(ctx context.Context, sc model.Scope, id string) (ProjectCard, error)

	// SetTaskStatus replaces the status of one task inside a project;
	// the whole project document is persisted best-effort.
	SetTaskStatus(ctx context.Context, sc model.Scope, input SetTaskStatusInput) (ProjectCard, error)

	// Stats computes the dashboard headline counters.
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)

	// Calendar groups the month's deadlines by day.
	Calendar(ctx context.Context, sc model.Scope, input CalendarInput) (CalendarOutput, error)

	// Timeline computes a project's month-by-month occupancy for a year.
	Timeline(ctx context.Context, sc model.Scope, input TimelineInput) (TimelineOutput, error)
}
