package usecase

import (
	"sync"
	"time"

	"project-dashboard/internal/model"
	"project-dashboard/internal/project/repository"
	"project-dashboard/internal/stats"
	"project-dashboard/pkg/dateutil"
	"project-dashboard/pkg/gcalendar"
	pkgLog "project-dashboard/pkg/log"
)

// persistTimeout bounds the background best-effort writes so a hung store
// call cannot leak a goroutine.
const persistTimeout = 30 * time.Second

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.ProjectRepository
	stats      stats.Service
	calc       *dateutil.Calc
	labels     dateutil.Labels
	calendar   *gcalendar.Client // optional deadline mirroring, may be nil
	calendarID string
	timezone   string
	now        func() time.Time

	// Canonical in-memory state. The list is the single source of truth
	// for rendering; every mutation goes through one of the named
	// operations below.
	mu       sync.Mutex
	projects []model.Project
	ready    bool
}

// New creates the dashboard controller. now is usually time.Now.
func New(
	l pkgLog.Logger,
	repo repository.ProjectRepository,
	statsSvc stats.Service,
	calc *dateutil.Calc,
	labels dateutil.Labels,
	calendar *gcalendar.Client,
	calendarID string,
	timezone string,
	now func() time.Time,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		stats:      statsSvc,
		calc:       calc,
		labels:     labels,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
		now:        now,
	}
}
