package stats

// Counters are the dashboard headline numbers, recomputed over the whole
// collection on every state change.
type Counters struct {
	Active       int // Projects with archived == false
	OngoingTasks int // Tasks with status "ongoing" across all projects, archived included
	DueThisWeek  int // Non-archived projects with 0 <= daysUntil <= 7
	Overdue      int // Non-archived projects with daysUntil < 0
}

// MonthSummary aggregates one displayed calendar month.
type MonthSummary struct {
	Year            int
	Month           int
	AverageProgress float64 // Mean completion percentage of the month's projects
}

// Occupancy marks which months of a displayed year a project's
// [startDate, deadline] span touches. Index 0 is January.
type Occupancy [12]bool
