package model

// TaskStatus is the tri-state status of a task.
type TaskStatus string

const (
	TaskStatusTodo    TaskStatus = "todo"
	TaskStatusOngoing TaskStatus = "ongoing"
	TaskStatusDone    TaskStatus = "done"
)

// Valid reports whether s is one of the three known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusOngoing, TaskStatusDone:
		return true
	}
	return false
}

// Task is a sub-item of a Project. It has no identity outside its parent.
type Task struct {
	ID     string     // Generated when the task is added to a project
	Title  string     // Required
	Area   string     // Optional functional-area label
	Status TaskStatus // todo | ongoing | done
}

// Project is a tracked unit of work with a deadline and a task list.
// Dates are ISO calendar dates ("2006-01-02"); store-managed timestamps
// are RFC3339 strings passed through from the document store.
type Project struct {
	ID              string   // Unique across the collection, stable for the lifetime
	Name            string   //
	Description     string   //
	FunctionalAreas []string // Ordered tag labels
	StartDate       string   // Defaults to Deadline minus 30 days
	Deadline        string   // Always present, defaults to today on write
	Tasks           []Task   //
	Archived        bool     // Archived projects persist but are hidden by default
	CreateTime      string   // Store-managed creation time (RFC3339)
	UpdateTime      string   // Store-managed last update time (RFC3339)
}
