package docstore

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"project-dashboard/internal/model"
	"project-dashboard/pkg/dateutil"
)

// Mapper normalizes loosely-typed stored documents into well-formed
// projects. It is total: any input document yields a structurally valid
// Project, substituting defaults for missing or malformed fields.
type Mapper struct {
	calc *dateutil.Calc
	now  func() time.Time
}

// NewMapper creates a mapper. now is usually time.Now; tests pin it.
func NewMapper(calc *dateutil.Calc, now func() time.Time) *Mapper {
	return &Mapper{calc: calc, now: now}
}

// Project maps one stored document to the validated in-memory shape.
func (m *Mapper) Project(doc Document) model.Project {
	fields := doc.Fields
	if fields == nil {
		fields = map[string]any{}
	}

	id := asString(fields["id"])
	if id == "" {
		id = doc.Key
	}

	deadline := asString(fields["deadline"])
	if deadline == "" {
		deadline = m.calc.Today(m.now())
	}

	startDate := asString(fields["startDate"])
	if startDate == "" {
		startDate = m.calc.AddDays(deadline, -30)
	}

	return model.Project{
		ID:              id,
		Name:            asString(fields["name"]),
		Description:     asString(fields["description"]),
		FunctionalAreas: asStringSlice(fields["functionalAreas"]),
		StartDate:       startDate,
		Deadline:        deadline,
		Tasks:           m.tasks(fields["tasks"]),
		Archived:        truthy(fields["archived"]),
		CreateTime:      doc.CreateTime,
		UpdateTime:      doc.UpdateTime,
	}
}

// Fields converts a project back into the document field map written on
// upsert. Store-managed timestamps are never written.
func (m *Mapper) Fields(p model.Project) map[string]any {
	tasks := make([]any, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		tasks = append(tasks, map[string]any{
			"id":     t.ID,
			"title":  t.Title,
			"area":   t.Area,
			"status": string(t.Status),
		})
	}

	areas := make([]any, 0, len(p.FunctionalAreas))
	for _, a := range p.FunctionalAreas {
		areas = append(areas, a)
	}

	return map[string]any{
		"id":              p.ID,
		"name":            p.Name,
		"description":     p.Description,
		"functionalAreas": areas,
		"startDate":       p.StartDate,
		"deadline":        p.Deadline,
		"tasks":           tasks,
		"archived":        p.Archived,
	}
}

// tasks keeps only elements that are objects with a string title and a
// status from the tri-state enum; everything else is silently dropped.
func (m *Mapper) tasks(v any) []model.Task {
	items, ok := v.([]any)
	if !ok {
		return []model.Task{}
	}

	tasks := make([]model.Task, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		title, ok := obj["title"].(string)
		if !ok {
			continue
		}
		status := model.TaskStatus(asString(obj["status"]))
		if !status.Valid() {
			continue
		}

		id := asString(obj["id"])
		if id == "" {
			id = uuid.NewString()
		}

		tasks = append(tasks, model.Task{
			ID:     id,
			Title:  title,
			Area:   asString(obj["area"]),
			Status: status,
		})
	}
	return tasks
}

// asString coerces a loosely-typed value: strings pass through, anything
// else becomes the empty string.
func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asStringSlice coerces an array field: scalar elements are stringified,
// empty strings dropped, non-arrays become an empty slice.
func asStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		switch x := item.(type) {
		case string:
			s = x
		case float64, bool:
			s = fmt.Sprint(x)
		default:
			continue
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// truthy coerces any JSON value to a boolean the way a schema-less store's
// clients expect: nil and zero values are false, everything else true.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}
