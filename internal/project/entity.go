package project

import (
	"time"

	"github.com/dcastillo/tablero-recursos/internal/history"
)

// UnassignedLabel is the display fallback for tasks whose assignee no
// longer exists (the employee was deleted after the task was created).
const UnassignedLabel = "Sin asignar"

// Task hours are the single source of truth for workload: every
// per-assignment and per-project total is derived from them.
type Task struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Status        TaskStatus `json:"status"`
	AssignedTo    string     `json:"assignedTo"`
	AssignedHours int        `json:"assignedHours"`
	ConsumedHours int        `json:"consumedHours"`
}

type Project struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Type                Type            `json:"type"`
	Description         string          `json:"description"`
	Deadline            time.Time       `json:"deadline"`
	Status              Status          `json:"status"`
	Tasks               []Task          `json:"tasks"`
	HistoricalData      []history.Entry `json:"historicalData"`
	HasActivityThisWeek bool            `json:"hasActivityThisWeek"`
}

// TaskByID returns the project's task with the given id.
func (p *Project) TaskByID(taskID string) (*Task, bool) {
	for i := range p.Tasks {
		if p.Tasks[i].ID == taskID {
			return &p.Tasks[i], true
		}
	}
	return nil, false
}

// TasksFor returns the indexes of the project's tasks assigned to the
// given employee, in task order.
func (p *Project) TasksFor(employeeID string) []int {
	var idx []int
	for i := range p.Tasks {
		if p.Tasks[i].AssignedTo == employeeID {
			idx = append(idx, i)
		}
	}
	return idx
}

func (p Project) Clone() Project {
	out := p
	if p.Tasks != nil {
		out.Tasks = make([]Task, len(p.Tasks))
		copy(out.Tasks, p.Tasks)
	}
	out.HistoricalData = history.Clone(p.HistoricalData)
	return out
}
