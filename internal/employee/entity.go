package employee

import (
	"github.com/dcastillo/tablero-recursos/internal/history"
)

// LastWeekDays is the number of daily entries tracked per employee.
const LastWeekDays = 5

// Assignment links an employee to a project. Its hour fields are derived
// sums of the employee's task hours within that project; they are
// refreshed on every recompute and never edited directly.
type Assignment struct {
	ProjectID     string `json:"projectId"`
	AssignedHours int    `json:"assignedHours"`
	ConsumedHours int    `json:"consumedHours"`
}

type Employee struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Avatar          string            `json:"avatar,omitempty"`
	Role            string            `json:"role,omitempty"`
	TotalHoursMonth int               `json:"totalHoursMonth"`
	Projects        []Assignment      `json:"projects"`
	HistoricalData  []history.Entry   `json:"historicalData"`
	LastWeekHours   [LastWeekDays]int `json:"lastWeekHours"`
}

// AssignmentFor returns the employee's assignment record for projectID.
func (e *Employee) AssignmentFor(projectID string) (*Assignment, bool) {
	for i := range e.Projects {
		if e.Projects[i].ProjectID == projectID {
			return &e.Projects[i], true
		}
	}
	return nil, false
}

func (e Employee) Clone() Employee {
	out := e
	if e.Projects != nil {
		out.Projects = make([]Assignment, len(e.Projects))
		copy(out.Projects, e.Projects)
	}
	out.HistoricalData = history.Clone(e.HistoricalData)
	return out
}
