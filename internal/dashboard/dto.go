package dashboard

import (
	"time"

	"github.com/dcastillo/tablero-recursos/internal/project"
)

// UpdateAssignmentHoursDTO carries the new total as an "H:MM" string, the
// shape the free-text hour fields submit. Parsing is permissive: anything
// malformed counts as 0:00.
type UpdateAssignmentHoursDTO struct {
	AssignedHours string `json:"assigned_hours"`
}

type EditEmployeeDTO struct {
	ID              string  `json:"-"`
	Name            *string `json:"name"`
	Role            *string `json:"role"`
	TotalHoursMonth *int    `json:"total_hours_month"`
}

type EditProjectDTO struct {
	ID          string          `json:"-"`
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Deadline    *time.Time      `json:"deadline"`
	Status      *project.Status `json:"status"`
}

type EditTaskDTO struct {
	ID            string              `json:"-"`
	Name          *string             `json:"name"`
	Status        *project.TaskStatus `json:"status"`
	AssignedTo    *string             `json:"assigned_to"`
	AssignedHours *int                `json:"assigned_hours"`
	ConsumedHours *int                `json:"consumed_hours"`
}
