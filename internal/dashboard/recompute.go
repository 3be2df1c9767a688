package dashboard

import (
	"math"

	"github.com/dcastillo/tablero-recursos/internal/employee"
	"github.com/dcastillo/tablero-recursos/internal/project"
)

// CalculatedEmployee extends the raw employee with the derived workload
// metrics. It is rebuilt wholesale on every recompute and never edited.
type CalculatedEmployee struct {
	employee.Employee
	RecurringHours         int  `json:"recurringHours"`
	OneTimeHours           int  `json:"oneTimeHours"`
	BalanceHours           int  `json:"balanceHours"`
	OccupancyRate          int  `json:"occupancyRate"`
	HasLoggedHoursThisWeek bool `json:"hasLoggedHoursThisWeek"`
	LastWeekDailyAverage   int  `json:"lastWeekDailyAverage"`
}

func (c CalculatedEmployee) clone() CalculatedEmployee {
	out := c
	out.Employee = c.Employee.Clone()
	return out
}

type CalculatedProject struct {
	project.Project
	Team               []CalculatedEmployee `json:"team"`
	TotalAssignedHours int                  `json:"totalAssignedHours"`
	TotalConsumedHours int                  `json:"totalConsumedHours"`
	Progress           int                  `json:"progress"`
}

// DashboardData is one immutable snapshot of the calculated views.
type DashboardData struct {
	Employees []CalculatedEmployee `json:"employees"`
	Projects  []CalculatedProject  `json:"projects"`
}

// EmployeeByID looks an employee up in the snapshot. The second return is
// false for ids that no longer resolve (e.g. a deleted assignee).
func (d DashboardData) EmployeeByID(id string) (CalculatedEmployee, bool) {
	for _, e := range d.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return CalculatedEmployee{}, false
}

// AssigneeName resolves a task assignee for display, falling back to the
// unassigned label for dangling ids.
func (d DashboardData) AssigneeName(employeeID string) string {
	if e, ok := d.EmployeeByID(employeeID); ok {
		return e.Name
	}
	return project.UnassignedLabel
}

// clampedRate returns round(100*part/whole) clamped to [0,100], and 0 when
// the denominator is zero.
func clampedRate(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	rate := int(math.Round(100 * float64(part) / float64(whole)))
	if rate > 100 {
		return 100
	}
	if rate < 0 {
		return 0
	}
	return rate
}

type hourSums struct {
	assigned int
	consumed int
}

// Recompute derives a fully consistent snapshot from the raw store. It is
// deterministic and side-effect free: the input store is not touched and
// the returned tree shares no memory with it.
func Recompute(s Store) DashboardData {
	// Per-employee, per-project task sums. Task hours are authoritative;
	// assignment records only carry membership.
	taskSums := make(map[string]map[string]hourSums)
	for _, p := range s.Projects {
		for _, t := range p.Tasks {
			byProject, ok := taskSums[t.AssignedTo]
			if !ok {
				byProject = make(map[string]hourSums)
				taskSums[t.AssignedTo] = byProject
			}
			sums := byProject[p.ID]
			sums.assigned += t.AssignedHours
			sums.consumed += t.ConsumedHours
			byProject[p.ID] = sums
		}
	}

	projectTypes := make(map[string]project.Type, len(s.Projects))
	for _, p := range s.Projects {
		projectTypes[p.ID] = p.Type
	}

	calcEmployees := make([]CalculatedEmployee, 0, len(s.Employees))
	for _, raw := range s.Employees {
		e := raw.Clone()

		recurring, oneTime := 0, 0
		for i := range e.Projects {
			a := &e.Projects[i]
			sums := taskSums[e.ID][a.ProjectID]
			a.AssignedHours = sums.assigned
			a.ConsumedHours = sums.consumed

			switch projectTypes[a.ProjectID] {
			case project.Recurring:
				recurring += a.AssignedHours
			case project.OneTime:
				oneTime += a.AssignedHours
			}
		}

		lastWeekTotal := 0
		for _, v := range e.LastWeekHours {
			lastWeekTotal += v
		}

		calcEmployees = append(calcEmployees, CalculatedEmployee{
			Employee:               e,
			RecurringHours:         recurring,
			OneTimeHours:           oneTime,
			BalanceHours:           e.TotalHoursMonth - (recurring + oneTime),
			OccupancyRate:          clampedRate(recurring+oneTime, e.TotalHoursMonth),
			HasLoggedHoursThisWeek: lastWeekTotal > 0,
			LastWeekDailyAverage:   int(math.Round(float64(lastWeekTotal) / employee.LastWeekDays)),
		})
	}

	calcProjects := make([]CalculatedProject, 0, len(s.Projects))
	for _, raw := range s.Projects {
		p := raw.Clone()

		totalAssigned, totalConsumed := 0, 0
		for _, t := range p.Tasks {
			totalAssigned += t.AssignedHours
			totalConsumed += t.ConsumedHours
		}

		var team []CalculatedEmployee
		for _, e := range calcEmployees {
			if _, ok := e.AssignmentFor(p.ID); ok {
				team = append(team, e.clone())
			}
		}

		calcProjects = append(calcProjects, CalculatedProject{
			Project:            p,
			Team:               team,
			TotalAssignedHours: totalAssigned,
			TotalConsumedHours: totalConsumed,
			Progress:           clampedRate(totalConsumed, totalAssigned),
		})
	}

	return DashboardData{Employees: calcEmployees, Projects: calcProjects}
}

// RawStore rebuilds a raw store from a snapshot, with all derived
// assignment hours materialized. Recomputing from it yields an identical
// snapshot.
func (d DashboardData) RawStore() Store {
	s := Store{
		Employees: make([]employee.Employee, 0, len(d.Employees)),
		Projects:  make([]project.Project, 0, len(d.Projects)),
	}
	for _, e := range d.Employees {
		s.Employees = append(s.Employees, e.Employee.Clone())
	}
	for _, p := range d.Projects {
		s.Projects = append(s.Projects, p.Project.Clone())
	}
	return s
}
