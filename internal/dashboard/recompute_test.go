package dashboard_test

import (
	"reflect"
	"testing"

	"github.com/dcastillo/tablero-recursos/internal/dashboard"
	"github.com/dcastillo/tablero-recursos/internal/employee"
	"github.com/dcastillo/tablero-recursos/internal/project"
)

// fixtureStore builds one employee with 160h monthly capacity assigned to
// a recurring project (40h) and a one-time project (80h), all hours backed
// by tasks.
func fixtureStore() dashboard.Store {
	return dashboard.Store{
		Employees: []employee.Employee{
			{
				ID:              "e1",
				Name:            "Ana García",
				TotalHoursMonth: 9600,
				Projects: []employee.Assignment{
					{ProjectID: "p-rec"},
					{ProjectID: "p-one"},
				},
				LastWeekHours: [employee.LastWeekDays]int{480, 420, 480, 540, 480},
			},
		},
		Projects: []project.Project{
			{
				ID:     "p-rec",
				Name:   "Platform Maintenance",
				Type:   project.Recurring,
				Status: project.OnTrack,
				Tasks: []project.Task{
					{ID: "t1", Name: "Guardias", Status: project.TaskInProgress, AssignedTo: "e1", AssignedHours: 2400, ConsumedHours: 1200},
				},
				HasActivityThisWeek: true,
			},
			{
				ID:     "p-one",
				Name:   "New Feature Launch",
				Type:   project.OneTime,
				Status: project.OnTrack,
				Tasks: []project.Task{
					{ID: "t2", Name: "Backend", Status: project.TaskInProgress, AssignedTo: "e1", AssignedHours: 3000, ConsumedHours: 1500},
					{ID: "t3", Name: "Frontend", Status: project.TaskToDo, AssignedTo: "e1", AssignedHours: 1800, ConsumedHours: 0},
				},
				HasActivityThisWeek: true,
			},
		},
	}
}

func TestRecomputeEmployeeAggregates(t *testing.T) {
	data := dashboard.Recompute(fixtureStore())

	if len(data.Employees) != 1 {
		t.Fatalf("expected 1 calculated employee, got %d", len(data.Employees))
	}
	e := data.Employees[0]

	if e.RecurringHours != 2400 {
		t.Errorf("RecurringHours = %d, want 2400", e.RecurringHours)
	}
	if e.OneTimeHours != 4800 {
		t.Errorf("OneTimeHours = %d, want 4800", e.OneTimeHours)
	}
	if e.BalanceHours != 2400 {
		t.Errorf("BalanceHours = %d, want 2400", e.BalanceHours)
	}
	if e.OccupancyRate != 75 {
		t.Errorf("OccupancyRate = %d, want 75", e.OccupancyRate)
	}
	if !e.HasLoggedHoursThisWeek {
		t.Error("HasLoggedHoursThisWeek = false, want true")
	}
	if e.LastWeekDailyAverage != 480 {
		t.Errorf("LastWeekDailyAverage = %d, want 480", e.LastWeekDailyAverage)
	}
}

func TestRecomputeProjectAggregates(t *testing.T) {
	data := dashboard.Recompute(fixtureStore())

	var oneTime dashboard.CalculatedProject
	for _, p := range data.Projects {
		if p.ID == "p-one" {
			oneTime = p
		}
	}

	if oneTime.TotalAssignedHours != 4800 {
		t.Errorf("TotalAssignedHours = %d, want 4800", oneTime.TotalAssignedHours)
	}
	if oneTime.TotalConsumedHours != 1500 {
		t.Errorf("TotalConsumedHours = %d, want 1500", oneTime.TotalConsumedHours)
	}
	if oneTime.Progress != 31 {
		t.Errorf("Progress = %d, want 31", oneTime.Progress)
	}
	if len(oneTime.Team) != 1 || oneTime.Team[0].ID != "e1" {
		t.Errorf("Team = %+v, want the single assigned employee", oneTime.Team)
	}
}

func TestRecomputeDerivesAssignmentHoursFromTasks(t *testing.T) {
	s := fixtureStore()
	// Raw assignment records carry stale hour values on purpose; tasks are
	// the single source of truth.
	s.Employees[0].Projects[0].AssignedHours = 999
	s.Employees[0].Projects[1].ConsumedHours = 999

	data := dashboard.Recompute(s)
	e := data.Employees[0]

	if e.Projects[0].AssignedHours != 2400 {
		t.Errorf("derived AssignedHours = %d, want 2400", e.Projects[0].AssignedHours)
	}
	if e.Projects[1].ConsumedHours != 1500 {
		t.Errorf("derived ConsumedHours = %d, want 1500", e.Projects[1].ConsumedHours)
	}
}

func TestRecomputeEdgeCases(t *testing.T) {
	t.Run("ZeroMonthlyCapacity", func(t *testing.T) {
		s := fixtureStore()
		s.Employees[0].TotalHoursMonth = 0

		data := dashboard.Recompute(s)
		if got := data.Employees[0].OccupancyRate; got != 0 {
			t.Errorf("OccupancyRate = %d, want 0", got)
		}
	})

	t.Run("ProjectWithoutTaskHours", func(t *testing.T) {
		s := fixtureStore()
		s.Projects[1].Tasks = nil

		data := dashboard.Recompute(s)
		for _, p := range data.Projects {
			if p.ID == "p-one" && p.Progress != 0 {
				t.Errorf("Progress = %d, want 0 when no hours are assigned", p.Progress)
			}
		}
	})

	t.Run("OccupancyClampedAt100", func(t *testing.T) {
		s := fixtureStore()
		s.Employees[0].TotalHoursMonth = 600

		data := dashboard.Recompute(s)
		e := data.Employees[0]
		if e.OccupancyRate != 100 {
			t.Errorf("OccupancyRate = %d, want clamp at 100", e.OccupancyRate)
		}
		if e.BalanceHours >= 0 {
			t.Errorf("BalanceHours = %d, want negative for over-assignment", e.BalanceHours)
		}
	})

	t.Run("ProgressClampedAt100", func(t *testing.T) {
		s := fixtureStore()
		s.Projects[0].Tasks[0].ConsumedHours = 9000

		data := dashboard.Recompute(s)
		for _, p := range data.Projects {
			if p.ID == "p-rec" && p.Progress != 100 {
				t.Errorf("Progress = %d, want clamp at 100", p.Progress)
			}
		}
	})
}

func TestRecomputeConservation(t *testing.T) {
	data := dashboard.Recompute(fixtureStore())

	for _, e := range data.Employees {
		total := 0
		for _, a := range e.Projects {
			total += a.AssignedHours
		}
		if e.RecurringHours+e.OneTimeHours != total {
			t.Errorf("employee %s: recurring+oneTime = %d, assignments total %d",
				e.ID, e.RecurringHours+e.OneTimeHours, total)
		}
		if e.BalanceHours != e.TotalHoursMonth-total {
			t.Errorf("employee %s: balance = %d, want %d", e.ID, e.BalanceHours, e.TotalHoursMonth-total)
		}
	}

	for _, p := range data.Projects {
		taskTotal := 0
		for _, task := range p.Tasks {
			taskTotal += task.AssignedHours
		}
		if p.TotalAssignedHours != taskTotal {
			t.Errorf("project %s: TotalAssignedHours = %d, task sum %d", p.ID, p.TotalAssignedHours, taskTotal)
		}
	}
}

func TestRecomputeIdempotent(t *testing.T) {
	first := dashboard.Recompute(fixtureStore())
	second := dashboard.Recompute(first.RawStore())

	if !reflect.DeepEqual(first, second) {
		t.Error("recomputing from the materialized raw store changed the snapshot")
	}
}

func TestRecomputeDoesNotAliasInput(t *testing.T) {
	s := fixtureStore()
	data := dashboard.Recompute(s)

	data.Employees[0].Projects[0].AssignedHours = 1
	data.Projects[0].Tasks[0].AssignedHours = 1

	if s.Employees[0].Projects[0].AssignedHours == 1 {
		t.Error("snapshot shares assignment memory with the input store")
	}
	if s.Projects[0].Tasks[0].AssignedHours == 1 {
		t.Error("snapshot shares task memory with the input store")
	}
}

func TestAssigneeNameFallback(t *testing.T) {
	data := dashboard.Recompute(fixtureStore())

	if got := data.AssigneeName("e1"); got != "Ana García" {
		t.Errorf("AssigneeName(e1) = %q", got)
	}
	if got := data.AssigneeName("ghost"); got != project.UnassignedLabel {
		t.Errorf("AssigneeName(ghost) = %q, want %q", got, project.UnassignedLabel)
	}
}
