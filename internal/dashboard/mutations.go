package dashboard

import (
	"github.com/google/uuid"

	"github.com/dcastillo/tablero-recursos/internal/employee"
	"github.com/dcastillo/tablero-recursos/internal/project"
)

// Every mutation is a total function over the store: it returns a brand
// new store plus the recomputed snapshot, and reports whether anything
// changed. A reference that does not resolve degrades to a no-op (applied
// == false, inputs returned untouched) so a stale click can never crash
// or corrupt the dashboard.

// manualAdjustmentTaskName labels the synthetic task that absorbs an
// assignment-hours change when the employee has no task hours to scale.
const manualAdjustmentTaskName = "Ajuste manual"

// UpdateAssignmentHours sets an employee's total assigned minutes on one
// project. Task hours are authoritative, so the new total is
// redistributed proportionally across the employee's tasks in that
// project; the rounding remainder lands on the first task. With no
// existing task hours, the whole total goes to a synthetic adjustment
// task.
func UpdateAssignmentHours(s Store, employeeID, projectID string, assignedMinutes int) (Store, DashboardData, bool) {
	if assignedMinutes < 0 {
		assignedMinutes = 0
	}

	next := s.Clone()
	emp, ok := next.employeeByID(employeeID)
	if !ok {
		return s, Recompute(s), false
	}
	assignment, ok := emp.AssignmentFor(projectID)
	if !ok {
		return s, Recompute(s), false
	}
	proj, ok := next.projectByID(projectID)
	if !ok {
		return s, Recompute(s), false
	}

	redistributeAssignedHours(proj, employeeID, assignedMinutes)
	assignment.AssignedHours = assignedMinutes

	return next, Recompute(next), true
}

func redistributeAssignedHours(p *project.Project, employeeID string, newTotal int) {
	idx := p.TasksFor(employeeID)

	oldTotal := 0
	for _, i := range idx {
		oldTotal += p.Tasks[i].AssignedHours
	}

	if oldTotal == 0 {
		if newTotal == 0 {
			return
		}
		p.Tasks = append(p.Tasks, project.Task{
			ID:            p.ID + "-adj-" + uuid.NewString(),
			Name:          manualAdjustmentTaskName,
			Status:        project.TaskToDo,
			AssignedTo:    employeeID,
			AssignedHours: newTotal,
		})
		return
	}

	distributed := 0
	for _, i := range idx {
		scaled := newTotal * p.Tasks[i].AssignedHours / oldTotal
		p.Tasks[i].AssignedHours = scaled
		distributed += scaled
	}
	// Integer division floors each share; the leftover keeps the sum exact.
	p.Tasks[idx[0]].AssignedHours += newTotal - distributed
}

// deleteTarget identifies the entity a cascade removes together with the
// context ids some relations need.
type deleteTarget struct {
	employeeID string
	projectID  string
	taskID     string
}

type entityKind string

const (
	kindEmployee entityKind = "employee"
	kindProject  entityKind = "project"
	kindTask     entityKind = "task"
)

// cascadePolicy maps an entity kind to the ordered cleanup steps a delete
// must run. Keeping the steps in one table means a delete is a single
// atomic operation instead of filters scattered across call sites.
//
// Tasks assigned to a deleted employee intentionally keep their dangling
// assignee id; lookups for it return "not found" and display layers fall
// back to project.UnassignedLabel.
var cascadePolicy = map[entityKind][]func(*Store, deleteTarget){
	kindEmployee: {
		removeEmployeeRecord,
	},
	kindProject: {
		removeProjectRecord,
		stripAssignmentsToProject,
	},
	kindTask: {
		removeTaskRecord,
	},
}

func runCascade(s *Store, kind entityKind, target deleteTarget) {
	for _, step := range cascadePolicy[kind] {
		step(s, target)
	}
}

func removeEmployeeRecord(s *Store, t deleteTarget) {
	out := s.Employees[:0]
	for _, e := range s.Employees {
		if e.ID != t.employeeID {
			out = append(out, e)
		}
	}
	s.Employees = out
}

func removeProjectRecord(s *Store, t deleteTarget) {
	out := s.Projects[:0]
	for _, p := range s.Projects {
		if p.ID != t.projectID {
			out = append(out, p)
		}
	}
	s.Projects = out
}

func stripAssignmentsToProject(s *Store, t deleteTarget) {
	for i := range s.Employees {
		e := &s.Employees[i]
		out := e.Projects[:0]
		for _, a := range e.Projects {
			if a.ProjectID != t.projectID {
				out = append(out, a)
			}
		}
		e.Projects = out
	}
}

func removeTaskRecord(s *Store, t deleteTarget) {
	for i := range s.Projects {
		if s.Projects[i].ID != t.projectID {
			continue
		}
		p := &s.Projects[i]
		out := p.Tasks[:0]
		for _, task := range p.Tasks {
			if task.ID != t.taskID {
				out = append(out, task)
			}
		}
		p.Tasks = out
	}
}

// DeleteEmployee removes the employee and runs the employee cascade.
func DeleteEmployee(s Store, employeeID string) (Store, DashboardData, bool) {
	if _, ok := s.employeeByID(employeeID); !ok {
		return s, Recompute(s), false
	}
	next := s.Clone()
	runCascade(&next, kindEmployee, deleteTarget{employeeID: employeeID})
	return next, Recompute(next), true
}

// DeleteProject removes the project and strips every assignment that
// referenced it.
func DeleteProject(s Store, projectID string) (Store, DashboardData, bool) {
	if _, ok := s.projectByID(projectID); !ok {
		return s, Recompute(s), false
	}
	next := s.Clone()
	runCascade(&next, kindProject, deleteTarget{projectID: projectID})
	return next, Recompute(next), true
}

// DeleteTask removes one task from a project's task list.
func DeleteTask(s Store, projectID, taskID string) (Store, DashboardData, bool) {
	p, ok := s.projectByID(projectID)
	if !ok {
		return s, Recompute(s), false
	}
	if _, ok := p.TaskByID(taskID); !ok {
		return s, Recompute(s), false
	}
	next := s.Clone()
	runCascade(&next, kindTask, deleteTarget{projectID: projectID, taskID: taskID})
	return next, Recompute(next), true
}

// EditTask replaces a task by id within a project. Name, status, assignee
// and hours are all replaceable; the task id and owning project are not.
func EditTask(s Store, projectID string, updated project.Task) (Store, DashboardData, bool) {
	next := s.Clone()
	p, ok := next.projectByID(projectID)
	if !ok {
		return s, Recompute(s), false
	}
	t, ok := p.TaskByID(updated.ID)
	if !ok {
		return s, Recompute(s), false
	}

	t.Name = updated.Name
	t.Status = updated.Status
	t.AssignedTo = updated.AssignedTo
	t.AssignedHours = updated.AssignedHours
	t.ConsumedHours = updated.ConsumedHours

	return next, Recompute(next), true
}

// EditEmployee replaces the mutable employee attributes. Assignment and
// history lists are untouched.
func EditEmployee(s Store, updated employee.Employee) (Store, DashboardData, bool) {
	next := s.Clone()
	e, ok := next.employeeByID(updated.ID)
	if !ok {
		return s, Recompute(s), false
	}

	e.Name = updated.Name
	e.Role = updated.Role
	e.Avatar = updated.Avatar
	if updated.TotalHoursMonth >= 0 {
		e.TotalHoursMonth = updated.TotalHoursMonth
	}

	return next, Recompute(next), true
}

// EditProject replaces the mutable project attributes. The type
// classification and the task list are untouched.
func EditProject(s Store, updated project.Project) (Store, DashboardData, bool) {
	next := s.Clone()
	p, ok := next.projectByID(updated.ID)
	if !ok {
		return s, Recompute(s), false
	}

	p.Name = updated.Name
	p.Description = updated.Description
	if !updated.Deadline.IsZero() {
		p.Deadline = updated.Deadline
	}
	if updated.Status.IsValid() {
		p.Status = updated.Status
	}

	return next, Recompute(next), true
}
