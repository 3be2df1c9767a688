package dashboard

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/dcastillo/tablero-recursos/internal/config"
	"github.com/dcastillo/tablero-recursos/internal/employee"
	"github.com/dcastillo/tablero-recursos/internal/project"
)

type Service interface {
	Snapshot() DashboardData
	Alerts() AlertsReport
	Performance() []EmployeePerformance
	Evolution() []EvolutionSummary

	UpdateAssignmentHours(ctx context.Context, employeeID, projectID string, assignedMinutes int) (DashboardData, bool)
	DeleteEmployee(ctx context.Context, employeeID string) (DashboardData, bool)
	DeleteProject(ctx context.Context, projectID string) (DashboardData, bool)
	DeleteTask(ctx context.Context, projectID, taskID string) (DashboardData, bool)
	EditTask(ctx context.Context, projectID string, dto EditTaskDTO) (DashboardData, bool)
	EditEmployee(ctx context.Context, dto EditEmployeeDTO) (DashboardData, bool)
	EditProject(ctx context.Context, dto EditProjectDTO) (DashboardData, bool)
}

// state pairs a raw store with the snapshot derived from it. Readers grab
// the current pair atomically; the single writer replaces it wholesale
// after each mutation (copy-on-write, never in-place).
type state struct {
	store Store
	data  DashboardData
}

type service struct {
	mu      sync.Mutex
	current atomic.Pointer[state]
}

func NewService(initial Store) Service {
	s := &service{}
	s.current.Store(&state{store: initial, data: Recompute(initial)})
	return s
}

func (s *service) Snapshot() DashboardData {
	return s.current.Load().data
}

func (s *service) Alerts() AlertsReport {
	return Alerts(s.Snapshot())
}

func (s *service) Performance() []EmployeePerformance {
	return Performance(s.Snapshot())
}

func (s *service) Evolution() []EvolutionSummary {
	return Evolution(s.Snapshot())
}

// apply runs one mutation against the current store and, when it changed
// anything, publishes the new state.
func (s *service) apply(mutate func(Store) (Store, DashboardData, bool)) (DashboardData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	store, data, applied := mutate(cur.store)
	if !applied {
		return cur.data, false
	}
	s.current.Store(&state{store: store, data: data})
	return data, true
}

func (s *service) UpdateAssignmentHours(ctx context.Context, employeeID, projectID string, assignedMinutes int) (DashboardData, bool) {
	log := config.WithContext(ctx)

	data, applied := s.apply(func(st Store) (Store, DashboardData, bool) {
		return UpdateAssignmentHours(st, employeeID, projectID, assignedMinutes)
	})
	if !applied {
		log.WithFields(logrus.Fields{
			"employee_id": employeeID,
			"project_id":  projectID,
		}).Warn("Assignment not found, update ignored")
		return data, false
	}

	log.WithFields(logrus.Fields{
		"employee_id":      employeeID,
		"project_id":       projectID,
		"assigned_minutes": assignedMinutes,
	}).Info("Assignment hours updated")
	return data, true
}

func (s *service) DeleteEmployee(ctx context.Context, employeeID string) (DashboardData, bool) {
	log := config.WithContext(ctx)

	data, applied := s.apply(func(st Store) (Store, DashboardData, bool) {
		return DeleteEmployee(st, employeeID)
	})
	if !applied {
		log.WithField("employee_id", employeeID).Warn("Employee not found, delete ignored")
		return data, false
	}

	log.WithField("employee_id", employeeID).Info("Employee deleted")
	return data, true
}

func (s *service) DeleteProject(ctx context.Context, projectID string) (DashboardData, bool) {
	log := config.WithContext(ctx)

	data, applied := s.apply(func(st Store) (Store, DashboardData, bool) {
		return DeleteProject(st, projectID)
	})
	if !applied {
		log.WithField("project_id", projectID).Warn("Project not found, delete ignored")
		return data, false
	}

	log.WithField("project_id", projectID).Info("Project deleted")
	return data, true
}

func (s *service) DeleteTask(ctx context.Context, projectID, taskID string) (DashboardData, bool) {
	log := config.WithContext(ctx)

	data, applied := s.apply(func(st Store) (Store, DashboardData, bool) {
		return DeleteTask(st, projectID, taskID)
	})
	if !applied {
		log.WithFields(logrus.Fields{
			"project_id": projectID,
			"task_id":    taskID,
		}).Warn("Task not found, delete ignored")
		return data, false
	}

	log.WithFields(logrus.Fields{
		"project_id": projectID,
		"task_id":    taskID,
	}).Info("Task deleted")
	return data, true
}

func (s *service) EditTask(ctx context.Context, projectID string, dto EditTaskDTO) (DashboardData, bool) {
	log := config.WithContext(ctx)

	data, applied := s.apply(func(st Store) (Store, DashboardData, bool) {
		p, ok := st.projectByID(projectID)
		if !ok {
			return st, Recompute(st), false
		}
		existing, ok := p.TaskByID(dto.ID)
		if !ok {
			return st, Recompute(st), false
		}

		updated := mergeTask(*existing, dto)
		return EditTask(st, projectID, updated)
	})
	if !applied {
		log.WithFields(logrus.Fields{
			"project_id": projectID,
			"task_id":    dto.ID,
		}).Warn("Task not found, edit ignored")
		return data, false
	}

	log.WithFields(logrus.Fields{
		"project_id": projectID,
		"task_id":    dto.ID,
	}).Info("Task updated")
	return data, true
}

func (s *service) EditEmployee(ctx context.Context, dto EditEmployeeDTO) (DashboardData, bool) {
	log := config.WithContext(ctx)

	data, applied := s.apply(func(st Store) (Store, DashboardData, bool) {
		existing, ok := st.employeeByID(dto.ID)
		if !ok {
			return st, Recompute(st), false
		}

		updated := mergeEmployee(*existing, dto)
		return EditEmployee(st, updated)
	})
	if !applied {
		log.WithField("employee_id", dto.ID).Warn("Employee not found, edit ignored")
		return data, false
	}

	log.WithField("employee_id", dto.ID).Info("Employee updated")
	return data, true
}

func (s *service) EditProject(ctx context.Context, dto EditProjectDTO) (DashboardData, bool) {
	log := config.WithContext(ctx)

	data, applied := s.apply(func(st Store) (Store, DashboardData, bool) {
		existing, ok := st.projectByID(dto.ID)
		if !ok {
			return st, Recompute(st), false
		}

		updated := mergeProject(*existing, dto)
		return EditProject(st, updated)
	})
	if !applied {
		log.WithField("project_id", dto.ID).Warn("Project not found, edit ignored")
		return data, false
	}

	log.WithField("project_id", dto.ID).Info("Project updated")
	return data, true
}

func mergeTask(existing project.Task, dto EditTaskDTO) project.Task {
	if dto.Name != nil {
		existing.Name = *dto.Name
	}
	if dto.Status != nil {
		existing.Status = *dto.Status
	}
	if dto.AssignedTo != nil {
		existing.AssignedTo = *dto.AssignedTo
	}
	if dto.AssignedHours != nil {
		existing.AssignedHours = *dto.AssignedHours
	}
	if dto.ConsumedHours != nil {
		existing.ConsumedHours = *dto.ConsumedHours
	}
	return existing
}

func mergeEmployee(existing employee.Employee, dto EditEmployeeDTO) employee.Employee {
	if dto.Name != nil {
		existing.Name = *dto.Name
	}
	if dto.Role != nil {
		existing.Role = *dto.Role
	}
	if dto.TotalHoursMonth != nil {
		existing.TotalHoursMonth = *dto.TotalHoursMonth
	}
	return existing
}

func mergeProject(existing project.Project, dto EditProjectDTO) project.Project {
	if dto.Name != nil {
		existing.Name = *dto.Name
	}
	if dto.Description != nil {
		existing.Description = *dto.Description
	}
	if dto.Deadline != nil {
		existing.Deadline = *dto.Deadline
	}
	if dto.Status != nil {
		existing.Status = *dto.Status
	}
	return existing
}
