package dashboard

import (
	"github.com/dcastillo/tablero-recursos/internal/employee"
	"github.com/dcastillo/tablero-recursos/internal/project"
)

// Store is the raw entity collection the engine mutates. Calculated views
// are always rebuilt from it; nothing reads employee-side hour fields as
// an authority.
type Store struct {
	Employees []employee.Employee `json:"employees"`
	Projects  []project.Project   `json:"projects"`
}

func (s Store) Clone() Store {
	out := Store{}
	if s.Employees != nil {
		out.Employees = make([]employee.Employee, len(s.Employees))
		for i, e := range s.Employees {
			out.Employees[i] = e.Clone()
		}
	}
	if s.Projects != nil {
		out.Projects = make([]project.Project, len(s.Projects))
		for i, p := range s.Projects {
			out.Projects[i] = p.Clone()
		}
	}
	return out
}

func (s *Store) employeeByID(id string) (*employee.Employee, bool) {
	for i := range s.Employees {
		if s.Employees[i].ID == id {
			return &s.Employees[i], true
		}
	}
	return nil, false
}

func (s *Store) projectByID(id string) (*project.Project, bool) {
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			return &s.Projects[i], true
		}
	}
	return nil, false
}
