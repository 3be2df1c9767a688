package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/dashboard", h.GetDashboard)
	r.Get("/dashboard/alerts", h.GetAlerts)
	r.Get("/dashboard/performance", h.GetPerformance)
	r.Get("/dashboard/evolution", h.GetEvolution)

	r.Put("/employees/{employeeId}/projects/{projectId}/hours", h.UpdateAssignmentHours)
	r.Put("/employees/{employeeId}", h.EditEmployee)
	r.Delete("/employees/{employeeId}", h.DeleteEmployee)

	r.Put("/projects/{projectId}", h.EditProject)
	r.Delete("/projects/{projectId}", h.DeleteProject)
	r.Put("/projects/{projectId}/tasks/{taskId}", h.EditTask)
	r.Delete("/projects/{projectId}/tasks/{taskId}", h.DeleteTask)

	return r
}
