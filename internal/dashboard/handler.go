package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dcastillo/tablero-recursos/internal/config"
	util "github.com/dcastillo/tablero-recursos/internal/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Snapshot())
}

func (h *Handler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Alerts())
}

func (h *Handler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Performance())
}

func (h *Handler) GetEvolution(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Evolution())
}

func (h *Handler) UpdateAssignmentHours(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	employeeID := chi.URLParam(r, "employeeId")
	projectID := chi.URLParam(r, "projectId")

	var dto UpdateAssignmentHoursDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	minutes := util.ParseHMToMinutes(dto.AssignedHours)
	data, ok := h.service.UpdateAssignmentHours(r.Context(), employeeID, projectID, minutes)
	if !ok {
		http.Error(w, "assignment not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, data)
}

func (h *Handler) EditEmployee(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto EditEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	dto.ID = chi.URLParam(r, "employeeId")

	if dto.TotalHoursMonth != nil && *dto.TotalHoursMonth < 0 {
		http.Error(w, "total_hours_month must be >= 0", http.StatusBadRequest)
		return
	}

	data, ok := h.service.EditEmployee(r.Context(), dto)
	if !ok {
		http.Error(w, "employee not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, data)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	data, ok := h.service.DeleteEmployee(r.Context(), chi.URLParam(r, "employeeId"))
	if !ok {
		http.Error(w, "employee not found", http.StatusNotFound)
		return
	}
	config.JSON(w, http.StatusOK, data)
}

func (h *Handler) EditProject(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto EditProjectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	dto.ID = chi.URLParam(r, "projectId")

	if dto.Status != nil && !dto.Status.IsValid() {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	data, ok := h.service.EditProject(r.Context(), dto)
	if !ok {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, data)
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	data, ok := h.service.DeleteProject(r.Context(), chi.URLParam(r, "projectId"))
	if !ok {
		http.Error(w, "project not found", http.StatusNotFound)
		return
	}
	config.JSON(w, http.StatusOK, data)
}

func (h *Handler) EditTask(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto EditTaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	dto.ID = chi.URLParam(r, "taskId")

	if dto.Status != nil && !dto.Status.IsValid() {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}
	if dto.AssignedHours != nil && *dto.AssignedHours < 0 {
		http.Error(w, "assigned_hours must be >= 0", http.StatusBadRequest)
		return
	}
	if dto.ConsumedHours != nil && *dto.ConsumedHours < 0 {
		http.Error(w, "consumed_hours must be >= 0", http.StatusBadRequest)
		return
	}

	data, ok := h.service.EditTask(r.Context(), chi.URLParam(r, "projectId"), dto)
	if !ok {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, data)
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	data, ok := h.service.DeleteTask(r.Context(), chi.URLParam(r, "projectId"), chi.URLParam(r, "taskId"))
	if !ok {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}
	config.JSON(w, http.StatusOK, data)
}
