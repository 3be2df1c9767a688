package insight

import (
	"encoding/json"
	"net/http"

	"github.com/dcastillo/tablero-recursos/internal/config"
	"github.com/dcastillo/tablero-recursos/internal/dashboard"
)

type Handler struct {
	service   Service
	dashboard dashboard.Service
}

func NewHandler(service Service, dashboardService dashboard.Service) *Handler {
	return &Handler{service: service, dashboard: dashboardService}
}

func (h *Handler) GetInsight(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req InsightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Topic == "" {
		req.Topic = TopicGeneralSummary
	}
	if !req.Topic.IsValid() {
		http.Error(w, "invalid topic", http.StatusBadRequest)
		return
	}

	snapshot := h.dashboard.Snapshot()

	var extra ExtraContext
	if req.Topic == TopicSlackMessage {
		emp, ok := findEmployeeByName(snapshot, req.EmployeeName)
		if !ok {
			http.Error(w, "employee not found", http.StatusNotFound)
			return
		}
		extra = ExtraContext{
			EmployeeName:    emp.Name,
			WorkloadMinutes: emp.LastWeekDailyAverage,
		}
	}

	text := h.service.GetInsight(r.Context(), snapshot, req.Topic, extra)
	config.JSON(w, http.StatusOK, InsightResponse{Topic: req.Topic, Text: text})
}

func findEmployeeByName(d dashboard.DashboardData, name string) (dashboard.CalculatedEmployee, bool) {
	for _, e := range d.Employees {
		if e.Name == name {
			return e, true
		}
	}
	return dashboard.CalculatedEmployee{}, false
}
