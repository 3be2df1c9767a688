package insight

import (
	"encoding/json"
	"fmt"

	"github.com/dcastillo/tablero-recursos/internal/dashboard"
)

// The model only sees a condensed view of the snapshot: the handful of
// metrics the topics reason about, never the raw task lists.
type employeeDigest struct {
	Name                 string `json:"name"`
	OccupancyRate        int    `json:"occupancyRate"`
	BalanceHours         int    `json:"balanceHours"`
	LastWeekDailyAverage int    `json:"lastWeekDailyAverage"`
}

type projectDigest struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	TeamSize int    `json:"teamSize"`
}

type snapshotDigest struct {
	Employees []employeeDigest `json:"employees"`
	Projects  []projectDigest  `json:"projects"`
}

func digest(d dashboard.DashboardData) snapshotDigest {
	out := snapshotDigest{
		Employees: make([]employeeDigest, 0, len(d.Employees)),
		Projects:  make([]projectDigest, 0, len(d.Projects)),
	}
	for _, e := range d.Employees {
		out.Employees = append(out.Employees, employeeDigest{
			Name:                 e.Name,
			OccupancyRate:        e.OccupancyRate,
			BalanceHours:         e.BalanceHours,
			LastWeekDailyAverage: e.LastWeekDailyAverage,
		})
	}
	for _, p := range d.Projects {
		out.Projects = append(out.Projects, projectDigest{
			Name:     p.Name,
			Status:   string(p.Status),
			Progress: p.Progress,
			TeamSize: len(p.Team),
		})
	}
	return out
}

// BuildPrompt assembles the Spanish management-assistant prompt for one
// topic over a snapshot digest.
func BuildPrompt(d dashboard.DashboardData, topic Topic, extra ExtraContext) string {
	data, _ := json.Marshal(digest(d))

	prompt := fmt.Sprintf(
		"Eres un asistente de gestión de proyectos analizando datos de un dashboard. "+
			"Los datos son: %s. "+
			"Responde en español, de forma concisa y profesional. No uses Markdown. ",
		string(data),
	)

	switch topic {
	case TopicOverloaded:
		prompt += "Identifica los 3 empleados con mayor riesgo de sobrecarga (mayor tasa de ocupación y promedio de horas diario). Sugiere una acción para cada uno."
	case TopicUnderutilized:
		prompt += "Identifica los 3 empleados más infrautilizados (menor tasa de ocupación y balance de horas positivo). Sugiere cómo reasignarlos."
	case TopicRiskyProjects:
		prompt += "Identifica los 3 proyectos con más riesgo (estado 'En Riesgo' o 'Retrasado' y bajo progreso). Sugiere una acción prioritaria para cada uno."
	case TopicSlackMessage:
		workload := "normales"
		if extra.WorkloadMinutes > 8*60 {
			workload = "altas"
		} else if extra.WorkloadMinutes < 6*60 {
			workload = "bajas"
		}
		prompt += fmt.Sprintf(
			"Redacta un mensaje de Slack amigable y profesional para %s preguntando cómo va su semana y si necesita ayuda, ya que sus horas registradas son %s (%.1fh/día en promedio).",
			extra.EmployeeName, workload, float64(extra.WorkloadMinutes)/60,
		)
	default:
		prompt += "Proporciona un resumen ejecutivo de 2-3 frases sobre la salud general del equipo y los proyectos."
	}

	return prompt
}
