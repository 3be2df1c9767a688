package dashboard

import "sort"

// EmployeePerformance adds the cross-project consumption totals to a
// calculated employee.
type EmployeePerformance struct {
	CalculatedEmployee
	TotalAssignedHours    int `json:"totalAssignedHours"`
	TotalConsumedHours    int `json:"totalConsumedHours"`
	OverallCompletionRate int `json:"overallCompletionRate"`
}

// Performance derives the per-employee completion rows from a snapshot,
// sorted by completion rate descending.
func Performance(d DashboardData) []EmployeePerformance {
	rows := make([]EmployeePerformance, 0, len(d.Employees))
	for _, e := range d.Employees {
		assigned, consumed := 0, 0
		for _, a := range e.Projects {
			assigned += a.AssignedHours
			consumed += a.ConsumedHours
		}
		rows = append(rows, EmployeePerformance{
			CalculatedEmployee:    e,
			TotalAssignedHours:    assigned,
			TotalConsumedHours:    consumed,
			OverallCompletionRate: clampedRate(consumed, assigned),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].OverallCompletionRate > rows[j].OverallCompletionRate
	})
	return rows
}

// EvolutionSummary condenses an employee's six-month history into totals.
type EvolutionSummary struct {
	EmployeeID         string `json:"employeeId"`
	Name               string `json:"name"`
	TotalAssignedHours int    `json:"totalAssignedHours"`
	TotalConsumedHours int    `json:"totalConsumedHours"`
	CompletionRate     int    `json:"completionRate"`
}

// Evolution summarizes each employee's trailing history in snapshot order.
func Evolution(d DashboardData) []EvolutionSummary {
	rows := make([]EvolutionSummary, 0, len(d.Employees))
	for _, e := range d.Employees {
		assigned, consumed := 0, 0
		for _, h := range e.HistoricalData {
			assigned += h.AssignedHours
			consumed += h.ConsumedHours
		}
		rows = append(rows, EvolutionSummary{
			EmployeeID:         e.ID,
			Name:               e.Name,
			TotalAssignedHours: assigned,
			TotalConsumedHours: consumed,
			CompletionRate:     clampedRate(consumed, assigned),
		})
	}
	return rows
}
