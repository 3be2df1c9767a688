package dashboard

// Daily-average thresholds, in minutes per day, for the workload alerts.
const (
	OverloadThresholdMinutes      = 8 * 60
	UnderutilizedThresholdMinutes = 6 * 60
)

// AlertsReport groups the attention-worthy rows of one snapshot.
type AlertsReport struct {
	EmployeesWithoutHours   []CalculatedEmployee `json:"employeesWithoutHours"`
	ProjectsWithoutActivity []CalculatedProject  `json:"projectsWithoutActivity"`
	EmployeesOverloaded     []CalculatedEmployee `json:"employeesOverloaded"`
	EmployeesUnderutilized  []CalculatedEmployee `json:"employeesUnderutilized"`
}

func (r AlertsReport) HasAlerts() bool {
	return len(r.EmployeesWithoutHours) > 0 ||
		len(r.ProjectsWithoutActivity) > 0 ||
		len(r.EmployeesOverloaded) > 0 ||
		len(r.EmployeesUnderutilized) > 0
}

// Alerts derives the alert rows from a snapshot. Overload and
// underutilization only consider employees who logged hours this week: an
// employee with no entries at all belongs in EmployeesWithoutHours.
func Alerts(d DashboardData) AlertsReport {
	var report AlertsReport

	for _, e := range d.Employees {
		if !e.HasLoggedHoursThisWeek {
			report.EmployeesWithoutHours = append(report.EmployeesWithoutHours, e)
			continue
		}
		if e.LastWeekDailyAverage > OverloadThresholdMinutes {
			report.EmployeesOverloaded = append(report.EmployeesOverloaded, e)
		}
		if e.LastWeekDailyAverage < UnderutilizedThresholdMinutes {
			report.EmployeesUnderutilized = append(report.EmployeesUnderutilized, e)
		}
	}

	for _, p := range d.Projects {
		if !p.HasActivityThisWeek {
			report.ProjectsWithoutActivity = append(report.ProjectsWithoutActivity, p)
		}
	}

	return report
}
